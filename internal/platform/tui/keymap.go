package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-pebble/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Jump    key.Binding
	Pause   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Pause, k.Confirm, k.Cancel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Pause},
		{k.Confirm, k.Cancel, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc", "p"),
			key.WithHelp("esc/p", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to the actions it triggers. One key may
// trigger several actions: escape both pauses and backs out of dialogs,
// and the state machine decides which one applies.
func (k KeyMap) MapKey(msg tea.KeyMsg) []core.Action {
	var actions []core.Action
	if key.Matches(msg, k.Quit) {
		return []core.Action{core.ActionQuit}
	}
	if key.Matches(msg, k.Jump) {
		actions = append(actions, core.ActionJump)
	}
	if key.Matches(msg, k.Pause) {
		actions = append(actions, core.ActionPause)
	}
	if key.Matches(msg, k.Confirm) {
		actions = append(actions, core.ActionConfirm)
	}
	if key.Matches(msg, k.Cancel) {
		actions = append(actions, core.ActionCancel)
	}
	return actions
}
