package state

import "github.com/vovakirdan/flappy-pebble/internal/core"

// Button binds a set of input actions to a trigger while in a given state.
// Any one of the actions fires the button.
type Button struct {
	Name    string
	From    RunState
	Actions []core.Action
	Trigger Trigger
}

// Pressed reports whether the frame fires this button in the given state.
func (b Button) Pressed(current RunState, in core.InputFrame) bool {
	return b.From == current && in.Any(b.Actions...)
}

// DefaultButtons is the binding table used by the game. Order matters: the
// first pressed button wins.
var DefaultButtons = []Button{
	{Name: "StartGame", From: MainMenu, Actions: []core.Action{core.ActionConfirm, core.ActionJump}, Trigger: TriggerStart},
	{Name: "Exit", From: MainMenu, Actions: []core.Action{core.ActionCancel}, Trigger: TriggerExit},
	{Name: "Pause", From: Playing, Actions: []core.Action{core.ActionPause}, Trigger: TriggerPause},
	{Name: "Unpause", From: Paused, Actions: []core.Action{core.ActionPause, core.ActionConfirm}, Trigger: TriggerResume},
	{Name: "Restart", From: GameOver, Actions: []core.Action{core.ActionConfirm, core.ActionJump}, Trigger: TriggerRestart},
	{Name: "MainMenu", From: GameOver, Actions: []core.Action{core.ActionCancel}, Trigger: TriggerMenu},
}

// Resolve returns the trigger of the first button fired by the frame in the
// current state. A quit action outranks every button.
func Resolve(buttons []Button, current RunState, in core.InputFrame) (Button, bool) {
	if in.Has(core.ActionQuit) {
		if _, ok := Target(current, TriggerQuit); ok {
			return Button{Name: "Quit", From: current, Actions: []core.Action{core.ActionQuit}, Trigger: TriggerQuit}, true
		}
	}
	for _, b := range buttons {
		if b.Pressed(current, in) {
			return b, true
		}
	}
	return Button{}, false
}

// ButtonsFor returns the buttons available in a state, in table order.
// Frontends use this to draw menus and help lines.
func ButtonsFor(buttons []Button, current RunState) []Button {
	var out []Button
	for _, b := range buttons {
		if b.From == current {
			out = append(out, b)
		}
	}
	return out
}
