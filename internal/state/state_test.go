package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappy-pebble/internal/core"
)

func TestRunState_String(t *testing.T) {
	tests := []struct {
		state    RunState
		expected string
	}{
		{MainMenu, "MainMenu"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{GameOver, "GameOver"},
		{Exit, "Exit"},
		{RunState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		from    RunState
		trigger Trigger
		to      RunState
		ok      bool
	}{
		{MainMenu, TriggerStart, Playing, true},
		{MainMenu, TriggerExit, Exit, true},
		{Playing, TriggerPause, Paused, true},
		{Paused, TriggerResume, Playing, true},
		{Playing, TriggerCrash, GameOver, true},
		{GameOver, TriggerRestart, Playing, true},
		{GameOver, TriggerMenu, MainMenu, true},
		{Playing, TriggerQuit, Exit, true},
		{Paused, TriggerCrash, 0, false},
		{MainMenu, TriggerPause, 0, false},
		{GameOver, TriggerCrash, 0, false},
		{Exit, TriggerStart, 0, false},
		{Exit, TriggerQuit, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.trigger.String(), func(t *testing.T) {
			to, ok := Target(tt.from, tt.trigger)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.to, to)
			}
		})
	}
}

func TestMachineOneTransitionPerCommit(t *testing.T) {
	var seen []Transition
	m := NewMachine(func(tr Transition) { seen = append(seen, tr) })
	require.Equal(t, MainMenu, m.Current())

	assert.True(t, m.Request(TriggerStart))
	assert.False(t, m.Request(TriggerExit), "a second trigger in the same tick is rejected")

	tr, ok := m.Commit()
	require.True(t, ok)
	assert.Equal(t, Transition{From: MainMenu, To: Playing, Trigger: TriggerStart}, tr)
	assert.Equal(t, Playing, m.Current())
	assert.Len(t, seen, 1)

	_, ok = m.Commit()
	assert.False(t, ok, "nothing queued")
	assert.Len(t, seen, 1)
}

func TestMachineRepeatedCrashIsIdempotent(t *testing.T) {
	count := 0
	m := NewMachine(func(Transition) { count++ })
	m.Request(TriggerStart)
	m.Commit()

	assert.True(t, m.Request(TriggerCrash))
	assert.True(t, m.Request(TriggerCrash))
	assert.True(t, m.Request(TriggerCrash))
	m.Commit()

	assert.Equal(t, GameOver, m.Current())
	assert.Equal(t, 2, count)

	assert.False(t, m.Request(TriggerCrash), "crash is illegal once the run is over")
}

func TestMachineRejectsIllegalTrigger(t *testing.T) {
	m := NewMachine(nil)

	assert.False(t, m.Request(TriggerResume))
	assert.Equal(t, TriggerNone, m.Pending())
	_, ok := m.Commit()
	assert.False(t, ok)
	assert.Equal(t, MainMenu, m.Current())
}

func TestResolveDefaultButtons(t *testing.T) {
	tests := []struct {
		name    string
		state   RunState
		actions []core.Action
		trigger Trigger
		ok      bool
	}{
		{"menu confirm starts", MainMenu, []core.Action{core.ActionConfirm}, TriggerStart, true},
		{"menu jump starts", MainMenu, []core.Action{core.ActionJump}, TriggerStart, true},
		{"menu cancel exits", MainMenu, []core.Action{core.ActionCancel}, TriggerExit, true},
		{"playing pause", Playing, []core.Action{core.ActionPause}, TriggerPause, true},
		{"playing jump is not a button", Playing, []core.Action{core.ActionJump}, TriggerNone, false},
		{"paused pause resumes", Paused, []core.Action{core.ActionPause}, TriggerResume, true},
		{"paused confirm resumes", Paused, []core.Action{core.ActionConfirm}, TriggerResume, true},
		{"paused jump ignored", Paused, []core.Action{core.ActionJump}, TriggerNone, false},
		{"game over jump restarts", GameOver, []core.Action{core.ActionJump}, TriggerRestart, true},
		{"game over cancel to menu", GameOver, []core.Action{core.ActionCancel}, TriggerMenu, true},
		{"escape on game over goes to menu", GameOver, []core.Action{core.ActionPause, core.ActionCancel}, TriggerMenu, true},
		{"quit outranks buttons", GameOver, []core.Action{core.ActionJump, core.ActionQuit}, TriggerQuit, true},
		{"nothing pressed", MainMenu, nil, TriggerNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := Resolve(DefaultButtons, tt.state, core.FrameOf(tt.actions...))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.trigger, b.Trigger)
			if ok {
				_, legal := Target(tt.state, b.Trigger)
				assert.True(t, legal, "every default button must map to a legal transition")
			}
		})
	}
}

func TestButtonsFor(t *testing.T) {
	names := func(bs []Button) []string {
		var out []string
		for _, b := range bs {
			out = append(out, b.Name)
		}
		return out
	}

	assert.Equal(t, []string{"StartGame", "Exit"}, names(ButtonsFor(DefaultButtons, MainMenu)))
	assert.Equal(t, []string{"Restart", "MainMenu"}, names(ButtonsFor(DefaultButtons, GameOver)))
	assert.Empty(t, ButtonsFor(DefaultButtons, Exit))
}
