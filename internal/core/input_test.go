package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionNone)

	if !f.Has(ActionJump) {
		t.Error("Jump should be set")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be stored")
	}
	if !f.Any(ActionPause, ActionJump) {
		t.Error("Any should find Jump")
	}
	if f.Any(ActionPause, ActionCancel) {
		t.Error("Any should not find unset actions")
	}
}

func TestInputFrameMergeClear(t *testing.T) {
	pending := NewInputFrame()
	pending.Merge(FrameOf(ActionJump))
	pending.Merge(FrameOf(ActionConfirm, ActionJump))

	if !pending.Has(ActionJump) || !pending.Has(ActionConfirm) {
		t.Errorf("Merge lost actions: %v", pending.Actions)
	}
	if len(pending.Actions) != 2 {
		t.Errorf("expected 2 actions after merge, got %d", len(pending.Actions))
	}

	clone := pending.Clone()
	pending.Clear()

	if !pending.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should not share state with its source frame")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionPause, "Pause"},
		{ActionConfirm, "Confirm"},
		{ActionCancel, "Cancel"},
		{ActionFullscreen, "Fullscreen"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
