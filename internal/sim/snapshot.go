package sim

import (
	"github.com/vovakirdan/flappy-pebble/internal/collision"
	"github.com/vovakirdan/flappy-pebble/internal/core"
	"github.com/vovakirdan/flappy-pebble/internal/state"
	"github.com/vovakirdan/flappy-pebble/internal/viewport"
)

// PebbleView is the drawable state of the player actor.
type PebbleView struct {
	X, Y     float32
	Velocity float32
	Box      core.Box
}

// ObstacleView is the drawable state of one obstacle pair. Lower and Upper
// are the two barriers in world units.
type ObstacleView struct {
	ID     uint64
	X      float32
	Passed bool
	Lower  core.Box
	Upper  core.Box
}

// Snapshot is a read-only copy of the end-of-tick world state.
type Snapshot struct {
	Tick      uint64
	State     state.RunState
	Bounds    viewport.Bounds
	Scale     float32
	Pebble    *PebbleView // Nil when no actor exists
	Obstacles []ObstacleView
	Score     uint32
	Best      uint32
	NewBest   bool
	Cause     collision.Cause
	Buttons   []state.Button // Buttons available in State
}

// Snapshot copies the committed state for rendering.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    w.tick,
		State:   w.machine.Current(),
		Bounds:  w.tracker.Bounds(),
		Scale:   w.tracker.Scale(),
		Score:   w.score.Current(),
		Best:    w.score.Best(),
		NewBest: w.score.IsNewBest(),
		Cause:   w.cause,
		Buttons: state.ButtonsFor(w.buttons, w.machine.Current()),
	}

	if w.actor != nil {
		snap.Pebble = &PebbleView{
			X:        w.actor.X,
			Y:        w.actor.Y,
			Velocity: w.actor.Velocity,
			Box:      w.actor.Box(w.cfg.Pebble.Width, w.cfg.Pebble.Height),
		}
	}

	moai := w.cfg.Moai
	for _, o := range w.obstacles.Obstacles() {
		snap.Obstacles = append(snap.Obstacles, ObstacleView{
			ID:     o.ID,
			X:      o.X,
			Passed: o.Passed,
			Lower:  core.NewBox(o.X, o.GapBottom()-moai.Height/2, moai.Width, moai.Height),
			Upper:  core.NewBox(o.X, o.GapTop(moai)+moai.Height/2, moai.Width, moai.Height),
		})
	}

	return snap
}
