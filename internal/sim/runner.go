package sim

import (
	"time"

	"github.com/vovakirdan/flappy-pebble/internal/core"
	"github.com/vovakirdan/flappy-pebble/internal/state"
)

// FrameResult aggregates the ticks run during one presentation frame.
type FrameResult struct {
	Ticks       int
	Transitions []state.Transition
	Ended       []RunSummary
	Exit        bool
}

// Runner drives a World from a variable-rate presentation loop. Input edges
// observed by the frontend are collected here and handed to exactly one
// tick, so every press is applied once no matter how many ticks a frame
// runs.
type Runner struct {
	world   *World
	clock   *Clock
	pending core.InputFrame
}

// NewRunner creates a runner for w using the world's tick rate and cap.
func NewRunner(w *World) *Runner {
	sc := w.Config().Simulation
	return &Runner{
		world:   w,
		clock:   NewClock(sc.TickRate, sc.MaxTicksPerFrame),
		pending: core.NewInputFrame(),
	}
}

// Press records an input edge for the next tick.
func (r *Runner) Press(a core.Action) {
	r.pending.Set(a)
}

// Frame advances the clock by elapsed and runs the ticks that became due.
// edges is merged into the pending input first. The first tick consumes
// the pending input and later ticks see none; when no tick runs the input
// stays pending.
func (r *Runner) Frame(elapsed time.Duration, edges core.InputFrame) FrameResult {
	r.pending.Merge(edges)

	var res FrameResult
	ticks := r.clock.Advance(elapsed)
	for i := 0; i < ticks; i++ {
		in := core.InputFrame{}
		if i == 0 {
			in = r.pending.Clone()
			r.pending.Clear()
		}

		step := r.world.Step(in)
		res.Ticks++
		if step.Transition != nil {
			res.Transitions = append(res.Transitions, *step.Transition)
		}
		if step.Ended != nil {
			res.Ended = append(res.Ended, *step.Ended)
		}
		if step.Exit {
			res.Exit = true
			break
		}
	}

	return res
}

// World returns the driven world.
func (r *Runner) World() *World {
	return r.world
}

// Clock returns the runner's clock.
func (r *Runner) Clock() *Clock {
	return r.clock
}
