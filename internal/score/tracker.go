// Package score counts passed obstacles, tracks the best score and
// persists it in the background.
package score

import "github.com/vovakirdan/flappy-pebble/internal/config"

// Tracker holds the score of the current run and the best score seen by
// this process.
type Tracker struct {
	current   uint32
	best      uint32
	isNewBest bool
	latch     config.LatchMode
}

// NewTracker creates a tracker whose best score starts at the loaded value.
// An empty latch mode behaves like LatchOnIncrement.
func NewTracker(best uint32, latch config.LatchMode) *Tracker {
	if latch == "" {
		latch = config.LatchOnIncrement
	}
	return &Tracker{best: best, latch: latch}
}

// Reset starts a new run. The best score is kept.
func (t *Tracker) Reset() {
	t.current = 0
	t.isNewBest = false
}

// Inc counts one passed obstacle. In increment mode the new-best flag
// latches the moment the current score strictly exceeds the best.
func (t *Tracker) Inc() {
	t.current++
	if t.latch == config.LatchOnIncrement && t.current > t.best {
		t.isNewBest = true
	}
}

// Add counts n passed obstacles.
func (t *Tracker) Add(n int) {
	for i := 0; i < n; i++ {
		t.Inc()
	}
}

// Finish ends the run. If the run set a new best, the best score is raised
// to the current score and returned with true.
func (t *Tracker) Finish() (uint32, bool) {
	if t.latch == config.LatchOnRunEnd && t.current > t.best {
		t.isNewBest = true
	}
	if !t.isNewBest || t.current <= t.best {
		return t.best, false
	}
	t.best = t.current
	return t.best, true
}

// Current returns the score of the current run.
func (t *Tracker) Current() uint32 {
	return t.current
}

// Best returns the best score known to this process.
func (t *Tracker) Best() uint32 {
	return t.best
}

// IsNewBest reports whether the current run has beaten the previous best.
func (t *Tracker) IsNewBest() bool {
	return t.isNewBest
}
