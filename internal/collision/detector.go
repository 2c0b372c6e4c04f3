// Package collision decides whether the pebble survived the current tick.
package collision

import (
	"github.com/vovakirdan/flappy-pebble/internal/config"
	"github.com/vovakirdan/flappy-pebble/internal/core"
	"github.com/vovakirdan/flappy-pebble/internal/obstacle"
	"github.com/vovakirdan/flappy-pebble/internal/viewport"
)

// Cause describes why a run ended.
type Cause int

const (
	CauseNone     Cause = iota
	CauseFloor          // pebble fell below the viewport
	CauseLower          // hit the lower barrier of an obstacle
	CauseUpper          // hit the upper barrier of an obstacle
)

// String returns the string representation of the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseFloor:
		return "floor"
	case CauseLower:
		return "lower"
	case CauseUpper:
		return "upper"
	default:
		return "unknown"
	}
}

// Result is the outcome of one collision check. At most one cause is
// reported per tick, even when several obstacles are hit.
type Result struct {
	Cause      Cause
	ObstacleID uint64 // Zero unless an obstacle was hit
}

// Hit reports whether the run must end.
func (r Result) Hit() bool {
	return r.Cause != CauseNone
}

// Check tests the pebble against the floor and every live obstacle.
// There is no ceiling: flying above the gap always hits the upper barrier.
func Check(pebble core.Box, obstacles []obstacle.Obstacle, moai config.MoaiConfig, b viewport.Bounds) Result {
	if pebble.CY < b.MinY {
		return Result{Cause: CauseFloor}
	}

	for _, o := range obstacles {
		if !pebble.OverlapsX(o.Box(moai)) {
			continue
		}
		if pebble.Bottom() < o.GapBottom() {
			return Result{Cause: CauseLower, ObstacleID: o.ID}
		}
		if pebble.Top() > o.GapTop(moai) {
			return Result{Cause: CauseUpper, ObstacleID: o.ID}
		}
	}

	return Result{}
}
