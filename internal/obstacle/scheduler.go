// Package obstacle spawns, scrolls and removes moai pairs.
package obstacle

import (
	"math/rand"

	"github.com/vovakirdan/flappy-pebble/internal/config"
	"github.com/vovakirdan/flappy-pebble/internal/core"
	"github.com/vovakirdan/flappy-pebble/internal/viewport"
)

// Obstacle is one moai pair: a lower barrier whose top edge sits at
// GapCenter and an upper barrier whose bottom edge sits VerticalGap above it.
type Obstacle struct {
	ID        uint64  // Stable identity, never reused
	X         float32 // Horizontal center
	GapCenter float32 // Top of the lower barrier, fixed at spawn
	Passed    bool    // Set once when the obstacle crosses the player
}

// Box returns the horizontal extent of the obstacle as a box spanning the
// whole gap band. Only the x extent is used for overlap tests.
func (o Obstacle) Box(cfg config.MoaiConfig) core.Box {
	return core.Box{
		CX: o.X,
		CY: o.GapCenter + cfg.VerticalGap/2,
		HW: cfg.HalfWidth(),
		HH: cfg.VerticalGap / 2,
	}
}

// GapBottom returns the lowest safe y inside the gap.
func (o Obstacle) GapBottom() float32 {
	return o.GapCenter
}

// GapTop returns the highest safe y inside the gap.
func (o Obstacle) GapTop(cfg config.MoaiConfig) float32 {
	return o.GapCenter + cfg.VerticalGap
}

// Scheduler owns the ordered set of live obstacles. Obstacles are kept
// left to right in spawn order.
type Scheduler struct {
	cfg       config.MoaiConfig
	rng       *rand.Rand
	obstacles []Obstacle
	nextID    uint64
}

// NewScheduler creates an empty scheduler that samples gap heights from rng.
func NewScheduler(cfg config.MoaiConfig, rng *rand.Rand) *Scheduler {
	return &Scheduler{
		cfg:       cfg,
		rng:       rng,
		obstacles: make([]Obstacle, 0, 8),
		nextID:    1,
	}
}

// Reset removes every obstacle.
func (s *Scheduler) Reset() {
	s.obstacles = s.obstacles[:0]
}

// Len returns the number of live obstacles.
func (s *Scheduler) Len() int {
	return len(s.obstacles)
}

// Obstacles returns a copy of the live obstacles.
func (s *Scheduler) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// SpawnInitial places the first obstacle of a run far enough ahead to give
// the player a reaction window: three times the smaller half extent of the
// viewport, but never closer than just off the right edge.
func (s *Scheduler) SpawnInitial(b viewport.Bounds) Obstacle {
	x := max(3*b.HalfExtent(), s.entryX(b))
	return s.spawn(x)
}

// Advance scrolls every obstacle left by speed*dt, scores the ones that
// crossed playerX, removes the ones fully past the left edge and spawns a
// new one when the spacing behind the rightmost obstacle allows it.
// It returns the number of obstacles passed this tick.
func (s *Scheduler) Advance(dt, speed float32, b viewport.Bounds, playerX float32) int {
	passed := 0
	shift := speed * dt

	for i := range s.obstacles {
		o := &s.obstacles[i]
		before := o.X
		o.X -= shift
		if !o.Passed && before >= playerX && o.X < playerX {
			o.Passed = true
			passed++
		}
	}

	limit := b.MinX - s.cfg.HalfWidth()
	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X >= limit {
			live = append(live, o)
		}
	}
	s.obstacles = live

	if s.spawnDue(b) {
		s.spawn(s.entryX(b))
	}

	return passed
}

// spawnDue reports whether the gap between the entry point and the
// rightmost obstacle has reached the configured spacing.
func (s *Scheduler) spawnDue(b viewport.Bounds) bool {
	if len(s.obstacles) == 0 {
		return true
	}
	rightmost := s.obstacles[0].X
	for _, o := range s.obstacles[1:] {
		rightmost = max(rightmost, o.X)
	}
	return s.entryX(b)-rightmost >= s.cfg.HorizontalSpacing
}

// entryX is where new obstacles appear: just past the right edge.
func (s *Scheduler) entryX(b viewport.Bounds) float32 {
	return b.MaxX + s.cfg.HalfWidth()
}

func (s *Scheduler) spawn(x float32) Obstacle {
	o := Obstacle{
		ID:        s.nextID,
		X:         x,
		GapCenter: s.cfg.GapMin + s.rng.Float32()*(s.cfg.GapMax-s.cfg.GapMin),
	}
	s.nextID++
	s.obstacles = append(s.obstacles, o)
	return o
}
