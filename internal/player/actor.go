// Package player integrates the vertical motion of the pebble.
package player

import (
	"math/rand"

	"github.com/vovakirdan/flappy-pebble/internal/config"
	"github.com/vovakirdan/flappy-pebble/internal/core"
)

// Actor is the player entity. It never moves horizontally; the world
// scrolls past it instead.
type Actor struct {
	X        float32
	Y        float32
	Velocity float32
}

// Spawn places a fresh actor at a random height in [StartYMin, StartYMax)
// with zero velocity.
func Spawn(rng *rand.Rand, cfg config.PebbleConfig) *Actor {
	span := cfg.StartYMax - cfg.StartYMin
	return &Actor{
		X: 0,
		Y: cfg.StartYMin + rng.Float32()*span,
	}
}

// Integrate advances the actor by one tick of length dt under constant
// acceleration g using exact kinematics.
func (a *Actor) Integrate(dt, g float32) {
	a.Y += a.Velocity*dt + g*dt*dt/2
	a.Velocity += g * dt
}

// Jump replaces the current velocity with v0. Called after Integrate so the
// impulse takes effect on the following tick.
func (a *Actor) Jump(v0 float32) {
	a.Velocity = v0
}

// Step runs one physics tick: integration first, then the jump if one was
// requested.
func (a *Actor) Step(dt, g, v0 float32, jump bool) {
	a.Integrate(dt, g)
	if jump {
		a.Jump(v0)
	}
}

// Box returns the actor's bounding box for the given sprite size.
func (a *Actor) Box(w, h float32) core.Box {
	return core.NewBox(a.X, a.Y, w, h)
}
