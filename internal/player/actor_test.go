package player

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/flappy-pebble/internal/config"
)

func TestIntegrateOneTick(t *testing.T) {
	a := &Actor{Velocity: 400}
	a.Integrate(0.1, -400)

	assert.InDelta(t, 360, a.Velocity, 1e-4)
	assert.InDelta(t, 38, a.Y, 1e-4)
	assert.Equal(t, float32(0), a.X)
}

func TestJumpAppliesAfterIntegration(t *testing.T) {
	a := &Actor{Y: 10, Velocity: -100}
	a.Step(0.1, -400, 400, true)

	// Position reflects the old velocity, the jump only shows up next tick.
	assert.InDelta(t, 10-10-2, a.Y, 1e-4)
	assert.Equal(t, float32(400), a.Velocity)

	a.Step(0.1, -400, 400, false)
	assert.InDelta(t, -2+40-2, a.Y, 1e-4)
	assert.InDelta(t, 360, a.Velocity, 1e-4)
}

func TestSpawnWithinStartRange(t *testing.T) {
	cfg := config.DefaultConfig().Pebble
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		a := Spawn(rng, cfg)
		assert.GreaterOrEqual(t, a.Y, cfg.StartYMin)
		assert.Less(t, a.Y, cfg.StartYMax)
		assert.Equal(t, float32(0), a.Velocity)
		assert.Equal(t, float32(0), a.X)
	}
}

func TestSpawnDeterministic(t *testing.T) {
	cfg := config.DefaultConfig().Pebble
	a := Spawn(rand.New(rand.NewSource(42)), cfg)
	b := Spawn(rand.New(rand.NewSource(42)), cfg)
	assert.Equal(t, a, b)
}

func TestBox(t *testing.T) {
	a := &Actor{Y: -80}
	b := a.Box(90, 52)

	assert.Equal(t, float32(-45), b.Left())
	assert.Equal(t, float32(45), b.Right())
	assert.Equal(t, float32(-106), b.Bottom())
	assert.Equal(t, float32(-54), b.Top())
}
