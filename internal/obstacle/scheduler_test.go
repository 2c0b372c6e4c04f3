package obstacle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappy-pebble/internal/config"
	"github.com/vovakirdan/flappy-pebble/internal/viewport"
)

func newTestScheduler(seed int64) *Scheduler {
	return NewScheduler(config.DefaultConfig().Moai, rand.New(rand.NewSource(seed)))
}

func TestSpawnInitialPosition(t *testing.T) {
	s := newTestScheduler(1)

	// Wide viewport: 3*min(1536, 512) = 1536 is clamped up to max_x + half.
	o := s.SpawnInitial(viewport.NewBounds(3072, 1024))
	assert.Equal(t, float32(1586), o.X)

	// Square viewport: 3*500 beats 500 + 50.
	s.Reset()
	o = s.SpawnInitial(viewport.NewBounds(1000, 1000))
	assert.Equal(t, float32(1500), o.X)
	assert.Equal(t, 1, s.Len())
}

func TestSpawnHonorsSpacing(t *testing.T) {
	s := newTestScheduler(1)
	b := viewport.NewBounds(3072, 1024)
	s.SpawnInitial(b)

	// 200 units per call: 1386, 1186, 986 leave less than 800 behind the entry point.
	for i := 0; i < 3; i++ {
		s.Advance(1, 200, b, 0)
		require.Equal(t, 1, s.Len(), "no spawn before the rightmost reaches 786")
	}

	s.Advance(1, 200, b, 0)
	obs := s.Obstacles()
	require.Len(t, obs, 2)
	assert.Equal(t, float32(786), obs[0].X)
	assert.Equal(t, float32(1586), obs[1].X)
	assert.NotEqual(t, obs[0].ID, obs[1].ID)
}

func TestGapHeightsWithinRange(t *testing.T) {
	cfg := config.DefaultConfig().Moai
	s := newTestScheduler(3)
	b := viewport.NewBounds(3072, 1024)
	s.SpawnInitial(b)

	for i := 0; i < 2000; i++ {
		s.Advance(1.0/60, 200, b, 0)
	}
	for _, o := range s.Obstacles() {
		assert.GreaterOrEqual(t, o.GapCenter, cfg.GapMin)
		assert.Less(t, o.GapCenter, cfg.GapMax)
	}
}

func TestPassCountedExactlyOnce(t *testing.T) {
	s := newTestScheduler(1)
	b := viewport.NewBounds(3072, 1024)
	s.obstacles = append(s.obstacles, Obstacle{ID: 99, X: 1e-6, GapCenter: 0})

	assert.Equal(t, 0, s.Advance(1, 0, b, 0), "no movement, no pass")
	assert.Equal(t, 1, s.Advance(1, 1e-5, b, 0))

	// Drifting back over the player and across again never scores twice.
	assert.Equal(t, 0, s.Advance(1, -1e-4, b, 0))
	assert.Equal(t, 0, s.Advance(1, 1e-3, b, 0))

	obs := s.Obstacles()
	require.NotEmpty(t, obs)
	assert.Equal(t, uint64(99), obs[0].ID)
	assert.True(t, obs[0].Passed)
}

func TestPassesOverAFullRun(t *testing.T) {
	s := newTestScheduler(5)
	b := viewport.NewBounds(3072, 1024)
	s.SpawnInitial(b)

	passed := 0
	seen := map[uint64]bool{}
	for i := 0; i < 240; i++ {
		passed += s.Advance(0.25, 200, b, 0)
		for _, o := range s.Obstacles() {
			if o.Passed {
				seen[o.ID] = true
			}
		}
	}

	// 50 units per tick: the first obstacle passes on tick 32 and a new one
	// follows every 16 ticks, so tick 240 is the 14th pass.
	assert.Equal(t, 14, passed)
	assert.Equal(t, passed, len(seen))
}

func TestRemovalPastLeftEdge(t *testing.T) {
	s := newTestScheduler(1)
	b := viewport.NewBounds(3072, 1024)
	s.obstacles = append(s.obstacles,
		Obstacle{ID: 1, X: -1586, Passed: true},
		Obstacle{ID: 2, X: -1585, Passed: true},
		Obstacle{ID: 3, X: 1000},
	)

	s.Advance(1, 0.5, b, 0)

	var ids []uint64
	for _, o := range s.Obstacles() {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []uint64{2, 3}, ids)
}

func TestObstaclesReturnsCopy(t *testing.T) {
	s := newTestScheduler(1)
	s.SpawnInitial(viewport.NewBounds(3072, 1024))

	obs := s.Obstacles()
	obs[0].X = -9999
	assert.NotEqual(t, float32(-9999), s.Obstacles()[0].X)
}

func TestDeterministicGaps(t *testing.T) {
	b := viewport.NewBounds(3072, 1024)
	a, c := newTestScheduler(11), newTestScheduler(11)
	a.SpawnInitial(b)
	c.SpawnInitial(b)
	for i := 0; i < 600; i++ {
		a.Advance(1.0/60, 200, b, 0)
		c.Advance(1.0/60, 200, b, 0)
	}
	assert.Equal(t, a.Obstacles(), c.Obstacles())
}
