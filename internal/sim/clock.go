package sim

import "time"

// Clock converts variable frame times into a whole number of fixed ticks.
// The remainder carries over to the next frame.
type Clock struct {
	step        time.Duration
	maxTicks    int
	accumulator time.Duration
}

// NewClock creates a clock for tickRate ticks per second that runs at most
// maxTicks ticks per frame. Backlog beyond the cap is dropped to avoid a
// spiral of death after a long stall.
func NewClock(tickRate, maxTicks int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxTicks <= 0 {
		maxTicks = 1
	}
	return &Clock{
		step:     time.Second / time.Duration(tickRate),
		maxTicks: maxTicks,
	}
}

// Advance adds elapsed wall time and returns how many ticks are due.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		c.accumulator += elapsed
	}

	ticks := int(c.accumulator / c.step)
	c.accumulator -= time.Duration(ticks) * c.step

	if ticks > c.maxTicks {
		ticks = c.maxTicks
	}
	return ticks
}

// Step returns the fixed tick duration.
func (c *Clock) Step() time.Duration {
	return c.step
}
