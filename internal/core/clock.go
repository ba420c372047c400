package core

import "time"

// Clock gates simulation steps to a fixed cadence independent of how often
// the platform calls it. At most one step is granted per call and missed time
// is dropped rather than replayed.
type Clock struct {
	tick time.Duration
	last time.Time
	set  bool
}

// NewClock creates a clock for the given tick rate (steps per second).
// Non-positive rates fall back to 60.
func NewClock(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Clock{tick: time.Second / time.Duration(tickRate)}
}

// Tick returns the fixed step duration.
func (c *Clock) Tick() time.Duration {
	return c.tick
}

// Due reports whether a step should run at now. The first call always runs.
// A granted step re-anchors the clock at now, so a late callback does not
// cause catch-up steps.
func (c *Clock) Due(now time.Time) bool {
	if !c.set {
		c.last = now
		c.set = true
		return true
	}
	if now.Sub(c.last) < c.tick {
		return false
	}
	c.last = now
	return true
}

// Reset forgets the last anchor; the next Due call runs immediately.
func (c *Clock) Reset() {
	c.set = false
}
