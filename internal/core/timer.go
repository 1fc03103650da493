package core

import "time"

// Clock measures elapsed time between frames using the monotonic clock.
type Clock struct {
	now  func() time.Time
	last time.Time
	dt   float64
}

// NewClock returns a Clock backed by time.Now.
func NewClock() *Clock { return NewClockWith(time.Now) }

// NewClockWith returns a Clock reading time from now. Tests substitute a fake
// source to produce synthetic frame deltas.
func NewClockWith(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Start resets the reference point so the next Tick measures from now.
func (c *Clock) Start() {
	c.last = c.now()
	c.dt = 0
}

// Tick advances the clock and returns the seconds elapsed since the previous
// Tick (or Start). The first Tick on an unstarted clock returns 0.
func (c *Clock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
	}
	c.dt = now.Sub(c.last).Seconds()
	c.last = now
	return c.dt
}

// Delta returns the value produced by the most recent Tick.
func (c *Clock) Delta() float64 { return c.dt }

// maxBacklog caps how many ticks a stalled loop may owe.
const maxBacklog = 4

// FixedStep paces a loop at a steady tick rate.
type FixedStep struct {
	step    time.Duration
	pending time.Duration
	last    time.Time
}

// NewFixedStep paces at tps ticks per second, 60 when tps <= 0. The first
// Advance is always due.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	step := time.Second / time.Duration(tps)
	return &FixedStep{step: step, pending: step}
}

// Step returns the duration of a single tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Advance credits the time since the previous call and consumes one tick if
// one is due.
func (f *FixedStep) Advance(now time.Time) bool {
	if !f.last.IsZero() {
		f.pending += now.Sub(f.last)
	}
	f.last = now
	if limit := maxBacklog * f.step; f.pending > limit {
		f.pending = limit
	}
	if f.pending < f.step {
		return false
	}
	f.pending -= f.step
	return true
}

// Remaining returns how long until the next tick is due.
func (f *FixedStep) Remaining() time.Duration {
	if f.pending >= f.step {
		return 0
	}
	return f.step - f.pending
}
