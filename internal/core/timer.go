package core

import "time"

// MaxTPS bounds the tick rate so the step interval stays at least one
// microsecond.
const MaxTPS = 1_000_000

// Clock gates simulation steps to a fixed rate, independent of how often the
// host renders frames.
type Clock struct {
	tps      int
	interval time.Duration
	last     time.Time
	stepped  bool
}

// NewClock constructs a Clock targeting the given ticks per second. The
// first call to ShouldStep reports true until RecordStep has been called.
func NewClock(tps int) *Clock {
	c := &Clock{}
	c.SetTPS(tps)
	return c
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60 and rates
// above MaxTPS are clamped.
func (c *Clock) SetTPS(tps int) {
	switch {
	case tps <= 0:
		tps = 60
	case tps > MaxTPS:
		tps = MaxTPS
	}
	c.tps = tps
	c.interval = time.Second / time.Duration(tps)
}

// TPS returns the configured ticks per second.
func (c *Clock) TPS() int { return c.tps }

// Interval returns the minimum time between accepted steps.
func (c *Clock) Interval() time.Duration { return c.interval }

// ShouldStep reports whether at least one interval has elapsed since the
// last recorded step.
func (c *Clock) ShouldStep(now time.Time) bool {
	if !c.stepped {
		return true
	}
	return now.Sub(c.last) >= c.interval
}

// RecordStep marks now as the time of the last accepted step.
func (c *Clock) RecordStep(now time.Time) {
	c.last = now
	c.stepped = true
}
