package ui

import "time"

// Clock is the simulated RTC: system time plus an adjustable offset, so
// the set-time workflow works without touching the host clock.
type Clock struct {
	offset time.Duration
}

// NewClock returns a clock tracking host time.
func NewClock() *Clock { return &Clock{} }

// Now returns the simulated wall time.
func (c *Clock) Now() time.Time { return time.Now().Add(c.offset) }

// Set points the simulated clock at t by adjusting the offset.
func (c *Clock) Set(t time.Time) error {
	c.offset = time.Until(t)
	return nil
}
