package glide

import "time"

// Clock reports the current time in seconds. Properties and groups read it
// once per Update so every branch of the update sees the same instant.
type Clock interface {
	Now() float64
}

var processStart = time.Now()

type systemClock struct{}

// Now returns the seconds elapsed since the package was initialized. The
// reading uses the monotonic clock, so wall-clock adjustments do not jump
// running transitions.
func (systemClock) Now() float64 {
	return time.Since(processStart).Seconds()
}

// SystemClock is the default clock for properties and groups.
var SystemClock Clock = systemClock{}

// ManualClock is a clock that only moves when told to. Frame-stepped hosts
// advance it by their fixed tick, and tests use it for deterministic time.
type ManualClock struct {
	t float64
}

// NewManualClock returns a ManualClock reading start.
func NewManualClock(start float64) *ManualClock {
	return &ManualClock{t: start}
}

// Now returns the clock's current reading.
func (c *ManualClock) Now() float64 { return c.t }

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float64) { c.t += dt }

// Set moves the clock to t.
func (c *ManualClock) Set(t float64) { c.t = t }
