package validator

import "time"

// Clock is the time source a Policy validates against.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now returns the current UTC instant.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	t time.Time
}

// NewFixedClock returns a Clock frozen at t.
func NewFixedClock(t time.Time) FixedClock {
	return FixedClock{t: t}
}

// Now returns the frozen instant.
func (c FixedClock) Now() time.Time {
	return c.t
}
