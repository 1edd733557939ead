// Package clock abstracts wall-clock time so services can be tested with a
// fixed or advancing time source.
package clock

import "time"

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock. Times are returned in UTC so records
// compare equal after a round trip through storage.
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current UTC time without a monotonic reading
func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Round(0)
}
