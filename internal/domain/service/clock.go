package service

import "time"

// Clock returns the current time. Tests substitute a fixed instant.
type Clock func() time.Time

// NewSystemClock returns the wall clock.
func NewSystemClock() Clock {
	return time.Now
}
