package echeance

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// Urgency, reminder and feed computations take "today" from it instead of
// reading the wall clock inside the pure functions.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
