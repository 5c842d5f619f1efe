package clock

import "time"

// Clock supplies the current instant to code that makes time-based decisions.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// System returns a Clock backed by the wall clock.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed time.Time

// Now returns the pinned instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
