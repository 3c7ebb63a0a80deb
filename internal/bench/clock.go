package bench

import "time"

// Clock reports the current time. The system clock carries a monotonic
// reading, so differences between two Now calls are immune to wall clock
// adjustments.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns the process clock.
func SystemClock() Clock {
	return systemClock{}
}
