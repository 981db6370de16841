package bench

import "time"

// Clock gives the time readings of the timed sections. The readings must
// carry a monotonic component, as time.Now does.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock reading time.Now.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Measure runs op between two readings of the clock and returns its result
// with the elapsed time. The error of op is returned untouched. Nothing is
// allocated or logged between the two readings apart from what op does.
func Measure[R any](clock Clock, op func() (R, error)) (R, time.Duration, error) {
	start := clock.Now()
	r, err := op()
	stop := clock.Now()
	return r, stop.Sub(start), err
}
