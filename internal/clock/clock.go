package clock

import "time"

// Timer is the subset of *time.Timer the schedulers need.
type Timer interface {
	Stop() bool
}

// Clock lets pollers run against wall time in production and a fake in tests.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func Real() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
