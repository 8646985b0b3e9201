package domain

import "time"

//go:generate mockgen -source=interfaces.go -destination=../mocks/clock_mock.go -package=mocks

// Clock supplies the time used to stamp a manifest
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock backed by time.Now
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time {
	return time.Now()
}
