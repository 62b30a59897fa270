package clock

import "time"

// Clock supplies the current instant. All time-dependent components take a
// Clock instead of calling time.Now directly so tests can control time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// New returns a Clock backed by the system wall clock.
func New() Clock {
	return realClock{}
}

// Manual is a hand-driven Clock for tests.
type Manual struct {
	current time.Time
}

// NewManual creates a Manual clock starting at the given instant.
func NewManual(start time.Time) *Manual {
	return &Manual{current: start}
}

func (m *Manual) Now() time.Time {
	return m.current
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

// Set jumps the clock to the given instant.
func (m *Manual) Set(t time.Time) {
	m.current = t
}
