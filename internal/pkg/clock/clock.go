package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// ZonedClock reports wall-clock time in a fixed location, e.g. the shop's.
type ZonedClock struct {
	base Clock
	loc  *time.Location
}

func NewZonedClock(base Clock, loc *time.Location) *ZonedClock {
	if loc == nil {
		loc = time.UTC
	}
	return &ZonedClock{base: base, loc: loc}
}

func (c *ZonedClock) Now() time.Time {
	return c.base.Now().In(c.loc)
}

func (c *ZonedClock) Location() *time.Location {
	return c.loc
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
