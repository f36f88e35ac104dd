package testutil

import (
	"sync"
	"time"
)

// Clock is a manually advanced time source for injecting into `now` fields.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts a Clock at an RFC3339 timestamp and panics on bad input.
func NewClock(rfc3339 string) *Clock {
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		panic(err)
	}
	return &Clock{now: t.UTC()}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time.
func (c *Clock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}
