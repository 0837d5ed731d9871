package clock

import (
	"sync"
	"time"
)

// System is a UTC wall clock that never goes backwards within the process.
// Instants are truncated to microseconds, the precision of a Postgres timestamp.
type System struct {
	mu   sync.Mutex
	last time.Time
}

// NewSystem returns a clock backed by time.Now.
func NewSystem() *System {
	return &System{}
}

func (c *System) Now() time.Time {
	now := time.Now().UTC().Truncate(time.Microsecond)
	c.mu.Lock()
	defer c.mu.Unlock()
	if now.Before(c.last) {
		return c.last
	}
	c.last = now
	return now
}
