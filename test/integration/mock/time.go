package mock

import (
	"sync"
	"time"
)

// Clock is a controllable adapter.Clock. It follows the wall clock until
// Freeze is called.
type Clock struct {
	mu     sync.RWMutex
	frozen *time.Time
}

// NewClock returns a clock that follows the wall clock.
func NewClock() *Clock {
	return &Clock{}
}

// Freeze pins Now to t.
func (c *Clock) Freeze(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = &t
}

// Release returns the clock to wall time.
func (c *Clock) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = nil
}

// Now reports the pinned instant or the wall clock.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.frozen != nil {
		return *c.frozen
	}
	return time.Now().UTC()
}
