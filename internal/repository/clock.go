package repository

import (
	"sync"
	"time"
)

// Clock hands out creation timestamps for new rows.
//
// time.Now().UTC() drops the monotonic reading, so a wall clock stepped back
// (NTP, VM resume) would give a later row an earlier created_at. Clock never
// goes backwards: when the wall clock has not moved past the last stamp it
// returns last + 1µs. Microseconds are the finest unit Postgres keeps.
type Clock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Stamp calls insert with the next timestamp while holding the clock.
// Rows inserted through one Clock therefore get ids and timestamps in the
// same order. The error from insert is returned unchanged.
func (c *Clock) Stamp(insert func(now time.Time) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(time.Microsecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return insert(t)
}
