package testutil

import (
	"sort"
	"sync"
	"time"

	"burpwatch/internal/clock"
)

// FakeClock is a manually advanced clock. Timers fire synchronously inside
// Advance, in deadline order, on the calling goroutine.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	nextID int
	timers []*fakeTimer
	// Scheduled records every delay passed to AfterFunc.
	scheduled []time.Duration
}

type fakeTimer struct {
	clock    *FakeClock
	id       int
	deadline time.Time
	fn       func()
	stopped  bool
	fired    bool
}

var _ clock.Clock = (*FakeClock)(nil)

func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	t := &fakeTimer{clock: c, id: c.nextID, deadline: c.now.Add(d), fn: f}
	c.timers = append(c.timers, t)
	c.scheduled = append(c.scheduled, d)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.clock.removeLocked(t)
	return true
}

func (c *FakeClock) removeLocked(t *fakeTimer) {
	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

// Advance moves time forward by d and runs every timer that became due,
// including timers armed by callbacks as long as they fall inside the window.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		sort.SliceStable(c.timers, func(i, j int) bool {
			if c.timers[i].deadline.Equal(c.timers[j].deadline) {
				return c.timers[i].id < c.timers[j].id
			}
			return c.timers[i].deadline.Before(c.timers[j].deadline)
		})
		if len(c.timers) == 0 || c.timers[0].deadline.After(target) {
			c.now = target
			c.mu.Unlock()
			return
		}
		t := c.timers[0]
		c.timers = c.timers[1:]
		t.fired = true
		if t.deadline.After(c.now) {
			c.now = t.deadline
		}
		c.mu.Unlock()

		t.fn()
	}
}

// Pending returns the number of armed timers.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// NextDelay returns the delay until the earliest armed timer.
func (c *FakeClock) NextDelay() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.timers) == 0 {
		return 0, false
	}
	earliest := c.timers[0].deadline
	for _, t := range c.timers[1:] {
		if t.deadline.Before(earliest) {
			earliest = t.deadline
		}
	}
	return earliest.Sub(c.now), true
}

// Scheduled returns a copy of every delay requested so far.
func (c *FakeClock) Scheduled() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.scheduled))
	copy(out, c.scheduled)
	return out
}
