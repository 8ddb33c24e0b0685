package common

import (
	"sort"
	"sync"
	"time"
)

// ManualClock only moves when told to. Timers armed on it fire
// synchronously, in deadline order, from inside Advance.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

type manualTimer struct {
	clock    *ManualClock
	deadline time.Time
	task     func()
	stopped  bool
}

func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, deadline: c.now.Add(d), task: f}
	c.timers = append(c.timers, t)
	return t
}

// Set the clock to a specific instant, firing whatever falls due
func (c *ManualClock) Set(now time.Time) {
	c.mu.Lock()
	c.now = now
	sort.SliceStable(c.timers, func(i, j int) bool {
		return c.timers[i].deadline.Before(c.timers[j].deadline)
	})
	var due []*manualTimer
	remaining := c.timers[:0]
	for _, t := range c.timers {
		if t.stopped {
			continue
		}
		if !t.deadline.After(now) {
			due = append(due, t)
		} else {
			remaining = append(remaining, t)
		}
	}
	c.timers = remaining
	c.mu.Unlock()

	for _, t := range due {
		t.task()
	}
}

func (c *ManualClock) Advance(d time.Duration) {
	c.Set(c.Now().Add(d))
}

// Number of timers armed and not yet fired or stopped
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, t := range c.timers {
		if !t.stopped {
			count++
		}
	}
	return count
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	for _, armed := range t.clock.timers {
		if armed == t && !t.stopped {
			t.stopped = true
			return true
		}
	}
	return false
}
