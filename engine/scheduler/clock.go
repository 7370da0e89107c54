// clock.go implements the time sources the scheduler runs on: the wall clock for the running
// lab and a manually advanced clock that makes debounce and expiry behavior deterministic.
package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Timer is a pending callback created by Clock.AfterFunc.
type Timer interface {
	// Stop prevents the callback from firing.
	//
	// Returns:
	//   - bool: true if the call stopped the timer, false if it already fired or was stopped
	Stop() bool
}

// Clock is a source of time and one-shot timers.
type Clock interface {
	// Now returns the current time.
	//
	// Returns:
	//   - time.Time: the current time according to this clock
	Now() time.Time

	// AfterFunc calls f once, on its own goroutine or the advancing goroutine, after d has elapsed.
	//
	// Parameters:
	//   - d: the delay
	//   - f: the callback
	//
	// Returns:
	//   - Timer: a handle that can cancel the callback
	AfterFunc(d time.Duration, f func()) Timer
}

// realClock is the wall clock.
type realClock struct{}

var _ Clock = realClock{}

// RealClock returns the wall clock backed by the time package.
//
// Returns:
//   - Clock: the wall clock
func RealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualClock is a Clock that only moves when Advance is called. Timers fire synchronously on the
// goroutine calling Advance, in deadline order, with Now set to their deadline.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

var _ Clock = &ManualClock{}

type manualTimer struct {
	clock    *ManualClock
	deadline time.Time
	seq      uint64
	f        func()
	done     bool
}

// NewManualClock creates a ManualClock starting at start.
//
// Parameters:
//   - start: the initial time
//
// Returns:
//   - *ManualClock: the new clock
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &manualTimer{clock: c, deadline: c.now.Add(d), seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Pending returns the number of timers that have neither fired nor been stopped.
//
// Returns:
//   - int: the pending timer count
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Advance moves the clock forward by d, firing every timer whose deadline is reached. Timers
// scheduled by a firing callback also fire if their deadline falls within the advanced window.
//
// Parameters:
//   - d: how far to move the clock
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		t := c.nextDueLocked(target)
		if t == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		t.done = true
		c.removeLocked(t)
		if t.deadline.After(c.now) {
			c.now = t.deadline
		}
		c.mu.Unlock()

		t.f()
	}
}

// nextDueLocked returns the earliest timer due at or before target.
func (c *ManualClock) nextDueLocked(target time.Time) *manualTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.Slice(c.timers, func(i, j int) bool {
		if c.timers[i].deadline.Equal(c.timers[j].deadline) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].deadline.Before(c.timers[j].deadline)
	})
	if t := c.timers[0]; !t.deadline.After(target) {
		return t
	}
	return nil
}

func (c *ManualClock) removeLocked(t *manualTimer) {
	for i, pending := range c.timers {
		if pending == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.clock.removeLocked(t)
	return true
}
