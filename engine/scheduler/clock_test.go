package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManualClockFiresInDeadlineOrder(t *testing.T) {
	c := NewManualClock(epoch)
	var order []string
	var firedAt []time.Duration
	record := func(name string) func() {
		return func() {
			order = append(order, name)
			firedAt = append(firedAt, c.Now().Sub(epoch))
		}
	}
	c.AfterFunc(300*time.Millisecond, record("c"))
	c.AfterFunc(100*time.Millisecond, record("a"))
	c.AfterFunc(200*time.Millisecond, record("b"))
	c.AfterFunc(900*time.Millisecond, record("late"))

	c.Advance(500 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}, firedAt)
	assert.Equal(t, epoch.Add(500*time.Millisecond), c.Now())
	assert.Equal(t, 1, c.Pending())
}

func TestManualClockStop(t *testing.T) {
	c := NewManualClock(epoch)
	fired := false
	tm := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop())
	c.Advance(2 * time.Second)
	assert.False(t, fired)
	assert.Zero(t, c.Pending())
}

func TestManualClockChainedTimers(t *testing.T) {
	c := NewManualClock(epoch)
	count := 0
	var tick func()
	tick = func() {
		count++
		c.AfterFunc(time.Second, tick)
	}
	c.AfterFunc(time.Second, tick)

	c.Advance(3500 * time.Millisecond)
	assert.Equal(t, 3, count)
}

func TestRealClock(t *testing.T) {
	c := RealClock()
	var fired atomic.Bool
	done := make(chan struct{})
	c.AfterFunc(time.Millisecond, func() {
		fired.Store(true)
		close(done)
	})
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "real clock timer never fired")
	}
	assert.True(t, fired.Load())
	assert.False(t, c.Now().IsZero())
}
