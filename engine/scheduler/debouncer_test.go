package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loop is a minimal single-threaded task queue standing in for the engine loop.
type loop struct {
	tasks []func()
}

func (l *loop) post(task func()) {
	l.tasks = append(l.tasks, task)
}

func (l *loop) drain() {
	for len(l.tasks) > 0 {
		task := l.tasks[0]
		l.tasks = l.tasks[1:]
		task()
	}
}

func TestDebouncerBurstRunsOnceAfterLastTrigger(t *testing.T) {
	c := NewManualClock(epoch)
	var runs []time.Duration
	d := NewDebouncer(func() { runs = append(runs, c.Now().Sub(epoch)) },
		WithClock(c), WithDelay(time.Second))

	// Five edits 300ms apart.
	for i := 0; i < 5; i++ {
		d.Trigger()
		c.Advance(300 * time.Millisecond)
	}
	assert.Empty(t, runs)
	assert.True(t, d.Pending())

	// The last edit happened at 1200ms, so the run lands at 2200ms.
	c.Advance(5 * time.Second)
	require.Len(t, runs, 1)
	assert.Equal(t, 2200*time.Millisecond, runs[0])
	assert.False(t, d.Pending())
}

func TestDebouncerSeparateBursts(t *testing.T) {
	c := NewManualClock(epoch)
	count := 0
	d := NewDebouncer(func() { count++ }, WithClock(c), WithDelay(100*time.Millisecond))

	d.Trigger()
	c.Advance(time.Second)
	d.Trigger()
	d.Trigger()
	c.Advance(time.Second)
	assert.Equal(t, 2, count)
}

func TestDebouncerStop(t *testing.T) {
	c := NewManualClock(epoch)
	count := 0
	d := NewDebouncer(func() { count++ }, WithClock(c))
	assert.Equal(t, DefaultDebounceDelay, d.Delay())

	assert.False(t, d.Stop())
	d.Trigger()
	assert.True(t, d.Stop())
	c.Advance(10 * time.Second)
	assert.Zero(t, count)
	assert.Zero(t, c.Pending())
}

func TestDebouncerDropsStaleFireQueuedOnLoop(t *testing.T) {
	c := NewManualClock(epoch)
	l := &loop{}
	count := 0
	d := NewDebouncer(func() { count++ }, WithClock(c), WithPost(l.post), WithDelay(time.Second))

	d.Trigger()
	c.Advance(time.Second)
	require.Len(t, l.tasks, 1, "expiry is posted, not run inline")
	assert.Zero(t, count)

	// An edit arrives before the loop runs the queued fire.
	d.Trigger()
	l.drain()
	assert.Zero(t, count)
	assert.True(t, d.Pending())

	c.Advance(time.Second)
	l.drain()
	assert.Equal(t, 1, count)
}

func TestDebouncerStopCancelsQueuedFire(t *testing.T) {
	c := NewManualClock(epoch)
	l := &loop{}
	count := 0
	d := NewDebouncer(func() { count++ }, WithClock(c), WithPost(l.post))

	d.Trigger()
	c.Advance(DefaultDebounceDelay)
	d.Stop()
	l.drain()
	assert.Zero(t, count)
}

func TestDebouncerOptions(t *testing.T) {
	d := NewDebouncer(func() {}, WithDelay(-time.Second), WithName("build"))
	assert.Equal(t, DefaultDebounceDelay, d.Delay())
	assert.Panics(t, func() { NewDebouncer(nil) })
}
