package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickReportsAfterInterval(t *testing.T) {
	p := NewProfilerWithInterval(time.Millisecond)
	assert.Zero(t, p.Last().FPS)

	reported := false
	deadline := time.Now().Add(5 * time.Second)
	for !reported && time.Now().Before(deadline) {
		reported = p.Tick()
	}
	assert.True(t, reported)
	assert.Greater(t, p.Last().FPS, 0.0)
	assert.Greater(t, p.Last().SysMB, 0.0)
}

func TestTickBeforeInterval(t *testing.T) {
	p := NewProfilerWithInterval(time.Hour)
	assert.False(t, p.Tick())
	assert.Equal(t, time.Second, NewProfilerWithInterval(0).updateInterval)
}
