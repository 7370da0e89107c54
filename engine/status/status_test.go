package status

import (
	"bytes"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStatus(opts ...StatusBuilderOption) (Status, *scheduler.ManualClock) {
	c := scheduler.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewStatus(append([]StatusBuilderOption{WithClock(c)}, opts...)...), c
}

func TestSuccessMessageExpires(t *testing.T) {
	s, c := newTestStatus()
	s.Report(SeveritySuccess, BuildSucceededMessage)

	msg, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, BuildSucceededMessage, msg.Text)

	c.Advance(2999 * time.Millisecond)
	_, ok = s.Current()
	assert.True(t, ok)

	c.Advance(time.Millisecond)
	_, ok = s.Current()
	assert.False(t, ok)
}

func TestErrorMessagePersists(t *testing.T) {
	s, c := newTestStatus()
	s.Report(SeveritySuccess, BuildSucceededMessage)
	s.Report(SeverityError, "failed to compile fragment shader: 0:3: syntax error")

	c.Advance(time.Hour)
	msg, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, SeverityError, msg.Severity)
	assert.Contains(t, msg.Text, "syntax error")

	s.Clear()
	_, ok = s.Current()
	assert.False(t, ok)
}

func TestSuccessReplacesError(t *testing.T) {
	s, _ := newTestStatus()
	s.Report(SeverityError, "boom")
	s.Report(SeveritySuccess, BuildSucceededMessage)
	msg, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, SeveritySuccess, msg.Severity)
}

func TestNoExpiry(t *testing.T) {
	s, c := newTestStatus(WithSuccessExpiry(0))
	s.Report(SeveritySuccess, "ok")
	c.Advance(time.Hour)
	_, ok := s.Current()
	assert.True(t, ok)
}

func TestWriterEcho(t *testing.T) {
	var buf bytes.Buffer
	s, _ := newTestStatus(WithWriter(&buf, false))
	s.Report(SeverityWarning, "preview disabled")
	s.Report(SeverityInfo, "loaded circle")
	assert.Equal(t, "[warning] preview disabled\n[info] loaded circle\n", buf.String())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "Severity(9)", Severity(9).String())
}
