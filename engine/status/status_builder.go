package status

import (
	"io"
	"time"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/scheduler"
)

// StatusBuilderOption is a functional option used to configure a Status during construction.
type StatusBuilderOption func(*status)

// WithClock sets the clock used to timestamp and expire messages. Defaults to scheduler.RealClock.
//
// Parameters:
//   - clock: the clock to use
//
// Returns:
//   - StatusBuilderOption: a function that sets the clock for this status area
func WithClock(clock scheduler.Clock) StatusBuilderOption {
	return func(s *status) {
		s.clock = clock
	}
}

// WithSuccessExpiry sets how long success messages stay visible. Zero keeps them until replaced.
//
// Parameters:
//   - d: the expiry duration
//
// Returns:
//   - StatusBuilderOption: a function that sets the success expiry for this status area
func WithSuccessExpiry(d time.Duration) StatusBuilderOption {
	return func(s *status) {
		if d >= 0 {
			s.successExpiry = d
		}
	}
}

// WithWriter echoes every report to w as a single line.
//
// Parameters:
//   - w: the destination writer
//   - colored: whether lines are colored by severity
//
// Returns:
//   - StatusBuilderOption: a function that sets the echo writer for this status area
func WithWriter(w io.Writer, colored bool) StatusBuilderOption {
	return func(s *status) {
		s.out = w
		for _, c := range s.palette {
			if colored {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}
