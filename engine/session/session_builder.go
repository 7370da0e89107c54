package session

import (
	"time"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/scheduler"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/status"
)

// SessionBuilderOption is a functional option used to configure a Session during construction.
type SessionBuilderOption func(*session)

// WithName sets the session name, used as the key of every fragment snapshot. Defaults to "fragment".
//
// Parameters:
//   - name: the session name
//
// Returns:
//   - SessionBuilderOption: a function that sets the name for this session
func WithName(name string) SessionBuilderOption {
	return func(s *session) {
		if name != "" {
			s.name = name
		}
	}
}

// WithSource sets the initial fragment source instead of the default one.
//
// Parameters:
//   - source: the initial source
//
// Returns:
//   - SessionBuilderOption: a function that sets the initial source for this session
func WithSource(source string) SessionBuilderOption {
	return func(s *session) {
		s.source = source
	}
}

// WithStatus sets the status area builds report to. Defaults to a new status.Status on the session clock.
//
// Parameters:
//   - st: the status area
//
// Returns:
//   - SessionBuilderOption: a function that sets the status area for this session
func WithStatus(st status.Status) SessionBuilderOption {
	return func(s *session) {
		s.status = st
	}
}

// WithClock sets the clock for the build debounce and the time uniform. Defaults to scheduler.RealClock.
//
// Parameters:
//   - clock: the clock to use
//
// Returns:
//   - SessionBuilderOption: a function that sets the clock for this session
func WithClock(clock scheduler.Clock) SessionBuilderOption {
	return func(s *session) {
		s.clock = clock
	}
}

// WithDebounceDelay sets the quiet period between the last edit and the automatic build.
// Defaults to scheduler.DefaultDebounceDelay.
//
// Parameters:
//   - d: the quiet period
//
// Returns:
//   - SessionBuilderOption: a function that sets the debounce delay for this session
func WithDebounceDelay(d time.Duration) SessionBuilderOption {
	return func(s *session) {
		s.debounceDelay = d
	}
}

// WithPost sets the function debounced builds are handed to, normally the engine loop's Post,
// so builds run on the thread owning the graphics context.
//
// Parameters:
//   - post: the task scheduling function
//
// Returns:
//   - SessionBuilderOption: a function that sets the post function for this session
func WithPost(post func(task func())) SessionBuilderOption {
	return func(s *session) {
		s.post = post
	}
}

// WithChangeCallback registers a function called after every source change, for refreshing
// highlighted views and the uniform list.
//
// Parameters:
//   - callback: the function to call with the session
//
// Returns:
//   - SessionBuilderOption: a function that sets the change callback for this session
func WithChangeCallback(callback func(Session)) SessionBuilderOption {
	return func(s *session) {
		s.onChange = callback
	}
}
