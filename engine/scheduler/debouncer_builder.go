package scheduler

import "time"

// DebouncerBuilderOption is a functional option used to configure a Debouncer during construction.
type DebouncerBuilderOption func(*debouncer)

// WithDelay sets the quiet period. Non-positive values keep DefaultDebounceDelay.
//
// Parameters:
//   - delay: the quiet period after the last trigger
//
// Returns:
//   - DebouncerBuilderOption: a function that sets the delay for this debouncer
func WithDelay(delay time.Duration) DebouncerBuilderOption {
	return func(d *debouncer) {
		if delay > 0 {
			d.delay = delay
		}
	}
}

// WithClock sets the clock the quiet period is measured on. Defaults to RealClock.
//
// Parameters:
//   - clock: the clock to use
//
// Returns:
//   - DebouncerBuilderOption: a function that sets the clock for this debouncer
func WithClock(clock Clock) DebouncerBuilderOption {
	return func(d *debouncer) {
		d.clock = clock
	}
}

// WithPost sets the function expired runs are handed to, such as an event loop's Post.
// Defaults to running the action directly on the timer goroutine.
//
// Parameters:
//   - post: the function that schedules a task
//
// Returns:
//   - DebouncerBuilderOption: a function that sets the post function for this debouncer
func WithPost(post func(task func())) DebouncerBuilderOption {
	return func(d *debouncer) {
		d.post = post
	}
}

// WithName sets the name used in log records.
//
// Parameters:
//   - name: the debouncer name
//
// Returns:
//   - DebouncerBuilderOption: a function that sets the name for this debouncer
func WithName(name string) DebouncerBuilderOption {
	return func(d *debouncer) {
		d.name = name
	}
}
