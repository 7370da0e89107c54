package scheduler

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
)

// DefaultDebounceDelay is the quiet period after the last trigger before the action runs.
const DefaultDebounceDelay = 1000 * time.Millisecond

// debouncer is the implementation of the Debouncer interface.
type debouncer struct {
	mu sync.Mutex

	clock  Clock
	delay  time.Duration
	post   func(task func())
	action func()
	name   string

	timer Timer
	// generation increments on every Trigger and Stop. A fire carrying an older generation is stale.
	generation uint64
	pending    bool
}

// Debouncer is a resettable one-shot timer. Every Trigger restarts the quiet period, so a burst
// of triggers runs the action once, one delay after the last trigger.
//
// The action does not run on the timer goroutine: on expiry the Debouncer hands it to the post
// function, normally the engine loop's Post, and re-checks staleness when the posted task runs.
// A Trigger or Stop that lands between expiry and execution therefore still cancels the run.
type Debouncer interface {
	// Trigger starts or restarts the quiet period.
	Trigger()

	// Stop cancels a pending run.
	//
	// Returns:
	//   - bool: true if a run was pending
	Stop() bool

	// Pending reports whether a run is scheduled.
	//
	// Returns:
	//   - bool: true between a Trigger and the resulting run or Stop
	Pending() bool

	// Delay returns the quiet period.
	//
	// Returns:
	//   - time.Duration: the configured delay
	Delay() time.Duration
}

var _ Debouncer = &debouncer{}

// NewDebouncer creates a new Debouncer for action.
//
// Parameters:
//   - action: the function to run after the quiet period
//   - opts: a variadic list of DebouncerBuilderOption functions to configure the debouncer
//
// Returns:
//   - Debouncer: a new idle Debouncer
func NewDebouncer(action func(), opts ...DebouncerBuilderOption) Debouncer {
	if action == nil {
		panic("scheduler: NewDebouncer requires an action")
	}
	d := &debouncer{
		clock:  RealClock(),
		delay:  DefaultDebounceDelay,
		action: action,
		name:   "debounce",
		post:   func(task func()) { task() },
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.generation++
	d.pending = true
	gen := d.generation
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.post(func() { d.fire(gen) })
	})
	common.Logger().Debug("debounce restarted", "name", d.name, "delay", d.delay)
}

func (d *debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.generation || !d.pending {
		d.mu.Unlock()
		common.Logger().Debug("stale debounce fire dropped", "name", d.name)
		return
	}
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.action()
}

func (d *debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	was := d.pending
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.generation++
	d.pending = false
	return was
}

func (d *debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *debouncer) Delay() time.Duration {
	return d.delay
}
