package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/profiler"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/window"
)

// engine implements the Engine interface.
// One goroutine, the caller of Run, executes every posted task, window event and frame.
type engine struct {
	frameRateChannel chan time.Duration // Channel for dynamic frame rate updates

	running atomic.Bool

	queueMu sync.Mutex
	queue   []func()
	wake    chan struct{}

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameRate     time.Duration
	frameCallback func(deltaTime float32)
}

// Engine is the host event loop of the lab.
//
// Run blocks the calling goroutine and turns it into the only goroutine that touches session
// state and the graphics context. Other goroutines (timers, file watchers) hand work to it
// with Post. Each frame the engine polls window events, then calls the frame callback.
type Engine interface {
	// Window returns the underlying window.
	// Returns:
	//   - window.Window: the window instance, or nil for a headless engine
	Window() window.Window

	// Post queues a task to run on the loop goroutine. Safe to call from any goroutine,
	// including from a task. Tasks run in the order they were posted.
	// Parameters:
	//   - task: the function to run
	Post(task func())

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameRate sets the frame rate in frames per second.
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetFrameRate(fps float64)

	// SetFrameCallback registers the function called each frame.
	// Parameters:
	//   - callback: function to call each frame, receiving the delta time in seconds
	SetFrameCallback(callback func(deltaTime float32))

	// Running reports whether Run is executing.
	// Returns:
	//   - bool: true between the start of Run and its return
	Running() bool

	// Run starts the loop. It blocks until Quit is called or the window closes.
	Run()

	// Quit signals the loop to stop. Tasks still queued are dropped.
	// Safe to call multiple times and from any goroutine; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
// Parameters:
//   - options: functional options for engine configuration (profiling, frame rate, window)
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		frameRateChannel: make(chan time.Duration, 1),
		wake:             make(chan struct{}, 1),
		quitChannel:      make(chan struct{}),
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		frameRate:        time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Post(task func()) {
	if task == nil {
		return
	}
	e.queueMu.Lock()
	e.queue = append(e.queue, task)
	e.queueMu.Unlock()

	select {
	case e.wake <- struct{}{}:
	default:
	}
}

func (e *engine) Running() bool {
	return e.running.Load()
}

func (e *engine) Run() {
	e.running.Store(true)
	defer e.running.Store(false)

	ticker := time.NewTicker(e.frameRate)
	defer ticker.Stop()

	lastFrame := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-e.wake:
			e.drain()
		case newRate := <-e.frameRateChannel:
			ticker.Reset(newRate)
			e.frameRate = newRate
		case <-ticker.C:
			if e.window != nil && !e.window.PollEvents() {
				e.signalQuit()
				continue
			}
			// Events may have posted work; run it before drawing so the frame reflects it.
			e.drain()

			now := time.Now()
			dt := float32(now.Sub(lastFrame).Seconds())
			lastFrame = now

			e.runGuarded("frame", func() {
				if e.frameCallback != nil {
					e.frameCallback(dt)
				}
			})

			if e.profilingEnabled && e.profiler != nil {
				e.profiler.Tick()
			}
		}
	}
}

// drain runs every queued task, including tasks queued by the tasks it runs.
func (e *engine) drain() {
	for {
		select {
		case <-e.quitChannel:
			return
		default:
		}

		e.queueMu.Lock()
		if len(e.queue) == 0 {
			e.queueMu.Unlock()
			return
		}
		task := e.queue[0]
		e.queue[0] = nil
		e.queue = e.queue[1:]
		e.queueMu.Unlock()

		e.runGuarded("task", task)
	}
}

// runGuarded runs fn and converts a panic into a logged error and a shutdown, so a bug in a
// callback stops the loop cleanly instead of crashing while the GL context is current.
func (e *engine) runGuarded(kind string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			common.Logger().Error("engine loop recovered from panic", "kind", kind, "panic", fmt.Sprint(r))
			e.signalQuit()
		}
	}()
	fn()
}

// Quit signals the loop to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal the loop to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetFrameRate sets the frame rate in frames per second.
// If the engine is running, the change takes effect on the next loop iteration.
func (e *engine) SetFrameRate(fps float64) {
	newRate := frameDuration(fps)

	if e.running.Load() {
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.frameRateChannel <- newRate:
		default:
			select {
			case <-e.frameRateChannel:
			default:
			}
			e.frameRateChannel <- newRate
		}
	} else {
		e.frameRate = newRate
	}
}

// SetFrameCallback registers the function called each frame.
func (e *engine) SetFrameCallback(callback func(deltaTime float32)) {
	e.frameCallback = callback
}

// frameDuration converts a frame rate to a ticker period, treating non-positive rates as 60 fps.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
