package window

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned by NewWindow when no window or OpenGL context can be created,
// for example on a headless machine.
var ErrUnavailable = errors.New("window: no display or OpenGL context available")

// Window provides platform windowing, the OpenGL context and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetResizeCallback sets the function called when the framebuffer is resized.
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press and repeat events.
	// Parameters:
	//   - callback: function receiving the virtual key code, see common.Key*
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetMouseMoveCallback sets the callback for cursor movement.
	// Parameters:
	//   - callback: function receiving the cursor x, y position in window coordinates
	SetMouseMoveCallback(callback func(x, y float64))

	// SetTitle replaces the window title.
	// Parameters:
	//   - title: the new title
	SetTitle(title string)

	// MakeContextCurrent binds the window's OpenGL context to the calling thread.
	MakeContextCurrent()

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// PollEvents processes pending window events without blocking and dispatches callbacks.
	// Returns:
	//   - bool: true if the window is still running afterwards
	PollEvents() bool

	// IsRunning returns true if the window is still active.
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// Width returns the current framebuffer width in pixels.
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	// Returns:
	//   - int: height in pixels
	Height() int

	// WindowSize returns the window size in screen coordinates, the space cursor positions are reported in.
	// Returns:
	//   - int: width in screen coordinates
	//   - int: height in screen coordinates
	WindowSize() (int, int)
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// minWidth and minHeight bound resizing from below.
	minWidth  int
	minHeight int

	// width is the current framebuffer width in pixels.
	width int

	// height is the current framebuffer height in pixels.
	height int

	// vsync waits for vertical blank on SwapBuffers when set.
	vsync bool

	// hidden creates the window without showing it, for offscreen shader builds.
	hidden bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onResize is called when the framebuffer is resized.
	onResize func(width, height int)

	// onKeyDown is called when a key is pressed or repeats.
	onKeyDown func(keyCode uint32)

	// onMouseMove is called when the cursor moves within the window.
	onMouseMove func(x, y float64)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with an OpenGL 2.1 context current on the calling thread.
// The calling goroutine is locked to its OS thread and must run every later GL call.
// Parameters:
//   - options: functional options to configure the window
// Returns:
//   - Window: the configured, visible window
//   - error: an error wrapping ErrUnavailable if the platform cannot provide a window or context
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:     "oxy shaderlab",
		minWidth:  200,
		minHeight: 150,
		width:     800,
		height:    600,
		vsync:     true,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return w, nil
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y float64)) {
	w.onMouseMove = callback
}

func (w *engineWindow) SetTitle(title string) {
	w.title = title
	platformSetTitle(w, title)
}

func (w *engineWindow) MakeContextCurrent() {
	platformMakeContextCurrent(w)
}

func (w *engineWindow) SwapBuffers() {
	platformSwapBuffers(w)
}

func (w *engineWindow) PollEvents() bool {
	return platformProcessMessages(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) WindowSize() (int, int) {
	return platformWindowSize(w)
}
