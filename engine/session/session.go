package session

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/scheduler"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/status"
)

// ErrUnknownExample is returned by LoadNamedExample for a name outside the example catalog.
var ErrUnknownExample = errors.New("unknown example")

// session is the implementation of the Session interface.
type session struct {
	mu *sync.Mutex

	name     string
	source   string
	fragment shader.Shader
	revision uint64

	pipeline  pipeline.Pipeline
	status    status.Status
	debouncer scheduler.Debouncer

	clock scheduler.Clock
	start time.Time
	mouse [2]float32

	// Pending configuration consumed by NewSession.
	debounceDelay time.Duration
	post          func(task func())

	contextReported bool
	onChange        func(Session)
}

// Session is the explicit state of one editing session: the fragment source being edited, the
// build pipeline it feeds, the status area, and the pointer position fed to the preview.
//
// Every source change re-analyzes the text (markup and uniform list are always current).
// User edits through SetSource schedule a debounced build; formatting, resetting and loading an
// example replace the source and build at once. A failed build never disturbs the live program.
type Session interface {
	// Name returns the session name, used as the fragment shader key.
	//
	// Returns:
	//   - string: the session name
	Name() string

	// Source returns the current fragment source.
	//
	// Returns:
	//   - string: the source text
	Source() string

	// Revision returns a counter that increments on every source change.
	//
	// Returns:
	//   - uint64: the source revision
	Revision() uint64

	// Fragment returns the analyzed snapshot of the current source.
	//
	// Returns:
	//   - shader.Shader: the fragment shader snapshot
	Fragment() shader.Shader

	// SetSource replaces the source as a user edit and restarts the build debounce.
	//
	// Parameters:
	//   - text: the new fragment source
	SetSource(text string)

	// RequestBuild cancels any pending debounced build and builds the current source now.
	// Success and failure are also reported to the status area.
	//
	// Returns:
	//   - error: nil on success, pipeline.ErrContextUnavailable when previewing is disabled,
	//     or the build error
	RequestBuild() error

	// RequestFormat reformats the source and builds it.
	//
	// Returns:
	//   - error: the build error, see RequestBuild
	RequestFormat() error

	// ResetToDefault restores the default fragment source and builds it.
	//
	// Returns:
	//   - error: the build error, see RequestBuild
	ResetToDefault() error

	// LoadNamedExample replaces the source with a catalog example and builds it.
	// An unknown name leaves the session untouched.
	//
	// Parameters:
	//   - name: the example name, see shader.ExampleNames
	//
	// Returns:
	//   - error: ErrUnknownExample for an unknown name, otherwise the build error
	LoadNamedExample(name string) error

	// Markup returns the class-span markup of the current source.
	//
	// Returns:
	//   - string: the annotated markup
	Markup() string

	// RenderMarkup renders the current source through a chroma formatter and style.
	//
	// Parameters:
	//   - w: the destination writer
	//   - formatterName: the chroma formatter name
	//   - styleName: the chroma style name
	//
	// Returns:
	//   - error: an error if rendering fails
	RenderMarkup(w io.Writer, formatterName, styleName string) error

	// UniformNames returns the names of the uniforms declared in the current source.
	//
	// Returns:
	//   - []string: the names in source order, duplicates included, never nil
	UniformNames() []string

	// UniformList returns the uniform list as displayed, with a sentinel entry when empty.
	//
	// Returns:
	//   - []string: the display entries
	UniformList() []string

	// Status returns the session's status area.
	//
	// Returns:
	//   - status.Status: the status area
	Status() status.Status

	// Pipeline returns the build pipeline the session feeds.
	//
	// Returns:
	//   - pipeline.Pipeline: the pipeline
	Pipeline() pipeline.Pipeline

	// SetMouse records the cursor position, normalized to [0,1] with Y pointing up.
	//
	// Parameters:
	//   - x: cursor x in window coordinates
	//   - y: cursor y in window coordinates
	//   - width: the window width in the same coordinates
	//   - height: the window height in the same coordinates
	SetMouse(x, y float64, width, height int)

	// FrameUniforms returns the values of the built-in uniforms for a frame.
	//
	// Parameters:
	//   - width: the framebuffer width in pixels
	//   - height: the framebuffer height in pixels
	//
	// Returns:
	//   - common.FrameUniforms: elapsed seconds, resolution and mouse position
	FrameUniforms(width, height int) common.FrameUniforms

	// Close cancels any pending build and releases the live program.
	Close()
}

var _ Session = &session{}

// NewSession creates a new Session feeding p, starting from the default fragment source.
// No build runs until RequestBuild (or an edit's debounce) asks for one.
//
// Parameters:
//   - p: the build pipeline; a pipeline without a context disables previewing
//   - options: a variadic list of SessionBuilderOption functions to configure the session
//
// Returns:
//   - Session: the new session
func NewSession(p pipeline.Pipeline, options ...SessionBuilderOption) Session {
	if p == nil {
		panic("session: NewSession requires a pipeline")
	}
	s := &session{
		mu:            &sync.Mutex{},
		name:          "fragment",
		source:        shader.DefaultFragmentSource(),
		pipeline:      p,
		clock:         scheduler.RealClock(),
		debounceDelay: scheduler.DefaultDebounceDelay,
		post:          func(task func()) { task() },
	}
	for _, opt := range options {
		opt(s)
	}
	if s.status == nil {
		s.status = status.NewStatus(status.WithClock(s.clock))
	}
	s.start = s.clock.Now()
	s.fragment = shader.NewShader(s.name, shader.ShaderTypeFragment, s.source)
	s.debouncer = scheduler.NewDebouncer(s.debouncedBuild,
		scheduler.WithName(s.name+" build"),
		scheduler.WithClock(s.clock),
		scheduler.WithDelay(s.debounceDelay),
		scheduler.WithPost(s.post),
	)
	return s
}

func (s *session) Name() string {
	return s.name
}

func (s *session) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

func (s *session) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

func (s *session) Fragment() shader.Shader {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fragment
}

func (s *session) SetSource(text string) {
	s.replaceSource(text)
	s.debouncer.Trigger()
}

// replaceSource swaps in a new source snapshot and notifies the change callback.
func (s *session) replaceSource(text string) {
	s.mu.Lock()
	s.source = text
	s.fragment = shader.NewShader(s.name, shader.ShaderTypeFragment, text)
	s.revision++
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(s)
	}
}

func (s *session) debouncedBuild() {
	// Failures are already on the status area.
	_ = s.build()
}

func (s *session) RequestBuild() error {
	s.debouncer.Stop()
	return s.build()
}

func (s *session) build() error {
	if !s.pipeline.Available() {
		s.mu.Lock()
		first := !s.contextReported
		s.contextReported = true
		s.mu.Unlock()
		if first {
			s.status.Report(status.SeverityError, pipeline.ErrContextUnavailable.Error())
		}
		return pipeline.ErrContextUnavailable
	}

	fragment := s.Fragment()
	if _, err := s.pipeline.Build(fragment); err != nil {
		msg := err.Error()
		if d, ok := pipeline.DiagnosticFromError(err); ok {
			msg = d.Message
		}
		s.status.Report(status.SeverityError, msg)
		return err
	}
	s.status.Report(status.SeveritySuccess, status.BuildSucceededMessage)
	return nil
}

func (s *session) RequestFormat() error {
	s.replaceSource(shader.Format(s.Source()))
	return s.RequestBuild()
}

func (s *session) ResetToDefault() error {
	s.replaceSource(shader.DefaultFragmentSource())
	return s.RequestBuild()
}

func (s *session) LoadNamedExample(name string) error {
	src, ok := shader.Example(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownExample, name)
	}
	s.replaceSource(src)
	return s.RequestBuild()
}

func (s *session) Markup() string {
	return s.Fragment().Markup()
}

func (s *session) RenderMarkup(w io.Writer, formatterName, styleName string) error {
	return shader.Highlight(w, s.Source(), formatterName, styleName)
}

func (s *session) UniformNames() []string {
	uniforms := s.Fragment().Uniforms()
	names := make([]string, 0, len(uniforms))
	for _, u := range uniforms {
		names = append(names, u.Name)
	}
	return names
}

func (s *session) UniformList() []string {
	return shader.UniformDisplayList(s.UniformNames())
}

func (s *session) Status() status.Status {
	return s.status
}

func (s *session) Pipeline() pipeline.Pipeline {
	return s.pipeline
}

func (s *session) SetMouse(x, y float64, width, height int) {
	m := common.NormalizeCursor(x, y, width, height)
	s.mu.Lock()
	s.mouse = m
	s.mu.Unlock()
}

func (s *session) FrameUniforms(width, height int) common.FrameUniforms {
	s.mu.Lock()
	defer s.mu.Unlock()
	return common.FrameUniforms{
		Time:       float32(s.clock.Now().Sub(s.start).Seconds()),
		Resolution: [2]float32{float32(width), float32(height)},
		Mouse:      s.mouse,
	}
}

func (s *session) Close() {
	s.debouncer.Stop()
	s.pipeline.Close()
}
