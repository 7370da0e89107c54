package renderer

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/pipeline"
)

const (
	// DefaultQuadSize is the half extent of the preview quad in clip space.
	DefaultQuadSize float32 = 0.8
)

// DefaultClearColor is the color behind the preview quad.
var DefaultClearColor = [4]float32{0, 0, 0, 1}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend
	pipeline    pipeline.Pipeline

	quadSize   float32
	clearColor [4]float32

	width, height int
	quadReady     bool

	// drawnGeneration is the generation of the program drawn last frame, used to log program changes once.
	drawnGeneration uint64
}

// Renderer draws the preview quad with the live program of a build Pipeline.
//
// The Renderer owns the graphics backend. The backend doubles as the pipeline.GraphicsContext that
// builds compile and link against, so both must run on the thread that owns the context.
// While no program is live every frame is cleared and the draw is skipped.
type Renderer interface {
	// Backend returns the graphics backend.
	//
	// Returns:
	//   - RendererBackend: the backend used for drawing
	Backend() RendererBackend

	// GraphicsContext returns the backend as the capability a build Pipeline needs.
	//
	// Returns:
	//   - pipeline.GraphicsContext: the graphics context
	GraphicsContext() pipeline.GraphicsContext

	// Pipeline returns the pipeline whose live program is drawn.
	//
	// Returns:
	//   - pipeline.Pipeline: the attached pipeline, or nil if none is attached
	Pipeline() pipeline.Pipeline

	// SetPipeline attaches the pipeline whose live program is drawn each frame.
	//
	// Parameters:
	//   - p: the pipeline to draw from
	SetPipeline(p pipeline.Pipeline)

	// Resize records the framebuffer size used for the viewport.
	// This should be called whenever the window's framebuffer changes size.
	//
	// Parameters:
	//   - width: the new width of the framebuffer in pixels
	//   - height: the new height of the framebuffer in pixels
	Resize(width, height int)

	// Size returns the framebuffer size last passed to Resize.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	Size() (int, int)

	// DrawFrame clears the framebuffer and, if a program is live, binds it, writes the frame
	// uniforms it uses and draws the quad. Uniforms and attributes the program does not use are skipped.
	//
	// Parameters:
	//   - u: the per-frame uniform values
	//
	// Returns:
	//   - bool: true if the quad was drawn, false if the draw was skipped
	DrawFrame(u common.FrameUniforms) bool

	// Release frees the backend objects owned by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer over the graphics context current on the calling thread.
//
// Parameters:
//   - backendType: the backend implementation to use
//   - options: a variadic list of RendererBuilderOption functions to configure the renderer
//
// Returns:
//   - Renderer: the new renderer
//   - error: an error wrapping pipeline.ErrContextUnavailable if the backend cannot be initialized
func NewRenderer(backendType RendererBackendType, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		quadSize:    DefaultQuadSize,
		clearColor:  DefaultClearColor,
	}

	for _, opt := range options {
		opt(r)
	}

	if r.backend == nil {
		switch backendType {
		case BackendTypeOpenGL:
			fallthrough
		default:
			b, err := newGLRendererBackend()
			if err != nil {
				return nil, err
			}
			r.backend = b
		}
	}
	return r, nil
}

func (r *renderer) Backend() RendererBackend {
	return r.backend
}

func (r *renderer) GraphicsContext() pipeline.GraphicsContext {
	return r.backend
}

func (r *renderer) Pipeline() pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipeline
}

func (r *renderer) SetPipeline(p pipeline.Pipeline) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pipeline = p
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = width, height
}

func (r *renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) DrawFrame(u common.FrameUniforms) bool {
	r.mu.Lock()
	p := r.pipeline
	width, height := r.width, r.height
	r.mu.Unlock()

	if !r.quadReady {
		r.backend.UploadQuad(r.quadSize)
		r.quadReady = true
	}

	r.backend.Viewport(width, height)
	r.backend.Clear(r.clearColor)

	if p == nil {
		return false
	}
	live := p.Live()
	if live == nil {
		return false
	}
	if gen := live.Generation(); gen != r.drawnGeneration {
		common.Logger().Debug("drawing new program", "generation", gen, "fragment", live.Fragment().Key())
		r.drawnGeneration = gen
	}

	r.backend.UseProgram(live.Handle())
	r.backend.SetUniform1f(live.Uniform(pipeline.UniformTime), u.Time)
	r.backend.SetUniform2f(live.Uniform(pipeline.UniformResolution), u.Resolution)
	r.backend.SetUniform2f(live.Uniform(pipeline.UniformMouse), u.Mouse)
	r.backend.BindAttribute(live.Attribute(pipeline.AttributePosition))
	r.backend.Draw()
	return true
}

func (r *renderer) Release() {
	r.backend.Release()
	r.quadReady = false
}
