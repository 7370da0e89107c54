package renderer

import (
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/pipeline"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPipeline attaches the pipeline whose live program is drawn.
//
// Parameters:
//   - p: the Pipeline to draw from
//
// Returns:
//   - RendererBuilderOption: a function that applies the pipeline option to a renderer
func WithPipeline(p pipeline.Pipeline) RendererBuilderOption {
	return func(r *renderer) {
		r.pipeline = p
	}
}

// WithQuadSize sets the half extent of the preview quad in clip space. Defaults to DefaultQuadSize.
// Values outside (0, 1] are ignored.
//
// Parameters:
//   - size: the half extent of the quad
//
// Returns:
//   - RendererBuilderOption: a function that applies the quad size option to a renderer
func WithQuadSize(size float32) RendererBuilderOption {
	return func(r *renderer) {
		if size > 0 && size <= 1 {
			r.quadSize = size
		}
	}
}

// WithClearColor sets the RGBA color the framebuffer is cleared to each frame.
//
// Parameters:
//   - color: the clear color
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color option to a renderer
func WithClearColor(color [4]float32) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = color
	}
}

// WithSize sets the initial framebuffer size.
//
// Parameters:
//   - width: the framebuffer width in pixels
//   - height: the framebuffer height in pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the size option to a renderer
func WithSize(width, height int) RendererBuilderOption {
	return func(r *renderer) {
		r.width, r.height = width, height
	}
}

// WithBackend supplies a ready backend instead of initializing one for the current context.
//
// Parameters:
//   - b: the backend to draw with
//
// Returns:
//   - RendererBuilderOption: a function that applies the backend option to a renderer
func WithBackend(b RendererBackend) RendererBuilderOption {
	return func(r *renderer) {
		r.backend = b
	}
}
