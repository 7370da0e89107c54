package renderer

import "github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/pipeline"

// RendererBackendType identifies the graphics backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeOpenGL selects the OpenGL 2.1 backend. The lab's shaders are GLSL 1.10 /
	// GLSL ES 1.00 sources, which every 2.1 context accepts.
	BackendTypeOpenGL RendererBackendType = iota
)

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected graphics API.
type RendererBackend interface {
	glRendererBackend
}

// frameBackend holds the per-frame drawing operations shared by every backend.
// The build-side operations come from pipeline.GraphicsContext.
type frameBackend interface {
	pipeline.GraphicsContext

	// UseProgram binds a linked program for subsequent draws.
	//
	// Parameters:
	//   - program: the program to bind
	UseProgram(program pipeline.ProgramHandle)

	// SetUniform1f writes a float uniform. Invalid locations are ignored.
	//
	// Parameters:
	//   - loc: the uniform location
	//   - v: the value
	SetUniform1f(loc pipeline.Location, v float32)

	// SetUniform2f writes a vec2 uniform. Invalid locations are ignored.
	//
	// Parameters:
	//   - loc: the uniform location
	//   - v: the value
	SetUniform2f(loc pipeline.Location, v [2]float32)

	// UploadQuad (re)creates the vertex buffer holding the full-screen quad.
	//
	// Parameters:
	//   - size: the half extent of the quad in clip space
	UploadQuad(size float32)

	// BindAttribute points a vertex attribute at the quad buffer. Invalid locations are ignored.
	//
	// Parameters:
	//   - loc: the attribute location
	BindAttribute(loc pipeline.Location)

	// Draw draws the quad as a four vertex triangle strip.
	Draw()

	// Clear clears the color buffer.
	//
	// Parameters:
	//   - color: RGBA clear color
	Clear(color [4]float32)

	// Viewport sets the viewport to the framebuffer size.
	//
	// Parameters:
	//   - width: the framebuffer width in pixels
	//   - height: the framebuffer height in pixels
	Viewport(width, height int)

	// Release frees backend-owned objects such as the quad buffer.
	Release()
}
