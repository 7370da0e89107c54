package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
	"github.com/go-gl/gl/v2.1/gl"
)

// quadVertexCount is the vertex count of the triangle strip quad.
const quadVertexCount = 4

type glRendererBackendImpl struct {
	quadBuffer uint32
}

type glRendererBackend interface {
	frameBackend

	// QuadBuffer returns the name of the quad vertex buffer, or 0 before UploadQuad.
	//
	// Returns:
	//   - uint32: the GL buffer name
	QuadBuffer() uint32
}

var _ glRendererBackend = &glRendererBackendImpl{}

// newGLRendererBackend loads the OpenGL function pointers for the context current on the calling
// thread. A failure means no usable context exists and is reported as ErrContextUnavailable.
func newGLRendererBackend() (*glRendererBackendImpl, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", pipeline.ErrContextUnavailable, err)
	}
	return &glRendererBackendImpl{}, nil
}

func (b *glRendererBackendImpl) QuadBuffer() uint32 {
	return b.quadBuffer
}

func (b *glRendererBackendImpl) CompileStage(stage shader.ShaderType, source string) (pipeline.StageHandle, error) {
	kind := uint32(gl.FRAGMENT_SHADER)
	if stage == shader.ShaderTypeVertex {
		kind = gl.VERTEX_SHADER
	}

	h := gl.CreateShader(kind)
	if h == 0 {
		return 0, errors.New("glCreateShader returned 0")
	}
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(h, 1, csources, nil)
	free()
	gl.CompileShader(h)

	var status int32
	gl.GetShaderiv(h, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(h, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(h, logLength, nil, gl.Str(log))
		gl.DeleteShader(h)
		return 0, errors.New(trimInfoLog(log))
	}
	return pipeline.StageHandle(h), nil
}

func (b *glRendererBackendImpl) Link(vertex, fragment pipeline.StageHandle) (pipeline.ProgramHandle, error) {
	p := gl.CreateProgram()
	if p == 0 {
		return 0, errors.New("glCreateProgram returned 0")
	}
	gl.AttachShader(p, uint32(vertex))
	gl.AttachShader(p, uint32(fragment))
	gl.LinkProgram(p)

	var status int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(p, logLength, nil, gl.Str(log))
		gl.DeleteProgram(p)
		return 0, errors.New(trimInfoLog(log))
	}
	return pipeline.ProgramHandle(p), nil
}

func (b *glRendererBackendImpl) UniformLocation(program pipeline.ProgramHandle, name string) pipeline.Location {
	return pipeline.Location(gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00")))
}

func (b *glRendererBackendImpl) AttributeLocation(program pipeline.ProgramHandle, name string) pipeline.Location {
	return pipeline.Location(gl.GetAttribLocation(uint32(program), gl.Str(name+"\x00")))
}

func (b *glRendererBackendImpl) DeleteStage(stage pipeline.StageHandle) {
	gl.DeleteShader(uint32(stage))
}

func (b *glRendererBackendImpl) DeleteProgram(program pipeline.ProgramHandle) {
	gl.DeleteProgram(uint32(program))
}

func (b *glRendererBackendImpl) UseProgram(program pipeline.ProgramHandle) {
	gl.UseProgram(uint32(program))
}

func (b *glRendererBackendImpl) SetUniform1f(loc pipeline.Location, v float32) {
	if !loc.Valid() {
		return
	}
	gl.Uniform1f(int32(loc), v)
}

func (b *glRendererBackendImpl) SetUniform2f(loc pipeline.Location, v [2]float32) {
	if !loc.Valid() {
		return
	}
	gl.Uniform2f(int32(loc), v[0], v[1])
}

func (b *glRendererBackendImpl) UploadQuad(size float32) {
	quad := quadVertices(size)
	if b.quadBuffer == 0 {
		gl.GenBuffers(1, &b.quadBuffer)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.quadBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad[:]), gl.STATIC_DRAW)
}

func (b *glRendererBackendImpl) BindAttribute(loc pipeline.Location) {
	if !loc.Valid() || b.quadBuffer == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.quadBuffer)
	gl.EnableVertexAttribArray(uint32(loc))
	gl.VertexAttribPointer(uint32(loc), 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
}

func (b *glRendererBackendImpl) Draw() {
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, quadVertexCount)
}

func (b *glRendererBackendImpl) Clear(color [4]float32) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (b *glRendererBackendImpl) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *glRendererBackendImpl) Release() {
	if b.quadBuffer != 0 {
		gl.DeleteBuffers(1, &b.quadBuffer)
		b.quadBuffer = 0
	}
}

// quadVertices returns the corners of a centered square with half extent size, in triangle strip order.
func quadVertices(size float32) [quadVertexCount * 2]float32 {
	return [quadVertexCount * 2]float32{
		-size, -size,
		size, -size,
		-size, size,
		size, size,
	}
}

// trimInfoLog strips the NUL terminator and trailing whitespace the driver appends to info logs.
func trimInfoLog(log string) string {
	return strings.TrimRight(log, "\x00\r\n\t ")
}
