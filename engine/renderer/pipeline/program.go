package pipeline

import (
	"maps"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
)

const (
	// UniformTime is the elapsed-seconds uniform.
	UniformTime = "u_time"
	// UniformResolution is the framebuffer-size uniform.
	UniformResolution = "u_resolution"
	// UniformMouse is the normalized cursor-position uniform.
	UniformMouse = "u_mouse"
	// AttributePosition is the quad vertex position attribute.
	AttributePosition = "a_position"
)

// DefaultUniformNames is the fixed uniform set resolved for every program.
var DefaultUniformNames = []string{UniformTime, UniformResolution, UniformMouse}

// DefaultAttributeNames is the fixed attribute set resolved for every program.
var DefaultAttributeNames = []string{AttributePosition}

// program is the implementation of the Program interface.
// Its handle table is filled before the program is published and never changes afterwards.
type program struct {
	handle         ProgramHandle
	vertexStage    StageHandle
	fragmentStage  StageHandle
	fragmentShader shader.Shader
	generation     uint64

	uniforms   map[string]Location
	attributes map[string]Location
}

// Program is a successfully built, linked program together with its resolved handle table.
// It owns its two stage objects and the program object; the pipeline releases all three
// when the program is superseded or the pipeline is closed.
type Program interface {
	// Handle returns the linked program handle.
	//
	// Returns:
	//   - ProgramHandle: the program handle to bind before drawing
	Handle() ProgramHandle

	// Stages returns the vertex and fragment stage handles owned by the program.
	//
	// Returns:
	//   - StageHandle: the vertex stage
	//   - StageHandle: the fragment stage
	Stages() (StageHandle, StageHandle)

	// Uniform returns the resolved location of a uniform from the fixed set.
	//
	// Parameters:
	//   - name: the uniform name, e.g. UniformTime
	//
	// Returns:
	//   - Location: the location, or InvalidLocation if the uniform is inactive or was not requested
	Uniform(name string) Location

	// Attribute returns the resolved location of an attribute from the fixed set.
	//
	// Parameters:
	//   - name: the attribute name, e.g. AttributePosition
	//
	// Returns:
	//   - Location: the location, or InvalidLocation if the attribute is inactive or was not requested
	Attribute(name string) Location

	// Uniforms returns a copy of the uniform handle table.
	//
	// Returns:
	//   - map[string]Location: uniform name to location, inactive uniforms included as InvalidLocation
	Uniforms() map[string]Location

	// Attributes returns a copy of the attribute handle table.
	//
	// Returns:
	//   - map[string]Location: attribute name to location, inactive attributes included as InvalidLocation
	Attributes() map[string]Location

	// Fragment returns the fragment shader the program was built from.
	//
	// Returns:
	//   - shader.Shader: the fragment source snapshot
	Fragment() shader.Shader

	// Generation returns the build number that produced this program, starting at 1.
	//
	// Returns:
	//   - uint64: the build generation
	Generation() uint64
}

var _ Program = &program{}

func (p *program) Handle() ProgramHandle {
	return p.handle
}

func (p *program) Stages() (StageHandle, StageHandle) {
	return p.vertexStage, p.fragmentStage
}

func (p *program) Uniform(name string) Location {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return InvalidLocation
}

func (p *program) Attribute(name string) Location {
	if loc, ok := p.attributes[name]; ok {
		return loc
	}
	return InvalidLocation
}

func (p *program) Uniforms() map[string]Location {
	return maps.Clone(p.uniforms)
}

func (p *program) Attributes() map[string]Location {
	return maps.Clone(p.attributes)
}

func (p *program) Fragment() shader.Shader {
	return p.fragmentShader
}

func (p *program) Generation() uint64 {
	return p.generation
}

// resolve fills the handle table against the program's own handle.
func (p *program) resolve(ctx GraphicsContext, uniformNames, attributeNames []string) {
	p.uniforms = make(map[string]Location, len(uniformNames))
	for _, name := range uniformNames {
		p.uniforms[name] = ctx.UniformLocation(p.handle, name)
	}
	p.attributes = make(map[string]Location, len(attributeNames))
	for _, name := range attributeNames {
		p.attributes[name] = ctx.AttributeLocation(p.handle, name)
	}
}

// dispose releases the program object and both stage objects.
func (p *program) dispose(ctx GraphicsContext) {
	ctx.DeleteProgram(p.handle)
	ctx.DeleteStage(p.vertexStage)
	ctx.DeleteStage(p.fragmentStage)
}
