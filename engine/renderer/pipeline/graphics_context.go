package pipeline

import "github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"

// StageHandle is an opaque reference to a compiled shader stage owned by a GraphicsContext.
type StageHandle uint32

// ProgramHandle is an opaque reference to a linked program owned by a GraphicsContext.
type ProgramHandle uint32

// Location is a resolved uniform or attribute binding location inside a linked program.
type Location int32

// InvalidLocation marks a uniform or attribute that is absent from a program, either
// undeclared or optimized out by the driver. Callers skip it, it is never an error.
const InvalidLocation Location = -1

// Valid reports whether the location refers to an active uniform or attribute.
func (l Location) Valid() bool {
	return l >= 0
}

// GraphicsContext is the graphics capability consumed by the build pipeline.
// Implementations wrap a driver API such as OpenGL; every method is called from the
// goroutine that owns the context.
type GraphicsContext interface {
	// CompileStage compiles one shader stage.
	// On failure the context releases the stage object itself and returns an error whose
	// message is the driver's info log, verbatim.
	//
	// Parameters:
	//   - stage: the stage type being compiled
	//   - source: the GLSL source of the stage
	//
	// Returns:
	//   - StageHandle: the compiled stage, valid only when err is nil
	//   - error: the compile failure carrying the driver log
	CompileStage(stage shader.ShaderType, source string) (StageHandle, error)

	// Link links a vertex and a fragment stage into a program.
	// On failure the context releases the program object itself (not the stages) and
	// returns an error whose message is the driver's info log, verbatim.
	//
	// Parameters:
	//   - vertex: the compiled vertex stage
	//   - fragment: the compiled fragment stage
	//
	// Returns:
	//   - ProgramHandle: the linked program, valid only when err is nil
	//   - error: the link failure carrying the driver log
	Link(vertex, fragment StageHandle) (ProgramHandle, error)

	// UniformLocation resolves a uniform by name.
	//
	// Parameters:
	//   - program: the linked program to query
	//   - name: the uniform name
	//
	// Returns:
	//   - Location: the uniform location, or InvalidLocation when the uniform is not active
	UniformLocation(program ProgramHandle, name string) Location

	// AttributeLocation resolves a vertex attribute by name.
	//
	// Parameters:
	//   - program: the linked program to query
	//   - name: the attribute name
	//
	// Returns:
	//   - Location: the attribute location, or InvalidLocation when the attribute is not active
	AttributeLocation(program ProgramHandle, name string) Location

	// DeleteStage releases a compiled stage.
	//
	// Parameters:
	//   - stage: the stage to release
	DeleteStage(stage StageHandle)

	// DeleteProgram releases a linked program.
	//
	// Parameters:
	//   - program: the program to release
	DeleteProgram(program ProgramHandle)
}
