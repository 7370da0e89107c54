package shader

import (
	"fmt"
	"os"
	"sync"
)

// ShaderType identifies which pipeline stage a shader source compiles to.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex stage. The lab uses one fixed vertex source.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment stage, the user-editable source.
	ShaderTypeFragment
)

func (t ShaderType) String() string {
	switch t {
	case ShaderTypeVertex:
		return "vertex"
	case ShaderTypeFragment:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderType(%d)", int(t))
	}
}

// shader is the implementation of the Shader interface.
// The source is immutable; analysis results are computed on first use and cached.
type shader struct {
	key        string
	source     string
	shaderType ShaderType

	spansOnce sync.Once
	spans     []Span

	uniformsOnce sync.Once
	uniforms     []Uniform
}

// Shader is an immutable snapshot of one stage's GLSL source together with its
// lexical analysis. A new Shader is created for every edit of the source text.
type Shader interface {
	// Key retrieves the identifier for this shader, used in diagnostics and logs.
	//
	// Returns:
	//   - string: the shader's key
	Key() string

	// Source retrieves the GLSL source code.
	//
	// Returns:
	//   - string: the GLSL source code of the shader
	Source() string

	// ShaderType returns the stage this source compiles to.
	//
	// Returns:
	//   - ShaderType: ShaderTypeVertex or ShaderTypeFragment
	ShaderType() ShaderType

	// Spans returns the classified spans of the source, computed once.
	//
	// Returns:
	//   - []Span: ordered, non-overlapping spans covering the whole source
	Spans() []Span

	// Markup returns the class-span markup of the source.
	//
	// Returns:
	//   - string: the annotated markup, see RenderMarkup
	Markup() string

	// Uniforms returns the uniform declarations found in the source, computed once.
	//
	// Returns:
	//   - []Uniform: the declarations in source order, duplicates included
	Uniforms() []Uniform
}

var _ Shader = &shader{}

// NewShader creates a new Shader over the given source.
//
// Parameters:
//   - key: an identifier for the shader, used in diagnostics and logs
//   - shaderType: the stage the source compiles to
//   - source: the GLSL source code
//
// Returns:
//   - Shader: a new Shader instance
func NewShader(key string, shaderType ShaderType, source string) Shader {
	if key == "" {
		panic("shader: a shader must have a non-empty key")
	}
	return &shader{
		key:        key,
		shaderType: shaderType,
		source:     source,
	}
}

// NewShaderFromPath creates a new Shader with source read from a file. The file path is used as the key.
//
// Parameters:
//   - shaderType: the stage the source compiles to
//   - path: the file path to read GLSL source from
//
// Returns:
//   - Shader: a new Shader instance
//   - error: an error if the file cannot be read
func NewShaderFromPath(shaderType ShaderType, path string) (Shader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shader: failed to read source file %q: %w", path, err)
	}
	return NewShader(path, shaderType, string(data)), nil
}

// NewVertexShader returns the fixed vertex stage as a Shader.
//
// Returns:
//   - Shader: the vertex stage with key "vertex"
func NewVertexShader() Shader {
	return NewShader("vertex", ShaderTypeVertex, VertexSource())
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) Spans() []Span {
	s.spansOnce.Do(func() {
		s.spans = Tokenize(s.source)
	})
	return s.spans
}

func (s *shader) Markup() string {
	return RenderSpans(s.source, s.Spans())
}

func (s *shader) Uniforms() []Uniform {
	s.uniformsOnce.Do(func() {
		s.uniforms = ExtractUniforms(s.source)
	})
	return s.uniforms
}
