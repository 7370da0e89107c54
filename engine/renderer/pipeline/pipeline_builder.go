package pipeline

import "github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"

// PipelineBuilderOption is a functional option used to configure a Pipeline during construction.
type PipelineBuilderOption func(*pipeline)

// WithVertexShader sets the fixed vertex shader every build links against.
// Defaults to shader.NewVertexShader().
//
// Parameters:
//   - s: the vertex shader to use for this pipeline
//
// Returns:
//   - PipelineBuilderOption: a function that sets the vertex shader for this pipeline
func WithVertexShader(s shader.Shader) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexShader = s
	}
}

// WithUniformNames replaces the uniform set resolved after each successful link.
// Defaults to DefaultUniformNames.
//
// Parameters:
//   - names: the uniform names to resolve
//
// Returns:
//   - PipelineBuilderOption: a function that sets the uniform names for this pipeline
func WithUniformNames(names ...string) PipelineBuilderOption {
	return func(p *pipeline) {
		p.uniformNames = append([]string(nil), names...)
	}
}

// WithAttributeNames replaces the attribute set resolved after each successful link.
// Defaults to DefaultAttributeNames.
//
// Parameters:
//   - names: the attribute names to resolve
//
// Returns:
//   - PipelineBuilderOption: a function that sets the attribute names for this pipeline
func WithAttributeNames(names ...string) PipelineBuilderOption {
	return func(p *pipeline) {
		p.attributeNames = append([]string(nil), names...)
	}
}

// WithBuildCallback registers a function called after every build attempt with the
// resulting program (nil on failure) and error.
//
// Parameters:
//   - callback: the function to call after each build
//
// Returns:
//   - PipelineBuilderOption: a function that sets the build callback for this pipeline
func WithBuildCallback(callback func(Program, error)) PipelineBuilderOption {
	return func(p *pipeline) {
		p.onBuild = callback
	}
}
