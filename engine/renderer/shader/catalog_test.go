package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	assert.Equal(t, []string{"gradient", "circle", "wave", "plasma"}, ExampleNames())

	for _, name := range ExampleNames() {
		src, ok := Example(name)
		require.True(t, ok, name)
		assert.Contains(t, src, "gl_FragColor")
		assert.Equal(t, []string{"u_time", "u_resolution"}, ExtractUniformNames(src), name)
	}

	_, ok := Example("nope")
	assert.False(t, ok)
}

func TestExampleNamesIsACopy(t *testing.T) {
	names := ExampleNames()
	names[0] = "changed"
	assert.Equal(t, "gradient", ExampleNames()[0])
}

func TestVertexSource(t *testing.T) {
	src := VertexSource()
	assert.Contains(t, src, "attribute vec2 a_position;")
	assert.Contains(t, src, "gl_Position")
}

func TestShaderAnalysis(t *testing.T) {
	s := NewShader("frag", ShaderTypeFragment, "uniform float a; uniform vec2 b;")
	assert.Equal(t, "frag", s.Key())
	assert.Equal(t, ShaderTypeFragment, s.ShaderType())
	assert.Equal(t, []Uniform{{Name: "a", Type: "float"}, {Name: "b", Type: "vec2"}}, s.Uniforms())
	assert.Equal(t, RenderMarkup(s.Source()), s.Markup())
	assert.Equal(t, Tokenize(s.Source()), s.Spans())

	assert.Panics(t, func() { NewShader("", ShaderTypeVertex, "") })
	assert.Equal(t, "vertex", NewVertexShader().Key())
}
