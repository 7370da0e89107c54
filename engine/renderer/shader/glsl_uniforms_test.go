package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractUniformNames(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"two declarations", "uniform float a; uniform vec2 b;", []string{"a", "b"}},
		{"none", "void main() {}", []string{}},
		{"duplicates kept", "uniform float a; uniform float a;", []string{"a", "a"}},
		{"whitespace tolerant", "uniform\n  vec3\tcolor ;", []string{"color"}},
		{"arrays are not matched", "uniform float a[2];", []string{}},
		{"default source", DefaultFragmentSource(), []string{"u_time", "u_resolution"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractUniformNames(tt.source)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractUniforms(t *testing.T) {
	got := ExtractUniforms("precision mediump float;\nuniform vec2 u_mouse;\nuniform sampler2D tex;")
	assert.Equal(t, []Uniform{
		{Name: "u_mouse", Type: "vec2"},
		{Name: "tex", Type: "sampler2D"},
	}, got)
}

func TestUniformDisplayList(t *testing.T) {
	assert.Equal(t, []string{NoUniformsSentinel}, UniformDisplayList(nil))
	assert.Equal(t, []string{NoUniformsSentinel}, UniformDisplayList(ExtractUniformNames("void main(){}")))
	assert.Equal(t, []string{"a"}, UniformDisplayList([]string{"a"}))
}
