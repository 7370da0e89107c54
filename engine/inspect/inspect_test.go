package inspect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range shader.ExampleNames() {
		src, _ := shader.Example(name)
		path := filepath.Join(dir, name+".frag")
		require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
		paths = append(paths, path)
	}
	missing := filepath.Join(dir, "missing.frag")
	paths = append(paths, missing)

	reports := NewInspector(WithWorkers(2)).Inspect(paths...)
	require.Len(t, reports, len(paths))

	for i, r := range reports[:len(reports)-1] {
		assert.Equal(t, paths[i], r.Path, "reports keep input order")
		require.NoError(t, r.Err)
		require.NotNil(t, r.Shader)
		assert.Equal(t, []shader.Uniform{{Name: "u_time", Type: "float"}, {Name: "u_resolution", Type: "vec2"}}, r.Uniforms)
		assert.Positive(t, r.Categories[shader.CategoryKeyword])
	}

	last := reports[len(reports)-1]
	assert.Equal(t, missing, last.Path)
	assert.ErrorIs(t, last.Err, os.ErrNotExist)
	assert.Nil(t, last.Shader)
}

func TestInspectSources(t *testing.T) {
	sources := map[string]string{
		"flat":     "void main(){gl_FragColor=vec4(1.0);}",
		"reflowed": shader.Format("void main(){gl_FragColor=vec4(1.0);}"),
	}
	reports := NewInspector(WithWorkers(1), WithQueueSize(1)).InspectSources(sources, "flat", "reflowed", "absent")
	require.Len(t, reports, 3)

	assert.False(t, reports[0].Formatted)
	assert.True(t, reports[1].Formatted)
	assert.Empty(t, reports[0].Uniforms)
	assert.Equal(t, 1, reports[0].Categories[shader.CategoryOutput])
	assert.Error(t, reports[2].Err)
}

func TestInspectNothing(t *testing.T) {
	assert.Empty(t, NewInspector().Inspect())
}
