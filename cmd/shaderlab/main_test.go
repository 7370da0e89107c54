package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its stdout. Flags are reset first
// because cobra keeps parsed values on the package-level commands between runs.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--color", "off", "--config", writeConfig(t)))
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shaderlab.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"error\"\n"), 0o644))
	return path
}

func TestReadSource(t *testing.T) {
	src, err := readSource("example:circle", nil)
	require.NoError(t, err)
	want, _ := shader.Example("circle")
	assert.Equal(t, want, src.source)
	assert.Empty(t, src.path)

	_, err = readSource("example:nope", nil)
	assert.ErrorContains(t, err, "unknown example")

	src, err = readSource("-", strings.NewReader("void main(){}"))
	require.NoError(t, err)
	assert.Equal(t, "<stdin>", src.name)
	assert.Equal(t, "void main(){}", src.source)

	path := filepath.Join(t.TempDir(), "a.frag")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	src, err = readSource(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, src.path)
}

func TestFmtCommand(t *testing.T) {
	out, err := execute(t, "void main(){gl_FragColor=vec4(1.0);}", "fmt", "-")
	require.NoError(t, err)
	assert.Equal(t, shader.Format("void main(){gl_FragColor=vec4(1.0);}"), out)

	out, err = execute(t, "void main(){}", "fmt", "--check", "-")
	assert.ErrorIs(t, err, errNeedsFormatting)
	assert.Equal(t, "<stdin>\n", out)
}

func TestFmtWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.frag")
	require.NoError(t, os.WriteFile(path, []byte("void main(){x=1;}"), 0o600))

	_, err := execute(t, "", "fmt", "-w", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, shader.IsFormatted(string(data)))

	_, err = execute(t, "", "fmt", "--check", path)
	assert.NoError(t, err)

	_, err = execute(t, "", "fmt", "-w", "--check", path)
	assert.Error(t, err)
}

func TestHighlightMarkup(t *testing.T) {
	out, err := execute(t, "uniform float u_time;", "highlight", "--markup", "-")
	require.NoError(t, err)
	assert.Equal(t, shader.RenderMarkup("uniform float u_time;"), out)
}

func TestHighlightPlain(t *testing.T) {
	out, err := execute(t, "", "highlight", "example:wave")
	require.NoError(t, err)
	want, _ := shader.Example("wave")
	assert.Equal(t, want, out, "noop formatter reproduces the source when color is off")
}

func TestUniformsCommand(t *testing.T) {
	out, err := execute(t, "uniform float a; uniform vec2 b; uniform float a;", "uniforms", "--plain", "-")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\na\n", out)

	out, err = execute(t, "void main(){}", "uniforms", "-")
	require.NoError(t, err)
	assert.Contains(t, out, shader.NoUniformsSentinel)
}

func TestExamplesCommand(t *testing.T) {
	out, err := execute(t, "", "examples")
	require.NoError(t, err)
	for _, name := range shader.ExampleNames() {
		assert.Contains(t, out, name)
	}

	out, err = execute(t, "", "examples", "plasma")
	require.NoError(t, err)
	want, _ := shader.Example("plasma")
	assert.Equal(t, want, out)

	out, err = execute(t, "", "examples", "--vertex")
	require.NoError(t, err)
	assert.Equal(t, shader.VertexSource(), out)

	_, err = execute(t, "", "examples", "missing")
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "", "check", "-j", "2")
	require.NoError(t, err)
	for _, name := range shader.ExampleNames() {
		assert.Contains(t, out, examplePrefix+name)
	}
	assert.Contains(t, out, "u_time, u_resolution")

	_, err = execute(t, "void main(){}", "check", "--strict", "-")
	assert.ErrorIs(t, err, errCheckFailed)
}

func TestCategorySummary(t *testing.T) {
	assert.Equal(t, "none", categorySummary(nil))
	assert.Equal(t, "number=2 keyword=1", categorySummary(map[shader.Category]int{
		shader.CategoryPlain:   5,
		shader.CategoryKeyword: 1,
		shader.CategoryNumber:  2,
	}))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "a", firstLine("a\nb"))
	assert.Equal(t, "a", firstLine("a"))
}
