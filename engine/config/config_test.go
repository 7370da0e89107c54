package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverridesOnlyPresentKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[editor]
debounce_ms = 250
initial_example = "plasma"

[preview]
width = 1024
vsync = false

[highlight]
style = "github"

[log]
level = "DEBUG"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, 250*time.Millisecond, cfg.DebounceDelay())
	assert.Equal(t, 3*time.Second, cfg.StatusExpiry())
	assert.Equal(t, "plasma", cfg.Editor.InitialExample)
	assert.Equal(t, 1024, cfg.Preview.Width)
	assert.Equal(t, def.Preview.Height, cfg.Preview.Height)
	assert.False(t, cfg.Preview.VSync)
	assert.Equal(t, def.Preview.QuadSize, cfg.Preview.QuadSize)
	assert.Equal(t, "github", cfg.Highlight.Style)
	assert.Equal(t, def.Highlight.Formatter, cfg.Highlight.Formatter)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, path, cfg.Path)
}

func TestLoadKeepsVSyncDefault(t *testing.T) {
	cfg, err := Load(writeConfig(t, t.TempDir(), "[preview]\ntitle = \"lab\"\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Preview.VSync)
	assert.Equal(t, "lab", cfg.Preview.Title)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[editor\n", "failed to parse TOML"},
		{"negative debounce", "[editor]\ndebounce_ms = -5\n", "debounce_ms"},
		{"unknown example", "[editor]\ninitial_example = \"mandelbrot\"\n", "initial_example"},
		{"quad size", "[preview]\nquad_size = 1.5\n", "quad_size"},
		{"log level", "[log]\nlevel = \"loud\"\n", "unknown log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	path := writeConfig(t, root, "[preview]\nframe_rate = 30.0\n")

	found, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, path, found)

	cfg, err := Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, 30.0, cfg.Preview.FrameRate)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
