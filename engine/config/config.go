// config.go implements loading of the lab's TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/Carmen-Shannon/oxy-shaderlab/engine/renderer/shader"
)

// FileName is the configuration file searched for from the working directory upward.
const FileName = "shaderlab.toml"

// Config is the full lab configuration. Every field has a default, so an absent file or an
// absent key is never an error.
type Config struct {
	Editor    EditorConfig    `toml:"editor"`
	Preview   PreviewConfig   `toml:"preview"`
	Highlight HighlightConfig `toml:"highlight"`
	Log       LogConfig       `toml:"log"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

// EditorConfig configures the editing session.
type EditorConfig struct {
	DebounceMs     int    `toml:"debounce_ms"`
	StatusExpiryMs int    `toml:"status_expiry_ms"`
	InitialExample string `toml:"initial_example"`
}

// PreviewConfig configures the preview window and renderer.
type PreviewConfig struct {
	Title     string  `toml:"title"`
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	FrameRate float64 `toml:"frame_rate"`
	QuadSize  float32 `toml:"quad_size"`
	VSync     bool    `toml:"vsync"`
	Profile   bool    `toml:"profile"`
}

// HighlightConfig selects the chroma formatter and style for rendered markup.
type HighlightConfig struct {
	Formatter string `toml:"formatter"`
	Style     string `toml:"style"`
}

// LogConfig configures the shared logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is present.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Editor: EditorConfig{
			DebounceMs:     1000,
			StatusExpiryMs: 3000,
		},
		Preview: PreviewConfig{
			Title:     "oxy shaderlab",
			Width:     800,
			Height:    600,
			FrameRate: 60,
			QuadSize:  0.8,
			VSync:     true,
		},
		Highlight: HighlightConfig{
			Formatter: "terminal256",
			Style:     "monokai",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Find walks from startDir up to the filesystem root looking for FileName.
//
// Parameters:
//   - startDir: the directory to start from, "." if empty
//
// Returns:
//   - string: the path of the file found
//   - bool: false if no file exists on the way up
//   - error: an error if a directory cannot be inspected
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads FileName found from startDir upward, or the defaults if there is none.
//
// Parameters:
//   - startDir: the directory to start from
//
// Returns:
//   - Config: the loaded configuration
//   - error: an error if the file exists but is invalid
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load reads a configuration file. Keys absent from the file keep their defaults.
//
// Parameters:
//   - path: the TOML file to read
//
// Returns:
//   - Config: the loaded configuration
//   - error: an error if the file cannot be parsed or holds invalid values
func Load(path string) (Config, error) {
	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		common.Logger().Warn("unknown configuration keys ignored", "path", path, "keys", keys)
	}

	def := Default()
	cfg := Config{
		Editor: EditorConfig{
			DebounceMs:     common.Coalesce(raw.Editor.DebounceMs, def.Editor.DebounceMs),
			StatusExpiryMs: common.Coalesce(raw.Editor.StatusExpiryMs, def.Editor.StatusExpiryMs),
			InitialExample: strings.TrimSpace(raw.Editor.InitialExample),
		},
		Preview: PreviewConfig{
			Title:     common.Coalesce(strings.TrimSpace(raw.Preview.Title), def.Preview.Title),
			Width:     common.Coalesce(raw.Preview.Width, def.Preview.Width),
			Height:    common.Coalesce(raw.Preview.Height, def.Preview.Height),
			FrameRate: common.Coalesce(raw.Preview.FrameRate, def.Preview.FrameRate),
			QuadSize:  common.Coalesce(raw.Preview.QuadSize, def.Preview.QuadSize),
			VSync:     def.Preview.VSync,
			Profile:   raw.Preview.Profile,
		},
		Highlight: HighlightConfig{
			Formatter: common.Coalesce(strings.TrimSpace(raw.Highlight.Formatter), def.Highlight.Formatter),
			Style:     common.Coalesce(strings.TrimSpace(raw.Highlight.Style), def.Highlight.Style),
		},
		Log: LogConfig{
			Level: common.Coalesce(strings.ToLower(strings.TrimSpace(raw.Log.Level)), def.Log.Level),
		},
		Path: path,
	}
	// A bool's zero value is meaningful, so only an explicit key overrides the default.
	if meta.IsDefined("preview", "vsync") {
		cfg.Preview.VSync = raw.Preview.VSync
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and names.
//
// Returns:
//   - error: the first invalid setting found, or nil
func (c Config) Validate() error {
	switch {
	case c.Editor.DebounceMs < 0:
		return fmt.Errorf("[editor].debounce_ms must not be negative, got %d", c.Editor.DebounceMs)
	case c.Editor.StatusExpiryMs < 0:
		return fmt.Errorf("[editor].status_expiry_ms must not be negative, got %d", c.Editor.StatusExpiryMs)
	case c.Editor.InitialExample != "" && !slices.Contains(shader.ExampleNames(), c.Editor.InitialExample):
		return fmt.Errorf("[editor].initial_example %q is not one of %v", c.Editor.InitialExample, shader.ExampleNames())
	case c.Preview.Width <= 0 || c.Preview.Height <= 0:
		return fmt.Errorf("[preview] size must be positive, got %dx%d", c.Preview.Width, c.Preview.Height)
	case c.Preview.FrameRate <= 0:
		return fmt.Errorf("[preview].frame_rate must be positive, got %g", c.Preview.FrameRate)
	case c.Preview.QuadSize <= 0 || c.Preview.QuadSize > 1:
		return fmt.Errorf("[preview].quad_size must be in (0, 1], got %g", c.Preview.QuadSize)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("[log].level: %w", err)
	}
	return nil
}

// DebounceDelay returns the editor debounce as a duration.
func (c Config) DebounceDelay() time.Duration {
	return time.Duration(c.Editor.DebounceMs) * time.Millisecond
}

// StatusExpiry returns the success message expiry as a duration.
func (c Config) StatusExpiry() time.Duration {
	return time.Duration(c.Editor.StatusExpiryMs) * time.Millisecond
}

// ParseLevel converts a level name into a slog level.
//
// Parameters:
//   - name: one of "debug", "info", "warn", "error" (case-insensitive)
//
// Returns:
//   - slog.Level: the parsed level
//   - error: an error for an unknown name
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}
