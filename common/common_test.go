package common

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerDefaultsToSilent(t *testing.T) {
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	Logger().Info("built", "generation", 3)
	assert.Contains(t, buf.String(), "generation=3")

	SetLogger(nil)
	assert.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

func TestNormalizeCursor(t *testing.T) {
	tests := []struct {
		name          string
		x, y          float64
		width, height int
		want          [2]float32
	}{
		{"top left", 0, 0, 200, 100, [2]float32{0, 1}},
		{"bottom right", 200, 100, 200, 100, [2]float32{1, 0}},
		{"center", 100, 50, 200, 100, [2]float32{0.5, 0.5}},
		{"clamped", -10, 150, 200, 100, [2]float32{0, 0}},
		{"degenerate", 5, 5, 0, 100, [2]float32{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCursor(tt.x, tt.y, tt.width, tt.height))
		})
	}
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 5, Coalesce(0, 5, 7))
	assert.Equal(t, "a", Coalesce("", "a"))
	assert.Equal(t, 0, Coalesce[int]())
}
