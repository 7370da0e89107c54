package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// awaitContent waits until want is reported. A save may be observed mid-write, so
// intermediate contents are skipped.
func awaitContent(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case s := <-ch:
			if s == want {
				return
			}
		case <-timeout:
			require.FailNow(t, "change not reported", "want %q", want)
		}
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.frag")
	require.NoError(t, os.WriteFile(path, []byte("void main() {}"), 0o644))

	changes := make(chan string, 16)
	w, err := NewWatcher(path, func(s string) { changes <- s })
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(w.Path()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	awaitContent(t, changes, "void main() {}")

	// Other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.frag"), []byte("x"), 0o644))

	require.NoError(t, os.WriteFile(path, []byte("uniform float u_time;"), 0o644))
	awaitContent(t, changes, "uniform float u_time;")

	// Atomic save through rename.
	tmp := filepath.Join(dir, "live.frag.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("uniform vec2 u_mouse;"), 0o644))
	require.NoError(t, os.Rename(tmp, path))
	awaitContent(t, changes, "uniform vec2 u_mouse;")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		require.FailNow(t, "watcher did not stop")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "x.frag"), func(string) {})
	require.NoError(t, err)
	assert.Error(t, w.Run(context.Background()))
}
