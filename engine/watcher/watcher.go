package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Carmen-Shannon/oxy-shaderlab/common"
	"github.com/fsnotify/fsnotify"
)

// watcher is the implementation of the Watcher interface.
type watcher struct {
	path     string
	onChange func(source string)
	last     string
}

// Watcher follows one shader source file on disk and reports its content whenever it changes.
//
// The parent directory is watched rather than the file itself, so editors that save through a
// temporary file and rename keep being followed. Saves that leave the content unchanged are
// not reported.
type Watcher interface {
	// Path returns the absolute path of the watched file.
	//
	// Returns:
	//   - string: the file path
	Path() string

	// Run watches until ctx is cancelled. It reports the current content once at start.
	// The callback runs on the watcher goroutine.
	//
	// Parameters:
	//   - ctx: cancels the watch
	//
	// Returns:
	//   - error: nil after cancellation, or an error if the watch cannot be set up or fails
	Run(ctx context.Context) error
}

var _ Watcher = &watcher{}

// NewWatcher creates a new Watcher for path.
//
// Parameters:
//   - path: the file to follow
//   - onChange: called with the full file content after each change
//
// Returns:
//   - Watcher: the new watcher
//   - error: an error if path cannot be resolved
func NewWatcher(path string, onChange func(source string)) (Watcher, error) {
	if onChange == nil {
		panic("watcher: NewWatcher requires a change callback")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watcher: failed to resolve %q: %w", path, err)
	}
	return &watcher{path: abs, onChange: onChange}, nil
}

func (w *watcher) Path() string {
	return w.path
}

func (w *watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watcher: failed to watch %q: %w", filepath.Dir(w.path), err)
	}
	common.Logger().Info("watching shader source", "path", w.path)

	w.reload()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.reload()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			common.Logger().Warn("watcher error", "path", w.path, "error", err)
		}
	}
}

// reload reads the file and reports it if the content changed since the last report.
func (w *watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		// Mid-rename the file is briefly absent; the following Create brings it back.
		if !errors.Is(err, os.ErrNotExist) {
			common.Logger().Warn("failed to read watched file", "path", w.path, "error", err)
		}
		return
	}
	source := string(data)
	if source == w.last {
		return
	}
	w.last = source
	common.Logger().Debug("shader source changed", "path", w.path, "bytes", len(data))
	w.onChange(source)
}
