// Package watch re-runs a callback whenever a file is written.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long a burst of events must settle before the
// callback runs.
const DefaultDebounce = 100 * time.Millisecond

// Watcher observes a single file.
type Watcher struct {
	path     string
	logger   *zap.Logger
	onChange func() error
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// New creates a Watcher for path. The parent directory is watched so that
// editors replacing the file by rename are still noticed.
func New(path string, logger *zap.Logger, onChange func() error) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("error adding directory to watcher: %w", err)
	}

	return &Watcher{
		path:     abs,
		logger:   logger,
		onChange: onChange,
		debounce: DefaultDebounce,
		watcher:  fw,
	}, nil
}

// SetDebounce changes the settle delay. It must be called before Run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run delivers change notifications until ctx is done, then releases the
// underlying watcher. Callback errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.isTarget(event) {
				continue
			}
			w.logger.Debug("File changed", zap.String("path", w.path), zap.Stringer("op", event.Op))
			timer.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", zap.Error(err))
		case <-timer.C:
			if err := w.onChange(); err != nil {
				w.logger.Error("Error handling file change", zap.String("path", w.path), zap.Error(err))
			}
		}
	}
}

func (w *Watcher) isTarget(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
