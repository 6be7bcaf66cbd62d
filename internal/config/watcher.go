// pattern: Imperative Shell

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"twoface/internal/logging"
)

// DefaultSettle is how long the watcher waits after the last change to the
// config file before reloading it. Editors often write a file in several steps.
const DefaultSettle = 50 * time.Millisecond

// Watcher reloads the config file whenever it changes on disk.
type Watcher struct {
	path    string
	settle  time.Duration
	watcher *fsnotify.Watcher
	logger  *logging.ScopedLogger
}

// NewWatcher creates a watcher for the config file at path.
func NewWatcher(path string, logger *logging.ScopedLogger) (*Watcher, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	return &Watcher{
		path:    filepath.Clean(path),
		settle:  DefaultSettle,
		watcher: watcher,
		logger:  logger,
	}, nil
}

// Path returns the watched config file.
func (w *Watcher) Path() string {
	return w.path
}

// Run watches until ctx is cancelled, calling apply with each config that
// loads and validates. Invalid files are logged and skipped so the running
// layout stays in place.
func (w *Watcher) Run(ctx context.Context, apply func(Config)) error {
	defer func() { _ = w.watcher.Close() }()

	// Watch the parent directory: editors replace files by rename, and the
	// file may not exist yet.
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}
	w.logger.Debug("watching config", "path", w.path)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.settle)
			} else {
				timer.Reset(w.settle)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			cfg, err := LoadFrom(w.path)
			if err != nil {
				w.logger.Warn("config reload rejected", "path", w.path, "error", err)
				continue
			}
			w.logger.Info("config reloaded", "path", w.path, "windows", len(cfg.Layout.Windows))
			apply(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}
