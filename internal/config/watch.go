package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is the quiet period Watch waits for after the last
// file event before reloading.
const DefaultWatchDebounce = 250 * time.Millisecond

// Watch reloads the configuration whenever its file changes, until ctx is
// done. Editors often replace files via rename, so the parent directory is
// watched and events are filtered by name. Bursts of events within debounce
// trigger a single reload. Reload errors are logged, not returned.
func (l *Live) Watch(ctx context.Context, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(l.path)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	l.logger.Info("watching configuration for changes", "path", target)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("configuration watcher stopped", "path", target)
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			l.logger.Debug("configuration file event", "path", target, "op", event.Op.String())
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.logger.Warn("configuration watcher error", "error", err)

		case <-timer.C:
			// Errors are logged by Reload; the previous snapshot stays active.
			_, _ = l.Reload()
		}
	}
}
