package loader

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last change before a reload.
const DefaultDebounce = 100 * time.Millisecond

// Watch calls onChange after any of the files changes, once per burst of
// events. It watches the parent directories so files replaced by rename are
// still seen. Watch blocks until ctx is done or onChange returns an error.
func Watch(ctx context.Context, logger *slog.Logger, paths []string, debounce time.Duration, onChange func(ctx context.Context) error) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	return watchLoop(ctx, logger, watcher, watched, debounce, onChange)
}

func watchLoop(ctx context.Context, logger *slog.Logger, watcher *fsnotify.Watcher, watched map[string]bool, debounce time.Duration, onChange func(ctx context.Context) error) error {
	// Debounce timer
	var pending <-chan time.Time
	var lastChanged string

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !watched[name] {
				continue
			}
			lastChanged = name
			pending = time.After(debounce)

		case <-pending:
			pending = nil
			logger.Debug("change detected", "file", filepath.Base(lastChanged))
			if err := onChange(ctx); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}
