// Package watcher re-runs a handler when a mesh document changes on disk.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler is called with the absolute path of a changed file
type Handler func(path string)

// Watcher debounces change events of a set of files. The parent directories
// are watched rather than the files, so editors that save by renaming a
// temporary file over the original are still seen.
type Watcher struct {
	fsw      *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	mu       sync.Mutex
	handlers map[string]Handler
	dirs     map[string]bool
	timers   map[string]*time.Timer
}

// New creates a watcher that waits debounce after the last event of a file
// before calling its handler.
func New(debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		fsw:      fsw,
		logger:   logger,
		debounce: debounce,
		handlers: make(map[string]Handler),
		dirs:     make(map[string]bool),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Watch registers handler for the given files
func (w *Watcher) Watch(files []string, handler Handler) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		dir := filepath.Dir(absPath)
		if !w.dirs[dir] {
			if err := w.fsw.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			w.dirs[dir] = true
		}

		w.handlers[absPath] = handler
		w.logger.Debug("watching file", "path", absPath)
	}

	return nil
}

// Run dispatches file events until ctx is done or the watcher is closed
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	path := filepath.Clean(event.Name)
	handler, ok := w.handlers[path]
	if !ok {
		return
	}

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.logger.Debug("file changed", "path", path)
		handler(path)
	})
}

// RemoveAll stops watching every file
func (w *Watcher) RemoveAll() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopTimers()
	for dir := range w.dirs {
		if err := w.fsw.Remove(dir); err != nil {
			return fmt.Errorf("failed to unwatch %s: %w", dir, err)
		}
	}

	w.handlers = make(map[string]Handler)
	w.dirs = make(map[string]bool)
	return nil
}

// Close stops the watcher. Pending handler calls are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.stopTimers()
	w.mu.Unlock()
	return w.fsw.Close()
}

func (w *Watcher) stopTimers() {
	for _, timer := range w.timers {
		timer.Stop()
	}
	w.timers = make(map[string]*time.Timer)
}
