package themefile

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/palettekit/internal/logger"
	"github.com/alexisbeaulieu97/palettekit/internal/theme"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher reloads a theme file into a managed palette whenever it changes on
// disk. Invalid edits are logged and leave the palette as it was.
type Watcher struct {
	path     string
	manager  *theme.Manager
	registry *theme.Registry
	log      *logger.Logger
	debounce time.Duration
	onReload func(error)
	lastHash [32]byte
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithLogger sets the logger for reloads and failures.
func WithLogger(l *logger.Logger) WatcherOption {
	return func(w *Watcher) { w.log = l }
}

// WithDebounce sets how long to wait for a burst of events to settle.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.debounce = d }
}

// WithOnReload registers a callback invoked after every reload attempt with
// its outcome.
func WithOnReload(fn func(error)) WatcherOption {
	return func(w *Watcher) { w.onReload = fn }
}

// NewWatcher watches path and applies it to the palette behind manager.
func NewWatcher(path string, manager *theme.Manager, registry *theme.Registry, opts ...WatcherOption) *Watcher {
	if registry == nil {
		registry = theme.DefaultRegistry()
	}
	w := &Watcher{
		path:     filepath.Clean(path),
		manager:  manager,
		registry: registry,
		debounce: defaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.With("theme_file", w.path)
	return w
}

// Run blocks until ctx is cancelled. The containing directory is watched
// rather than the file so editors that replace the file on save are seen.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	if data, err := os.ReadFile(w.path); err == nil {
		w.lastHash = sha256.Sum256(data)
	}
	w.log.Debug("watching theme file")

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error(err, "file watcher error")
		case <-timer.C:
			w.Reload()
		}
	}
}

// Reload reads the file and applies it if its content changed since the
// last successful load.
func (w *Watcher) Reload() {
	err := w.reload()
	if err != nil {
		w.log.Error(err, "theme reload failed; keeping previous palette")
	}
	if w.onReload != nil {
		w.onReload(err)
	}
}

func (w *Watcher) reload() error {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return err
	}
	hash := sha256.Sum256(data)
	if hash == w.lastHash {
		w.log.Debug("theme file unchanged")
		return nil
	}

	doc, err := Parse(data, w.path)
	if err != nil {
		return err
	}
	if err := Validate(doc, w.registry); err != nil {
		return err
	}
	if err := w.manager.Update(func(p *theme.Palette) error { return Apply(doc, p) }); err != nil {
		return err
	}

	w.lastHash = hash
	w.log.Info("theme reloaded")
	return nil
}
