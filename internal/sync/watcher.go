package sync

import (
	"fmt"
	"path/filepath"
	gosync "sync"
	"time"

	"github.com/MikeBiancalana/datepicker/internal/config"
	"github.com/MikeBiancalana/datepicker/internal/logger"
	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 100 * time.Millisecond

// ConfigChangeEvent carries a freshly loaded configuration
type ConfigChangeEvent struct {
	Path   string
	Config *config.Config
	Err    error
}

// Watcher watches the config file for changes
type Watcher struct {
	watcher       *fsnotify.Watcher
	path          string
	changes       chan ConfigChangeEvent
	done          chan struct{}

	// mu guards the debounce state shared by the watch loop and Stop.
	mu            gosync.Mutex
	debounceTimer *time.Timer
	stopped       bool
}

// NewWatcher creates a watcher for the config file at path
func NewWatcher(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher: fsWatcher,
		path:    filepath.Clean(path),
		changes: make(chan ConfigChangeEvent, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching the directory holding the config file. Editors often
// replace files by rename, so the directory is watched rather than the file.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	go w.watch()
	return nil
}

// Stop stops the watcher
func (w *Watcher) Stop() {
	w.mu.Lock()
	w.stopped = true
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()

	close(w.done)
	w.watcher.Close()
}

// Changes returns the channel for config change notifications
func (w *Watcher) Changes() <-chan ConfigChangeEvent {
	return w.changes
}

// watch is the main event loop
func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}

			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("config watcher error", "error", err)
		}
	}
}

// schedule restarts the debounce window for a reload.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(debounceDelay, w.reload)
}

// reload reads the config after the debounce window and publishes it
func (w *Watcher) reload() {
	cfg, err := config.LoadFrom(w.path)
	if err != nil {
		logger.Warn("failed to reload config", "path", w.path, "error", err)
	}

	select {
	case <-w.done:
	case w.changes <- ConfigChangeEvent{Path: w.path, Config: cfg, Err: err}:
	}
}
