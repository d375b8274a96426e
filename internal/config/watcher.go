package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/overlaykit/scrollgate/internal/logging"
)

// debounceWindow coalesces the burst of filesystem events many editors
// emit for a single save.
const debounceWindow = 50 * time.Millisecond

// Watcher reloads the config file when it changes on disk and hands the
// re-validated result to a callback. Invalid intermediate states (half-saved
// files, bad values) are logged and skipped; the previous config stays
// in effect.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func(*Config)
	log      *logging.Logger
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a watcher for the given config file path.
// Call Start to begin watching and Stop to clean up.
func NewWatcher(path string, onChange func(*Config), log *logging.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	// Watch the directory, not the file: editors that write via
	// rename-over-temp would otherwise detach the watch on first save.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	if log == nil {
		log = logging.NopLogger()
	}

	return &Watcher{
		watcher:  fsw,
		path:     path,
		onChange: onChange,
		log:      log,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching for config changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher and cleans up resources
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.watcher.Close()
	})
}

// watchLoop processes filesystem events with debouncing
func (w *Watcher) watchLoop() {
	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer

	pending := false

	for {
		select {
		case <-w.stopCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only care about operations that change the config file
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}

			pending = true
			debounceTimer.Reset(debounceWindow)

		case <-debounceTimer.C:
			if !pending {
				continue
			}
			pending = false
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", "error", err)
		}
	}
}

// reload re-reads the config file and invokes the callback on success.
func (w *Watcher) reload() {
	if err := viper.ReadInConfig(); err != nil {
		w.log.Warn("config reload failed to read file", "path", w.path, "error", err)
		return
	}

	cfg, err := Load()
	if err != nil {
		w.log.Warn("config reload rejected", "path", w.path, "error", err)
		return
	}

	w.log.Info("config reloaded", "path", w.path)
	w.onChange(cfg)
}
