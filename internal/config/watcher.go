package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces rapid write events from editors that save in
// multiple steps.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads a config file when it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(Config)
	onError  func(error)

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	pending *time.Timer
	done    chan struct{}
}

// NewWatcher creates a watcher for the given config path. onChange receives
// each successfully reloaded config; onError (optional) receives reload and
// watch failures.
func NewWatcher(path string, onChange func(Config), onError func(error)) *Watcher {
	return &Watcher{
		path:     path,
		debounce: DefaultDebounce,
		onChange: onChange,
		onError:  onError,
	}
}

// Start begins watching. The containing directory is watched rather than
// the file itself so atomic rename-style saves are seen.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("config watcher: %w", err)
	}

	w.mu.Lock()
	w.fsw = fsw
	w.done = make(chan struct{})
	w.mu.Unlock()

	go w.loop(fsw)
	return nil
}

// Stop ends watching and releases resources.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsw != nil {
		close(w.done)
		w.fsw.Close()
		w.fsw = nil
	}
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
}

func (w *Watcher) loop(fsw *fsnotify.Watcher) {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.reportError(err)
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.reportError(err)
		return
	}
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
