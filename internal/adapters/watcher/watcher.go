// Package watcher implements debounced per-file change notification over fsnotify.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"
	"unique"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/hdrview/internal/adapters/fs"
	"go.trai.ch/hdrview/internal/core/domain"
	"go.trai.ch/hdrview/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathWatcher = (*Watcher)(nil)

// DefaultDebounceWindow is the quiet period used when none is configured.
const DefaultDebounceWindow = domain.DefaultDebounce

// Watcher delivers debounced write notifications for individual files.
//
// fsnotify watches directories, so each registered file's parent directory is
// watched once and events are filtered by canonical file path. Watching the
// directory also catches editors that save by renaming a temporary file over
// the original.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	debouncer *Debouncer

	mu       sync.Mutex
	handlers map[unique.Handle[string]]func()
	dirs     map[string]int

	done      chan struct{}
	closeOnce sync.Once
}

// New creates a watcher whose notifications are debounced by window.
func New(logger ports.Logger, window time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	if window <= 0 {
		window = DefaultDebounceWindow
	}

	w := &Watcher{
		fsWatcher: fsw,
		logger:    logger,
		handlers:  make(map[unique.Handle[string]]func()),
		dirs:      make(map[string]int),
		done:      make(chan struct{}),
	}
	w.debouncer = NewDebouncer(window, w.dispatch)

	go w.processEvents()

	return w, nil
}

// Watch registers onWrite for path. Registering a path again replaces its
// callback. The file need not exist yet, but its directory must.
func (w *Watcher) Watch(path string, onWrite func()) error {
	canonical, err := fs.Canonicalize(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", path)
	}
	key := unique.Make(canonical)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, known := w.handlers[key]; known {
		w.handlers[key] = onWrite
		return nil
	}

	dir := filepath.Dir(canonical)
	if w.dirs[dir] == 0 {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", canonical)
		}
	}
	w.dirs[dir]++
	w.handlers[key] = onWrite
	return nil
}

// Close stops the event loop and discards pending notifications.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.debouncer.Stop()
		err = w.fsWatcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) processEvents() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if w.registered(name) {
				w.debouncer.Add(name)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("file watcher error: %v", err))
		}
	}
}

func (w *Watcher) registered(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.handlers[unique.Make(path)]
	return ok
}

func (w *Watcher) dispatch(paths []string) {
	for _, p := range paths {
		w.mu.Lock()
		onWrite := w.handlers[unique.Make(p)]
		w.mu.Unlock()

		if onWrite != nil {
			onWrite()
		}
	}
}
