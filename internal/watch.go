package internal

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs a callback whenever the watched file changes on disk.
// The parent directory is watched rather than the file itself so editors
// that replace files via rename are still observed.
type Watcher struct {
	watcher    *fsnotify.Watcher
	path       string
	debounce   time.Duration
	onChange   func()
	isWatching bool
	done       chan struct{}
}

// NewWatcher creates a watcher for the single file at path. onChange runs on
// the watch goroutine after each burst of change events settles for the
// debounce interval.
func NewWatcher(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("error resolving %s: %w", path, err)
	}

	return &Watcher{
		watcher:  fsWatcher,
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. It returns an error when already started or when
// the file's directory cannot be watched.
func (w *Watcher) Start() error {
	if w.isWatching {
		return fmt.Errorf("already watching")
	}

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("error adding directory to watcher: %w", err)
	}

	w.isWatching = true
	go w.watchLoop()
	return nil
}

// Stop ends the watch and releases the underlying watcher.
func (w *Watcher) Stop() error {
	if !w.isWatching {
		return nil
	}
	w.isWatching = false
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	var timer *time.Timer
	timerC := make(chan time.Time)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.isRelevant(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case timerC <- time.Now():
				case <-w.done:
				}
			})
		case <-timerC:
			w.onChange()
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) isRelevant(event fsnotify.Event) bool {
	if event.Name != w.path {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}
