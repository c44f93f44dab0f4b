// Package watch monitors a wikitext source file and coalesces change
// events so a consumer can re-parse at a sensible rate. Editors often
// perform several writes in rapid succession; events within the debounce
// window collapse into one notification.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the default debounce duration for file events.
const defaultDebounce = 150 * time.Millisecond

// Watcher monitors one file for changes using fsnotify with debouncing.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	events   chan struct{}
	errors   chan error
	done     chan struct{}
	debounce time.Duration
	mu       sync.Mutex
	closed   bool
}

// New creates a Watcher for the given file path with the default
// debounce. The file must exist at creation time.
func New(filePath string) (*Watcher, error) {
	return NewWithDebounce(filePath, defaultDebounce)
}

// NewWithDebounce creates a Watcher with a custom debounce window.
// The file must exist at creation time.
func NewWithDebounce(filePath string, debounce time.Duration) (*Watcher, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absPath); err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory rather than the file: editors that replace the
	// file on save would otherwise drop the watch.
	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		_ = fsWatcher.Close()

		return nil, err
	}

	w := &Watcher{
		watcher:  fsWatcher,
		filePath: absPath,
		events:   make(chan struct{}, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
		debounce: debounce,
	}

	go w.loop()

	return w, nil
}

// Events returns a channel that receives a notification when the watched
// file changes. The channel is buffered with capacity 1, so only the most
// recent event is retained if the consumer is slow.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Errors returns a channel that receives errors from the underlying
// fsnotify watcher. The channel is buffered with capacity 1.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and releases resources.
// It is safe to call Close multiple times.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()

		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)

	return w.watcher.Close()
}

// loop drains fsnotify events, filters them to the watched file and
// forwards a debounced notification.
func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}

			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.isRelevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case <-timerC:
			select {
			case w.events <- struct{}{}:
			default:
				// Consumer still busy; the buffered event covers it.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// isRelevant reports whether the event concerns the watched file and a
// content-changing operation.
func (w *Watcher) isRelevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.filePath {
		return false
	}

	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
