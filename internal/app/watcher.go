package app

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceDelay coalesces the burst of events a single save produces.
const DefaultDebounceDelay = 100 * time.Millisecond

// ErrWatcherClosed is returned by Watch after Close.
var ErrWatcherClosed = errors.New("watcher is closed")

// FileWatcher reports changes to one file on disk. It watches the file's
// directory, which also catches replacement by rename, and delivers the
// file's path on Changes once events stop for the debounce delay.
type FileWatcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	delay   time.Duration
	logger  *Logger

	// Watched file and its directory (absolute)
	path string
	dir  string

	timer   *time.Timer
	changes chan string

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewFileWatcher creates a file watcher. A non-positive delay uses
// DefaultDebounceDelay.
func NewFileWatcher(delay time.Duration, logger *Logger) (*FileWatcher, error) {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	if logger == nil {
		logger = NullLogger
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &FileWatcher{
		watcher: fsw,
		delay:   delay,
		logger:  logger.WithComponent("watcher"),
		changes: make(chan string, 1),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch switches the watcher to the file at path. The file itself need not
// exist yet, but its directory must.
func (w *FileWatcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return &FileError{Op: "watch", Path: path, Err: err}
	}
	dir := filepath.Dir(absPath)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if dir != w.dir {
		if err := w.watcher.Add(dir); err != nil {
			return &FileError{Op: "watch", Path: dir, Err: err}
		}
		if w.dir != "" {
			_ = w.watcher.Remove(w.dir)
		}
		w.dir = dir
	}
	w.path = absPath
	return nil
}

// Path returns the absolute path being watched, or "".
func (w *FileWatcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Changes returns the channel of changed paths. At most one change is
// buffered; further changes before it is read are merged into it.
func (w *FileWatcher) Changes() <-chan string {
	return w.changes
}

// Close stops the watcher.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events.
func (w *FileWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(ev)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("fsnotify: %v", err)
		}
	}
}

// handleFSEvent schedules a change notification for events on the watched
// file. Chmod alone is not a content change.
func (w *FileWatcher) handleFSEvent(ev fsnotify.Event) {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) &&
		!ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || filepath.Clean(ev.Name) != w.path {
		return
	}

	w.logger.Debug("%s %s", ev.Op, ev.Name)
	if w.timer != nil {
		w.timer.Reset(w.delay)
		return
	}
	path := w.path
	w.timer = time.AfterFunc(w.delay, func() { w.fire(path) })
}

// fire delivers a pending change.
func (w *FileWatcher) fire(path string) {
	w.mu.Lock()
	w.timer = nil
	closed := w.closed
	w.mu.Unlock()

	if closed {
		return
	}
	select {
	case w.changes <- path:
	default:
		// A change is already waiting to be read.
	}
}
