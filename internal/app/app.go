// Package app runs an editing session against a terminal backend.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/dshills/kite/internal/engine/buffer"
	"github.com/dshills/kite/internal/input/mode"
	"github.com/dshills/kite/internal/renderer"
	"github.com/dshills/kite/internal/renderer/backend"
	"github.com/dshills/kite/internal/session"
	"github.com/dshills/kite/internal/vfs"
)

// Options configures an Application.
type Options struct {
	// Renderer configures drawing.
	Renderer renderer.Options

	// Logger receives application logs. Defaults to NullLogger.
	Logger *Logger

	// FS is used to check the open file after change notifications.
	// Defaults to the OS file system.
	FS vfs.FS

	// Watcher, when set, reports changes to the open file made by other
	// programs. The application closes it when Run returns.
	Watcher *FileWatcher
}

// Application connects a session to a backend: it feeds backend key events
// to the session and redraws after each one.
type Application struct {
	sess    *session.Session
	backend backend.Backend
	opts    Options
	logger  *Logger
	fs      vfs.FS

	renderer *renderer.Renderer
	running  atomic.Bool

	// External change tracking for the open file.
	watchedPath string
	savedRev    buffer.RevisionID
	known       vfs.FileInfo
	hasKnown    bool
}

// New creates an application for sess drawing on b.
func New(sess *session.Session, b backend.Backend, opts Options) *Application {
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = vfs.NewOSFS()
	}
	return &Application{
		sess:    sess,
		backend: b,
		opts:    opts,
		logger:  logger.WithComponent("app"),
		fs:      fsys,
	}
}

// Session returns the session being edited.
func (app *Application) Session() *session.Session {
	return app.sess
}

// Run initializes the backend and processes events until the session
// requests exit, which returns ErrQuit, or ctx is cancelled, which returns
// ctx.Err().
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	app.renderer = renderer.New(app.backend, app.opts.Renderer)

	events := make(chan backend.Event, 64)
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go app.pollEvents(events, stop, &wg)

	defer func() {
		close(stop)
		app.backend.Shutdown()
		wg.Wait()
		if app.opts.Watcher != nil {
			_ = app.opts.Watcher.Close()
		}
	}()

	unsubscribe := app.sess.Modes().OnChange(app.onModeChange)
	defer unsubscribe()

	var changes <-chan string
	if app.opts.Watcher != nil {
		changes = app.opts.Watcher.Changes()
	}
	app.syncFileState()

	app.logger.Info("started: %s", app.sess.Document().Name())
	app.render()

	for {
		select {
		case <-ctx.Done():
			app.logger.Info("cancelled: %v", ctx.Err())
			return ctx.Err()

		case ev := <-events:
			if app.handleEvent(ev) {
				app.logger.Info("quit")
				return ErrQuit
			}
			app.render()

		case path := <-changes:
			app.checkExternalChange(path)
			app.render()
		}
	}
}

// pollEvents forwards backend events until stop is closed. PollEvent
// returns once the backend is shut down.
func (app *Application) pollEvents(events chan<- backend.Event, stop <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		ev := app.backend.PollEvent()
		select {
		case <-stop:
			return
		default:
		}
		if ev.Type == backend.EventNone {
			continue
		}
		select {
		case events <- ev:
		case <-stop:
			return
		}
	}
}

// handleEvent applies one backend event and reports whether the session
// asked to quit. A panic while handling the event is logged and shown as an
// error status; the session keeps running.
func (app *Application) handleEvent(ev backend.Event) (quit bool) {
	defer func() {
		if r := recover(); r != nil {
			perr := NewRecoveredPanicError(r, string(debug.Stack()))
			app.logger.Error("%v", perr)
			app.sess.Notify(perr.Summary(), true)
			quit = false
		}
	}()

	switch ev.Type {
	case backend.EventResize:
		app.renderer.Resize(ev.Width, ev.Height)
	case backend.EventKey:
		out := app.sess.HandleKey(ev.Key)
		if out.Status.IsError {
			app.logger.Debug("key %s: %s", ev.Key, out.Status.Message)
		}
		app.syncFileState()
		return out.Quit
	}
	return false
}

func (app *Application) onModeChange(from, to mode.Mode) {
	app.logger.Debug("mode %s -> %s", from, to)
}

// syncFileState follows the document's file: it moves the watcher when the
// path changes and records the file's state after each save, so the
// editor's own writes are not reported as external changes.
func (app *Application) syncFileState() {
	doc := app.sess.Document()
	path := doc.Path()
	if path == "" {
		return
	}

	if path != app.watchedPath {
		app.watchedPath = path
		if w := app.opts.Watcher; w != nil {
			if err := w.Watch(path); err != nil {
				app.logger.Warn("%v", err)
			}
		}
		app.recordFileState()
	}
	if rev := doc.SavedRevision(); rev != app.savedRev {
		app.savedRev = rev
		app.recordFileState()
	}
}

func (app *Application) recordFileState() {
	info, err := app.fs.Stat(app.watchedPath)
	app.known, app.hasKnown = info, err == nil
}

// checkExternalChange warns when the open file changed on disk and no
// longer matches the buffer.
func (app *Application) checkExternalChange(path string) {
	doc := app.sess.Document()
	if doc.Path() == "" {
		return
	}

	info, err := app.fs.Stat(doc.Path())
	if errors.Is(err, fs.ErrNotExist) {
		if app.hasKnown {
			app.hasKnown = false
			app.sess.Notify(fmt.Sprintf("E211: File %q no longer available", doc.Path()), true)
		}
		return
	}
	if err != nil {
		app.logger.Warn("%v", &FileError{Op: "stat", Path: doc.Path(), Err: err})
		return
	}
	if app.hasKnown && info.SameContent(app.known) {
		return
	}
	app.known, app.hasKnown = info, true

	data, err := app.fs.ReadFile(doc.Path())
	if err == nil && string(data) == doc.Content() {
		return
	}
	app.logger.Info("external change: %s", path)
	app.sess.Notify(fmt.Sprintf("W11: Warning: File %q has changed since editing started", doc.Path()), true)
}

// render draws the session.
func (app *Application) render() {
	app.renderer.Render(BuildView(app.sess))
}
