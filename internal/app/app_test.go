package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/input/mode"
	"github.com/dshills/kite/internal/renderer"
	"github.com/dshills/kite/internal/renderer/backend"
	"github.com/dshills/kite/internal/session"
	"github.com/dshills/kite/internal/vfs"
)

const testPath = "/doc.txt"

func newTestApp(t *testing.T, content string) (*Application, *backend.NullBackend, *vfs.MemFS) {
	t.Helper()
	mfs := vfs.NewMemFS()
	if err := mfs.AddFile(testPath, content); err != nil {
		t.Fatalf("AddFile: %v", err)
	}
	sess, err := session.Open(testPath, session.WithFS(mfs))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	b := backend.NewNullBackend(40, 10)
	a := New(sess, b, Options{Renderer: renderer.DefaultOptions(), FS: mfs})
	return a, b, mfs
}

func postKeys(b *backend.NullBackend, spec string) {
	for _, k := range key.MustParseSequence(spec) {
		b.PostEvent(backend.Event{Type: backend.EventKey, Key: k})
	}
}

func handleKeys(a *Application, spec string) {
	for _, k := range key.MustParseSequence(spec) {
		a.handleEvent(backend.Event{Type: backend.EventKey, Key: k})
	}
}

func TestRunEditWriteQuit(t *testing.T) {
	a, b, mfs := newTestApp(t, "hello\n")
	postKeys(b, "xx:wq<CR>")

	err := a.Run(context.Background())
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() = %v, want ErrQuit", err)
	}

	got, _ := mfs.Content(testPath)
	if got != "llo\n" {
		t.Errorf("file content = %q, want %q", got, "llo\n")
	}
	if b.ShowCount() == 0 {
		t.Error("expected at least one frame")
	}
}

func TestRunRendersEachKey(t *testing.T) {
	a, b, _ := newTestApp(t, "")
	postKeys(b, "ihi<Esc>:q!<CR>")

	if err := a.Run(context.Background()); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() = %v, want ErrQuit", err)
	}

	// The last frame is drawn before <CR> confirms the command.
	if got := b.Row(0); got != "  1 hi" {
		t.Errorf("row 0 = %q, want %q", got, "  1 hi")
	}
	if got := b.Row(9); got != ":q!" {
		t.Errorf("command row = %q, want %q", got, ":q!")
	}
	if b.CursorStyleValue() != backend.CursorBar {
		t.Errorf("cursor style = %v, want bar in Command mode", b.CursorStyleValue())
	}
}

func TestRunQuitRefusedKeepsRunning(t *testing.T) {
	a, b, _ := newTestApp(t, "hello\n")
	postKeys(b, "x:q<CR>:q!<CR>")

	if err := a.Run(context.Background()); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() = %v, want ErrQuit", err)
	}
	if !a.Session().Document().Modified() {
		t.Error("document should still be modified after :q!")
	}
}

func TestRunLogsModeChanges(t *testing.T) {
	var out bytes.Buffer
	mfs := vfs.NewMemFS()
	sess := session.New(session.WithFS(mfs))
	b := backend.NewNullBackend(40, 10)
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &out})
	a := New(sess, b, Options{Logger: logger, FS: mfs})
	postKeys(b, "i<Esc>:q<CR>")

	if err := a.Run(context.Background()); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() = %v, want ErrQuit", err)
	}

	logs := out.String()
	for _, want := range []string{
		"mode normal -> insert",
		"mode insert -> normal",
		"mode normal -> command",
		"mode command -> normal",
	} {
		if !strings.Contains(logs, want) {
			t.Errorf("log missing %q:\n%s", want, logs)
		}
	}
}

func TestRunContextCancelled(t *testing.T) {
	a, _, _ := newTestApp(t, "hello\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := a.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

type failingBackend struct {
	*backend.NullBackend
}

func (failingBackend) Init() error {
	return errors.New("not a terminal")
}

func TestRunInitFailure(t *testing.T) {
	sess := session.New()
	a := New(sess, failingBackend{backend.NewNullBackend(10, 10)}, Options{})

	err := a.Run(context.Background())
	var ierr *InitError
	if !errors.As(err, &ierr) || ierr.Component != "backend" {
		t.Errorf("Run() = %v, want backend InitError", err)
	}
}

func TestHandleEventRecoversPanic(t *testing.T) {
	a, _, _ := newTestApp(t, "hello\n")

	// No renderer exists before Run, so a resize panics.
	if quit := a.handleEvent(backend.Event{Type: backend.EventResize, Width: 5, Height: 5}); quit {
		t.Error("a recovered panic should not quit")
	}

	st := a.Session().Status()
	if !st.IsError || !strings.HasPrefix(st.Message, "panic: ") {
		t.Errorf("status = %+v, want panic error", st)
	}
	if strings.Contains(st.Message, "goroutine") {
		t.Error("status should not include the stack")
	}
}

func TestExternalChangeWarns(t *testing.T) {
	a, _, mfs := newTestApp(t, "hello\n")
	a.syncFileState()

	if err := mfs.WriteFile(testPath, []byte("changed elsewhere\n"), vfs.DefaultPerm); err != nil {
		t.Fatal(err)
	}
	a.checkExternalChange(testPath)

	st := a.Session().Status()
	if !st.IsError || !strings.HasPrefix(st.Message, "W11: Warning: File \"/doc.txt\" has changed") {
		t.Errorf("status = %+v, want W11 warning", st)
	}
}

func TestOwnWritesAreNotExternalChanges(t *testing.T) {
	tests := []struct {
		name string
		keys string
	}{
		{"modified write", "x:w<CR>"},
		{"unmodified write", ":w<CR>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := newTestApp(t, "hello\n")
			a.syncFileState()

			handleKeys(a, tt.keys)
			written := a.Session().Status()
			if written.IsError {
				t.Fatalf("write failed: %s", written.Message)
			}

			a.checkExternalChange(testPath)
			if got := a.Session().Status(); got != written {
				t.Errorf("status = %+v, want %+v", got, written)
			}
		})
	}
}

func TestExternalRemovalWarnsOnce(t *testing.T) {
	a, _, mfs := newTestApp(t, "hello\n")
	a.syncFileState()

	if err := mfs.Remove(testPath); err != nil {
		t.Fatal(err)
	}
	a.checkExternalChange(testPath)

	st := a.Session().Status()
	if st.Message != `E211: File "/doc.txt" no longer available` || !st.IsError {
		t.Errorf("status = %+v, want E211", st)
	}

	a.Session().Notify("", false)
	a.checkExternalChange(testPath)
	if got := a.Session().Status().Message; got != "" {
		t.Errorf("second check status = %q, want none", got)
	}
}

func TestNewFileSetsWatchedPath(t *testing.T) {
	mfs := vfs.NewMemFS()
	sess := session.New(session.WithFS(mfs))
	a := New(sess, backend.NewNullBackend(10, 10), Options{FS: mfs})

	a.syncFileState()
	if a.watchedPath != "" {
		t.Errorf("watchedPath = %q, want empty for unnamed document", a.watchedPath)
	}

	handleKeys(a, "ihi<Esc>:w /new.txt<CR>")
	if a.watchedPath != "/new.txt" {
		t.Errorf("watchedPath = %q, want /new.txt", a.watchedPath)
	}
	if !a.hasKnown {
		t.Error("expected the written file to be recorded")
	}
}

func TestBuildView(t *testing.T) {
	a, _, _ := newTestApp(t, "hello\nworld\n")
	handleKeys(a, "jl:w")

	v := BuildView(a.Session())
	if v.CursorLine != 1 || v.CursorCol != 1 {
		t.Errorf("cursor = (%d, %d), want (1, 1)", v.CursorLine, v.CursorCol)
	}
	if v.Mode != mode.Command.DisplayName() || !v.CommandActive {
		t.Errorf("mode = %q active = %v, want command line", v.Mode, v.CommandActive)
	}
	if v.Command != "w" || v.CommandCursor != 1 {
		t.Errorf("command = %q at %d, want \"w\" at 1", v.Command, v.CommandCursor)
	}
	if v.Name != testPath || v.Modified {
		t.Errorf("name = %q modified = %v", v.Name, v.Modified)
	}
	if v.Buffer.LineCount() != 2 || v.Buffer.LineText(1) != "world" {
		t.Errorf("buffer snapshot = %d lines", v.Buffer.LineCount())
	}
}

func TestCursorStyle(t *testing.T) {
	tests := []struct {
		in   mode.CursorStyle
		want backend.CursorStyle
	}{
		{mode.CursorBlock, backend.CursorBlock},
		{mode.CursorBar, backend.CursorBar},
		{mode.CursorUnderline, backend.CursorUnderline},
	}
	for _, tt := range tests {
		if got := cursorStyle(tt.in); got != tt.want {
			t.Errorf("cursorStyle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
