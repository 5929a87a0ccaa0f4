package session

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dshills/kite/internal/engine"
	"github.com/dshills/kite/internal/engine/buffer"
	"github.com/dshills/kite/internal/engine/cursor"
	"github.com/dshills/kite/internal/excmd"
	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/input/mode"
	"github.com/dshills/kite/internal/input/vim"
	"github.com/dshills/kite/internal/vfs"
)

// Status is a transient message for the status line.
type Status struct {
	Message string
	IsError bool
}

// Outcome is what the event loop needs to know after a key.
type Outcome struct {
	// Quit is set once a command asked the editor to exit.
	Quit bool

	// Status is the message produced by the key, if any.
	Status Status
}

// Session is the state of one editing session.
type Session struct {
	fs        vfs.FS
	keymap    *vim.Keymap
	interrupt key.Event
	tabWidth  int

	doc     *Document
	cur     cursor.Cursor
	modes   *mode.Manager
	acc     *vim.Accumulator
	cmdline *mode.CommandLine
	interp  *excmd.Interpreter

	status Status
	quit   bool
}

// New creates a session editing an empty, unnamed document.
func New(opts ...Option) *Session {
	s := newSession(opts)
	s.doc = newDocument(s.newEngine(""), "")
	return s
}

// Open creates a session editing the file at path. A missing file starts an
// empty document associated with path.
func Open(path string, opts ...Option) (*Session, error) {
	s := newSession(opts)

	data, err := s.fs.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.doc = newDocument(s.newEngine(""), path)
		s.setStatus(fmt.Sprintf("%q [New File]", path), false)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if vfs.IsBinary(data) {
		return nil, fmt.Errorf("%w: %s", ErrBinaryFile, path)
	}

	data, hasBOM := vfs.StripBOM(data)
	s.doc = newDocument(s.newEngine(string(data)), path)
	s.doc.hasBOM = hasBOM
	s.setStatus(fmt.Sprintf("%q %dL, %dB", path, s.doc.LineCount(), len(data)), false)
	return s, nil
}

func newSession(opts []Option) *Session {
	s := &Session{
		fs:        vfs.NewOSFS(),
		interrupt: DefaultInterruptKey,
		tabWidth:  engine.DefaultTabWidth,
		modes:     mode.NewManager(),
		cmdline:   mode.NewCommandLine(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.acc = vim.NewAccumulator(s.keymap)
	s.interp = excmd.NewInterpreter(s.fs)
	return s
}

func (s *Session) newEngine(text string) *engine.Engine {
	buf := buffer.NewBufferFromString(text, buffer.WithDetectedLineEnding(text))
	return engine.New(engine.WithBuffer(buf), engine.WithTabWidth(s.tabWidth))
}

// ============================================================================
// Accessors
// ============================================================================

// Document returns the document being edited.
func (s *Session) Document() *Document {
	return s.doc
}

// Cursor returns the current cursor.
func (s *Session) Cursor() cursor.Cursor {
	return s.cur
}

// Mode returns the current mode.
func (s *Session) Mode() mode.Mode {
	return s.modes.Current()
}

// Modes returns the mode manager, for subscribing to mode changes.
func (s *Session) Modes() *mode.Manager {
	return s.modes
}

// CommandLine returns the command line text and its edit point.
func (s *Session) CommandLine() (string, int) {
	return s.cmdline.Text(), s.cmdline.Cursor()
}

// Pending returns the Normal mode keys typed so far, such as "2d".
func (s *Session) Pending() string {
	return s.acc.Pending()
}

// Status returns the current status message.
func (s *Session) Status() Status {
	return s.status
}

// QuitRequested reports whether a command asked the editor to exit.
func (s *Session) QuitRequested() bool {
	return s.quit
}

// Notify sets the status message. It is cleared by the next key.
func (s *Session) Notify(message string, isError bool) {
	s.setStatus(message, isError)
}

func (s *Session) setStatus(message string, isError bool) {
	s.status = Status{Message: message, IsError: isError}
}

// ============================================================================
// Key Handling
// ============================================================================

// HandleKey processes one key event to completion.
func (s *Session) HandleKey(ev key.Event) Outcome {
	s.status = Status{}

	if ev.Equals(s.interrupt) {
		s.interruptInput()
		return s.outcome()
	}

	switch s.modes.Current() {
	case mode.Normal:
		s.handleNormal(ev)
	case mode.Insert:
		s.handleInsert(ev)
	case mode.Command:
		s.handleCommand(ev)
	}
	return s.outcome()
}

// interruptInput drops pending keys and the command line and returns to
// Normal mode.
func (s *Session) interruptInput() {
	s.acc.Reset()
	switch s.modes.Current() {
	case mode.Insert:
		s.leaveInsert()
	case mode.Command:
		s.leaveCommand()
	}
}

func (s *Session) outcome() Outcome {
	return Outcome{Quit: s.quit, Status: s.status}
}

// switchMode changes mode. An illegal transition falls back to Normal.
func (s *Session) switchMode(to mode.Mode) {
	if err := s.modes.Switch(to); err != nil {
		s.modes.Reset()
		s.setStatus(err.Error(), true)
	}
}
