package excmd

import (
	"errors"
	"fmt"

	"github.com/dshills/kite/internal/vfs"
)

// Document is the edited text as the interpreter sees it.
type Document interface {
	// Content returns the text to write: every line followed by a line ending.
	Content() string

	// LineCount returns the number of lines.
	LineCount() int

	// Path returns the associated file path, or "" if none.
	Path() string

	// SetPath associates the document with a file path.
	SetPath(path string)

	// Modified reports whether there are unsaved changes.
	Modified() bool

	// MarkSaved records that the current content is what is on disk.
	MarkSaved()
}

// Result is the outcome of executing a command.
type Result struct {
	// Quit is set when the editor should exit.
	Quit bool

	// Message is the status text to show, if any.
	Message string

	// Err is non-nil when the command failed. Message then holds its text.
	Err error
}

// IsError reports whether the command failed.
func (r Result) IsError() bool {
	return r.Err != nil
}

func failed(err error) Result {
	return Result{Message: err.Error(), Err: err}
}

// Interpreter executes commands against a document, writing through a file
// system.
type Interpreter struct {
	fs vfs.FS
}

// NewInterpreter creates an interpreter that writes through fsys.
func NewInterpreter(fsys vfs.FS) *Interpreter {
	if fsys == nil {
		fsys = vfs.NewOSFS()
	}
	return &Interpreter{fs: fsys}
}

// Run parses text and executes it.
func (in *Interpreter) Run(text string, doc Document) Result {
	cmd, err := Parse(text)
	if err != nil {
		return failed(err)
	}
	return in.Execute(cmd, doc)
}

// Execute runs a parsed command.
func (in *Interpreter) Execute(cmd Command, doc Document) Result {
	switch cmd.Kind {
	case KindNone:
		return Result{}

	case KindWrite:
		return in.write(cmd, doc)

	case KindWriteQuit:
		res := in.write(cmd, doc)
		if !res.IsError() {
			res.Quit = true
		}
		return res

	case KindExit:
		if !doc.Modified() && cmd.Path == "" {
			return Result{Quit: true}
		}
		res := in.write(cmd, doc)
		if !res.IsError() {
			res.Quit = true
		}
		return res

	case KindQuit:
		if doc.Modified() && !cmd.Force {
			return failed(newError(cmd.Text, ErrUnsavedChanges,
				"No write since last change (add ! to override)"))
		}
		return Result{Quit: true}
	}

	return failed(newError(cmd.Text, ErrUnknownCommand, "Not an editor command: %s", cmd.Text))
}

// write saves the document to cmd.Path, or to its associated path. A
// document without a path adopts the one it is written to. Only a write to
// the associated path clears the modified flag.
func (in *Interpreter) write(cmd Command, doc Document) Result {
	path := cmd.Path
	if path == "" {
		path = doc.Path()
	}
	if path == "" {
		return failed(newError(cmd.Text, ErrNoFileName, "No file name"))
	}

	content := doc.Content()
	if err := in.fs.WriteFile(path, []byte(content), vfs.DefaultPerm); err != nil {
		return failed(newError(cmd.Text, errors.Join(ErrWriteFailed, err), "Error writing %q: %v", path, err))
	}

	if doc.Path() == "" {
		doc.SetPath(path)
	}
	if doc.Path() == path {
		doc.MarkSaved()
	}
	return Result{Message: fmt.Sprintf("%q %dL, %dB written", path, doc.LineCount(), len(content))}
}
