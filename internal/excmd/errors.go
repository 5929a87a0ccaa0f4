package excmd

import (
	"errors"
	"fmt"
)

// Sentinel errors. Check with errors.Is.
var (
	// ErrUnknownCommand indicates the text names no command.
	ErrUnknownCommand = errors.New("excmd: unknown command")

	// ErrNoFileName indicates a write with no file argument and no
	// associated path.
	ErrNoFileName = errors.New("excmd: no file name")

	// ErrUnsavedChanges indicates a quit was refused.
	ErrUnsavedChanges = errors.New("excmd: unsaved changes")

	// ErrTrailingCharacters indicates an argument to a command that takes none.
	ErrTrailingCharacters = errors.New("excmd: trailing characters")

	// ErrWriteFailed indicates the file system rejected a write.
	ErrWriteFailed = errors.New("excmd: write failed")
)

// Error is a command failure with the message shown to the user.
type Error struct {
	// Cmd is the command text that failed.
	Cmd string

	// Message is the user-facing status text.
	Message string

	// Err is the underlying error.
	Err error
}

func newError(cmd string, err error, format string, args ...any) *Error {
	return &Error{Cmd: cmd, Message: fmt.Sprintf(format, args...), Err: err}
}

// Error returns the user-facing message.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "command failed"
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
