package mode

import "fmt"

// Mode identifies an editor mode.
type Mode uint8

const (
	// Normal interprets keys as commands.
	Normal Mode = iota
	// Insert inserts typed text.
	Insert
	// Command edits the command line.
	Command
)

// String returns the mode identifier.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Command:
		return "command"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// DisplayName returns a human-readable name for the status line.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Command:
		return "COMMAND"
	default:
		return ""
	}
}

// CursorStyle returns the cursor style for the mode.
func (m Mode) CursorStyle() CursorStyle {
	if m == Normal {
		return CursorBlock
	}
	return CursorBar
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}
