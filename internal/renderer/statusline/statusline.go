// Package statusline draws the mode bar and the command/message row.
package statusline

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/kite/internal/renderer/backend"
)

// NoName is shown for a document without a file name.
const NoName = "[No Name]"

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// StatusLine renders the bottom two rows: the status bar and the row
// below it that shows the command line or a message.
type StatusLine struct {
	// Display state
	mode     string // Current mode name (e.g., "NORMAL", "INSERT")
	filename string // Current filename (empty for scratch)
	modified bool   // Buffer has unsaved changes
	pending  string // Keys typed toward an unfinished command
	line     int    // Current line (1-indexed for display)
	col      int    // Current column (1-indexed for display)

	// Command line state
	commandActive bool
	commandPrompt rune
	commandBuffer string
	commandCursor int // rune offset into commandBuffer

	// Message display
	message     string
	messageType MessageType

	modeStyles map[string]backend.Style

	width int
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{
		mode:          "NORMAL",
		commandPrompt: ':',
		modeStyles:    defaultModeStyles(),
		line:          1,
		col:           1,
	}
}

// defaultModeStyles returns default styles for each mode.
func defaultModeStyles() map[string]backend.Style {
	base := backend.DefaultStyle().With(backend.AttrBold)
	return map[string]backend.Style{
		"NORMAL":  base.WithBackground(backend.ColorBlue).WithForeground(backend.ColorWhite),
		"INSERT":  base.WithBackground(backend.ColorGreen).WithForeground(backend.ColorBlack),
		"COMMAND": base.WithBackground(backend.ColorYellow).WithForeground(backend.ColorBlack),
	}
}

// SetMode updates the displayed mode.
func (s *StatusLine) SetMode(mode string) {
	s.mode = mode
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetPending updates the pending key display.
func (s *StatusLine) SetPending(keys string) {
	s.pending = keys
}

// SetPosition updates the cursor position (1-indexed).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetCommandMode activates command line display.
func (s *StatusLine) SetCommandMode(active bool) {
	s.commandActive = active
	if !active {
		s.commandBuffer = ""
		s.commandCursor = 0
	}
}

// SetCommandBuffer updates the command being typed.
func (s *StatusLine) SetCommandBuffer(buffer string, cursor int) {
	s.commandBuffer = buffer
	s.commandCursor = cursor
}

// SetMessage displays a status message.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Height returns the number of rows the status line uses.
func (s *StatusLine) Height() int {
	return 2
}

// Render draws the status bar at row and the command or message row below
// it. When the command line is active it returns the screen column of the
// command cursor and true.
func (s *StatusLine) Render(b backend.Backend, row int) (cursorX int, ok bool) {
	s.renderStatusBar(b, row)
	if s.commandActive {
		return s.renderCommandLine(b, row+1), true
	}
	s.renderMessage(b, row+1)
	return 0, false
}

// renderStatusBar renders the mode and file info line.
func (s *StatusLine) renderStatusBar(b backend.Backend, row int) {
	modeStyle, ok := s.modeStyles[s.mode]
	if !ok {
		modeStyle = backend.DefaultStyle().With(backend.AttrBold).WithBackground(backend.ColorGray)
	}
	barStyle := backend.DefaultStyle().With(backend.AttrReverse)

	fill(b, row, s.width, barStyle)

	col := put(b, 0, row, s.width, " "+s.mode+" ", modeStyle)
	col++

	filename := s.filename
	if filename == "" {
		filename = NoName
	}
	if s.modified {
		filename += " [+]"
	}

	right := s.pending
	if right != "" {
		right += "  "
	}
	right += strconv.Itoa(s.line) + ":" + strconv.Itoa(s.col)
	rightStart := s.width - runewidth.StringWidth(right) - 1

	// The name gives way to the position info.
	put(b, col, row, rightStart-1, filename, barStyle)
	if rightStart > col {
		put(b, rightStart, row, s.width, right, barStyle)
	}
}

// renderCommandLine renders the command input line and returns the screen
// column of its cursor.
func (s *StatusLine) renderCommandLine(b backend.Backend, row int) int {
	cmdStyle := backend.DefaultStyle()
	fill(b, row, s.width, cmdStyle)

	b.SetCell(0, row, backend.Cell{Rune: s.commandPrompt, Width: 1, Style: cmdStyle})
	put(b, 1, row, s.width, s.commandBuffer, cmdStyle)

	runes := []rune(s.commandBuffer)
	cur := min(max(s.commandCursor, 0), len(runes))
	return 1 + runewidth.StringWidth(string(runes[:cur]))
}

// renderMessage renders a status message.
func (s *StatusLine) renderMessage(b backend.Backend, row int) {
	msgStyle := backend.DefaultStyle()
	if s.messageType == MessageError {
		msgStyle = msgStyle.WithForeground(backend.ColorRed).With(backend.AttrBold)
	}

	fill(b, row, s.width, backend.DefaultStyle())
	put(b, 0, row, s.width, s.message, msgStyle)
}

// fill blanks a row.
func fill(b backend.Backend, row, width int, style backend.Style) {
	for x := range width {
		b.SetCell(x, row, backend.Cell{Rune: ' ', Width: 1, Style: style})
	}
}

// put draws text starting at column x, stopping before limit. It returns
// the column after the last cell drawn.
func put(b backend.Backend, x, row, limit int, text string, style backend.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		b.SetCell(x, row, backend.Cell{Rune: r, Width: w, Style: style})
		if w == 2 {
			b.SetCell(x+1, row, backend.Cell{})
		}
		x += w
	}
	return x
}
