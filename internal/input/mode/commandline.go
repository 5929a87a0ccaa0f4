package mode

import "unicode"

// maxHistory bounds the number of remembered command lines.
const maxHistory = 100

// CommandLine is the text typed after ":" with an edit point and history.
type CommandLine struct {
	// buffer holds the command being typed.
	buffer []rune

	// cursorPos is the edit point within the buffer.
	cursorPos int

	// history holds previous commands, oldest first.
	history []string

	// historyIndex is the current position in history (-1 = current input).
	historyIndex int

	// savedBuffer holds the buffer when navigating history.
	savedBuffer []rune
}

// NewCommandLine creates an empty command line.
func NewCommandLine() *CommandLine {
	return &CommandLine{
		buffer:       make([]rune, 0, 64),
		history:      make([]string, 0, maxHistory),
		historyIndex: -1,
	}
}

// Reset clears the buffer and leaves history navigation. History is kept.
func (c *CommandLine) Reset() {
	c.buffer = c.buffer[:0]
	c.cursorPos = 0
	c.historyIndex = -1
	c.savedBuffer = nil
}

// Text returns the current command text.
func (c *CommandLine) Text() string {
	return string(c.buffer)
}

// SetText replaces the command text and puts the edit point at its end.
func (c *CommandLine) SetText(s string) {
	c.buffer = []rune(s)
	c.cursorPos = len(c.buffer)
}

// Len returns the number of runes typed.
func (c *CommandLine) Len() int {
	return len(c.buffer)
}

// IsEmpty reports whether nothing has been typed.
func (c *CommandLine) IsEmpty() bool {
	return len(c.buffer) == 0
}

// Cursor returns the edit point as a rune offset.
func (c *CommandLine) Cursor() int {
	return c.cursorPos
}

// Insert inserts r at the edit point. Non-printable runes are ignored.
func (c *CommandLine) Insert(r rune) bool {
	if !unicode.IsPrint(r) {
		return false
	}
	c.buffer = append(c.buffer, 0)
	copy(c.buffer[c.cursorPos+1:], c.buffer[c.cursorPos:])
	c.buffer[c.cursorPos] = r
	c.cursorPos++
	return true
}

// Backspace deletes the character before the edit point.
func (c *CommandLine) Backspace() bool {
	if c.cursorPos == 0 {
		return false
	}
	c.buffer = append(c.buffer[:c.cursorPos-1], c.buffer[c.cursorPos:]...)
	c.cursorPos--
	return true
}

// Delete deletes the character at the edit point.
func (c *CommandLine) Delete() bool {
	if c.cursorPos >= len(c.buffer) {
		return false
	}
	c.buffer = append(c.buffer[:c.cursorPos], c.buffer[c.cursorPos+1:]...)
	return true
}

// MoveLeft moves the edit point left.
func (c *CommandLine) MoveLeft() bool {
	if c.cursorPos == 0 {
		return false
	}
	c.cursorPos--
	return true
}

// MoveRight moves the edit point right.
func (c *CommandLine) MoveRight() bool {
	if c.cursorPos >= len(c.buffer) {
		return false
	}
	c.cursorPos++
	return true
}

// MoveToStart moves the edit point to the start.
func (c *CommandLine) MoveToStart() {
	c.cursorPos = 0
}

// MoveToEnd moves the edit point to the end.
func (c *CommandLine) MoveToEnd() {
	c.cursorPos = len(c.buffer)
}

// AddToHistory records a confirmed command.
func (c *CommandLine) AddToHistory(cmd string) {
	if cmd == "" {
		return
	}
	// Don't add duplicates of the last command
	if len(c.history) > 0 && c.history[len(c.history)-1] == cmd {
		return
	}
	if len(c.history) == maxHistory {
		c.history = append(c.history[:0], c.history[1:]...)
	}
	c.history = append(c.history, cmd)
}

// HistoryPrev replaces the text with the previous history entry.
func (c *CommandLine) HistoryPrev() bool {
	if len(c.history) == 0 {
		return false
	}

	switch {
	case c.historyIndex == -1:
		c.savedBuffer = append([]rune(nil), c.buffer...)
		c.historyIndex = len(c.history) - 1
	case c.historyIndex > 0:
		c.historyIndex--
	default:
		return false
	}

	c.SetText(c.history[c.historyIndex])
	return true
}

// HistoryNext replaces the text with the next history entry, restoring the
// text typed before navigation started once the newest entry is passed.
func (c *CommandLine) HistoryNext() bool {
	if c.historyIndex == -1 {
		return false
	}

	c.historyIndex++
	if c.historyIndex >= len(c.history) {
		c.historyIndex = -1
		c.buffer = c.savedBuffer
		if c.buffer == nil {
			c.buffer = make([]rune, 0, 64)
		}
		c.cursorPos = len(c.buffer)
		c.savedBuffer = nil
		return true
	}

	c.SetText(c.history[c.historyIndex])
	return true
}

// History returns a copy of the command history, oldest first.
func (c *CommandLine) History() []string {
	return append([]string(nil), c.history...)
}
