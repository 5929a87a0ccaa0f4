package buffer

import (
	"errors"
	"io"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrLineOutOfRange     = errors.New("line out of range")
	ErrRangeInvalid       = errors.New("invalid range")
)

// Buffer is a mutable, line-addressable text store.
// It always contains at least one line. All methods are thread-safe.
//
// Line slices are never modified in place: an edit replaces the affected lines
// with freshly allocated slices. Snapshots rely on this to share line storage.
type Buffer struct {
	mu         sync.RWMutex
	lines      [][]rune
	revisionID RevisionID
	lineEnding LineEnding
}

// NewBuffer creates a new buffer holding a single empty line.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      [][]rune{{}},
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
// A single trailing line terminator does not create an extra empty line, so
// "hi\n" loads as one line.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.lines = splitLines(normalizeLineEndings(s))
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
// The detected line ending style is kept for Content.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	text := string(data)
	opts = append([]Option{WithDetectedLineEnding(text)}, opts...)
	return NewBufferFromString(text, opts...), nil
}

// splitLines splits LF-normalized text into rune lines.
func splitLines(s string) [][]rune {
	s = strings.TrimSuffix(s, "\n")
	parts := strings.Split(s, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}

// Read Operations

// Text returns the buffer content with lines joined by LF and no trailing
// terminator.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return joinLines(b.lines, "\n", false)
}

// Content returns the buffer content as it is written to a file: every line
// followed by the buffer's line ending.
func (b *Buffer) Content() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return joinLines(b.lines, b.lineEnding.Sequence(), true)
}

func joinLines(lines [][]rune, sep string, terminate bool) string {
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(string(l))
	}
	if terminate {
		sb.WriteString(sep)
	}
	return sb.String()
}

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// Line returns a copy of the runes of line i, or nil if out of range.
func (b *Buffer) Line(i int) []rune {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	out := make([]rune, len(b.lines[i]))
	copy(out, b.lines[i])
	return out
}

// LineText returns the text of line i (without terminator).
func (b *Buffer) LineText(i int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return string(b.lines[i])
}

// LineLen returns the rune length of line i, or 0 if out of range.
func (b *Buffer) LineLen(i int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return len(b.lines[i])
}

// RuneAt returns the rune at pos. The second result is false when pos is at
// or past the end of its line, or outside the buffer.
func (b *Buffer) RuneAt(pos Position) (rune, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if pos.Line < 0 || pos.Line >= len(b.lines) {
		return 0, false
	}
	line := b.lines[pos.Line]
	if pos.Column < 0 || pos.Column >= len(line) {
		return 0, false
	}
	return line[pos.Column], true
}

// IsEmpty returns true if the buffer is a single empty line.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Revision returns the current revision ID.
func (b *Buffer) Revision() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// LineEnding returns the line ending style used by Content.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// Valid reports whether pos addresses a character or an end-of-line point.
func (b *Buffer) Valid(pos Position) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.validLocked(pos)
}

// Clamp returns the nearest valid position to pos.
func (b *Buffer) Clamp(pos Position) Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return clamp(b.lines, pos)
}

func clamp(lines [][]rune, pos Position) Position {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(lines) {
		pos.Line = len(lines) - 1
	}
	if pos.Column < 0 {
		pos.Column = 0
	}
	if n := len(lines[pos.Line]); pos.Column > n {
		pos.Column = n
	}
	return pos
}

// Write Operations

// Insert inserts text at pos and returns the position just after the inserted
// text. Line terminators in text split lines.
func (b *Buffer) Insert(pos Position, text string) (Position, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.validLocked(pos) {
		return pos, ErrPositionOutOfRange
	}
	if text == "" {
		return pos, nil
	}

	end := b.insertLocked(pos, text)
	b.revisionID = NewRevisionID()
	return end, nil
}

// Delete removes the half-open span between start and end and returns the
// removed text. The positions may be given in either order.
func (b *Buffer) Delete(start, end Position) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	start, end = Order(start, end)
	if !b.validLocked(start) || !b.validLocked(end) {
		return "", ErrPositionOutOfRange
	}
	if start == end {
		return "", nil
	}

	removed := b.textRangeLocked(start, end)
	b.deleteLocked(start, end)
	b.revisionID = NewRevisionID()
	return removed, nil
}

// Replace deletes the span between start and end and inserts text in its
// place as one edit. It returns the position just after the inserted text.
func (b *Buffer) Replace(start, end Position, text string) (Position, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	start, end = Order(start, end)
	if !b.validLocked(start) || !b.validLocked(end) {
		return start, ErrPositionOutOfRange
	}
	if start == end && text == "" {
		return start, nil
	}

	b.deleteLocked(start, end)
	after := start
	if text != "" {
		after = b.insertLocked(start, text)
	}
	b.revisionID = NewRevisionID()
	return after, nil
}

// SetRune replaces the character at pos with r.
func (b *Buffer) SetRune(pos Position, r rune) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if pos.Line < 0 || pos.Line >= len(b.lines) {
		return ErrPositionOutOfRange
	}
	old := b.lines[pos.Line]
	if pos.Column < 0 || pos.Column >= len(old) {
		return ErrPositionOutOfRange
	}

	line := make([]rune, len(old))
	copy(line, old)
	line[pos.Column] = r
	b.lines[pos.Line] = line
	b.revisionID = NewRevisionID()
	return nil
}

// DeleteLines removes count lines starting at line start and returns their
// text. count is clamped to the lines available. Removing every line leaves a
// single empty line.
func (b *Buffer) DeleteLines(start, count int) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start >= len(b.lines) {
		return nil, ErrLineOutOfRange
	}
	if count < 1 {
		return nil, ErrRangeInvalid
	}
	end := start + count
	if end > len(b.lines) {
		end = len(b.lines)
	}

	removed := make([]string, 0, end-start)
	for _, l := range b.lines[start:end] {
		removed = append(removed, string(l))
	}

	lines := make([][]rune, 0, len(b.lines)-(end-start))
	lines = append(lines, b.lines[:start]...)
	lines = append(lines, b.lines[end:]...)
	if len(lines) == 0 {
		lines = append(lines, []rune{})
	}
	b.lines = lines
	b.revisionID = NewRevisionID()
	return removed, nil
}

// SetText replaces the whole buffer content.
func (b *Buffer) SetText(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = splitLines(normalizeLineEndings(s))
	b.revisionID = NewRevisionID()
}

// Snapshot returns a read-only view of the current content.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	lines := make([][]rune, len(b.lines))
	copy(lines, b.lines)
	return &Snapshot{
		lines:      lines,
		revisionID: b.revisionID,
	}
}

// Internal helpers. Callers hold the lock.

func (b *Buffer) validLocked(pos Position) bool {
	if pos.Line < 0 || pos.Line >= len(b.lines) {
		return false
	}
	return pos.Column >= 0 && pos.Column <= len(b.lines[pos.Line])
}

func (b *Buffer) textRangeLocked(start, end Position) string {
	if start.Line == end.Line {
		return string(b.lines[start.Line][start.Column:end.Column])
	}

	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Line][start.Column:]))
	for i := start.Line + 1; i < end.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[i]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[end.Line][:end.Column]))
	return sb.String()
}

func (b *Buffer) insertLocked(pos Position, text string) Position {
	parts := strings.Split(normalizeLineEndings(text), "\n")
	line := b.lines[pos.Line]
	head := line[:pos.Column]
	tail := line[pos.Column:]

	if len(parts) == 1 {
		ins := []rune(parts[0])
		b.lines[pos.Line] = concat(head, ins, tail)
		return Position{Line: pos.Line, Column: pos.Column + len(ins)}
	}

	fresh := make([][]rune, len(parts))
	fresh[0] = concat(head, []rune(parts[0]))
	for i := 1; i < len(parts)-1; i++ {
		fresh[i] = []rune(parts[i])
	}
	last := []rune(parts[len(parts)-1])
	fresh[len(parts)-1] = concat(last, tail)

	lines := make([][]rune, 0, len(b.lines)+len(parts)-1)
	lines = append(lines, b.lines[:pos.Line]...)
	lines = append(lines, fresh...)
	lines = append(lines, b.lines[pos.Line+1:]...)
	b.lines = lines

	return Position{Line: pos.Line + len(parts) - 1, Column: len(last)}
}

func (b *Buffer) deleteLocked(start, end Position) {
	if start == end {
		return
	}
	joined := concat(b.lines[start.Line][:start.Column], b.lines[end.Line][end.Column:])
	if start.Line == end.Line {
		b.lines[start.Line] = joined
		return
	}

	lines := make([][]rune, 0, len(b.lines)-(end.Line-start.Line))
	lines = append(lines, b.lines[:start.Line]...)
	lines = append(lines, joined)
	lines = append(lines, b.lines[end.Line+1:]...)
	b.lines = lines
}

// concat returns a newly allocated slice holding the given parts in order.
func concat(parts ...[]rune) []rune {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]rune, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
