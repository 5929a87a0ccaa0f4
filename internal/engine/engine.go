package engine

import (
	"io"
	"strings"
	"unicode"

	"github.com/dshills/kite/internal/engine/buffer"
	"github.com/dshills/kite/internal/engine/cursor"
	"github.com/dshills/kite/internal/engine/motion"
)

// Engine applies edits to a buffer.
//
// Engine is driven from a single goroutine. The buffer it wraps may be read
// concurrently, for example by a renderer holding a snapshot.
type Engine struct {
	buf      *buffer.Buffer
	tabWidth int
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{tabWidth: DefaultTabWidth}
	for _, opt := range opts {
		opt(e)
	}
	if e.buf == nil {
		e.buf = buffer.NewBuffer()
	}
	return e
}

// NewFromReader creates an Engine whose buffer is loaded from r.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	buf, err := buffer.NewBufferFromReader(r)
	if err != nil {
		return nil, err
	}
	return New(append(opts, WithBuffer(buf))...), nil
}

// ============================================================================
// Read Operations
// ============================================================================

// Buffer returns the underlying buffer.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.buf
}

// Snapshot returns a read-only view of the current content.
func (e *Engine) Snapshot() *buffer.Snapshot {
	return e.buf.Snapshot()
}

// Text returns the buffer content joined by LF.
func (e *Engine) Text() string {
	return e.buf.Text()
}

// Lines returns a copy of every line.
func (e *Engine) Lines() []string {
	snap := e.buf.Snapshot()
	lines := make([]string, snap.LineCount())
	for i := range lines {
		lines[i] = snap.LineText(i)
	}
	return lines
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() int {
	return e.buf.LineCount()
}

// LineText returns the text of line i.
func (e *Engine) LineText(i int) string {
	return e.buf.LineText(i)
}

// Revision returns the buffer's current revision.
func (e *Engine) Revision() buffer.RevisionID {
	return e.buf.Revision()
}

// TabWidth returns the number of spaces InsertTab inserts.
func (e *Engine) TabWidth() int {
	return e.tabWidth
}

// SetText replaces the whole buffer content.
func (e *Engine) SetText(s string) {
	e.buf.SetText(s)
}

// Normalize clamps cur to a Normal mode position, keeping its desired column.
func (e *Engine) Normalize(cur cursor.Cursor) cursor.Cursor {
	pos := e.normalPos(cur.Pos)
	if pos == cur.Pos {
		return cur
	}
	return cur.WithPos(pos)
}

// ============================================================================
// Operators
// ============================================================================

// Span is the region an operator acts on.
type Span struct {
	Start    buffer.Position
	End      buffer.Position
	Linewise bool
}

// Empty reports whether the span covers nothing.
func (s Span) Empty() bool {
	return !s.Linewise && s.Start == s.End
}

// MotionSpan returns the span an operator covers when it consumes motion k
// from cur. The second result is false when the motion cannot move, such as
// j on the last line.
func (e *Engine) MotionSpan(cur cursor.Cursor, k motion.Kind, count int) (Span, bool) {
	snap := e.buf.Snapshot()
	cur = cur.WithPos(e.normalPos(cur.Pos))
	target := motion.ResolveTarget(snap, cur, k, count)

	switch k.Type() {
	case motion.Linewise:
		if (k == motion.Up || k == motion.Down) && target.Line == cur.Pos.Line {
			return Span{}, false
		}
		lo, hi := cur.Pos.Line, target.Line
		if hi < lo {
			lo, hi = hi, lo
		}
		return Span{
			Start:    buffer.Pos(lo, 0),
			End:      buffer.Pos(hi, snap.LineLen(hi)),
			Linewise: true,
		}, true

	case motion.Inclusive:
		start, end := buffer.Order(cur.Pos, target)
		if end.Column < snap.LineLen(end.Line) {
			end.Column++
		}
		return Span{Start: start, End: end}, true

	case motion.Exclusive:
		start, end := buffer.Order(cur.Pos, target)
		if end.Column == 0 && end.Line > start.Line {
			// An exclusive span ending at a line start keeps that line's
			// break. From at or before the first non-blank it covers whole
			// lines.
			end = buffer.Pos(end.Line-1, snap.LineLen(end.Line-1))
			if start.Column <= motion.FirstNonBlankColumn(snap, start.Line) {
				return Span{
					Start:    buffer.Pos(start.Line, 0),
					End:      end,
					Linewise: true,
				}, true
			}
		}
		return Span{Start: start, End: end}, true
	}

	return Span{}, false
}

// DeleteMotion deletes from cur to the target of motion k and returns the
// cursor at the start of the deleted span.
func (e *Engine) DeleteMotion(cur cursor.Cursor, k motion.Kind, count int) cursor.Cursor {
	span, ok := e.MotionSpan(cur, k, count)
	if !ok || span.Empty() {
		return e.Normalize(cur)
	}
	return e.deleteSpan(span)
}

// ChangeMotion deletes the span of motion k like DeleteMotion and returns the
// Insert mode cursor where replacement text goes. On a non-blank character a
// forward word motion changes only to the end of the word. The second result
// is false, and the buffer untouched, when the motion cannot move.
func (e *Engine) ChangeMotion(cur cursor.Cursor, k motion.Kind, count int) (cursor.Cursor, bool) {
	cur = cur.WithPos(e.normalPos(cur.Pos))

	var span Span
	if r, ok := e.buf.RuneAt(cur.Pos); ok && !unicode.IsSpace(r) &&
		(k == motion.WordForward || k == motion.BigWordForward) {
		end := motion.ChangeWordTarget(e.buf.Snapshot(), cur, k == motion.BigWordForward, count)
		end.Column++
		span = Span{Start: cur.Pos, End: end}
	} else {
		s, found := e.MotionSpan(cur, k, count)
		if !found {
			return cur, false
		}
		span = s
	}

	if span.Linewise {
		return e.changeLines(span.Start.Line, span.End.Line), true
	}
	if _, err := e.buf.Delete(span.Start, span.End); err != nil {
		return cur, false
	}
	return cursor.New(span.Start), true
}

// DeleteLines deletes count lines starting at the cursor line (dd). The
// buffer keeps at least one line.
func (e *Engine) DeleteLines(cur cursor.Cursor, count int) cursor.Cursor {
	pos := e.normalPos(cur.Pos)
	last := min(pos.Line+max(count, 1)-1, e.buf.LineCount()-1)
	return e.deleteSpan(Span{
		Start:    buffer.Pos(pos.Line, 0),
		End:      buffer.Pos(last, e.buf.LineLen(last)),
		Linewise: true,
	})
}

// ChangeLines replaces count lines starting at the cursor line with a single
// line holding the first line's indentation (cc), and returns the Insert
// mode cursor after the indentation.
func (e *Engine) ChangeLines(cur cursor.Cursor, count int) cursor.Cursor {
	pos := e.normalPos(cur.Pos)
	last := min(pos.Line+max(count, 1)-1, e.buf.LineCount()-1)
	return e.changeLines(pos.Line, last)
}

func (e *Engine) deleteSpan(span Span) cursor.Cursor {
	if span.Linewise {
		if _, err := e.buf.DeleteLines(span.Start.Line, span.End.Line-span.Start.Line+1); err != nil {
			return cursor.New(e.normalPos(span.Start))
		}
		line := min(span.Start.Line, e.buf.LineCount()-1)
		return cursor.New(buffer.Pos(line, motion.FirstNonBlankColumn(e.buf, line)))
	}

	if _, err := e.buf.Delete(span.Start, span.End); err != nil {
		return cursor.New(e.normalPos(span.Start))
	}
	return cursor.New(e.normalPos(span.Start))
}

func (e *Engine) changeLines(first, last int) cursor.Cursor {
	indent := leadingBlanks(e.buf.Line(first))
	end := buffer.Pos(last, e.buf.LineLen(last))
	after, err := e.buf.Replace(buffer.Pos(first, 0), end, string(indent))
	if err != nil {
		return cursor.New(buffer.Pos(first, 0))
	}
	return cursor.New(after)
}

// ============================================================================
// Direct Edits
// ============================================================================

// DeleteChar deletes count characters under and after the cursor (x). It is a
// no-op on an empty line.
func (e *Engine) DeleteChar(cur cursor.Cursor, count int) cursor.Cursor {
	pos := e.normalPos(cur.Pos)
	n := e.buf.LineLen(pos.Line)
	if n == 0 {
		return cursor.New(pos)
	}
	end := buffer.Pos(pos.Line, min(pos.Column+max(count, 1), n))
	if _, err := e.buf.Delete(pos, end); err != nil {
		return cursor.New(pos)
	}
	return cursor.New(e.normalPos(pos))
}

// DeleteToLineEnd deletes from the cursor to the end of the line, and through
// count-1 further lines (D).
func (e *Engine) DeleteToLineEnd(cur cursor.Cursor, count int) cursor.Cursor {
	pos := e.normalPos(cur.Pos)
	end := e.lineEndSpan(pos, count)
	if pos == end {
		return cursor.New(pos)
	}
	if _, err := e.buf.Delete(pos, end); err != nil {
		return cursor.New(pos)
	}
	return cursor.New(e.normalPos(pos))
}

// ChangeToLineEnd deletes like DeleteToLineEnd and returns the Insert mode
// cursor at the deletion point (C).
func (e *Engine) ChangeToLineEnd(cur cursor.Cursor, count int) cursor.Cursor {
	pos := e.normalPos(cur.Pos)
	end := e.lineEndSpan(pos, count)
	if pos != end {
		if _, err := e.buf.Delete(pos, end); err != nil {
			return cursor.New(pos)
		}
	}
	return cursor.New(pos)
}

func (e *Engine) lineEndSpan(pos buffer.Position, count int) buffer.Position {
	last := min(pos.Line+max(count, 1)-1, e.buf.LineCount()-1)
	return buffer.Pos(last, e.buf.LineLen(last))
}

// JoinLines joins count lines (at least two) starting at the cursor line (J).
// Leading blanks of each joined line are dropped and a single space separates
// the parts, unless the joined line is empty or the text so far already ends
// in a blank. On the last line it is a no-op.
func (e *Engine) JoinLines(cur cursor.Cursor, count int) cursor.Cursor {
	pos := e.normalPos(cur.Pos)
	lastLine := e.buf.LineCount() - 1
	if pos.Line >= lastLine {
		return cursor.New(pos)
	}

	endLine := min(pos.Line+max(count, 2)-1, lastLine)
	joined := e.buf.Line(pos.Line)
	col := 0
	for l := pos.Line + 1; l <= endLine; l++ {
		next := e.buf.Line(l)
		next = next[len(leadingBlanks(next)):]
		col = len(joined)
		if len(next) > 0 && len(joined) > 0 && !unicode.IsSpace(joined[len(joined)-1]) {
			joined = append(joined, ' ')
		}
		joined = append(joined, next...)
	}

	end := buffer.Pos(endLine, e.buf.LineLen(endLine))
	if _, err := e.buf.Replace(buffer.Pos(pos.Line, 0), end, string(joined)); err != nil {
		return cursor.New(pos)
	}
	return cursor.New(e.normalPos(buffer.Pos(pos.Line, col)))
}

// ReplaceChar replaces count characters starting at the cursor with r (r).
// Nothing changes when fewer than count characters remain on the line. The
// cursor ends on the last replaced character.
func (e *Engine) ReplaceChar(cur cursor.Cursor, r rune, count int) cursor.Cursor {
	pos := e.normalPos(cur.Pos)
	n := max(count, 1)
	if pos.Column+n > e.buf.LineLen(pos.Line) {
		return e.Normalize(cur)
	}

	end := buffer.Pos(pos.Line, pos.Column+n)
	if _, err := e.buf.Replace(pos, end, strings.Repeat(string(r), n)); err != nil {
		return cursor.New(pos)
	}
	return cursor.New(buffer.Pos(pos.Line, pos.Column+n-1))
}

// OpenLineBelow inserts an empty line after the cursor line and returns the
// Insert mode cursor at its start (o).
func (e *Engine) OpenLineBelow(cur cursor.Cursor) cursor.Cursor {
	pos := e.buf.Clamp(cur.Pos)
	at := buffer.Pos(pos.Line, e.buf.LineLen(pos.Line))
	if _, err := e.buf.Insert(at, "\n"); err != nil {
		return cursor.New(pos)
	}
	return cursor.New(buffer.Pos(pos.Line+1, 0))
}

// OpenLineAbove inserts an empty line before the cursor line and returns the
// Insert mode cursor at its start (O).
func (e *Engine) OpenLineAbove(cur cursor.Cursor) cursor.Cursor {
	pos := e.buf.Clamp(cur.Pos)
	if _, err := e.buf.Insert(buffer.Pos(pos.Line, 0), "\n"); err != nil {
		return cursor.New(pos)
	}
	return cursor.New(buffer.Pos(pos.Line, 0))
}

// ============================================================================
// Insert Mode
// ============================================================================

// Append returns the Insert mode cursor after the character under cur (a).
func (e *Engine) Append(cur cursor.Cursor) cursor.Cursor {
	pos := e.normalPos(cur.Pos)
	n := e.buf.LineLen(pos.Line)
	return cursor.New(buffer.Pos(pos.Line, cursor.ClampInsert(pos.Column+1, n)))
}

// AppendLineEnd returns the Insert mode cursor at the end of the line (A).
func (e *Engine) AppendLineEnd(cur cursor.Cursor) cursor.Cursor {
	pos := e.buf.Clamp(cur.Pos)
	return cursor.New(buffer.Pos(pos.Line, e.buf.LineLen(pos.Line)))
}

// InsertLineStart returns the Insert mode cursor before the first non-blank
// character of the line (I).
func (e *Engine) InsertLineStart(cur cursor.Cursor) cursor.Cursor {
	pos := e.buf.Clamp(cur.Pos)
	return cursor.New(buffer.Pos(pos.Line, len(leadingBlanks(e.buf.Line(pos.Line)))))
}

// LeaveInsert converts an Insert mode cursor to a Normal mode one, stepping
// back off the end-of-line insert point.
func (e *Engine) LeaveInsert(cur cursor.Cursor) cursor.Cursor {
	return cursor.New(e.normalPos(cur.Pos))
}

// InsertText inserts text at the cursor and returns the cursor after it.
func (e *Engine) InsertText(cur cursor.Cursor, text string) cursor.Cursor {
	pos := e.buf.Clamp(cur.Pos)
	end, err := e.buf.Insert(pos, text)
	if err != nil {
		return cursor.New(pos)
	}
	return cursor.New(end)
}

// InsertRune inserts a single character at the cursor.
func (e *Engine) InsertRune(cur cursor.Cursor, r rune) cursor.Cursor {
	return e.InsertText(cur, string(r))
}

// InsertNewline splits the line at the cursor.
func (e *Engine) InsertNewline(cur cursor.Cursor) cursor.Cursor {
	return e.InsertText(cur, "\n")
}

// InsertTab inserts TabWidth spaces at the cursor.
func (e *Engine) InsertTab(cur cursor.Cursor) cursor.Cursor {
	return e.InsertText(cur, strings.Repeat(" ", e.tabWidth))
}

// Backspace deletes the character before the cursor. At the start of a line
// it joins the line onto the previous one; at the buffer start it does
// nothing.
func (e *Engine) Backspace(cur cursor.Cursor) cursor.Cursor {
	pos := e.buf.Clamp(cur.Pos)

	var start buffer.Position
	switch {
	case pos.Column > 0:
		start = buffer.Pos(pos.Line, pos.Column-1)
	case pos.Line > 0:
		start = buffer.Pos(pos.Line-1, e.buf.LineLen(pos.Line-1))
	default:
		return cursor.New(pos)
	}

	if _, err := e.buf.Delete(start, pos); err != nil {
		return cursor.New(pos)
	}
	return cursor.New(start)
}

// ============================================================================
// Helpers
// ============================================================================

// normalPos clamps pos into the buffer with a character-occupying column.
func (e *Engine) normalPos(pos buffer.Position) buffer.Position {
	pos = e.buf.Clamp(pos)
	pos.Column = cursor.ClampNormal(pos.Column, e.buf.LineLen(pos.Line))
	return pos
}

func leadingBlanks(line []rune) []rune {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}
