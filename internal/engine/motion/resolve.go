package motion

import (
	"unicode"

	"github.com/dshills/kite/internal/engine/buffer"
	"github.com/dshills/kite/internal/engine/cursor"
)

// Reader is the read-only buffer view motions are resolved against.
// *buffer.Snapshot and *buffer.Buffer both satisfy it.
type Reader interface {
	LineCount() int
	Line(i int) []rune
}

// Resolve applies motion k to cur count times and returns the resulting
// cursor. A count of 0 means no count was typed; it behaves as 1 except for
// the document motions, which use an explicit count as a line number.
//
// The result is a Normal mode position: its column addresses a character,
// or is 0 on an empty line. Resolve never modifies the buffer.
func Resolve(r Reader, cur cursor.Cursor, k Kind, count int) cursor.Cursor {
	cur = normalize(r, cur)
	return resolve(r, cur, k, count)
}

// ResolveTarget returns the position an operator spans to for motion k.
//
// It differs from Resolve where an exclusive span would otherwise miss the
// last character of a line. A rightward motion may reach the end-of-line
// point. A forward word motion whose final step would leave the line stops
// at the end of the line it started on. A forward paragraph motion that runs
// out of blank lines covers the rest of the buffer.
func ResolveTarget(r Reader, cur cursor.Cursor, k Kind, count int) buffer.Position {
	cur = normalize(r, cur)
	switch k {
	case Right:
		n := len(r.Line(cur.Pos.Line))
		return buffer.Pos(cur.Pos.Line, cursor.ClampInsert(cur.Pos.Column+max(count, 1), n))

	case WordForward, BigWordForward:
		big := k == BigWordForward
		p := cur.Pos
		for i := max(count, 1); i > 1; i-- {
			q, ok := wordForward(r, p, big)
			if !ok {
				break
			}
			p = q
		}
		q, ok := wordForward(r, p, big)
		if !ok || q.Line > p.Line {
			return buffer.Pos(p.Line, len(r.Line(p.Line)))
		}
		return q

	case ParagraphForward:
		p := resolve(r, cur, k, count).Pos
		if p == lastChar(r) && !isBlankLine(r.Line(p.Line)) {
			p.Column = len(r.Line(p.Line))
		}
		return p
	}

	return resolve(r, cur, k, count).Pos
}

// Vertical moves cur by delta lines, landing on the desired column. With
// allowEOL the column may rest on the end-of-line point, as in Insert mode.
// At the first or last line a move past the edge is a no-op.
func Vertical(r Reader, cur cursor.Cursor, delta int, allowEOL bool) cursor.Cursor {
	line := clampLine(r, cur.Pos.Line+delta)
	if line == cur.Pos.Line {
		return cur
	}
	n := len(r.Line(line))
	col := cursor.ClampNormal(cur.Desired, n)
	if allowEOL {
		col = cursor.ClampInsert(cur.Desired, n)
	}
	return cur.WithPos(buffer.Pos(line, col))
}

func resolve(r Reader, cur cursor.Cursor, k Kind, count int) cursor.Cursor {
	n := max(count, 1)
	p := cur.Pos
	line := r.Line(p.Line)

	switch k {
	case Left:
		return cur.MoveTo(buffer.Pos(p.Line, max(p.Column-n, 0)))

	case Right:
		return cur.MoveTo(buffer.Pos(p.Line, cursor.ClampNormal(p.Column+n, len(line))))

	case Up:
		return Vertical(r, cur, -n, false)

	case Down:
		return Vertical(r, cur, n, false)

	case LineStart:
		return cur.MoveTo(buffer.Pos(p.Line, 0))

	case LineEnd:
		target := clampLine(r, p.Line+n-1)
		col := cursor.LastColumn(len(r.Line(target)))
		return cur.MoveTo(buffer.Pos(target, col)).StickToEnd()

	case FirstNonBlank:
		return cur.MoveTo(buffer.Pos(p.Line, firstNonBlank(line)))

	case WordForward, BigWordForward:
		big := k == BigWordForward
		for i := 0; i < n; i++ {
			q, ok := wordForward(r, p, big)
			if !ok {
				p = lastChar(r)
				break
			}
			p = q
		}
		return cur.MoveTo(p)

	case WordBackward, BigWordBackward:
		big := k == BigWordBackward
		for i := 0; i < n; i++ {
			q := wordBackward(r, p, big)
			if q == p {
				break
			}
			p = q
		}
		return cur.MoveTo(p)

	case WordEnd, BigWordEnd:
		big := k == BigWordEnd
		for i := 0; i < n; i++ {
			q := wordEnd(r, p, big)
			if q == p {
				break
			}
			p = q
		}
		return cur.MoveTo(p)

	case ParagraphForward:
		for i := 0; i < n; i++ {
			q := paragraphForward(r, p)
			if q == p {
				break
			}
			p = q
		}
		return cur.MoveTo(p)

	case ParagraphBackward:
		for i := 0; i < n; i++ {
			q := paragraphBackward(r, p)
			if q == p {
				break
			}
			p = q
		}
		return cur.MoveTo(p)

	case DocumentStart:
		target := 0
		if count > 0 {
			target = clampLine(r, count-1)
		}
		return cur.MoveTo(buffer.Pos(target, firstNonBlank(r.Line(target))))

	case DocumentEnd:
		target := r.LineCount() - 1
		if count > 0 {
			target = clampLine(r, count-1)
		}
		return cur.MoveTo(buffer.Pos(target, firstNonBlank(r.Line(target))))

	case KindNone:
		return cur
	}

	return cur
}

// paragraphForward moves past any blank lines at p, then to the next blank
// line. Without one it lands on the last character of the buffer.
func paragraphForward(r Reader, p buffer.Position) buffer.Position {
	count := r.LineCount()
	line := p.Line
	for line < count && isBlankLine(r.Line(line)) {
		line++
	}
	for line < count && !isBlankLine(r.Line(line)) {
		line++
	}
	if line >= count {
		return lastChar(r)
	}
	return buffer.Pos(line, 0)
}

// paragraphBackward is the mirror of paragraphForward, landing on the
// buffer start when no blank line precedes p.
func paragraphBackward(r Reader, p buffer.Position) buffer.Position {
	line := p.Line
	for line >= 0 && isBlankLine(r.Line(line)) {
		line--
	}
	for line >= 0 && !isBlankLine(r.Line(line)) {
		line--
	}
	if line < 0 {
		return buffer.Pos(0, 0)
	}
	return buffer.Pos(line, 0)
}

// isBlankLine reports whether a line is empty or holds only whitespace.
func isBlankLine(line []rune) bool {
	for _, r := range line {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// firstNonBlank returns the column of the first non-whitespace character,
// or the last column when the line is entirely blank.
func firstNonBlank(line []rune) int {
	for i, r := range line {
		if !unicode.IsSpace(r) {
			return i
		}
	}
	return cursor.LastColumn(len(line))
}

// FirstNonBlankColumn returns the column of the first non-whitespace
// character of line i.
func FirstNonBlankColumn(r Reader, i int) int {
	return firstNonBlank(r.Line(i))
}

func lastChar(r Reader) buffer.Position {
	last := r.LineCount() - 1
	return buffer.Pos(last, cursor.LastColumn(len(r.Line(last))))
}

func clampLine(r Reader, line int) int {
	if line < 0 {
		return 0
	}
	if n := r.LineCount(); line >= n {
		return n - 1
	}
	return line
}

// normalize clamps cur to a Normal mode position in the buffer.
func normalize(r Reader, cur cursor.Cursor) cursor.Cursor {
	line := clampLine(r, cur.Pos.Line)
	col := cursor.ClampNormal(cur.Pos.Column, len(r.Line(line)))
	if line == cur.Pos.Line && col == cur.Pos.Column {
		return cur
	}
	return cur.WithPos(buffer.Pos(line, col))
}

// ChangeWordTarget returns the last character a change-word operator covers.
// Unlike a forward word motion it never includes the blanks after a word: when
// cur is already on the last character of a word, that word counts as the
// first of count.
func ChangeWordTarget(r Reader, cur cursor.Cursor, big bool, count int) buffer.Position {
	p := normalize(r, cur).Pos
	s := stream{r: r, big: big}
	n := max(count, 1)
	if next, ok := s.next(p); !ok || next.Line != p.Line || s.class(next) != s.class(p) {
		n--
	}
	for i := 0; i < n; i++ {
		q := wordEnd(r, p, big)
		if q == p {
			break
		}
		p = q
	}
	return p
}
