package motion

import (
	"unicode"

	"github.com/dshills/kite/internal/engine/buffer"
)

// class is the character class used by word motions.
type class uint8

const (
	classBlank class = iota
	classWord
	classPunct
	// classEmpty is an empty line, which word motions treat as a word.
	classEmpty
)

// isWordRune reports whether r belongs to a keyword run.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// stream walks a buffer one character at a time across lines. The position
// one past the last character of a non-empty line stands for its line
// terminator and is classified as blank. The last line has no terminator.
type stream struct {
	r   Reader
	big bool
}

func (s stream) class(p buffer.Position) class {
	line := s.r.Line(p.Line)
	if len(line) == 0 {
		return classEmpty
	}
	if p.Column >= len(line) {
		return classBlank
	}
	ch := line[p.Column]
	switch {
	case unicode.IsSpace(ch):
		return classBlank
	case s.big || isWordRune(ch):
		return classWord
	default:
		return classPunct
	}
}

func (s stream) next(p buffer.Position) (buffer.Position, bool) {
	n := len(s.r.Line(p.Line))
	last := p.Line >= s.r.LineCount()-1

	if n == 0 || p.Column >= n {
		if last {
			return p, false
		}
		return buffer.Pos(p.Line+1, 0), true
	}
	if p.Column < n-1 {
		return buffer.Pos(p.Line, p.Column+1), true
	}
	if last {
		return p, false
	}
	return buffer.Pos(p.Line, n), true
}

func (s stream) prev(p buffer.Position) (buffer.Position, bool) {
	if p.Column > 0 {
		return buffer.Pos(p.Line, p.Column-1), true
	}
	if p.Line == 0 {
		return p, false
	}
	pl := p.Line - 1
	return buffer.Pos(pl, len(s.r.Line(pl))), true
}

// wordForward returns the start of the next word. The second result is
// false when no word follows p before the end of the buffer.
func wordForward(r Reader, p buffer.Position, big bool) (buffer.Position, bool) {
	s := stream{r: r, big: big}
	q, ok := p, true

	switch c := s.class(p); c {
	case classEmpty:
		q, ok = s.next(q)
	case classWord, classPunct:
		for ok && s.class(q) == c {
			q, ok = s.next(q)
		}
	}
	for ok && s.class(q) == classBlank {
		q, ok = s.next(q)
	}
	if !ok {
		return p, false
	}
	return q, true
}

// wordEnd returns the last character of the current or next word.
func wordEnd(r Reader, p buffer.Position, big bool) buffer.Position {
	s := stream{r: r, big: big}
	q, ok := s.next(p)
	for ok && (s.class(q) == classBlank || s.class(q) == classEmpty) {
		q, ok = s.next(q)
	}
	if !ok {
		return p
	}

	c := s.class(q)
	for {
		n, ok := s.next(q)
		if !ok || s.class(n) != c {
			return q
		}
		q = n
	}
}

// wordBackward returns the start of the current or previous word.
func wordBackward(r Reader, p buffer.Position, big bool) buffer.Position {
	s := stream{r: r, big: big}
	q, ok := s.prev(p)
	if !ok {
		return p
	}
	for s.class(q) == classBlank {
		if q, ok = s.prev(q); !ok {
			return q
		}
	}

	c := s.class(q)
	if c == classEmpty {
		return q
	}
	for {
		n, ok := s.prev(q)
		if !ok || s.class(n) != c {
			return q
		}
		q = n
	}
}
