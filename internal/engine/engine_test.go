package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/kite/internal/engine/buffer"
	"github.com/dshills/kite/internal/engine/cursor"
	"github.com/dshills/kite/internal/engine/motion"
)

// newTestEngine builds an engine holding exactly the given lines.
func newTestEngine(lines ...string) *Engine {
	return New(WithContent(strings.Join(lines, "\n") + "\n"))
}

func TestNew(t *testing.T) {
	e := New()
	assert.Equal(t, 1, e.LineCount())
	assert.Equal(t, "", e.Text())
	assert.Equal(t, DefaultTabWidth, e.TabWidth())
}

func TestNewFromReader(t *testing.T) {
	e, err := NewFromReader(strings.NewReader("a\r\nb\r\n"), WithTabWidth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, e.Lines())
	assert.Equal(t, 2, e.TabWidth())
}

// TestDeleteMotionTable exercises the delete operator with every motion.
func TestDeleteMotionTable(t *testing.T) {
	doc := []string{"one two three", "four five", "", "six"}

	tests := []struct {
		name   string
		lines  []string
		from   buffer.Position
		kind   motion.Kind
		count  int
		want   []string
		cursor buffer.Position
	}{
		{"dh", doc, buffer.Pos(0, 4), motion.Left, 0, []string{"onetwo three", "four five", "", "six"}, buffer.Pos(0, 3)},
		{"dh at line start", doc, buffer.Pos(0, 0), motion.Left, 0, doc, buffer.Pos(0, 0)},
		{"dl", doc, buffer.Pos(0, 0), motion.Right, 0, []string{"ne two three", "four five", "", "six"}, buffer.Pos(0, 0)},
		{"dl on last char", doc, buffer.Pos(1, 8), motion.Right, 0, []string{"one two three", "four fiv", "", "six"}, buffer.Pos(1, 7)},
		{"dj", doc, buffer.Pos(0, 2), motion.Down, 0, []string{"", "six"}, buffer.Pos(0, 0)},
		{"dk", doc, buffer.Pos(1, 0), motion.Up, 0, []string{"", "six"}, buffer.Pos(0, 0)},
		{"dk on first line", doc, buffer.Pos(0, 0), motion.Up, 0, doc, buffer.Pos(0, 0)},
		{"dj on last line", doc, buffer.Pos(3, 0), motion.Down, 0, doc, buffer.Pos(3, 0)},
		{"d0", doc, buffer.Pos(0, 4), motion.LineStart, 0, []string{"two three", "four five", "", "six"}, buffer.Pos(0, 0)},
		{"d$", doc, buffer.Pos(0, 4), motion.LineEnd, 0, []string{"one ", "four five", "", "six"}, buffer.Pos(0, 3)},
		{"d$ on empty line", doc, buffer.Pos(2, 0), motion.LineEnd, 0, doc, buffer.Pos(2, 0)},
		{"d^", []string{"  abc"}, buffer.Pos(0, 4), motion.FirstNonBlank, 0, []string{"  c"}, buffer.Pos(0, 2)},
		{"dw", doc, buffer.Pos(0, 0), motion.WordForward, 0, []string{"two three", "four five", "", "six"}, buffer.Pos(0, 0)},
		{"dw on last word of line", doc, buffer.Pos(0, 8), motion.WordForward, 0, []string{"one two ", "four five", "", "six"}, buffer.Pos(0, 7)},
		{"d2w", doc, buffer.Pos(0, 0), motion.WordForward, 2, []string{"three", "four five", "", "six"}, buffer.Pos(0, 0)},
		{"db", doc, buffer.Pos(0, 8), motion.WordBackward, 0, []string{"one three", "four five", "", "six"}, buffer.Pos(0, 4)},
		{"de", doc, buffer.Pos(0, 0), motion.WordEnd, 0, []string{" two three", "four five", "", "six"}, buffer.Pos(0, 0)},
		{"dW", []string{"a.b c"}, buffer.Pos(0, 0), motion.BigWordForward, 0, []string{"c"}, buffer.Pos(0, 0)},
		{"dB", []string{"a.b c"}, buffer.Pos(0, 4), motion.BigWordBackward, 0, []string{"c"}, buffer.Pos(0, 0)},
		{"dE", []string{"a.b c"}, buffer.Pos(0, 0), motion.BigWordEnd, 0, []string{" c"}, buffer.Pos(0, 0)},
		{"d}", doc, buffer.Pos(0, 0), motion.ParagraphForward, 0, []string{"", "six"}, buffer.Pos(0, 0)},
		{"d{", doc, buffer.Pos(3, 2), motion.ParagraphBackward, 0, []string{"one two three", "four five", "x"}, buffer.Pos(2, 0)},
		{"d{ from line start is linewise", doc, buffer.Pos(3, 0), motion.ParagraphBackward, 0, []string{"one two three", "four five", "six"}, buffer.Pos(2, 0)},
		{"db from line start keeps the break", []string{"foo bar", "baz"}, buffer.Pos(1, 0), motion.WordBackward, 0, []string{"foo ", "baz"}, buffer.Pos(0, 3)},
		{"db to a line's first word is linewise", []string{"foo", "  bar"}, buffer.Pos(1, 0), motion.WordBackward, 0, []string{"  bar"}, buffer.Pos(0, 2)},
		{"dgg", doc, buffer.Pos(1, 3), motion.DocumentStart, 0, []string{"", "six"}, buffer.Pos(0, 0)},
		{"dG", doc, buffer.Pos(1, 0), motion.DocumentEnd, 0, []string{"one two three"}, buffer.Pos(0, 0)},
		{"dG whole buffer", doc, buffer.Pos(0, 0), motion.DocumentEnd, 0, []string{""}, buffer.Pos(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(tt.lines...)
			got := e.DeleteMotion(cursor.New(tt.from), tt.kind, tt.count)
			assert.Equal(t, tt.want, e.Lines())
			assert.Equal(t, tt.cursor, got.Pos)
		})
	}
}

// TestDeleteMotionCoversEveryKind guards the table above against new motions.
func TestDeleteMotionCoversEveryKind(t *testing.T) {
	for _, k := range motion.Kinds() {
		e := newTestEngine("alpha beta", "", "gamma")
		cur := e.DeleteMotion(cursor.At(0, 3), k, 0)
		assert.GreaterOrEqual(t, e.LineCount(), 1, "motion %s", k)
		assert.True(t, e.Buffer().Valid(cur.Pos), "motion %s left cursor at %v", k, cur.Pos)
	}
}

func TestDeleteWordScenario(t *testing.T) {
	e := newTestEngine("hello world", "foo")
	cur := e.DeleteMotion(cursor.At(0, 0), motion.WordForward, 0)
	assert.Equal(t, []string{"world", "foo"}, e.Lines())
	assert.Equal(t, buffer.Pos(0, 0), cur.Pos)
}

func TestMotionSpan(t *testing.T) {
	e := newTestEngine("hello world", "foo")

	span, ok := e.MotionSpan(cursor.At(0, 0), motion.WordEnd, 0)
	require.True(t, ok)
	assert.Equal(t, Span{Start: buffer.Pos(0, 0), End: buffer.Pos(0, 5)}, span)

	span, ok = e.MotionSpan(cursor.At(0, 3), motion.Down, 0)
	require.True(t, ok)
	assert.True(t, span.Linewise)
	assert.Equal(t, buffer.Pos(1, 3), span.End)

	_, ok = e.MotionSpan(cursor.At(1, 0), motion.Down, 0)
	assert.False(t, ok)
}

func TestDeleteLines(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		from   buffer.Position
		count  int
		want   []string
		cursor buffer.Position
	}{
		{"single line buffer", []string{"hello"}, buffer.Pos(0, 2), 1, []string{""}, buffer.Pos(0, 0)},
		{"2dd", []string{"a", "b", "c"}, buffer.Pos(0, 0), 2, []string{"c"}, buffer.Pos(0, 0)},
		{"last line", []string{"a", "b"}, buffer.Pos(1, 0), 1, []string{"a"}, buffer.Pos(0, 0)},
		{"count past end", []string{"a", "b", "c"}, buffer.Pos(1, 0), 5, []string{"a"}, buffer.Pos(0, 0)},
		{"lands on first non-blank", []string{"a", "  b"}, buffer.Pos(0, 0), 1, []string{"  b"}, buffer.Pos(0, 2)},
		{"empty buffer", []string{""}, buffer.Pos(0, 0), 1, []string{""}, buffer.Pos(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(tt.lines...)
			got := e.DeleteLines(cursor.New(tt.from), tt.count)
			assert.Equal(t, tt.want, e.Lines())
			assert.Equal(t, tt.cursor, got.Pos)
		})
	}
}

func TestDeleteChar(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		col    int
		count  int
		want   string
		cursor int
	}{
		{"x", "abc", 1, 0, "ac", 1},
		{"x on last char", "abc", 2, 0, "ab", 1},
		{"x on empty line", "", 0, 0, "", 0},
		{"3x", "abcdef", 1, 3, "aef", 1},
		{"count past end", "abcdef", 1, 10, "a", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(tt.line)
			got := e.DeleteChar(cursor.At(0, tt.col), tt.count)
			assert.Equal(t, tt.want, e.LineText(0))
			assert.Equal(t, tt.cursor, got.Column())
		})
	}
}

func TestDeleteChar_EmptyLineKeepsRevision(t *testing.T) {
	e := newTestEngine("")
	rev := e.Revision()
	e.DeleteChar(cursor.At(0, 0), 1)
	assert.Equal(t, rev, e.Revision())
}

func TestDeleteToLineEnd(t *testing.T) {
	e := newTestEngine("hello world")
	got := e.DeleteToLineEnd(cursor.At(0, 5), 0)
	assert.Equal(t, []string{"hello"}, e.Lines())
	assert.Equal(t, buffer.Pos(0, 4), got.Pos)

	e = newTestEngine("ab", "cd", "ef")
	got = e.DeleteToLineEnd(cursor.At(0, 1), 2)
	assert.Equal(t, []string{"a", "ef"}, e.Lines())
	assert.Equal(t, buffer.Pos(0, 0), got.Pos)

	e = newTestEngine("")
	rev := e.Revision()
	e.DeleteToLineEnd(cursor.At(0, 0), 1)
	assert.Equal(t, rev, e.Revision())
}

func TestJoinLines(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		from   buffer.Position
		count  int
		want   []string
		cursor buffer.Position
	}{
		{"strips indent", []string{"foo", "   bar"}, buffer.Pos(0, 0), 0, []string{"foo bar"}, buffer.Pos(0, 3)},
		{"last line is no-op", []string{"foo", "bar"}, buffer.Pos(1, 1), 0, []string{"foo", "bar"}, buffer.Pos(1, 1)},
		{"single line is no-op", []string{"foo"}, buffer.Pos(0, 0), 0, []string{"foo"}, buffer.Pos(0, 0)},
		{"empty next line", []string{"foo", ""}, buffer.Pos(0, 0), 0, []string{"foo"}, buffer.Pos(0, 2)},
		{"trailing blank", []string{"foo ", "bar"}, buffer.Pos(0, 0), 0, []string{"foo bar"}, buffer.Pos(0, 4)},
		{"empty current line", []string{"", "bar"}, buffer.Pos(0, 0), 0, []string{"bar"}, buffer.Pos(0, 0)},
		{"3J", []string{"a", "b", "c", "d"}, buffer.Pos(0, 0), 3, []string{"a b c", "d"}, buffer.Pos(0, 3)},
		{"count past end", []string{"a", "b"}, buffer.Pos(0, 0), 9, []string{"a b"}, buffer.Pos(0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(tt.lines...)
			got := e.JoinLines(cursor.New(tt.from), tt.count)
			assert.Equal(t, tt.want, e.Lines())
			assert.Equal(t, tt.cursor, got.Pos)
		})
	}
}

func TestJoinLinesOnLastLineKeepsRevision(t *testing.T) {
	e := newTestEngine("a", "b")
	rev := e.Revision()
	e.JoinLines(cursor.At(1, 0), 1)
	assert.Equal(t, rev, e.Revision())
}

func TestReplaceChar(t *testing.T) {
	e := newTestEngine("abc")
	got := e.ReplaceChar(cursor.At(0, 1), 'X', 0)
	assert.Equal(t, []string{"aXc"}, e.Lines())
	assert.Equal(t, buffer.Pos(0, 1), got.Pos)

	e = newTestEngine("abc")
	got = e.ReplaceChar(cursor.At(0, 1), 'X', 2)
	assert.Equal(t, []string{"aXX"}, e.Lines())
	assert.Equal(t, buffer.Pos(0, 2), got.Pos)

	e = newTestEngine("abc")
	got = e.ReplaceChar(cursor.At(0, 1), 'X', 3)
	assert.Equal(t, []string{"abc"}, e.Lines())
	assert.Equal(t, buffer.Pos(0, 1), got.Pos)

	e = newTestEngine("")
	got = e.ReplaceChar(cursor.At(0, 0), 'X', 1)
	assert.Equal(t, []string{""}, e.Lines())
	assert.Equal(t, buffer.Pos(0, 0), got.Pos)
}

func TestOpenLine(t *testing.T) {
	e := newTestEngine("abc", "def")
	got := e.OpenLineBelow(cursor.At(0, 1))
	assert.Equal(t, []string{"abc", "", "def"}, e.Lines())
	assert.Equal(t, buffer.Pos(1, 0), got.Pos)

	e = newTestEngine("abc", "def")
	got = e.OpenLineAbove(cursor.At(0, 1))
	assert.Equal(t, []string{"", "abc", "def"}, e.Lines())
	assert.Equal(t, buffer.Pos(0, 0), got.Pos)

	e = newTestEngine("abc")
	got = e.OpenLineBelow(cursor.At(0, 0))
	assert.Equal(t, []string{"abc", ""}, e.Lines())
	assert.Equal(t, buffer.Pos(1, 0), got.Pos)
}

func TestChangeMotion(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		from   buffer.Position
		kind   motion.Kind
		count  int
		want   []string
		cursor buffer.Position
	}{
		{"cw changes to word end", []string{"hello world"}, buffer.Pos(0, 0), motion.WordForward, 0, []string{" world"}, buffer.Pos(0, 0)},
		{"cw on one-letter word", []string{"a b"}, buffer.Pos(0, 0), motion.WordForward, 0, []string{" b"}, buffer.Pos(0, 0)},
		{"c2w", []string{"a b c"}, buffer.Pos(0, 0), motion.WordForward, 2, []string{" c"}, buffer.Pos(0, 0)},
		{"cw on blanks", []string{"a  b"}, buffer.Pos(0, 1), motion.WordForward, 0, []string{"ab"}, buffer.Pos(0, 1)},
		{"cW", []string{"a.b c"}, buffer.Pos(0, 0), motion.BigWordForward, 0, []string{" c"}, buffer.Pos(0, 0)},
		{"c$", []string{"hello world"}, buffer.Pos(0, 5), motion.LineEnd, 0, []string{"hello"}, buffer.Pos(0, 5)},
		{"cj", []string{"  a", "b", "c"}, buffer.Pos(0, 0), motion.Down, 0, []string{"  ", "c"}, buffer.Pos(0, 2)},
		{"cb", []string{"foo bar"}, buffer.Pos(0, 4), motion.WordBackward, 0, []string{"bar"}, buffer.Pos(0, 0)},
		{"cb from line start keeps the break", []string{"foo bar", "baz"}, buffer.Pos(1, 0), motion.WordBackward, 0, []string{"foo ", "baz"}, buffer.Pos(0, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(tt.lines...)
			got, ok := e.ChangeMotion(cursor.New(tt.from), tt.kind, tt.count)
			assert.True(t, ok)
			assert.Equal(t, tt.want, e.Lines())
			assert.Equal(t, tt.cursor, got.Pos)
		})
	}
}

func TestChangeMotionThatCannotMove(t *testing.T) {
	e := newTestEngine("a", "b")
	rev := e.Revision()

	got, ok := e.ChangeMotion(cursor.At(1, 0), motion.Down, 0)
	assert.False(t, ok)
	assert.Equal(t, buffer.Pos(1, 0), got.Pos)
	assert.Equal(t, []string{"a", "b"}, e.Lines())
	assert.Equal(t, rev, e.Revision())
}

func TestChangeLines(t *testing.T) {
	e := newTestEngine("  foo", "bar")
	got := e.ChangeLines(cursor.At(0, 3), 1)
	assert.Equal(t, []string{"  ", "bar"}, e.Lines())
	assert.Equal(t, buffer.Pos(0, 2), got.Pos)

	e = newTestEngine("a", "b", "c")
	got = e.ChangeLines(cursor.At(1, 0), 5)
	assert.Equal(t, []string{"a", ""}, e.Lines())
	assert.Equal(t, buffer.Pos(1, 0), got.Pos)
}

func TestChangeToLineEnd(t *testing.T) {
	e := newTestEngine("hello world")
	got := e.ChangeToLineEnd(cursor.At(0, 5), 1)
	assert.Equal(t, []string{"hello"}, e.Lines())
	assert.Equal(t, buffer.Pos(0, 5), got.Pos)
}

func TestInsertOperations(t *testing.T) {
	e := newTestEngine("abc")

	cur := e.InsertRune(cursor.At(0, 3), 'd')
	assert.Equal(t, "abcd", e.LineText(0))
	assert.Equal(t, buffer.Pos(0, 4), cur.Pos)

	cur = e.InsertNewline(cursor.At(0, 1))
	assert.Equal(t, []string{"a", "bcd"}, e.Lines())
	assert.Equal(t, buffer.Pos(1, 0), cur.Pos)

	cur = e.Backspace(cur)
	assert.Equal(t, []string{"abcd"}, e.Lines())
	assert.Equal(t, buffer.Pos(0, 1), cur.Pos)

	cur = e.Backspace(cur)
	assert.Equal(t, []string{"bcd"}, e.Lines())
	assert.Equal(t, buffer.Pos(0, 0), cur.Pos)

	cur = e.Backspace(cur)
	assert.Equal(t, []string{"bcd"}, e.Lines())
	assert.Equal(t, buffer.Pos(0, 0), cur.Pos)
}

func TestInsertTab(t *testing.T) {
	e := New(WithContent("abc"), WithTabWidth(2))
	cur := e.InsertTab(cursor.At(0, 0))
	assert.Equal(t, "  abc", e.LineText(0))
	assert.Equal(t, buffer.Pos(0, 2), cur.Pos)
}

func TestInsertEntryPoints(t *testing.T) {
	e := newTestEngine("  abc", "", "   ")

	assert.Equal(t, buffer.Pos(0, 4), e.Append(cursor.At(0, 3)).Pos)
	assert.Equal(t, buffer.Pos(0, 5), e.Append(cursor.At(0, 4)).Pos)
	assert.Equal(t, buffer.Pos(1, 0), e.Append(cursor.At(1, 0)).Pos)
	assert.Equal(t, buffer.Pos(0, 5), e.AppendLineEnd(cursor.At(0, 0)).Pos)
	assert.Equal(t, buffer.Pos(0, 2), e.InsertLineStart(cursor.At(0, 4)).Pos)
	assert.Equal(t, buffer.Pos(2, 3), e.InsertLineStart(cursor.At(2, 0)).Pos)
}

func TestLeaveInsert(t *testing.T) {
	e := newTestEngine("abc", "")

	assert.Equal(t, buffer.Pos(0, 2), e.LeaveInsert(cursor.At(0, 3)).Pos)
	assert.Equal(t, buffer.Pos(0, 1), e.LeaveInsert(cursor.At(0, 1)).Pos)
	assert.Equal(t, buffer.Pos(1, 0), e.LeaveInsert(cursor.At(1, 0)).Pos)
}

func TestNormalizeKeepsDesired(t *testing.T) {
	e := newTestEngine("abc")
	c := cursor.Cursor{Pos: buffer.Pos(0, 3), Desired: 9}
	got := e.Normalize(c)
	assert.Equal(t, buffer.Pos(0, 2), got.Pos)
	assert.Equal(t, 9, got.Desired)
}

// TestPropertyEditsKeepInvariants applies random edits and checks the buffer
// always has a line and the cursor stays addressable.
func TestPropertyEditsKeepInvariants(t *testing.T) {
	kinds := motion.Kinds()
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z .]{0,10}`), 1, 5).Draw(t, "lines")
		e := newTestEngine(lines...)
		cur := cursor.At(0, 0)

		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			count := rapid.IntRange(0, 3).Draw(t, "count")
			switch rapid.IntRange(0, 9).Draw(t, "op") {
			case 0:
				cur = e.DeleteMotion(cur, rapid.SampledFrom(kinds).Draw(t, "kind"), count)
			case 1:
				cur = e.DeleteLines(cur, count)
			case 2:
				cur = e.DeleteChar(cur, count)
			case 3:
				cur = e.JoinLines(cur, count)
			case 4:
				cur = e.ReplaceChar(cur, 'z', count)
			case 5:
				cur = e.DeleteToLineEnd(cur, count)
			case 6:
				ins, _ := e.ChangeMotion(cur, rapid.SampledFrom(kinds).Draw(t, "kind"), count)
				cur = e.LeaveInsert(ins)
			case 7:
				cur = e.LeaveInsert(e.InsertText(e.OpenLineBelow(cur), "new"))
			case 8:
				cur = e.LeaveInsert(e.Backspace(e.Append(cur)))
			case 9:
				cur = motion.Resolve(e.Snapshot(), cur, rapid.SampledFrom(kinds).Draw(t, "move"), count)
			}

			if e.LineCount() < 1 {
				t.Fatalf("buffer has no lines")
			}
			n := e.Buffer().LineLen(cur.Pos.Line)
			if cur.Pos.Line >= e.LineCount() || cur.Pos.Column != cursor.ClampNormal(cur.Pos.Column, n) {
				t.Fatalf("cursor %v invalid in %q", cur.Pos, e.Lines())
			}
		}
	})
}
