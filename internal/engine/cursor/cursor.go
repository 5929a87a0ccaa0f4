package cursor

import (
	"fmt"
	"math"

	"github.com/dshills/kite/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// EndOfLine as a desired column makes vertical motions land on the last
// column of every line they visit.
const EndOfLine = math.MaxInt

// Cursor represents the cursor in the buffer.
// Cursor is an immutable value type.
type Cursor struct {
	// Pos is the current position.
	Pos Position
	// Desired is the column vertical motions try to reach.
	Desired int
}

// New creates a cursor at pos whose desired column is pos.Column.
func New(pos Position) Cursor {
	return Cursor{Pos: pos, Desired: pos.Column}
}

// At creates a cursor at line, column.
func At(line, column int) Cursor {
	return New(buffer.Pos(line, column))
}

// Line returns the cursor's line.
func (c Cursor) Line() int {
	return c.Pos.Line
}

// Column returns the cursor's column.
func (c Cursor) Column() int {
	return c.Pos.Column
}

// MoveTo returns a cursor at pos with the desired column reset to pos.Column.
func (c Cursor) MoveTo(pos Position) Cursor {
	return New(pos)
}

// WithPos returns a cursor at pos that keeps the current desired column.
func (c Cursor) WithPos(pos Position) Cursor {
	return Cursor{Pos: pos, Desired: c.Desired}
}

// StickToEnd returns a copy whose desired column follows line ends.
func (c Cursor) StickToEnd() Cursor {
	c.Desired = EndOfLine
	return c
}

// String returns a human-readable representation.
func (c Cursor) String() string {
	if c.Desired == EndOfLine {
		return fmt.Sprintf("Cursor%s want=$", c.Pos)
	}
	return fmt.Sprintf("Cursor%s want=%d", c.Pos, c.Desired)
}

// LastColumn returns the last character column of a line of length n, or 0 for
// an empty line.
func LastColumn(n int) int {
	if n == 0 {
		return 0
	}
	return n - 1
}

// ClampNormal clamps column to a character-occupying column of a line of
// length n.
func ClampNormal(column, n int) int {
	if column < 0 {
		return 0
	}
	if last := LastColumn(n); column > last {
		return last
	}
	return column
}

// ClampInsert clamps column to an insert point of a line of length n.
func ClampInsert(column, n int) int {
	if column < 0 {
		return 0
	}
	if column > n {
		return n
	}
	return column
}
