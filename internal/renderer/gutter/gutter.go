// Package gutter draws the line number column left of the text.
package gutter

import (
	"strconv"
	"strings"

	"github.com/dshills/kite/internal/renderer/backend"
)

// minDigits is the narrowest line number column.
const minDigits = 3

// Gutter draws line numbers.
type Gutter struct {
	enabled bool
	width   int
}

// New creates a gutter. A disabled gutter is zero columns wide.
func New(enabled bool) *Gutter {
	return &Gutter{enabled: enabled}
}

// SetEnabled turns line numbers on or off.
func (g *Gutter) SetEnabled(enabled bool) {
	g.enabled = enabled
}

// Update recomputes the width for a buffer of lineCount lines and returns
// it. The width includes one separator column.
func (g *Gutter) Update(lineCount int) int {
	if !g.enabled {
		g.width = 0
		return 0
	}
	digits := max(len(strconv.Itoa(max(lineCount, 1))), minDigits)
	g.width = digits + 1
	return g.width
}

// Width returns the width computed by the last Update.
func (g *Gutter) Width() int {
	return g.width
}

// Label returns the text for a screen row showing buffer line, or "~" for
// a row past the end of the buffer.
func (g *Gutter) Label(line int, exists bool) string {
	if g.width == 0 {
		return ""
	}
	s := "~"
	if exists {
		s = strconv.Itoa(line + 1)
	}
	return PadLeft(s, g.width-1) + " "
}

// Render draws the label for line at row.
func (g *Gutter) Render(b backend.Backend, row, line int, exists, current bool) {
	style := backend.DefaultStyle().With(backend.AttrDim)
	if current {
		style = backend.DefaultStyle().WithForeground(backend.ColorYellow)
	}
	for x, r := range g.Label(line, exists) {
		b.SetCell(x, row, backend.Cell{Rune: r, Width: 1, Style: style})
	}
}

// PadLeft pads s with spaces on the left to width.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
