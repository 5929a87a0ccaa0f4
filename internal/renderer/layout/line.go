// Package layout converts buffer lines into screen cells.
package layout

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/kite/internal/renderer/backend"
)

// DefaultTabWidth is used when a non-positive tab width is given.
const DefaultTabWidth = 4

// LineLayout represents the visual layout of a single buffer line.
type LineLayout struct {
	// Cells holds the visual cells after tab expansion. The cell after a
	// wide character is the zero Cell.
	Cells []backend.Cell

	// BufferCols maps a buffer column (rune index) to its visual column.
	BufferCols []int

	// Width is the total visual width in columns.
	Width int
}

// VisualColumn converts a buffer column to a visual column.
// Columns beyond the line are extrapolated one cell per column.
func (l *LineLayout) VisualColumn(bufCol int) int {
	if bufCol < 0 {
		return 0
	}
	if bufCol >= len(l.BufferCols) {
		return l.Width + bufCol - len(l.BufferCols)
	}
	return l.BufferCols[bufCol]
}

// LayoutEngine computes line layouts.
type LayoutEngine struct {
	tabWidth int
}

// NewLayoutEngine creates a layout engine with the given tab width.
func NewLayoutEngine(tabWidth int) *LayoutEngine {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return &LayoutEngine{tabWidth: tabWidth}
}

// TabWidth returns the tab width.
func (e *LayoutEngine) TabWidth() int {
	return e.tabWidth
}

// SetTabWidth sets the tab width (minimum 1).
func (e *LayoutEngine) SetTabWidth(width int) {
	e.tabWidth = max(width, 1)
}

// Layout computes the visual layout for a line drawn in style.
func (e *LayoutEngine) Layout(line string, style backend.Style) *LineLayout {
	layout := &LineLayout{
		Cells:      make([]backend.Cell, 0, len(line)),
		BufferCols: make([]int, 0, len(line)),
	}

	visCol := 0
	for _, r := range line {
		layout.BufferCols = append(layout.BufferCols, visCol)

		if r == '\t' {
			stop := e.tabWidth - visCol%e.tabWidth
			for range stop {
				layout.Cells = append(layout.Cells, backend.Cell{Rune: ' ', Width: 1, Style: style})
			}
			visCol += stop
			continue
		}

		width := runewidth.RuneWidth(r)
		if width == 0 {
			// Control and combining characters take no cell.
			continue
		}
		layout.Cells = append(layout.Cells, backend.Cell{Rune: r, Width: width, Style: style})
		if width == 2 {
			layout.Cells = append(layout.Cells, backend.Cell{})
		}
		visCol += width
	}

	layout.Width = visCol
	return layout
}

// StringWidth returns the display width of s with tabs expanded from
// column zero.
func (e *LayoutEngine) StringWidth(s string) int {
	return e.Layout(s, backend.DefaultStyle()).Width
}
