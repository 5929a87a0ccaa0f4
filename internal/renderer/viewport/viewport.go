// Package viewport tracks which part of the buffer is on screen.
package viewport

import "sync"

// DefaultSideScrollOff is the horizontal margin kept around the cursor.
const DefaultSideScrollOff = 5

// Viewport represents the visible portion of the buffer.
// Lines are buffer line indexes; columns are display columns.
type Viewport struct {
	mu sync.RWMutex

	// Position in buffer (first visible line and column)
	topLine    int
	leftColumn int

	// Size in screen cells
	width  int
	height int

	// Scroll margins (keep cursor this far from edges)
	scrollOff     int
	sideScrollOff int

	lineCount int
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{sideScrollOff: DefaultSideScrollOff, lineCount: 1}
	v.Resize(width, height)
	return v
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height
}

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine
}

// LeftColumn returns the first visible display column.
func (v *Viewport) LeftColumn() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.leftColumn
}

// Resize updates the viewport size.
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
}

// SetScrollOff sets the number of lines kept visible above and below the
// cursor. Negative values are treated as zero.
func (v *Viewport) SetScrollOff(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scrollOff = max(n, 0)
}

// SetLineCount sets the number of lines in the buffer.
func (v *Viewport) SetLineCount(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.lineCount = max(n, 1)
	if v.topLine > v.lineCount-1 {
		v.topLine = v.lineCount - 1
	}
}

// VisibleLineRange returns the first and last visible buffer lines.
func (v *Viewport) VisibleLineRange() (start, end int) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	end = min(v.topLine+v.height, v.lineCount) - 1
	return v.topLine, end
}

// IsLineVisible reports whether a buffer line is on screen.
func (v *Viewport) IsLineVisible(line int) bool {
	start, end := v.VisibleLineRange()
	return line >= start && line <= end
}

// BufferToScreen converts a buffer line and display column to a screen
// position relative to the viewport.
func (v *Viewport) BufferToScreen(line, col int) (row, screenCol int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return line - v.topLine, col - v.leftColumn
}

// ScrollToReveal scrolls minimally so that line and display column col are
// visible with the configured margins around them. Returns true if
// scrolling occurred.
func (v *Viewport) ScrollToReveal(line, col int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Margins never take more than half the viewport.
	margin := min(v.scrollOff, (v.height-1)/2)
	side := min(v.sideScrollOff, (v.width-1)/2)

	top, left := v.topLine, v.leftColumn

	if line < top+margin {
		top = max(line-margin, 0)
	} else if line > top+v.height-1-margin {
		top = line - v.height + 1 + margin
	}
	top = min(top, max(v.lineCount-1, 0))

	if col < left+side {
		left = max(col-side, 0)
	} else if col > left+v.width-1-side {
		left = col - v.width + 1 + side
	}

	moved := top != v.topLine || left != v.leftColumn
	v.topLine, v.leftColumn = top, left
	return moved
}
