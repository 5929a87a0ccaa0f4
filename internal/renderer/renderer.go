package renderer

import (
	"sync"

	"github.com/dshills/kite/internal/renderer/backend"
	"github.com/dshills/kite/internal/renderer/gutter"
	"github.com/dshills/kite/internal/renderer/layout"
	"github.com/dshills/kite/internal/renderer/statusline"
	"github.com/dshills/kite/internal/renderer/viewport"
)

// BufferReader provides read access to buffer content.
type BufferReader interface {
	// LineCount returns the number of lines. It is never zero.
	LineCount() int

	// LineText returns the text of a line (0-indexed).
	LineText(line int) string
}

// View is everything needed to draw one frame.
type View struct {
	Buffer BufferReader

	// Cursor position as a buffer line and rune column.
	CursorLine int
	CursorCol  int

	// Mode is the display name of the current mode, e.g. "INSERT".
	Mode        string
	CursorStyle backend.CursorStyle

	Name     string
	Modified bool
	Pending  string

	CommandActive bool
	Command       string
	CommandCursor int

	Message string
	IsError bool
}

// Options configures the renderer.
type Options struct {
	ShowLineNumbers bool
	TabWidth        int
	ScrollOff       int
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		ShowLineNumbers: true,
		TabWidth:        layout.DefaultTabWidth,
		ScrollOff:       3,
	}
}

// Renderer draws Views on a backend.
type Renderer struct {
	mu sync.Mutex

	backend backend.Backend
	width   int
	height  int

	viewport *viewport.Viewport
	layout   *layout.LayoutEngine
	gutter   *gutter.Gutter
	status   *statusline.StatusLine
}

// New creates a new renderer with the given backend and options. The
// backend must already be initialized.
func New(b backend.Backend, opts Options) *Renderer {
	width, height := b.Size()

	r := &Renderer{
		backend:  b,
		viewport: viewport.NewViewport(width, height),
		layout:   layout.NewLayoutEngine(opts.TabWidth),
		gutter:   gutter.New(opts.ShowLineNumbers),
		status:   statusline.New(),
	}
	r.viewport.SetScrollOff(opts.ScrollOff)
	r.resize(width, height)
	return r
}

// Resize updates the screen size.
func (r *Renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resize(width, height)
}

func (r *Renderer) resize(width, height int) {
	r.width = width
	r.height = height
	r.status.Resize(width)
}

// Viewport returns the viewport.
func (r *Renderer) Viewport() *viewport.Viewport {
	return r.viewport
}

// textRows returns the number of rows available for buffer text.
func (r *Renderer) textRows() int {
	return max(r.height-r.status.Height(), 0)
}

// Render draws a frame.
func (r *Renderer) Render(v View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.textRows()
	lineCount := v.Buffer.LineCount()

	gw := min(r.gutter.Update(lineCount), r.width)
	contentWidth := r.width - gw

	r.viewport.Resize(contentWidth, rows)
	r.viewport.SetLineCount(lineCount)

	cursorLayout := r.layout.Layout(v.Buffer.LineText(v.CursorLine), backend.DefaultStyle())
	cursorVis := cursorLayout.VisualColumn(v.CursorCol)
	r.viewport.ScrollToReveal(v.CursorLine, cursorVis)

	top := r.viewport.TopLine()
	for row := range rows {
		line := top + row
		exists := line < lineCount
		r.gutter.Render(r.backend, row, line, exists, line == v.CursorLine)
		if !exists {
			r.clearLineContent(row, gw)
			continue
		}
		r.renderLine(v.Buffer.LineText(line), row, gw, contentWidth)
	}

	cmdX, onCommand := r.renderStatus(v, rows)
	r.backend.SetCursorStyle(v.CursorStyle)
	if onCommand {
		r.backend.ShowCursor(cmdX, rows+1)
	} else {
		r.renderCursor(v, rows, gw, cursorVis)
	}
	r.backend.Show()
}

// renderLine renders a single buffer line at the given screen row.
func (r *Renderer) renderLine(text string, row, gw, contentWidth int) {
	lineLayout := r.layout.Layout(text, backend.DefaultStyle())
	left := r.viewport.LeftColumn()

	for x := range contentWidth {
		visCol := left + x

		cell := backend.EmptyCell()
		if visCol < len(lineLayout.Cells) {
			cell = lineLayout.Cells[visCol]
		}
		// Half of a wide character at either edge is drawn blank.
		if (cell.Rune == 0 && x == 0) || (cell.Width == 2 && x == contentWidth-1) {
			cell = backend.EmptyCell()
		}
		r.backend.SetCell(gw+x, row, cell)
	}
}

// clearLineContent clears the content area of a row.
func (r *Renderer) clearLineContent(row, gw int) {
	empty := backend.EmptyCell()
	for x := gw; x < r.width; x++ {
		r.backend.SetCell(x, row, empty)
	}
}

// renderStatus draws the bottom rows below the text. When the command line
// is showing it returns the column of its cursor and true.
func (r *Renderer) renderStatus(v View, rows int) (int, bool) {
	if r.height < r.status.Height() {
		return 0, false
	}

	name := v.Name
	if name == "" {
		name = statusline.NoName
	}

	r.status.SetMode(v.Mode)
	r.status.SetFilename(name)
	r.status.SetModified(v.Modified)
	r.status.SetPending(v.Pending)
	r.status.SetPosition(v.CursorLine+1, v.CursorCol+1)
	r.status.SetCommandMode(v.CommandActive)
	if v.CommandActive {
		r.status.SetCommandBuffer(v.Command, v.CommandCursor)
	}

	switch {
	case v.Message == "":
		r.status.ClearMessage()
	case v.IsError:
		r.status.SetMessage(v.Message, statusline.MessageError)
	default:
		r.status.SetMessage(v.Message, statusline.MessageInfo)
	}
	return r.status.Render(r.backend, rows)
}

// renderCursor places the cursor on the text, hiding it when off screen.
func (r *Renderer) renderCursor(v View, rows, gw, cursorVis int) {
	row, col := r.viewport.BufferToScreen(v.CursorLine, cursorVis)
	if row < 0 || row >= rows || col < 0 || col >= r.width-gw {
		r.backend.HideCursor()
		return
	}
	r.backend.ShowCursor(gw+col, row)
}
