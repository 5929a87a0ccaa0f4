package app

import (
	"github.com/dshills/kite/internal/input/mode"
	"github.com/dshills/kite/internal/renderer"
	"github.com/dshills/kite/internal/renderer/backend"
	"github.com/dshills/kite/internal/session"
)

// BuildView snapshots a session for the renderer.
func BuildView(s *session.Session) renderer.View {
	doc := s.Document()
	cur := s.Cursor()
	m := s.Mode()
	cmd, cmdCursor := s.CommandLine()
	status := s.Status()

	return renderer.View{
		Buffer:        doc.Engine().Snapshot(),
		CursorLine:    cur.Line(),
		CursorCol:     cur.Column(),
		Mode:          m.DisplayName(),
		CursorStyle:   cursorStyle(m.CursorStyle()),
		Name:          doc.Path(),
		Modified:      doc.Modified(),
		Pending:       s.Pending(),
		CommandActive: m == mode.Command,
		Command:       cmd,
		CommandCursor: cmdCursor,
		Message:       status.Message,
		IsError:       status.IsError,
	}
}

// cursorStyle maps a mode's cursor shape to the backend's.
func cursorStyle(c mode.CursorStyle) backend.CursorStyle {
	switch c {
	case mode.CursorBar:
		return backend.CursorBar
	case mode.CursorUnderline:
		return backend.CursorUnderline
	default:
		return backend.CursorBlock
	}
}
