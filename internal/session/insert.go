package session

import (
	"github.com/dshills/kite/internal/engine/buffer"
	"github.com/dshills/kite/internal/engine/cursor"
	"github.com/dshills/kite/internal/engine/motion"
	"github.com/dshills/kite/internal/input/key"
)

func (s *Session) handleInsert(ev key.Event) {
	eng := s.doc.Engine()
	buf := eng.Buffer()
	pos := buf.Clamp(s.cur.Pos)

	switch {
	case ev.IsEscape():
		s.leaveInsert()
	case ev.IsChar():
		s.cur = eng.InsertRune(s.cur, ev.Rune)
	case ev.Is(key.KeyEnter):
		s.cur = eng.InsertNewline(s.cur)
	case ev.Is(key.KeyTab):
		s.cur = eng.InsertTab(s.cur)
	case ev.Is(key.KeyBackspace):
		s.cur = eng.Backspace(s.cur)
	case ev.Is(key.KeyDelete):
		if pos.Column < buf.LineLen(pos.Line) {
			s.cur = eng.DeleteChar(cursor.New(pos), 1)
		}
	case ev.Is(key.KeyLeft):
		if pos.Column > 0 {
			s.cur = cursor.New(buffer.Pos(pos.Line, pos.Column-1))
		}
	case ev.Is(key.KeyRight):
		if pos.Column < buf.LineLen(pos.Line) {
			s.cur = cursor.New(buffer.Pos(pos.Line, pos.Column+1))
		}
	case ev.Is(key.KeyUp):
		s.cur = motion.Vertical(eng.Snapshot(), s.cur.WithPos(pos), -1, true)
	case ev.Is(key.KeyDown):
		s.cur = motion.Vertical(eng.Snapshot(), s.cur.WithPos(pos), 1, true)
	case ev.Is(key.KeyHome):
		s.cur = cursor.New(buffer.Pos(pos.Line, 0))
	case ev.Is(key.KeyEnd):
		s.cur = cursor.New(buffer.Pos(pos.Line, buf.LineLen(pos.Line))).StickToEnd()
	}
}
