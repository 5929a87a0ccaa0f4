package session

import (
	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/input/mode"
)

func (s *Session) handleCommand(ev key.Event) {
	cl := s.cmdline

	switch {
	case ev.IsEscape():
		s.leaveCommand()
	case ev.Is(key.KeyEnter):
		s.confirmCommand()
	case ev.Is(key.KeyBackspace):
		if cl.IsEmpty() {
			s.leaveCommand()
			return
		}
		cl.Backspace()
	case ev.Is(key.KeyDelete):
		cl.Delete()
	case ev.Is(key.KeyLeft):
		cl.MoveLeft()
	case ev.Is(key.KeyRight):
		cl.MoveRight()
	case ev.Is(key.KeyHome):
		cl.MoveToStart()
	case ev.Is(key.KeyEnd):
		cl.MoveToEnd()
	case ev.Is(key.KeyUp):
		cl.HistoryPrev()
	case ev.Is(key.KeyDown):
		cl.HistoryNext()
	case ev.IsChar():
		cl.Insert(ev.Rune)
	}
}

// confirmCommand runs the command line and returns to Normal mode.
func (s *Session) confirmCommand() {
	text := s.cmdline.Text()
	s.cmdline.AddToHistory(text)
	s.leaveCommand()

	res := s.interp.Run(text, s.doc)
	if res.Message != "" {
		s.setStatus(res.Message, res.IsError())
	}
	if res.Quit {
		s.quit = true
	}
}

// leaveCommand discards the command line and returns to Normal mode.
func (s *Session) leaveCommand() {
	s.cmdline.Reset()
	s.switchMode(mode.Normal)
}
