package session

import (
	"github.com/dshills/kite/internal/engine/cursor"
	"github.com/dshills/kite/internal/engine/motion"
	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/input/mode"
	"github.com/dshills/kite/internal/input/vim"
)

func (s *Session) handleNormal(ev key.Event) {
	res := s.acc.Feed(ev)
	if res.Status == vim.Completed {
		s.execute(res.Command)
	}
}

// execute applies a completed Normal mode command.
func (s *Session) execute(cmd vim.Command) {
	eng := s.doc.Engine()

	switch cmd.Kind {
	case vim.CommandMotion:
		s.cur = motion.Resolve(eng.Snapshot(), s.cur, cmd.Motion, cmd.Count)

	case vim.CommandOperatorMotion:
		if !cmd.Operator.EntersInsert() {
			s.cur = eng.DeleteMotion(s.cur, cmd.Motion, cmd.Count)
			return
		}
		// A change whose motion cannot move stays in Normal mode.
		if cur, ok := eng.ChangeMotion(s.cur, cmd.Motion, cmd.Count); ok {
			s.enterInsert(cur)
		}

	case vim.CommandOperatorLine:
		if cmd.Operator.EntersInsert() {
			s.enterInsert(eng.ChangeLines(s.cur, cmd.GetCount()))
		} else {
			s.cur = eng.DeleteLines(s.cur, cmd.GetCount())
		}

	case vim.CommandEdit:
		s.edit(cmd)

	case vim.CommandModeSwitch:
		s.enter(cmd.Entry)
	}
}

func (s *Session) edit(cmd vim.Command) {
	eng := s.doc.Engine()

	switch cmd.Edit {
	case vim.EditDeleteChar:
		s.cur = eng.DeleteChar(s.cur, cmd.GetCount())
	case vim.EditDeleteToLineEnd:
		s.cur = eng.DeleteToLineEnd(s.cur, cmd.GetCount())
	case vim.EditChangeToLineEnd:
		s.enterInsert(eng.ChangeToLineEnd(s.cur, cmd.GetCount()))
	case vim.EditJoinLines:
		s.cur = eng.JoinLines(s.cur, cmd.Count)
	case vim.EditReplaceChar:
		s.cur = eng.ReplaceChar(s.cur, cmd.Char, cmd.GetCount())
	}
}

// enter performs a mode switch command.
func (s *Session) enter(entry vim.Entry) {
	eng := s.doc.Engine()

	switch entry {
	case vim.EntryInsert:
		s.enterInsert(cursor.New(eng.Buffer().Clamp(s.cur.Pos)))
	case vim.EntryAppend:
		s.enterInsert(eng.Append(s.cur))
	case vim.EntryInsertLineStart:
		s.enterInsert(eng.InsertLineStart(s.cur))
	case vim.EntryAppendLineEnd:
		s.enterInsert(eng.AppendLineEnd(s.cur))
	case vim.EntryOpenBelow:
		s.enterInsert(eng.OpenLineBelow(s.cur))
	case vim.EntryOpenAbove:
		s.enterInsert(eng.OpenLineAbove(s.cur))
	case vim.EntryCommandLine:
		s.cmdline.Reset()
		s.switchMode(mode.Command)
	}
}

// enterInsert places the cursor at an insert point and switches to Insert.
func (s *Session) enterInsert(cur cursor.Cursor) {
	s.cur = cur
	s.switchMode(mode.Insert)
}

// leaveInsert returns to Normal, moving the cursor off the end-of-line
// insert point.
func (s *Session) leaveInsert() {
	s.cur = s.doc.Engine().LeaveInsert(s.cur)
	s.switchMode(mode.Normal)
}
