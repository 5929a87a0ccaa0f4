package session

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/kite/internal/engine/cursor"
	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/input/mode"
	"github.com/dshills/kite/internal/vfs"
)

// propertyKeys covers every Normal mode binding plus the keys the other modes
// react to.
var propertyKeys = func() []key.Event {
	var evs []key.Event
	for _, r := range "hjklwbeWBE0$^{}gGdcxDCJrioOaAI:q!w 12 39" {
		evs = append(evs, key.Char(r))
	}
	for _, spec := range []string{"<Esc>", "<CR>", "<BS>", "<Del>", "<Tab>", "<Up>", "<Down>", "<Left>", "<Right>", "<Home>", "<End>", "<C-c>"} {
		evs = append(evs, key.MustParse(spec))
	}
	return evs
}()

func TestSessionStaysValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[ a-c_.]{0,6}`), 1, 5).Draw(t, "lines")
		keys := rapid.SliceOfN(rapid.SampledFrom(propertyKeys), 1, 60).Draw(t, "keys")

		mfs := vfs.NewMemFS()
		if err := mfs.AddFile(testPath, strings.Join(lines, "\n")+"\n"); err != nil {
			t.Fatalf("add file: %v", err)
		}
		s, err := Open(testPath, WithFS(mfs))
		if err != nil {
			t.Fatalf("open: %v", err)
		}

		for i, ev := range keys {
			s.HandleKey(ev)

			buf := s.Document().Engine().Buffer()
			n := buf.LineCount()
			if n < 1 {
				t.Fatalf("key %d (%s): buffer has no lines", i, ev)
			}

			pos := s.Cursor().Pos
			if pos.Line < 0 || pos.Line >= n {
				t.Fatalf("key %d (%s): cursor line %d outside %d lines", i, ev, pos.Line, n)
			}
			lineLen := buf.LineLen(pos.Line)
			maxCol := cursor.LastColumn(lineLen)
			if s.Mode() == mode.Insert {
				maxCol = lineLen
			}
			if pos.Column < 0 || pos.Column > maxCol {
				t.Fatalf("key %d (%s): cursor %s beyond column %d in %s mode",
					i, ev, pos, maxCol, s.Mode())
			}
			if s.Mode() != mode.Normal && s.Pending() != "" {
				t.Fatalf("key %d (%s): pending keys %q outside Normal mode", i, ev, s.Pending())
			}
		}
	})
}

func TestInterruptAlwaysReturnsToNormal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfN(rapid.SampledFrom(propertyKeys), 0, 30).Draw(t, "keys")

		s := New(WithFS(vfs.NewMemFS()))
		for _, ev := range keys {
			s.HandleKey(ev)
		}
		out := s.HandleKey(DefaultInterruptKey)

		if s.Mode() != mode.Normal {
			t.Fatalf("mode after interrupt = %s", s.Mode())
		}
		if s.Pending() != "" {
			t.Fatalf("pending after interrupt = %q", s.Pending())
		}
		if text, _ := s.CommandLine(); text != "" {
			t.Fatalf("command line after interrupt = %q", text)
		}
		if out.Quit != s.QuitRequested() {
			t.Fatalf("outcome quit %v, session quit %v", out.Quit, s.QuitRequested())
		}
	})
}
