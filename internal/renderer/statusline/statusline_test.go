package statusline

import (
	"strings"
	"testing"

	"github.com/dshills/kite/internal/renderer/backend"
)

func newTestBackend(t *testing.T, width int) *backend.NullBackend {
	t.Helper()
	b := backend.NewNullBackend(width, 2)
	if err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return b
}

func TestStatusBar(t *testing.T) {
	b := newTestBackend(t, 40)
	s := New()
	s.Resize(40)
	s.SetFilename("notes.txt")
	s.SetModified(true)
	s.SetPosition(3, 7)

	if _, ok := s.Render(b, 0); ok {
		t.Error("command cursor reported without command line")
	}

	bar := b.Row(0)
	if !strings.HasPrefix(bar, " NORMAL  notes.txt [+]") {
		t.Errorf("bar = %q", bar)
	}
	if !strings.HasSuffix(bar, "3:7") {
		t.Errorf("bar = %q, want position at the end", bar)
	}
	if got := b.GetCell(1, 0).Style.Background; got != backend.ColorBlue {
		t.Errorf("mode background = %d, want blue", got)
	}
}

func TestStatusBarNoName(t *testing.T) {
	b := newTestBackend(t, 40)
	s := New()
	s.Resize(40)
	s.SetMode("INSERT")
	s.SetPending("2d")
	s.Render(b, 0)

	bar := b.Row(0)
	if !strings.HasPrefix(bar, " INSERT  "+NoName) {
		t.Errorf("bar = %q", bar)
	}
	if !strings.HasSuffix(bar, "2d  1:1") {
		t.Errorf("bar = %q, want pending keys before position", bar)
	}
}

func TestStatusBarNarrow(t *testing.T) {
	b := newTestBackend(t, 16)
	s := New()
	s.Resize(16)
	s.SetFilename("a-very-long-file-name.txt")
	s.Render(b, 0)

	bar := b.Row(0)
	if !strings.HasSuffix(bar, "1:1") {
		t.Errorf("bar = %q, want position kept", bar)
	}
}

func TestCommandLine(t *testing.T) {
	b := newTestBackend(t, 20)
	s := New()
	s.Resize(20)
	s.SetMode("COMMAND")
	s.SetCommandMode(true)
	s.SetCommandBuffer("w 日.txt", 3)

	x, ok := s.Render(b, 0)
	if !ok {
		t.Fatal("expected command cursor")
	}
	if got := b.Row(1); got != ":w 日.txt" {
		t.Errorf("command row = %q", got)
	}
	// ':' + "w " + wide rune
	if x != 5 {
		t.Errorf("cursor x = %d, want 5", x)
	}

	s.SetCommandMode(false)
	s.Render(b, 0)
	if got := b.Row(1); got != "" {
		t.Errorf("command row after close = %q, want empty", got)
	}
}

func TestMessage(t *testing.T) {
	b := newTestBackend(t, 40)
	s := New()
	s.Resize(40)

	s.SetMessage("E37: No write since last change", MessageError)
	s.Render(b, 0)
	if got := b.Row(1); got != "E37: No write since last change" {
		t.Errorf("message row = %q", got)
	}
	if got := b.GetCell(0, 1).Style.Foreground; got != backend.ColorRed {
		t.Errorf("error foreground = %d, want red", got)
	}

	s.ClearMessage()
	s.Render(b, 0)
	if got := b.Row(1); got != "" {
		t.Errorf("message row after clear = %q, want empty", got)
	}
}
