package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/input/vim"
	"github.com/dshills/kite/internal/vfs"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}

	ev, err := cfg.InterruptEvent()
	if err != nil {
		t.Fatalf("InterruptEvent() error = %v", err)
	}
	if !ev.Equals(key.NewRuneEvent('c', key.ModCtrl)) {
		t.Errorf("InterruptEvent() = %v, want <C-c>", ev)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
[editor]
tab_width = 2
line_numbers = false

[log]
level = "debug"

[keymap.normal]
delete_char = "X"
`)

	cfg, err := Parse("test.toml", data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Editor.TabWidth != 2 {
		t.Errorf("TabWidth = %d, want 2", cfg.Editor.TabWidth)
	}
	if cfg.Editor.LineNumbers {
		t.Error("LineNumbers = true, want false")
	}
	if cfg.Editor.ScrollOff != 3 {
		t.Errorf("ScrollOff = %d, want default 3", cfg.Editor.ScrollOff)
	}
	if cfg.Editor.InterruptKey != "Ctrl+C" {
		t.Errorf("InterruptKey = %q, want default", cfg.Editor.InterruptKey)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if got := cfg.Keymap.Normal["delete_char"]; got != "X" {
		t.Errorf("Keymap.Normal[delete_char] = %q, want X", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		line int // 0 skips the position check
	}{
		{"unknown setting", "[editor]\ntab_width = 2\ntabs = 3\n", 3},
		{"unknown section", "[theme]\nname = \"dark\"\n", 0},
		{"wrong type", "[editor]\n\ntab_width = \"four\"\n", 0},
		{"syntax", "[editor\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test.toml", []byte(tt.data))
			if err == nil {
				t.Fatal("Parse() error = nil")
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			if perr.Path != "test.toml" {
				t.Errorf("Path = %q", perr.Path)
			}
			if tt.line > 0 && perr.Line != tt.line {
				t.Errorf("Line = %d, want %d (%v)", perr.Line, tt.line, err)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Editor.TabWidth = 0
	cfg.Editor.ScrollOff = -1
	cfg.Editor.InterruptKey = ""
	cfg.Log.Level = "loud"
	cfg.Keymap.Normal = map[string]string{
		"fly":         "f",
		"delete_char": "long",
	}

	err := cfg.Validate()

	var list *ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("Validate() = %v, want *ErrorList", err)
	}
	if list.Len() != 6 {
		t.Fatalf("Len() = %d, want 6: %v", list.Len(), list.Errors())
	}
	if !errors.Is(err, ErrInvalidValue) {
		t.Error("errors.Is(err, ErrInvalidValue) = false")
	}
	if !errors.Is(err, vim.ErrUnknownAction) {
		t.Error("errors.Is(err, vim.ErrUnknownAction) = false")
	}
	if !errors.Is(err, vim.ErrInvalidKey) {
		t.Error("errors.Is(err, vim.ErrInvalidKey) = false")
	}

	var verr *ValidationError
	if !errors.As(list.Errors()[0], &verr) || verr.Path != "editor.tab_width" {
		t.Errorf("first error = %v, want editor.tab_width", list.Errors()[0])
	}
}

func TestLoadFS(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadFS(vfs.NewMemFS(), "/kite/config.toml")
		if err != nil {
			t.Fatalf("LoadFS() error = %v", err)
		}
		if cfg.Editor != Default().Editor {
			t.Errorf("Editor = %+v, want defaults", cfg.Editor)
		}
	})

	t.Run("valid file", func(t *testing.T) {
		mfs := vfs.NewMemFS()
		if err := mfs.AddFile("/kite/config.toml", "[editor]\nscroll_off = 0\n"); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadFS(mfs, "/kite/config.toml")
		if err != nil {
			t.Fatalf("LoadFS() error = %v", err)
		}
		if cfg.Editor.ScrollOff != 0 {
			t.Errorf("ScrollOff = %d, want 0", cfg.Editor.ScrollOff)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		mfs := vfs.NewMemFS()
		if err := mfs.AddFile("/kite/config.toml", "[editor]\ntab_width = 99\n"); err != nil {
			t.Fatal(err)
		}
		_, err := LoadFS(mfs, "/kite/config.toml")
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("LoadFS() error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		mfs := vfs.NewMemFS()
		mfs.AddDir("/kite/config.toml")
		if _, err := LoadFS(mfs, "/kite/config.toml"); err == nil {
			t.Error("LoadFS() error = nil")
		}
	})
}

func TestNormalKeymap(t *testing.T) {
	cfg := Default()
	cfg.Keymap.Normal = map[string]string{"delete_char": "X"}

	km, err := cfg.NormalKeymap()
	if err != nil {
		t.Fatalf("NormalKeymap() error = %v", err)
	}

	acc := vim.NewAccumulator(km)
	res := acc.Feed(key.Char('X'))
	if res.Status != vim.Completed || res.Command.Edit != vim.EditDeleteChar {
		t.Errorf("Feed(X) = %+v, want delete_char", res)
	}

	cfg.Keymap.Normal = map[string]string{"nope": "X"}
	if _, err := cfg.NormalKeymap(); !errors.Is(err, vim.ErrUnknownAction) {
		t.Errorf("NormalKeymap() error = %v, want ErrUnknownAction", err)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Run("xdg", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		want := filepath.Join("/xdg", "kite", "config.toml")
		if got := DefaultPath(); got != want {
			t.Errorf("DefaultPath() = %q, want %q", got, want)
		}
	})

	t.Run("home", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "/home/kite")
		want := filepath.Join("/home/kite", ".config", "kite", "config.toml")
		if got := DefaultPath(); got != want {
			t.Errorf("DefaultPath() = %q, want %q", got, want)
		}
	})
}
