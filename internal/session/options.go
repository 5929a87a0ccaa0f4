package session

import (
	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/input/vim"
	"github.com/dshills/kite/internal/vfs"
)

// DefaultInterruptKey clears pending input and returns to Normal mode.
var DefaultInterruptKey = key.NewRuneEvent('c', key.ModCtrl)

// Option configures a Session during creation.
type Option func(*Session)

// WithFS sets the file system documents are read from and written to.
func WithFS(fsys vfs.FS) Option {
	return func(s *Session) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

// WithKeymap sets the Normal mode keymap.
func WithKeymap(km *vim.Keymap) Option {
	return func(s *Session) {
		s.keymap = km
	}
}

// WithInterruptKey sets the key that cancels pending input in every mode.
func WithInterruptKey(ev key.Event) Option {
	return func(s *Session) {
		s.interrupt = ev
	}
}

// WithTabWidth sets the number of spaces Tab inserts.
func WithTabWidth(width int) Option {
	return func(s *Session) {
		if width > 0 {
			s.tabWidth = width
		}
	}
}
