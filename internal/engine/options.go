package engine

import "github.com/dshills/kite/internal/engine/buffer"

// DefaultTabWidth is the number of spaces InsertTab inserts.
const DefaultTabWidth = 4

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.buf = buffer.NewBufferFromString(content)
	}
}

// WithBuffer makes the engine edit an existing buffer.
func WithBuffer(buf *buffer.Buffer) Option {
	return func(e *Engine) {
		if buf != nil {
			e.buf = buf
		}
	}
}

// WithTabWidth sets the tab width for the engine.
func WithTabWidth(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.tabWidth = width
		}
	}
}
