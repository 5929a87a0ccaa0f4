// Package engine applies edits to a text buffer and reports where the cursor
// ends up.
//
// The engine package is the editing half of the modal core. It owns no cursor
// of its own: every operation takes the current cursor and returns the new
// one, which keeps the caller in charge of editor state.
//
// # Architecture
//
//   - buffer: line-addressable text storage
//   - cursor: cursor value with desired-column memory
//   - motion: pure motion resolution against a buffer snapshot
//
// # Operator Spans
//
// When an operator consumes a motion, the motion's span type decides what is
// removed:
//
//   - Linewise (j, k, gg, G): every line from the cursor line to the target line
//   - Inclusive ($, e, E): from the cursor through the target character
//   - Exclusive (everything else): from the cursor up to the target character
//
// # Atomicity
//
// Every operation issues a single mutating buffer call, so a concurrent reader
// of the buffer sees the state before or after an edit and never a partial
// one. Operations clamp out-of-range cursors instead of failing, and a buffer
// is never left without a line.
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("hello world\nfoo"))
//	cur := cursor.At(0, 0)
//
//	// dw
//	cur = e.DeleteMotion(cur, motion.WordForward, 0)
//	// e.Text() == "world\nfoo"
package engine
