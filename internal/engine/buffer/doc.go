// Package buffer provides the line-addressable text store edited by the
// engine.
//
// Text is held as a slice of lines, each a slice of runes, so every
// Position is a (line, rune column) pair. A buffer always holds at least one
// line; operations that would remove the last line leave a single empty line
// behind instead.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("hello world\nfoo")
//
//	// Insert text, returning the position just after it
//	end, _ := buf.Insert(buffer.Position{Line: 1, Column: 3}, "bar")
//
//	// Delete the half-open span [start, end)
//	buf.Delete(buffer.Position{Line: 0, Column: 0}, buffer.Position{Line: 0, Column: 6})
//
//	// Take a consistent read-only view for rendering
//	snap := buf.Snapshot()
//
// Line endings are normalized to LF on load. The detected style is kept and
// used again by Content when the buffer is written back out.
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Every mutating method takes the write
// lock once, so readers never observe a half-applied edit.
package buffer
