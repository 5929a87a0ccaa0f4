// Package cursor provides the editor's cursor state.
//
// A Cursor is an immutable value holding a buffer position and a desired
// column. The desired column is the horizontal position vertical motions aim
// for: moving through a short line clamps the visible column but keeps the
// desired one, so moving on to a longer line restores it.
//
// Normal mode cursors sit on a character, so their column is at most the
// last column of the line. Insert mode cursors sit between characters and may
// rest on the end-of-line point. ClampNormal and ClampInsert enforce each rule.
package cursor
