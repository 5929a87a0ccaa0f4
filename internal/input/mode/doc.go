// Package mode holds the editor's mode state machine and the command-line
// buffer typed in Command mode.
//
// # Modes
//
// The editor is always in exactly one of three modes:
//
//   - Normal: keys are commands (motions, operators, edits)
//   - Insert: printable keys are inserted as text
//   - Command: keys edit the ":" command line
//
// Normal is the initial mode. The only legal transitions are Normal to
// Insert, Normal to Command, and back to Normal from either; the Manager
// rejects anything else. Reset forces Normal from any mode, which is how the
// interrupt key works.
//
// # Command Line
//
// CommandLine is a rune buffer with an edit point plus a history of confirmed
// lines that Up and Down walk through.
package mode
