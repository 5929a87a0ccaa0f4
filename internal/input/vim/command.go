package vim

import (
	"fmt"

	"github.com/dshills/kite/internal/engine/motion"
)

// Operator is an action applied to the span of a motion.
type Operator uint8

const (
	// OpNone means no operator is pending.
	OpNone Operator = iota
	// OpDelete removes the span.
	OpDelete
	// OpChange removes the span and enters Insert mode.
	OpChange
)

// String returns the operator name.
func (o Operator) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpDelete:
		return "delete"
	case OpChange:
		return "change"
	default:
		return "unknown"
	}
}

// EntersInsert reports whether the operator leaves the editor in Insert mode.
func (o Operator) EntersInsert() bool {
	return o == OpChange
}

// EditKind identifies a direct edit that needs no motion.
type EditKind uint8

const (
	// EditNone is the zero value.
	EditNone EditKind = iota
	// EditDeleteChar deletes characters under the cursor (x).
	EditDeleteChar
	// EditDeleteToLineEnd deletes to the end of the line (D).
	EditDeleteToLineEnd
	// EditChangeToLineEnd deletes to the end of the line and enters Insert (C).
	EditChangeToLineEnd
	// EditJoinLines joins lines (J).
	EditJoinLines
	// EditReplaceChar replaces characters with Command.Char (r).
	EditReplaceChar
)

// String returns the edit name.
func (e EditKind) String() string {
	switch e {
	case EditNone:
		return "none"
	case EditDeleteChar:
		return "delete_char"
	case EditDeleteToLineEnd:
		return "delete_to_line_end"
	case EditChangeToLineEnd:
		return "change_to_line_end"
	case EditJoinLines:
		return "join_lines"
	case EditReplaceChar:
		return "replace_char"
	default:
		return "unknown"
	}
}

// Entry identifies the mode a mode switch enters, and for Insert mode where
// the cursor is placed.
type Entry uint8

const (
	// EntryNone is the zero value.
	EntryNone Entry = iota
	// EntryInsert inserts before the cursor (i).
	EntryInsert
	// EntryAppend inserts after the cursor (a).
	EntryAppend
	// EntryInsertLineStart inserts at the first non-blank (I).
	EntryInsertLineStart
	// EntryAppendLineEnd inserts at the end of the line (A).
	EntryAppendLineEnd
	// EntryOpenBelow opens a new line below (o).
	EntryOpenBelow
	// EntryOpenAbove opens a new line above (O).
	EntryOpenAbove
	// EntryCommandLine enters Command mode (:).
	EntryCommandLine
)

// String returns the entry name.
func (e Entry) String() string {
	switch e {
	case EntryNone:
		return "none"
	case EntryInsert:
		return "insert"
	case EntryAppend:
		return "append"
	case EntryInsertLineStart:
		return "insert_line_start"
	case EntryAppendLineEnd:
		return "append_line_end"
	case EntryOpenBelow:
		return "open_below"
	case EntryOpenAbove:
		return "open_above"
	case EntryCommandLine:
		return "command_line"
	default:
		return "unknown"
	}
}

// IsInsert reports whether the entry switches to Insert mode.
func (e Entry) IsInsert() bool {
	return e >= EntryInsert && e <= EntryOpenAbove
}

// CommandKind is the shape of a completed command.
type CommandKind uint8

const (
	// CommandNone is the zero value and never completes.
	CommandNone CommandKind = iota
	// CommandMotion moves the cursor.
	CommandMotion
	// CommandOperatorMotion applies Operator over Motion.
	CommandOperatorMotion
	// CommandOperatorLine applies Operator to Count whole lines (dd, cc).
	CommandOperatorLine
	// CommandEdit performs a direct edit.
	CommandEdit
	// CommandModeSwitch changes mode.
	CommandModeSwitch
)

// String returns the command kind name.
func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "none"
	case CommandMotion:
		return "motion"
	case CommandOperatorMotion:
		return "operator_motion"
	case CommandOperatorLine:
		return "operator_line"
	case CommandEdit:
		return "edit"
	case CommandModeSwitch:
		return "mode_switch"
	default:
		return "unknown"
	}
}

// Command is a complete Normal mode command. Only the fields relevant to Kind
// are set.
type Command struct {
	Kind CommandKind

	// Count is the repeat count; 0 means no count was typed.
	Count int

	Motion   motion.Kind
	Operator Operator
	Edit     EditKind
	Entry    Entry

	// Char is the replacement character for EditReplaceChar.
	Char rune
}

// GetCount returns the effective count (1 if none specified).
func (c Command) GetCount() int {
	if c.Count <= 0 {
		return 1
	}
	return c.Count
}

// String returns a compact description for logging.
func (c Command) String() string {
	var s string
	switch c.Kind {
	case CommandMotion:
		s = c.Motion.String()
	case CommandOperatorMotion:
		s = c.Operator.String() + " " + c.Motion.String()
	case CommandOperatorLine:
		s = c.Operator.String() + " line"
	case CommandEdit:
		s = c.Edit.String()
		if c.Edit == EditReplaceChar {
			s += fmt.Sprintf(" %q", c.Char)
		}
	case CommandModeSwitch:
		s = c.Entry.String()
	default:
		s = c.Kind.String()
	}
	if c.Count > 0 {
		return fmt.Sprintf("%d %s", c.Count, s)
	}
	return s
}
