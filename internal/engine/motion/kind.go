package motion

// Kind identifies a motion. The set is closed: every switch over Kind in
// this module is exhaustive.
type Kind uint8

const (
	// KindNone is the zero value and never resolves to a movement.
	KindNone Kind = iota

	// Character motions
	Left
	Right
	Up
	Down

	// Line-boundary motions
	LineStart
	LineEnd
	FirstNonBlank

	// Word motions
	WordForward
	WordBackward
	WordEnd
	BigWordForward
	BigWordBackward
	BigWordEnd

	// Paragraph motions
	ParagraphForward
	ParagraphBackward

	// Document motions
	DocumentStart
	DocumentEnd
)

// Type categorizes how an operator treats the span a motion covers.
type Type uint8

const (
	// Exclusive spans stop before the target character.
	Exclusive Type = iota
	// Inclusive spans include the target character.
	Inclusive
	// Linewise spans cover whole lines from the start line to the target line.
	Linewise
)

// String returns the string representation of the span type.
func (t Type) String() string {
	switch t {
	case Exclusive:
		return "exclusive"
	case Inclusive:
		return "inclusive"
	case Linewise:
		return "linewise"
	default:
		return "unknown"
	}
}

// info is one row of the motion table.
type info struct {
	name string
	keys string
	typ  Type
}

// table is the fixed span rule for every motion used with an operator.
var table = [...]info{
	KindNone:          {"none", "", Exclusive},
	Left:              {"left", "h", Exclusive},
	Right:             {"right", "l", Exclusive},
	Up:                {"up", "k", Linewise},
	Down:              {"down", "j", Linewise},
	LineStart:         {"line_start", "0", Exclusive},
	LineEnd:           {"line_end", "$", Inclusive},
	FirstNonBlank:     {"first_non_blank", "^", Exclusive},
	WordForward:       {"word_forward", "w", Exclusive},
	WordBackward:      {"word_backward", "b", Exclusive},
	WordEnd:           {"word_end", "e", Inclusive},
	BigWordForward:    {"big_word_forward", "W", Exclusive},
	BigWordBackward:   {"big_word_backward", "B", Exclusive},
	BigWordEnd:        {"big_word_end", "E", Inclusive},
	ParagraphForward:  {"paragraph_forward", "}", Exclusive},
	ParagraphBackward: {"paragraph_backward", "{", Exclusive},
	DocumentStart:     {"document_start", "gg", Linewise},
	DocumentEnd:       {"document_end", "G", Linewise},
}

// String returns the motion name.
func (k Kind) String() string {
	if int(k) < len(table) {
		return table[k].name
	}
	return "unknown"
}

// Keys returns the default key sequence bound to the motion.
func (k Kind) Keys() string {
	if int(k) < len(table) {
		return table[k].keys
	}
	return ""
}

// Type returns the span type used when an operator consumes the motion.
func (k Kind) Type() Type {
	if int(k) < len(table) {
		return table[k].typ
	}
	return Exclusive
}

// Linewise reports whether operators apply to whole lines for this motion.
func (k Kind) Linewise() bool {
	return k.Type() == Linewise
}

// Inclusive reports whether the target character is part of the span.
func (k Kind) Inclusive() bool {
	return k.Type() == Inclusive
}

// Kinds returns every motion kind except KindNone.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(table)-1)
	for k := Left; int(k) < len(table); k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Parse returns the motion kind with the given name.
func Parse(name string) (Kind, bool) {
	for k := Left; int(k) < len(table); k++ {
		if table[k].name == name {
			return k, true
		}
	}
	return KindNone, false
}
