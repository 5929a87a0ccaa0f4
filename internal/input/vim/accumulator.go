package vim

import (
	"strings"

	"github.com/dshills/kite/internal/engine/motion"
	"github.com/dshills/kite/internal/input/key"
)

// Status indicates the result of feeding a key.
type Status uint8

const (
	// Incomplete indicates more input is needed.
	Incomplete Status = iota

	// Completed indicates a complete command was recognized.
	Completed

	// Cancelled indicates the pending sequence was discarded.
	Cancelled
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case Incomplete:
		return "incomplete"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// State represents the current state of the accumulator.
type State uint8

const (
	// StateInitial is waiting for initial input.
	StateInitial State = iota

	// StateCount is accumulating a count prefix.
	StateCount

	// StateOperator has received an operator, waiting for a motion.
	StateOperator

	// StateOperatorCount is accumulating count after operator.
	StateOperatorCount

	// StateGPrefix has received 'g', waiting for second key.
	StateGPrefix

	// StateReplace has received 'r', waiting for the replacement character.
	StateReplace
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateCount:
		return "count"
	case StateOperator:
		return "operator"
	case StateOperatorCount:
		return "operatorCount"
	case StateGPrefix:
		return "gPrefix"
	case StateReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Result is the outcome of feeding one key.
type Result struct {
	// Status indicates the feed result.
	Status Status

	// Command is the recognized command (if Status == Completed).
	Command Command

	// Pending shows the keys typed so far (if Status == Incomplete).
	Pending string

	// Discarded holds the keys thrown away (if Status == Cancelled). It is
	// empty when an unbound key arrived with nothing pending.
	Discarded string
}

// Accumulator turns Normal mode keystrokes into commands.
type Accumulator struct {
	keymap *Keymap

	state    State
	count1   CountState // Pre-operator count
	count2   CountState // Post-operator count
	operator Operator   // Pending operator

	keys []key.Event
}

// NewAccumulator creates an accumulator using keymap, or the default keymap
// when keymap is nil.
func NewAccumulator(keymap *Keymap) *Accumulator {
	if keymap == nil {
		keymap = DefaultKeymap()
	}
	return &Accumulator{
		keymap: keymap,
		keys:   make([]key.Event, 0, 8),
	}
}

// Reset clears all pending state.
func (a *Accumulator) Reset() {
	a.state = StateInitial
	a.count1.Reset()
	a.count2.Reset()
	a.operator = OpNone
	a.keys = a.keys[:0]
}

// State returns the current accumulator state.
func (a *Accumulator) State() State {
	return a.state
}

// HasPending reports whether any keys are waiting for completion.
func (a *Accumulator) HasPending() bool {
	return len(a.keys) > 0
}

// Pending returns the keys typed so far.
func (a *Accumulator) Pending() string {
	var sb strings.Builder
	for _, ev := range a.keys {
		sb.WriteString(ev.String())
	}
	return sb.String()
}

// Cancel discards any pending sequence.
func (a *Accumulator) Cancel() Result {
	discarded := a.Pending()
	a.Reset()
	return Result{Status: Cancelled, Discarded: discarded}
}

// Feed processes a key event and returns the result.
func (a *Accumulator) Feed(ev key.Event) Result {
	if ev.IsEscape() {
		return a.Cancel()
	}

	a.keys = append(a.keys, ev)

	switch a.state {
	case StateInitial:
		return a.feedInitial(ev)
	case StateCount:
		return a.feedCount(ev)
	case StateOperator:
		return a.feedOperator(ev)
	case StateOperatorCount:
		return a.feedOperatorCount(ev)
	case StateGPrefix:
		return a.feedGPrefix(ev)
	case StateReplace:
		return a.feedReplace(ev)
	default:
		return a.Cancel()
	}
}

// feedInitial handles input in the initial state.
func (a *Accumulator) feedInitial(ev key.Event) Result {
	if ev.IsChar() && IsCountStart(ev.Rune) {
		a.count1.AccumulateDigit(ev.Rune)
		a.state = StateCount
		return a.incomplete()
	}

	b, ok := a.keymap.lookup(ev)
	if !ok {
		// An unbound key with nothing pending discards nothing.
		a.Reset()
		return Result{Status: Cancelled}
	}
	return a.start(b)
}

// feedCount handles input during count accumulation.
func (a *Accumulator) feedCount(ev key.Event) Result {
	if ev.IsDigit() {
		a.count1.AccumulateDigit(ev.Rune)
		return a.incomplete()
	}

	b, ok := a.keymap.lookup(ev)
	if !ok {
		return a.Cancel()
	}
	return a.start(b)
}

// start dispatches the first non-count key of a command.
func (a *Accumulator) start(b binding) Result {
	switch b.kind {
	case bindMotion:
		return a.completeMotion(b.motion)

	case bindOperator:
		a.operator = b.op
		a.state = StateOperator
		return a.incomplete()

	case bindEdit:
		if b.edit == EditReplaceChar {
			a.state = StateReplace
			return a.incomplete()
		}
		return a.complete(Command{Kind: CommandEdit, Edit: b.edit})

	case bindEntry:
		return a.complete(Command{Kind: CommandModeSwitch, Entry: b.entry})

	case bindGPrefix:
		a.state = StateGPrefix
		return a.incomplete()

	case bindNone:
		return a.Cancel()
	}
	return a.Cancel()
}

// feedOperator handles input after an operator key.
func (a *Accumulator) feedOperator(ev key.Event) Result {
	if ev.IsChar() && IsCountStart(ev.Rune) {
		a.count2.AccumulateDigit(ev.Rune)
		a.state = StateOperatorCount
		return a.incomplete()
	}
	return a.operatorTarget(ev)
}

// feedOperatorCount handles count after operator.
func (a *Accumulator) feedOperatorCount(ev key.Event) Result {
	if ev.IsDigit() {
		a.count2.AccumulateDigit(ev.Rune)
		return a.incomplete()
	}
	return a.operatorTarget(ev)
}

// operatorTarget resolves the key that follows an operator and its count.
func (a *Accumulator) operatorTarget(ev key.Event) Result {
	b, ok := a.keymap.lookup(ev)
	if !ok {
		return a.Cancel()
	}

	switch b.kind {
	case bindMotion:
		return a.completeMotion(b.motion)

	case bindOperator:
		// Same operator key = line-wise (dd, cc)
		if b.op == a.operator {
			return a.complete(Command{Kind: CommandOperatorLine, Operator: a.operator})
		}
		return a.Cancel()

	case bindGPrefix:
		a.state = StateGPrefix
		return a.incomplete()

	case bindNone, bindEdit, bindEntry:
		return a.Cancel()
	}
	return a.Cancel()
}

// feedGPrefix handles input after 'g'.
func (a *Accumulator) feedGPrefix(ev key.Event) Result {
	if ev.IsChar() && ev.Rune == 'g' {
		return a.completeMotion(motion.DocumentStart)
	}
	return a.Cancel()
}

// feedReplace handles the character after 'r'.
func (a *Accumulator) feedReplace(ev key.Event) Result {
	if !ev.IsChar() {
		return a.Cancel()
	}
	return a.complete(Command{Kind: CommandEdit, Edit: EditReplaceChar, Char: ev.Rune})
}

// completeMotion completes a bare motion, or an operator over the motion when
// an operator is pending.
func (a *Accumulator) completeMotion(k motion.Kind) Result {
	if a.operator != OpNone {
		return a.complete(Command{Kind: CommandOperatorMotion, Operator: a.operator, Motion: k})
	}
	return a.complete(Command{Kind: CommandMotion, Motion: k})
}

// complete fills in the count, resets and returns a Completed result.
func (a *Accumulator) complete(cmd Command) Result {
	// Combine counts: pre-operator * post-operator
	if a.count1.Active || a.count2.Active {
		cmd.Count = CombineCounts(a.count1.Get(), a.count2.Get())
	}
	a.Reset()
	return Result{Status: Completed, Command: cmd}
}

func (a *Accumulator) incomplete() Result {
	return Result{Status: Incomplete, Pending: a.Pending()}
}
