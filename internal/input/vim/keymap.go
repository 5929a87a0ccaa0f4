package vim

import (
	"errors"
	"fmt"
	"sort"
	"unicode"

	"github.com/dshills/kite/internal/engine/motion"
	"github.com/dshills/kite/internal/input/key"
)

// Keymap errors
var (
	ErrUnknownAction = errors.New("vim: unknown action")
	ErrInvalidKey    = errors.New("vim: key must be a single printable non-digit character")
)

type bindingKind uint8

const (
	bindNone bindingKind = iota
	bindMotion
	bindOperator
	bindEdit
	bindEntry
	bindGPrefix
)

// binding is what a Normal mode key does when it starts a command.
type binding struct {
	kind   bindingKind
	motion motion.Kind
	op     Operator
	edit   EditKind
	entry  Entry
}

// actions maps every bindable action name to its binding.
var actions = buildActions()

func buildActions() map[string]binding {
	m := make(map[string]binding)
	for _, k := range motion.Kinds() {
		m[k.String()] = binding{kind: bindMotion, motion: k}
	}
	for _, op := range []Operator{OpDelete, OpChange} {
		m[op.String()] = binding{kind: bindOperator, op: op}
	}
	for e := EditDeleteChar; e <= EditReplaceChar; e++ {
		m[e.String()] = binding{kind: bindEdit, edit: e}
	}
	for e := EntryInsert; e <= EntryCommandLine; e++ {
		m[e.String()] = binding{kind: bindEntry, entry: e}
	}
	m["g_prefix"] = binding{kind: bindGPrefix}
	return m
}

// defaultKeys are the Normal mode keys that are not motion keys.
var defaultKeys = map[rune]string{
	'd': "delete",
	'c': "change",
	'x': "delete_char",
	'D': "delete_to_line_end",
	'C': "change_to_line_end",
	'J': "join_lines",
	'r': "replace_char",
	'i': "insert",
	'a': "append",
	'I': "insert_line_start",
	'A': "append_line_end",
	'o': "open_below",
	'O': "open_above",
	':': "command_line",
	'g': "g_prefix",
}

// specialKeys binds non-character keys in Normal mode.
var specialKeys = map[key.Key]binding{
	key.KeyLeft:   {kind: bindMotion, motion: motion.Left},
	key.KeyRight:  {kind: bindMotion, motion: motion.Right},
	key.KeyUp:     {kind: bindMotion, motion: motion.Up},
	key.KeyDown:   {kind: bindMotion, motion: motion.Down},
	key.KeyHome:   {kind: bindMotion, motion: motion.LineStart},
	key.KeyEnd:    {kind: bindMotion, motion: motion.LineEnd},
	key.KeyDelete: {kind: bindEdit, edit: EditDeleteChar},
}

// Keymap maps Normal mode keys to actions.
type Keymap struct {
	keys map[rune]binding
}

// DefaultKeymap returns the standard vi key bindings.
func DefaultKeymap() *Keymap {
	km := &Keymap{keys: make(map[rune]binding)}
	for _, k := range motion.Kinds() {
		if keys := []rune(k.Keys()); len(keys) == 1 {
			km.keys[keys[0]] = binding{kind: bindMotion, motion: k}
		}
	}
	for r, name := range defaultKeys {
		km.keys[r] = actions[name]
	}
	return km
}

// Bind makes keySpec, a single character, trigger the named action. The
// key's previous meaning is replaced; other keys bound to the action keep
// working. Digits cannot be rebound since they type counts.
func (km *Keymap) Bind(action, keySpec string) error {
	b, ok := actions[action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	runes := []rune(keySpec)
	if len(runes) != 1 || !unicode.IsPrint(runes[0]) || IsCountDigit(runes[0]) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, keySpec)
	}
	km.keys[runes[0]] = b
	return nil
}

// lookup returns the binding for ev.
func (km *Keymap) lookup(ev key.Event) (binding, bool) {
	if ev.IsChar() {
		b, ok := km.keys[ev.Rune]
		return b, ok
	}
	if ev.Modifiers == key.ModNone {
		b, ok := specialKeys[ev.Key]
		return b, ok
	}
	return binding{}, false
}

// IsAction reports whether name is a bindable action.
func IsAction(name string) bool {
	_, ok := actions[name]
	return ok
}

// Actions returns every bindable action name, sorted.
func Actions() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
