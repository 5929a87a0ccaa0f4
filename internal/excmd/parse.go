package excmd

import (
	"strings"
	"unicode"
)

// Kind identifies a command.
type Kind uint8

const (
	// KindNone is an empty command line; executing it does nothing.
	KindNone Kind = iota
	// KindWrite writes the buffer.
	KindWrite
	// KindWriteQuit writes the buffer and quits.
	KindWriteQuit
	// KindQuit quits.
	KindQuit
	// KindExit quits, writing first when the buffer is modified or a file
	// is named.
	KindExit
)

// String returns the canonical command name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return ""
	case KindWrite:
		return "write"
	case KindWriteQuit:
		return "wq"
	case KindQuit:
		return "quit"
	case KindExit:
		return "xit"
	default:
		return "unknown"
	}
}

// names maps every accepted spelling to its command.
var names = map[string]Kind{
	"w":     KindWrite,
	"write": KindWrite,
	"wq":    KindWriteQuit,
	"x":     KindExit,
	"xit":   KindExit,
	"q":     KindQuit,
	"quit":  KindQuit,
}

// Command is a parsed command line.
type Command struct {
	Kind Kind

	// Force is set when the name was followed by "!".
	Force bool

	// Path is the file argument, if any.
	Path string

	// Text is the trimmed command text as typed.
	Text string
}

// Parse parses command-line text. A leading ":" and surrounding blanks are
// ignored; empty text parses to KindNone.
func Parse(text string) (Command, error) {
	text = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(text), ":"))
	cmd := Command{Text: text}
	if text == "" {
		return cmd, nil
	}

	end := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsLetter(r) })
	if end < 0 {
		end = len(text)
	}
	name, rest := text[:end], text[end:]

	kind, ok := names[name]
	if !ok {
		return cmd, newError(text, ErrUnknownCommand, "Not an editor command: %s", text)
	}
	cmd.Kind = kind

	if strings.HasPrefix(rest, "!") {
		cmd.Force = true
		rest = rest[1:]
	}
	if rest != "" && !cmd.Force && !startsWithSpace(rest) {
		return Command{Text: text}, newError(text, ErrUnknownCommand, "Not an editor command: %s", text)
	}
	cmd.Path = strings.TrimSpace(rest)

	if kind == KindQuit && cmd.Path != "" {
		return Command{Text: text}, newError(text, ErrTrailingCharacters, "Trailing characters: %s", cmd.Path)
	}
	return cmd, nil
}

func startsWithSpace(s string) bool {
	for _, r := range s {
		return unicode.IsSpace(r)
	}
	return false
}
