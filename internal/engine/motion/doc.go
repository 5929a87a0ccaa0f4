// Package motion resolves cursor motions against a read-only buffer view.
//
// Kind is the closed set of motions. Each Kind has a fixed span Type that
// operators use: exclusive spans stop before the target, inclusive spans take
// the target character, and linewise spans cover whole lines.
//
// Resolve moves a cursor and never edits the buffer. ResolveTarget returns
// the position an operator reaches, which differs from Resolve at line ends
// so that dw and dl behave at the last word and character of a line.
//
// Word motions use three character classes: blanks, keyword characters
// (letters, digits and underscore) and punctuation. The WORD motions (W, B,
// E) treat any run of non-blanks as one word.
package motion
