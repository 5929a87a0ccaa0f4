// Package key defines the key events the editor consumes.
//
// A key event is either a named special key (Escape, Enter, arrows) or a
// character carried in Event.Rune, plus the modifiers held with it:
//
//   - Key: identifies a special key, or KeyRune for characters
//   - Modifier: Ctrl, Alt, Shift and Meta flags
//   - Event: a single key press
//
// # Key Specifications
//
// Configuration names keys with short specifications:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+C", "Alt+x"
//   - Vim-style: "<C-c>", "<Esc>", "<CR>", "<BS>"
//
// ParseSequence reads several keys written back to back, such as "gg" or
// "3d<Esc>".
package key
