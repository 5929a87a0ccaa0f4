// Package config loads kite's settings from a TOML file.
//
// # File Location
//
// The file named by --config wins. Otherwise the first of these is used:
//
//   - $XDG_CONFIG_HOME/kite/config.toml
//   - ~/.config/kite/config.toml
//
// A missing file is not an error; defaults apply.
//
// # Format
//
//	[editor]
//	tab_width = 4
//	scroll_off = 3
//	line_numbers = true
//	interrupt_key = "Ctrl+C"
//
//	[log]
//	level = "info"
//	file = "/tmp/kite.log"
//
//	[keymap.normal]
//	word_forward = "W"
//
// Unknown keys are rejected with the line and column of the offending entry.
// Values are checked after decoding and every problem is reported at once.
package config
