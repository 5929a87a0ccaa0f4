package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/kite/internal/input/key"
	"github.com/dshills/kite/internal/input/vim"
)

// Config is the complete set of settings.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Log    LogConfig    `toml:"log"`
	Keymap KeymapConfig `toml:"keymap"`
}

// EditorConfig holds editing and display settings.
type EditorConfig struct {
	// TabWidth is the number of spaces Tab inserts in Insert mode.
	TabWidth int `toml:"tab_width"`

	// ScrollOff is the number of lines kept visible above and below the
	// cursor.
	ScrollOff int `toml:"scroll_off"`

	// LineNumbers shows a line number gutter.
	LineNumbers bool `toml:"line_numbers"`

	// InterruptKey cancels pending input in every mode, e.g. "Ctrl+C".
	InterruptKey string `toml:"interrupt_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level"`

	// File receives log output. Logging is off when it is empty.
	File string `toml:"file"`
}

// KeymapConfig holds key remappings.
type KeymapConfig struct {
	// Normal maps Normal mode action names to single keys.
	Normal map[string]string `toml:"normal"`
}

// Limits on numeric settings.
const (
	MaxTabWidth  = 16
	MaxScrollOff = 50
)

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth:     4,
			ScrollOff:    3,
			LineNumbers:  true,
			InterruptKey: "Ctrl+C",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and reports all problems together as an
// *ErrorList.
func (c *Config) Validate() error {
	var errs ErrorList

	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > MaxTabWidth {
		errs.Add(&ValidationError{
			Path:    "editor.tab_width",
			Message: fmt.Sprintf("must be between 1 and %d", MaxTabWidth),
			Value:   c.Editor.TabWidth,
		})
	}
	if c.Editor.ScrollOff < 0 || c.Editor.ScrollOff > MaxScrollOff {
		errs.Add(&ValidationError{
			Path:    "editor.scroll_off",
			Message: fmt.Sprintf("must be between 0 and %d", MaxScrollOff),
			Value:   c.Editor.ScrollOff,
		})
	}
	if _, err := c.InterruptEvent(); err != nil {
		errs.Add(&ValidationError{
			Path:    "editor.interrupt_key",
			Message: "not a key",
			Value:   c.Editor.InterruptKey,
			Err:     err,
		})
	}
	if !isLogLevel(c.Log.Level) {
		errs.Add(&ValidationError{
			Path:    "log.level",
			Message: "must be one of " + strings.Join(logLevels, ", "),
			Value:   c.Log.Level,
		})
	}

	km := vim.DefaultKeymap()
	for _, action := range sortedKeys(c.Keymap.Normal) {
		if err := km.Bind(action, c.Keymap.Normal[action]); err != nil {
			errs.Add(&ValidationError{
				Path:    "keymap.normal." + action,
				Message: "cannot bind",
				Value:   c.Keymap.Normal[action],
				Err:     err,
			})
		}
	}

	return errs.AsError()
}

// InterruptEvent parses the interrupt key setting.
func (c *Config) InterruptEvent() (key.Event, error) {
	return key.Parse(c.Editor.InterruptKey)
}

// NormalKeymap builds the Normal mode keymap with the configured remappings
// applied.
func (c *Config) NormalKeymap() (*vim.Keymap, error) {
	km := vim.DefaultKeymap()
	for _, action := range sortedKeys(c.Keymap.Normal) {
		if err := km.Bind(action, c.Keymap.Normal[action]); err != nil {
			return nil, fmt.Errorf("keymap.normal.%s: %w", action, err)
		}
	}
	return km, nil
}

func isLogLevel(s string) bool {
	s = strings.ToLower(s)
	for _, l := range logLevels {
		if s == l {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
