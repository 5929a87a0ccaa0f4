package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/kite/internal/vfs"
)

// FileName is the configuration file name inside the config directory.
const FileName = "config.toml"

// Load reads the configuration at path from the OS file system.
// See LoadFS.
func Load(path string) (*Config, error) {
	return LoadFS(vfs.NewOSFS(), path)
}

// LoadFS reads the configuration at path from fsys. A missing file yields
// the defaults. The result is validated.
func LoadFS(fsys vfs.FS, path string) (*Config, error) {
	data, err := fsys.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults. Settings the data leaves out
// keep their default values; unknown settings are an error. source names the
// data in error messages.
func Parse(source string, data []byte) (*Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, parseError(source, err)
	}
	return cfg, nil
}

// parseError converts a decoder error into a *ParseError carrying the
// position of the first problem.
func parseError(source string, err error) error {
	perr := &ParseError{Path: source, Message: err.Error(), Err: err}

	var decErr *toml.DecodeError
	var strictErr *toml.StrictMissingError
	switch {
	case errors.As(err, &decErr):
		perr.Line, perr.Column = decErr.Position()
	case errors.As(err, &strictErr) && len(strictErr.Errors) > 0:
		first := strictErr.Errors[0]
		perr.Line, perr.Column = first.Position()
		perr.Message = "unknown setting " + strings.Join(first.Key(), ".")
	}
	return perr
}

// DefaultPath returns the configuration file path from the environment:
// $XDG_CONFIG_HOME/kite/config.toml, else ~/.config/kite/config.toml. It
// returns "" when neither directory can be determined.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "kite", FileName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "kite", FileName)
}
