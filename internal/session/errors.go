package session

import "errors"

// ErrBinaryFile is returned when opening a file that does not look like text.
var ErrBinaryFile = errors.New("session: binary file")
