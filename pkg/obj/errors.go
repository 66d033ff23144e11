package obj

import (
	"errors"
	"fmt"
)

// OBJ format errors.
var (
	ErrInvalidNumber   = errors.New("invalid number")
	ErrMalformedFace   = errors.New("malformed face")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// FormatError reports a record line that could not be parsed.
type FormatError struct {
	File    string // Source path, empty when parsing a reader
	Line    int    // 1-based line number
	Content string // The offending line
	Err     error
}

func (e *FormatError) Error() string {
	name := e.File
	if name == "" {
		name = "<input>"
	}
	return fmt.Sprintf("%s:%d: %v: %q", name, e.Line, e.Err, e.Content)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
