package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownElement indicates an element outside the tileset vocabulary.
	ErrUnknownElement = errors.New("loader: unknown element")
	// ErrUnexpectedElement indicates a known element in the wrong section.
	ErrUnexpectedElement = errors.New("loader: element not allowed here")
	// ErrUnknownAttribute indicates an attribute the element does not accept.
	ErrUnknownAttribute = errors.New("loader: unknown attribute")
	// ErrUnsupportedFormat indicates a file extension with no registered reader.
	ErrUnsupportedFormat = errors.New("loader: unsupported tileset format")
)

// Warning is a recoverable problem found during a load. Err wraps one of the
// tileset or loader sentinels, or source.ErrTruncated.
type Warning struct {
	// Line is the 1-based source line, or 0 when the reader does not track lines.
	Line int
	Err  error
}

func (w Warning) Error() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %v", w.Line, w.Err)
	}
	return w.Err.Error()
}

func (w Warning) Unwrap() error {
	return w.Err
}
