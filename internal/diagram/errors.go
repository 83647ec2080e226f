package diagram

import (
	"errors"
	"fmt"
)

// ErrMalformed indicates the diagram source could not be parsed as
// well-formed markup. The affected view degrades to a non-interactive,
// color-only rendering; nothing here is fatal to the host application.
var ErrMalformed = errors.New("malformed diagram markup")

// ParseError wraps a markup parsing failure with the underlying cause.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("diagram parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return ErrMalformed }

// Cause returns the underlying decoder error for display.
func (e *ParseError) Cause() error { return e.Err }
