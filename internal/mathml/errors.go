package mathml

import (
	"errors"
	"fmt"
)

// ErrMalformed indicates the serialized tree could not be interpreted.
var ErrMalformed = errors.New("malformed expression tree")

// ParseError describes where reading a serialized tree failed.
type ParseError struct {
	// Format is the serialization being read ("xml" or "json").
	Format string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("%s: line %d, column %d: %s", e.Format, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.Format, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Format, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrMalformed for every parse error.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}
