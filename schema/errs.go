package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType reports a schema value that is not a type name.
	ErrUnknownType = errors.New("unknown schema type")

	// ErrUndeclaredKey reports a config key the schema does not
	// declare.
	ErrUndeclaredKey = errors.New("undeclared key")

	// ErrTypeMismatch reports a config value that does not fit its
	// declared type, or a leaf/object shape conflict.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Error is a schema parse failure tied to a line of the schema
// document.
type Error struct {
	Err error
	// Line is the 1-based line of the offending declaration.
	Line int
	// Path is the dotted key being declared.
	Path string
	// Token is the value that failed to parse as a type name.
	Token string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v for key %q", e.Line, e.Err, e.Path)
}

func (e *Error) Unwrap() error { return e.Err }
