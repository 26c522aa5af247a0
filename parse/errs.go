package parse

import (
	"errors"
	"fmt"

	"github.com/dotconf-format/go-dotconf/ir"
	"github.com/dotconf-format/go-dotconf/ir/keypath"
)

var (
	ErrMalformedLine = errors.New("malformed line: missing '='")

	ErrMalformedKey   = keypath.ErrMalformed
	ErrConflictingKey = ir.ErrConflict
)

// Error is a parse failure tied to a line of input.
type Error struct {
	Err error
	// Line is the 1-based line number.
	Line int
	// Key is the raw key of the failing line, when the line got far
	// enough to have one.
	Key string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
