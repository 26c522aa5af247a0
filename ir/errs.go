package ir

import (
	"errors"

	"github.com/dotconf-format/go-dotconf/ir/keypath"
)

var (
	// ErrConflict reports a key that needs to be both a value and a
	// container of nested keys.
	ErrConflict = errors.New("conflicting key")

	ErrMalformedKey = keypath.ErrMalformed
)
