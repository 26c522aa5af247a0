package schema

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/dotconf-format/go-dotconf/ir"
	"github.com/dotconf-format/go-dotconf/ir/keypath"
)

// ValidationError is one violation found when checking a config
// against a schema.
type ValidationError struct {
	Err error
	// Path is the dotted config key.
	Path string
	// Expected is the declared type name, or "object".
	Expected string
	// Actual is the offending value, or "object".
	Actual string
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Err, ErrTypeMismatch) {
		actual := e.Actual
		if actual != "object" {
			actual = strconv.Quote(actual)
		}
		return fmt.Sprintf("key %q: %v: expected %s, got %s", e.Path, e.Err, e.Expected, actual)
	}
	return fmt.Sprintf("key %q: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Check walks cfg against the schema and returns every violation in
// sorted path order. An empty result means cfg conforms. The walk
// does not descend under an undeclared object: its whole subtree
// counts as one violation.
func (s *Schema) Check(cfg *ir.Node) []*ValidationError {
	var errs []*ValidationError
	check(cfg, s.Root, nil, &errs)
	return errs
}

func check(cn *ir.Node, sn *Node, path keypath.Path, errs *[]*ValidationError) {
	if cn.Type == ir.StringType {
		switch {
		case sn == nil:
			*errs = append(*errs, &ValidationError{
				Err:  ErrUndeclaredKey,
				Path: path.String(),
			})
		case sn.IsObject():
			*errs = append(*errs, &ValidationError{
				Err:      ErrTypeMismatch,
				Path:     path.String(),
				Expected: "object",
				Actual:   cn.String,
			})
		case !sn.Type.Accepts(cn.String):
			*errs = append(*errs, &ValidationError{
				Err:      ErrTypeMismatch,
				Path:     path.String(),
				Expected: sn.Type.String(),
				Actual:   cn.String,
			})
		}
		return
	}
	if sn != nil && !sn.IsObject() {
		*errs = append(*errs, &ValidationError{
			Err:      ErrTypeMismatch,
			Path:     path.String(),
			Expected: sn.Type.String(),
			Actual:   "object",
		})
		return
	}
	if sn == nil {
		if len(path) > 0 {
			*errs = append(*errs, &ValidationError{
				Err:  ErrUndeclaredKey,
				Path: path.String(),
			})
			return
		}
		// nil schema root: only the empty config conforms, and the
		// loop below reports each top-level key once.
	}
	for _, name := range slices.Sorted(maps.Keys(cn.Fields)) {
		var childSchema *Node
		if sn != nil {
			childSchema = sn.Fields[name]
		}
		check(cn.Fields[name], childSchema, keypath.Join(path, name), errs)
	}
}

// Validate reports all Check violations as a single error, or nil
// when cfg conforms.
func (s *Schema) Validate(cfg *ir.Node) error {
	errs := s.Check(cfg)
	if len(errs) == 0 {
		return nil
	}
	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e
	}
	return errors.Join(joined...)
}
