package schema

import (
	"fmt"
	"os"

	"github.com/dotconf-format/go-dotconf/debug"
	"github.com/dotconf-format/go-dotconf/ir"
	"github.com/dotconf-format/go-dotconf/ir/keypath"
	"github.com/dotconf-format/go-dotconf/parse"
)

// Parse reads a schema document. Structural errors are the config
// parser's and are fatal; an unrecognized type name fails with
// ErrUnknownType unless its line carried the ignore-failure marker,
// in which case the declaration is dropped.
func Parse(d []byte) (*Schema, error) {
	positions := map[*ir.Node]int{}
	marked := map[*ir.Node]bool{}
	tree, err := parse.Parse(d, parse.Positions(positions), parse.Marked(marked))
	if err != nil {
		return nil, err
	}
	root := objectNode()
	err = tree.Walk(func(path keypath.Path, n *ir.Node) error {
		if n.Type != ir.StringType {
			return nil
		}
		t, err := ParseType(n.String)
		if err != nil {
			if marked[n] {
				if debug.Schema() {
					debug.Logf("schema: dropping marked declaration %q = %q", path.String(), n.String)
				}
				return nil
			}
			return &Error{Err: err, Line: positions[n], Path: path.String(), Token: n.String}
		}
		root.put(path, leafNode(t))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Schema{Root: root}, nil
}

func ParseString(s string) (*Schema, error) {
	return Parse([]byte(s))
}

// ParseFile reads and parses the schema file at path. Read errors
// come back as they are; schema errors are wrapped with the file
// name.
func ParseFile(path string) (*Schema, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
