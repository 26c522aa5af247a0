package parse

import (
	"fmt"
	"os"

	"github.com/dotconf-format/go-dotconf/debug"
	"github.com/dotconf-format/go-dotconf/ir"
	"github.com/dotconf-format/go-dotconf/ir/keypath"
	"github.com/dotconf-format/go-dotconf/token"
)

// Parse builds the tree for a dotconf document. The result is always
// an object; a document of only blank and comment lines yields an
// empty one.
func Parse(d []byte, opts ...Option) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	res := ir.Object()
	for _, ln := range token.Scan(d) {
		switch ln.Kind {
		case token.BlankKind, token.CommentKind:
			continue
		case token.MalformedKind:
			if pOpts.drop(ln) {
				continue
			}
			return nil, &Error{Err: ErrMalformedLine, Line: ln.Num}
		}
		path, err := keypath.Parse(ln.Key)
		if err != nil {
			if pOpts.drop(ln) {
				continue
			}
			return nil, &Error{Err: err, Line: ln.Num, Key: ln.Key}
		}
		leaf := ir.FromString(ln.Value)
		if err := res.Insert(path, leaf); err != nil {
			if pOpts.drop(ln) {
				continue
			}
			return nil, &Error{Err: err, Line: ln.Num, Key: ln.Key}
		}
		if pOpts.positions != nil {
			pOpts.positions[leaf] = ln.Num
		}
		if pOpts.marked != nil && ln.IgnoreFailure {
			pOpts.marked[leaf] = true
		}
	}
	return res, nil
}

// drop reports whether a failing line should be dropped rather than
// fail the parse.
func (o *parseOpts) drop(ln token.Line) bool {
	if !o.skipMarked || !ln.IgnoreFailure {
		return false
	}
	if debug.Parse() {
		debug.Logf("parse: dropping marked line %d: %q", ln.Num, ln.Raw)
	}
	return true
}

func ParseString(s string, opts ...Option) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseFile reads and parses the file at path. Read errors come back
// as they are; parse errors are wrapped with the file name.
func ParseFile(path string, opts ...Option) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	node, err := Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}
