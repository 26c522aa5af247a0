package parse

import "github.com/dotconf-format/go-dotconf/ir"

type parseOpts struct {
	positions  map[*ir.Node]int
	marked     map[*ir.Node]bool
	skipMarked bool
}

type Option func(*parseOpts)

// Positions records the 1-based line of each leaf's last assignment
// into m.
func Positions(m map[*ir.Node]int) Option {
	return func(o *parseOpts) { o.positions = m }
}

// Marked records into m the leaves whose line carried the
// ignore-failure marker.
func Marked(m map[*ir.Node]bool) Option {
	return func(o *parseOpts) { o.marked = m }
}

// SkipMarkedErrors drops marked lines that fail structurally instead
// of failing the parse.
func SkipMarkedErrors() Option {
	return func(o *parseOpts) { o.skipMarked = true }
}
