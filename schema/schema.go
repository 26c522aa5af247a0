package schema

import (
	"maps"
	"slices"

	"github.com/dotconf-format/go-dotconf/ir/keypath"
)

// Node is a schema tree node: a leaf declaring a value type, or an
// object declaring nested keys. Fields is non-nil exactly when the
// node is an object.
type Node struct {
	Type   Type
	Fields map[string]*Node
}

func (n *Node) IsObject() bool { return n.Fields != nil }

func leafNode(t Type) *Node { return &Node{Type: t} }

func objectNode() *Node { return &Node{Fields: map[string]*Node{}} }

// Schema declares the keys a config may contain and their value
// types.
type Schema struct {
	Root *Node
}

// Lookup resolves a dotted key to its declaration, or (nil, nil)
// when the schema does not declare it.
func (s *Schema) Lookup(key string) (*Node, error) {
	path, err := keypath.Parse(key)
	if err != nil {
		return nil, err
	}
	cur := s.Root
	for _, seg := range path {
		if cur == nil || !cur.IsObject() {
			return nil, nil
		}
		cur = cur.Fields[seg]
	}
	return cur, nil
}

// Flatten returns every declared leaf path mapped to its type.
func (s *Schema) Flatten() map[string]Type {
	res := map[string]Type{}
	flatten(s.Root, nil, res)
	return res
}

func flatten(n *Node, path keypath.Path, res map[string]Type) {
	if n == nil {
		return
	}
	if !n.IsObject() {
		res[path.String()] = n.Type
		return
	}
	for _, name := range slices.Sorted(maps.Keys(n.Fields)) {
		flatten(n.Fields[name], keypath.Join(path, name), res)
	}
}

// put places a leaf declaration, creating objects along the way. The
// path comes from a parsed tree, so it cannot conflict.
func (n *Node) put(path keypath.Path, leaf *Node) {
	cur := n
	for _, seg := range path[:len(path)-1] {
		child, ok := cur.Fields[seg]
		if !ok {
			child = objectNode()
			cur.Fields[seg] = child
		}
		cur = child
	}
	cur.Fields[path[len(path)-1]] = leaf
}
