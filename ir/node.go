package ir

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dotconf-format/go-dotconf/ir/keypath"
)

type Node struct {
	Type Type

	// String is the leaf value when Type is StringType.
	String string

	// Fields holds the children when Type is ObjectType.
	Fields map[string]*Node
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

// Object returns a new empty object node.
func Object() *Node {
	return &Node{Type: ObjectType, Fields: map[string]*Node{}}
}

// FromMap builds a tree from nested map[string]any / string values.
func FromMap(m map[string]any) (*Node, error) {
	res := Object()
	for k, v := range m {
		child, err := fromAny(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		res.Fields[k] = child
	}
	return res, nil
}

func fromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case string:
		return FromString(x), nil
	case map[string]any:
		return FromMap(x)
	case *Node:
		return x, nil
	default:
		return nil, fmt.Errorf("cannot represent %T", v)
	}
}

// Insert places leaf at path, creating objects along the way.
// Assigning over an existing leaf at the full path overwrites it
// (the last assignment wins). Any other collision between a leaf and
// an object wraps ErrConflict.
func (node *Node) Insert(path keypath.Path, leaf *Node) error {
	if node.Type != ObjectType {
		return fmt.Errorf("%w: insert into %s node", ErrConflict, node.Type)
	}
	cur := node
	for i, seg := range path[:len(path)-1] {
		child, ok := cur.Fields[seg]
		if !ok {
			child = Object()
			cur.Fields[seg] = child
		}
		if child.Type != ObjectType {
			return fmt.Errorf("%w: %q already holds a value", ErrConflict, path[:i+1].String())
		}
		cur = child
	}
	last := path[len(path)-1]
	if prev, ok := cur.Fields[last]; ok && prev.Type == ObjectType {
		return fmt.Errorf("%w: %q already holds nested keys", ErrConflict, path.String())
	}
	cur.Fields[last] = leaf
	return nil
}

// Lookup resolves a dotted key. A key that names nothing is
// (nil, nil); only a malformed key is an error.
func (node *Node) Lookup(key string) (*Node, error) {
	path, err := keypath.Parse(key)
	if err != nil {
		return nil, err
	}
	return node.LookupPath(path), nil
}

// LookupPath resolves path, or nil when any segment is missing or
// lands on a leaf before the path ends.
func (node *Node) LookupPath(path keypath.Path) *Node {
	cur := node
	for _, seg := range path {
		if cur == nil || cur.Type != ObjectType {
			return nil
		}
		cur = cur.Fields[seg]
	}
	return cur
}

// Walk visits every node depth first, fields in sorted order. The
// root is visited with an empty path. Returning an error stops the
// walk.
func (node *Node) Walk(fn func(path keypath.Path, n *Node) error) error {
	return node.walk(nil, fn)
}

func (node *Node) walk(path keypath.Path, fn func(keypath.Path, *Node) error) error {
	if err := fn(path, node); err != nil {
		return err
	}
	if node.Type != ObjectType {
		return nil
	}
	for _, name := range slices.Sorted(maps.Keys(node.Fields)) {
		if err := node.Fields[name].walk(keypath.Join(path, name), fn); err != nil {
			return err
		}
	}
	return nil
}

// Flatten returns the dotted path of every leaf mapped to its value.
func (node *Node) Flatten() map[string]string {
	res := map[string]string{}
	node.Walk(func(path keypath.Path, n *Node) error {
		if n.Type == StringType {
			res[path.String()] = n.String
		}
		return nil
	})
	return res
}

// Interface converts the tree to map[string]any and string values,
// the shape JSON, YAML, expression environments and struct decoding
// all consume.
func (node *Node) Interface() any {
	if node == nil {
		return nil
	}
	if node.Type == StringType {
		return node.String
	}
	res := make(map[string]any, len(node.Fields))
	for k, v := range node.Fields {
		res[k] = v.Interface()
	}
	return res
}

func (node *Node) Clone() *Node {
	if node == nil {
		return nil
	}
	res := &Node{Type: node.Type, String: node.String}
	if node.Fields != nil {
		res.Fields = make(map[string]*Node, len(node.Fields))
		for k, v := range node.Fields {
			res.Fields[k] = v.Clone()
		}
	}
	return res
}

func (node *Node) Equal(o *Node) bool {
	if node == nil || o == nil {
		return node == o
	}
	if node.Type != o.Type || node.String != o.String {
		return false
	}
	if len(node.Fields) != len(o.Fields) {
		return false
	}
	for k, v := range node.Fields {
		ov, ok := o.Fields[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
