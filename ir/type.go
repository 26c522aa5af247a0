package ir

import (
	"errors"
	"fmt"
)

// Type tags a Node as a string leaf or an object.
type Type int

const (
	StringType Type = iota
	ObjectType
)

var ErrBadType = errors.New("bad node type")

func ParseType(v string) (Type, error) {
	t, ok := map[string]Type{
		"string": StringType,
		"object": ObjectType,
	}[v]
	if ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadType, v)
}

func (t Type) String() string {
	d, err := t.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (t Type) MarshalText() ([]byte, error) {
	switch t {
	case StringType:
		return []byte("string"), nil
	case ObjectType:
		return []byte("object"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a node type>", t)
	}
}

func (t *Type) UnmarshalText(d []byte) error {
	pt, err := ParseType(string(d))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}

func (t Type) IsLeaf() bool { return t == StringType }

// Types returns all node types.
func Types() []Type {
	return []Type{StringType, ObjectType}
}
