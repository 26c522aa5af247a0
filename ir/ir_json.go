package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON renders objects as JSON objects and leaves as JSON
// strings.
func (node *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(node.Interface())
}

// UnmarshalJSON accepts what MarshalJSON produces, plus JSON bools
// and numbers, which become their literal text. Arrays and nulls
// have no dotconf representation and are errors.
func (node *Node) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	parsed, err := fromJSONAny(v)
	if err != nil {
		return err
	}
	*node = *parsed
	return nil
}

// FromJSON parses a JSON document into a tree.
func FromJSON(d []byte) (*Node, error) {
	node := &Node{}
	if err := node.UnmarshalJSON(d); err != nil {
		return nil, err
	}
	return node, nil
}

func fromJSONAny(v any) (*Node, error) {
	switch x := v.(type) {
	case string:
		return FromString(x), nil
	case json.Number:
		return FromString(x.String()), nil
	case bool:
		if x {
			return FromString("true"), nil
		}
		return FromString("false"), nil
	case map[string]any:
		res := Object()
		for k, f := range x {
			child, err := fromJSONAny(f)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			res.Fields[k] = child
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot represent JSON %T", v)
	}
}
