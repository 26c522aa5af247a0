package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is a leaf value type a schema can declare.
type Type int

const (
	StringType Type = iota
	BoolType
	IntegerType
	FloatType
)

// ParseType resolves a type name. Names are case-insensitive;
// "boolean", "int" and "number" alias "bool", "integer" and "float".
func ParseType(v string) (Type, error) {
	t, ok := map[string]Type{
		"string":  StringType,
		"bool":    BoolType,
		"boolean": BoolType,
		"integer": IntegerType,
		"int":     IntegerType,
		"float":   FloatType,
		"number":  FloatType,
	}[strings.ToLower(strings.TrimSpace(v))]
	if ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, v)
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
	case BoolType:
		return []byte("bool"), nil
	case IntegerType:
		return []byte("integer"), nil
	case FloatType:
		return []byte("float"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a schema type>", t)
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

// Types returns all schema types.
func Types() []Type {
	return []Type{StringType, BoolType, IntegerType, FloatType}
}

// Accepts reports whether raw is a valid rendering of t. The value
// is trimmed first; config parsing already trims, so this matters
// only for direct callers.
func (t Type) Accepts(raw string) bool {
	v := strings.TrimSpace(raw)
	switch t {
	case StringType:
		return true
	case BoolType:
		return strings.EqualFold(v, "true") || strings.EqualFold(v, "false")
	case IntegerType:
		_, err := strconv.ParseInt(v, 10, 64)
		return err == nil
	case FloatType:
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	default:
		return false
	}
}
