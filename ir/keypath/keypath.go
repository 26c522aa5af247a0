// Package keypath provides dotted key paths naming positions in a
// dotconf tree.
//
// A key like "net.ipv4.forward" names the field "forward" inside the
// object "ipv4" inside the object "net". Segments are trimmed
// individually, so "net . ipv4" and "net.ipv4" are the same path.
// Empty segments are malformed: "", ".x", "x.", "a..b".
package keypath

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformed = errors.New("malformed key")

// Path is the sequence of object fields named by a dotted key.
type Path []string

// Parse splits a raw key on '.'. Every segment is trimmed; an empty
// key or an empty segment is an error wrapping ErrMalformed.
func Parse(raw string) (Path, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty key", ErrMalformed)
	}
	segs := strings.Split(raw, ".")
	p := make(Path, 0, len(segs))
	for _, seg := range segs {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrMalformed, raw)
		}
		p = append(p, seg)
	}
	return p, nil
}

// String joins the path back into dotted form.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Join returns a new path extending p with field. The result never
// aliases p's backing array.
func Join(p Path, field string) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, field)
}

// Clone returns a copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	res := make(Path, len(p))
	copy(res, p)
	return res
}
