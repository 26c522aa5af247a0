// Package token classifies the physical lines of a dotconf document.
//
// # Overview
//
// A dotconf document is line oriented. Each line is exactly one of:
//
//   - blank: empty or whitespace only
//   - comment: first non-space character is '#' or ';'
//   - assignment: "key = value" with the key and value trimmed
//   - malformed: anything else (non-blank, non-comment, no '=')
//
// A line may carry the ignore-failure marker, a single leading '-'
// before the assignment. The marker is stripped here and reported on
// the Line; what to do about it is the parser's concern.
package token

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a line.
type Kind int

const (
	BlankKind Kind = iota
	CommentKind
	AssignKind
	MalformedKind
)

var ErrBadKind = errors.New("bad line kind")

func ParseKind(v string) (Kind, error) {
	k, ok := map[string]Kind{
		"blank":     BlankKind,
		"comment":   CommentKind,
		"assign":    AssignKind,
		"malformed": MalformedKind,
	}[v]
	if ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadKind, v)
}

func (k Kind) String() string {
	d, err := k.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case BlankKind:
		return []byte("blank"), nil
	case CommentKind:
		return []byte("comment"), nil
	case AssignKind:
		return []byte("assign"), nil
	case MalformedKind:
		return []byte("malformed"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a line kind>", k)
	}
}

func (k *Kind) UnmarshalText(d []byte) error {
	pk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = pk
	return nil
}

// Kinds returns all line kinds.
func Kinds() []Kind {
	return []Kind{BlankKind, CommentKind, AssignKind, MalformedKind}
}

// Line is one classified input line.
type Line struct {
	Kind Kind
	// Num is the 1-based line number.
	Num int
	// Key and Value are set for AssignKind. The value may be empty
	// and may contain '='; only the first '=' splits.
	Key   string
	Value string
	// IgnoreFailure is set when the line carried a leading '-'.
	IgnoreFailure bool
	// Raw is the line as read, without the trailing newline.
	Raw string
}

// Classify classifies one raw line. It is total: every input yields a
// Line, never an error.
func Classify(num int, raw string) Line {
	ln := Line{Kind: BlankKind, Num: num, Raw: raw}
	s := strings.TrimSpace(raw)
	if s == "" {
		return ln
	}
	if s[0] == '#' || s[0] == ';' {
		ln.Kind = CommentKind
		return ln
	}
	if s[0] == '-' {
		// one marker only: "--a=b" keeps key "-a"
		ln.IgnoreFailure = true
		s = strings.TrimSpace(s[1:])
		if s == "" {
			return ln
		}
	}
	k, v, ok := strings.Cut(s, "=")
	if !ok {
		ln.Kind = MalformedKind
		return ln
	}
	ln.Kind = AssignKind
	ln.Key = strings.TrimSpace(k)
	ln.Value = strings.TrimSpace(v)
	return ln
}

// Scan classifies every line of d. Lines are split on '\n'; a
// trailing '\r' is dropped so CRLF input scans cleanly.
func Scan(d []byte) []Line {
	raws := strings.Split(string(d), "\n")
	lines := make([]Line, 0, len(raws))
	for i, raw := range raws {
		raw = strings.TrimSuffix(raw, "\r")
		lines = append(lines, Classify(i+1, raw))
	}
	return lines
}
