// Package encode renders dotconf trees as JSON or YAML for display.
package encode

import (
	"encoding/json"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/dotconf-format/go-dotconf/format"
	"github.com/dotconf-format/go-dotconf/ir"
)

type EncState struct {
	depth, indent int
	compact       bool

	format format.Format

	Color func(Class, string) string
}

// Encode writes node to w in the configured format, ending with a
// newline. Keys are sorted, so output is deterministic.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	if err := encodeJSON(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(node.Interface())
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil || node.Type == ir.StringType {
		v := "null"
		if node != nil {
			v = jsonQuote(node.String)
		}
		return writeString(w, es.color(ValueClass, v))
	}
	names := slices.Sorted(maps.Keys(node.Fields))
	if len(names) == 0 {
		return writeString(w, es.color(SepClass, "{}"))
	}
	if err := writeString(w, es.color(SepClass, "{")); err != nil {
		return err
	}
	es.depth++
	fieldSep := ": "
	if es.compact {
		fieldSep = ":"
	}
	for i, name := range names {
		if i > 0 {
			if err := writeString(w, es.color(SepClass, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeString(w, es.color(FieldClass, jsonQuote(name))); err != nil {
			return err
		}
		if err := writeString(w, es.color(SepClass, fieldSep)); err != nil {
			return err
		}
		if err := encodeJSON(node.Fields[name], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(SepClass, "}"))
}

func writeNL(w io.Writer, es *EncState) error {
	if es.compact {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(strings.Repeat(" ", es.indent), es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// jsonQuote renders s as a JSON string literal.
func jsonQuote(s string) string {
	d, _ := json.Marshal(s)
	return string(d)
}

func (es *EncState) color(c Class, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(c, s)
}

// String is a convenience to encode to a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	var b strings.Builder
	if err := Encode(node, &b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}
