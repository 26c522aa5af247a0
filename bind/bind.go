// Package bind decodes dotconf trees onto Go structs.
//
// Fields are matched by the "dotconf" struct tag, falling back to
// case-insensitive field names. Values are strings in the tree;
// decoding is weakly typed, so "8080" fills an int field and "true"
// a bool.
//
//	type Server struct {
//	    Port int  `dotconf:"port"`
//	    TLS  bool `dotconf:"tls"`
//	}
package bind

import (
	"github.com/mitchellh/mapstructure"

	"github.com/dotconf-format/go-dotconf/ir"
	"github.com/dotconf-format/go-dotconf/parse"
)

// Decode fills out from the tree. out must be a non-nil pointer.
func Decode(node *ir.Node, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "dotconf",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(node.Interface())
}

// Unmarshal parses config text and decodes it onto out.
func Unmarshal(d []byte, out any) error {
	node, err := parse.Parse(d)
	if err != nil {
		return err
	}
	return Decode(node, out)
}

// UnmarshalFile parses the config file at path and decodes it onto
// out.
func UnmarshalFile(path string, out any) error {
	node, err := parse.ParseFile(path)
	if err != nil {
		return err
	}
	return Decode(node, out)
}
