// Package dotconf parses, validates and manipulates dotted-key
// configuration documents.
//
// # The format
//
// A dotconf document is a list of "dotted.key = value" lines, in the
// style of sysctl.conf:
//
//	# network
//	net.ipv4.forward = 1
//	net.ipv4.mtu = 1500
//	fs.file-max = 8192
//
// Blank lines and lines starting with '#' or ';' are ignored. Keys
// split on '.' into nested objects; values are the trimmed text
// after the first '='. A line may start with '-', the ignore-failure
// marker.
//
// This package is the facade; the real work happens in parse,
// schema, ir and friends:
//
//	cfg, err := dotconf.Load("app.conf")
//	sch, err := dotconf.LoadSchema("app.schema.conf")
//	err = sch.Validate(cfg)
package dotconf

import (
	"github.com/dotconf-format/go-dotconf/ir"
	"github.com/dotconf-format/go-dotconf/parse"
	"github.com/dotconf-format/go-dotconf/schema"
)

// Parse builds the tree for a dotconf document.
func Parse(d []byte) (*ir.Node, error) {
	return parse.Parse(d)
}

// Load parses the config file at path.
func Load(path string) (*ir.Node, error) {
	return parse.ParseFile(path)
}

// LoadSchema parses the schema file at path.
func LoadSchema(path string) (*schema.Schema, error) {
	return schema.ParseFile(path)
}

// Validate checks config text against schema text.
func Validate(config, schemaText []byte) error {
	sch, err := schema.Parse(schemaText)
	if err != nil {
		return err
	}
	cfg, err := parse.Parse(config)
	if err != nil {
		return err
	}
	return sch.Validate(cfg)
}

// ValidateFile checks the config file at cfgPath against the schema
// file at schemaPath.
func ValidateFile(cfgPath, schemaPath string) error {
	sch, err := LoadSchema(schemaPath)
	if err != nil {
		return err
	}
	cfg, err := Load(cfgPath)
	if err != nil {
		return err
	}
	return sch.Validate(cfg)
}
