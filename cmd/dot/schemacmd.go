package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/dotconf-format/go-dotconf/encode"
	"github.com/dotconf-format/go-dotconf/ir"
	"github.com/dotconf-format/go-dotconf/ir/keypath"
	"github.com/dotconf-format/go-dotconf/schema"

	"github.com/scott-cotton/cli"
)

func schemaCmd(cfg *SchemaConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Schema.Parse(cc, args)
	if err != nil {
		cfg.Schema.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := schemaArg(cfg, cc, arg); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
	}
	return nil
}

func schemaArg(cfg *SchemaConfig, cc *cli.Context, file string) error {
	s, err := loadSchema(cc, file)
	if err != nil {
		return err
	}
	if cfg.Flat {
		return writeFlat(cc.Out, s)
	}
	tree, err := schemaTree(s)
	if err != nil {
		return err
	}
	return encode.Encode(tree, cc.Out, cfg.encOpts(cc.Out)...)
}

func writeFlat(w io.Writer, s *schema.Schema) error {
	decls := s.Flatten()
	for _, path := range slices.Sorted(maps.Keys(decls)) {
		if _, err := fmt.Fprintf(w, "%s: %s\n", path, decls[path]); err != nil {
			return err
		}
	}
	return nil
}

// schemaTree rebuilds a schema as a config tree whose leaves are the
// declared type names, so it can be rendered like any config.
func schemaTree(s *schema.Schema) (*ir.Node, error) {
	root := ir.Object()
	for dotted, t := range s.Flatten() {
		path, err := keypath.Parse(dotted)
		if err != nil {
			return nil, err
		}
		if err := root.Insert(path, ir.FromString(t.String())); err != nil {
			return nil, err
		}
	}
	return root, nil
}
