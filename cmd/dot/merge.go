package main

import (
	"fmt"

	"github.com/dotconf-format/go-dotconf/encode"
	"github.com/dotconf-format/go-dotconf/ir"
	"github.com/dotconf-format/go-dotconf/merge"

	"github.com/scott-cotton/cli"
)

func mergeCmd(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least 1 file", cli.ErrUsage)
	}
	trees := make([]*ir.Node, 0, len(args))
	for _, arg := range args {
		node, err := getConfFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		trees = append(trees, node)
	}
	res, err := merge.All(trees...)
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
