package main

import (
	"fmt"

	"github.com/dotconf-format/go-dotconf/encode"
	"github.com/dotconf-format/go-dotconf/ir"
	"github.com/dotconf-format/go-dotconf/ir/keypath"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted key", cli.ErrUsage)
	}
	path, err := keypath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if err := getArg(cfg, cc, arg, path, i > 0); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func getArg(cfg *GetConfig, cc *cli.Context, file string, path keypath.Path, sep bool) error {
	node, err := getConfFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	res := node.LookupPath(path)
	if res == nil {
		return fmt.Errorf("no value at %q", path)
	}
	w := cc.Out
	if sep {
		if _, err := w.Write([]byte("---\n")); err != nil {
			return err
		}
	}
	if res.Type == ir.StringType {
		_, err := fmt.Fprintln(w, res.String)
		return err
	}
	return encode.Encode(res, w, cfg.encOpts(w)...)
}
