package main

import (
	"fmt"

	"github.com/dotconf-format/go-dotconf/eval"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	falsy := false
	for i, arg := range args {
		node, err := getConfFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := eval.Run(src, node)
		if err != nil {
			return fmt.Errorf("error evaluating %q against %s: %w", src, arg, err)
		}
		if !eval.Truthy(res) {
			falsy = true
		}
		if cfg.Quiet {
			continue
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(cc.Out, res); err != nil {
			return err
		}
	}
	if falsy {
		return cli.ExitCodeErr(1)
	}
	return nil
}
