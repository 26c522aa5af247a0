package main

import (
	"fmt"
	"io"

	"github.com/dotconf-format/go-dotconf/schema"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least 1 argument (schema file)", cli.ErrUsage)
	}
	s, err := loadSchema(cc, args[0])
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", args[0], err)
	}
	confFiles := args[1:]
	if len(confFiles) == 0 {
		confFiles = []string{"-"}
	}
	failed := false
	for _, confFile := range confFiles {
		ok, err := checkFile(cfg, cc, s, confFile)
		if err != nil {
			return err
		}
		if !ok {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func loadSchema(cc *cli.Context, file string) (*schema.Schema, error) {
	if file == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, err
		}
		return schema.Parse(d)
	}
	return schema.ParseFile(file)
}

func checkFile(cfg *CheckConfig, cc *cli.Context, s *schema.Schema, file string) (bool, error) {
	node, err := getConfFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", file, err)
	}
	name := file
	if file == "-" {
		name = "stdin"
	}
	verrs := s.Check(node)
	if len(verrs) == 0 {
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", name)
		}
		return true, nil
	}
	if !cfg.Quiet {
		for _, verr := range verrs {
			fmt.Fprintf(cc.Out, "%s: %v\n", name, verr)
		}
	}
	return false, nil
}
