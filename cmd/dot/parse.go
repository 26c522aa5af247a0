package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dotconf-format/go-dotconf/encode"
	"github.com/dotconf-format/go-dotconf/parse"

	"github.com/scott-cotton/cli"
)

func parseCmd(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return parseReader(cfg, cc.Out, cc.In)
	}
	return parseFiles(cfg, cc.Out, args)
}

func parseFiles(cfg *ParseConfig, w io.Writer, files []string) error {
	for i, file := range files {
		if i > 0 {
			w.Write([]byte("---\n"))
		}
		if err := parseFile(cfg, w, file); err != nil {
			return err
		}
	}
	return nil
}

func parseFile(cfg *ParseConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := parseReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func parseReader(cfg *ParseConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	node, err := parse.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	return encode.Encode(node, w, cfg.encOpts(w)...)
}
