package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dotconf-format/go-dotconf/diff"
	"github.com/dotconf-format/go-dotconf/ir"

	"github.com/scott-cotton/cli"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getConfFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getConfFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	entries := diff.Trees(a, b)
	if len(entries) == 0 {
		return nil
	}
	if cfg.AsPatch {
		if err := writePatch(cfg, cc.Out, a, b); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	if err := writeEntries(cfg, cc.Out, entries); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writePatch(cfg *DiffConfig, w io.Writer, a, b *ir.Node) error {
	d, err := diff.AsMergePatch(a, b)
	if err != nil {
		return err
	}
	if !cfg.Compact {
		var buf bytes.Buffer
		if err := json.Indent(&buf, d, "", "  "); err != nil {
			return err
		}
		d = buf.Bytes()
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func writeEntries(cfg *DiffConfig, w io.Writer, entries []diff.Entry) error {
	colored := cfg.useColor(w)
	for _, e := range entries {
		line := e.Render()
		if colored {
			line = colorEntry(e)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func colorEntry(e diff.Entry) string {
	switch e.Op {
	case diff.Added:
		return color.New(color.FgGreen).Sprint(e.Render())
	case diff.Removed:
		return color.New(color.FgRed).Sprint(e.Render())
	default:
		return fmt.Sprintf("~ %s = %s", e.Path, e.Inline())
	}
}
