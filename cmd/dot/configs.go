package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/dotconf-format/go-dotconf/encode"
	"github.com/dotconf-format/go-dotconf/format"
	"github.com/dotconf-format/go-dotconf/parse"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Compact bool `cli:"name=compact desc='compact json output'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	// Lax drops lines marked with '-' that fail to parse instead of
	// failing whole documents.
	Lax bool `cli:"name=lax desc='drop failing lines marked with -'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	var res []parse.Option
	if cfg.Lax {
		res = append(res, parse.SkipMarkedErrors())
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeCompact(cfg.Compact),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) && cfg.outFormat().IsJSON() {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor decides colored output for the non-tree commands (diff).
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ParseConfig struct {
	*MainConfig

	Parse *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q aliases=quiet desc='no output, status only'"`
	Check *cli.Command
}

type SchemaConfig struct {
	*MainConfig

	Flat   bool `cli:"name=flat desc='print declarations as path: type lines'"`
	Schema *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig

	AsPatch bool `cli:"name=patch desc='output a json merge patch'"`
	Diff    *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q aliases=quiet desc='no output, status only'"`
	Eval  *cli.Command
}

type VersionConfig struct {
	*MainConfig

	Version *cli.Command
}
