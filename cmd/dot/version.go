package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func versionCmd(cfg *VersionConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Version.Parse(cc, args); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cc.Out, "dot version %s (%s)\n", version, commit)
	return err
}
