// Package debug provides env-gated debug logging to stderr.
//
// Gates are read once at startup:
//
//	DOTCONF_DEBUG_PARSE   parser decisions (dropped lines)
//	DOTCONF_DEBUG_SCHEMA  schema conversion and validation
//	DOTCONF_DEBUG_LSP     language server traffic
//	DOTCONF_DEBUG_ALL     everything
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Schema bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	all := boolEnv("DOTCONF_DEBUG_ALL")
	d.Parse = all || boolEnv("DOTCONF_DEBUG_PARSE")
	d.Schema = all || boolEnv("DOTCONF_DEBUG_SCHEMA")
	d.LSP = all || boolEnv("DOTCONF_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Schema() bool {
	return d.Schema
}
func LSP() bool {
	return d.LSP
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
