// Package eval runs expressions against dotconf trees.
//
// The expression language is expr (expr-lang.org). The environment
// is the config's values, so fields are addressed naturally:
//
//	net.port == "8080"
//	int(net.port) > 1024 && debug != "true"
//
// All config values are strings; use the language's int()/float()
// conversions for arithmetic.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/dotconf-format/go-dotconf/ir"
)

// Run evaluates src with cfg's values as the environment.
func Run(src string, cfg *ir.Node) (any, error) {
	env, ok := cfg.Interface().(map[string]any)
	if !ok {
		return nil, fmt.Errorf("eval needs an object root, got %s", cfg.Type)
	}
	prg, err := expr.Compile(src, exprOpts(cfg)...)
	if err != nil {
		return nil, err
	}
	return expr.Run(prg, env)
}

// Bool evaluates src and reports its truthiness: false, nil, "" and
// zero are false, everything else true.
func Bool(src string, cfg *ir.Node) (bool, error) {
	v, err := Run(src, cfg)
	if err != nil {
		return false, err
	}
	return Truthy(v), nil
}

// Truthy reports how a result reads as a condition.
func Truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case nil:
		return false
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}
