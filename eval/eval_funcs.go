package eval

import (
	"maps"
	"slices"

	"github.com/expr-lang/expr"

	"github.com/dotconf-format/go-dotconf/ir"
)

func exprOpts(cfg *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			n, err := cfg.Lookup(params[0].(string))
			if err != nil {
				return nil, err
			}
			if n == nil || n.Type != ir.StringType {
				return "", nil
			}
			return n.String, nil
		},
			new(func(string) string)),
		expr.Function("has", func(params ...any) (any, error) {
			n, err := cfg.Lookup(params[0].(string))
			if err != nil {
				return nil, err
			}
			return n != nil, nil
		},
			new(func(string) bool)),
		expr.Function("keys", func(params ...any) (any, error) {
			n, err := cfg.Lookup(params[0].(string))
			if err != nil {
				return nil, err
			}
			if n == nil {
				return []string{}, nil
			}
			return slices.Sorted(maps.Keys(n.Flatten())), nil
		},
			new(func(string) []string)),
	}
}
