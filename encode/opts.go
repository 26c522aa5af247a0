package encode

import "github.com/dotconf-format/go-dotconf/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeJSON() EncodeOption {
	return EncodeFormat(format.JSONFormat)
}
func EncodeYAML() EncodeOption {
	return EncodeFormat(format.YAMLFormat)
}

// EncodeCompact drops newlines and indentation from JSON output.
func EncodeCompact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
