package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/dotconf-format/go-dotconf/ir/keypath"
	"github.com/dotconf-format/go-dotconf/token"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	// No edits for documents that do not parse.
	if doc.err != nil {
		return nil, nil
	}

	formatted := formatLines(doc.content)
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// A single edit replacing the whole document.
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}

// formatLines rewrites assignments as "dotted.key = value" with
// single spaces around '=' and no padding inside the key. Comments
// and blank lines keep their text, minus trailing whitespace.
func formatLines(content string) string {
	lines := token.Scan([]byte(content))
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = formatLine(line)
	}
	return strings.Join(out, "\n")
}

func formatLine(line token.Line) string {
	if line.Kind != token.AssignKind {
		return strings.TrimRight(line.Raw, " \t")
	}
	path, err := keypath.Parse(line.Key)
	if err != nil {
		return strings.TrimRight(line.Raw, " \t")
	}
	var b strings.Builder
	if line.IgnoreFailure {
		b.WriteString("-")
	}
	b.WriteString(path.String())
	b.WriteString(" =")
	if line.Value != "" {
		b.WriteString(" ")
		b.WriteString(line.Value)
	}
	return b.String()
}
