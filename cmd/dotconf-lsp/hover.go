package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/dotconf-format/go-dotconf/ir"
	"github.com/dotconf-format/go-dotconf/token"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	line := int(params.Position.Line)
	lines := strings.Split(doc.content, "\n")
	if line >= len(lines) {
		return nil, nil
	}
	ln := token.Classify(line+1, lines[line])
	if ln.Kind != token.AssignKind || ln.Key == "" {
		return nil, nil
	}

	hoverText := buildHoverText(doc, ln.Key)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

func buildHoverText(doc *document, key string) string {
	parts := []string{fmt.Sprintf("**Key:** `%s`", key)}

	if doc.schema != nil {
		sn, err := doc.schema.Lookup(key)
		switch {
		case err != nil:
		case sn == nil:
			parts = append(parts, "**Declared:** not in schema")
		case sn.IsObject():
			parts = append(parts, "**Declared:** object")
		default:
			parts = append(parts, fmt.Sprintf("**Declared:** %s", sn.Type))
		}
	}

	if doc.node != nil {
		if n, err := doc.node.Lookup(key); err == nil && n != nil && n.Type == ir.StringType {
			val := n.String
			if len(val) > 50 {
				val = val[:50] + "..."
			}
			parts = append(parts, fmt.Sprintf("**Value:** `%s`", val))
		}
	}

	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts, "\n\n")
}
