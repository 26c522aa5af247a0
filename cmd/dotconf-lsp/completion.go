package main

import (
	"context"
	"maps"
	"slices"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/dotconf-format/go-dotconf/schema"
	"github.com/dotconf-format/go-dotconf/token"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	pos := params.Position
	lineContent := lineTo(doc.content, int(pos.Line), int(pos.Character))

	completions := []protocol.CompletionItem{}
	if strings.Contains(lineContent, "=") {
		completions = append(completions, valueCompletions(doc, lineContent)...)
	} else {
		completions = append(completions, keyCompletions(doc)...)
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completions,
	}, nil
}

// keyCompletions offers every leaf path the governing schema declares.
func keyCompletions(doc *document) []protocol.CompletionItem {
	if doc.schema == nil {
		return nil
	}
	decls := doc.schema.Flatten()
	items := make([]protocol.CompletionItem, 0, len(decls))
	for _, path := range slices.Sorted(maps.Keys(decls)) {
		items = append(items, protocol.CompletionItem{
			Label:      path,
			Kind:       protocol.CompletionItemKindProperty,
			InsertText: path + " = ",
			Detail:     decls[path].String(),
		})
	}
	return items
}

// valueCompletions offers true/false after '=' on a line whose key is
// declared bool.
func valueCompletions(doc *document, lineContent string) []protocol.CompletionItem {
	if doc.schema == nil {
		return nil
	}
	ln := token.Classify(0, lineContent)
	if ln.Kind != token.AssignKind || ln.Key == "" {
		return nil
	}
	sn, err := doc.schema.Lookup(ln.Key)
	if err != nil || sn == nil || sn.IsObject() || sn.Type != schema.BoolType {
		return nil
	}
	return []protocol.CompletionItem{
		{
			Label:      "true",
			Kind:       protocol.CompletionItemKindValue,
			InsertText: "true",
		},
		{
			Label:      "false",
			Kind:       protocol.CompletionItemKindValue,
			InsertText: "false",
		},
	}
}

// lineTo returns the text of the 0-based line up to col.
func lineTo(content string, line, col int) string {
	runes := []rune(content)
	start := lineColToOffset(runes, line, 0)
	end := start
	for end < len(runes) && end-start < col && runes[end] != '\n' {
		end++
	}
	return string(runes[start:end])
}
