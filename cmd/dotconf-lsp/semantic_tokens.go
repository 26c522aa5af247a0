package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/dotconf-format/go-dotconf/schema"
	"github.com/dotconf-format/go-dotconf/token"
)

// Indexes into the semantic token legend advertised by Initialize.
const (
	tokComment = iota
	tokKeyword
	tokString
	tokNumber
	tokOperator
	tokProperty
)

// Modifier bits, same ordering as the legend.
const modDefinition = 1 << 0

// tokenSpan is one highlighted region before LSP delta encoding.
type tokenSpan struct {
	line      uint32
	character uint32
	length    uint32
	tokenType uint32
	modifiers uint32
}

// collectSemanticTokens builds spans in document order: the scan is
// top down and each line is built left to right, which is the order
// the delta encoding needs.
func (s *Server) collectSemanticTokens(doc *document) []tokenSpan {
	var spans []tokenSpan
	for i, line := range token.Scan([]byte(doc.content)) {
		spans = append(spans, lineSpans(uint32(i), line, doc)...)
	}
	return spans
}

func lineSpans(num uint32, line token.Line, doc *document) []tokenSpan {
	switch line.Kind {
	case token.CommentKind:
		runes := []rune(line.Raw)
		start := skipSpace(runes, 0)
		return []tokenSpan{{
			line:      num,
			character: uint32(start),
			length:    uint32(len([]rune(strings.TrimSpace(line.Raw)))),
			tokenType: tokComment,
		}}
	case token.AssignKind:
		return assignSpans(num, line, doc)
	default:
		return nil
	}
}

func assignSpans(num uint32, line token.Line, doc *document) []tokenSpan {
	var spans []tokenSpan
	add := func(at, n int, tokenType, modifiers uint32) {
		if n <= 0 {
			return
		}
		spans = append(spans, tokenSpan{
			line:      num,
			character: uint32(at),
			length:    uint32(n),
			tokenType: tokenType,
			modifiers: modifiers,
		})
	}

	runes := []rune(line.Raw)
	i := skipSpace(runes, 0)
	if line.IgnoreFailure && i < len(runes) && runes[i] == '-' {
		add(i, 1, tokOperator, 0)
		i = skipSpace(runes, i+1)
	}

	// Schema documents declare their keys.
	var keyMod uint32
	if doc.isSchema {
		keyMod = modDefinition
	}
	add(i, len([]rune(line.Key)), tokProperty, keyMod)

	// The key never contains '=', so the first one left is the
	// separator.
	eq := i
	for eq < len(runes) && runes[eq] != '=' {
		eq++
	}
	if eq == len(runes) {
		return spans
	}
	add(eq, 1, tokOperator, 0)

	vstart := skipSpace(runes, eq+1)
	add(vstart, len([]rune(line.Value)), valueTokenType(line, doc), 0)
	return spans
}

// valueTokenType picks a highlight for the value text. A declared
// type wins over guessing from the spelling.
func valueTokenType(line token.Line, doc *document) uint32 {
	if doc.isSchema {
		if _, err := schema.ParseType(line.Value); err == nil {
			return tokKeyword
		}
		return tokString
	}
	if doc.schema != nil {
		if n, err := doc.schema.Lookup(line.Key); err == nil && n != nil && !n.IsObject() {
			return declaredTokenType(n.Type)
		}
	}
	switch {
	case schema.BoolType.Accepts(line.Value):
		return tokKeyword
	case schema.IntegerType.Accepts(line.Value), schema.FloatType.Accepts(line.Value):
		return tokNumber
	default:
		return tokString
	}
}

func declaredTokenType(t schema.Type) uint32 {
	switch t {
	case schema.BoolType:
		return tokKeyword
	case schema.IntegerType, schema.FloatType:
		return tokNumber
	default:
		return tokString
	}
}

func skipSpace(runes []rune, i int) int {
	for i < len(runes) && (runes[i] == ' ' || runes[i] == '\t') {
		i++
	}
	return i
}

// encodeSpans packs spans in the LSP relative format: each token is
// (deltaLine, deltaChar, length, type, modifiers) against the one
// before it.
func encodeSpans(spans []tokenSpan) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	for _, sp := range spans {
		deltaLine := sp.line - prevLine
		deltaChar := sp.character
		if deltaLine == 0 {
			deltaChar = sp.character - prevChar
		}
		data = append(data, deltaLine, deltaChar, sp.length, sp.tokenType, sp.modifiers)
		prevLine = sp.line
		prevChar = sp.character
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: encodeSpans(s.collectSemanticTokens(doc))}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	// Tokens never span lines, so filtering by line is exact.
	var kept []tokenSpan
	for _, sp := range s.collectSemanticTokens(doc) {
		if sp.line < params.Range.Start.Line || sp.line > params.Range.End.Line {
			continue
		}
		kept = append(kept, sp)
	}
	return &protocol.SemanticTokens{Data: encodeSpans(kept)}, nil
}
