package main

import (
	"context"
	"errors"
	"strings"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/dotconf-format/go-dotconf/debug"
	"github.com/dotconf-format/go-dotconf/parse"
	"github.com/dotconf-format/go-dotconf/schema"
)

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)
	s.log.Debug("publishing diagnostics",
		zap.String("uri", uri),
		zap.Int("count", len(diagnostics)))
	if debug.LSP() {
		debug.LogAny(diagnostics)
	}

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err != nil {
		return append(diagnostics, errDiagnostic(doc, doc.err))
	}
	if doc.isSchema {
		if doc.schemaErr != nil {
			diagnostics = append(diagnostics, errDiagnostic(doc, doc.schemaErr))
		}
		return diagnostics
	}
	if doc.schema == nil {
		return diagnostics
	}
	for _, verr := range doc.schema.Check(doc.node) {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    doc.lineRange(doc.lineOf(verr.Path)),
			Severity: protocol.DiagnosticSeverityError,
			Message:  verr.Error(),
			Source:   "dotconf",
		})
	}
	return diagnostics
}

func errDiagnostic(doc *document, err error) protocol.Diagnostic {
	line := 0
	var perr *parse.Error
	var serr *schema.Error
	switch {
	case errors.As(err, &perr):
		line = perr.Line
	case errors.As(err, &serr):
		line = serr.Line
	}
	return protocol.Diagnostic{
		Range:    doc.lineRange(line),
		Severity: protocol.DiagnosticSeverityError,
		Message:  err.Error(),
		Source:   "dotconf",
	}
}

// lineRange spans the whole 1-based line; 0 falls back to the first
// line.
func (doc *document) lineRange(line int) protocol.Range {
	if line < 1 {
		line = 1
	}
	lines := strings.Split(doc.content, "\n")
	length := 0
	if line-1 < len(lines) {
		length = len([]rune(lines[line-1]))
	}
	return protocol.Range{
		Start: protocol.Position{Line: uint32(line - 1), Character: 0},
		End:   protocol.Position{Line: uint32(line - 1), Character: uint32(length)},
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		// A zero range means the client sent the full document.
		r := change.Range
		if r.Start.Line == 0 && r.Start.Character == 0 && r.End.Line == 0 && r.End.Character == 0 {
			content = change.Text
			continue
		}
		runes := []rune(content)
		start := lineColToOffset(runes, int(r.Start.Line), int(r.Start.Character))
		end := lineColToOffset(runes, int(r.End.Line), int(r.End.Character))
		if start <= end && end <= len(runes) {
			content = string(runes[:start]) + change.Text + string(runes[end:])
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	// Re-resolve the schema: saving may have created or fixed it.
	s.docs.put(doc.uri, doc.content, doc.version)
	s.publishDiagnostics(ctx, doc.uri)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(runes []rune, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range runes {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(runes)
}
