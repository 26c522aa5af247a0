package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestFindSchema(t *testing.T) {
	dir := t.TempDir()
	app := filepath.Join(dir, "app.conf")
	for _, f := range []string{"app.conf", "app.schema.conf", "schema.conf"} {
		if err := os.WriteFile(filepath.Join(dir, f), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if got := findSchema(app); got != filepath.Join(dir, "app.schema.conf") {
		t.Errorf("got %q, want sibling schema", got)
	}
	if err := os.Remove(filepath.Join(dir, "app.schema.conf")); err != nil {
		t.Fatal(err)
	}
	if got := findSchema(app); got != filepath.Join(dir, "schema.conf") {
		t.Errorf("got %q, want directory schema", got)
	}
	if err := os.Remove(filepath.Join(dir, "schema.conf")); err != nil {
		t.Fatal(err)
	}
	if got := findSchema(app); got != "" {
		t.Errorf("got %q, want none", got)
	}
}

func TestIsSchemaPath(t *testing.T) {
	for _, tc := range []struct {
		path string
		want bool
	}{
		{"/x/app.schema.conf", true},
		{"/x/schema.conf", true},
		{"/x/app.conf", false},
		{"", false},
	} {
		if got := isSchemaPath(tc.path); got != tc.want {
			t.Errorf("isSchemaPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestDiagnostics(t *testing.T) {
	dir := t.TempDir()
	schemaFile := filepath.Join(dir, "app.schema.conf")
	if err := os.WriteFile(schemaFile, []byte("net.port = integer\n"), 0644); err != nil {
		t.Fatal(err)
	}
	ds := &documentStore{docs: make(map[string]*document)}
	srv := &Server{log: zap.NewNop(), docs: ds}

	uri := "file://" + filepath.Join(dir, "app.conf")
	doc := ds.put(uri, "net.port = http\nextra = 1\n", 1)
	diags := srv.validateDocument(doc)
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics: %v", len(diags), diags)
	}
	if !strings.Contains(diags[0].Message, "undeclared key") || diags[0].Range.Start.Line != 1 {
		t.Errorf("unexpected first diagnostic: %+v", diags[0])
	}
	if !strings.Contains(diags[1].Message, "type mismatch") || diags[1].Range.Start.Line != 0 {
		t.Errorf("unexpected second diagnostic: %+v", diags[1])
	}

	doc = ds.put(uri, "net.port = 8080\n", 2)
	if diags := srv.validateDocument(doc); len(diags) != 0 {
		t.Errorf("conforming doc got diagnostics: %v", diags)
	}
}

func TestDiagnosticsParseError(t *testing.T) {
	ds := &documentStore{docs: make(map[string]*document)}
	srv := &Server{log: zap.NewNop(), docs: ds}
	doc := ds.put("file:///tmp/app.conf", "ok = 1\nbad line\n", 1)
	diags := srv.validateDocument(doc)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics: %v", len(diags), diags)
	}
	if diags[0].Range.Start.Line != 1 {
		t.Errorf("parse error at line %d, want 1", diags[0].Range.Start.Line)
	}
	if !strings.Contains(diags[0].Message, "missing '='") {
		t.Errorf("unexpected message %q", diags[0].Message)
	}
}

func TestDiagnosticsSchemaDocument(t *testing.T) {
	ds := &documentStore{docs: make(map[string]*document)}
	srv := &Server{log: zap.NewNop(), docs: ds}
	doc := ds.put("file:///tmp/app.schema.conf", "net.port = wat\n", 1)
	if !doc.isSchema {
		t.Fatal("schema file not recognized")
	}
	diags := srv.validateDocument(doc)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics: %v", len(diags), diags)
	}
	if !strings.Contains(diags[0].Message, "unknown schema type") {
		t.Errorf("unexpected message %q", diags[0].Message)
	}
}

func TestLineTo(t *testing.T) {
	content := "a = 1\nnet.port = 8080\n"
	if got := lineTo(content, 1, 8); got != "net.port" {
		t.Errorf("got %q", got)
	}
	if got := lineTo(content, 1, 100); got != "net.port = 8080" {
		t.Errorf("col past end got %q", got)
	}
	if got := lineTo(content, 5, 3); got != "" {
		t.Errorf("line past end got %q", got)
	}
}
