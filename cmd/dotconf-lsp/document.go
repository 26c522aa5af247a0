package main

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/dotconf-format/go-dotconf/ir"
	"github.com/dotconf-format/go-dotconf/ir/keypath"
	"github.com/dotconf-format/go-dotconf/parse"
	"github.com/dotconf-format/go-dotconf/schema"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	path    string
	content string
	version int32

	// node is nil when err is set.
	node      *ir.Node
	positions map[*ir.Node]int
	err       error

	// isSchema marks schema files; schemaErr holds their declaration
	// errors. For config files, schema is the governing schema, when
	// one was found next to them.
	isSchema  bool
	schemaErr error
	schema    *schema.Schema
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	positions := make(map[*ir.Node]int)
	doc := &document{
		uri:       uri,
		path:      uriPath(uri),
		content:   content,
		version:   version,
		positions: positions,
	}
	doc.node, doc.err = parse.Parse([]byte(content), parse.Positions(positions))
	doc.isSchema = isSchemaPath(doc.path)
	switch {
	case doc.isSchema:
		_, doc.schemaErr = schema.Parse([]byte(content))
	case doc.err == nil:
		if sf := findSchema(doc.path); sf != "" {
			if s, err := schema.ParseFile(sf); err == nil {
				doc.schema = s
			}
		}
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// lineOf maps a violation path to the line of its assignment, or of
// its first leaf when the path names a whole subtree. Lines are
// 1-based; 0 means unknown.
func (doc *document) lineOf(dotted string) int {
	path, err := keypath.Parse(dotted)
	if err != nil || doc.node == nil {
		return 0
	}
	n := doc.node.LookupPath(path)
	if n == nil {
		return 0
	}
	line := 0
	n.Walk(func(_ keypath.Path, c *ir.Node) error {
		if line == 0 && c.Type == ir.StringType {
			line = doc.positions[c]
		}
		return nil
	})
	return line
}

func uriPath(u string) string {
	if !strings.HasPrefix(u, "file://") {
		return ""
	}
	return protocol.DocumentURI(u).Filename()
}

func isSchemaPath(path string) bool {
	if path == "" {
		return false
	}
	return strings.HasSuffix(path, ".schema.conf") || filepath.Base(path) == "schema.conf"
}

// findSchema locates the schema governing path: the path with its
// extension replaced by .schema.conf, else schema.conf in the same
// directory.
func findSchema(path string) string {
	if path == "" {
		return ""
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	cands := []string{
		base + ".schema.conf",
		filepath.Join(filepath.Dir(path), "schema.conf"),
	}
	for _, cand := range cands {
		if _, err := os.Stat(cand); err == nil {
			return cand
		}
	}
	return ""
}
