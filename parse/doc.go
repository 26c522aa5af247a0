// Package parse builds dotconf trees from text.
//
// # Overview
//
// Parsing is line oriented: blank and comment lines are skipped,
// every other line must be a "dotted.key = value" assignment. Dotted
// keys build nested objects; values are kept as strings.
//
//	tree, err := parse.Parse([]byte("net.port = 8080\n"))
//
// # Errors
//
// The first structural problem aborts the parse. Every parse failure
// is a *Error carrying the 1-based line number and wrapping one of
// the sentinel causes:
//
//   - ErrMalformedLine: a non-blank, non-comment line without '='
//   - ErrMalformedKey: an empty key or an empty path segment
//   - ErrConflictingKey: a key that needs to be both a value and a
//     container of nested keys
//
// ParseFile returns file read errors as they are, untranslated.
//
// # Ignore-failure marker
//
// A line starting with '-' is marked: tooling that processes lines
// individually may drop it on failure instead of failing everything.
// By default the marker changes nothing here; with SkipMarkedErrors a
// marked line that fails structurally is dropped from the result.
package parse
