// Package ir provides the in-memory representation of dotconf
// documents.
//
// # Overview
//
// A parsed document is a tree of nodes. A Node is either a string
// leaf or an object mapping field names to child nodes. Values are
// never typed at parse time; "8080" is the string "8080" until a
// schema says otherwise.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	leaf := ir.FromString("8080")
//	obj := ir.Object()
//	tree, err := ir.FromMap(map[string]any{
//	    "net": map[string]any{"port": "8080"},
//	})
//
// # Navigation
//
// Dotted keys navigate objects:
//
//	n, err := tree.Lookup("net.port")
//
// A missing key is (nil, nil); only a malformed key is an error.
//
// # Structure Constraints
//
// An object's Fields map is non-nil; a leaf's Fields is nil. Field
// iteration order is unspecified; Walk and Flatten visit fields in
// sorted order so output is deterministic.
package ir
