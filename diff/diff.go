// Package diff compares two dotconf trees by flattened key.
package diff

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dotconf-format/go-dotconf/ir"
)

type Op int

const (
	Added Op = iota
	Removed
	Changed
)

func (op Op) String() string {
	switch op {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	default:
		return fmt.Sprintf("<err: %d is not a diff op>", int(op))
	}
}

// Mark is the one-character prefix used when rendering an entry.
func (op Op) Mark() string {
	switch op {
	case Added:
		return "+"
	case Removed:
		return "-"
	default:
		return "~"
	}
}

// Entry is one differing leaf path.
type Entry struct {
	Op   Op
	Path string
	// Old is set for Removed and Changed.
	Old string
	// New is set for Added and Changed.
	New string
}

// Render writes the entry as one diff line.
func (e Entry) Render() string {
	switch e.Op {
	case Added:
		return fmt.Sprintf("+ %s = %s", e.Path, e.New)
	case Removed:
		return fmt.Sprintf("- %s = %s", e.Path, e.Old)
	default:
		return fmt.Sprintf("~ %s = %s -> %s", e.Path, e.Old, e.New)
	}
}

// Inline renders a character-level diff of a Changed entry's values,
// ANSI-colored (red deletions, green insertions).
func (e Entry) Inline() string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(e.Old, e.New, false))
	return strings.TrimSuffix(dmp.DiffPrettyText(diffs), "\n")
}

// Trees compares two configs and returns the differing leaf paths in
// sorted order.
func Trees(a, b *ir.Node) []Entry {
	av, bv := a.Flatten(), b.Flatten()
	paths := map[string]bool{}
	for k := range av {
		paths[k] = true
	}
	for k := range bv {
		paths[k] = true
	}
	var entries []Entry
	for _, p := range slices.Sorted(maps.Keys(paths)) {
		oldV, inA := av[p]
		newV, inB := bv[p]
		switch {
		case !inA:
			entries = append(entries, Entry{Op: Added, Path: p, New: newV})
		case !inB:
			entries = append(entries, Entry{Op: Removed, Path: p, Old: oldV})
		case oldV != newV:
			entries = append(entries, Entry{Op: Changed, Path: p, Old: oldV, New: newV})
		}
	}
	return entries
}

// AsMergePatch returns the RFC 7386 patch that transforms a into b.
func AsMergePatch(a, b *ir.Node) ([]byte, error) {
	aJSON, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	bJSON, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(aJSON, bJSON)
}
