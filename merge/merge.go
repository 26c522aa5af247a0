// Package merge combines dotconf trees with RFC 7386 merge-patch
// semantics: leaves in the overlay win, objects union recursively.
package merge

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/dotconf-format/go-dotconf/ir"
)

// Trees merges overlay onto base. Neither input is modified.
func Trees(base, overlay *ir.Node) (*ir.Node, error) {
	baseJSON, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}
	overlayJSON, err := json.Marshal(overlay)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(baseJSON, overlayJSON)
	if err != nil {
		return nil, err
	}
	return ir.FromJSON(merged)
}

// All merges trees left to right.
func All(trees ...*ir.Node) (*ir.Node, error) {
	res := ir.Object()
	for _, t := range trees {
		var err error
		res, err = Trees(res, t)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Patch applies a JSON merge-patch document to doc. Unlike a config
// overlay, a patch may delete keys with null values.
func Patch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(docJSON, patch)
	if err != nil {
		return nil, err
	}
	return ir.FromJSON(merged)
}
