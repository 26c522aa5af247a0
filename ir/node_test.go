package ir

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dotconf-format/go-dotconf/ir/keypath"
)

func mustPath(t *testing.T, raw string) keypath.Path {
	t.Helper()
	p, err := keypath.Parse(raw)
	if err != nil {
		t.Fatalf("keypath.Parse(%q): %v", raw, err)
	}
	return p
}

func TestInsertBuildsNesting(t *testing.T) {
	root := Object()
	if err := root.Insert(mustPath(t, "net.ipv4.forward"), FromString("1")); err != nil {
		t.Fatal(err)
	}
	if err := root.Insert(mustPath(t, "net.ipv4.mtu"), FromString("1500")); err != nil {
		t.Fatal(err)
	}
	if err := root.Insert(mustPath(t, "fs.max"), FromString("8192")); err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"net.ipv4.forward": "1",
		"net.ipv4.mtu":     "1500",
		"fs.max":           "8192",
	}
	if d := cmp.Diff(want, root.Flatten()); d != "" {
		t.Errorf("Flatten mismatch (-want +got):\n%s", d)
	}
}

func TestInsertOverwritesLeaf(t *testing.T) {
	root := Object()
	if err := root.Insert(mustPath(t, "a.b"), FromString("1")); err != nil {
		t.Fatal(err)
	}
	if err := root.Insert(mustPath(t, "a.b"), FromString("2")); err != nil {
		t.Fatal(err)
	}
	n, err := root.Lookup("a.b")
	if err != nil {
		t.Fatal(err)
	}
	if n == nil || n.String != "2" {
		t.Errorf("a.b = %v, want leaf 2", n)
	}
}

func TestInsertConflicts(t *testing.T) {
	tests := []struct {
		name    string
		first   string
		second  string
		wantSub string
	}{
		{
			name:    "leaf under leaf",
			first:   "a.b",
			second:  "a.b.c",
			wantSub: `"a.b" already holds a value`,
		},
		{
			name:    "leaf where nested keys exist",
			first:   "a.b.c",
			second:  "a.b",
			wantSub: `"a.b" already holds nested keys`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := Object()
			if err := root.Insert(mustPath(t, tt.first), FromString("x")); err != nil {
				t.Fatal(err)
			}
			err := root.Insert(mustPath(t, tt.second), FromString("y"))
			if !errors.Is(err, ErrConflict) {
				t.Fatalf("err = %v, want ErrConflict", err)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("err = %q, want substring %q", err, tt.wantSub)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	root := Object()
	if err := root.Insert(mustPath(t, "a.b.c"), FromString("v")); err != nil {
		t.Fatal(err)
	}

	n, err := root.Lookup("a.b.c")
	if err != nil || n == nil || n.String != "v" {
		t.Errorf("Lookup(a.b.c) = %v, %v", n, err)
	}

	n, err = root.Lookup("a.b")
	if err != nil || n == nil || n.Type != ObjectType {
		t.Errorf("Lookup(a.b) = %v, %v, want object", n, err)
	}

	n, err = root.Lookup("a.missing")
	if err != nil || n != nil {
		t.Errorf("Lookup(a.missing) = %v, %v, want nil, nil", n, err)
	}

	// path through a leaf
	n, err = root.Lookup("a.b.c.d")
	if err != nil || n != nil {
		t.Errorf("Lookup(a.b.c.d) = %v, %v, want nil, nil", n, err)
	}

	if _, err = root.Lookup("a..b"); !errors.Is(err, ErrMalformedKey) {
		t.Errorf("Lookup(a..b) err = %v, want ErrMalformedKey", err)
	}
}

func TestWalkOrderDeterministic(t *testing.T) {
	root := Object()
	for _, k := range []string{"z.last", "a.first", "m.mid", "a.second"} {
		if err := root.Insert(mustPath(t, k), FromString("v")); err != nil {
			t.Fatal(err)
		}
	}
	var got []string
	root.Walk(func(path keypath.Path, n *Node) error {
		if n.Type == StringType {
			got = append(got, path.String())
		}
		return nil
	})
	want := []string{"a.first", "a.second", "m.mid", "z.last"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("walk order (-want +got):\n%s", d)
	}
}

func TestCloneIsDeep(t *testing.T) {
	root := Object()
	if err := root.Insert(mustPath(t, "a.b"), FromString("1")); err != nil {
		t.Fatal(err)
	}
	dup := root.Clone()
	if err := dup.Insert(mustPath(t, "a.b"), FromString("2")); err != nil {
		t.Fatal(err)
	}
	orig, _ := root.Lookup("a.b")
	if orig.String != "1" {
		t.Errorf("clone shares state: a.b = %q", orig.String)
	}
	if !root.Equal(root.Clone()) {
		t.Errorf("clone not Equal to original")
	}
}

func TestEqual(t *testing.T) {
	a, err := FromMap(map[string]any{
		"x": "1",
		"n": map[string]any{"y": "2"},
	})
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromMap(map[string]any{
		"x": "1",
		"n": map[string]any{"y": "2"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("equal trees reported unequal")
	}
	b.Fields["x"].String = "other"
	if a.Equal(b) {
		t.Errorf("unequal trees reported equal")
	}
	if a.Equal(nil) {
		t.Errorf("Equal(nil) = true")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	root, err := FromMap(map[string]any{
		"net": map[string]any{"port": "8080", "host": "localhost"},
		"on":  "true",
	})
	if err != nil {
		t.Fatal(err)
	}
	d, err := root.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if !root.Equal(back) {
		t.Errorf("JSON round trip changed tree:\n%v\n%v", root.Interface(), back.Interface())
	}
}

func TestFromJSONScalars(t *testing.T) {
	node, err := FromJSON([]byte(`{"a": 12, "b": true, "c": 1.5}`))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"a": "12", "b": "true", "c": "1.5"}
	if d := cmp.Diff(want, node.Flatten()); d != "" {
		t.Errorf("scalars (-want +got):\n%s", d)
	}
	if _, err := FromJSON([]byte(`{"a": [1]}`)); err == nil {
		t.Errorf("array accepted")
	}
	if _, err := FromJSON([]byte(`{"a": null}`)); err == nil {
		t.Errorf("null accepted")
	}
}
