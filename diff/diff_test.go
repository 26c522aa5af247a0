package diff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dotconf-format/go-dotconf/ir"
	"github.com/dotconf-format/go-dotconf/merge"
	"github.com/dotconf-format/go-dotconf/parse"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return node
}

func TestTrees(t *testing.T) {
	a := mustParse(t, "net.port = 8080\nlog.level = info\ndropped = yes\n")
	b := mustParse(t, "net.port = 9090\nlog.level = info\nadded.key = v\n")

	got := Trees(a, b)
	want := []Entry{
		{Op: Added, Path: "added.key", New: "v"},
		{Op: Removed, Path: "dropped", Old: "yes"},
		{Op: Changed, Path: "net.port", Old: "8080", New: "9090"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Trees mismatch (-want +got):\n%s", d)
	}
}

func TestTreesEqual(t *testing.T) {
	a := mustParse(t, "x = 1\n")
	b := mustParse(t, "x = 1\n")
	if got := Trees(a, b); len(got) != 0 {
		t.Errorf("equal trees diff = %v", got)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		e    Entry
		want string
	}{
		{Entry{Op: Added, Path: "a.b", New: "1"}, "+ a.b = 1"},
		{Entry{Op: Removed, Path: "a.b", Old: "1"}, "- a.b = 1"},
		{Entry{Op: Changed, Path: "a.b", Old: "1", New: "2"}, "~ a.b = 1 -> 2"},
	}
	for _, tt := range tests {
		if got := tt.e.Render(); got != tt.want {
			t.Errorf("Render() = %q, want %q", got, tt.want)
		}
	}
}

func TestInlineKeepsBothValues(t *testing.T) {
	e := Entry{Op: Changed, Path: "p", Old: "localhost:8080", New: "localhost:9090"}
	out := e.Inline()
	if !strings.Contains(out, "localhost:") {
		t.Errorf("inline diff lost common text: %q", out)
	}
}

func TestAsMergePatchRoundTrip(t *testing.T) {
	a := mustParse(t, "x = 1\ny.z = 2\n")
	b := mustParse(t, "x = 2\ny.w = 3\n")
	patch, err := AsMergePatch(a, b)
	if err != nil {
		t.Fatal(err)
	}
	got, err := merge.Patch(a, patch)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(b.Flatten(), got.Flatten()); d != "" {
		t.Errorf("patch did not transform a into b (-want +got):\n%s", d)
	}
}
