package parse

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dotconf-format/go-dotconf/ir"
)

func TestParseOK(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]string
	}{
		{
			name: "empty document",
			in:   "",
			want: map[string]string{},
		},
		{
			name: "comments and blanks only",
			in:   "# a\n\n; b\n   \n",
			want: map[string]string{},
		},
		{
			name: "comments and blanks around an assignment",
			in:   "# comment\n\n;also comment\nkey = val\n",
			want: map[string]string{"key": "val"},
		},
		{
			name: "flat keys",
			in:   "endpoint = localhost:3000\ndebug = true\nlog.file = /var/log/console.log\n",
			want: map[string]string{
				"endpoint": "localhost:3000",
				"debug":    "true",
				"log.file": "/var/log/console.log",
			},
		},
		{
			name: "nested keys share prefixes",
			in:   "net.ipv4.forward = 1\nnet.ipv4.mtu = 1500\nnet.ipv6.forward = 0\n",
			want: map[string]string{
				"net.ipv4.forward": "1",
				"net.ipv4.mtu":     "1500",
				"net.ipv6.forward": "0",
			},
		},
		{
			name: "value keeps inner equals",
			in:   "query = a=1&b=2\n",
			want: map[string]string{"query": "a=1&b=2"},
		},
		{
			name: "empty value",
			in:   "flag =\n",
			want: map[string]string{"flag": ""},
		},
		{
			name: "last assignment wins",
			in:   "a.b = 1\na.b = 2\n",
			want: map[string]string{"a.b": "2"},
		},
		{
			name: "marker stripped from key",
			in:   "-net.port = 8080\n",
			want: map[string]string{"net.port": "8080"},
		},
		{
			name: "bare marker line skipped",
			in:   "-\na = 1\n",
			want: map[string]string{"a": "1"},
		},
		{
			name: "segments trimmed",
			in:   "net . ipv4 . forward = 1\n",
			want: map[string]string{"net.ipv4.forward": "1"},
		},
		{
			name: "no trailing newline",
			in:   "a = 1",
			want: map[string]string{"a": "1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if d := cmp.Diff(tt.want, node.Flatten()); d != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, d)
			}
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	in := "net.ipv4.forward = 1\nnet.ipv4.mtu = 1500\nfs.max = 8192\n"
	a, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("two parses of the same text differ:\n%v\n%v", a.Interface(), b.Interface())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		sentinel error
		line     int
	}{
		{
			name:     "missing equals",
			in:       "a = 1\nnot an assignment\n",
			sentinel: ErrMalformedLine,
			line:     2,
		},
		{
			name:     "empty key",
			in:       "= v\n",
			sentinel: ErrMalformedKey,
			line:     1,
		},
		{
			name:     "empty segment",
			in:       "ok = 1\na..b = 2\n",
			sentinel: ErrMalformedKey,
			line:     2,
		},
		{
			name:     "trailing dot",
			in:       "a. = 2\n",
			sentinel: ErrMalformedKey,
			line:     1,
		},
		{
			name:     "leaf then nested",
			in:       "a.b = 1\na.b.c = 2\n",
			sentinel: ErrConflictingKey,
			line:     2,
		},
		{
			name:     "nested then leaf",
			in:       "a.b.c = 1\na.b = 2\n",
			sentinel: ErrConflictingKey,
			line:     2,
		},
		{
			name:     "marker does not excuse malformed line",
			in:       "- not an assignment\n",
			sentinel: ErrMalformedLine,
			line:     1,
		},
		{
			name:     "marker does not excuse conflict",
			in:       "a.b = 1\n-a.b.c = 2\n",
			sentinel: ErrConflictingKey,
			line:     2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if err == nil {
				t.Fatalf("Parse(%q): no error", tt.in)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("err = %v, want %v", err, tt.sentinel)
			}
			var pe *Error
			if !errors.As(err, &pe) {
				t.Fatalf("err %T is not *Error", err)
			}
			if pe.Line != tt.line {
				t.Errorf("line = %d, want %d", pe.Line, tt.line)
			}
		})
	}
}

func TestParseErrorRendersLine(t *testing.T) {
	_, err := Parse([]byte("a = 1\nwhat\n"))
	if err == nil {
		t.Fatal("no error")
	}
	want := "line 2: malformed line: missing '='"
	if err.Error() != want {
		t.Errorf("err = %q, want %q", err, want)
	}
}

func TestSkipMarkedErrors(t *testing.T) {
	// a marked line that parses fine is kept; c.d = leaf then
	// conflicts with it on the unmarked line 6.
	in := "a = 1\n- broken line\n-x..y = 2\nb = 2\n- c.d.e = 3\nc.d = leaf\n"
	_, err := Parse([]byte(in), SkipMarkedErrors())
	if !errors.Is(err, ErrConflictingKey) {
		t.Fatalf("err = %v, want conflict on unmarked line", err)
	}

	in = "a = 1\n- broken line\n-x..y = 2\nb = 2\n"
	node, err := Parse([]byte(in), SkipMarkedErrors())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := map[string]string{"a": "1", "b": "2"}
	if d := cmp.Diff(want, node.Flatten()); d != "" {
		t.Errorf("skip-marked mismatch (-want +got):\n%s", d)
	}

	// unmarked failures still abort
	if _, err := Parse([]byte("broken\n"), SkipMarkedErrors()); !errors.Is(err, ErrMalformedLine) {
		t.Errorf("unmarked malformed err = %v", err)
	}
}

func TestPositionsAndMarked(t *testing.T) {
	in := "a = 1\n\n# c\nb.c = 2\n-b.d = 3\nb.c = 4\n"
	positions := map[*ir.Node]int{}
	marked := map[*ir.Node]bool{}
	node, err := Parse([]byte(in), Positions(positions), Marked(marked))
	if err != nil {
		t.Fatal(err)
	}
	at := func(key string) *ir.Node {
		t.Helper()
		n, err := node.Lookup(key)
		if err != nil || n == nil {
			t.Fatalf("Lookup(%q) = %v, %v", key, n, err)
		}
		return n
	}
	if got := positions[at("a")]; got != 1 {
		t.Errorf("pos(a) = %d, want 1", got)
	}
	if got := positions[at("b.c")]; got != 6 {
		t.Errorf("pos(b.c) = %d, want 6 (last assignment)", got)
	}
	if got := positions[at("b.d")]; got != 5 {
		t.Errorf("pos(b.d) = %d, want 5", got)
	}
	if !marked[at("b.d")] {
		t.Errorf("b.d not marked")
	}
	if marked[at("a")] {
		t.Errorf("a marked")
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.conf")
	if err := os.WriteFile(path, []byte("srv.port = 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	node, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if node.Flatten()["srv.port"] != "9" {
		t.Errorf("srv.port = %q", node.Flatten()["srv.port"])
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.conf")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file err = %v, want fs.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.conf")
	if err := os.WriteFile(bad, []byte("nope\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = ParseFile(bad)
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("bad file err = %v", err)
	}
	var pe *Error
	if !errors.As(err, &pe) || pe.Line != 1 {
		t.Errorf("bad file err lost line info: %v", err)
	}
}
