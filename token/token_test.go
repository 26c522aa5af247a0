package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Line
	}{
		{
			name: "empty",
			in:   "",
			want: Line{Kind: BlankKind},
		},
		{
			name: "whitespace only",
			in:   " \t ",
			want: Line{Kind: BlankKind},
		},
		{
			name: "hash comment",
			in:   "# a comment",
			want: Line{Kind: CommentKind},
		},
		{
			name: "semicolon comment",
			in:   "; a comment",
			want: Line{Kind: CommentKind},
		},
		{
			name: "indented comment",
			in:   "   # indented",
			want: Line{Kind: CommentKind},
		},
		{
			name: "assignment",
			in:   "net.port = 8080",
			want: Line{Kind: AssignKind, Key: "net.port", Value: "8080"},
		},
		{
			name: "assignment without spaces",
			in:   "net.port=8080",
			want: Line{Kind: AssignKind, Key: "net.port", Value: "8080"},
		},
		{
			name: "empty value",
			in:   "key =",
			want: Line{Kind: AssignKind, Key: "key", Value: ""},
		},
		{
			name: "value contains equals",
			in:   "expr = a=b=c",
			want: Line{Kind: AssignKind, Key: "expr", Value: "a=b=c"},
		},
		{
			name: "double equals",
			in:   "a==b",
			want: Line{Kind: AssignKind, Key: "a", Value: "=b"},
		},
		{
			name: "empty key",
			in:   "= v",
			want: Line{Kind: AssignKind, Key: "", Value: "v"},
		},
		{
			name: "marker",
			in:   "-net.port = 8080",
			want: Line{Kind: AssignKind, Key: "net.port", Value: "8080", IgnoreFailure: true},
		},
		{
			name: "marker with space",
			in:   "- net.port = 8080",
			want: Line{Kind: AssignKind, Key: "net.port", Value: "8080", IgnoreFailure: true},
		},
		{
			name: "double marker keeps second dash",
			in:   "--a = b",
			want: Line{Kind: AssignKind, Key: "-a", Value: "b", IgnoreFailure: true},
		},
		{
			name: "bare marker",
			in:   "-",
			want: Line{Kind: BlankKind, IgnoreFailure: true},
		},
		{
			name: "marker then spaces",
			in:   "-   ",
			want: Line{Kind: BlankKind, IgnoreFailure: true},
		},
		{
			name: "marker before comment is not a comment",
			in:   "-# note",
			want: Line{Kind: MalformedKind, IgnoreFailure: true},
		},
		{
			name: "no equals",
			in:   "just some words",
			want: Line{Kind: MalformedKind},
		},
		{
			name: "marked no equals",
			in:   "- just some words",
			want: Line{Kind: MalformedKind, IgnoreFailure: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want.Num = 7
			tt.want.Raw = tt.in
			got := Classify(7, tt.in)
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("Classify(%q) mismatch (-want +got):\n%s", tt.in, d)
			}
		})
	}
}

func TestScan(t *testing.T) {
	in := "# header\nnet.port = 8080\n\nnet.host = localhost\n"
	lines := Scan([]byte(in))
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	wantKinds := []Kind{CommentKind, AssignKind, BlankKind, AssignKind, BlankKind}
	for i, k := range wantKinds {
		if lines[i].Kind != k {
			t.Errorf("line %d: kind = %s, want %s", i+1, lines[i].Kind, k)
		}
		if lines[i].Num != i+1 {
			t.Errorf("line %d: num = %d", i+1, lines[i].Num)
		}
	}
}

func TestScanCRLF(t *testing.T) {
	lines := Scan([]byte("a = 1\r\nb = 2\r\n"))
	if lines[0].Value != "1" || lines[1].Value != "2" {
		t.Errorf("CRLF values = %q, %q", lines[0].Value, lines[1].Value)
	}
	if lines[0].Raw != "a = 1" {
		t.Errorf("raw = %q, want carriage return dropped", lines[0].Raw)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", k, err)
		}
		var got Kind
		if err := got.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", d, err)
		}
		if got != k {
			t.Errorf("round trip %s != %s", got, k)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("nope")); err == nil {
		t.Errorf("UnmarshalText(nope): expected error")
	}
}
