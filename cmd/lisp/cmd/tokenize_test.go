package cmd

import (
	"testing"

	"github.com/lispkit/lisp/internal/reader"
)

func TestTokenKindName(t *testing.T) {
	cases := map[reader.TokenKind]string{
		reader.TokenSpecial: "SPECIAL",
		reader.TokenString:  "STRING",
		reader.TokenAtom:    "ATOM",
	}
	for kind, want := range cases {
		if got := tokenKindName(kind); got != want {
			t.Errorf("tokenKindName(%v) = %q, want %q", kind, got, want)
		}
	}
}

func TestReadInputPrefersInlineExpr(t *testing.T) {
	got, err := readInput("(+ 1 2)", []string{"ignored.lisp"})
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if got != "(+ 1 2)" {
		t.Errorf("got %q", got)
	}
}

func TestReadInputMissingFile(t *testing.T) {
	_, err := readInput("", []string{"/nonexistent/path/to/nowhere.lisp"})
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
