package reader

import (
	"testing"

	"github.com/lispkit/lisp/internal/value"
)

func TestReadAtoms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"int", "123", "123"},
		{"negative int", "-42", "-42"},
		{"symbol", "abc", "abc"},
		{"symbol with punctuation", "list?", "list?"},
		{"keyword", ":foo", ":foo"},
		{"nil", "nil", "nil"},
		{"true", "true", "true"},
		{"false", "false", "false"},
		{"string", `"hello"`, `"hello"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Read(tt.input)
			if err != nil {
				t.Fatalf("Read(%q): %v", tt.input, err)
			}
			if got := value.Pr(v, true); got != tt.want {
				t.Fatalf("Read(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadStringEscapes(t *testing.T) {
	v, err := Read(`"a\nb\"c\\d"`)
	if err != nil {
		t.Fatal(err)
	}
	s, ok := v.(value.String)
	if !ok {
		t.Fatalf("expected String, got %T", v)
	}
	if string(s) != "a\nb\"c\\d" {
		t.Fatalf("unexpected decoded string: %q", string(s))
	}
}

func TestReadListVectorHashMap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty list", "()", "()"},
		{"nested list", "(1 2 (3 4))", "(1 2 (3 4))"},
		{"vector", "[1 2 3]", "[1 2 3]"},
		{"hashmap", `{"a" 1}`, `{"a" 1}`},
		{"hashmap keyword key", "{:a 1}", "{:a 1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Read(tt.input)
			if err != nil {
				t.Fatalf("Read(%q): %v", tt.input, err)
			}
			if got := value.Pr(v, true); got != tt.want {
				t.Fatalf("Read(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadQuoteFamily(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"quote", "'a", "(quote a)"},
		{"quasiquote", "`a", "(quasiquote a)"},
		{"unquote", "~a", "(unquote a)"},
		{"splice-unquote", "~@a", "(splice-unquote a)"},
		{"deref", "@a", "(deref a)"},
		{"with-meta", "^{:a 1} [1 2 3]", `(with-meta [1 2 3] {:a 1})`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Read(tt.input)
			if err != nil {
				t.Fatalf("Read(%q): %v", tt.input, err)
			}
			if got := value.Pr(v, true); got != tt.want {
				t.Fatalf("Read(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadEmptyIsNoForm(t *testing.T) {
	tests := []string{"", "   ", "; just a comment", "  ,  ,  "}
	for _, in := range tests {
		if _, err := Read(in); err != ErrNoForm {
			t.Fatalf("Read(%q) error = %v, want ErrNoForm", in, err)
		}
	}
}

func TestReadUnbalancedErrors(t *testing.T) {
	tests := []string{"(1 2", "[1 2", "{:a 1", `"unterminated`, ")"}
	for _, in := range tests {
		if _, err := Read(in); err == nil {
			t.Fatalf("Read(%q): expected an error", in)
		}
	}
}

func TestReadHashMapOddForms(t *testing.T) {
	if _, err := Read(`{:a}`); err == nil {
		t.Fatalf("expected error for odd number of hash-map forms")
	}
}

func TestReadHashMapBadKey(t *testing.T) {
	if _, err := Read(`{1 2}`); err == nil {
		t.Fatalf("expected error for non-string/keyword hash-map key")
	}
}

func TestReadRoundTrip(t *testing.T) {
	inputs := []string{
		`(1 2 3)`,
		`[1 "two" :three]`,
		`{"a" 1 "b" 2}`,
		`(+ 1 (* 2 3))`,
		`nil`,
		`(quote (1 2 3))`,
	}
	for _, in := range inputs {
		v, err := Read(in)
		if err != nil {
			t.Fatalf("Read(%q): %v", in, err)
		}
		printed := value.Pr(v, true)
		v2, err := Read(printed)
		if err != nil {
			t.Fatalf("re-Read(%q): %v", printed, err)
		}
		if !value.Equal(v, v2) {
			t.Fatalf("round trip mismatch: %v != %v", v, v2)
		}
	}
}
