package reader

import "testing"

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "parens and atom",
			input: "(+ 1 2)",
			want: []Token{
				{Kind: TokenSpecial, Literal: "("},
				{Kind: TokenAtom, Literal: "+"},
				{Kind: TokenAtom, Literal: "1"},
				{Kind: TokenAtom, Literal: "2"},
				{Kind: TokenSpecial, Literal: ")"},
			},
		},
		{
			name:  "splice-unquote is one token",
			input: "~@x",
			want: []Token{
				{Kind: TokenSpecial, Literal: "~@"},
				{Kind: TokenAtom, Literal: "x"},
			},
		},
		{
			name:  "comma is whitespace",
			input: "1,2, 3",
			want: []Token{
				{Kind: TokenAtom, Literal: "1"},
				{Kind: TokenAtom, Literal: "2"},
				{Kind: TokenAtom, Literal: "3"},
			},
		},
		{
			name:  "comment to end of line is dropped",
			input: "1 ; a comment\n2",
			want: []Token{
				{Kind: TokenAtom, Literal: "1"},
				{Kind: TokenAtom, Literal: "2"},
			},
		},
		{
			name:  "string literal kept with quotes",
			input: `"hi there"`,
			want: []Token{
				{Kind: TokenString, Literal: `"hi there"`},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.input, err)
			}
			if len(toks) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %d tokens, want %d (%v)", tt.input, len(toks), len(tt.want), toks)
			}
			for i, w := range tt.want {
				if toks[i].Kind != w.Kind || toks[i].Literal != w.Literal {
					t.Fatalf("token[%d] = %+v, want kind=%v literal=%q", i, toks[i], w.Kind, w.Literal)
				}
			}
		})
	}
}

func TestTokenizePositions(t *testing.T) {
	toks, err := Tokenize("1\n22 333")
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Pos != (Position{Line: 1, Column: 1}) {
		t.Fatalf("unexpected pos for first token: %v", toks[0].Pos)
	}
	if toks[1].Pos != (Position{Line: 2, Column: 1}) {
		t.Fatalf("unexpected pos for second token: %v", toks[1].Pos)
	}
	if toks[2].Pos != (Position{Line: 2, Column: 4}) {
		t.Fatalf("unexpected pos for third token: %v", toks[2].Pos)
	}
}

func TestTokenizeUnbalancedString(t *testing.T) {
	if _, err := Tokenize(`"abc`); err == nil {
		t.Fatalf("expected error for unterminated string")
	}
}

func TestTokenizeEscapedQuoteDoesNotTerminate(t *testing.T) {
	toks, err := Tokenize(`"a\"b"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Literal != `"a\"b"` {
		t.Fatalf("unexpected tokens: %v", toks)
	}
}
