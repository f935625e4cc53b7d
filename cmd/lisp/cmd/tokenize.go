package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/lispkit/lisp/internal/errors"
	"github.com/lispkit/lisp/internal/reader"
	"github.com/spf13/cobra"
)

var (
	tokenizeExpr     string
	tokenizeShowPos  bool
	tokenizeShowKind bool
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Tokenize source and print the resulting token stream",
	Long: `Tokenize a Lisp source file or expression and print the resulting
tokens, for debugging the reader's lexical phase (reader.Tokenize).

If no file is given, reads from stdin.

Examples:
  lisp tokenize script.lisp
  lisp tokenize -e "(+ 1 2)"
  lisp tokenize --show-pos --show-kind script.lisp`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)

	tokenizeCmd.Flags().StringVarP(&tokenizeExpr, "eval", "e", "", "tokenize inline code instead of reading from a file")
	tokenizeCmd.Flags().BoolVar(&tokenizeShowPos, "show-pos", false, "show token positions (line:column)")
	tokenizeCmd.Flags().BoolVar(&tokenizeShowKind, "show-kind", false, "show token kind names")
}

func runTokenize(_ *cobra.Command, args []string) error {
	input, err := readInput(tokenizeExpr, args)
	if err != nil {
		return err
	}

	tokens, err := reader.Tokenize(input)
	if err != nil {
		if rerr, ok := err.(*reader.Error); ok {
			return fmt.Errorf("%s", errors.NewSourceError(rerr, input, "").Format(false))
		}
		return fmt.Errorf("tokenize failed: %w", err)
	}

	for _, tok := range tokens {
		line := tok.Literal
		if tokenizeShowKind {
			line = fmt.Sprintf("%s %q", tokenKindName(tok.Kind), tok.Literal)
		}
		if tokenizeShowPos {
			line = fmt.Sprintf("%s\t%s", tok.Pos, line)
		}
		fmt.Println(line)
	}
	return nil
}

func tokenKindName(k reader.TokenKind) string {
	switch k {
	case reader.TokenSpecial:
		return "SPECIAL"
	case reader.TokenString:
		return "STRING"
	case reader.TokenAtom:
		return "ATOM"
	default:
		return "UNKNOWN"
	}
}

// readInput resolves the input source shared by the debug
// subcommands: an inline expression, a file argument, or stdin.
func readInput(expr string, args []string) (string, error) {
	switch {
	case expr != "":
		return expr, nil
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
}
