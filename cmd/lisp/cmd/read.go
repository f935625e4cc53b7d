package cmd

import (
	"fmt"

	"github.com/lispkit/lisp/internal/errors"
	"github.com/lispkit/lisp/internal/reader"
	"github.com/lispkit/lisp/internal/value"
	"github.com/spf13/cobra"
)

var readExpr string

var readCmd = &cobra.Command{
	Use:   "read [file]",
	Short: "Parse one form and print its internal representation",
	Long: `Read a single Lisp form and print it back out via the printer
(reader.Read followed by value.Pr), for debugging the reader's parse
phase independently of evaluation.

If no file is given, reads from stdin. Only the first top-level form
is parsed; trailing forms are ignored.

Examples:
  lisp read script.lisp
  lisp read -e "(1 2 (3 4))"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().StringVarP(&readExpr, "eval", "e", "", "read inline code instead of reading from a file")
}

func runRead(_ *cobra.Command, args []string) error {
	input, err := readInput(readExpr, args)
	if err != nil {
		return err
	}

	form, err := reader.Read(input)
	if err != nil {
		if err == reader.ErrNoForm {
			fmt.Println("<no form>")
			return nil
		}
		if rerr, ok := err.(*reader.Error); ok {
			return fmt.Errorf("%s", errors.NewSourceError(rerr, input, "").Format(false))
		}
		return fmt.Errorf("read failed: %w", err)
	}

	fmt.Println(value.Pr(form, true))
	return nil
}
