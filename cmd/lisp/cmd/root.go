// Package cmd implements the lisp command-line tool: a REPL and a
// file-mode runner over internal/eval, plus debug subcommands that
// expose the reader's two phases directly (spec §4.1, §6).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lispkit/lisp/internal/value"
)

var (
	// Version, GitCommit, and BuildDate are overridden at build time
	// via -ldflags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lisp [file]",
	Short: "A mal-family Lisp interpreter",
	Long: `lisp is a Lisp interpreter in the mal family: a reader, a tagged-union
value model, lexical environments, a tail-call-optimizing evaluator,
macros, quasiquotation, and first-class exceptions.

With no arguments, lisp starts an interactive REPL. Given a file, it
evaluates the file's forms in order and exits.

Examples:
  # Start the REPL
  lisp

  # Run a script file
  lisp script.lisp

  # Evaluate an inline expression
  lisp -e "(+ 1 2)"`,
	Args:    cobra.ArbitraryArgs,
	Version: Version,
	RunE:    runRoot,
}

var (
	evalExpr   string
	traceOnErr bool
)

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("lisp %s (%s, built %s)\n", Version, GitCommit, BuildDate))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of starting the REPL or reading a file")
	rootCmd.Flags().BoolVar(&traceOnErr, "trace", false, "print the closure call stack when a file or -e evaluation throws")
}

// Execute runs the root command. On failure it prints the error and
// exits nonzero rather than returning, since cobra has already
// printed usage for flag/arg errors by the time RunE returns one.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		exitWithError("%v", err)
	}
	return nil
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

func runRoot(cmd *cobra.Command, args []string) error {
	interp, err := newInterpreter()
	if err != nil {
		return fmt.Errorf("failed to initialize interpreter: %w", err)
	}

	switch {
	case evalExpr != "":
		interp.BindArgv(args)
		return evalAndPrint(interp, evalExpr, "<eval>")
	case len(args) >= 1:
		return runFile(interp, args[0], args[1:])
	default:
		return runRepl(interp)
	}
}

// runFile evaluates `(load-file "<filename>")` (spec §6), the same
// prelude-defined wrapper a script would use to load another file:
// load-file slurps the whole file and wraps it in `(do ...)` so every
// top-level form runs, not just the first.
func runFile(interp *Interpreter, filename string, rest []string) error {
	if verbose {
		fmt.Fprintf(os.Stderr, "Running: %s\n", filename)
	}
	interp.BindArgv(rest)
	src := fmt.Sprintf("(load-file %s)", value.Pr(value.String(filename), true))
	if _, err := interp.EvalString(src); err != nil {
		fmt.Fprintln(os.Stderr, describeError(err, src, filename))
		printTrace(interp)
		return fmt.Errorf("evaluation failed")
	}
	return nil
}

func evalAndPrint(interp *Interpreter, src, filename string) error {
	out, err := interp.Rep(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, describeError(err, src, filename))
		printTrace(interp)
		return fmt.Errorf("evaluation of %s failed", filename)
	}
	fmt.Println(out)
	return nil
}

func printTrace(interp *Interpreter) {
	if !traceOnErr {
		return
	}
	if trace := interp.CallStack(); len(trace) > 0 {
		fmt.Fprintln(os.Stderr, "Call stack:")
		fmt.Fprintln(os.Stderr, trace.String())
	}
}
