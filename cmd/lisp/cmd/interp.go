package cmd

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/lispkit/lisp/internal/errors"
	"github.com/lispkit/lisp/internal/eval"
	"github.com/lispkit/lisp/internal/reader"
	"github.com/lispkit/lisp/internal/value"
)

// Interpreter is eval.Interpreter, aliased so the rest of this package
// reads naturally without importing internal/eval everywhere.
type Interpreter = eval.Interpreter

// newInterpreter wires a fresh Interpreter to the real host
// collaborators: a stdin line prompt for the `readline` builtin,
// os.ReadFile for `slurp`, and the system clock for `time-ms`.
func newInterpreter() (*Interpreter, error) {
	return eval.New(
		eval.ReadLinerFunc(promptReadLine),
		eval.SlurperFunc(slurpFile),
		eval.ClockFunc(func() int64 { return time.Now().UnixMilli() }),
	)
}

// stdin is shared across promptReadLine calls: a fresh bufio.Reader
// per call would silently discard whatever it read ahead of the
// requested line.
var stdin = bufio.NewReader(os.Stdin)

// promptReadLine backs the `readline` builtin. It is independent of
// the REPL's own line editor: a script can call `(readline "> ")` to
// prompt interactively regardless of how the interpreter itself was
// invoked.
func promptReadLine(prompt string) (string, bool) {
	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", false
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, true
}

func slurpFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// describeError renders an evaluation error for the CLI. A reader
// syntax error gets a line-and-caret diagnostic against source, with
// two lines of surrounding context under --verbose; anything that
// reached the evaluator is a thrown language value and prints
// unreadably, the same way the REPL prints a thrown exception (spec
// §6, SPEC_FULL.md: a host-level failure is itself converted to a
// String exception, so this always has a Value to print).
func describeError(err error, source, filename string) string {
	if rerr, ok := err.(*reader.Error); ok {
		srcErr := errors.NewSourceError(rerr, source, filename)
		if verbose {
			return srcErr.FormatWithContext(2, false)
		}
		return srcErr.Format(false)
	}
	return "Exception: " + value.Pr(value.AsThrown(err), false)
}

// isNoForm reports whether err is the reader's blank-input sentinel,
// which the REPL re-prompts on rather than treating as a failure.
func isNoForm(err error) bool {
	return err == reader.ErrNoForm
}
