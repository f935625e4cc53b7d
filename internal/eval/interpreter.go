package eval

import (
	"github.com/lispkit/lisp/internal/builtins"
	"github.com/lispkit/lisp/internal/env"
	"github.com/lispkit/lisp/internal/errors"
	"github.com/lispkit/lisp/internal/reader"
	"github.com/lispkit/lisp/internal/value"
)

// prelude is evaluated, in order, against the root environment at
// startup (spec §6). It bootstraps three names the core builtin table
// does not provide directly: `not`, `load-file`, and the `cond` macro.
var prelude = []string{
	`(def! not (fn* (a) (if a false true)))`,
	`(def! load-file (fn* (f) (eval (read-string (str "(do " (slurp f) "\nnil)")))))`,
	`(defmacro! cond (fn* (& xs) (if (> (count xs) 0) (list 'if (first xs) (if (> (count xs) 1) (nth xs 1) (throw "odd number of forms to cond")) (cons 'cond (rest (rest xs)))))))`,
}

// Interpreter owns the root environment and the host collaborators
// the core consumes through narrow interfaces (spec §1, §6). The
// `eval` builtin closes over root directly rather than walking an
// Outer() chain at call time, implementing the root-environment rule
// without a true back-reference from env to eval (spec §9).
type Interpreter struct {
	root *env.Environment
}

// New builds an Interpreter with its builtins and prelude already
// loaded, wired to the given host collaborators.
func New(lines ReadLiner, files Slurper, clock Clock) (*Interpreter, error) {
	root := env.New()
	interp := &Interpreter{root: root}

	host := builtins.Host{
		ReadLine:  lines.ReadLine,
		Slurp:     files.Slurp,
		NowMillis: clock.NowMillis,
	}
	evalFn := func(ast value.Value, _ value.Env) (value.Value, error) {
		return Eval(ast, root)
	}
	builtins.Register(root, builtins.ApplyFunc(Apply), builtins.EvalFunc(evalFn), host)

	for _, src := range prelude {
		if err := interp.evalSource(src); err != nil {
			return nil, err
		}
	}
	return interp, nil
}

func (interp *Interpreter) evalSource(src string) error {
	resetTrace()
	ast, err := reader.Read(src)
	if err != nil {
		if err == reader.ErrNoForm {
			return nil
		}
		return err
	}
	_, err = Eval(ast, interp.root)
	return err
}

// BindArgv binds *ARGV* to a List of String args, for non-interactive
// file-mode invocation (spec §6: "binds *ARGV* to a List of remaining
// args as Strings").
func (interp *Interpreter) BindArgv(args []string) {
	items := make([]value.Value, len(args))
	for i, a := range args {
		items[i] = value.String(a)
	}
	interp.root.Set("*ARGV*", value.NewList(items...))
}

// Rep reads one form from src, evaluates it against the root
// environment, and renders the result readably — the REPL's
// read-eval-print step (spec §6). Returns reader.ErrNoForm unchanged
// so the caller can silently re-prompt.
func (interp *Interpreter) Rep(src string) (string, error) {
	resetTrace()
	ast, err := reader.Read(src)
	if err != nil {
		return "", err
	}
	result, err := Eval(ast, interp.root)
	if err != nil {
		return "", err
	}
	return value.Pr(result, true), nil
}

// EvalString parses and evaluates a single top-level form in src
// against the root environment. File-mode invocation calls this with
// `(load-file "<filename>")` (spec §6): load-file itself slurps the
// whole file and wraps it in `(do ...)`, so every top-level form in
// the file runs even though EvalString only ever reads the one form
// it was given.
func (interp *Interpreter) EvalString(src string) (value.Value, error) {
	resetTrace()
	ast, err := reader.Read(src)
	if err != nil {
		if err == reader.ErrNoForm {
			return value.NilValue, nil
		}
		return nil, err
	}
	return Eval(ast, interp.root)
}

// Root exposes the root environment for callers that need to bind
// names before evaluation (cmd/lisp binds *ARGV* through BindArgv).
func (interp *Interpreter) Root() value.Env { return interp.root }

// CallStack reports the non-tail closure/macro-application stack
// captured at the deepest point of the most recent EvalString or Rep
// failure, for a CLI's --trace diagnostic. Empty after a call that
// succeeded, or that never went through applyClosure at all.
func (interp *Interpreter) CallStack() errors.StackTrace {
	return CallStack()
}
