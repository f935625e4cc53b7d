// Package builtins implements the fixed primitive function table of
// spec §4.5, grouped into one file per concern the way the teacher
// toolchain groups its builtins_*.go files.
package builtins

import "github.com/lispkit/lisp/internal/value"

// ApplyFunc calls a Value known to be callable (Builtin or non-macro
// Closure) with already-evaluated arguments, running a Closure to
// completion. The evaluator supplies this; builtins never construct
// one, only invoke it — this is how `apply`, `map`, and `swap!` reach
// back into user-defined functions without the builtins package
// importing the evaluator.
type ApplyFunc func(fn value.Value, args []value.Value) (value.Value, error)

// EvalFunc evaluates ast against env. Used solely by the `eval`
// builtin, which the evaluator wires to always target its root
// environment, never the caller's env argument (spec §4.5, §9).
type EvalFunc func(ast value.Value, env value.Env) (value.Value, error)

func def(env value.Env, name string, fn func([]value.Value) (value.Value, error)) {
	env.Set(name, &value.Builtin{Name: name, Fn: fn, Meta: value.NilValue})
}

// Register installs every core builtin into root, plus the `eval`
// bridge back to root itself. apply lets the sequence/atom builtins
// invoke Closures; host supplies I/O, filesystem, and clock access.
func Register(root value.Env, apply ApplyFunc, eval EvalFunc, host Host) {
	registerArithmetic(root)
	registerIO(root, host)
	registerSequence(root, apply)
	registerHashMap(root)
	registerPredicates(root)
	registerConstructors(root)
	registerAtom(root, apply)
	registerControl(root)

	def(root, "eval", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("eval requires exactly 1 argument")
		}
		return eval(args[0], root)
	})
}
