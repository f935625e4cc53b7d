package eval

import "github.com/lispkit/lisp/internal/errors"

// callStack tracks non-tail closure/macro applications: those reached
// through applyClosure (macro expansion, and the apply/map/swap!
// builtins calling back into a user closure). A tail-recursive
// self-call never pushes a frame here — that is the whole point of
// the tail-call loop in Eval, and a stack trace that grew with it
// would defeat the constant-stack-depth guarantee it provides.
//
// lastFailure snapshots callStack the moment a frame's evaluation
// first returns an error. By the time that error has unwound back to
// the top level, every applyClosure defer has already popped its own
// frame, so callStack itself is empty again — lastFailure is what a
// caller actually wants to read after the fact.
var (
	callStack   errors.StackTrace
	lastFailure errors.StackTrace
)

func pushFrame(name string) {
	callStack = append(callStack, errors.NewStackFrame(name))
}

func popFrame() {
	if len(callStack) > 0 {
		callStack = callStack[:len(callStack)-1]
	}
}

// recordFailure snapshots callStack the first time it runs during an
// unwind — the deepest frame active when the error originated. Later
// calls during the same unwind see lastFailure already set and leave
// it alone.
func recordFailure() {
	if lastFailure == nil && len(callStack) > 0 {
		lastFailure = append(errors.StackTrace(nil), callStack...)
	}
}

// resetTrace clears the failure snapshot at the start of a fresh
// top-level evaluation (Rep, EvalString), so a later success doesn't
// leave a stale trace behind for CallStack to report.
func resetTrace() {
	lastFailure = nil
}

// CallStack returns the call stack captured at the deepest point of
// the most recent evaluation failure, oldest frame first.
func CallStack() errors.StackTrace {
	return append(errors.StackTrace(nil), lastFailure...)
}
