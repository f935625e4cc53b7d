package value

import "fmt"

// Thrown wraps a language-level exception Value in Go's error channel
// (spec §7, §9: "do not piggyback on host-language panics ... model it
// as a result type propagated by the evaluator"). try*/catch* unwraps
// it; anything that escapes to the top level prints via its Value.
// It lives alongside the Value sum rather than in the evaluator so
// that builtins can raise one without importing the evaluator.
type Thrown struct {
	Val Value
}

func (t *Thrown) Error() string { return Pr(t.Val, false) }

// Throw raises v as a first-class exception.
func Throw(v Value) error { return &Thrown{Val: v} }

// Throwf raises a formatted String as a first-class exception, the
// shape the runtime itself uses for synthesized errors ("'x' not
// found", "out of range", ...).
func Throwf(format string, args ...any) error {
	return Throw(String(fmt.Sprintf(format, args...)))
}

// AsThrown unwraps err into its carried Value. A plain Go error (e.g.
// from a builtin's host-level failure) is converted into a String
// exception per spec §7.2.
func AsThrown(err error) Value {
	if t, ok := err.(*Thrown); ok {
		return t.Val
	}
	return String(err.Error())
}
