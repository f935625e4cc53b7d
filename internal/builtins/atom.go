package builtins

import "github.com/lispkit/lisp/internal/value"

func registerAtom(env value.Env, apply ApplyFunc) {
	def(env, "atom", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("atom requires exactly 1 argument")
		}
		return value.NewAtom(args[0]), nil
	})
	def(env, "atom?", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("atom? requires exactly 1 argument")
		}
		_, ok := args[0].(*value.Atom)
		return value.BoolOf(ok), nil
	})
	def(env, "deref", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("deref requires exactly 1 argument")
		}
		a, ok := args[0].(*value.Atom)
		if !ok {
			return nil, value.Throwf("deref expects an atom")
		}
		return a.Val, nil
	})
	def(env, "reset!", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, value.Throwf("reset! requires exactly 2 arguments")
		}
		a, ok := args[0].(*value.Atom)
		if !ok {
			return nil, value.Throwf("reset! expects an atom")
		}
		a.Val = args[1]
		return a.Val, nil
	})
	def(env, "swap!", func(args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return nil, value.Throwf("swap! requires at least 2 arguments")
		}
		a, ok := args[0].(*value.Atom)
		if !ok {
			return nil, value.Throwf("swap! expects an atom")
		}
		fn := args[1]
		// The old value is captured before recomputing, and the atom
		// is not written until the call returns, so a reentrant
		// swap! on the same atom from within fn still observes a
		// single, consistent old value (spec §5) — the cooperative,
		// single-threaded execution model makes this automatic.
		callArgs := make([]value.Value, 0, len(args)-1)
		callArgs = append(callArgs, a.Val)
		callArgs = append(callArgs, args[2:]...)
		newVal, err := apply(fn, callArgs)
		if err != nil {
			return nil, err
		}
		a.Val = newVal
		return a.Val, nil
	})
}
