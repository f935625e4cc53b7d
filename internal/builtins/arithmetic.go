package builtins

import "github.com/lispkit/lisp/internal/value"

func registerArithmetic(env value.Env) {
	def(env, "+", binaryInt(func(a, b int64) int64 { return a + b }))
	def(env, "-", binaryInt(func(a, b int64) int64 { return a - b }))
	def(env, "*", binaryInt(func(a, b int64) int64 { return a * b }))
	def(env, "/", func(args []value.Value) (value.Value, error) {
		a, b, err := twoInts("/", args)
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, value.Throwf("division by zero")
		}
		return value.Int(a / b), nil
	})

	def(env, "<", compareInt(func(a, b int64) bool { return a < b }))
	def(env, "<=", compareInt(func(a, b int64) bool { return a <= b }))
	def(env, ">", compareInt(func(a, b int64) bool { return a > b }))
	def(env, ">=", compareInt(func(a, b int64) bool { return a >= b }))

	def(env, "=", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, value.Throwf("= requires exactly 2 arguments")
		}
		return value.BoolOf(value.Equal(args[0], args[1])), nil
	})
}

func twoInts(name string, args []value.Value) (int64, int64, error) {
	if len(args) != 2 {
		return 0, 0, value.Throwf("%s requires exactly 2 arguments", name)
	}
	a, ok := args[0].(value.Int)
	if !ok {
		return 0, 0, value.Throwf("%s expects an integer, got %s", name, value.Pr(args[0], true))
	}
	b, ok := args[1].(value.Int)
	if !ok {
		return 0, 0, value.Throwf("%s expects an integer, got %s", name, value.Pr(args[1], true))
	}
	return int64(a), int64(b), nil
}

func binaryInt(op func(a, b int64) int64) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		a, b, err := twoInts("arithmetic", args)
		if err != nil {
			return nil, err
		}
		return value.Int(op(a, b)), nil
	}
}

func compareInt(op func(a, b int64) bool) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		a, b, err := twoInts("comparison", args)
		if err != nil {
			return nil, err
		}
		return value.BoolOf(op(a, b)), nil
	}
}
