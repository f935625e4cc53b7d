package builtins

import "github.com/lispkit/lisp/internal/value"

func registerConstructors(env value.Env) {
	def(env, "symbol", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("symbol requires exactly 1 argument")
		}
		s, ok := args[0].(value.String)
		if !ok {
			return nil, value.Throwf("symbol expects a string")
		}
		return value.Symbol(string(s)), nil
	})
	def(env, "keyword", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("keyword requires exactly 1 argument")
		}
		switch v := args[0].(type) {
		case value.String:
			return value.Keyword(string(v)), nil
		case value.Keyword:
			return v, nil
		default:
			return nil, value.Throwf("keyword expects a string or keyword")
		}
	})
}
