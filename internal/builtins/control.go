package builtins

import "github.com/lispkit/lisp/internal/value"

func registerControl(env value.Env) {
	def(env, "throw", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("throw requires exactly 1 argument")
		}
		return nil, value.Throw(args[0])
	})
	def(env, "meta", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("meta requires exactly 1 argument")
		}
		return value.Meta(args[0]), nil
	})
	def(env, "with-meta", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, value.Throwf("with-meta requires exactly 2 arguments")
		}
		v, err := value.WithMeta(args[0], args[1])
		if err != nil {
			return nil, value.Throw(value.String(err.Error()))
		}
		return v, nil
	})
}
