package builtins

import "github.com/lispkit/lisp/internal/value"

func registerHashMap(env value.Env) {
	def(env, "hash-map", func(args []value.Value) (value.Value, error) {
		if len(args)%2 != 0 {
			return nil, value.Throwf("hash-map requires an even number of arguments")
		}
		m := value.NewHashMap()
		for i := 0; i < len(args); i += 2 {
			var err error
			m, err = m.Assoc(args[i], args[i+1])
			if err != nil {
				return nil, value.Throw(value.String(err.Error()))
			}
		}
		return m, nil
	})
	def(env, "map?", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("map? requires exactly 1 argument")
		}
		_, ok := args[0].(*value.HashMap)
		return value.BoolOf(ok), nil
	})
	def(env, "assoc", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 || len(args)%2 != 1 {
			return nil, value.Throwf("assoc requires a hash-map and an even number of key/value arguments")
		}
		m, ok := args[0].(*value.HashMap)
		if !ok {
			return nil, value.Throwf("assoc expects a hash-map")
		}
		for i := 1; i < len(args); i += 2 {
			var err error
			m, err = m.Assoc(args[i], args[i+1])
			if err != nil {
				return nil, value.Throw(value.String(err.Error()))
			}
		}
		return m, nil
	})
	def(env, "dissoc", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 {
			return nil, value.Throwf("dissoc requires at least 1 argument")
		}
		m, ok := args[0].(*value.HashMap)
		if !ok {
			return nil, value.Throwf("dissoc expects a hash-map")
		}
		out, err := m.Dissoc(args[1:]...)
		if err != nil {
			return nil, value.Throw(value.String(err.Error()))
		}
		return out, nil
	})
	def(env, "get", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, value.Throwf("get requires exactly 2 arguments")
		}
		if _, isNil := args[0].(value.Nil); isNil {
			return value.NilValue, nil
		}
		m, ok := args[0].(*value.HashMap)
		if !ok {
			return nil, value.Throwf("get expects a hash-map or nil")
		}
		v, found := m.Get(args[1])
		if !found {
			return value.NilValue, nil
		}
		return v, nil
	})
	def(env, "contains?", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, value.Throwf("contains? requires exactly 2 arguments")
		}
		m, ok := args[0].(*value.HashMap)
		if !ok {
			return nil, value.Throwf("contains? expects a hash-map")
		}
		return value.BoolOf(m.Contains(args[1])), nil
	})
	def(env, "keys", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("keys requires exactly 1 argument")
		}
		m, ok := args[0].(*value.HashMap)
		if !ok {
			return nil, value.Throwf("keys expects a hash-map")
		}
		return value.NewList(m.Keys()...), nil
	})
	def(env, "vals", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("vals requires exactly 1 argument")
		}
		m, ok := args[0].(*value.HashMap)
		if !ok {
			return nil, value.Throwf("vals expects a hash-map")
		}
		return value.NewList(m.Vals()...), nil
	})
}
