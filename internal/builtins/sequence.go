package builtins

import "github.com/lispkit/lisp/internal/value"

func registerSequence(env value.Env, apply ApplyFunc) {
	def(env, "list", func(args []value.Value) (value.Value, error) {
		return value.NewList(args...), nil
	})
	def(env, "list?", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("list? requires exactly 1 argument")
		}
		_, ok := args[0].(*value.List)
		return value.BoolOf(ok), nil
	})
	def(env, "empty?", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("empty? requires exactly 1 argument")
		}
		items, ok := value.Sequence(args[0])
		if !ok {
			return nil, value.Throwf("empty? expects a list or vector")
		}
		return value.BoolOf(len(items) == 0), nil
	})
	def(env, "count", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("count requires exactly 1 argument")
		}
		if _, isNil := args[0].(value.Nil); isNil {
			return value.Int(0), nil
		}
		items, ok := value.Sequence(args[0])
		if !ok {
			return nil, value.Throwf("count expects a list, vector, or nil")
		}
		return value.Int(len(items)), nil
	})
	def(env, "cons", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, value.Throwf("cons requires exactly 2 arguments")
		}
		if _, isNil := args[1].(value.Nil); isNil {
			return value.NewList(args[0]), nil
		}
		items, ok := value.Sequence(args[1])
		if !ok {
			return nil, value.Throwf("cons expects a list or vector as its second argument")
		}
		result := make([]value.Value, 0, len(items)+1)
		result = append(result, args[0])
		result = append(result, items...)
		return value.NewList(result...), nil
	})
	def(env, "concat", func(args []value.Value) (value.Value, error) {
		var result []value.Value
		for _, a := range args {
			if _, isNil := a.(value.Nil); isNil {
				continue
			}
			items, ok := value.Sequence(a)
			if !ok {
				return nil, value.Throwf("concat expects lists or vectors")
			}
			result = append(result, items...)
		}
		return value.NewList(result...), nil
	})
	def(env, "vec", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("vec requires exactly 1 argument")
		}
		items, ok := value.Sequence(args[0])
		if !ok {
			return nil, value.Throwf("vec expects a list or vector")
		}
		return value.NewVector(items...), nil
	})
	def(env, "nth", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, value.Throwf("nth requires exactly 2 arguments")
		}
		items, ok := value.Sequence(args[0])
		if !ok {
			return nil, value.Throwf("nth expects a list or vector")
		}
		idx, ok := args[1].(value.Int)
		if !ok {
			return nil, value.Throwf("nth's index must be an integer")
		}
		if idx < 0 || int(idx) >= len(items) {
			return nil, value.Throwf("out of range")
		}
		return items[idx], nil
	})
	def(env, "first", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("first requires exactly 1 argument")
		}
		if _, isNil := args[0].(value.Nil); isNil {
			return value.NilValue, nil
		}
		items, ok := value.Sequence(args[0])
		if !ok {
			return nil, value.Throwf("first expects a list, vector, or nil")
		}
		if len(items) == 0 {
			return value.NilValue, nil
		}
		return items[0], nil
	})
	def(env, "rest", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("rest requires exactly 1 argument")
		}
		if _, isNil := args[0].(value.Nil); isNil {
			return value.NewList(), nil
		}
		items, ok := value.Sequence(args[0])
		if !ok {
			return nil, value.Throwf("rest expects a list, vector, or nil")
		}
		if len(items) == 0 {
			return value.NewList(), nil
		}
		return value.NewList(items[1:]...), nil
	})
	def(env, "sequential?", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("sequential? requires exactly 1 argument")
		}
		_, ok := value.Sequence(args[0])
		return value.BoolOf(ok), nil
	})
	def(env, "vector", func(args []value.Value) (value.Value, error) {
		return value.NewVector(args...), nil
	})
	def(env, "vector?", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("vector? requires exactly 1 argument")
		}
		_, ok := args[0].(*value.Vector)
		return value.BoolOf(ok), nil
	})
	def(env, "seq", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("seq requires exactly 1 argument")
		}
		switch v := args[0].(type) {
		case value.Nil:
			return value.NilValue, nil
		case *value.List:
			if len(v.Items) == 0 {
				return value.NilValue, nil
			}
			return value.NewList(v.Items...), nil
		case *value.Vector:
			if len(v.Items) == 0 {
				return value.NilValue, nil
			}
			return value.NewList(v.Items...), nil
		case value.String:
			if len(v) == 0 {
				return value.NilValue, nil
			}
			chars := make([]value.Value, 0, len(v))
			for _, r := range string(v) {
				chars = append(chars, value.String(string(r)))
			}
			return value.NewList(chars...), nil
		default:
			return nil, value.Throwf("seq expects a list, vector, string, or nil")
		}
	})
	def(env, "conj", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 {
			return nil, value.Throwf("conj requires at least 1 argument")
		}
		switch v := args[0].(type) {
		case *value.List:
			items := make([]value.Value, 0, len(args[1:])+len(v.Items))
			for i := len(args) - 1; i >= 1; i-- {
				items = append(items, args[i])
			}
			items = append(items, v.Items...)
			return value.NewList(items...), nil
		case *value.Vector:
			items := make([]value.Value, 0, len(v.Items)+len(args[1:]))
			items = append(items, v.Items...)
			items = append(items, args[1:]...)
			return value.NewVector(items...), nil
		default:
			return nil, value.Throwf("conj expects a list or vector")
		}
	})
	def(env, "apply", func(args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return nil, value.Throwf("apply requires at least 2 arguments")
		}
		fn := args[0]
		last := args[len(args)-1]
		tail, ok := value.Sequence(last)
		if !ok {
			return nil, value.Throwf("apply's last argument must be a list or vector")
		}
		callArgs := make([]value.Value, 0, len(args)-2+len(tail))
		callArgs = append(callArgs, args[1:len(args)-1]...)
		callArgs = append(callArgs, tail...)
		return apply(fn, callArgs)
	})
	def(env, "map", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, value.Throwf("map requires exactly 2 arguments")
		}
		fn := args[0]
		items, ok := value.Sequence(args[1])
		if !ok {
			return nil, value.Throwf("map's second argument must be a list or vector")
		}
		result := make([]value.Value, len(items))
		for i, item := range items {
			v, err := apply(fn, []value.Value{item})
			if err != nil {
				return nil, err
			}
			result[i] = v
		}
		return value.NewList(result...), nil
	})
}
