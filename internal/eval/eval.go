// Package eval implements the tail-call-optimizing evaluator: special
// forms, macro expansion, quasiquote, and function application.
package eval

import (
	"github.com/lispkit/lisp/internal/env"
	"github.com/lispkit/lisp/internal/value"
)

// Eval runs the core read-eval loop (spec §4.4). It never recurses for
// a tail position — let*'s body, do's last form, if's chosen branch,
// macro expansion, and closure application all rebind ast/env and
// loop instead, giving a self-recursive user function constant host
// stack depth.
func Eval(ast value.Value, scope value.Env) (value.Value, error) {
	for {
		expanded, err := macroExpand(ast, scope)
		if err != nil {
			return nil, err
		}
		ast = expanded

		lst, ok := ast.(*value.List)
		if !ok {
			return evalAtom(ast, scope)
		}
		if len(lst.Items) == 0 {
			return ast, nil
		}

		if sym, ok := lst.Items[0].(value.Symbol); ok {
			if handler, ok := specialForms[string(sym)]; ok {
				result, nextAST, nextEnv, tail, err := handler(lst.Items[1:], scope)
				if err != nil {
					return nil, err
				}
				if !tail {
					return result, nil
				}
				ast, scope = nextAST, nextEnv
				continue
			}
		}

		evaluated := make([]value.Value, len(lst.Items))
		for i, item := range lst.Items {
			v, err := Eval(item, scope)
			if err != nil {
				return nil, err
			}
			evaluated[i] = v
		}

		fn := evaluated[0]
		args := evaluated[1:]

		switch f := fn.(type) {
		case *value.Builtin:
			return f.Fn(args)
		case *value.Closure:
			if f.IsMacro {
				return nil, value.Throwf("cannot apply macro %q as a function", f.String())
			}
			child, err := env.BindParams(f.Env, f.Params, args)
			if err != nil {
				return nil, value.Throw(value.String(err.Error()))
			}
			ast, scope = f.Body, child
			continue
		default:
			return nil, value.Throwf("cannot call non-function %s", value.Pr(fn, true))
		}
	}
}

// evalAtom evaluates a non-list ast node: a Symbol resolves in scope;
// a Vector or HashMap evaluates its elements/values and rebuilds the
// same kind of container; anything else is self-evaluating.
func evalAtom(ast value.Value, scope value.Env) (value.Value, error) {
	switch v := ast.(type) {
	case value.Symbol:
		got, ok := scope.Get(string(v))
		if !ok {
			return nil, value.Throwf("'%s' not found", string(v))
		}
		return got, nil
	case *value.Vector:
		items := make([]value.Value, len(v.Items))
		for i, item := range v.Items {
			val, err := Eval(item, scope)
			if err != nil {
				return nil, err
			}
			items[i] = val
		}
		return value.NewVector(items...), nil
	case *value.HashMap:
		result := value.NewHashMap()
		for _, k := range v.Keys() {
			kv, _ := v.Get(k)
			val, err := Eval(kv, scope)
			if err != nil {
				return nil, err
			}
			var assocErr error
			result, assocErr = result.Assoc(k, val)
			if assocErr != nil {
				return nil, assocErr
			}
		}
		return result, nil
	default:
		return ast, nil
	}
}

// applyClosure fully evaluates a closure application — used where a
// final Value is required immediately rather than a tail-position
// ast/env pair: macro expansion and the `apply`/`map`/`swap!` builtins
// reaching back into the evaluator. name labels the pushed stack frame
// (the macro or bound symbol name when the caller knows it, else a
// generic placeholder).
func applyClosure(name string, c *value.Closure, args []value.Value) (value.Value, error) {
	child, err := env.BindParams(c.Env, c.Params, args)
	if err != nil {
		return nil, value.Throw(value.String(err.Error()))
	}
	pushFrame(name)
	defer popFrame()
	result, err := Eval(c.Body, child)
	if err != nil {
		recordFailure()
	}
	return result, err
}

// Apply invokes any callable Value (Builtin or non-macro Closure)
// with already-evaluated args, running a Closure to completion. It is
// handed to the builtins package as the bridge builtins need to call
// back into user functions (spec §4.5: apply, map, swap!).
func Apply(fn value.Value, args []value.Value) (value.Value, error) {
	switch f := fn.(type) {
	case *value.Builtin:
		return f.Fn(args)
	case *value.Closure:
		if f.IsMacro {
			return nil, value.Throwf("cannot apply macro %q as a function", f.String())
		}
		return applyClosure("#<function>", f, args)
	default:
		return nil, value.Throwf("cannot call non-function %s", value.Pr(fn, true))
	}
}
