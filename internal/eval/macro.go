package eval

import "github.com/lispkit/lisp/internal/value"

// macroCallClosure returns the macro Closure that ast calls and the
// symbol it was called through, if ast is a non-empty List whose head
// is a Symbol resolving in env to a macro-flagged Closure (spec
// §4.4.3).
func macroCallClosure(ast value.Value, env value.Env) (value.Symbol, *value.Closure, bool) {
	lst, ok := ast.(*value.List)
	if !ok || len(lst.Items) == 0 {
		return "", nil, false
	}
	sym, ok := lst.Items[0].(value.Symbol)
	if !ok {
		return "", nil, false
	}
	v, ok := env.Get(string(sym))
	if !ok {
		return "", nil, false
	}
	closure, ok := v.(*value.Closure)
	if !ok || !closure.IsMacro {
		return "", nil, false
	}
	return sym, closure, true
}

// macroExpand repeatedly applies macro calls at the head of ast until
// the head is no longer a macro (spec §4.4.3).
func macroExpand(ast value.Value, env value.Env) (value.Value, error) {
	for {
		sym, closure, ok := macroCallClosure(ast, env)
		if !ok {
			return ast, nil
		}
		args := ast.(*value.List).Items[1:]
		var err error
		ast, err = applyClosure(string(sym), closure, args)
		if err != nil {
			return nil, err
		}
	}
}
