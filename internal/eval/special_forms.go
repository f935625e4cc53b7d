package eval

import "github.com/lispkit/lisp/internal/value"

// formHandler evaluates one special form's arguments (already
// unevaluated). Returning tail=true means the loop in Eval should
// continue with nextAST/nextEnv instead of returning result.
type formHandler func(args []value.Value, scope value.Env) (result value.Value, nextAST value.Value, nextEnv value.Env, tail bool, err error)

var specialForms map[string]formHandler

func init() {
	specialForms = map[string]formHandler{
		"def!":             formDef,
		"let*":             formLet,
		"do":               formDo,
		"if":               formIf,
		"fn*":              formFn,
		"quote":            formQuote,
		"quasiquote":       formQuasiquote,
		"quasiquoteexpand": formQuasiquoteExpand,
		"defmacro!":        formDefMacro,
		"macroexpand":      formMacroExpand,
		"try*":             formTry,
	}
}

func formDef(args []value.Value, scope value.Env) (value.Value, value.Value, value.Env, bool, error) {
	if len(args) != 2 {
		return nil, nil, nil, false, value.Throwf("def! requires exactly 2 arguments")
	}
	sym, ok := args[0].(value.Symbol)
	if !ok {
		return nil, nil, nil, false, value.Throwf("def!'s first argument must be a symbol")
	}
	v, err := Eval(args[1], scope)
	if err != nil {
		return nil, nil, nil, false, err
	}
	scope.Set(string(sym), v)
	return v, nil, nil, false, nil
}

func formLet(args []value.Value, scope value.Env) (value.Value, value.Value, value.Env, bool, error) {
	if len(args) != 2 {
		return nil, nil, nil, false, value.Throwf("let* requires exactly 2 arguments")
	}
	bindings, ok := value.Sequence(args[0])
	if !ok {
		return nil, nil, nil, false, value.Throwf("let*'s first argument must be a list or vector")
	}
	if len(bindings)%2 != 0 {
		return nil, nil, nil, false, value.Throwf("let* requires an even number of binding forms")
	}
	child := scope.NewChild()
	for i := 0; i < len(bindings); i += 2 {
		sym, ok := bindings[i].(value.Symbol)
		if !ok {
			return nil, nil, nil, false, value.Throwf("let* binding names must be symbols")
		}
		v, err := Eval(bindings[i+1], child)
		if err != nil {
			return nil, nil, nil, false, err
		}
		child.Set(string(sym), v)
	}
	return nil, args[1], child, true, nil
}

func formDo(args []value.Value, scope value.Env) (value.Value, value.Value, value.Env, bool, error) {
	if len(args) == 0 {
		return value.NilValue, nil, nil, false, nil
	}
	for _, e := range args[:len(args)-1] {
		if _, err := Eval(e, scope); err != nil {
			return nil, nil, nil, false, err
		}
	}
	return nil, args[len(args)-1], scope, true, nil
}

func formIf(args []value.Value, scope value.Env) (value.Value, value.Value, value.Env, bool, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, nil, nil, false, value.Throwf("if requires 2 or 3 arguments")
	}
	cond, err := Eval(args[0], scope)
	if err != nil {
		return nil, nil, nil, false, err
	}
	if value.Truthy(cond) {
		return nil, args[1], scope, true, nil
	}
	if len(args) == 3 {
		return nil, args[2], scope, true, nil
	}
	return value.NilValue, nil, nil, false, nil
}

func formFn(args []value.Value, scope value.Env) (value.Value, value.Value, value.Env, bool, error) {
	if len(args) != 2 {
		return nil, nil, nil, false, value.Throwf("fn* requires exactly 2 arguments")
	}
	rawParams, ok := value.Sequence(args[0])
	if !ok {
		return nil, nil, nil, false, value.Throwf("fn*'s parameter list must be a list or vector")
	}
	params := make([]value.Symbol, len(rawParams))
	for i, p := range rawParams {
		sym, ok := p.(value.Symbol)
		if !ok {
			return nil, nil, nil, false, value.Throwf("fn* parameters must be symbols")
		}
		params[i] = sym
	}
	closure := &value.Closure{
		Params: params,
		Body:   args[1],
		Env:    scope,
		Meta:   value.NilValue,
	}
	for i, p := range params {
		if p == "&" && i+1 < len(params) {
			closure.HasRest = true
			closure.Variadic = params[i+1]
			break
		}
	}
	return closure, nil, nil, false, nil
}

func formQuote(args []value.Value, scope value.Env) (value.Value, value.Value, value.Env, bool, error) {
	if len(args) != 1 {
		return nil, nil, nil, false, value.Throwf("quote requires exactly 1 argument")
	}
	return args[0], nil, nil, false, nil
}

func formQuasiquote(args []value.Value, scope value.Env) (value.Value, value.Value, value.Env, bool, error) {
	if len(args) != 1 {
		return nil, nil, nil, false, value.Throwf("quasiquote requires exactly 1 argument")
	}
	return nil, quasiquoteExpand(args[0]), scope, true, nil
}

func formQuasiquoteExpand(args []value.Value, scope value.Env) (value.Value, value.Value, value.Env, bool, error) {
	if len(args) != 1 {
		return nil, nil, nil, false, value.Throwf("quasiquoteexpand requires exactly 1 argument")
	}
	return quasiquoteExpand(args[0]), nil, nil, false, nil
}

func formDefMacro(args []value.Value, scope value.Env) (value.Value, value.Value, value.Env, bool, error) {
	if len(args) != 2 {
		return nil, nil, nil, false, value.Throwf("defmacro! requires exactly 2 arguments")
	}
	sym, ok := args[0].(value.Symbol)
	if !ok {
		return nil, nil, nil, false, value.Throwf("defmacro!'s first argument must be a symbol")
	}
	v, err := Eval(args[1], scope)
	if err != nil {
		return nil, nil, nil, false, err
	}
	closure, ok := v.(*value.Closure)
	if !ok {
		return nil, nil, nil, false, value.Throwf("defmacro!'s second argument must evaluate to a function")
	}
	macro := closure.AsMacro()
	scope.Set(string(sym), macro)
	return macro, nil, nil, false, nil
}

func formMacroExpand(args []value.Value, scope value.Env) (value.Value, value.Value, value.Env, bool, error) {
	if len(args) != 1 {
		return nil, nil, nil, false, value.Throwf("macroexpand requires exactly 1 argument")
	}
	v, err := macroExpand(args[0], scope)
	if err != nil {
		return nil, nil, nil, false, err
	}
	return v, nil, nil, false, nil
}

func formTry(args []value.Value, scope value.Env) (value.Value, value.Value, value.Env, bool, error) {
	if len(args) == 0 {
		return nil, nil, nil, false, value.Throwf("try* requires at least 1 argument")
	}
	result, err := Eval(args[0], scope)
	if err == nil {
		return result, nil, nil, false, nil
	}
	if len(args) < 2 {
		return nil, nil, nil, false, err
	}
	handler, ok := args[1].(*value.List)
	if !ok || len(handler.Items) != 3 {
		return nil, nil, nil, false, value.Throwf("try*'s second argument must be (catch* sym handler)")
	}
	if tag, ok := handler.Items[0].(value.Symbol); !ok || string(tag) != "catch*" {
		return nil, nil, nil, false, value.Throwf("try*'s second argument must be (catch* sym handler)")
	}
	sym, ok := handler.Items[1].(value.Symbol)
	if !ok {
		return nil, nil, nil, false, value.Throwf("catch*'s binding must be a symbol")
	}
	// The error is handled here, so drop any call-stack snapshot it left.
	resetTrace()
	child := scope.NewChild()
	child.Set(string(sym), value.AsThrown(err))
	return nil, handler.Items[2], child, true, nil
}
