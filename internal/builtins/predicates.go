package builtins

import "github.com/lispkit/lisp/internal/value"

func registerPredicates(env value.Env) {
	one := func(name string, pred func(value.Value) bool) func([]value.Value) (value.Value, error) {
		return func(args []value.Value) (value.Value, error) {
			if len(args) != 1 {
				return nil, value.Throwf("%s requires exactly 1 argument", name)
			}
			return value.BoolOf(pred(args[0])), nil
		}
	}

	def(env, "nil?", one("nil?", func(v value.Value) bool { _, ok := v.(value.Nil); return ok }))
	def(env, "true?", one("true?", func(v value.Value) bool { b, ok := v.(value.Bool); return ok && bool(b) }))
	def(env, "false?", one("false?", func(v value.Value) bool { b, ok := v.(value.Bool); return ok && !bool(b) }))
	def(env, "symbol?", one("symbol?", func(v value.Value) bool { _, ok := v.(value.Symbol); return ok }))
	def(env, "keyword?", one("keyword?", func(v value.Value) bool { _, ok := v.(value.Keyword); return ok }))
	def(env, "string?", one("string?", func(v value.Value) bool { _, ok := v.(value.String); return ok }))
	def(env, "number?", one("number?", func(v value.Value) bool { _, ok := v.(value.Int); return ok }))
	def(env, "fn?", one("fn?", func(v value.Value) bool { return value.IsCallable(v) }))
	def(env, "macro?", one("macro?", func(v value.Value) bool {
		c, ok := v.(*value.Closure)
		return ok && c.IsMacro
	}))
}
