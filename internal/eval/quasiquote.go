package eval

import "github.com/lispkit/lisp/internal/value"

// quasiquoteExpand implements qq(x) from spec §4.4.2: unquote
// substitutes directly, splice-unquote splices its argument list into
// the surrounding sequence, and everything else is quoted so that a
// later eval pass reproduces it literally.
func quasiquoteExpand(x value.Value) value.Value {
	if lst, ok := x.(*value.List); ok && isTaggedCall(lst, "unquote") {
		return lst.Items[1]
	}

	if items, ok := value.Sequence(x); ok {
		acc := value.Value(value.NewList())
		for i := len(items) - 1; i >= 0; i-- {
			e := items[i]
			if elem, ok := e.(*value.List); ok && isTaggedCall(elem, "splice-unquote") {
				acc = value.NewList(value.Symbol("concat"), elem.Items[1], acc)
			} else {
				acc = value.NewList(value.Symbol("cons"), quasiquoteExpand(e), acc)
			}
		}
		if _, isVector := x.(*value.Vector); isVector {
			acc = value.NewList(value.Symbol("vec"), acc)
		}
		return acc
	}

	switch x.(type) {
	case *value.HashMap, value.Symbol:
		return value.NewList(value.Symbol("quote"), x)
	default:
		return x
	}
}

// isTaggedCall reports whether lst is a non-empty list whose head is
// the symbol sym, e.g. (unquote a) or (splice-unquote a).
func isTaggedCall(lst *value.List, sym string) bool {
	if len(lst.Items) == 0 {
		return false
	}
	s, ok := lst.Items[0].(value.Symbol)
	return ok && string(s) == sym
}
