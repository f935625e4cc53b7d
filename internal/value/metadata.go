package value

import "fmt"

// Meta returns v's metadata, or Nil if v cannot carry any (spec §3, §4.5).
func Meta(v Value) Value {
	switch v := v.(type) {
	case *List:
		return orNil(v.Meta)
	case *Vector:
		return orNil(v.Meta)
	case *HashMap:
		return orNil(v.Meta)
	case *Builtin:
		return orNil(v.Meta)
	case *Closure:
		return orNil(v.Meta)
	default:
		return NilValue
	}
}

func orNil(m Value) Value {
	if m == nil {
		return NilValue
	}
	return m
}

// WithMeta returns a shallow copy of v carrying m as its metadata.
// Only List, Vector, HashMap, and Function values can carry metadata;
// anything else is a language-level error (spec §9).
func WithMeta(v Value, m Value) (Value, error) {
	switch v := v.(type) {
	case *List:
		cp := *v
		cp.Meta = m
		return &cp, nil
	case *Vector:
		cp := *v
		cp.Meta = m
		return &cp, nil
	case *HashMap:
		cp := v.clone()
		cp.Meta = m
		return cp, nil
	case *Builtin:
		cp := *v
		cp.Meta = m
		return &cp, nil
	case *Closure:
		cp := *v
		cp.Meta = m
		return &cp, nil
	default:
		return nil, fmt.Errorf("with-meta not supported on %s", v.Kind())
	}
}
