package value

// Equal implements the structural equality of spec §3: sequences
// compare element-wise regardless of whether each side is a List or
// a Vector, hash-maps compare by key/value pairs, atoms compare by
// identity, everything else by kind and payload.
func Equal(a, b Value) bool {
	if aSeq, ok := Sequence(a); ok {
		bSeq, ok := Sequence(b)
		if !ok {
			return false
		}
		return equalSequences(aSeq, bSeq)
	}

	switch a := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bb, ok := b.(Bool)
		return ok && a == bb
	case Int:
		bi, ok := b.(Int)
		return ok && a == bi
	case Symbol:
		bs, ok := b.(Symbol)
		return ok && a == bs
	case String:
		bs, ok := b.(String)
		return ok && a == bs
	case Keyword:
		bk, ok := b.(Keyword)
		return ok && a == bk
	case *HashMap:
		bh, ok := b.(*HashMap)
		if !ok || a.Len() != bh.Len() {
			return false
		}
		for _, k := range a.Keys() {
			av, _ := a.Get(k)
			bv, ok := bh.Get(k)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case *Atom:
		ba, ok := b.(*Atom)
		return ok && a == ba
	case *Builtin, *Closure:
		return a == b
	default:
		return false
	}
}

func equalSequences(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
