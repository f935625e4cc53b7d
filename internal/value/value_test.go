package value

import "testing"

func TestEqualAcrossListAndVector(t *testing.T) {
	l := NewList(Int(1), Int(2), Int(3))
	v := NewVector(Int(1), Int(2), Int(3))

	if !Equal(l, v) {
		t.Fatalf("expected (1 2 3) to equal [1 2 3]")
	}
	if !Equal(v, l) {
		t.Fatalf("expected equality to be symmetric")
	}
}

func TestEqualKeywordVsString(t *testing.T) {
	if Equal(Keyword("a"), String("a")) {
		t.Fatalf(":a must not equal \"a\"")
	}
	if !Equal(Keyword("a"), Keyword("a")) {
		t.Fatalf(":a must equal :a")
	}
}

func TestEqualHashMap(t *testing.T) {
	a := NewHashMap()
	a, err := a.Assoc(String("x"), Int(1))
	if err != nil {
		t.Fatal(err)
	}
	b := NewHashMap()
	b, err = b.Assoc(String("x"), Int(1))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(a, b) {
		t.Fatalf("expected equal hash-maps to compare equal")
	}
}

func TestHashMapKeywordDistinctFromString(t *testing.T) {
	m := NewHashMap()
	m, err := m.Assoc(String("x"), Int(1))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Get(Keyword("x")); ok {
		t.Fatalf("keyword x should not hit string key x")
	}
}

func TestAtomIdentityEquality(t *testing.T) {
	a := NewAtom(Int(1))
	b := NewAtom(Int(1))
	if Equal(a, b) {
		t.Fatalf("distinct atoms holding equal values must not be =")
	}
	if !Equal(a, a) {
		t.Fatalf("an atom must equal itself")
	}
}

func TestPrReadable(t *testing.T) {
	s := String("a\"b\nc\\d")
	if got := Pr(s, true); got != `"a\"b\nc\\d"` {
		t.Fatalf("unexpected readable string print: %q", got)
	}
	if got := Pr(s, false); got != "a\"b\nc\\d" {
		t.Fatalf("unexpected raw string print: %q", got)
	}
}

func TestPrListVector(t *testing.T) {
	l := NewList(Int(1), String("x"), Keyword("y"))
	if got := Pr(l, true); got != `(1 "x" :y)` {
		t.Fatalf("unexpected list print: %q", got)
	}

	v := NewVector(Int(1), Int(2))
	if got := Pr(v, false); got != "[1 2]" {
		t.Fatalf("unexpected vector print: %q", got)
	}
}

func TestPrAtom(t *testing.T) {
	a := NewAtom(Int(5))
	if got := Pr(a, false); got != "(atom 5)" {
		t.Fatalf("unexpected atom print: %q", got)
	}
}

func TestWithMetaRejectsUncarriable(t *testing.T) {
	if _, err := WithMeta(Int(1), NilValue); err == nil {
		t.Fatalf("expected error attaching metadata to an Int")
	}
}

func TestWithMetaShallowCopy(t *testing.T) {
	l := NewList(Int(1))
	m, err := WithMeta(l, String("tag"))
	if err != nil {
		t.Fatal(err)
	}
	if Meta(l) != NilValue {
		t.Fatalf("original list must be unaffected by with-meta")
	}
	if !Equal(Meta(m), String("tag")) {
		t.Fatalf("expected metadata %q, got %v", "tag", Meta(m))
	}
	if !Equal(m, l) {
		t.Fatalf("with-meta copy must remain structurally equal to original")
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{NilValue, false},
		{False, false},
		{True, true},
		{Int(0), true},
		{NewList(), true},
	}
	for _, c := range cases {
		if got := Truthy(c.v); got != c.want {
			t.Fatalf("Truthy(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}
