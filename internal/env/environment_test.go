package env

import (
	"testing"

	"github.com/lispkit/lisp/internal/value"
)

func TestSetGetLocal(t *testing.T) {
	e := New()
	e.Set("x", value.Int(1))
	got, ok := e.Get("x")
	if !ok || !value.Equal(got, value.Int(1)) {
		t.Fatalf("expected x=1, got %v ok=%v", got, ok)
	}
}

func TestGetWalksOuter(t *testing.T) {
	outer := New()
	outer.Set("x", value.Int(10))
	child := outer.NewChild()

	got, ok := child.Get("x")
	if !ok || !value.Equal(got, value.Int(10)) {
		t.Fatalf("expected child to see outer x=10, got %v ok=%v", got, ok)
	}
}

func TestChildShadowsOuter(t *testing.T) {
	outer := New()
	outer.Set("a", value.Int(10))
	child := NewEnclosed(outer)
	child.Set("a", value.Int(20))

	got, _ := child.Get("a")
	if !value.Equal(got, value.Int(20)) {
		t.Fatalf("expected shadowed a=20, got %v", got)
	}
	outerGot, _ := outer.Get("a")
	if !value.Equal(outerGot, value.Int(10)) {
		t.Fatalf("expected outer a to remain 10, got %v", outerGot)
	}
}

func TestGetOrErrorMessage(t *testing.T) {
	e := New()
	_, err := e.GetOrError("missing")
	if err == nil || err.Error() != "'missing' not found" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBindParamsExact(t *testing.T) {
	root := New()
	child, err := BindParams(root, []value.Symbol{"a", "b"}, []value.Value{value.Int(1), value.Int(2)})
	if err != nil {
		t.Fatal(err)
	}
	a, _ := child.Get("a")
	b, _ := child.Get("b")
	if !value.Equal(a, value.Int(1)) || !value.Equal(b, value.Int(2)) {
		t.Fatalf("unexpected bindings a=%v b=%v", a, b)
	}
}

func TestBindParamsVariadic(t *testing.T) {
	root := New()
	child, err := BindParams(root, []value.Symbol{"a", "&", "rest"},
		[]value.Value{value.Int(1), value.Int(2), value.Int(3)})
	if err != nil {
		t.Fatal(err)
	}
	rest, _ := child.Get("rest")
	lst, ok := rest.(*value.List)
	if !ok || len(lst.Items) != 2 {
		t.Fatalf("expected rest to be a 2-element list, got %v", rest)
	}
}

func TestBindParamsVariadicEmptyRest(t *testing.T) {
	root := New()
	child, err := BindParams(root, []value.Symbol{"&", "rest"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	rest, _ := child.Get("rest")
	lst, ok := rest.(*value.List)
	if !ok || len(lst.Items) != 0 {
		t.Fatalf("expected empty rest list, got %v", rest)
	}
}

func TestBindParamsTooFewArgs(t *testing.T) {
	root := New()
	if _, err := BindParams(root, []value.Symbol{"a", "b"}, []value.Value{value.Int(1)}); err == nil {
		t.Fatalf("expected error for too few arguments")
	}
}

func TestBindParamsTooManyArgs(t *testing.T) {
	root := New()
	if _, err := BindParams(root, []value.Symbol{"a"}, []value.Value{value.Int(1), value.Int(2)}); err == nil {
		t.Fatalf("expected error for too many arguments")
	}
}
