// Package env implements the lexically chained symbol table described
// in spec §4.3.
package env

import (
	"fmt"

	"github.com/lispkit/lisp/internal/value"
)

// Environment is a mapping from symbol name to Value plus a reference
// to an outer Environment. The root environment has no outer.
type Environment struct {
	vars  map[string]value.Value
	outer *Environment
}

// New creates a root environment with no outer scope.
func New() *Environment {
	return &Environment{vars: make(map[string]value.Value)}
}

// NewChild creates an environment enclosed by e. Implements
// value.Env so a Closure can carry its defining scope without value
// importing env.
func (e *Environment) NewChild() value.Env {
	return &Environment{vars: make(map[string]value.Value), outer: e}
}

// NewEnclosed is the concrete-typed equivalent of NewChild, for callers
// that need a *Environment rather than the narrower value.Env.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{vars: make(map[string]value.Value), outer: outer}
}

// Set inserts or overrides name in the current frame only.
func (e *Environment) Set(name string, v value.Value) {
	e.vars[name] = v
}

// find walks outward from e, returning the first frame that defines
// name, or nil.
func (e *Environment) find(name string) *Environment {
	for f := e; f != nil; f = f.outer {
		if _, ok := f.vars[name]; ok {
			return f
		}
	}
	return nil
}

// Get resolves name, searching outward through enclosing scopes.
func (e *Environment) Get(name string) (value.Value, bool) {
	if f := e.find(name); f != nil {
		return f.vars[name], true
	}
	return nil, false
}

// GetOrError resolves name, returning the spec-mandated error message
// on failure ("'NAME' not found", spec §4.3).
func (e *Environment) GetOrError(name string) (value.Value, error) {
	v, ok := e.Get(name)
	if !ok {
		return nil, fmt.Errorf("'%s' not found", name)
	}
	return v, nil
}

// Outer returns the enclosing environment, or nil at the root.
func (e *Environment) Outer() *Environment {
	return e.outer
}

// BindParams binds params pairwise against args in a fresh child of
// outer, honoring a trailing "&" variadic marker: the parameter
// following "&" is bound to a List of all remaining arguments,
// possibly empty (spec §4.3, "Binding constructor"). It operates only
// through the value.Env interface so it works equally for the root
// environment and for a closure's captured scope.
func BindParams(outer value.Env, params []value.Symbol, args []value.Value) (value.Env, error) {
	child := outer.NewChild()

	for i := 0; i < len(params); i++ {
		if params[i] == "&" {
			if i+1 >= len(params) {
				return nil, fmt.Errorf("'&' must be followed by a parameter name")
			}
			rest := params[i+1]
			if i > len(args) {
				return nil, fmt.Errorf("too few arguments: expected at least %d, got %d", i, len(args))
			}
			child.Set(string(rest), value.NewList(args[i:]...))
			return child, nil
		}
		if i >= len(args) {
			return nil, fmt.Errorf("too few arguments: expected %d, got %d", len(params), len(args))
		}
		child.Set(string(params[i]), args[i])
	}

	if len(args) > len(params) {
		return nil, fmt.Errorf("too many arguments: expected %d, got %d", len(params), len(args))
	}

	return child, nil
}
