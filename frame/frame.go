/*
File    : littlearn/frame/frame.go
Author  : akashmaji946
*/

// Package frame implements littlearn's lexical environment: a Frame
// holding a call or block's int/float/function bindings, chained to a
// parent for lookup. Grounded on the teacher's scope.Scope
// (LookUp/Bind/Assign shape) and on the original interpreter's
// StackFrame (disjoint typed maps). Variable and function lookup, and
// assignment, walk the parent chain, so nested blocks see and update the
// variables of their enclosing blocks. A function-call frame is created
// with no parent and only receives copies of the caller's visible
// functions, which is what keeps littlearn function calls closure-free.
package frame

import (
	"fmt"

	"github.com/akashmaji946/littlearn/values"
)

// Frame is one lexical scope: a block, a loop iteration, or a function
// call. Ints and floats are tracked in separate maps because littlearn
// is statically typed per-declaration (a VarDecl fixes whether a name is
// an int or a float for the life of that binding).
type Frame struct {
	ints      map[string]int64
	floats    map[string]float64
	functions map[string]values.Function
	parent    *Frame
}

// NewFrame creates a Frame chained to parent. parent may be nil for the
// outermost (program-level) frame or for a fresh function-call frame
// that must not see its caller's locals.
func NewFrame(parent *Frame) *Frame {
	return &Frame{
		ints:      make(map[string]int64),
		floats:    make(map[string]float64),
		functions: make(map[string]values.Function),
		parent:    parent,
	}
}

// DeclareInt binds name to an int value in this frame. Returns an error
// if name is already declared in this exact frame (redeclaration within
// the same scope is a static error; shadowing an outer frame's variable
// is allowed, matching the original's per-frame declaration check).
func (f *Frame) DeclareInt(name string, value int64) error {
	if f.declaredHere(name) {
		return fmt.Errorf("variable %q is already declared in this scope", name)
	}
	f.ints[name] = value
	return nil
}

// DeclareFloat binds name to a float value in this frame.
func (f *Frame) DeclareFloat(name string, value float64) error {
	if f.declaredHere(name) {
		return fmt.Errorf("variable %q is already declared in this scope", name)
	}
	f.floats[name] = value
	return nil
}

// DeclareFunction binds name to a callable function in this frame.
func (f *Frame) DeclareFunction(name string, fn values.Function) error {
	if _, ok := f.functions[name]; ok {
		return fmt.Errorf("function %q is already declared in this scope", name)
	}
	f.functions[name] = fn
	return nil
}

func (f *Frame) declaredHere(name string) bool {
	_, isInt := f.ints[name]
	_, isFloat := f.floats[name]
	return isInt || isFloat
}

// LookupVariable searches this frame and its ancestors for name, in that
// order, and reports whether it is bound (and as which kind).
func (f *Frame) LookupVariable(name string) (values.Value, bool) {
	for s := f; s != nil; s = s.parent {
		if v, ok := s.ints[name]; ok {
			return values.Int{V: v}, true
		}
		if v, ok := s.floats[name]; ok {
			return values.Float{V: v}, true
		}
	}
	return nil, false
}

// Assign finds the nearest frame (starting at f) in which name is
// already declared and overwrites it there, coercing int<->float as
// littlearn's assignment semantics allow. Returns an error if name isn't
// declared anywhere in the chain, or if value is neither Int nor Float.
func (f *Frame) Assign(name string, value values.Value) error {
	for s := f; s != nil; s = s.parent {
		if _, ok := s.ints[name]; ok {
			iv, err := coerceToInt(value)
			if err != nil {
				return err
			}
			s.ints[name] = iv
			return nil
		}
		if _, ok := s.floats[name]; ok {
			fv, err := coerceToFloat(value)
			if err != nil {
				return err
			}
			s.floats[name] = fv
			return nil
		}
	}
	return fmt.Errorf("variable %q is not declared", name)
}

// LookupFunction searches this frame and its ancestors for a
// user-declared function named name.
func (f *Frame) LookupFunction(name string) (values.Function, bool) {
	for s := f; s != nil; s = s.parent {
		if fn, ok := s.functions[name]; ok {
			return fn, true
		}
	}
	return values.Function{}, false
}

// VisibleFunctions collects every function visible from f, walking the
// whole parent chain (nearest declaration wins on a name collision).
// interp uses this to implement the call semantics the original gives a
// fresh call frame: it sees every function on the ENTIRE caller stack,
// copied in by value, but none of the caller's variables.
func (f *Frame) VisibleFunctions() map[string]values.Function {
	out := make(map[string]values.Function)
	frames := make([]*Frame, 0)
	for s := f; s != nil; s = s.parent {
		frames = append(frames, s)
	}
	for i := len(frames) - 1; i >= 0; i-- {
		for name, fn := range frames[i].functions {
			out[name] = fn
		}
	}
	return out
}

// SeedFunctions copies every entry of fns into this frame directly,
// bypassing the redeclaration check in DeclareFunction. Used once, right
// after NewFrame(nil), to populate a fresh call frame with the caller's
// visible functions.
func (f *Frame) SeedFunctions(fns map[string]values.Function) {
	for name, fn := range fns {
		f.functions[name] = fn
	}
}

func coerceToInt(v values.Value) (int64, error) {
	switch n := v.(type) {
	case values.Int:
		return n.V, nil
	case values.Float:
		return int64(n.V), nil
	default:
		return 0, fmt.Errorf("cannot assign a %s value to an int variable", n.Kind())
	}
}

func coerceToFloat(v values.Value) (float64, error) {
	switch n := v.(type) {
	case values.Int:
		return float64(n.V), nil
	case values.Float:
		return n.V, nil
	default:
		return 0, fmt.Errorf("cannot assign a %s value to a float variable", n.Kind())
	}
}
