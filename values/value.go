/*
File    : littlearn/values/value.go
Author  : akashmaji946
*/

// Package values defines littlearn's runtime value representation: the
// two scalar value kinds (Int, Float), the Function value produced by a
// function declaration, and the control-flow signal values (Break,
// Continue, Return, None) an interpreter statement can produce. All of
// these share one Value interface, the same way the teacher's object
// system lets Integer/Float sit behind the same interface as its
// Break/Continue/ReturnValue markers — unifying "value produced" and
// "control signal raised" simplifies every dispatch site in interp.
package values

import (
	"strconv"

	"github.com/akashmaji946/littlearn/ast"
)

// Kind names a concrete Value implementation.
type Kind string

const (
	KindInt      Kind = "int"
	KindFloat    Kind = "float"
	KindFunction Kind = "function"
	KindBreak    Kind = "break"
	KindContinue Kind = "continue"
	KindReturn   Kind = "return"
	KindNone     Kind = "none"
)

// Value is implemented by every littlearn runtime value and every
// control-flow signal.
type Value interface {
	Kind() Kind
	String() string
}

// IsControlFlow reports whether v is a Break/Continue/Return signal
// rather than an ordinary value — the interpreter's statement-execution
// loop checks this after every statement to decide whether to keep
// running the current block or unwind.
func IsControlFlow(v Value) bool {
	switch v.Kind() {
	case KindBreak, KindContinue, KindReturn:
		return true
	default:
		return false
	}
}

// Int is a 64-bit signed integer value.
type Int struct{ V int64 }

func (Int) Kind() Kind       { return KindInt }
func (i Int) String() string { return strconv.FormatInt(i.V, 10) }

// Float is a 64-bit floating point value.
type Float struct{ V float64 }

func (Float) Kind() Kind       { return KindFloat }
func (f Float) String() string { return strconv.FormatFloat(f.V, 'g', -1, 64) }

// Function is the value produced by a function declaration. It
// deliberately carries no reference to the frame it was declared in:
// littlearn functions are call-by-value with no closures, so a Function
// value is fully described by its signature and body.
type Function struct {
	Name       string
	Params     []ast.Param
	ReturnType ast.ValueType
	Body       *ast.Block
}

func (Function) Kind() Kind       { return KindFunction }
func (f Function) String() string { return "<function " + f.Name + ">" }

// Break signals that the nearest enclosing loop should terminate.
type Break struct{}

func (Break) Kind() Kind       { return KindBreak }
func (Break) String() string   { return "<break>" }

// Continue signals that the nearest enclosing loop should skip to its
// next iteration.
type Continue struct{}

func (Continue) Kind() Kind     { return KindContinue }
func (Continue) String() string { return "<continue>" }

// Return carries the value a function call is returning. A bare
// "return;" parses to an Empty expression, which the interpreter
// evaluates to Int{0}, so Value is Int{0} in that case.
type Return struct{ Value Value }

func (Return) Kind() Kind       { return KindReturn }
func (r Return) String() string { return "<return>" }

// None is the "no signal, no value" result of a statement that neither
// produces a value nor raises control flow (e.g. a variable
// declaration).
type None struct{}

func (None) Kind() Kind       { return KindNone }
func (None) String() string   { return "<none>" }
