/*
File    : littlearn/interp/call.go
Author  : akashmaji946
*/
package interp

import (
	"fmt"

	"github.com/akashmaji946/littlearn/ast"
	"github.com/akashmaji946/littlearn/builtins"
	"github.com/akashmaji946/littlearn/frame"
	"github.com/akashmaji946/littlearn/values"
)

// callFunction evaluates a call's arguments in the caller's frame, then
// dispatches: built-ins are checked first (matching the original's
// functionMap lookup order, and matching the parser's compile-time
// refusal to let a user function shadow one), otherwise a user-declared
// function is invoked with a fresh, unparented call frame.
func (in *Interpreter) callFunction(call *ast.FunctionCall, fr *frame.Frame) (values.Value, error) {
	// A single Empty argument is the parser's zero-argument sentinel
	// ("f()" parses to Args=[Empty]), not a real value to evaluate and
	// pass through.
	callArgs := call.Args
	if len(callArgs) == 1 {
		if _, ok := callArgs[0].(*ast.Empty); ok {
			callArgs = nil
		}
	}

	args := make([]values.Value, len(callArgs))
	for i, a := range callArgs {
		v, err := in.evalExpr(a, fr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if bfn, ok := builtins.Registry[call.Name]; ok {
		return bfn(in.builtinsCtx, args)
	}

	fn, ok := fr.LookupFunction(call.Name)
	if !ok {
		return nil, fmt.Errorf("function %q is not declared", call.Name)
	}
	return in.invokeUserFunction(fn, args, fr)
}

// invokeUserFunction implements littlearn's call-by-value, closure-free
// semantics: the callee frame is freshly allocated with NO parent (so it
// can never read or write the caller's local variables), but it is
// seeded with a shallow copy of every function visible anywhere on the
// caller's frame chain — not just the innermost frame — so a function
// can call any function its caller could call, and so mutually
// recursive top-level functions can call each other regardless of
// declaration order.
func (in *Interpreter) invokeUserFunction(fn values.Function, args []values.Value, caller *frame.Frame) (values.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, fmt.Errorf("%s() expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}

	in.callDepth++
	defer func() { in.callDepth-- }()
	if in.callDepth > in.maxCallDepth {
		return nil, fmt.Errorf("maximum call depth (%d) exceeded calling %s()", in.maxCallDepth, fn.Name)
	}

	callFrame := frame.NewFrame(nil)
	callFrame.SeedFunctions(caller.VisibleFunctions())

	for i, param := range fn.Params {
		switch param.Type {
		case ast.IntType:
			iv, err := toInt(args[i])
			if err != nil {
				return nil, fmt.Errorf("%s() parameter %q: %w", fn.Name, param.Name, err)
			}
			if err := callFrame.DeclareInt(param.Name, iv); err != nil {
				return nil, err
			}
		case ast.FloatType:
			fv, err := toFloat(args[i])
			if err != nil {
				return nil, fmt.Errorf("%s() parameter %q: %w", fn.Name, param.Name, err)
			}
			if err := callFrame.DeclareFloat(param.Name, fv); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("invalid parameter type %q for %q", param.Type, param.Name)
		}
	}

	result, err := in.execStatements(fn.Body.Statements, callFrame)
	if err != nil {
		return nil, err
	}

	switch v := result.(type) {
	case values.Return:
		return coerceReturn(fn.ReturnType, v.Value)
	case values.Break:
		return nil, fmt.Errorf("break outside of a loop")
	case values.Continue:
		return nil, fmt.Errorf("continue outside of a loop")
	default:
		// A function body that runs off its end without a return
		// produces Int{0}, matching the original's default
		// ReturnableInt(0).
		return coerceReturn(fn.ReturnType, values.Int{V: 0})
	}
}

func coerceReturn(returnType ast.ValueType, v values.Value) (values.Value, error) {
	switch returnType {
	case ast.VoidType:
		return values.Int{V: 0}, nil
	case ast.IntType:
		iv, err := toInt(v)
		if err != nil {
			return nil, err
		}
		return values.Int{V: iv}, nil
	case ast.FloatType:
		fv, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		return values.Float{V: fv}, nil
	default:
		return v, nil
	}
}
