/*
File    : littlearn/interp/interpreter.go
Author  : akashmaji946
*/

// Package interp walks a littlearn ast.Program and executes it against a
// frame.Frame, dispatching built-ins before user-declared functions and
// implementing call-by-value, closure-free function calls: grounded on
// the original interpreter's interpretBlock/interpretFunctionCall, but
// restructured from open-recursion-with-exceptions into explicit
// (values.Value, error) returns.
package interp

import (
	"fmt"

	"github.com/akashmaji946/littlearn/ast"
	"github.com/akashmaji946/littlearn/builtins"
	"github.com/akashmaji946/littlearn/errs"
	"github.com/akashmaji946/littlearn/frame"
	"github.com/akashmaji946/littlearn/sink"
	"github.com/akashmaji946/littlearn/values"
)

// DefaultMaxCallDepth bounds function-call recursion. The original
// embedded interpreter fixed this at 4, sized for a specific
// microcontroller's stack; littlearn exposes it as a configurable option
// instead of a language-level constant (see SPEC_FULL.md's Open
// Question resolutions).
const DefaultMaxCallDepth = 256

// Options configures an Interpreter at construction time, following the
// teacher's pattern of setting such things as struct fields/setters
// rather than reading a config file (littlearn has no persisted state).
type Options struct {
	Output       sink.OutputSink
	ErrorSink    sink.ErrorSink
	Radio        sink.RadioFormatter
	MaxCallDepth int
	RNGSeed      int64
}

// Interpreter executes one littlearn program. It is not safe for
// concurrent use by multiple goroutines against the same call depth
// counter; run one Interpreter per program execution.
type Interpreter struct {
	errors       *errs.ErrorHandler
	builtinsCtx  *builtins.Context
	maxCallDepth int
	callDepth    int
	root         *frame.Frame
}

// NewInterpreter builds an Interpreter from Options, filling in defaults
// for anything left zero.
func NewInterpreter(opts Options) *Interpreter {
	maxDepth := opts.MaxCallDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxCallDepth
	}
	handler := errs.NewErrorHandler(opts.ErrorSink)
	return &Interpreter{
		errors:       handler,
		builtinsCtx:  builtins.NewContext(opts.Output, handler, opts.Radio, opts.RNGSeed),
		maxCallDepth: maxDepth,
		root:         frame.NewFrame(nil),
	}
}

// Errors exposes the interpreter's ErrorHandler so an embedder can
// trigger cooperative cancellation from outside the running program.
func (in *Interpreter) Errors() *errs.ErrorHandler {
	return in.errors
}

// Run executes every top-level statement of prog against the
// Interpreter's root frame. The root frame persists across repeated
// calls to Run on the same Interpreter, so a caller feeding it one
// line at a time (a REPL) sees declarations from earlier calls remain
// visible to later ones. A Return reaching the top level ends the
// program with that value; a Break or Continue reaching the top level
// is a runtime error, since neither names an enclosing loop.
func (in *Interpreter) Run(prog *ast.Program) (values.Value, error) {
	result, err := in.execStatements(prog.Statements, in.root)
	if err != nil {
		in.errors.Handle(err)
		return nil, err
	}
	switch v := result.(type) {
	case values.Return:
		return v.Value, nil
	case values.Break, values.Continue:
		err := fmt.Errorf("%s outside of a loop", v.Kind())
		in.errors.Handle(err)
		return nil, err
	default:
		return result, nil
	}
}

// execStatements runs a sequence of statements in fr, stopping and
// returning as soon as one produces a control-flow signal.
func (in *Interpreter) execStatements(stmts []ast.Node, fr *frame.Frame) (values.Value, error) {
	var last values.Value = values.None{}
	for _, stmt := range stmts {
		if in.errors.ShouldStop() {
			return nil, fmt.Errorf("execution stopped")
		}
		v, err := in.execStatement(stmt, fr)
		if err != nil {
			return nil, err
		}
		last = v
		if values.IsControlFlow(v) {
			return v, nil
		}
	}
	return last, nil
}

// execStatement dispatches a single statement node by concrete type.
func (in *Interpreter) execStatement(node ast.Node, fr *frame.Frame) (values.Value, error) {
	switch n := node.(type) {
	case *ast.Block:
		return in.execStatements(n.Statements, frame.NewFrame(fr))
	case *ast.VarDecl:
		return in.execVarDecl(n, fr)
	case *ast.FunctionDecl:
		return in.execFunctionDecl(n, fr)
	case *ast.If:
		return in.execIf(n, fr)
	case *ast.While:
		return in.execWhile(n, fr)
	case *ast.For:
		return in.execFor(n, fr)
	case *ast.Break:
		return values.Break{}, nil
	case *ast.Continue:
		return values.Continue{}, nil
	case *ast.Return:
		val, err := in.evalExpr(n.Value, fr)
		if err != nil {
			return nil, err
		}
		return values.Return{Value: val}, nil
	case ast.Expr:
		return in.evalExpr(n, fr)
	default:
		return nil, fmt.Errorf("unsupported statement node %T", node)
	}
}

func (in *Interpreter) execVarDecl(n *ast.VarDecl, fr *frame.Frame) (values.Value, error) {
	val, err := in.evalExpr(n.Value, fr)
	if err != nil {
		return nil, err
	}
	switch n.Type {
	case ast.IntType:
		iv, err := toInt(val)
		if err != nil {
			return nil, err
		}
		if err := fr.DeclareInt(n.Name, iv); err != nil {
			return nil, err
		}
	case ast.FloatType:
		fv, err := toFloat(val)
		if err != nil {
			return nil, err
		}
		if err := fr.DeclareFloat(n.Name, fv); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid variable type %q", n.Type)
	}
	return values.None{}, nil
}

func (in *Interpreter) execFunctionDecl(n *ast.FunctionDecl, fr *frame.Frame) (values.Value, error) {
	fn := values.Function{Name: n.Name, Params: n.Params, ReturnType: n.ReturnType, Body: n.Body}
	if err := fr.DeclareFunction(n.Name, fn); err != nil {
		return nil, err
	}
	return values.None{}, nil
}

// execIf evaluates the if / else-if* conditions in order and runs the
// first truthy branch's body; if none are truthy and a trailing else
// body is present (len(Bodies) > len(Conditions)), that runs instead.
func (in *Interpreter) execIf(n *ast.If, fr *frame.Frame) (values.Value, error) {
	for i, cond := range n.Conditions {
		v, err := in.evalExpr(cond, fr)
		if err != nil {
			return nil, err
		}
		truth, err := toBool(v)
		if err != nil {
			return nil, err
		}
		if truth {
			return in.execStatements(n.Bodies[i].Statements, frame.NewFrame(fr))
		}
	}
	if len(n.Bodies) > len(n.Conditions) {
		elseBody := n.Bodies[len(n.Bodies)-1]
		return in.execStatements(elseBody.Statements, frame.NewFrame(fr))
	}
	return values.None{}, nil
}

func (in *Interpreter) execWhile(n *ast.While, fr *frame.Frame) (values.Value, error) {
	for {
		if in.errors.ShouldStop() {
			return nil, fmt.Errorf("execution stopped")
		}
		cond, err := in.evalExpr(n.Condition, fr)
		if err != nil {
			return nil, err
		}
		truth, err := toBool(cond)
		if err != nil {
			return nil, err
		}
		if !truth {
			return values.None{}, nil
		}
		result, err := in.execStatements(n.Body.Statements, frame.NewFrame(fr))
		if err != nil {
			return nil, err
		}
		switch result.(type) {
		case values.Break:
			return values.None{}, nil
		case values.Return:
			return result, nil
		}
	}
}

func (in *Interpreter) execFor(n *ast.For, fr *frame.Frame) (values.Value, error) {
	// The initializer runs directly on the caller's frame, not a fresh
	// one: "for (int i = 0; ...)" declares i in the loop's enclosing
	// frame, where it stays declared after the loop ends, matching the
	// original.
	if _, err := in.execStatement(n.Init, fr); err != nil {
		return nil, err
	}
	for {
		if in.errors.ShouldStop() {
			return nil, fmt.Errorf("execution stopped")
		}
		cond, err := in.evalExpr(n.Condition, fr)
		if err != nil {
			return nil, err
		}
		truth, err := toBool(cond)
		if err != nil {
			return nil, err
		}
		if !truth {
			return values.None{}, nil
		}
		result, err := in.execStatements(n.Body.Statements, frame.NewFrame(fr))
		if err != nil {
			return nil, err
		}
		switch result.(type) {
		case values.Break:
			return values.None{}, nil
		case values.Return:
			return result, nil
		}
		if _, err := in.execStatement(n.Post, fr); err != nil {
			return nil, err
		}
	}
}
