/*
File    : littlearn/builtins/builtins.go
Author  : akashmaji946
*/

// Package builtins implements littlearn's fixed set of built-in
// functions. The set is closed and checked before user-function lookup
// on every call (see interp.Interpreter.callFunction), matching the
// original interpreter's functionMap dispatch order. Doc comments below
// follow the "Syntax:/Example:" convention the teacher uses for its own
// standard-library functions.
package builtins

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/akashmaji946/littlearn/errs"
	"github.com/akashmaji946/littlearn/sink"
	"github.com/akashmaji946/littlearn/values"
)

// Context bundles everything a builtin might need beyond its arguments:
// where to write print() output, how to report a runtime error and stop
// execution, how long the program has been running, and (embedded
// builds only) a radio formatter for send_bool().
type Context struct {
	Output  sink.OutputSink
	Errors  *errs.ErrorHandler
	Radio   sink.RadioFormatter
	Started time.Time
	rng     *rand.Rand
}

// NewContext builds a builtin Context. rngSeed lets callers (tests, or
// an embedder wanting reproducible runs) fix rand()'s sequence; pass 0
// to seed from the current time.
func NewContext(output sink.OutputSink, errHandler *errs.ErrorHandler, radio sink.RadioFormatter, rngSeed int64) *Context {
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	return &Context{
		Output:  output,
		Errors:  errHandler,
		Radio:   radio,
		Started: time.Now(),
		rng:     rand.New(rand.NewSource(rngSeed)),
	}
}

// Func is the shape every builtin implements: given the evaluated
// argument list, produce a result value or a runtime error.
type Func func(ctx *Context, args []values.Value) (values.Value, error)

// Registry is the fixed name->implementation table. It is immutable
// after init(): littlearn has no mechanism for a program to add to it.
var Registry map[string]Func

// IsBuiltin reports whether name is one of littlearn's fixed built-in
// functions. The parser uses this to reject a user FunctionDecl whose
// name would otherwise be silently shadowed at call time, since builtin
// lookup always runs before user-function lookup.
func IsBuiltin(name string) bool {
	_, ok := Registry[name]
	return ok
}

func init() {
	Registry = map[string]Func{
		"print":        biPrint,
		"wait":         biWait,
		"rand":         biRand,
		"runtime":      biRuntime,
		"float_to_int": biFloatToInt,
		"int_to_float": biIntToFloat,
		"pow":          biPow,
		"pi":           biPi,
		"exp":          biExp,
		"sin":          biSin,
		"cos":          biCos,
		"tan":          biTan,
		"asin":         biAsin,
		"acos":         biAcos,
		"atan":         biAtan,
		"atan2":        biAtan2,
		"sqrt":         biSqrt,
		"abs":          biAbs,
		"floor":        biFloor,
		"ceil":         biCeil,
		"log":          biLog,
		"log10":        biLog10,
		"log2":         biLog2,
		"min":          biMin,
		"max":          biMax,
		"round":        biRound,
		"send_bool":    biSendBool,
	}
}

func arity(name string, args []values.Value, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s() expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func asFloat(v values.Value) (float64, error) {
	switch n := v.(type) {
	case values.Int:
		return float64(n.V), nil
	case values.Float:
		return n.V, nil
	default:
		return 0, fmt.Errorf("expected a numeric value, got %s", n.Kind())
	}
}

func asInt(v values.Value) (int64, error) {
	switch n := v.(type) {
	case values.Int:
		return n.V, nil
	case values.Float:
		return int64(n.V), nil
	default:
		return 0, fmt.Errorf("expected a numeric value, got %s", n.Kind())
	}
}

func truthy(v values.Value) (bool, error) {
	switch n := v.(type) {
	case values.Int:
		return n.V != 0, nil
	case values.Float:
		return n.V != 0, nil
	default:
		return false, fmt.Errorf("expected a numeric value, got %s", n.Kind())
	}
}

// Syntax: print(value)
// Passes value's textual form, unframed, to the configured OutputSink;
// the sink applies the "__P__" wire framing.
//
// Example: print(1 + 2); -> a sink.WriterSink writes "__P__3\n__P__"
func biPrint(ctx *Context, args []values.Value) (values.Value, error) {
	if err := arity("print", args, 1); err != nil {
		return nil, err
	}
	if ctx.Output != nil {
		ctx.Output.Write(args[0].String())
	}
	return values.Int{V: 0}, nil
}

// Syntax: wait(milliseconds)
// Sleeps cooperatively: it sleeps in small slices and checks the error
// handler's stop latch between slices, so an external TriggerStop
// becomes visible well before the full duration elapses.
const waitSlice = 10 * time.Millisecond

func biWait(ctx *Context, args []values.Value) (values.Value, error) {
	if err := arity("wait", args, 1); err != nil {
		return nil, err
	}
	ms, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	if ms < 0 {
		return nil, fmt.Errorf("wait() expects a non-negative duration, got %d", ms)
	}
	remaining := time.Duration(ms) * time.Millisecond
	for remaining > 0 {
		if ctx.Errors != nil && ctx.Errors.ShouldStop() {
			break
		}
		slice := waitSlice
		if slice > remaining {
			slice = remaining
		}
		time.Sleep(slice)
		remaining -= slice
	}
	return values.Int{V: 0}, nil
}

// Syntax: rand()
// Returns a uniformly distributed pseudo-random float in [0, 1).
func biRand(ctx *Context, args []values.Value) (values.Value, error) {
	if err := arity("rand", args, 0); err != nil {
		return nil, err
	}
	return values.Float{V: ctx.rng.Float64()}, nil
}

// Syntax: runtime()
// Returns the number of milliseconds since this Context was created.
func biRuntime(ctx *Context, args []values.Value) (values.Value, error) {
	if err := arity("runtime", args, 0); err != nil {
		return nil, err
	}
	return values.Int{V: time.Since(ctx.Started).Milliseconds()}, nil
}

func biFloatToInt(_ *Context, args []values.Value) (values.Value, error) {
	if err := arity("float_to_int", args, 1); err != nil {
		return nil, err
	}
	v, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	return values.Int{V: v}, nil
}

func biIntToFloat(_ *Context, args []values.Value) (values.Value, error) {
	if err := arity("int_to_float", args, 1); err != nil {
		return nil, err
	}
	v, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	return values.Float{V: v}, nil
}

func unaryMath(name string, fn func(float64) float64) Func {
	return func(_ *Context, args []values.Value) (values.Value, error) {
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		x, err := asFloat(args[0])
		if err != nil {
			return nil, err
		}
		return values.Float{V: fn(x)}, nil
	}
}

var (
	biExp   = unaryMath("exp", math.Exp)
	biSin   = unaryMath("sin", math.Sin)
	biCos   = unaryMath("cos", math.Cos)
	biTan   = unaryMath("tan", math.Tan)
	biFloor = unaryMath("floor", math.Floor)
	biCeil  = unaryMath("ceil", math.Ceil)
)

// Syntax: round(x, n)
// Rounds x to n decimal places: round(x*factor)/factor with
// factor = 10^n, returned as a float.
func biRound(_ *Context, args []values.Value) (values.Value, error) {
	if err := arity("round", args, 2); err != nil {
		return nil, err
	}
	x, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	n, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	factor := math.Pow(10, float64(n))
	return values.Float{V: math.Round(x*factor) / factor}, nil
}

func biPi(_ *Context, args []values.Value) (values.Value, error) {
	if err := arity("pi", args, 0); err != nil {
		return nil, err
	}
	return values.Float{V: math.Pi}, nil
}

func biPow(_ *Context, args []values.Value) (values.Value, error) {
	if err := arity("pow", args, 2); err != nil {
		return nil, err
	}
	base, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	exp, err := asFloat(args[1])
	if err != nil {
		return nil, err
	}
	return values.Float{V: math.Pow(base, exp)}, nil
}

func biAsin(_ *Context, args []values.Value) (values.Value, error) {
	if err := arity("asin", args, 1); err != nil {
		return nil, err
	}
	x, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	if x < -1 || x > 1 {
		return nil, fmt.Errorf("asin() expects an argument in [-1, 1], got %g", x)
	}
	return values.Float{V: math.Asin(x)}, nil
}

func biAcos(_ *Context, args []values.Value) (values.Value, error) {
	if err := arity("acos", args, 1); err != nil {
		return nil, err
	}
	x, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	if x < -1 || x > 1 {
		return nil, fmt.Errorf("acos() expects an argument in [-1, 1], got %g", x)
	}
	return values.Float{V: math.Acos(x)}, nil
}

func biAtan(_ *Context, args []values.Value) (values.Value, error) {
	if err := arity("atan", args, 1); err != nil {
		return nil, err
	}
	x, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	return values.Float{V: math.Atan(x)}, nil
}

func biAtan2(_ *Context, args []values.Value) (values.Value, error) {
	if err := arity("atan2", args, 2); err != nil {
		return nil, err
	}
	y, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	x, err := asFloat(args[1])
	if err != nil {
		return nil, err
	}
	return values.Float{V: math.Atan2(y, x)}, nil
}

func biSqrt(_ *Context, args []values.Value) (values.Value, error) {
	if err := arity("sqrt", args, 1); err != nil {
		return nil, err
	}
	x, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	if x < 0 {
		return nil, fmt.Errorf("sqrt() expects a non-negative argument, got %g", x)
	}
	return values.Float{V: math.Sqrt(x)}, nil
}

func biAbs(_ *Context, args []values.Value) (values.Value, error) {
	if err := arity("abs", args, 1); err != nil {
		return nil, err
	}
	switch n := args[0].(type) {
	case values.Int:
		if n.V < 0 {
			return values.Int{V: -n.V}, nil
		}
		return n, nil
	case values.Float:
		return values.Float{V: math.Abs(n.V)}, nil
	default:
		return nil, fmt.Errorf("abs() expects a numeric value, got %s", n.Kind())
	}
}

func biLog(_ *Context, args []values.Value) (values.Value, error) {
	if err := arity("log", args, 1); err != nil {
		return nil, err
	}
	x, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	if x <= 0 {
		return nil, fmt.Errorf("log() expects a positive argument, got %g", x)
	}
	return values.Float{V: math.Log(x)}, nil
}

func biLog10(_ *Context, args []values.Value) (values.Value, error) {
	if err := arity("log10", args, 1); err != nil {
		return nil, err
	}
	x, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	if x <= 0 {
		return nil, fmt.Errorf("log10() expects a positive argument, got %g", x)
	}
	return values.Float{V: math.Log10(x)}, nil
}

func biLog2(_ *Context, args []values.Value) (values.Value, error) {
	if err := arity("log2", args, 1); err != nil {
		return nil, err
	}
	x, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	if x <= 0 {
		return nil, fmt.Errorf("log2() expects a positive argument, got %g", x)
	}
	return values.Float{V: math.Log2(x)}, nil
}

func biMin(_ *Context, args []values.Value) (values.Value, error) {
	if err := arity("min", args, 2); err != nil {
		return nil, err
	}
	return minMax(args[0], args[1], true)
}

func biMax(_ *Context, args []values.Value) (values.Value, error) {
	if err := arity("max", args, 2); err != nil {
		return nil, err
	}
	return minMax(args[0], args[1], false)
}

// minMax promotes to float only if either operand is a float, the same
// promotion rule the interpreter's binary arithmetic uses.
func minMax(a, b values.Value, wantMin bool) (values.Value, error) {
	ai, aIsInt := a.(values.Int)
	bi, bIsInt := b.(values.Int)
	if aIsInt && bIsInt {
		if (ai.V < bi.V) == wantMin {
			return ai, nil
		}
		return bi, nil
	}
	af, err := asFloat(a)
	if err != nil {
		return nil, err
	}
	bf, err := asFloat(b)
	if err != nil {
		return nil, err
	}
	if (af < bf) == wantMin {
		return values.Float{V: af}, nil
	}
	return values.Float{V: bf}, nil
}

// Syntax: send_bool(tileIndex, value)
// Embedded-only: forwards (tileIndex, truthiness-of-value) to the
// configured RadioFormatter. Outside embedded builds (ctx.Radio == nil)
// this is a runtime error, matching the original's
// #if __EMBEDDED__ / else branch.
func biSendBool(ctx *Context, args []values.Value) (values.Value, error) {
	if err := arity("send_bool", args, 2); err != nil {
		return nil, err
	}
	tileIndex, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	flag, err := truthy(args[1])
	if err != nil {
		return nil, err
	}
	if ctx.Radio == nil {
		return nil, fmt.Errorf("send_bool() is only available in embedded mode")
	}
	if err := ctx.Radio.SendBool(int(tileIndex), flag); err != nil {
		return nil, err
	}
	return values.Int{V: 0}, nil
}
