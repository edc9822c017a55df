/*
File    : littlearn/interp/interpreter_test.go
Author  : akashmaji946
*/
package interp

import (
	"testing"

	"github.com/akashmaji946/littlearn/parser"
	"github.com/akashmaji946/littlearn/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectingSink is an OutputSink that records each print() payload
// verbatim, without the "__P__" wire framing, so assertions can compare
// against plain values.
type collectingSink struct {
	messages []string
}

func (s *collectingSink) Write(message string) {
	s.messages = append(s.messages, message)
}

func (s *collectingSink) WriteError(message string) {
	s.messages = append(s.messages, "ERROR:"+message)
}

func run(t *testing.T, src string, out *collectingSink) (values.Value, error) {
	t.Helper()
	prog, err := parser.Parse(src)
	require.NoError(t, err, "parse error")
	in := NewInterpreter(Options{Output: out, ErrorSink: out})
	return in.Run(prog)
}

func TestInterpreter_Collatz(t *testing.T) {
	// Exact source and expected count from the Collatz end-to-end scenario.
	src := `{ int n = 343; int count = 0; while (n > 1) { count = count + 1; int temp = n % 2; if (temp - 1) { n = n / 2; } if (temp) { n = 3 * n; n = n + 1; } } print(count); }`
	out := &collectingSink{}
	_, err := run(t, src, out)
	require.NoError(t, err)
	assert.Equal(t, []string{"125"}, out.messages)
}

func TestInterpreter_FibonacciSequence(t *testing.T) {
	// Exact source from the recursive-Fibonacci end-to-end scenario,
	// exercising the if / else-if / else chain.
	src := `{ int fib(int n) { if (n == 0) { return 0; } else if (n == 1) { return 1; } else { return fib(n-1) + fib(n-2); } } for (int i = 0; i < 10; i = i + 1) { print(fib(i)); } }`
	out := &collectingSink{}
	_, err := run(t, src, out)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "1", "2", "3", "5", "8", "13", "21", "34"}, out.messages)
}

func TestInterpreter_MixedTypePromotion(t *testing.T) {
	// Exact source from the mixed-type-promotion end-to-end scenario.
	src := `{ int a = 3; float b = 2.0; print(a / b); }`
	out := &collectingSink{}
	_, err := run(t, src, out)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.5"}, out.messages)
}

func TestInterpreter_NoShortCircuitEvaluation(t *testing.T) {
	// Exact source from the no-short-circuit end-to-end scenario: both
	// operands are always evaluated per the interpreter's contract.
	src := `{ int x = 0; int y = 5; print((x) && (y)); print((x) || (y)); }`
	out := &collectingSink{}
	_, err := run(t, src, out)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, out.messages)
}

func TestInterpreter_ScopeIsolationAcrossCalls(t *testing.T) {
	// Exact source from the scope-isolation end-to-end scenario: call
	// frames do not import the caller's locals, so referencing "x" from
	// inside f() is an undefined-name runtime error.
	src := `{ int x = 1; int f() { return x; } print(f()); }`
	out := &collectingSink{}
	_, err := run(t, src, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x")
}

func TestInterpreter_NestedLoopBreak(t *testing.T) {
	// Exact source from the break-in-nested-loops end-to-end scenario.
	src := `{ int s = 0; for (int i = 0; i < 3; i = i + 1) { for (int j = 0; j < 3; j = j + 1) { if (j == 1) { break; } s = s + 1; } } print(s); }`
	out := &collectingSink{}
	_, err := run(t, src, out)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, out.messages)
}

func TestInterpreter_DivisionByZero(t *testing.T) {
	src := `
	int x = 1 / 0;
	`
	out := &collectingSink{}
	_, err := run(t, src, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestInterpreter_MaxCallDepthExceeded(t *testing.T) {
	src := `
	int loop(int n) {
		return loop(n + 1);
	}
	return loop(0);
	`
	prog, err := parser.Parse(src)
	require.NoError(t, err)
	out := &collectingSink{}
	in := NewInterpreter(Options{Output: out, ErrorSink: out, MaxCallDepth: 10})
	_, err = in.Run(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum call depth")
}
