/*
File    : littlearn/parser/parser_test.go
Author  : akashmaji946
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/littlearn/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_VarDecl(t *testing.T) {
	prog, err := Parse(`int x = 1 + 2;`)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)

	decl, ok := prog.Statements[0].(*ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, ast.IntType, decl.Type)
	assert.Equal(t, "x", decl.Name)
	bin, ok := decl.Value.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestParse_ExpressionPrecedence(t *testing.T) {
	prog, err := Parse(`int x = 1 + 2 * 3;`)
	require.NoError(t, err)
	decl := prog.Statements[0].(*ast.VarDecl)

	top, ok := decl.Value.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", top.Op)

	_, leftIsNumber := top.Left.(*ast.Number)
	assert.True(t, leftIsNumber)

	right, ok := top.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", right.Op)
}

func TestParse_IfElse(t *testing.T) {
	src := `
	int x = 0;
	if (x < 1) {
		x = 1;
	} else {
		x = 2;
	}
	`
	prog, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 2)

	ifNode, ok := prog.Statements[1].(*ast.If)
	require.True(t, ok)
	require.Len(t, ifNode.Conditions, 1)
	require.Len(t, ifNode.Bodies, 2)
	assert.Len(t, ifNode.Bodies[0].Statements, 1)
	assert.Len(t, ifNode.Bodies[1].Statements, 1)
}

func TestParse_ElseIfChain(t *testing.T) {
	src := `
	int n = 1;
	if (n == 0) {
		n = 10;
	} else if (n == 1) {
		n = 11;
	} else if (n == 2) {
		n = 12;
	} else {
		n = 99;
	}
	`
	prog, err := Parse(src)
	require.NoError(t, err)
	ifNode, ok := prog.Statements[1].(*ast.If)
	require.True(t, ok)
	require.Len(t, ifNode.Conditions, 3)
	require.Len(t, ifNode.Bodies, 4)
}

func TestParse_ZeroArgCallParsesToEmptySentinel(t *testing.T) {
	prog, err := Parse(`int x = f();`)
	require.NoError(t, err)
	decl := prog.Statements[0].(*ast.VarDecl)
	call, ok := decl.Value.(*ast.FunctionCall)
	require.True(t, ok)
	require.Len(t, call.Args, 1)
	_, isEmpty := call.Args[0].(*ast.Empty)
	assert.True(t, isEmpty)
}

func TestParse_WhileAndBreak(t *testing.T) {
	src := `
	while (1) {
		break;
	}
	`
	prog, err := Parse(src)
	require.NoError(t, err)
	loop, ok := prog.Statements[0].(*ast.While)
	require.True(t, ok)
	require.Len(t, loop.Body.Statements, 1)
	_, isBreak := loop.Body.Statements[0].(*ast.Break)
	assert.True(t, isBreak)
}

func TestParse_ForLoop(t *testing.T) {
	src := `
	for (int i = 0; i < 10; i = i + 1) {
		continue;
	}
	`
	prog, err := Parse(src)
	require.NoError(t, err)
	loop, ok := prog.Statements[0].(*ast.For)
	require.True(t, ok)

	init, ok := loop.Init.(*ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "i", init.Name)

	post, ok := loop.Post.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "i", post.Name)
}

func TestParse_FunctionDeclAndCall(t *testing.T) {
	src := `
	int add(int a, int b) {
		return a + b;
	}
	int result = add(1, 2);
	`
	prog, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 2)

	fn, ok := prog.Statements[0].(*ast.FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, ast.IntType, fn.ReturnType)

	decl := prog.Statements[1].(*ast.VarDecl)
	call, ok := decl.Value.(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "add", call.Name)
	assert.Len(t, call.Args, 2)
}

func TestParse_BareReturn(t *testing.T) {
	src := `
	void noop() {
		return;
	}
	`
	prog, err := Parse(src)
	require.NoError(t, err)
	fn := prog.Statements[0].(*ast.FunctionDecl)
	ret, ok := fn.Body.Statements[0].(*ast.Return)
	require.True(t, ok)
	_, isEmpty := ret.Value.(*ast.Empty)
	assert.True(t, isEmpty)
}

func TestParse_RejectsShadowingBuiltin(t *testing.T) {
	_, err := Parse(`int print(int x) { return x; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shadows a built-in")
}

func TestParse_UnterminatedBlockIsSyntaxError(t *testing.T) {
	_, err := Parse(`int main() { int x = 1;`)
	require.Error(t, err)
}

func TestParse_StopsOnFirstError(t *testing.T) {
	// Two consecutive syntax errors: only the first is reported.
	_, err := Parse(`int x = ; int y = ;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1, column 9")
}
