/*
File    : littlearn/ast/node.go
Author  : akashmaji946
*/

// Package ast defines littlearn's abstract syntax tree as a closed set of
// tagged node variants. Each node type is a plain Go struct implementing
// Node; dispatch happens by type switch in the interpreter rather than
// through a virtual-method hierarchy, per the AST design note this
// package follows.
package ast

// NodeKind identifies which of littlearn's sixteen AST node variants a
// Node value is. It exists mainly so callers can switch on Kind() before
// doing a type assertion, mirroring the tagged-union style the parser
// and interpreter both rely on.
type NodeKind string

const (
	KindProgram     NodeKind = "Program"
	KindBlock       NodeKind = "Block"
	KindVarDecl     NodeKind = "VarDecl"
	KindAssign      NodeKind = "Assign"
	KindVarAccess   NodeKind = "VarAccess"
	KindNumber      NodeKind = "Number"
	KindBinary      NodeKind = "Binary"
	KindIf          NodeKind = "If"
	KindWhile       NodeKind = "While"
	KindFor         NodeKind = "For"
	KindBreak       NodeKind = "Break"
	KindContinue    NodeKind = "Continue"
	KindFunctionDecl NodeKind = "FunctionDecl"
	KindFunctionCall NodeKind = "FunctionCall"
	KindReturn      NodeKind = "Return"
	KindEmpty       NodeKind = "Empty"
)

// Node is implemented by every AST node variant.
type Node interface {
	Kind() NodeKind
	String() string
}

// Expr is a Node that produces a value when evaluated. Declared
// separately from Node so the parser's expression-parsing helpers can
// require it without a type assertion at every call site.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a Node that is executed for effect. Most expressions are also
// valid statements (an ExpressionStatement wrapper is unnecessary here
// because every Expr already implements Node and can appear directly in
// a Block's Statements slice).
type Stmt interface {
	Node
}

// ValueType names the two declarable scalar types plus the function
// return annotation "void", used by VarDecl and FunctionDecl/parameter
// lists.
type ValueType string

const (
	IntType   ValueType = "int"
	FloatType ValueType = "float"
	VoidType  ValueType = "void"
)
