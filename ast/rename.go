/*
File    : littlearn/ast/rename.go
Author  : akashmaji946
*/
package ast

// RenameIdentifier rewrites every variable name `from` to `to` within
// node (VarDecl, Assign and VarAccess names), recursing into every nested
// statement/expression. Function names in declarations and calls and
// parameter names are left unchanged. Neither the parser nor the
// interpreter calls it.
func RenameIdentifier(node Node, from, to string) {
	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			RenameIdentifier(s, from, to)
		}
	case *Block:
		for _, s := range n.Statements {
			RenameIdentifier(s, from, to)
		}
	case *VarDecl:
		if n.Name == from {
			n.Name = to
		}
		RenameIdentifier(n.Value, from, to)
	case *Assign:
		if n.Name == from {
			n.Name = to
		}
		RenameIdentifier(n.Value, from, to)
	case *VarAccess:
		if n.Name == from {
			n.Name = to
		}
	case *Binary:
		RenameIdentifier(n.Left, from, to)
		RenameIdentifier(n.Right, from, to)
	case *If:
		for _, c := range n.Conditions {
			RenameIdentifier(c, from, to)
		}
		for _, b := range n.Bodies {
			RenameIdentifier(b, from, to)
		}
	case *While:
		RenameIdentifier(n.Condition, from, to)
		RenameIdentifier(n.Body, from, to)
	case *For:
		RenameIdentifier(n.Init, from, to)
		RenameIdentifier(n.Condition, from, to)
		RenameIdentifier(n.Post, from, to)
		RenameIdentifier(n.Body, from, to)
	case *FunctionCall:
		for _, a := range n.Args {
			RenameIdentifier(a, from, to)
		}
	case *Return:
		RenameIdentifier(n.Value, from, to)
	case *FunctionDecl:
		RenameIdentifier(n.Body, from, to)
	case *Number, *Break, *Continue, *Empty, nil:
		// nothing to rename
	}
}
