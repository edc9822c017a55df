/*
File    : littlearn/interp/expressions.go
Author  : akashmaji946
*/
package interp

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/littlearn/ast"
	"github.com/akashmaji946/littlearn/frame"
	"github.com/akashmaji946/littlearn/values"
)

// evalExpr evaluates an expression node to a values.Value.
func (in *Interpreter) evalExpr(node ast.Expr, fr *frame.Frame) (values.Value, error) {
	switch n := node.(type) {
	case *ast.Number:
		return numberValue(n)
	case *ast.VarAccess:
		v, ok := fr.LookupVariable(n.Name)
		if !ok {
			return nil, fmt.Errorf("variable %q is not declared", n.Name)
		}
		return v, nil
	case *ast.Assign:
		val, err := in.evalExpr(n.Value, fr)
		if err != nil {
			return nil, err
		}
		if err := fr.Assign(n.Name, val); err != nil {
			return nil, err
		}
		return val, nil
	case *ast.Binary:
		return in.evalBinary(n, fr)
	case *ast.FunctionCall:
		return in.callFunction(n, fr)
	case *ast.Empty:
		return values.Int{V: 0}, nil
	default:
		return nil, fmt.Errorf("unsupported expression node %T", node)
	}
}

func numberValue(n *ast.Number) (values.Value, error) {
	if n.Type == ast.FloatType {
		f, err := strconv.ParseFloat(n.Lexeme, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float literal %q", n.Lexeme)
		}
		return values.Float{V: f}, nil
	}
	i, err := strconv.ParseInt(n.Lexeme, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid int literal %q", n.Lexeme)
	}
	return values.Int{V: i}, nil
}

// evalBinary implements arithmetic, comparison, and logical operators.
// Arithmetic promotes to float if either operand is a float (the
// original's rule); comparison and logical operators always evaluate
// both operands (no short-circuiting) and produce Int{0}/Int{1}.
func (in *Interpreter) evalBinary(n *ast.Binary, fr *frame.Frame) (values.Value, error) {
	left, err := in.evalExpr(n.Left, fr)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(n.Right, fr)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "&&":
		lt, err := toBool(left)
		if err != nil {
			return nil, err
		}
		rt, err := toBool(right)
		if err != nil {
			return nil, err
		}
		return boolValue(lt && rt), nil
	case "||":
		lt, err := toBool(left)
		if err != nil {
			return nil, err
		}
		rt, err := toBool(right)
		if err != nil {
			return nil, err
		}
		return boolValue(lt || rt), nil
	}

	li, lIsInt := left.(values.Int)
	ri, rIsInt := right.(values.Int)
	bothInt := lIsInt && rIsInt

	switch n.Op {
	case "+", "-", "*", "/":
		if bothInt {
			return intArith(n.Op, li.V, ri.V)
		}
		lf, err := toFloat(left)
		if err != nil {
			return nil, err
		}
		rf, err := toFloat(right)
		if err != nil {
			return nil, err
		}
		return floatArith(n.Op, lf, rf)
	case "%":
		// '%' always truncates to int, even on a float-promoted
		// expression, matching the original's modulo handling.
		li, err := toInt(left)
		if err != nil {
			return nil, err
		}
		ri, err := toInt(right)
		if err != nil {
			return nil, err
		}
		if ri == 0 {
			return nil, fmt.Errorf("modulo by zero")
		}
		return values.Int{V: li % ri}, nil
	case "==", "!=", "<", ">", "<=", ">=":
		if bothInt {
			return boolValue(intCompare(n.Op, li.V, ri.V)), nil
		}
		lf, err := toFloat(left)
		if err != nil {
			return nil, err
		}
		rf, err := toFloat(right)
		if err != nil {
			return nil, err
		}
		return boolValue(floatCompare(n.Op, lf, rf)), nil
	default:
		return nil, fmt.Errorf("unsupported operator %q", n.Op)
	}
}

func intArith(op string, a, b int64) (values.Value, error) {
	switch op {
	case "+":
		return values.Int{V: a + b}, nil
	case "-":
		return values.Int{V: a - b}, nil
	case "*":
		return values.Int{V: a * b}, nil
	case "/":
		if b == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return values.Int{V: a / b}, nil
	}
	return nil, fmt.Errorf("unsupported integer operator %q", op)
}

func floatArith(op string, a, b float64) (values.Value, error) {
	switch op {
	case "+":
		return values.Float{V: a + b}, nil
	case "-":
		return values.Float{V: a - b}, nil
	case "*":
		return values.Float{V: a * b}, nil
	case "/":
		if b == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return values.Float{V: a / b}, nil
	}
	return nil, fmt.Errorf("unsupported float operator %q", op)
}

func intCompare(op string, a, b int64) bool {
	switch op {
	case "==":
		return a == b
	case "!=":
		return a != b
	case "<":
		return a < b
	case ">":
		return a > b
	case "<=":
		return a <= b
	case ">=":
		return a >= b
	}
	return false
}

func floatCompare(op string, a, b float64) bool {
	switch op {
	case "==":
		return a == b
	case "!=":
		return a != b
	case "<":
		return a < b
	case ">":
		return a > b
	case "<=":
		return a <= b
	case ">=":
		return a >= b
	}
	return false
}

func boolValue(b bool) values.Value {
	if b {
		return values.Int{V: 1}
	}
	return values.Int{V: 0}
}

func toInt(v values.Value) (int64, error) {
	switch n := v.(type) {
	case values.Int:
		return n.V, nil
	case values.Float:
		return int64(n.V), nil
	default:
		return 0, fmt.Errorf("expected a numeric value, got %s", n.Kind())
	}
}

func toFloat(v values.Value) (float64, error) {
	switch n := v.(type) {
	case values.Int:
		return float64(n.V), nil
	case values.Float:
		return n.V, nil
	default:
		return 0, fmt.Errorf("expected a numeric value, got %s", n.Kind())
	}
}

func toBool(v values.Value) (bool, error) {
	switch n := v.(type) {
	case values.Int:
		return n.V != 0, nil
	case values.Float:
		return n.V != 0, nil
	default:
		return false, fmt.Errorf("expected a numeric value, got %s", n.Kind())
	}
}
