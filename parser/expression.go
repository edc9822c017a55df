/*
File    : littlearn/parser/expression.go
Author  : akashmaji946
*/
package parser

import (
	"github.com/akashmaji946/littlearn/ast"
	"github.com/akashmaji946/littlearn/lexer"
)

// precedence levels, lowest to highest. Expression parsing is precedence
// climbing over this fixed table: each level parses its operands by
// recursing into the next-higher level, then folds in any operators at
// its own level left-associatively.
var precedenceLevels = [][]lexer.TokenType{
	{lexer.OR_OP},
	{lexer.AND_OP},
	{lexer.EQ_OP, lexer.NE_OP},
	{lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP},
	{lexer.PLUS_OP, lexer.MINUS_OP},
	{lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP},
}

// parseExpression parses a full expression at the lowest precedence
// level. Littlearn has no unary operators (negative numeric literals are
// folded into a single token by the lexer, and spec.md's grammar never
// accepts a prefix "!"), so every expression bottoms out at parsePrimary.
func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseLevel(0)
}

func (p *Parser) parseLevel(level int) (ast.Expr, error) {
	if level >= len(precedenceLevels) {
		return p.parsePrimary()
	}
	left, err := p.parseLevel(level + 1)
	if err != nil {
		return nil, err
	}
	for isOneOf(p.current().Type, precedenceLevels[level]) {
		opTok := p.advance()
		right, err := p.parseLevel(level + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: string(opTok.Type), Left: left, Right: right}
	}
	return left, nil
}

func isOneOf(tt lexer.TokenType, set []lexer.TokenType) bool {
	for _, s := range set {
		if tt == s {
			return true
		}
	}
	return false
}

// parsePrimary parses a number literal, a variable access, a function
// call, or a parenthesized sub-expression.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.current()
	switch tok.Type {
	case lexer.INT_LIT:
		p.advance()
		return &ast.Number{Type: ast.IntType, Lexeme: tok.Literal}, nil
	case lexer.FLOAT_LIT:
		p.advance()
		return &ast.Number{Type: ast.FloatType, Lexeme: tok.Literal}, nil
	case lexer.LEFT_PAREN:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return inner, nil
	case lexer.IDENTIFIER_ID:
		p.advance()
		if p.current().Type == lexer.LEFT_PAREN {
			return p.parseCallArgs(tok.Literal)
		}
		return &ast.VarAccess{Name: tok.Literal}, nil
	default:
		return nil, syntaxErrorAt(tok, "expected an expression, found %q", tok.Literal)
	}
}
