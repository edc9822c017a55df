/*
File    : littlearn/parser/statements.go
Author  : akashmaji946
*/
package parser

import (
	"github.com/akashmaji946/littlearn/ast"
	"github.com/akashmaji946/littlearn/builtins"
	"github.com/akashmaji946/littlearn/lexer"
)

// parseStatement parses exactly one statement (including the semicolon
// or closing brace that terminates it) and advances past it.
func (p *Parser) parseStatement() (ast.Node, error) {
	tok := p.current()
	switch tok.Type {
	case lexer.LEFT_BRACE:
		return p.parseBlock()
	case lexer.IF_KEY:
		return p.parseIf()
	case lexer.WHILE_KEY:
		return p.parseWhile()
	case lexer.FOR_KEY:
		return p.parseFor()
	case lexer.BREAK_KEY:
		p.advance()
		if _, err := p.expect(lexer.SEMICOLON_DELIM); err != nil {
			return nil, err
		}
		return &ast.Break{}, nil
	case lexer.CONTINUE_KEY:
		p.advance()
		if _, err := p.expect(lexer.SEMICOLON_DELIM); err != nil {
			return nil, err
		}
		return &ast.Continue{}, nil
	case lexer.RETURN_KEY:
		return p.parseReturn()
	case lexer.INT_KEY, lexer.FLOAT_KEY, lexer.VOID_KEY:
		return p.parseDeclaration()
	case lexer.IDENTIFIER_ID:
		return p.parseIdentifierStatement()
	default:
		return nil, syntaxErrorAt(tok, "unexpected token %q", tok.Literal)
	}
}

// parseBlock parses "{ stmt* }".
func (p *Parser) parseBlock() (*ast.Block, error) {
	if _, err := p.expect(lexer.LEFT_BRACE); err != nil {
		return nil, err
	}
	block := &ast.Block{Statements: make([]ast.Node, 0)}
	for p.current().Type != lexer.RIGHT_BRACE {
		if p.atEOF() {
			return nil, syntaxErrorAt(p.current(), "unterminated block, expected '}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	p.advance() // consume '}'
	return block, nil
}

// parseDeclaration parses either a VarDecl ("int x = expr;") or a
// FunctionDecl ("int foo(...) { ... }"/"void foo(...) { ... }"),
// disambiguated by looking past the identifier for '(' vs '='.
func (p *Parser) parseDeclaration() (ast.Node, error) {
	typeTok := p.advance()
	valueType := ast.ValueType(typeTok.Literal)

	nameTok, err := p.expect(lexer.IDENTIFIER_ID)
	if err != nil {
		return nil, err
	}

	if p.current().Type == lexer.LEFT_PAREN {
		return p.parseFunctionDecl(valueType, nameTok.Literal)
	}

	if valueType == ast.VoidType {
		return nil, syntaxErrorAt(p.current(), "void is only valid as a function return type")
	}

	if _, err := p.expect(lexer.ASSIGN_OP); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON_DELIM); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Type: valueType, Name: nameTok.Literal, Value: value}, nil
}

// parseFunctionDecl parses "( paramList ) block" given the return type
// and name were already consumed. Rejects a name that collides with a
// builtin: builtin lookup always runs first at call time, so a
// same-named user function could never be called.
func (p *Parser) parseFunctionDecl(returnType ast.ValueType, name string) (ast.Node, error) {
	if builtins.IsBuiltin(name) {
		return nil, syntaxErrorAt(p.current(), "function %q shadows a built-in function of the same name", name)
	}
	if _, err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	params := make([]ast.Param, 0)
	for p.current().Type != lexer.RIGHT_PAREN {
		if len(params) > 0 {
			if _, err := p.expect(lexer.COMMA_DELIM); err != nil {
				return nil, err
			}
		}
		pTypeTok := p.current()
		if pTypeTok.Type != lexer.INT_KEY && pTypeTok.Type != lexer.FLOAT_KEY {
			return nil, syntaxErrorAt(pTypeTok, "expected a parameter type, found %q", pTypeTok.Literal)
		}
		p.advance()
		pNameTok, err := p.expect(lexer.IDENTIFIER_ID)
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Type: ast.ValueType(pTypeTok.Literal), Name: pNameTok.Literal})
	}
	p.advance() // consume ')'

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDecl{Name: name, Params: params, ReturnType: returnType, Body: body}, nil
}

// parseIdentifierStatement parses either an assignment ("x = expr;") or
// a bare function-call statement ("foo(args);"), disambiguated by the
// token following the identifier.
func (p *Parser) parseIdentifierStatement() (ast.Node, error) {
	nameTok := p.advance()

	if p.current().Type == lexer.LEFT_PAREN {
		call, err := p.parseCallArgs(nameTok.Literal)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMICOLON_DELIM); err != nil {
			return nil, err
		}
		return call, nil
	}

	if _, err := p.expect(lexer.ASSIGN_OP); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON_DELIM); err != nil {
		return nil, err
	}
	return &ast.Assign{Name: nameTok.Literal, Value: value}, nil
}

// parseIf parses "if (expr) block ('else' 'if' (expr) block)* ('else'
// block)?" into a single If node carrying the parallel condition/body
// lists, so the else-if chain is a flat sequence, not nested Ifs.
func (p *Parser) parseIf() (ast.Node, error) {
	node := &ast.If{}

	cond, body, err := p.parseIfHead()
	if err != nil {
		return nil, err
	}
	node.Conditions = append(node.Conditions, cond)
	node.Bodies = append(node.Bodies, body)

	for p.current().Type == lexer.ELSE_KEY && p.peek(1).Type == lexer.IF_KEY {
		p.advance() // 'else'
		cond, body, err := p.parseIfHead()
		if err != nil {
			return nil, err
		}
		node.Conditions = append(node.Conditions, cond)
		node.Bodies = append(node.Bodies, body)
	}

	if p.current().Type == lexer.ELSE_KEY {
		p.advance()
		elseBlock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Bodies = append(node.Bodies, elseBlock)
	}

	return node, nil
}

// parseIfHead parses "'if' '(' expr ')' block", shared by the leading
// "if" and every "else if" in the chain.
func (p *Parser) parseIfHead() (ast.Expr, *ast.Block, error) {
	p.advance() // 'if'
	if _, err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, nil, err
	}
	return cond, body, nil
}

func (p *Parser) parseWhile() (ast.Node, error) {
	p.advance() // 'while'
	if _, err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Condition: cond, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Node, error) {
	p.advance() // 'for'
	if _, err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}

	init, err := p.parseDeclaration()
	if err != nil {
		return nil, err
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON_DELIM); err != nil {
		return nil, err
	}

	post, err := p.parseBareAssignOrCall()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.For{Init: init, Condition: cond, Post: post, Body: body}, nil
}

// parseBareAssignOrCall parses a single assignment or call expression
// used as the post-clause of a for-loop header, i.e. without the
// trailing semicolon a statement would otherwise require.
func (p *Parser) parseBareAssignOrCall() (ast.Node, error) {
	nameTok, err := p.expect(lexer.IDENTIFIER_ID)
	if err != nil {
		return nil, err
	}
	if p.current().Type == lexer.LEFT_PAREN {
		return p.parseCallArgs(nameTok.Literal)
	}
	if _, err := p.expect(lexer.ASSIGN_OP); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Name: nameTok.Literal, Value: value}, nil
}

func (p *Parser) parseReturn() (ast.Node, error) {
	p.advance() // 'return'
	if p.current().Type == lexer.SEMICOLON_DELIM {
		p.advance()
		return &ast.Return{Value: &ast.Empty{}}, nil
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMICOLON_DELIM); err != nil {
		return nil, err
	}
	return &ast.Return{Value: value}, nil
}

// parseCallArgs parses "( expr, expr, ... )" for a call to name, already
// consumed. An empty argument list parses to a single Empty sentinel
// argument ("f()" -> Args=[Empty]), matching the documented AST shape
// (ast.FunctionCall) and the boundary case in spec §8.
func (p *Parser) parseCallArgs(name string) (*ast.FunctionCall, error) {
	if _, err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	args := make([]ast.Expr, 0)
	for p.current().Type != lexer.RIGHT_PAREN {
		if len(args) > 0 {
			if _, err := p.expect(lexer.COMMA_DELIM); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.advance() // consume ')'
	if len(args) == 0 {
		args = append(args, &ast.Empty{})
	}
	return &ast.FunctionCall{Name: name, Args: args}, nil
}
