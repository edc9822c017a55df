/*
File    : littlearn/parser/parser.go
Author  : akashmaji946
*/

// Package parser turns a littlearn token stream into an ast.Program.
// Unlike the teacher's Pratt parser, which collects every error it finds
// before returning, this parser halts on the first syntax error: the
// language's error-handling design treats a syntax error as fatal to
// the whole parse, not something to recover from and keep reporting.
package parser

import (
	"fmt"

	"github.com/akashmaji946/littlearn/ast"
	"github.com/akashmaji946/littlearn/lexer"
)

// Parser holds the full token stream (produced up front by the lexer)
// and a cursor into it: whole-program tokenization up front, rather
// than token-at-a-time, so parseIf's one-token lookahead for an
// "else if" versus a bare "else" never has to re-lex.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// NewParser tokenizes src and returns a Parser positioned before the
// first token.
func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)
	return &Parser{tokens: lex.Tokenize()}
}

func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.NewToken(lexer.EOF_TYPE, "EOF")
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek(offset int) lexer.Token {
	i := p.pos + offset
	if i < 0 || i >= len(p.tokens) {
		return lexer.NewToken(lexer.EOF_TYPE, "EOF")
	}
	return p.tokens[i]
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	p.pos++
	return tok
}

// expect consumes the current token if it has type tt, otherwise returns
// a syntax error naming what was expected and what was actually found.
func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	tok := p.current()
	if tok.Type != tt {
		return tok, fmt.Errorf("syntax error at line %d, column %d: expected %s, found %q",
			tok.Line, tok.Column, tt, tok.Literal)
	}
	return p.advance(), nil
}

func (p *Parser) atEOF() bool {
	return p.current().Type == lexer.EOF_TYPE
}

func syntaxErrorAt(tok lexer.Token, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("syntax error at line %d, column %d: %s", tok.Line, tok.Column, msg)
}

// Parse tokenizes and parses the whole program, returning on the first
// syntax error encountered.
func Parse(src string) (*ast.Program, error) {
	p := NewParser(src)
	return p.ParseProgram()
}

// ParseProgram parses every top-level statement until EOF.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{Statements: make([]ast.Node, 0)}
	for !p.atEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}
