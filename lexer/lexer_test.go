/*
File    : littlearn/lexer/lexer_test.go
Author  : akashmaji946
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenizeCase struct {
	Name     string
	Input    string
	Expected []Token
}

func tokenizeAll(src string) []Token {
	lex := NewLexer(src)
	return lex.Tokenize()
}

func assertLiterals(t *testing.T, tokens []Token, want []Token) {
	t.Helper()
	if !assert.Len(t, tokens, len(want)) {
		return
	}
	for i, w := range want {
		assert.Equal(t, w.Type, tokens[i].Type, "token %d type", i)
		assert.Equal(t, w.Literal, tokens[i].Literal, "token %d literal", i)
	}
}

func TestLexer_Arithmetic(t *testing.T) {
	cases := []tokenizeCase{
		{
			Name:  "simple addition and subtraction",
			Input: ` 123 + 2   31 - 12 `,
			Expected: []Token{
				NewToken(INT_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(INT_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "12"),
			},
		},
		{
			Name:  "braces parens identifiers",
			Input: ` { } ( )  abc - a12 `,
			Expected: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			Name:  "keywords and comparisons",
			Input: `if (x <= 10) { return x; }`,
			Expected: []Token{
				NewToken(IF_KEY, "if"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(LE_OP, "<="),
				NewToken(INT_LIT, "10"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assertLiterals(t, tokenizeAll(c.Input), c.Expected)
		})
	}
}

func TestLexer_NegativeLiteralDisambiguation(t *testing.T) {
	// "a - 1" is subtraction: '-' follows an identifier.
	assertLiterals(t, tokenizeAll(`a - 1`), []Token{
		NewToken(IDENTIFIER_ID, "a"),
		NewToken(MINUS_OP, "-"),
		NewToken(INT_LIT, "1"),
	})

	// "foo(-4)" is a negative literal argument: '-' follows '('.
	assertLiterals(t, tokenizeAll(`foo(-4)`), []Token{
		NewToken(IDENTIFIER_ID, "foo"),
		NewToken(LEFT_PAREN, "("),
		NewToken(INT_LIT, "-4"),
		NewToken(RIGHT_PAREN, ")"),
	})

	// "3 - -4" : the first '-' is subtraction (follows a digit), the
	// second is a negative literal (follows the first '-', not a value).
	assertLiterals(t, tokenizeAll(`3 - -4`), []Token{
		NewToken(INT_LIT, "3"),
		NewToken(MINUS_OP, "-"),
		NewToken(INT_LIT, "-4"),
	})

	// ")-4" : a '-' after a closing paren is subtraction, not negation.
	assertLiterals(t, tokenizeAll(`(x)-4`), []Token{
		NewToken(LEFT_PAREN, "("),
		NewToken(IDENTIFIER_ID, "x"),
		NewToken(RIGHT_PAREN, ")"),
		NewToken(MINUS_OP, "-"),
		NewToken(INT_LIT, "4"),
	})
}

func TestLexer_FloatLiterals(t *testing.T) {
	assertLiterals(t, tokenizeAll(`x = -3.5 + 2.0`), []Token{
		NewToken(IDENTIFIER_ID, "x"),
		NewToken(ASSIGN_OP, "="),
		NewToken(FLOAT_LIT, "-3.5"),
		NewToken(PLUS_OP, "+"),
		NewToken(FLOAT_LIT, "2.0"),
	})
}

func TestLexer_LineCommentsAreSkipped(t *testing.T) {
	src := "int x = 1; // set x\nx = x + 1;"
	assertLiterals(t, tokenizeAll(src), []Token{
		NewToken(INT_KEY, "int"),
		NewToken(IDENTIFIER_ID, "x"),
		NewToken(ASSIGN_OP, "="),
		NewToken(INT_LIT, "1"),
		NewToken(SEMICOLON_DELIM, ";"),
		NewToken(IDENTIFIER_ID, "x"),
		NewToken(ASSIGN_OP, "="),
		NewToken(IDENTIFIER_ID, "x"),
		NewToken(PLUS_OP, "+"),
		NewToken(INT_LIT, "1"),
		NewToken(SEMICOLON_DELIM, ";"),
	})
}

func TestLexer_DoubleCharOperatorsPrecedeSingleChar(t *testing.T) {
	assertLiterals(t, tokenizeAll(`a == b != c && d || e >= f <= g`), []Token{
		NewToken(IDENTIFIER_ID, "a"),
		NewToken(EQ_OP, "=="),
		NewToken(IDENTIFIER_ID, "b"),
		NewToken(NE_OP, "!="),
		NewToken(IDENTIFIER_ID, "c"),
		NewToken(AND_OP, "&&"),
		NewToken(IDENTIFIER_ID, "d"),
		NewToken(OR_OP, "||"),
		NewToken(IDENTIFIER_ID, "e"),
		NewToken(GE_OP, ">="),
		NewToken(IDENTIFIER_ID, "f"),
		NewToken(LE_OP, "<="),
		NewToken(IDENTIFIER_ID, "g"),
	})
}

func TestLexer_LineAndColumnTracking(t *testing.T) {
	lex := NewLexer("x\ny")
	first := lex.NextToken()
	assert.Equal(t, 1, first.Line)
	second := lex.NextToken()
	assert.Equal(t, 2, second.Line)
	assert.Equal(t, 1, second.Column)
}
