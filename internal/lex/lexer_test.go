package lex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Lex(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []Token
	}{
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "single identifier",
			input: "foo",
			expect: []Token{
				{Kind: Identifier, Lexeme: "foo", Line: 1, LinePos: 1},
			},
		},
		{
			name:  "keyword is not an identifier",
			input: "fn",
			expect: []Token{
				{Kind: Keyword, Lexeme: "fn", Line: 1, LinePos: 1},
			},
		},
		{
			name:  "integer literal",
			input: "12345",
			expect: []Token{
				{Kind: IntegerLiteral, Lexeme: "12345", Line: 1, LinePos: 1},
			},
		},
		{
			name:  "maximal munch on punctuation",
			input: "->",
			expect: []Token{
				{Kind: Punctuation, Lexeme: "->", Line: 1, LinePos: 1},
			},
		},
		{
			name:  "maximal munch prefers longer operator over shorter prefix",
			input: "<<=",
			expect: []Token{
				{Kind: Punctuation, Lexeme: "<<", Line: 1, LinePos: 1},
				{Kind: Punctuation, Lexeme: "=", Line: 1, LinePos: 3},
			},
		},
		{
			name:  "nested block comment",
			input: "/* outer /* inner */ still outer */",
			expect: []Token{
				{Kind: Comment, Lexeme: "/* outer /* inner */ still outer */", Line: 1, LinePos: 1},
			},
		},
		{
			name:  "line comment stops at newline",
			input: "// a comment\nx",
			expect: []Token{
				{Kind: Comment, Lexeme: "// a comment", Line: 1, LinePos: 1},
				{Kind: Whitespace, Lexeme: "\n", Line: 1, LinePos: 13},
				{Kind: Identifier, Lexeme: "x", Line: 2, LinePos: 1},
			},
		},
		{
			name:  "string literal with escapes",
			input: `"a\n\tb"`,
			expect: []Token{
				{Kind: StringLiteral, Lexeme: `"a\n\tb"`, Line: 1, LinePos: 1},
			},
		},
		{
			name:  "char literal with escape",
			input: `'\''`,
			expect: []Token{
				{Kind: CharLiteral, Lexeme: `'\''`, Line: 1, LinePos: 1},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			toks, err := Lex(tc.input)
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, toks)
		})
	}
}

// Test_Lex_deeplyNestedBlockComment checks that the nesting-depth counter
// tracks well past a single level: eight opens matched by eight closes lex
// as one comment token spanning the whole input.
func Test_Lex_deeplyNestedBlockComment(t *testing.T) {
	assert := assert.New(t)

	const depth = 8
	var sb strings.Builder
	for i := 0; i < depth; i++ {
		sb.WriteString("/* ")
	}
	sb.WriteString("core")
	for i := 0; i < depth; i++ {
		sb.WriteString(" */")
	}
	input := sb.String()

	toks, err := Lex(input)
	if !assert.NoError(err) {
		return
	}
	if assert.Len(toks, 1) {
		assert.Equal(Comment, toks[0].Kind)
		assert.Equal(input, toks[0].Lexeme)
	}
}

func Test_Lex_errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "unterminated string", input: `"abc`},
		{name: "unterminated char", input: `'a`},
		{name: "unterminated block comment", input: `/* abc`},
		{name: "unterminated escape", input: `"\`},
		{name: "invalid escape", input: `"\q"`},
		{name: "unrecognized character", input: "`"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			_, err := Lex(tc.input)
			assert.Error(err)
		})
	}
}

func Test_Filter(t *testing.T) {
	assert := assert.New(t)

	toks := []Token{
		{Kind: Whitespace, Lexeme: " "},
		{Kind: Identifier, Lexeme: "x"},
		{Kind: Comment, Lexeme: "// hi"},
		{Kind: Punctuation, Lexeme: ";"},
	}

	filtered := Filter(toks)

	assert.Equal([]Token{
		{Kind: Identifier, Lexeme: "x"},
		{Kind: Punctuation, Lexeme: ";"},
	}, filtered)

	// input slice must be untouched
	assert.Equal(Whitespace, toks[0].Kind)
}
