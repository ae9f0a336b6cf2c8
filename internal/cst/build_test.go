package cst

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/earleycst/internal/chart"
	"github.com/dekarrin/earleycst/internal/grammar"
	"github.com/dekarrin/earleycst/internal/lex"
)

// sumGrammar is S -> S "+" S | <IntegerLiteral>, the same ambiguous,
// left-recursive shape the chart package's own tests use.
func sumGrammar() *grammar.Grammar {
	plus := grammar.Lit(lex.Punctuation, "+")
	return grammar.New("S", map[string][]grammar.Production{
		"S": {
			{Symbols: []grammar.Symbol{grammar.NT("S"), plus, grammar.NT("S")}},
			{Symbols: []grammar.Symbol{grammar.T(lex.IntegerLiteral)}},
		},
	})
}

func intTok(lexeme string) lex.Token {
	return lex.Token{Kind: lex.IntegerLiteral, Lexeme: lexeme}
}

func plusTok() lex.Token {
	return lex.Token{Kind: lex.Punctuation, Lexeme: "+"}
}

func Test_Build_singleNumber(t *testing.T) {
	assert := assert.New(t)

	g := sumGrammar()
	c, err := chart.Build(g, []lex.Token{intTok("1")})
	if !assert.NoError(err) || !assert.True(c.Accepts()) {
		return
	}

	tree, err := Build(c)
	if !assert.NoError(err) {
		return
	}

	nt, pi, children := tree.AsNonTerminal()
	assert.Equal("S", nt)
	assert.Equal(1, pi)
	if assert.Len(children, 1) {
		assert.True(children[0].IsTerminal())
		assert.Equal("1", children[0].AsTerminal().Lexeme)
	}
}

// Test_Build_ambiguousSum confirms the deterministic tie-break: for
// "1+2+3", the grammar admits both (1+2)+3 and 1+(2+3), and the builder
// must pick one consistently on every run.
func Test_Build_ambiguousSum(t *testing.T) {
	assert := assert.New(t)

	g := sumGrammar()
	tokens := []lex.Token{intTok("1"), plusTok(), intTok("2"), plusTok(), intTok("3")}
	c, err := chart.Build(g, tokens)
	if !assert.NoError(err) || !assert.True(c.Accepts()) {
		return
	}

	first, err := Build(c)
	if !assert.NoError(err) {
		return
	}
	second, err := Build(c)
	if !assert.NoError(err) {
		return
	}

	assert.Equal(first.String(), second.String(), "reconstruction must be deterministic across repeated runs over the same chart")
}

func Test_Node_String_leveled(t *testing.T) {
	assert := assert.New(t)

	g := sumGrammar()
	c, err := chart.Build(g, []lex.Token{intTok("1")})
	if !assert.NoError(err) {
		return
	}
	tree, err := Build(c)
	if !assert.NoError(err) {
		return
	}

	out := tree.String()
	assert.Contains(out, "( S #1 )")
	assert.Contains(out, `(TERM IntegerLiteral "1")`)
}

func Test_Build_rejectsWithoutAcceptingItem(t *testing.T) {
	assert := assert.New(t)

	g := sumGrammar()
	c, err := chart.Build(g, []lex.Token{intTok("1"), plusTok()})
	if !assert.NoError(err) {
		return
	}
	assert.False(c.Accepts())

	_, err = Build(c)
	assert.Error(err)
}
