package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/earleycst/internal/cst"
	"github.com/dekarrin/earleycst/internal/grammar"
	"github.com/dekarrin/earleycst/internal/synerr"
)

// findNonTerminal does a depth-first search for the first node of the given
// nonterminal and production index.
func findNonTerminal(n *cst.Node, nonTerminal string, prodIndex int) *cst.Node {
	if n == nil || n.IsTerminal() {
		return nil
	}
	nt, pi, children := n.AsNonTerminal()
	if nt == nonTerminal && pi == prodIndex {
		return n
	}
	for _, child := range children {
		if found := findNonTerminal(child, nonTerminal, prodIndex); found != nil {
			return found
		}
	}
	return nil
}

// collectLeaves returns the lexemes of every terminal under n, in order.
func collectLeaves(n *cst.Node) []string {
	if n == nil {
		return nil
	}
	if n.IsTerminal() {
		return []string{n.AsTerminal().Lexeme}
	}
	_, _, children := n.AsNonTerminal()
	var leaves []string
	for _, child := range children {
		leaves = append(leaves, collectLeaves(child)...)
	}
	return leaves
}

func Test_Parse_accepts(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{
			name: "empty program",
			src:  "",
		},
		{
			name: "minimal function",
			src:  "fn main() {}",
		},
		{
			name: "function returning an expression",
			src:  "fn add(a: i32, b: i32) -> i32 { a + b }",
		},
		{
			name: "struct with fields",
			src:  "struct Point { x: i32, y: i32 }",
		},
		{
			name: "let statement with nested block comment",
			src:  "fn main() { /* outer /* inner */ still outer */ let x = 1; }",
		},
		{
			name: "if/else expression",
			src:  "fn main() { if x { 1 } else { 2 }; }",
		},
		{
			name: "match expression",
			src:  "fn main() { match x { 1 => 2, _ => 3 } }",
		},
		{
			name: "method call chain",
			src:  "fn main() { a.b().c[0] + 1; }",
		},
		{
			name: "impl method with a borrowed self receiver",
			src:  "impl Foo { fn bar(&self) {} }",
		},
		{
			name: "impl method returning Self",
			src:  "impl Foo { fn new() -> Self { Foo } }",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			result, err := Parse(grammar.Surface, tc.src)
			if !assert.NoError(err) {
				return
			}
			assert.NotEmpty(result.RunID)
			assert.NotNil(result.Tree)
		})
	}
}

// Test_Parse_multiplicationBindsTighterThanAddition checks the actual tree
// shape for "1 + 2 * 3": multiplication must group 2 and 3 as siblings
// under a MultiplicativeExpression, and that node must be the right
// operand of the "+", never "1 + 2" grouped first.
func Test_Parse_multiplicationBindsTighterThanAddition(t *testing.T) {
	assert := assert.New(t)

	result, err := Parse(grammar.Surface, "fn f() { 1 + 2 * 3 ; }")
	if !assert.NoError(err) {
		return
	}

	mult := findNonTerminal(result.Tree, "MultiplicativeExpression", 0)
	if !assert.NotNil(mult, "expected a binary MultiplicativeExpression node for 2 * 3") {
		return
	}
	assert.Equal([]string{"2", "*", "3"}, collectLeaves(mult))

	add := findNonTerminal(result.Tree, "AdditiveExpression", 0)
	if !assert.NotNil(add, "expected a binary AdditiveExpression node for 1 + (2 * 3)") {
		return
	}
	assert.Equal([]string{"1", "+", "2", "*", "3"}, collectLeaves(add))

	_, _, addChildren := add.AsNonTerminal()
	if assert.Len(addChildren, 3) {
		assert.Equal([]string{"1"}, collectLeaves(addChildren[0]), "left operand of + must be just 1, never 1 + 2")
		assert.Equal([]string{"2", "*", "3"}, collectLeaves(addChildren[2]), "right operand of + must be the full 2 * 3 grouping")
	}
}

func Test_Parse_rejects(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{name: "unbalanced brace", src: "fn main() {"},
		{name: "missing semicolon forces incomplete statement", src: "fn main() { let x = 1 let y = 2; }"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			_, err := Parse(grammar.Surface, tc.src)
			assert.Error(err)
		})
	}
}

func Test_Parse_reportsLexerErrorDistinctly(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse(grammar.Surface, `fn main() { "unterminated }`)
	assert.Error(err)

	kind, ok := synerr.KindOf(err)
	assert.True(ok)
	assert.Equal(synerr.KindLexer, kind)
}
