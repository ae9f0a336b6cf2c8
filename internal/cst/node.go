// Package cst builds the concrete syntax tree from a completed chart by
// rightmost-derivation recovery: starting from the accepting item, children
// are filled right-to-left, and whenever more than one completed item could
// fill a slot, the one with the largest span-origin wins, with smallest
// production index breaking any remaining tie.
package cst

import (
	"fmt"
	"strings"

	"github.com/dekarrin/earleycst/internal/lex"
)

// Kind distinguishes a terminal leaf from a nonterminal interior node. The
// CST uses a tagged sum rather than per-nonterminal struct types or a
// polymorphic interface hierarchy: one Node shape covers all ~110
// nonterminal and 6 terminal varieties, discriminated by Kind (and, for
// nonterminals, by NonTerminal/ProductionIndex), instead of one struct type
// per production.
type Kind int

const (
	NonTerminalNode Kind = iota
	TerminalNode
)

func (k Kind) String() string {
	switch k {
	case NonTerminalNode:
		return "NonTerminalNode"
	case TerminalNode:
		return "TerminalNode"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is one point in the concrete syntax tree. A terminal Node carries the
// lexed Token it was recovered from and has no Children; a nonterminal Node
// names which production of NonTerminal was used (ProductionIndex, into
// that nonterminal's ordered production list) and carries one Child per
// symbol of that production, in left-to-right grammar order regardless of
// the right-to-left order recovery filled them in.
type Node struct {
	Kind Kind

	// Populated when Kind == NonTerminalNode.
	NonTerminal     string
	ProductionIndex int
	Children        []*Node

	// Populated when Kind == TerminalNode.
	Token lex.Token
}

// IsTerminal reports whether n is a leaf.
func (n *Node) IsTerminal() bool {
	return n.Kind == TerminalNode
}

// AsNonTerminal returns n's nonterminal name, production index, and
// children. Panics if n is not a NonTerminalNode.
func (n *Node) AsNonTerminal() (string, int, []*Node) {
	if n.Kind != NonTerminalNode {
		panic(fmt.Sprintf("AsNonTerminal called on %s node", n.Kind))
	}
	return n.NonTerminal, n.ProductionIndex, n.Children
}

// AsTerminal returns the Token this leaf was recovered from. Panics if n is
// not a TerminalNode.
func (n *Node) AsTerminal() lex.Token {
	if n.Kind != TerminalNode {
		panic(fmt.Sprintf("AsTerminal called on %s node", n.Kind))
	}
	return n.Token
}

const (
	levelEmpty      = "        "
	levelOngoing    = "  |     "
	levelPrefix     = "  |%s: "
	levelPrefixLast = `  \%s: `
	levelPadChar    = '-'
	levelPadAmount  = 3
)

func pad(msg string) string {
	for len([]rune(msg)) < levelPadAmount {
		msg = string(levelPadChar) + msg
	}
	return msg
}

// String returns a prettified, line-per-node representation suitable for
// structural comparison between two trees.
func (n *Node) String() string {
	return n.leveledStr("", "")
}

func (n *Node) leveledStr(firstPrefix, contPrefix string) string {
	var sb strings.Builder

	sb.WriteString(firstPrefix)
	if n.IsTerminal() {
		fmt.Fprintf(&sb, "(TERM %s %q)", n.Token.Kind, n.Token.Lexeme)
	} else {
		fmt.Fprintf(&sb, "( %s #%d )", n.NonTerminal, n.ProductionIndex)
	}

	for i, child := range n.Children {
		sb.WriteRune('\n')
		var leveledFirst, leveledCont string
		if i+1 < len(n.Children) {
			leveledFirst = contPrefix + fmt.Sprintf(levelPrefix, pad(""))
			leveledCont = contPrefix + levelOngoing
		} else {
			leveledFirst = contPrefix + fmt.Sprintf(levelPrefixLast, pad(""))
			leveledCont = contPrefix + levelEmpty
		}
		sb.WriteString(child.leveledStr(leveledFirst, leveledCont))
	}

	return sb.String()
}
