// Package grammar holds the statically-known context-free grammar of the
// surface language: ~110 nonterminals, each an ordered list of productions,
// as required by spec §3. The grammar is immutable data, built once at
// package init and never mutated afterward.
package grammar

import (
	"fmt"
	"strconv"

	"github.com/dekarrin/earleycst/internal/lex"
)

// SymbolKind distinguishes a terminal pattern from a nonterminal reference
// within a production.
type SymbolKind int

const (
	TerminalSymbol SymbolKind = iota
	NonTerminalSymbol
)

// Epsilon is the empty production: a Production with no Symbols at all.
// Named here purely for readability at call sites; an empty []Symbol slice
// is itself the actual representation.
var Epsilon []Symbol

// Symbol is one element of a production: either a terminal pattern (a token
// kind, optionally constrained to an exact lexeme) or a reference to another
// nonterminal.
type Symbol struct {
	Kind SymbolKind

	// Populated when Kind == TerminalSymbol.
	TermKind    lex.Kind
	Lexeme      string
	HasLexeme   bool // if false, any lexeme of TermKind matches

	// Populated when Kind == NonTerminalSymbol.
	NonTerminal string
}

// IsTerminal reports whether sym is a terminal pattern.
func (sym Symbol) IsTerminal() bool {
	return sym.Kind == TerminalSymbol
}

// Matches reports whether tok satisfies this terminal pattern. Matches
// always returns false for a nonterminal-reference Symbol.
func (sym Symbol) Matches(tok lex.Token) bool {
	if sym.Kind != TerminalSymbol {
		return false
	}
	if tok.Kind != sym.TermKind {
		return false
	}
	if sym.HasLexeme && tok.Lexeme != sym.Lexeme {
		return false
	}
	return true
}

func (sym Symbol) String() string {
	if sym.Kind == NonTerminalSymbol {
		return sym.NonTerminal
	}
	if sym.HasLexeme {
		return strconv.Quote(sym.Lexeme)
	}
	return fmt.Sprintf("<%s>", sym.TermKind)
}

// T matches any token of the given kind, regardless of lexeme.
func T(kind lex.Kind) Symbol {
	return Symbol{Kind: TerminalSymbol, TermKind: kind}
}

// Lit matches a token of the given kind with exactly the given lexeme.
func Lit(kind lex.Kind, lexeme string) Symbol {
	return Symbol{Kind: TerminalSymbol, TermKind: kind, Lexeme: lexeme, HasLexeme: true}
}

// Kw matches the keyword with the given lexeme.
func Kw(lexeme string) Symbol {
	return Lit(lex.Keyword, lexeme)
}

// Pn matches the punctuation with the given lexeme.
func Pn(lexeme string) Symbol {
	return Lit(lex.Punctuation, lexeme)
}

// Id matches any Identifier token.
func Id() Symbol {
	return T(lex.Identifier)
}

// IntLit matches any IntegerLiteral token.
func IntLit() Symbol {
	return T(lex.IntegerLiteral)
}

// CharLit matches any CharLiteral token.
func CharLit() Symbol {
	return T(lex.CharLiteral)
}

// StrLit matches any StringLiteral token.
func StrLit() Symbol {
	return T(lex.StringLiteral)
}

// NT references the nonterminal named name.
func NT(name string) Symbol {
	return Symbol{Kind: NonTerminalSymbol, NonTerminal: name}
}
