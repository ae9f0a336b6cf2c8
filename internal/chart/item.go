// Package chart implements the general Earley recognizer over the surface
// grammar: for an N-token input it builds N+1 state sets, each saturated to
// a fixpoint by the predict/scan/complete rules, and reports whether the
// start nonterminal spans the whole input (spec §4.2).
package chart

import (
	"fmt"

	"github.com/dekarrin/earleycst/internal/grammar"
)

// State is one dotted item: a production of nonterminal NT, with Dot marking
// how many of its symbols have been matched so far, anchored at Origin (the
// chart position where matching of this production began).
type State struct {
	NonTerminal string
	ProdIndex   int
	Production  grammar.Production
	Dot         int
	Origin      int
}

// Key uniquely identifies a State for state-set deduplication. Two States
// with the same key are the same item regardless of how they were derived.
func (s State) Key() string {
	return fmt.Sprintf("%s|%d|%d|%d", s.NonTerminal, s.ProdIndex, s.Dot, s.Origin)
}

// Finished reports whether the dot has reached the end of the production,
// i.e. this item represents a complete parse of NonTerminal over
// [Origin, current position).
func (s State) Finished() bool {
	return s.Dot >= len(s.Production.Symbols)
}

// NextSymbol returns the symbol immediately after the dot. Only valid when
// !s.Finished().
func (s State) NextSymbol() grammar.Symbol {
	return s.Production.Symbols[s.Dot]
}

// Advanced returns a copy of s with the dot moved one position to the right.
func (s State) Advanced() State {
	s.Dot++
	return s
}

func (s State) String() string {
	syms := s.Production.Symbols
	before := make([]string, s.Dot)
	for i := 0; i < s.Dot; i++ {
		before[i] = syms[i].String()
	}
	after := make([]string, len(syms)-s.Dot)
	for i := s.Dot; i < len(syms); i++ {
		after[i-s.Dot] = syms[i].String()
	}
	return fmt.Sprintf("%s -> %s . %s  [%d]", s.NonTerminal, join(before), join(after), s.Origin)
}

func join(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}
