package grammar

import (
	"fmt"
	"strings"
)

// Production is one ordered alternative of a nonterminal: a (possibly
// empty) sequence of Symbols. Production order within a nonterminal's list
// is significant — it is the tie-break the tree builder uses when more than
// one production could complete a span (spec §4.3).
type Production struct {
	Symbols []Symbol
}

func (p Production) String() string {
	if len(p.Symbols) == 0 {
		return "ε"
	}
	parts := make([]string, len(p.Symbols))
	for i, s := range p.Symbols {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// Grammar is a fixed, statically-known mapping from nonterminal name to its
// ordered list of productions, plus the designated start nonterminal.
// Grammar values are never mutated after construction (spec §3: "Productions
// are immutable data").
type Grammar struct {
	Start string
	rules map[string][]Production
}

// New builds a Grammar from a start symbol and a table of nonterminal name
// to ordered productions. It does not validate the table; call Validate
// separately if that is desired (the package-level Rust grammar validates
// itself at init time).
func New(start string, rules map[string][]Production) *Grammar {
	return &Grammar{Start: start, rules: rules}
}

// Productions returns the ordered productions for nonterminal nt, or nil if
// nt is not a nonterminal of this grammar.
func (g *Grammar) Productions(nt string) []Production {
	return g.rules[nt]
}

// HasNonTerminal reports whether nt has an entry in this grammar.
func (g *Grammar) HasNonTerminal(nt string) bool {
	_, ok := g.rules[nt]
	return ok
}

// NonTerminals returns the grammar's nonterminal names, in no particular
// order.
func (g *Grammar) NonTerminals() []string {
	names := make([]string, 0, len(g.rules))
	for nt := range g.rules {
		names = append(names, nt)
	}
	return names
}

// Validate checks two structural invariants: every nonterminal referenced
// by some production has its own entry, and the start nonterminal is
// itself a defined entry.
func (g *Grammar) Validate() error {
	var errs []string

	if !g.HasNonTerminal(g.Start) {
		errs = append(errs, fmt.Sprintf("start nonterminal %q has no productions", g.Start))
	}

	for nt, prods := range g.rules {
		for pi, prod := range prods {
			for _, sym := range prod.Symbols {
				if sym.Kind != NonTerminalSymbol {
					continue
				}
				if !g.HasNonTerminal(sym.NonTerminal) {
					errs = append(errs, fmt.Sprintf(
						"%s production #%d references undefined nonterminal %q", nt, pi, sym.NonTerminal))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid grammar:\n\t%s", strings.Join(errs, "\n\t"))
	}
	return nil
}

func (g *Grammar) String() string {
	var sb strings.Builder
	for nt, prods := range g.rules {
		for pi, prod := range prods {
			fmt.Fprintf(&sb, "%s -> %s  (#%d)\n", nt, prod, pi)
		}
	}
	return sb.String()
}
