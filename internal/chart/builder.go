package chart

import (
	"github.com/dekarrin/earleycst/internal/grammar"
	"github.com/dekarrin/earleycst/internal/lex"
	"github.com/dekarrin/earleycst/internal/synerr"
	"github.com/dekarrin/earleycst/internal/util"
)

// Chart is the full sequence of state sets T[0..N] produced by a completed
// Earley recognition run over an N-token input (spec §4.2).
type Chart struct {
	Grammar *grammar.Grammar
	Tokens  []lex.Token
	Sets    []*util.OrderedSet[State]
}

// Build runs the Earley recognizer over tokens against g, returning the
// completed chart. It never returns an error on its own — a rejected input
// is reported by Accepts returning false, not by an error — but the return
// signature is kept so callers can thread synerr.ParseError-typed failures
// from a later stage without an interface change.
func Build(g *grammar.Grammar, tokens []lex.Token) (*Chart, error) {
	c := &Chart{
		Grammar: g,
		Tokens:  tokens,
		Sets:    make([]*util.OrderedSet[State], len(tokens)+1),
	}
	for i := range c.Sets {
		c.Sets[i] = util.NewOrderedSet[State]()
	}

	c.seedStart()

	for k := 0; k <= len(tokens); k++ {
		c.saturate(k)
		if k < len(tokens) {
			c.scan(k)
		}
	}

	return c, nil
}

func (c *Chart) seedStart() {
	for pi, prod := range c.Grammar.Productions(c.Grammar.Start) {
		st := State{NonTerminal: c.Grammar.Start, ProdIndex: pi, Production: prod, Dot: 0, Origin: 0}
		c.Sets[0].Add(st.Key(), st)
	}
}

// saturate applies the predict and complete rules to T[k] until no more
// items can be added. complete and predict are interleaved, since each may
// enable the other (a completion can enable a predict that itself yields a
// further completion).
func (c *Chart) saturate(k int) {
	set := c.Sets[k]

	updated := true
	for updated {
		updated = false

		// dynamic worklist: re-read the live length each pass, since
		// ε-productions (ProdIndex with len(Symbols)==0) may complete
		// immediately, so predicting a new nonterminal can itself add
		// a finished item in the same pass.
		for i := 0; i < set.Len(); i++ {
			items := set.Elements()
			st := items[i]

			if st.Finished() {
				if c.complete(st, k) {
					updated = true
				}
				continue
			}

			sym := st.NextSymbol()
			if !sym.IsTerminal() {
				if c.predict(sym.NonTerminal, k) {
					updated = true
				}
			}
		}
	}
}

// predict adds, for every production of nt, a fresh dotted item anchored at
// k with the dot at position 0. Returns true if T[k] grew.
func (c *Chart) predict(nt string, k int) bool {
	grew := false
	for pi, prod := range c.Grammar.Productions(nt) {
		st := State{NonTerminal: nt, ProdIndex: pi, Production: prod, Dot: 0, Origin: k}
		if c.Sets[k].Add(st.Key(), st) {
			grew = true
		}
	}
	return grew
}

// complete advances every item in T[st.Origin] that was waiting on
// st.NonTerminal, inserting the advanced item into T[k]. Returns true if
// T[k] grew.
func (c *Chart) complete(st State, k int) bool {
	grew := false
	for _, waiting := range c.Sets[st.Origin].Elements() {
		if waiting.Finished() {
			continue
		}
		sym := waiting.NextSymbol()
		if sym.IsTerminal() || sym.NonTerminal != st.NonTerminal {
			continue
		}
		adv := waiting.Advanced()
		if c.Sets[k].Add(adv.Key(), adv) {
			grew = true
		}
	}
	return grew
}

// scan moves every item in T[k] whose next symbol matches Tokens[k] into
// T[k+1] with its dot advanced. Scan runs exactly once per position, after
// T[k] has been fully saturated, and never feeds back into T[k] itself.
func (c *Chart) scan(k int) {
	tok := c.Tokens[k]
	for _, st := range c.Sets[k].Elements() {
		if st.Finished() {
			continue
		}
		sym := st.NextSymbol()
		if !sym.IsTerminal() || !sym.Matches(tok) {
			continue
		}
		adv := st.Advanced()
		c.Sets[k+1].Add(adv.Key(), adv)
	}
}

// Accepts reports whether the chart contains a completed parse of the start
// nonterminal spanning the entire input.
func (c *Chart) Accepts() bool {
	last := len(c.Sets) - 1
	for _, st := range c.Sets[last].Elements() {
		if st.NonTerminal == c.Grammar.Start && st.Finished() && st.Origin == 0 {
			return true
		}
	}
	return false
}

// Err returns a synerr.ParseError describing rejection, suitable for
// returning to a caller once Accepts() has been confirmed false, or nil if
// the chart accepts. The message names the start nonterminal and, for a
// non-empty input, the token count; it does not point at a failing token.
func (c *Chart) Err() error {
	if c.Accepts() {
		return nil
	}
	if len(c.Tokens) == 0 {
		return synerr.Parsef("input does not derive %s", c.Grammar.Start)
	}
	return synerr.Parsef("input does not derive %s (%d tokens)", c.Grammar.Start, len(c.Tokens))
}
