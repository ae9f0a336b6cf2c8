package cst

import (
	"sort"

	"github.com/dekarrin/earleycst/internal/chart"
	"github.com/dekarrin/earleycst/internal/synerr"
)

// maxDepth bounds the recursion depth of tree recovery, guarding against a
// pathological or cyclic (ε-only) derivation chain blowing the Go stack.
const maxDepth = 4000

// Build reconstructs the concrete syntax tree from an accepted chart by
// rightmost-derivation recovery (spec §4.3). Build must only be called
// after chart.Chart.Accepts() has returned true for c; calling it on a
// rejected chart returns a ParseError.
func Build(c *chart.Chart) (*Node, error) {
	last := len(c.Sets) - 1
	var start *chart.State
	for _, st := range c.Sets[last].Elements() {
		if st.NonTerminal == c.Grammar.Start && st.Finished() && st.Origin == 0 {
			s := st
			start = &s
			break
		}
	}
	if start == nil {
		return nil, synerr.Parse("cannot build tree: chart has no accepting item")
	}

	b := &builder{chart: c}
	node, ok := b.buildNonTerminal(*start, last, 0)
	if !ok {
		return nil, synerr.Parse("cannot build tree: no consistent rightmost derivation exists for the accepted chart")
	}
	return node, nil
}

type builder struct {
	chart *chart.Chart
}

// buildNonTerminal recovers the subtree for the completed item st, which
// must end at chart position end.
func (b *builder) buildNonTerminal(st chart.State, end, depth int) (*Node, bool) {
	if depth > maxDepth {
		return nil, false
	}

	children, ok := b.fillChildren(st, end, depth+1)
	if !ok {
		return nil, false
	}

	return &Node{
		Kind:            NonTerminalNode,
		NonTerminal:     st.NonTerminal,
		ProductionIndex: st.ProdIndex,
		Children:        children,
	}, true
}

// fillChildren recovers one production's children by filling right-to-left:
// the last symbol must end exactly at end, and each symbol's recovered
// start becomes the next (leftward) symbol's end boundary, until the first
// symbol's start lands exactly on origin.
func (b *builder) fillChildren(st chart.State, end, depth int) ([]*Node, bool) {
	syms, origin := st.Production.Symbols, st.Origin
	children := make([]*Node, len(syms))
	cur := end

	for i := len(syms) - 1; i >= 0; i-- {
		sym := syms[i]

		if sym.IsTerminal() {
			if cur <= origin {
				return nil, false
			}
			tok := b.chart.Tokens[cur-1]
			if !sym.Matches(tok) {
				return nil, false
			}
			children[i] = &Node{Kind: TerminalNode, Token: tok}
			cur--
			continue
		}

		// the parent item with its dot just before this symbol
		parent := st
		parent.Dot = i
		child, newCur, ok := b.fillNonTerminalChild(sym.NonTerminal, parent.Key(), origin, cur, depth)
		if !ok {
			return nil, false
		}
		children[i] = child
		cur = newCur
	}

	return children, cur == origin
}

// fillNonTerminalChild finds a completed item for nt ending at end whose
// origin is no earlier than lowerBound and whose origin set holds the parent
// item identified by parentKey (the parent with its dot just before nt), and
// recovers its subtree. Candidates
// are tried largest-origin-first (the shortest possible span for this
// child), with smallest production index breaking ties between candidates
// of equal origin — the deterministic tie-break spec §4.3 requires whenever
// more than one completed item could fill the same slot. If a candidate's
// own children can't be consistently recovered, the next candidate is
// tried; this never changes the deterministic ordering candidates are
// attempted in, only which one ultimately succeeds.
func (b *builder) fillNonTerminalChild(nt, parentKey string, lowerBound, end, depth int) (*Node, int, bool) {
	var candidates []chart.State
	for _, st := range b.chart.Sets[end].Elements() {
		if st.NonTerminal != nt || !st.Finished() || st.Origin < lowerBound {
			continue
		}
		if !b.chart.Sets[st.Origin].Has(parentKey) {
			continue
		}
		candidates = append(candidates, st)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Origin != candidates[j].Origin {
			return candidates[i].Origin > candidates[j].Origin
		}
		return candidates[i].ProdIndex < candidates[j].ProdIndex
	})

	for _, cand := range candidates {
		node, ok := b.buildNonTerminal(cand, end, depth)
		if !ok {
			continue
		}
		return node, cand.Origin, true
	}

	return nil, 0, false
}
