// Package frontend wires the lexer, chart builder, and tree builder into a
// single three-stage pipeline: lexing must fully complete before
// chart-building starts, and chart-building must fully complete (and
// accept) before tree-building starts.
package frontend

import (
	"github.com/google/uuid"

	"github.com/dekarrin/earleycst/internal/chart"
	"github.com/dekarrin/earleycst/internal/cst"
	"github.com/dekarrin/earleycst/internal/grammar"
	"github.com/dekarrin/earleycst/internal/lex"
)

// Result is everything a single Parse call produces: the recovered tree,
// plus the chart it was recovered from (kept around so a caller can ask for
// --chart diagnostics without re-running recognition) and a correlation ID
// unique to this run.
type Result struct {
	RunID string
	Chart *chart.Chart
	Tree  *cst.Node
}

// Parse runs the full lex -> recognize -> reconstruct pipeline over src
// against g. Each call is tagged with a fresh correlation ID so that
// diagnostics from a batch of parses can be told apart.
func Parse(g *grammar.Grammar, src string) (Result, error) {
	runID, err := uuid.NewRandom()
	if err != nil {
		return Result{}, err
	}
	res := Result{RunID: runID.String()}

	allToks, err := lex.Lex(src)
	if err != nil {
		return res, err
	}
	toks := lex.Filter(allToks)

	c, err := chart.Build(g, toks)
	if err != nil {
		return res, err
	}
	res.Chart = c

	if !c.Accepts() {
		return res, c.Err()
	}

	tree, err := cst.Build(c)
	if err != nil {
		return res, err
	}
	res.Tree = tree

	return res, nil
}
