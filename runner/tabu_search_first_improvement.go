// File: tabu_search_first_improvement.go
package runner

import (
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/neighborhood"
	"github.com/katalvlaran/localsearch/param"
	"github.com/katalvlaran/localsearch/tabu"
)

// TabuSearchFirstImprovement (FIT) is TabuSearch with select_first instead
// of select_best: it takes the first non-prohibited move it finds rather
// than scanning the whole neighborhood for the best one.
type TabuSearchFirstImprovement[I, S, M any] struct {
	*TabuSearch[I, S, M]
}

// NewTabuSearchFirstImprovement builds the first-improvement variant.
func NewTabuSearchFirstImprovement[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], inverse tabu.InverseFunc[M], maxIdleIterations int, seed int64) *TabuSearchFirstImprovement[I, S, M] {
	base := NewTabuSearch[I, S, M](ne, inverse, maxIdleIterations, seed)
	base.Params.Prefix = "tsfit"
	return &TabuSearchFirstImprovement[I, S, M]{TabuSearch: base}
}

func (t *TabuSearchFirstImprovement[I, S, M]) Name() string { return "tabu_search_first_improvement" }

func (t *TabuSearchFirstImprovement[I, S, M]) SelectMove(r *Base[I, S, M], in I) error {
	var explored int
	em, err := neighborhood.SelectFirst[I, S, M](t.NE, in, r.CurrentState, t.accept(in, r), r.Weights, &explored)
	r.Evaluations += uint64(explored)
	if err != nil {
		return err
	}
	r.CurrentMove = em
	return nil
}

// Clone builds a fresh TabuSearchFirstImprovement sharing t's
// NeighborhoodExplorer and Inverse relation.
func (t *TabuSearchFirstImprovement[I, S, M]) Clone() Strategy[I, S, M] {
	c := NewTabuSearchFirstImprovement[I, S, M](t.NE, t.Inverse, int(t.maxIdleIterations.Value), t.rng.Int63())
	c.Params.CopyValuesFrom(t.Params)
	return c
}
