// File: tabu_search_shifting_penalty.go
// Role: TabuSearchShiftingPenalty (supplemented feature), composing
// TabuSearch with a ShiftingPenaltyManager that adapts a soft component's
// weight across iterations instead of leaving it fixed.
package runner

import (
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/tabu"
)

// TabuSearchShiftingPenalty runs the ordinary TabuSearch iteration but
// additionally feeds the current state's cost into a ShiftingPenaltyManager
// each iteration, and writes its adapted weight back into r.Weights before
// the next move is evaluated.
type TabuSearchShiftingPenalty[I, S, M any] struct {
	*TabuSearch[I, S, M]

	Penalty *tabu.ShiftingPenaltyManager
}

// NewTabuSearchShiftingPenalty builds the composed runner. penalty tracks
// the soft component at penalty.ComponentIndex in r.Weights.
func NewTabuSearchShiftingPenalty[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], inverse tabu.InverseFunc[M], maxIdleIterations int, penalty *tabu.ShiftingPenaltyManager, seed int64) *TabuSearchShiftingPenalty[I, S, M] {
	base := NewTabuSearch[I, S, M](ne, inverse, maxIdleIterations, seed)
	base.Params.Prefix = "tssp"
	return &TabuSearchShiftingPenalty[I, S, M]{TabuSearch: base, Penalty: penalty}
}

func (t *TabuSearchShiftingPenalty[I, S, M]) Name() string { return "tabu_search_shifting_penalty" }

func (t *TabuSearchShiftingPenalty[I, S, M]) InitializeRun(r *Base[I, S, M], in I) error {
	t.Penalty.Reset()
	if err := t.TabuSearch.InitializeRun(r, in); err != nil {
		return err
	}
	t.syncWeight(r)
	return nil
}

func (t *TabuSearchShiftingPenalty[I, S, M]) syncWeight(r *Base[I, S, M]) {
	idx := t.Penalty.ComponentIndex
	if len(r.Weights) <= idx {
		grown := make([]float64, idx+1)
		copy(grown, r.Weights)
		r.Weights = grown
	}
	r.Weights[idx] = t.Penalty.Weight()
}

func (t *TabuSearchShiftingPenalty[I, S, M]) CompleteIteration(r *Base[I, S, M], in I) {
	t.TabuSearch.CompleteIteration(r, in)
	t.Penalty.Update(r.CurrentStateCost)
	t.syncWeight(r)
}

// Clone builds a fresh TabuSearchShiftingPenalty sharing t's
// NeighborhoodExplorer and Inverse relation, with its own
// ShiftingPenaltyManager seeded at the parent's current weight.
func (t *TabuSearchShiftingPenalty[I, S, M]) Clone() Strategy[I, S, M] {
	penalty := tabu.NewShiftingPenaltyManager(t.Penalty.ComponentIndex, t.Penalty.Weight(), t.Penalty.MinWeight, t.Penalty.MaxWeight, t.Penalty.Shift)
	c := NewTabuSearchShiftingPenalty[I, S, M](t.NE, t.Inverse, int(t.maxIdleIterations.Value), penalty, t.rng.Int63())
	c.Params.CopyValuesFrom(t.Params)
	return c
}
