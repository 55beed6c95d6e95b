// File: tabu_search.go
package runner

import (
	"math/rand"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/internal/randstream"
	"github.com/katalvlaran/localsearch/neighborhood"
	"github.com/katalvlaran/localsearch/param"
	"github.com/katalvlaran/localsearch/tabu"
)

// tabuManager is the subset of tabu.ListManager/FrequencyListManager the
// concrete tabu runners need: prohibition with the full cost context
// aspiration requires, which engine.ProhibitionManager's bare
// ProhibitedMove cannot express.
type tabuManager[I, S, M any] interface {
	InsertMove(in I, s S, mv M, moveCost, currentCost, bestCost cost.Structure)
	ProhibitedMoveWithCosts(in I, s S, mv M, moveCost, currentCost, bestCost cost.Structure) bool
	UpdateIteration()
	Clean()
}

// TabuSearch picks the best move in the full neighborhood that is not
// currently prohibited by its tabu list, allowing worsening moves through
// to escape local optima.
type TabuSearch[I, S, M any] struct {
	NE      engine.NeighborhoodExplorer[I, S, M]
	Inverse tabu.InverseFunc[M]
	PM      tabuManager[I, S, M]

	Params            *param.Box
	minTenure         *param.IntParam
	maxTenure         *param.IntParam
	maxIdleIterations *param.IntParam
	maxEvaluations    *param.IntParam

	rng  *rand.Rand
	seed int64
}

// NewTabuSearch builds a TabuSearch over ne. inverse is mandatory (the
// tabu list cannot decide prohibition without it). If PM is nil, a
// standard tabu.ListManager is built at InitializeRun time from the
// min_tenure/max_tenure parameters.
func NewTabuSearch[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], inverse tabu.InverseFunc[M], maxIdleIterations int, seed int64) *TabuSearch[I, S, M] {
	box := newBox("ts")
	t := &TabuSearch[I, S, M]{
		NE:      ne,
		Inverse: inverse,
		Params:  box,
		rng:     randstream.Derive(randstream.New(seed), 0x7A),
		seed:    seed,
	}
	t.minTenure = param.NewInt("min_tenure", "minimum tabu tenure", 3)
	box.Register(t.minTenure)
	t.maxTenure = param.NewInt("max_tenure", "maximum tabu tenure", 7)
	box.Register(t.maxTenure)
	t.maxIdleIterations = param.NewInt("max_idle_iterations", "iterations without improvement before stopping", int64(maxIdleIterations))
	box.Register(t.maxIdleIterations)
	t.maxEvaluations = registerMaxEvaluations(box)
	return t
}

func (t *TabuSearch[I, S, M]) Name() string { return "tabu_search" }

func (t *TabuSearch[I, S, M]) InitializeRun(r *Base[I, S, M], in I) error {
	if t.minTenure.Value <= 0 || t.maxTenure.Value < t.minTenure.Value {
		return param.ErrIncorrectParameterValue
	}
	r.MaxEvaluations = uint64(t.maxEvaluations.Value)
	if t.PM == nil {
		t.PM = tabu.NewListManager[I, S, M](int(t.minTenure.Value), int(t.maxTenure.Value), t.Inverse, t.seed)
	} else {
		t.PM.Clean()
	}
	return nil
}

func (t *TabuSearch[I, S, M]) StopCriterion(r *Base[I, S, M], in I) bool {
	return r.Iteration-r.IterationOfBest >= uint64(t.maxIdleIterations.Value)
}

func (t *TabuSearch[I, S, M]) accept(in I, r *Base[I, S, M]) func(mv M, c cost.Structure) bool {
	return func(mv M, c cost.Structure) bool {
		return !t.PM.ProhibitedMoveWithCosts(in, r.CurrentState, mv, c, r.CurrentStateCost, r.BestStateCost)
	}
}

func (t *TabuSearch[I, S, M]) SelectMove(r *Base[I, S, M], in I) error {
	var explored int
	em, err := neighborhood.SelectBest[I, S, M](t.NE, in, r.CurrentState, t.accept(in, r), r.Weights, &explored, t.rng)
	r.Evaluations += uint64(explored)
	if err != nil {
		return err
	}
	r.CurrentMove = em
	return nil
}

func (t *TabuSearch[I, S, M]) AcceptableMoveFound(r *Base[I, S, M], in I) bool {
	return r.CurrentMove.Valid
}

func (t *TabuSearch[I, S, M]) MakeMove(r *Base[I, S, M], in I) {
	t.PM.InsertMove(in, r.CurrentState, r.CurrentMove.Move, r.CurrentMove.Cost, r.CurrentStateCost, r.BestStateCost)
	t.NE.MakeMove(in, &r.CurrentState, r.CurrentMove.Move)
	r.CurrentStateCost = r.CurrentStateCost.Add(r.CurrentMove.Cost)
}

func (t *TabuSearch[I, S, M]) CompleteIteration(r *Base[I, S, M], in I) {
	t.PM.UpdateIteration()
}

// Clone builds a fresh TabuSearch sharing t's NeighborhoodExplorer and
// Inverse relation, with its own tabu list (rebuilt at InitializeRun) and
// derived RNG stream. A custom PM (set after construction, bypassing the
// default tabu.ListManager) is not carried over; callers relying on a
// custom PM should not share a single Strategy template across clones.
func (t *TabuSearch[I, S, M]) Clone() Strategy[I, S, M] {
	c := NewTabuSearch[I, S, M](t.NE, t.Inverse, int(t.maxIdleIterations.Value), t.rng.Int63())
	c.Params.CopyValuesFrom(t.Params)
	return c
}
