// File: steepest_descent.go
package runner

import (
	"math/rand"

	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/internal/randstream"
	"github.com/katalvlaran/localsearch/neighborhood"
	"github.com/katalvlaran/localsearch/param"
)

// SteepestDescent accepts the best strictly-improving move in the full
// neighborhood each iteration, stopping as soon as none exists. Per the
// resolution for the new-tree inconsistency the original source showed,
// `in` is passed explicitly to every selector call here, never recovered
// from a stashed field.
type SteepestDescent[I, S, M any] struct {
	NE engine.NeighborhoodExplorer[I, S, M]

	Params         *param.Box
	maxEvaluations *param.IntParam

	rng *rand.Rand
}

// NewSteepestDescent builds a SteepestDescent over ne, deriving its
// tie-break RNG from seed.
func NewSteepestDescent[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], seed int64) *SteepestDescent[I, S, M] {
	box := newBox("sd")
	d := &SteepestDescent[I, S, M]{
		NE:     ne,
		Params: box,
		rng:    randstream.Derive(randstream.New(seed), 0x5D),
	}
	d.maxEvaluations = registerMaxEvaluations(box)
	return d
}

func (d *SteepestDescent[I, S, M]) Name() string { return "steepest_descent" }

func (d *SteepestDescent[I, S, M]) InitializeRun(r *Base[I, S, M], in I) error {
	r.MaxEvaluations = uint64(d.maxEvaluations.Value)
	return nil
}

func (d *SteepestDescent[I, S, M]) StopCriterion(r *Base[I, S, M], in I) bool {
	return r.Iteration > 0 && !r.CurrentMove.Valid
}

func (d *SteepestDescent[I, S, M]) SelectMove(r *Base[I, S, M], in I) error {
	var explored int
	em, err := neighborhood.SelectBest[I, S, M](d.NE, in, r.CurrentState, strictlyImproving[M], r.Weights, &explored, d.rng)
	r.Evaluations += uint64(explored)
	if err != nil {
		return err
	}
	r.CurrentMove = em
	return nil
}

func (d *SteepestDescent[I, S, M]) AcceptableMoveFound(r *Base[I, S, M], in I) bool {
	return r.CurrentMove.Valid
}

func (d *SteepestDescent[I, S, M]) MakeMove(r *Base[I, S, M], in I) {
	d.NE.MakeMove(in, &r.CurrentState, r.CurrentMove.Move)
	r.CurrentStateCost = r.CurrentStateCost.Add(r.CurrentMove.Cost)
}

func (d *SteepestDescent[I, S, M]) CompleteIteration(r *Base[I, S, M], in I) {}

// Clone builds a fresh SteepestDescent sharing d's NeighborhoodExplorer.
func (d *SteepestDescent[I, S, M]) Clone() Strategy[I, S, M] {
	c := NewSteepestDescent[I, S, M](d.NE, d.rng.Int63())
	c.Params.CopyValuesFrom(d.Params)
	return c
}
