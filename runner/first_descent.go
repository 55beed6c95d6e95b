// File: first_descent.go
package runner

import (
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/neighborhood"
	"github.com/katalvlaran/localsearch/param"
)

// FirstDescent accepts the first strictly-improving move it finds while
// scanning the neighborhood, rather than the best (SteepestDescent).
type FirstDescent[I, S, M any] struct {
	NE engine.NeighborhoodExplorer[I, S, M]

	Params         *param.Box
	maxEvaluations *param.IntParam
}

// NewFirstDescent builds a FirstDescent over ne.
func NewFirstDescent[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M]) *FirstDescent[I, S, M] {
	box := newBox("fd")
	d := &FirstDescent[I, S, M]{NE: ne, Params: box}
	d.maxEvaluations = registerMaxEvaluations(box)
	return d
}

func (d *FirstDescent[I, S, M]) Name() string { return "first_descent" }

func (d *FirstDescent[I, S, M]) InitializeRun(r *Base[I, S, M], in I) error {
	r.MaxEvaluations = uint64(d.maxEvaluations.Value)
	return nil
}

func (d *FirstDescent[I, S, M]) StopCriterion(r *Base[I, S, M], in I) bool {
	return r.Iteration > 0 && !r.CurrentMove.Valid
}

func (d *FirstDescent[I, S, M]) SelectMove(r *Base[I, S, M], in I) error {
	var explored int
	em, err := neighborhood.SelectFirst[I, S, M](d.NE, in, r.CurrentState, strictlyImproving[M], r.Weights, &explored)
	r.Evaluations += uint64(explored)
	if err != nil {
		return err
	}
	r.CurrentMove = em
	return nil
}

func (d *FirstDescent[I, S, M]) AcceptableMoveFound(r *Base[I, S, M], in I) bool {
	return r.CurrentMove.Valid
}

func (d *FirstDescent[I, S, M]) MakeMove(r *Base[I, S, M], in I) {
	d.NE.MakeMove(in, &r.CurrentState, r.CurrentMove.Move)
	r.CurrentStateCost = r.CurrentStateCost.Add(r.CurrentMove.Cost)
}

func (d *FirstDescent[I, S, M]) CompleteIteration(r *Base[I, S, M], in I) {}

// Clone builds a fresh FirstDescent sharing d's NeighborhoodExplorer.
func (d *FirstDescent[I, S, M]) Clone() Strategy[I, S, M] {
	c := NewFirstDescent[I, S, M](d.NE)
	c.Params.CopyValuesFrom(d.Params)
	return c
}
