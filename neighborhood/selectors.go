// File: selectors.go
// Role: SelectFirst, SelectBest, RandomFirst, RandomBest.
package neighborhood

import (
	"math/rand"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
)

// AcceptFunc decides whether a candidate move's delta cost is acceptable.
type AcceptFunc[M any] func(mv M, c cost.Structure) bool

// SelectFirst enumerates moves in canonical order and returns the first one
// accept approves of. explored receives the number of moves examined
// (including the accepted one, if any). It wraps around the full
// neighborhood at most once; if no candidate is accepted, it returns an
// invalid EvaluatedMove.
func SelectFirst[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], in I, s S, accept AcceptFunc[M], weights []float64, explored *int) (engine.EvaluatedMove[M], error) {
	first, err := ne.FirstMove(in, s)
	if err != nil {
		return engine.Invalid[M](), err
	}

	mv := first
	*explored = 0
	for {
		*explored++
		c := ne.DeltaCostComponents(in, s, mv, weights)
		if accept(mv, c) {
			return engine.EvaluatedMove[M]{Move: mv, Cost: c, Valid: true}, nil
		}
		next, ok := ne.NextMove(in, s, mv)
		if !ok {
			break
		}
		mv = next
	}
	return engine.Invalid[M](), nil
}

// SelectBest enumerates every move in the neighborhood and returns the one
// minimizing cost among those accept approves of. Ties are broken uniformly
// at random via reservoir sampling: the first accepted-best candidate has
// count 1, and each subsequent tie replaces the held candidate with
// probability 1/(1+ties).
func SelectBest[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], in I, s S, accept AcceptFunc[M], weights []float64, explored *int, rng *rand.Rand) (engine.EvaluatedMove[M], error) {
	first, err := ne.FirstMove(in, s)
	if err != nil {
		return engine.Invalid[M](), err
	}

	var (
		best     engine.EvaluatedMove[M]
		haveBest bool
		ties     int
		mv       = first
	)
	*explored = 0
	for {
		*explored++
		c := ne.DeltaCostComponents(in, s, mv, weights)
		if accept(mv, c) {
			switch {
			case !haveBest || c.Less(best.Cost):
				best = engine.EvaluatedMove[M]{Move: mv, Cost: c, Valid: true}
				haveBest = true
				ties = 1
			case c.Compare(best.Cost) == 0:
				ties++
				if rng != nil && rng.Intn(ties) == 0 {
					best = engine.EvaluatedMove[M]{Move: mv, Cost: c, Valid: true}
				}
			}
		}
		next, ok := ne.NextMove(in, s, mv)
		if !ok {
			break
		}
		mv = next
	}
	if !haveBest {
		return engine.Invalid[M](), nil
	}
	return best, nil
}

// RandomFirst draws random moves until accept approves of one or
// samplesMax draws are exhausted, in which case it returns an invalid
// EvaluatedMove. sampled receives the number of draws actually performed.
func RandomFirst[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], in I, s S, samplesMax int, accept AcceptFunc[M], weights []float64, rng *rand.Rand, sampled *int) (engine.EvaluatedMove[M], error) {
	*sampled = 0
	var i int
	for i = 0; i < samplesMax; i++ {
		mv, err := ne.RandomMove(in, s, rng)
		if err != nil {
			return engine.Invalid[M](), err
		}
		*sampled++
		c := ne.DeltaCostComponents(in, s, mv, weights)
		if accept(mv, c) {
			return engine.EvaluatedMove[M]{Move: mv, Cost: c, Valid: true}, nil
		}
	}
	return engine.Invalid[M](), nil
}

// RandomBest draws exactly samples random moves and returns the best among
// those accept approves of (or an invalid EvaluatedMove if none qualify).
func RandomBest[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], in I, s S, samples int, accept AcceptFunc[M], weights []float64, rng *rand.Rand, sampled *int) (engine.EvaluatedMove[M], error) {
	var (
		best     engine.EvaluatedMove[M]
		haveBest bool
	)
	*sampled = 0
	var i int
	for i = 0; i < samples; i++ {
		mv, err := ne.RandomMove(in, s, rng)
		if err != nil {
			return engine.Invalid[M](), err
		}
		*sampled++
		c := ne.DeltaCostComponents(in, s, mv, weights)
		if accept(mv, c) && (!haveBest || c.Less(best.Cost)) {
			best = engine.EvaluatedMove[M]{Move: mv, Cost: c, Valid: true}
			haveBest = true
		}
	}
	if !haveBest {
		return engine.Invalid[M](), nil
	}
	return best, nil
}
