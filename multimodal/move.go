// File: move.go
// Role: the erased move carrier used by SetUnion, and the Constituent
// adapter that lets a concrete engine.NeighborhoodExplorer participate in
// a composite without the composite knowing its concrete move type.
package multimodal

import (
	"math/rand"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
)

// Move is SetUnion's composite move: Active identifies which constituent
// produced it, and Slot carries that constituent's concrete move value
// (type-erased to interface{} since the constituents may have unrelated
// move types).
type Move struct {
	Active int
	Slot   interface{}
}

// Constituent erases a concrete engine.NeighborhoodExplorer[I,S,M] behind
// a move-type-agnostic interface so SetUnion can hold a heterogeneous
// slice of them. Construct one via Wrap.
type Constituent[I, S any] interface {
	firstMove(in I, s S) (interface{}, error)
	nextMove(in I, s S, mv interface{}) (interface{}, bool)
	randomMove(in I, s S, rng *rand.Rand) (interface{}, error)
	makeMove(in I, s *S, mv interface{})
	deltaCost(in I, s S, mv interface{}, weights []float64) cost.Structure
	inverse(m1, m2 interface{}) bool
}

type constituentAdapter[I, S, M any] struct {
	ne      engine.NeighborhoodExplorer[I, S, M]
	inverse_ func(M, M) bool
}

// Wrap adapts a concrete NeighborhoodExplorer into a Constituent for use in
// a SetUnion. inverse implements the constituent's
// inverse relation (used by tabu's inverse dispatch on composite moves);
// pass nil to default to always-false (no constituent considers any two
// distinct moves inverses of each other).
func Wrap[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], inverse func(M, M) bool) Constituent[I, S] {
	if inverse == nil {
		inverse = func(M, M) bool { return false }
	}
	return &constituentAdapter[I, S, M]{ne: ne, inverse_: inverse}
}

func (a *constituentAdapter[I, S, M]) firstMove(in I, s S) (interface{}, error) {
	mv, err := a.ne.FirstMove(in, s)
	return mv, err
}

func (a *constituentAdapter[I, S, M]) nextMove(in I, s S, mv interface{}) (interface{}, bool) {
	next, ok := a.ne.NextMove(in, s, mv.(M))
	return next, ok
}

func (a *constituentAdapter[I, S, M]) randomMove(in I, s S, rng *rand.Rand) (interface{}, error) {
	mv, err := a.ne.RandomMove(in, s, rng)
	return mv, err
}

func (a *constituentAdapter[I, S, M]) makeMove(in I, s *S, mv interface{}) {
	a.ne.MakeMove(in, s, mv.(M))
}

func (a *constituentAdapter[I, S, M]) deltaCost(in I, s S, mv interface{}, weights []float64) cost.Structure {
	return a.ne.DeltaCostComponents(in, s, mv.(M), weights)
}

func (a *constituentAdapter[I, S, M]) inverse(m1, m2 interface{}) bool {
	return a.inverse_(m1.(M), m2.(M))
}
