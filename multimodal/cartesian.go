// File: cartesian.go
// Role: CartesianProduct composition, where a single move touches every
// constituent simultaneously. Bounded to arity 3 (pairs and triples cover
// every worked case in the original kicker/runner combinations; a fourth
// slot has never been needed and would only add boilerplate).
package multimodal

import (
	"math/rand"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
)

// Cartesian2 is a move over two constituent neighborhoods applied jointly.
type Cartesian2[M1, M2 any] struct {
	A M1
	B M2
}

// Product2 enumerates the Cartesian product of two neighborhoods in
// lexicographic order (A outer, B inner): B is exhausted for each value of
// A before A advances. MakeMove and DeltaCostComponents touch/charge both
// constituents, since a Cartesian move activates all of them at once.
type Product2[I, S, M1, M2 any] struct {
	NE1 engine.NeighborhoodExplorer[I, S, M1]
	NE2 engine.NeighborhoodExplorer[I, S, M2]
}

var _ engine.NeighborhoodExplorer[struct{}, struct{}, Cartesian2[struct{}, struct{}]] = (*Product2[struct{}, struct{}, struct{}, struct{}])(nil)

func (p *Product2[I, S, M1, M2]) FirstMove(in I, s S) (Cartesian2[M1, M2], error) {
	a, err := p.NE1.FirstMove(in, s)
	if err != nil {
		return Cartesian2[M1, M2]{}, err
	}
	b, err := p.NE2.FirstMove(in, s)
	if err != nil {
		return Cartesian2[M1, M2]{}, err
	}
	return Cartesian2[M1, M2]{A: a, B: b}, nil
}

func (p *Product2[I, S, M1, M2]) NextMove(in I, s S, mv Cartesian2[M1, M2]) (Cartesian2[M1, M2], bool) {
	if nb, ok := p.NE2.NextMove(in, s, mv.B); ok {
		return Cartesian2[M1, M2]{A: mv.A, B: nb}, true
	}
	na, ok := p.NE1.NextMove(in, s, mv.A)
	if !ok {
		return Cartesian2[M1, M2]{}, false
	}
	fb, err := p.NE2.FirstMove(in, s)
	if err != nil {
		return Cartesian2[M1, M2]{}, false
	}
	return Cartesian2[M1, M2]{A: na, B: fb}, true
}

func (p *Product2[I, S, M1, M2]) RandomMove(in I, s S, rng *rand.Rand) (Cartesian2[M1, M2], error) {
	a, err := p.NE1.RandomMove(in, s, rng)
	if err != nil {
		return Cartesian2[M1, M2]{}, err
	}
	b, err := p.NE2.RandomMove(in, s, rng)
	if err != nil {
		return Cartesian2[M1, M2]{}, err
	}
	return Cartesian2[M1, M2]{A: a, B: b}, nil
}

func (p *Product2[I, S, M1, M2]) MakeMove(in I, s *S, mv Cartesian2[M1, M2]) {
	p.NE1.MakeMove(in, s, mv.A)
	p.NE2.MakeMove(in, s, mv.B)
}

func (p *Product2[I, S, M1, M2]) DeltaCostComponents(in I, s S, mv Cartesian2[M1, M2], weights []float64) cost.Structure {
	da := p.NE1.DeltaCostComponents(in, s, mv.A, weights)
	db := p.NE2.DeltaCostComponents(in, s, mv.B, weights)
	return da.Add(db)
}

// Cartesian3 is a move over three constituent neighborhoods applied
// jointly, grounded on the same trimodal combination used by the
// original's bidirectional-edge kicker.
type Cartesian3[M1, M2, M3 any] struct {
	A M1
	B M2
	C M3
}

// Product3 enumerates the Cartesian product of three neighborhoods in
// lexicographic order (A outermost, C innermost).
type Product3[I, S, M1, M2, M3 any] struct {
	NE1 engine.NeighborhoodExplorer[I, S, M1]
	NE2 engine.NeighborhoodExplorer[I, S, M2]
	NE3 engine.NeighborhoodExplorer[I, S, M3]
}

var _ engine.NeighborhoodExplorer[struct{}, struct{}, Cartesian3[struct{}, struct{}, struct{}]] = (*Product3[struct{}, struct{}, struct{}, struct{}, struct{}])(nil)

func (p *Product3[I, S, M1, M2, M3]) FirstMove(in I, s S) (Cartesian3[M1, M2, M3], error) {
	a, err := p.NE1.FirstMove(in, s)
	if err != nil {
		return Cartesian3[M1, M2, M3]{}, err
	}
	b, err := p.NE2.FirstMove(in, s)
	if err != nil {
		return Cartesian3[M1, M2, M3]{}, err
	}
	c, err := p.NE3.FirstMove(in, s)
	if err != nil {
		return Cartesian3[M1, M2, M3]{}, err
	}
	return Cartesian3[M1, M2, M3]{A: a, B: b, C: c}, nil
}

func (p *Product3[I, S, M1, M2, M3]) NextMove(in I, s S, mv Cartesian3[M1, M2, M3]) (Cartesian3[M1, M2, M3], bool) {
	if nc, ok := p.NE3.NextMove(in, s, mv.C); ok {
		return Cartesian3[M1, M2, M3]{A: mv.A, B: mv.B, C: nc}, true
	}
	if nb, ok := p.NE2.NextMove(in, s, mv.B); ok {
		fc, err := p.NE3.FirstMove(in, s)
		if err != nil {
			return Cartesian3[M1, M2, M3]{}, false
		}
		return Cartesian3[M1, M2, M3]{A: mv.A, B: nb, C: fc}, true
	}
	na, ok := p.NE1.NextMove(in, s, mv.A)
	if !ok {
		return Cartesian3[M1, M2, M3]{}, false
	}
	fb, err := p.NE2.FirstMove(in, s)
	if err != nil {
		return Cartesian3[M1, M2, M3]{}, false
	}
	fc, err := p.NE3.FirstMove(in, s)
	if err != nil {
		return Cartesian3[M1, M2, M3]{}, false
	}
	return Cartesian3[M1, M2, M3]{A: na, B: fb, C: fc}, true
}

func (p *Product3[I, S, M1, M2, M3]) RandomMove(in I, s S, rng *rand.Rand) (Cartesian3[M1, M2, M3], error) {
	a, err := p.NE1.RandomMove(in, s, rng)
	if err != nil {
		return Cartesian3[M1, M2, M3]{}, err
	}
	b, err := p.NE2.RandomMove(in, s, rng)
	if err != nil {
		return Cartesian3[M1, M2, M3]{}, err
	}
	c, err := p.NE3.RandomMove(in, s, rng)
	if err != nil {
		return Cartesian3[M1, M2, M3]{}, err
	}
	return Cartesian3[M1, M2, M3]{A: a, B: b, C: c}, nil
}

func (p *Product3[I, S, M1, M2, M3]) MakeMove(in I, s *S, mv Cartesian3[M1, M2, M3]) {
	p.NE1.MakeMove(in, s, mv.A)
	p.NE2.MakeMove(in, s, mv.B)
	p.NE3.MakeMove(in, s, mv.C)
}

func (p *Product3[I, S, M1, M2, M3]) DeltaCostComponents(in I, s S, mv Cartesian3[M1, M2, M3], weights []float64) cost.Structure {
	da := p.NE1.DeltaCostComponents(in, s, mv.A, weights)
	db := p.NE2.DeltaCostComponents(in, s, mv.B, weights)
	dc := p.NE3.DeltaCostComponents(in, s, mv.C, weights)
	return da.Add(db).Add(dc)
}
