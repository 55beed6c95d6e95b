// File: set_union.go
// Role: SetUnion composes N heterogeneous neighborhoods into one, where a
// single move activates exactly one constituent (the "any constituent"
// multimodal mode).
package multimodal

import (
	"math/rand"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
)

// SetUnion enumerates the union of its constituents' neighborhoods: the
// first constituent's moves in full, then the second's, and so on.
// RandomMove draws a constituent uniformly at random and then a random
// move within it. DeltaCostComponents dispatches to the active
// constituent alone; the other constituents are untouched by a SetUnion
// move, so they contribute nothing to its delta.
type SetUnion[I, S any] struct {
	constituents []Constituent[I, S]
}

// NewSetUnion builds a SetUnion over the given constituents, each produced
// by Wrap. Order determines enumeration order.
func NewSetUnion[I, S any](constituents ...Constituent[I, S]) *SetUnion[I, S] {
	return &SetUnion[I, S]{constituents: constituents}
}

var _ engine.NeighborhoodExplorer[struct{}, struct{}, Move] = (*SetUnion[struct{}, struct{}])(nil)

func (u *SetUnion[I, S]) FirstMove(in I, s S) (Move, error) {
	var idx int
	for idx = 0; idx < len(u.constituents); idx++ {
		mv, err := u.constituents[idx].firstMove(in, s)
		if err == nil {
			return Move{Active: idx, Slot: mv}, nil
		}
		if err != engine.ErrEmptyNeighborhood {
			return Move{}, err
		}
	}
	return Move{}, engine.ErrEmptyNeighborhood
}

func (u *SetUnion[I, S]) NextMove(in I, s S, mv Move) (Move, bool) {
	next, ok := u.constituents[mv.Active].nextMove(in, s, mv.Slot)
	if ok {
		return Move{Active: mv.Active, Slot: next}, true
	}
	var idx int
	for idx = mv.Active + 1; idx < len(u.constituents); idx++ {
		first, err := u.constituents[idx].firstMove(in, s)
		if err == nil {
			return Move{Active: idx, Slot: first}, true
		}
		if err != engine.ErrEmptyNeighborhood {
			return Move{}, false
		}
	}
	return Move{}, false
}

func (u *SetUnion[I, S]) RandomMove(in I, s S, rng *rand.Rand) (Move, error) {
	if len(u.constituents) == 0 {
		return Move{}, engine.ErrEmptyNeighborhood
	}
	order := rng.Perm(len(u.constituents))
	var idx int
	for _, idx = range order {
		mv, err := u.constituents[idx].randomMove(in, s, rng)
		if err == nil {
			return Move{Active: idx, Slot: mv}, nil
		}
		if err != engine.ErrEmptyNeighborhood {
			return Move{}, err
		}
	}
	return Move{}, engine.ErrEmptyNeighborhood
}

func (u *SetUnion[I, S]) MakeMove(in I, s *S, mv Move) {
	u.constituents[mv.Active].makeMove(in, s, mv.Slot)
}

func (u *SetUnion[I, S]) DeltaCostComponents(in I, s S, mv Move, weights []float64) cost.Structure {
	return u.constituents[mv.Active].deltaCost(in, s, mv.Slot, weights)
}

// Inverse reports whether m2 undoes m1, per the active constituent's own
// inverse relation. Moves activating different constituents are never
// inverses of one another.
func (u *SetUnion[I, S]) Inverse(m1, m2 Move) bool {
	if m1.Active != m2.Active {
		return false
	}
	return u.constituents[m1.Active].inverse(m1.Slot, m2.Slot)
}
