// File: list_manager.go
// Role: the tenure-based ProhibitionManager (Component H).
package tabu

import (
	"math/rand"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/internal/randstream"
)

// Item is a single tabu list entry: the move it forbids, and the clock
// value at which it expires.
type Item[M any] struct {
	Move    M
	OutIter uint64
}

// AspirationFunc overrides the default aspiration criterion. Returning
// true lets a move through even when it would otherwise be prohibited.
type AspirationFunc[I, S, M any] func(in I, s S, mv M, moveCost, currentCost, bestCost cost.Structure) bool

// InverseFunc reports whether mv2 undoes mv1. Mandatory: a list manager
// cannot decide prohibition without it.
type InverseFunc[M any] func(mv1, mv2 M) bool

// ListManager is the standard tenure-based ProhibitionManager: each
// inserted move is forbidden until a randomly drawn tenure between
// MinTenure and MaxTenure (inclusive) elapses. A candidate move is
// considered prohibited when some live entry's move is its inverse,
// unless the aspiration criterion overrides that.
type ListManager[I, S, M any] struct {
	MinTenure, MaxTenure int
	Inverse              InverseFunc[M]
	Aspiration           AspirationFunc[I, S, M]

	items []Item[M]
	iter  uint64
	rng   *rand.Rand
}

var _ engine.ProhibitionManager[struct{}, struct{}, struct{}] = (*ListManager[struct{}, struct{}, struct{}])(nil)

// NewListManager builds a ListManager drawing tenures uniformly from
// [minTenure, maxTenure] using a stream derived from seed. inverse is
// mandatory; a nil aspiration falls back to the default "would the move
// set a new global best" criterion.
func NewListManager[I, S, M any](minTenure, maxTenure int, inverse InverseFunc[M], seed int64) *ListManager[I, S, M] {
	return &ListManager[I, S, M]{
		MinTenure: minTenure,
		MaxTenure: maxTenure,
		Inverse:   inverse,
		rng:       randstream.Derive(randstream.New(seed), streamTabuTenure),
	}
}

const streamTabuTenure uint64 = 0xA7

// InsertMove draws a tenure uniformly from [MinTenure, MaxTenure], records
// mv as expiring at the resulting iteration, and advances the clock.
func (l *ListManager[I, S, M]) InsertMove(in I, s S, mv M, moveCost, currentCost, bestCost cost.Structure) {
	span := l.MaxTenure - l.MinTenure
	tenure := l.MinTenure
	if span > 0 {
		tenure += l.rng.Intn(span + 1)
	}
	l.items = append(l.items, Item[M]{Move: mv, OutIter: l.iter + uint64(tenure)})
	l.iter++
}

// ListMember reports whether some live entry's move is the inverse of mv.
func (l *ListManager[I, S, M]) ListMember(mv M) bool {
	var it Item[M]
	for _, it = range l.items {
		if l.Inverse(mv, it.Move) {
			return true
		}
	}
	return false
}

// aspirationDefault permits a move that would improve on the best cost
// seen so far, regardless of prohibition.
func aspirationDefault[I, S, M any](_ I, _ S, _ M, moveCost, currentCost, bestCost cost.Structure) bool {
	return currentCost.Total+moveCost.Total < bestCost.Total
}

// ProhibitedMove reports whether mv is currently forbidden: its inverse is
// listed, and the aspiration criterion does not override that.
func (l *ListManager[I, S, M]) ProhibitedMove(in I, s S, mv M, moveCost cost.Structure) bool {
	return l.prohibited(in, s, mv, moveCost, cost.Structure{}, cost.Structure{})
}

// ProhibitedMoveWithCosts is the full-signature variant TabuSearch calls,
// carrying the current and best costs the default aspiration criterion
// needs. ProhibitedMove alone (the engine.ProhibitionManager shape) cannot
// express this since aspiration is cost-history-dependent.
func (l *ListManager[I, S, M]) ProhibitedMoveWithCosts(in I, s S, mv M, moveCost, currentCost, bestCost cost.Structure) bool {
	return l.prohibited(in, s, mv, moveCost, currentCost, bestCost)
}

func (l *ListManager[I, S, M]) prohibited(in I, s S, mv M, moveCost, currentCost, bestCost cost.Structure) bool {
	if !l.ListMember(mv) {
		return false
	}
	aspire := l.Aspiration
	if aspire == nil {
		aspire = aspirationDefault[I, S, M]
	}
	return !aspire(in, s, mv, moveCost, currentCost, bestCost)
}

// UpdateIteration purges entries whose tenure has expired, then advances
// the clock by one.
func (l *ListManager[I, S, M]) UpdateIteration() {
	kept := l.items[:0]
	var it Item[M]
	for _, it = range l.items {
		if it.OutIter > l.iter {
			kept = append(kept, it)
		}
	}
	l.items = kept
	l.iter++
}

// Clean empties the list and resets the clock to zero.
func (l *ListManager[I, S, M]) Clean() {
	l.items = nil
	l.iter = 0
}

// Len reports the number of currently live entries.
func (l *ListManager[I, S, M]) Len() int { return len(l.items) }
