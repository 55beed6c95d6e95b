// File: kicker.go
// Role: Kicker - exhaustive and sampling enumeration of L-step compound
// moves over a single NeighborhoodExplorer, plus the SelectFirst/
// SelectBest/SelectRandom selectors built on top.
package kicker

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/internal/randstream"
)

const streamKicker uint64 = 0x4B49

// RelatedFunc decides whether a candidate next move is related to the
// previous one in a kick, given the state reached between them. A nil
// RelatedFunc is treated as always-true.
type RelatedFunc[I, S, M any] func(in I, sBetween S, prev, next M) bool

// Kicker composes L moves from NE into a Kick. M must be comparable so the
// sampling iteration can detect a full rotation back to its first draw at
// a given level (the spec requires Move to be equality-comparable).
type Kicker[I, S any, M comparable] struct {
	NE engine.NeighborhoodExplorer[I, S, M]
	// SM, if set, switches the selectors' total-delta computation to the
	// authoritative path (SM.Cost(end) - SM.Cost(start)) instead of the
	// fast sum-of-steps path.
	SM      engine.SolutionManager[I, S]
	Related RelatedFunc[I, S, M]
	L       int
	Weights []float64

	rng *rand.Rand
}

// New builds a Kicker over ne composing kicks of length l, drawing from an
// RNG stream derived from seed.
func New[I, S any, M comparable](ne engine.NeighborhoodExplorer[I, S, M], l int, seed int64) *Kicker[I, S, M] {
	return &Kicker[I, S, M]{
		NE:  ne,
		L:   l,
		rng: randstream.Derive(randstream.New(seed), streamKicker),
	}
}

func (k *Kicker[I, S, M]) related(in I, between S, prev, next M) bool {
	if k.Related == nil {
		return true
	}
	return k.Related(in, between, prev, next)
}

// totalDelta computes a kick's total delta cost: the authoritative
// SM.Cost(end)-SM.Cost(start) when SM is configured, else the fast
// sum-of-steps path.
func (k *Kicker[I, S, M]) totalDelta(in I, start S, kick Kick[S, M]) (cost.Structure, error) {
	if k.SM == nil {
		return kick.TotalDeltaFast(), nil
	}
	before, err := k.SM.CostFunctionComponents(in, start, k.Weights)
	if err != nil {
		return cost.Structure{}, err
	}
	after, err := k.SM.CostFunctionComponents(in, kick.FinalState(), k.Weights)
	if err != nil {
		return cost.Structure{}, err
	}
	return after.Sub(before), nil
}

// Iterate enumerates every kick of length L exhaustively via explicit
// backtracking: at each position it scans the active neighborhood for a
// move related to the previous step, descending on success and
// backtracking to the prior position once the local neighborhood is
// exhausted. visit is called once per complete kick; returning false stops
// enumeration early.
func (k *Kicker[I, S, M]) Iterate(in I, s S, visit func(Kick[S, M]) bool) error {
	steps := make([]Step[S, M], 0, k.L)
	_, err := k.backtrack(in, s, &steps, visit)
	return err
}

// backtrack returns (continue, err): continue is false once visit has
// asked to stop or an error occurred.
func (k *Kicker[I, S, M]) backtrack(in I, state S, steps *[]Step[S, M], visit func(Kick[S, M]) bool) (bool, error) {
	if len(*steps) == k.L {
		return visit(Kick[S, M]{Steps: append([]Step[S, M](nil), (*steps)...)}), nil
	}

	mv, err := k.NE.FirstMove(in, state)
	if err != nil {
		if errors.Is(err, engine.ErrEmptyNeighborhood) {
			return true, nil
		}
		return false, err
	}

	for {
		if k.relatedToLast(in, state, *steps, mv) {
			after := state
			k.NE.MakeMove(in, &after, mv)
			c := k.NE.DeltaCostComponents(in, state, mv, k.Weights)
			*steps = append(*steps, Step[S, M]{Move: engine.EvaluatedMove[M]{Move: mv, Cost: c, Valid: true}, StateAfter: after})
			cont, err := k.backtrack(in, after, steps, visit)
			*steps = (*steps)[:len(*steps)-1]
			if err != nil {
				return false, err
			}
			if !cont {
				return false, nil
			}
		}
		next, ok := k.NE.NextMove(in, state, mv)
		if !ok {
			break
		}
		mv = next
	}
	return true, nil
}

func (k *Kicker[I, S, M]) relatedToLast(in I, between S, steps []Step[S, M], next M) bool {
	if len(steps) == 0 {
		return true
	}
	prev := steps[len(steps)-1].Move.Move
	return k.related(in, between, prev, next)
}

// SampleIterate draws one kick via the sampling iteration: at each
// position it draws a random move, remembers that first draw, and rotates
// through the neighborhood via NextMove (wrapping back to FirstMove) until
// a related move is found. If the rotation returns to the remembered first
// draw without finding one, it backtracks to the previous position and
// rotates on from the move chosen there; it returns
// engine.ErrEmptyNeighborhood if it backtracks past position zero.
func (k *Kicker[I, S, M]) SampleIterate(in I, s S) (Kick[S, M], error) {
	levelState := make([]S, k.L+1)
	levelState[0] = s
	cur := make([]M, k.L)
	first := make([]M, k.L)
	haveFirst := make([]bool, k.L)
	chosen := make([]M, k.L)
	chosenCost := make([]cost.Structure, k.L)

	level := 0
	// advance is set on backtracking so the resumed level rotates past the
	// move it had chosen instead of accepting it again.
	advance := false
	for level >= 0 && level < k.L {
		state := levelState[level]
		if !haveFirst[level] {
			mv, err := k.NE.RandomMove(in, state, k.rng)
			if err != nil {
				if errors.Is(err, engine.ErrEmptyNeighborhood) {
					level--
					advance = true
					continue
				}
				return Kick[S, M]{}, err
			}
			first[level] = mv
			cur[level] = mv
			haveFirst[level] = true
		}
		mv := cur[level]

		related := level == 0
		if !related {
			related = k.related(in, state, chosen[level-1], mv)
		}
		if advance {
			related, advance = false, false
		}
		if related {
			after := state
			k.NE.MakeMove(in, &after, mv)
			chosenCost[level] = k.NE.DeltaCostComponents(in, state, mv, k.Weights)
			chosen[level] = mv
			levelState[level+1] = after
			level++
			continue
		}

		next, ok := k.NE.NextMove(in, state, mv)
		if !ok {
			fm, err := k.NE.FirstMove(in, state)
			if err != nil {
				haveFirst[level] = false
				level--
				advance = true
				continue
			}
			next = fm
		}
		if next == first[level] {
			haveFirst[level] = false
			level--
			advance = true
			continue
		}
		cur[level] = next
	}

	if level < 0 {
		return Kick[S, M]{}, engine.ErrEmptyNeighborhood
	}

	steps := make([]Step[S, M], k.L)
	var i int
	for i = 0; i < k.L; i++ {
		steps[i] = Step[S, M]{
			Move:       engine.EvaluatedMove[M]{Move: chosen[i], Cost: chosenCost[i], Valid: true},
			StateAfter: levelState[i+1],
		}
	}
	return Kick[S, M]{Steps: steps}, nil
}

// SelectFirst returns the first kick (in exhaustive enumeration order)
// whose total delta cost is negative, or engine.ErrEmptyNeighborhood if
// none qualifies.
func (k *Kicker[I, S, M]) SelectFirst(in I, s S) (Kick[S, M], cost.Structure, error) {
	var (
		found      Kick[S, M]
		foundDelta cost.Structure
		ok         bool
		iterErr    error
	)
	err := k.Iterate(in, s, func(kick Kick[S, M]) bool {
		delta, derr := k.totalDelta(in, s, kick)
		if derr != nil {
			iterErr = derr
			return false
		}
		if delta.Total < 0 {
			found, foundDelta, ok = kick, delta, true
			return false
		}
		return true
	})
	if err != nil {
		return Kick[S, M]{}, cost.Structure{}, err
	}
	if iterErr != nil {
		return Kick[S, M]{}, cost.Structure{}, iterErr
	}
	if !ok {
		return Kick[S, M]{}, cost.Structure{}, engine.ErrEmptyNeighborhood
	}
	return found, foundDelta, nil
}

// SelectBest enumerates every kick exhaustively and returns the one
// minimizing total delta cost, ties broken uniformly at random via
// reservoir sampling exactly as neighborhood.SelectBest does for plain
// moves.
func (k *Kicker[I, S, M]) SelectBest(in I, s S) (Kick[S, M], cost.Structure, error) {
	var (
		best     Kick[S, M]
		bestCost cost.Structure
		haveBest bool
		ties     int
		iterErr  error
	)
	err := k.Iterate(in, s, func(kick Kick[S, M]) bool {
		delta, derr := k.totalDelta(in, s, kick)
		if derr != nil {
			iterErr = derr
			return false
		}
		switch {
		case !haveBest || delta.Less(bestCost):
			best, bestCost, haveBest, ties = kick, delta, true, 1
		case delta.Compare(bestCost) == 0:
			ties++
			if k.rng != nil && k.rng.Intn(ties) == 0 {
				best, bestCost = kick, delta
			}
		}
		return true
	})
	if err != nil {
		return Kick[S, M]{}, cost.Structure{}, err
	}
	if iterErr != nil {
		return Kick[S, M]{}, cost.Structure{}, iterErr
	}
	if !haveBest {
		return Kick[S, M]{}, cost.Structure{}, engine.ErrEmptyNeighborhood
	}
	return best, bestCost, nil
}

// SelectRandom draws a single kick via SampleIterate and reports its total
// delta cost.
func (k *Kicker[I, S, M]) SelectRandom(in I, s S) (Kick[S, M], cost.Structure, error) {
	kick, err := k.SampleIterate(in, s)
	if err != nil {
		return Kick[S, M]{}, cost.Structure{}, err
	}
	delta, err := k.totalDelta(in, s, kick)
	if err != nil {
		return Kick[S, M]{}, cost.Structure{}, err
	}
	return kick, delta, nil
}
