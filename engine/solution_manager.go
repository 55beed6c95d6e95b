// File: solution_manager.go
// Role: SolutionManager contract (Component D) and its Base embedding
// helper.
package engine

import (
	"math/rand"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/internal/randstream"
)

// SolutionManager owns the search space: it builds initial states, scores
// them, and answers bound/distance questions. RandomState is the only
// mandatory method; every other method has a sensible default available
// via Base.
type SolutionManager[I, S any] interface {
	// RandomState builds a uniformly random starting state. Mandatory.
	RandomState(in I) (S, error)
	// GreedyState builds a state via a GRASP-style restricted candidate
	// list of size k with greediness alpha; defaults to RandomState.
	GreedyState(in I, alpha float64, k int) (S, error)
	// SampleState draws k random states and returns the best by cost.
	SampleState(in I, k int) (S, cost.Structure, error)
	// CostFunctionComponents evaluates every registered CostComponent on
	// s, assembling Total/Violations/Objective/Components (and
	// Weighted/IsWeighted when weights is non-nil).
	CostFunctionComponents(in I, s S, weights []float64) (cost.Structure, error)
	// LowerBoundReached reports whether c already matches the known lower
	// bound (default: c.Total == 0).
	LowerBoundReached(in I, c cost.Structure) bool
	// CheckConsistency is a testing hook; the default is a no-op.
	CheckConsistency(in I, s S) error
	// StateDistance measures how far apart two states are; optional.
	StateDistance(in I, s1, s2 S) (uint32, error)
}

// Base provides the default behavior of every SolutionManager method except
// RandomState. A concrete problem's SolutionManager embeds Base and
// supplies RandomState plus the GreedyState/SampleState forwarders
// described below (and, optionally, overrides StateDistance/CheckConsistency) to
// complete the interface - the composition idiom Design Notes 9(a)
// substitutes for C++ CRTP.
//
// GreedyState and SampleState need to call back into RandomState, which
// Base does not itself have (Go embedding has no self-reference, unlike
// CRTP). Both therefore take the full SolutionManager as their first
// argument; the embedding type supplies one-line forwarders:
//
//	func (p *MyManager) GreedyState(in I, alpha float64, k int) (S, error) {
//		return p.Base.GreedyState(p, in, alpha, k)
//	}
type Base[I, S any] struct {
	components []CostComponent[I, S]
	rng        *rand.Rand
}

// NewBase constructs a Base with the given registered cost components and
// an optional deterministic seed (0 selects the package's fixed default
// stream, mirroring randstream.New).
func NewBase[I, S any](seed int64, components ...CostComponent[I, S]) Base[I, S] {
	return Base[I, S]{components: components, rng: randstream.New(seed)}
}

// AddCostComponent registers an additional component after construction.
func (b *Base[I, S]) AddCostComponent(cc CostComponent[I, S]) {
	b.components = append(b.components, cc)
}

// Components returns the registered cost components in registration order.
func (b *Base[I, S]) Components() []CostComponent[I, S] { return b.components }

// RNG exposes the Base's deterministic stream so embedders' RandomState
// implementations can share it instead of seeding their own.
func (b *Base[I, S]) RNG() *rand.Rand { return b.rng }

// GreedyState defaults to delegating to RandomState via the random
// SolutionManager passed in; concrete problems override this method
// directly when a real GRASP restricted-candidate-list construction is
// available.
func (b *Base[I, S]) GreedyState(sm SolutionManager[I, S], in I, alpha float64, k int) (S, error) {
	return sm.RandomState(in)
}

// SampleState draws k random states via sm.RandomState and returns the one
// with the least cost, computed through sm.CostFunctionComponents.
func (b *Base[I, S]) SampleState(sm SolutionManager[I, S], in I, k int) (S, cost.Structure, error) {
	var best S
	var bestCost cost.Structure
	var haveBest bool
	var i int
	for i = 0; i < k; i++ {
		s, err := sm.RandomState(in)
		if err != nil {
			var zero S
			return zero, cost.Structure{}, err
		}
		c, err := sm.CostFunctionComponents(in, s, nil)
		if err != nil {
			var zero S
			return zero, cost.Structure{}, err
		}
		if !haveBest || c.Less(bestCost) {
			best, bestCost, haveBest = s, c, true
		}
	}
	return best, bestCost, nil
}

// CostFunctionComponents iterates the registered components, segregating
// hard/soft contributions into Violations/Objective and assembling Total =
// HardWeight*Violations + Objective, per the spec's invariant.
func (b *Base[I, S]) CostFunctionComponents(in I, s S, weights []float64) (cost.Structure, error) {
	out := cost.Zero(len(b.components))
	var i int
	var cc CostComponent[I, S]
	for i, cc = range b.components {
		raw := cc.Weight(in) * cc.ComputeCost(in, s)
		out.Components[i] = raw
		if cc.IsHard() {
			out.Violations += raw
		} else {
			out.Objective += raw
		}
		if weights != nil && i < len(weights) {
			out.Weighted += weights[i] * raw
		}
	}
	out.Total = cost.HardWeight*out.Violations + out.Objective
	out.IsWeighted = weights != nil
	return out, nil
}

// LowerBoundReached defaults to "cost is exactly zero".
func (b *Base[I, S]) LowerBoundReached(in I, c cost.Structure) bool {
	return c.Total == 0
}

// CheckConsistency defaults to a no-op testing hook.
func (b *Base[I, S]) CheckConsistency(in I, s S) error { return nil }

// StateDistance defaults to ErrNotImplemented; override when a problem can
// provide a meaningful distance metric between states.
func (b *Base[I, S]) StateDistance(in I, s1, s2 S) (uint32, error) {
	return 0, ErrNotImplemented
}
