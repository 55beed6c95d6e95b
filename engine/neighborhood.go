// File: neighborhood.go
// Role: NeighborhoodExplorer contract (Component F) and the Components
// embedding helper most plain (non-composite) explorers use to implement
// its DeltaCostComponents method.
package engine

import (
	"math/rand"

	"github.com/katalvlaran/localsearch/cost"
)

// NeighborhoodExplorer enumerates, samples and applies moves of a single
// type M over states S of problem I. Implementations provide the
// enumeration primitives plus DeltaCostComponents; the composite selectors
// (SelectFirst, SelectBest, RandomFirst, RandomBest) live in package
// neighborhood, layered on top of this contract.
//
// DeltaCostComponents is part of the interface, rather than a free
// function derived from a fixed component list, so that composite
// explorers (package multimodal) can answer it according to their own
// composition rule (the active constituent's delta for SetUnion, the sum
// across all constituents for CartesianProduct) instead of a uniform
// per-component sum. Plain explorers get a uniform-sum implementation for
// free by embedding Components.
type NeighborhoodExplorer[I, S, M any] interface {
	// FirstMove returns the first move in canonical enumeration order, or
	// ErrEmptyNeighborhood if none exists.
	FirstMove(in I, s S) (M, error)
	// NextMove advances mv to the next move in canonical order. ok is
	// false when enumeration has exhausted the neighborhood.
	NextMove(in I, s S, mv M) (next M, ok bool)
	// RandomMove draws a uniformly random move using rng.
	RandomMove(in I, s S, rng *rand.Rand) (M, error)
	// MakeMove applies mv to *s in place.
	MakeMove(in I, s *S, mv M)
	// DeltaCostComponents returns the cost delta mv would induce over s,
	// with Violations/Objective/Total assembled per the usual hard/soft
	// split, and Weighted/IsWeighted populated when weights is non-nil.
	DeltaCostComponents(in I, s S, mv M, weights []float64) cost.Structure
}

// Components is embedded by plain (non-composite) NeighborhoodExplorer
// implementations to get a DeltaCostComponents method that sums every
// registered DeltaCostComponent's contribution, segregating hard and soft
// components into Violations/Objective exactly as
// SolutionManager.CostFunctionComponents does for a full state.
type Components[I, S, M any] struct {
	list []DeltaCostComponent[I, S, M]
}

// NewComponents constructs a Components holder with the given registered
// delta cost components.
func NewComponents[I, S, M any](components ...DeltaCostComponent[I, S, M]) Components[I, S, M] {
	return Components[I, S, M]{list: components}
}

// Add registers an additional delta cost component.
func (c *Components[I, S, M]) Add(dc DeltaCostComponent[I, S, M]) {
	c.list = append(c.list, dc)
}

// List returns the registered components in registration order.
func (c *Components[I, S, M]) List() []DeltaCostComponent[I, S, M] { return c.list }

// DeltaCostComponents sums every registered component's weighted
// contribution for mv over s.
func (c *Components[I, S, M]) DeltaCostComponents(in I, s S, mv M, weights []float64) cost.Structure {
	out := cost.Zero(len(c.list))
	var i int
	var dc DeltaCostComponent[I, S, M]
	for i, dc = range c.list {
		raw := dc.Weight(in) * dc.ComputeDeltaCost(in, s, mv)
		out.Components[i] = raw
		if dc.IsHard() {
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
	return out
}
