// File: kick.go
// Role: Kick - the ordered sequence of evaluated moves a Kicker composes.
package kicker

import (
	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
)

// Step is one element of a Kick: the move applied at that position and the
// state reached immediately after applying it.
type Step[S, M any] struct {
	Move       engine.EvaluatedMove[M]
	StateAfter S
}

// Kick is an ordered composition of up to L moves, treated as an atomic
// perturbation by the Kicker's selectors.
type Kick[S, M any] struct {
	Steps []Step[S, M]
}

// Len reports the number of steps actually recorded.
func (k Kick[S, M]) Len() int { return len(k.Steps) }

// FinalState returns the state after the last step, or the zero value if k
// has no steps.
func (k Kick[S, M]) FinalState() S {
	if len(k.Steps) == 0 {
		var zero S
		return zero
	}
	return k.Steps[len(k.Steps)-1].StateAfter
}

// TotalDeltaFast sums every step's per-move delta cost without consulting
// a SolutionManager - the fast path from section 4.10.
func (k Kick[S, M]) TotalDeltaFast() cost.Structure {
	var total cost.Structure
	var st Step[S, M]
	for _, st = range k.Steps {
		total = total.Add(st.Move.Cost)
	}
	return total
}
