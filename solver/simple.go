// File: simple.go
// Role: Simple - the one-runner solver: build an initial state, hand it to
// a single Runner once, keep whatever it returns as best.
package solver

import (
	"context"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/runner"
)

// Simple drives exactly one Runner exactly once. It is the baseline solver
// every other solver in this package generalizes.
type Simple[I, S, M any] struct {
	Base[I, S, M]

	Runner   *runner.Base[I, S, M]
	Strategy runner.Strategy[I, S, M]
}

// NewSimple builds a Simple solver over r/strategy, wiring sm into both the
// solver and the runner.
func NewSimple[I, S, M any](sm engine.SolutionManager[I, S], r *runner.Base[I, S, M], strategy runner.Strategy[I, S, M]) *Simple[I, S, M] {
	s := &Simple[I, S, M]{Runner: r, Strategy: strategy}
	s.SM = sm
	r.SM = sm
	return s
}

// Solve builds an initial state and runs Runner/Strategy against it exactly
// once. When Timeout is positive, it propagates into the Runner via
// Interrupt once it elapses, ending the inner Go call cooperatively.
func (s *Simple[I, S, M]) Solve(in I) (S, cost.Structure, error) {
	if s.Runner == nil || s.Strategy == nil {
		var zero S
		return zero, cost.Structure{}, engine.ErrNoRunner
	}

	if err := s.initializeStates(in); err != nil {
		var zero S
		return zero, cost.Structure{}, err
	}

	err := s.runWithTimeout(s.Runner.Interrupt, func() error {
		state, c, err := s.Runner.Go(context.Background(), s.Strategy, in, s.CurrentState)
		if err != nil {
			return err
		}
		s.CurrentState, s.CurrentCost = state, c
		s.setBest(state, c)
		return nil
	})
	if err != nil {
		var zero S
		return zero, cost.Structure{}, err
	}

	return s.GetCurrentBestState(), s.GetCurrentBestCost(), nil
}
