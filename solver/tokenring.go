// File: tokenring.go
// Role: TokenRing - like MultiStart but without re-randomization between
// passes: the current state simply carries forward, and idleness is counted
// per runner invocation rather than per pass.
package solver

import (
	"context"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/param"
)

// TokenRing passes a single evolving state around an ordered list of
// runners, round after round, with no re-randomization: each runner
// invocation either improves the best cost (resetting idle_rounds) or
// doesn't (incrementing it). The search stops once idle_rounds reaches
// MaxIdleRounds or round reaches MaxRounds.
type TokenRing[I, S, M any] struct {
	Base[I, S, M]

	Runners []RunnerEntry[I, S, M]

	Params        *param.Box
	maxRounds     *param.IntParam
	maxIdleRounds *param.IntParam
}

// NewTokenRing builds a TokenRing over runners, wiring sm into the solver
// and every runner in the list.
func NewTokenRing[I, S, M any](sm engine.SolutionManager[I, S], runners []RunnerEntry[I, S, M]) *TokenRing[I, S, M] {
	box := param.NewBox("tokenring")
	tr := &TokenRing[I, S, M]{Runners: runners}
	tr.SM = sm
	tr.Params = box
	tr.maxRounds = param.NewInt("max_rounds", "full passes through the runner list before giving up", 100)
	box.Register(tr.maxRounds)
	tr.maxIdleRounds = param.NewInt("max_idle_rounds", "consecutive non-improving runner invocations before giving up", 20)
	box.Register(tr.maxIdleRounds)
	var e RunnerEntry[I, S, M]
	for _, e = range runners {
		e.Runner.SM = sm
	}
	return tr
}

// Solve rotates the state through the runner list until the stop condition
// is reached, returning the best state/cost found across every round.
func (tr *TokenRing[I, S, M]) Solve(in I) (S, cost.Structure, error) {
	if len(tr.Runners) == 0 {
		var zero S
		return zero, cost.Structure{}, ErrEmptyRunnerList
	}
	if err := tr.initializeStates(in); err != nil {
		var zero S
		return zero, cost.Structure{}, err
	}

	interruptAll := func() {
		var e RunnerEntry[I, S, M]
		for _, e = range tr.Runners {
			e.Runner.Interrupt()
		}
	}

	var round int64
	var idleRounds int64
	err := tr.runWithTimeout(interruptAll, func() error {
		for round < tr.maxRounds.Value && idleRounds < tr.maxIdleRounds.Value {
			if tr.TimeoutExpired() || tr.Aborted() {
				return nil
			}
			tr.Observers.Restart(uint64(round))

			var e RunnerEntry[I, S, M]
			for _, e = range tr.Runners {
				if idleRounds >= tr.maxIdleRounds.Value {
					break
				}
				if tr.TimeoutExpired() || tr.Aborted() {
					return nil
				}
				state, c, err := e.Runner.Go(context.Background(), e.Strategy, in, tr.CurrentState)
				if err != nil {
					return err
				}
				tr.CurrentState, tr.CurrentCost = state, c
				if tr.considerBest(state, c) {
					idleRounds = 0
				} else {
					idleRounds++
				}
			}
			round++
		}
		return nil
	})
	if err != nil {
		var zero S
		return zero, cost.Structure{}, err
	}

	return tr.GetCurrentBestState(), tr.GetCurrentBestCost(), nil
}
