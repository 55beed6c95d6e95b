// File: vnd.go
// Role: VND (Variable Neighborhood Descent), a supplemented feature
// recovered from original_source/: tries an ordered list of neighborhood
// runners and moves to the next only once the current one reaches a local
// optimum with no improvement, restarting from the first on any
// improvement.
package solver

import (
	"context"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
)

// VND drives an ordered list of runners: it starts at index 0, and after
// each runner invocation either restarts at index 0 (the invocation
// strictly improved the current cost) or advances to the next runner (it
// didn't). It stops once index reaches len(Runners) without having found an
// improvement anywhere in the sweep.
type VND[I, S, M any] struct {
	Base[I, S, M]

	Runners []RunnerEntry[I, S, M]
}

// NewVND builds a VND over runners, wiring sm into the solver and every
// runner in the list.
func NewVND[I, S, M any](sm engine.SolutionManager[I, S], runners []RunnerEntry[I, S, M]) *VND[I, S, M] {
	vnd := &VND[I, S, M]{Runners: runners}
	vnd.SM = sm
	var e RunnerEntry[I, S, M]
	for _, e = range runners {
		e.Runner.SM = sm
	}
	return vnd
}

// Solve descends through the neighborhood list until a full sweep with no
// improvement is reached.
func (vnd *VND[I, S, M]) Solve(in I) (S, cost.Structure, error) {
	if len(vnd.Runners) == 0 {
		var zero S
		return zero, cost.Structure{}, ErrEmptyRunnerList
	}
	if err := vnd.initializeStates(in); err != nil {
		var zero S
		return zero, cost.Structure{}, err
	}

	interruptAll := func() {
		var e RunnerEntry[I, S, M]
		for _, e = range vnd.Runners {
			e.Runner.Interrupt()
		}
	}

	err := vnd.runWithTimeout(interruptAll, func() error {
		idx := 0
		for idx < len(vnd.Runners) {
			if vnd.TimeoutExpired() || vnd.Aborted() {
				return nil
			}
			e := vnd.Runners[idx]
			state, c, err := e.Runner.Go(context.Background(), e.Strategy, in, vnd.CurrentState)
			if err != nil {
				return err
			}
			improved := c.Less(vnd.CurrentCost)
			vnd.CurrentState, vnd.CurrentCost = state, c
			vnd.considerBest(state, c)

			if improved {
				idx = 0
			} else {
				idx++
			}
		}
		return nil
	})
	if err != nil {
		var zero S
		return zero, cost.Structure{}, err
	}

	return vnd.GetCurrentBestState(), vnd.GetCurrentBestCost(), nil
}
