// File: multistart.go
// Role: MultiStart - rotates a list of runners over successive passes,
// re-randomizing the current state at each pass boundary, per spec.md
// section 4.11's stop conditions.
package solver

import (
	"context"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/param"
)

// MultiStart drives an ordered list of runners in rotation. Each full pass
// through the list is a "restart": if no runner in the pass improved the
// best cost, idle_restarts increments, else it resets to zero; a new random
// state is drawn at every pass boundary. The search stops once
// idle_restarts reaches MaxIdleRestarts or restart reaches MaxRestarts.
type MultiStart[I, S, M any] struct {
	Base[I, S, M]

	Runners []RunnerEntry[I, S, M]

	// Redraw produces the state carried into the next pass once one
	// completes; it defaults to SM.RandomState. GRASP overrides it with
	// SM.GreedyState(alpha, k) to keep every pass's restart biased toward
	// good candidates instead of uniformly random.
	Redraw func(in I) (S, error)

	Params          *param.Box
	maxRestarts     *param.IntParam
	maxIdleRestarts *param.IntParam
}

// NewMultiStart builds a MultiStart over runners, wiring sm into the solver
// and every runner in the list.
func NewMultiStart[I, S, M any](sm engine.SolutionManager[I, S], runners []RunnerEntry[I, S, M]) *MultiStart[I, S, M] {
	return newMultiStartPrefixed(sm, runners, "multistart")
}

func newMultiStartPrefixed[I, S, M any](sm engine.SolutionManager[I, S], runners []RunnerEntry[I, S, M], prefix string) *MultiStart[I, S, M] {
	box := param.NewBox(prefix)
	ms := &MultiStart[I, S, M]{Runners: runners}
	ms.SM = sm
	ms.RandomInitialState = true
	ms.Params = box
	ms.maxRestarts = param.NewInt("max_restarts", "passes through the runner list before giving up", 100)
	box.Register(ms.maxRestarts)
	ms.maxIdleRestarts = param.NewInt("max_idle_restarts", "consecutive non-improving passes before giving up", 10)
	box.Register(ms.maxIdleRestarts)
	var e RunnerEntry[I, S, M]
	for _, e = range runners {
		e.Runner.SM = sm
	}
	ms.Redraw = sm.RandomState
	return ms
}

// MaxRestarts and MaxIdleRestarts expose the tuned stop-condition values,
// settable either directly or through Params.
func (ms *MultiStart[I, S, M]) MaxRestarts() int     { return int(ms.maxRestarts.Value) }
func (ms *MultiStart[I, S, M]) MaxIdleRestarts() int { return int(ms.maxIdleRestarts.Value) }

// Solve runs the rotation until the stop condition is reached, returning the
// best state/cost found across every pass.
func (ms *MultiStart[I, S, M]) Solve(in I) (S, cost.Structure, error) {
	if len(ms.Runners) == 0 {
		var zero S
		return zero, cost.Structure{}, ErrEmptyRunnerList
	}
	if err := ms.initializeStates(in); err != nil {
		var zero S
		return zero, cost.Structure{}, err
	}

	interruptAll := func() {
		var e RunnerEntry[I, S, M]
		for _, e = range ms.Runners {
			e.Runner.Interrupt()
		}
	}

	var restart int64
	var idleRestarts int64
	err := ms.runWithTimeout(interruptAll, func() error {
		for restart < ms.maxRestarts.Value && idleRestarts < ms.maxIdleRestarts.Value {
			if ms.TimeoutExpired() || ms.Aborted() {
				return nil
			}
			ms.Observers.Restart(uint64(restart))

			passImproved := false
			var e RunnerEntry[I, S, M]
			for _, e = range ms.Runners {
				if ms.TimeoutExpired() || ms.Aborted() {
					return nil
				}
				state, c, err := e.Runner.Go(context.Background(), e.Strategy, in, ms.CurrentState)
				if err != nil {
					return err
				}
				ms.CurrentState, ms.CurrentCost = state, c
				if ms.considerBest(state, c) {
					passImproved = true
				}
			}

			restart++
			if passImproved {
				idleRestarts = 0
			} else {
				idleRestarts++
			}

			if restart < ms.maxRestarts.Value && idleRestarts < ms.maxIdleRestarts.Value {
				s, err := ms.Redraw(in)
				if err != nil {
					return err
				}
				c, err := ms.SM.CostFunctionComponents(in, s, nil)
				if err != nil {
					return err
				}
				ms.CurrentState, ms.CurrentCost = s, c
			}
		}
		return nil
	})
	if err != nil {
		var zero S
		return zero, cost.Structure{}, err
	}

	return ms.GetCurrentBestState(), ms.GetCurrentBestCost(), nil
}
