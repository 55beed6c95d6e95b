// File: base.go
// Role: Base - the state and initialization logic shared by every concrete
// solver (Component L): an initial state built via the SolutionManager, the
// best state/cost found so far, and the cooperative-cancellation Mixin.
package solver

import (
	"sync"
	"time"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/interruptible"
	"github.com/katalvlaran/localsearch/runner"
)

// RunnerEntry pairs a runner.Base instance with the Strategy driving it.
// Every solver that rotates through a list of runners (MultiStart,
// TokenRing, VND, GRASP) is configured with a slice of these.
type RunnerEntry[I, S, M any] struct {
	Runner   *runner.Base[I, S, M]
	Strategy runner.Strategy[I, S, M]
}

// Base holds the state shared by Simple, MultiStart, TokenRing, VND and
// GRASP: the SolutionManager that builds and scores states, the current and
// best state/cost, the restart-construction knobs, and the
// cooperative-cancellation Mixin propagated into whichever Runner is
// currently active.
type Base[I, S, M any] struct {
	interruptible.Mixin

	SM engine.SolutionManager[I, S]

	// InitTrials is how many candidate initial states are drawn before
	// the search begins; the cheapest by CostFunctionComponents is kept.
	// Zero is treated as one.
	InitTrials int
	// RandomInitialState selects RandomState for the initial draw instead
	// of GreedyState(in, 0, 0).
	RandomInitialState bool
	// Timeout bounds the whole Solve call when positive; it arms this
	// Base's own Mixin and is propagated into whichever Runner is active
	// via Runner.Interrupt, exactly as a Runner propagates its own timeout
	// into nothing further (it is the innermost level).
	Timeout time.Duration

	Observers runner.Observers

	CurrentState S
	BestState    S
	CurrentCost  cost.Structure
	BestCost     cost.Structure

	bestMu sync.RWMutex
}

// setBest records s/c as the best found so far, unconditionally.
func (b *Base[I, S, M]) setBest(s S, c cost.Structure) {
	b.bestMu.Lock()
	b.BestState, b.BestCost = s, c
	b.bestMu.Unlock()
}

// considerBest records s/c as the new best only if it strictly improves on
// the current one, returning whether it did.
func (b *Base[I, S, M]) considerBest(s S, c cost.Structure) bool {
	b.bestMu.Lock()
	improved := c.Less(b.BestCost)
	if improved {
		b.BestState, b.BestCost = s, c
	}
	b.bestMu.Unlock()
	return improved
}

// GetCurrentBestState returns a snapshot of the best state found so far,
// safe to call concurrently with a running Solve.
func (b *Base[I, S, M]) GetCurrentBestState() S {
	b.bestMu.RLock()
	defer b.bestMu.RUnlock()
	return b.BestState
}

// GetCurrentBestCost returns a snapshot of the best cost found so far.
func (b *Base[I, S, M]) GetCurrentBestCost() cost.Structure {
	b.bestMu.RLock()
	defer b.bestMu.RUnlock()
	return b.BestCost
}

// initializeStates draws InitTrials candidate initial states (RandomState
// when RandomInitialState is set, GreedyState(in, 0, 0) otherwise) and keeps
// the cheapest, seeding both CurrentState and BestState from it.
func (b *Base[I, S, M]) initializeStates(in I) error {
	if b.SM == nil {
		return ErrNoSolutionManager
	}
	trials := b.InitTrials
	if trials < 1 {
		trials = 1
	}

	var best S
	var bestCost cost.Structure
	var have bool
	var i int
	for i = 0; i < trials; i++ {
		s, err := b.draw(in)
		if err != nil {
			return err
		}
		c, err := b.SM.CostFunctionComponents(in, s, nil)
		if err != nil {
			return err
		}
		if !have || c.Less(bestCost) {
			best, bestCost, have = s, c, true
		}
	}

	b.CurrentState, b.CurrentCost = best, bestCost
	b.setBest(best, bestCost)
	return nil
}

// runWithTimeout arms b's Mixin for b.Timeout (a no-op if zero) and runs fn,
// having first registered hook as the propagation target for when the
// timeout fires - typically interrupting whichever Runner(s) fn is about to
// drive.
func (b *Base[I, S, M]) runWithTimeout(hook func(), fn func() error) error {
	b.Reset()
	b.OnTimeoutExpired(hook)
	if b.Timeout <= 0 {
		return fn()
	}
	return b.Mixin.Go(b.Timeout, fn)
}

func (b *Base[I, S, M]) draw(in I) (S, error) {
	if b.RandomInitialState {
		return b.SM.RandomState(in)
	}
	return b.SM.GreedyState(in, 0, 0)
}
