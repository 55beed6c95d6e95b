// File: base.go
// Role: Runner Base / Move-Runner (Components I, M): the generic
// iteration loop every concrete runner shares.
package runner

import (
	"context"
	"errors"
	"sync"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/interruptible"
)

// Strategy supplies the subclass contracts the iteration loop in Base.Go
// delegates to. Every method takes the running Base as its first
// parameter (the self-reference forwarder pattern used throughout this
// module wherever a helper needs to call back into the struct embedding
// it) so a Strategy can read and mutate the run's bookkeeping directly.
type Strategy[I, S, M any] interface {
	// Name identifies the runner for logging and parameter namespacing.
	Name() string
	// InitializeRun performs one-time setup and parameter validation
	// before the first iteration (SA's setup invariants, LAHC's queue
	// prefill, tabu list reset). Returning an error aborts the run before
	// any state is mutated.
	InitializeRun(r *Base[I, S, M], in I) error
	// StopCriterion reports whether the run should end before starting
	// another iteration.
	StopCriterion(r *Base[I, S, M], in I) bool
	// SelectMove chooses the next candidate and stores it in r.CurrentMove.
	// Returning engine.ErrEmptyNeighborhood ends the run gracefully with
	// the current best; any other error propagates to the caller.
	SelectMove(r *Base[I, S, M], in I) error
	// AcceptableMoveFound reports whether r.CurrentMove should be applied.
	AcceptableMoveFound(r *Base[I, S, M], in I) bool
	// MakeMove applies r.CurrentMove to r.CurrentState and updates
	// r.CurrentStateCost accordingly.
	MakeMove(r *Base[I, S, M], in I)
	// CompleteIteration runs per-iteration housekeeping regardless of
	// whether a move was made (SA cooling, great deluge's level, tabu's
	// UpdateIteration).
	CompleteIteration(r *Base[I, S, M], in I)
	// Clone returns a fresh Strategy of the same concrete type, sharing
	// this one's non-owning references (NeighborhoodExplorer, inverse
	// relation) but carrying its own copy of parameter values and its own
	// derived RNG stream, so a solver can instantiate one template runner
	// many times without instances interfering with each other.
	Clone() Strategy[I, S, M]
}

// Base is the generic runner state shared by every concrete strategy:
// iteration counters, current/best state and cost, the move under
// consideration, and the cooperative-cancellation Mixin.
type Base[I, S, M any] struct {
	interruptible.Mixin

	SM      engine.SolutionManager[I, S]
	Weights []float64

	MaxEvaluations uint64

	Observers Observers

	Iteration       uint64
	IterationOfBest uint64
	Evaluations     uint64

	CurrentState     S
	BestState        S
	CurrentStateCost cost.Structure
	BestStateCost    cost.Structure
	CurrentMove      engine.EvaluatedMove[M]

	IsRunning bool

	mu     sync.Mutex
	bestMu sync.RWMutex
}

// Go runs the iteration loop described by the runner's pseudocode:
// initialize, then loop while not stopped/timed out/aborted/evaluation
// capped/lower-bound-reached, selecting and applying moves through
// strategy, finally snapping state back to the best found. It holds an
// exclusive lock for the duration of the call; concurrent GetCurrentBest*
// calls remain safe throughout.
func (r *Base[I, S, M]) Go(ctx context.Context, strategy Strategy[I, S, M], in I, state S) (S, cost.Structure, error) {
	if r.SM == nil {
		var zero S
		return zero, cost.Structure{}, ErrNoSolutionManager
	}
	if strategy == nil {
		var zero S
		return zero, cost.Structure{}, ErrNoStrategy
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.Reset()
	r.IsRunning = true
	defer func() { r.IsRunning = false }()

	r.Iteration = 0
	r.IterationOfBest = 0
	r.Evaluations = 0
	r.CurrentState = state
	startCost, err := r.SM.CostFunctionComponents(in, state, r.Weights)
	if err != nil {
		var zero S
		return zero, cost.Structure{}, err
	}
	r.CurrentStateCost = startCost
	r.setBest(state, startCost)

	if err = strategy.InitializeRun(r, in); err != nil {
		var zero S
		return zero, cost.Structure{}, err
	}

	for {
		select {
		case <-ctx.Done():
			return r.finish(ctx.Err())
		default:
		}
		if r.MaxEvaluations > 0 && r.Evaluations >= r.MaxEvaluations {
			break
		}
		if strategy.StopCriterion(r, in) {
			break
		}
		if r.SM.LowerBoundReached(in, r.BestStateCost) {
			break
		}
		if r.TimeoutExpired() || r.Aborted() {
			break
		}

		r.Iteration++

		err = strategy.SelectMove(r, in)
		if errors.Is(err, engine.ErrEmptyNeighborhood) {
			break
		}
		if err != nil {
			return r.finish(err)
		}
		if strategy.AcceptableMoveFound(r, in) {
			strategy.MakeMove(r, in)
			r.updateBestState()
		}
		strategy.CompleteIteration(r, in)
		r.Observers.iteration(r.Iteration)
	}

	return r.finish(nil)
}

func (r *Base[I, S, M]) finish(err error) (S, cost.Structure, error) {
	r.bestMu.RLock()
	state, c := r.BestState, r.BestStateCost
	r.bestMu.RUnlock()
	return state, c, err
}

func (r *Base[I, S, M]) setBest(s S, c cost.Structure) {
	r.bestMu.Lock()
	r.BestState, r.BestStateCost = s, c
	r.bestMu.Unlock()
}

// updateBestState copies current into best when current strictly
// improves, recording the iteration it happened at and firing OnNewBest.
func (r *Base[I, S, M]) updateBestState() {
	if r.CurrentStateCost.Less(r.BestStateCost) {
		r.setBest(r.CurrentState, r.CurrentStateCost)
		r.IterationOfBest = r.Iteration
		r.Observers.newBest(r.Iteration, r.CurrentStateCost)
	}
}

// Clone returns a fresh Base wired to the same SolutionManager, weights
// and observers (all non-owning references per the spec's ownership
// model) but with its own run-scoped bookkeeping and mutexes, ready for
// an independent Go call. Run state (Iteration, CurrentState, BestState,
// ...) is left zero-valued: InitializeRun/Go populate it fresh each run.
func (r *Base[I, S, M]) Clone() Base[I, S, M] {
	return Base[I, S, M]{
		SM:             r.SM,
		Weights:        append([]float64(nil), r.Weights...),
		MaxEvaluations: r.MaxEvaluations,
		Observers:      r.Observers,
	}
}

// GetCurrentBestState returns a snapshot of the best state found so far,
// safe to call concurrently with a running Go.
func (r *Base[I, S, M]) GetCurrentBestState() S {
	r.bestMu.RLock()
	defer r.bestMu.RUnlock()
	return r.BestState
}

// GetCurrentBestCost returns a snapshot of the best cost found so far.
func (r *Base[I, S, M]) GetCurrentBestCost() cost.Structure {
	r.bestMu.RLock()
	defer r.bestMu.RUnlock()
	return r.BestStateCost
}
