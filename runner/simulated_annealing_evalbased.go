// File: simulated_annealing_evalbased.go
package runner

import (
	"strconv"

	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/param"
)

// SimulatedAnnealingEvalBased is SimulatedAnnealing configured so its
// per-temperature sampling quota is always derived from max_evaluations
// and the expected number of temperatures, rather than set directly via
// max_neighbors_sampled. It exists as a distinct type (rather than just
// documentation on how to configure SimulatedAnnealing) so a caller
// building a runner list by type, as the solver package does for
// MultiStart/TokenRing, can select this budget-driven behavior
// unambiguously.
type SimulatedAnnealingEvalBased[I, S, M any] struct {
	*SimulatedAnnealing[I, S, M]
}

// NewSimulatedAnnealingEvalBased builds the evaluation-budget variant over
// ne. maxEvaluations must be positive; InitializeRun rejects a run where
// max_neighbors_sampled was also explicitly set, since the two quota
// sources would conflict.
func NewSimulatedAnnealingEvalBased[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], maxEvaluations int64, seed int64) *SimulatedAnnealingEvalBased[I, S, M] {
	inner := newSimulatedAnnealingPrefixed[I, S, M](ne, seed, "sae")
	_ = inner.maxEvaluations.FromString(strconv.FormatInt(maxEvaluations, 10))
	return &SimulatedAnnealingEvalBased[I, S, M]{SimulatedAnnealing: inner}
}

func (e *SimulatedAnnealingEvalBased[I, S, M]) Name() string { return "simulated_annealing_evalbased" }

func (e *SimulatedAnnealingEvalBased[I, S, M]) InitializeRun(base *Base[I, S, M], in I) error {
	if !e.maxEvaluations.IsSet() {
		return param.ErrParameterNotSet
	}
	return e.SimulatedAnnealing.InitializeRun(base, in)
}

// Clone builds a fresh SimulatedAnnealingEvalBased sharing e's
// NeighborhoodExplorer and evaluation budget.
func (e *SimulatedAnnealingEvalBased[I, S, M]) Clone() Strategy[I, S, M] {
	c := NewSimulatedAnnealingEvalBased[I, S, M](e.NE, e.maxEvaluations.Value, e.rng.Int63())
	c.Params.CopyValuesFrom(e.Params)
	return c
}
