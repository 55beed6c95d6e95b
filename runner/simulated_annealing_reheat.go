// File: simulated_annealing_reheat.go
package runner

import (
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/param"
)

// SimulatedAnnealingReheat wraps SimulatedAnnealing, periodically reheating
// the temperature (instead of only cooling) so the search can escape a
// local optimum it has settled into, up to max_reheats times.
type SimulatedAnnealingReheat[I, S, M any] struct {
	sa *SimulatedAnnealing[I, S, M]

	Params            *param.Box
	firstReheatRatio  *param.FloatParam
	reheatRatio       *param.FloatParam
	maxReheats        *param.IntParam

	reheats           int
	evaluationsAtLast uint64
	reheatMilestone   uint64
}

// NewSimulatedAnnealingReheat builds the reheating variant over ne.
func NewSimulatedAnnealingReheat[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], seed int64) *SimulatedAnnealingReheat[I, S, M] {
	inner := newSimulatedAnnealingPrefixed[I, S, M](ne, seed, "sar")
	r := &SimulatedAnnealingReheat[I, S, M]{sa: inner, Params: inner.Params}
	r.firstReheatRatio = param.NewFloat("first_reheat_ratio", "temperature multiplier at the first reheat milestone", 2.0)
	inner.Params.Register(r.firstReheatRatio)
	r.reheatRatio = param.NewFloat("reheat_ratio", "temperature multiplier at subsequent reheat milestones", 1.5)
	inner.Params.Register(r.reheatRatio)
	r.maxReheats = param.NewInt("max_reheats", "number of reheats permitted before the run stops", 3)
	inner.Params.Register(r.maxReheats)
	return r
}

func (r *SimulatedAnnealingReheat[I, S, M]) Name() string { return "simulated_annealing_reheat" }

func (r *SimulatedAnnealingReheat[I, S, M]) InitializeRun(base *Base[I, S, M], in I) error {
	if err := r.sa.InitializeRun(base, in); err != nil {
		return err
	}
	r.reheats = 0
	r.evaluationsAtLast = 0
	r.reheatMilestone = base.MaxEvaluations / uint64(r.maxReheats.Value+1)
	if r.reheatMilestone == 0 {
		r.reheatMilestone = uint64(r.sa.levelMaxSampled) * uint64(r.sa.totalTemperatures) / uint64(r.maxReheats.Value+1)
	}
	return nil
}

func (r *SimulatedAnnealingReheat[I, S, M]) StopCriterion(base *Base[I, S, M], in I) bool {
	return r.reheats > r.maxReheats.Value || r.sa.StopCriterion(base, in)
}

func (r *SimulatedAnnealingReheat[I, S, M]) SelectMove(base *Base[I, S, M], in I) error {
	return r.sa.SelectMove(base, in)
}

func (r *SimulatedAnnealingReheat[I, S, M]) AcceptableMoveFound(base *Base[I, S, M], in I) bool {
	return r.sa.AcceptableMoveFound(base, in)
}

func (r *SimulatedAnnealingReheat[I, S, M]) MakeMove(base *Base[I, S, M], in I) {
	r.sa.MakeMove(base, in)
}

// CompleteIteration runs the ordinary cooling schedule, then reheats once
// cumulative evaluations cross the next milestone.
func (r *SimulatedAnnealingReheat[I, S, M]) CompleteIteration(base *Base[I, S, M], in I) {
	r.sa.CompleteIteration(base, in)

	if r.reheatMilestone == 0 || base.Evaluations < r.evaluationsAtLast+r.reheatMilestone {
		return
	}
	r.evaluationsAtLast = base.Evaluations
	ratio := r.reheatRatio.Value
	if r.reheats == 0 {
		ratio = r.firstReheatRatio.Value
	}
	r.sa.temperature *= ratio
	r.sa.sampledThisLevel = 0
	r.sa.acceptedThisLevel = 0
	r.reheats++
}

// Clone builds a fresh SimulatedAnnealingReheat sharing r's
// NeighborhoodExplorer, with its own parameter copies (inner SA params
// plus reheat params, both registered on the same Box) and derived RNG.
func (r *SimulatedAnnealingReheat[I, S, M]) Clone() Strategy[I, S, M] {
	c := NewSimulatedAnnealingReheat[I, S, M](r.sa.NE, r.sa.rng.Int63())
	c.Params.CopyValuesFrom(r.Params)
	return c
}
