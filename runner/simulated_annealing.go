// File: simulated_annealing.go
package runner

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/internal/randstream"
	"github.com/katalvlaran/localsearch/neighborhood"
	"github.com/katalvlaran/localsearch/param"
)

// saProbeSamples is how many random moves compute_start_temperature draws
// to estimate the delta-cost variance (van Laarhoven-Aarts).
const saProbeSamples = 100

// acceptanceEps floors the uniform draw in the Metropolis criterion so
// -T*ln(u) never diverges at u==0.
const acceptanceEps = 1e-12

// SimulatedAnnealing cools a Metropolis acceptance criterion from a start
// temperature down to min_temperature, accepting worsening moves with
// probability exp(-delta/T).
type SimulatedAnnealing[I, S, M any] struct {
	NE engine.NeighborhoodExplorer[I, S, M]

	Params                 *param.Box
	computeStartTemp       *param.BoolParam
	startTemperature       *param.FloatParam
	minTemperature         *param.FloatParam
	coolingRate            *param.FloatParam
	maxNeighborsSampled    *param.IntParam
	maxNeighborsAccepted   *param.IntParam
	neighborsAcceptedRatio *param.FloatParam
	maxEvaluations         *param.IntParam

	rng *rand.Rand

	temperature          float64
	sampledThisLevel     int64
	acceptedThisLevel    int64
	levelMaxSampled      int64
	levelMaxAccepted     int64
	totalTemperatures    int
	temperaturesElapsed  int
}

// NewSimulatedAnnealing builds a SimulatedAnnealing over ne with sensible
// defaults; every field is also reachable through Params for CLI/JSON
// overrides before the first Go call.
func NewSimulatedAnnealing[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], seed int64) *SimulatedAnnealing[I, S, M] {
	return newSimulatedAnnealingPrefixed[I, S, M](ne, seed, "sa")
}

func newSimulatedAnnealingPrefixed[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], seed int64, prefix string) *SimulatedAnnealing[I, S, M] {
	box := newBox(prefix)
	sa := &SimulatedAnnealing[I, S, M]{
		NE:     ne,
		Params: box,
		rng:    randstream.Derive(randstream.New(seed), 0x5A),
	}
	sa.computeStartTemp = param.NewBool("compute_start_temperature", "estimate T0 from delta-cost variance instead of start_temperature", false)
	box.Register(sa.computeStartTemp)
	sa.startTemperature = param.NewFloat("start_temperature", "initial temperature T0", 100)
	box.Register(sa.startTemperature)
	sa.minTemperature = param.NewFloat("min_temperature", "temperature at which the run stops", 1e-3)
	box.Register(sa.minTemperature)
	sa.coolingRate = param.NewFloat("cooling_rate", "multiplicative cooling factor in (0,1)", 0.95)
	box.Register(sa.coolingRate)
	sa.maxNeighborsSampled = param.NewInt("max_neighbors_sampled", "neighbors sampled per temperature before cooling", 100)
	box.Register(sa.maxNeighborsSampled)
	sa.maxNeighborsAccepted = param.NewInt("max_neighbors_accepted", "accepted moves per temperature before cooling", 0)
	box.Register(sa.maxNeighborsAccepted)
	sa.neighborsAcceptedRatio = param.NewFloat("neighbors_accepted_ratio", "fraction of max_neighbors_sampled that ends a temperature early", 1.0)
	box.Register(sa.neighborsAcceptedRatio)
	sa.maxEvaluations = registerMaxEvaluations(box)
	return sa
}

func (sa *SimulatedAnnealing[I, S, M]) Name() string { return "simulated_annealing" }

func (sa *SimulatedAnnealing[I, S, M]) InitializeRun(r *Base[I, S, M], in I) error {
	if sa.coolingRate.Value <= 0 || sa.coolingRate.Value >= 1 {
		return param.ErrIncorrectParameterValue
	}

	t0 := sa.startTemperature.Value
	if sa.computeStartTemp.Value {
		if sa.startTemperature.IsSet() {
			return param.ErrIncorrectParameterValue
		}
		variance, err := sa.estimateStartTemperature(r, in)
		if err != nil {
			return err
		}
		t0 = variance
	}
	if !(sa.minTemperature.Value > 0 && sa.minTemperature.Value <= t0) {
		return param.ErrIncorrectParameterValue
	}
	sa.temperature = t0

	if sa.maxNeighborsSampled.IsSet() && sa.maxEvaluations.IsSet() {
		return param.ErrIncorrectParameterValue
	}
	sa.totalTemperatures = int(math.Ceil(-math.Log(t0/sa.minTemperature.Value) / math.Log(sa.coolingRate.Value)))
	if sa.totalTemperatures < 1 {
		sa.totalTemperatures = 1
	}
	switch {
	case sa.maxEvaluations.IsSet():
		sa.levelMaxSampled = sa.maxEvaluations.Value / int64(sa.totalTemperatures)
		if sa.levelMaxSampled < 1 {
			sa.levelMaxSampled = 1
		}
	default:
		sa.levelMaxSampled = sa.maxNeighborsSampled.Value
	}
	r.MaxEvaluations = uint64(sa.maxEvaluations.Value)

	if sa.maxNeighborsAccepted.IsSet() && sa.neighborsAcceptedRatio.IsSet() {
		return param.ErrIncorrectParameterValue
	}
	if sa.maxNeighborsAccepted.IsSet() {
		sa.levelMaxAccepted = sa.maxNeighborsAccepted.Value
	} else {
		ratio := sa.neighborsAcceptedRatio.Value
		if ratio <= 0 {
			ratio = 1
		}
		sa.levelMaxAccepted = int64(math.Ceil(float64(sa.levelMaxSampled) * ratio))
	}

	sa.sampledThisLevel = 0
	sa.acceptedThisLevel = 0
	sa.temperaturesElapsed = 0
	return nil
}

// estimateStartTemperature draws saProbeSamples random moves from the
// run's starting state and returns the sample variance of their delta
// costs, per van Laarhoven-Aarts.
func (sa *SimulatedAnnealing[I, S, M]) estimateStartTemperature(r *Base[I, S, M], in I) (float64, error) {
	deltas := make([]float64, 0, saProbeSamples)
	var i int
	for i = 0; i < saProbeSamples; i++ {
		mv, err := sa.NE.RandomMove(in, r.CurrentState, sa.rng)
		if err != nil {
			break
		}
		c := sa.NE.DeltaCostComponents(in, r.CurrentState, mv, r.Weights)
		deltas = append(deltas, c.Total)
	}
	if len(deltas) == 0 {
		return sa.startTemperature.Value, nil
	}
	var mean float64
	var d float64
	for _, d = range deltas {
		mean += d
	}
	mean /= float64(len(deltas))
	var variance float64
	for _, d = range deltas {
		variance += (d - mean) * (d - mean)
	}
	variance /= float64(len(deltas))
	if variance <= 0 {
		variance = 1
	}
	return variance, nil
}

func (sa *SimulatedAnnealing[I, S, M]) StopCriterion(r *Base[I, S, M], in I) bool {
	return sa.temperature <= sa.minTemperature.Value
}

func (sa *SimulatedAnnealing[I, S, M]) accept() func(mv M, c cost.Structure) bool {
	t := sa.temperature
	return func(_ M, c cost.Structure) bool {
		if c.Total <= 0 {
			return true
		}
		u := sa.rng.Float64()
		if u < acceptanceEps {
			u = acceptanceEps
		}
		return c.Total < -t*math.Log(u)
	}
}

func (sa *SimulatedAnnealing[I, S, M]) SelectMove(r *Base[I, S, M], in I) error {
	remaining := sa.levelMaxSampled - sa.sampledThisLevel
	if remaining < 1 {
		remaining = 1
	}
	var sampled int
	em, err := neighborhood.RandomFirst[I, S, M](sa.NE, in, r.CurrentState, int(remaining), sa.accept(), r.Weights, sa.rng, &sampled)
	r.Evaluations += uint64(sampled)
	sa.sampledThisLevel += int64(sampled)
	if err != nil {
		return err
	}
	r.CurrentMove = em
	return nil
}

func (sa *SimulatedAnnealing[I, S, M]) AcceptableMoveFound(r *Base[I, S, M], in I) bool {
	return r.CurrentMove.Valid
}

func (sa *SimulatedAnnealing[I, S, M]) MakeMove(r *Base[I, S, M], in I) {
	sa.NE.MakeMove(in, &r.CurrentState, r.CurrentMove.Move)
	r.CurrentStateCost = r.CurrentStateCost.Add(r.CurrentMove.Cost)
	sa.acceptedThisLevel++
}

// CompleteIteration cools the temperature once either per-level quota is
// exhausted, carrying any unused sampling budget into the next level so a
// temperature that ends early on acceptance doesn't waste it.
func (sa *SimulatedAnnealing[I, S, M]) CompleteIteration(r *Base[I, S, M], in I) {
	if sa.sampledThisLevel < sa.levelMaxSampled && sa.acceptedThisLevel < sa.levelMaxAccepted {
		return
	}
	carry := sa.levelMaxSampled - sa.sampledThisLevel
	if carry < 0 {
		carry = 0
	}
	sa.temperature *= sa.coolingRate.Value
	sa.temperaturesElapsed++
	sa.sampledThisLevel = 0
	sa.acceptedThisLevel = 0
	sa.levelMaxSampled += carry
}

// Clone builds a fresh SimulatedAnnealing sharing sa's NeighborhoodExplorer
// and prefix, with its own parameter copies and derived RNG stream.
func (sa *SimulatedAnnealing[I, S, M]) Clone() Strategy[I, S, M] {
	c := newSimulatedAnnealingPrefixed[I, S, M](sa.NE, sa.rng.Int63(), sa.Params.Prefix)
	c.Params.CopyValuesFrom(sa.Params)
	return c
}
