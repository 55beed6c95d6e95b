// File: hill_climbing.go
package runner

import (
	"math/rand"

	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/internal/randstream"
	"github.com/katalvlaran/localsearch/neighborhood"
	"github.com/katalvlaran/localsearch/param"
)

// hillClimbingSamples bounds how many random draws HillClimbing (and LAHC,
// which shares its move-finding shape) spends per iteration looking for a
// non-worsening move.
const hillClimbingSamples = 10

// HillClimbing accepts the first non-worsening move found among up to 10
// random draws per iteration, stopping once max_idle_iterations have
// passed without a new best.
type HillClimbing[I, S, M any] struct {
	NE engine.NeighborhoodExplorer[I, S, M]

	Params            *param.Box
	maxIdleIterations *param.IntParam
	maxEvaluations    *param.IntParam

	rng *rand.Rand
}

// NewHillClimbing builds a HillClimbing over ne with the given idle-
// iteration budget.
func NewHillClimbing[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], maxIdleIterations int, seed int64) *HillClimbing[I, S, M] {
	box := newBox("hc")
	h := &HillClimbing[I, S, M]{
		NE:     ne,
		Params: box,
		rng:    randstream.Derive(randstream.New(seed), 0x41C),
	}
	h.maxIdleIterations = param.NewInt("max_idle_iterations", "iterations without improvement before stopping", int64(maxIdleIterations))
	box.Register(h.maxIdleIterations)
	h.maxEvaluations = registerMaxEvaluations(box)
	return h
}

func (h *HillClimbing[I, S, M]) Name() string { return "hill_climbing" }

func (h *HillClimbing[I, S, M]) InitializeRun(r *Base[I, S, M], in I) error {
	r.MaxEvaluations = uint64(h.maxEvaluations.Value)
	return nil
}

func (h *HillClimbing[I, S, M]) StopCriterion(r *Base[I, S, M], in I) bool {
	return r.Iteration-r.IterationOfBest >= uint64(h.maxIdleIterations.Value)
}

func (h *HillClimbing[I, S, M]) SelectMove(r *Base[I, S, M], in I) error {
	var sampled int
	em, err := neighborhood.RandomFirst[I, S, M](h.NE, in, r.CurrentState, hillClimbingSamples, nonWorsening[M], r.Weights, h.rng, &sampled)
	r.Evaluations += uint64(sampled)
	if err != nil {
		return err
	}
	r.CurrentMove = em
	return nil
}

func (h *HillClimbing[I, S, M]) AcceptableMoveFound(r *Base[I, S, M], in I) bool {
	return r.CurrentMove.Valid
}

func (h *HillClimbing[I, S, M]) MakeMove(r *Base[I, S, M], in I) {
	h.NE.MakeMove(in, &r.CurrentState, r.CurrentMove.Move)
	r.CurrentStateCost = r.CurrentStateCost.Add(r.CurrentMove.Cost)
}

func (h *HillClimbing[I, S, M]) CompleteIteration(r *Base[I, S, M], in I) {}

// Clone builds a fresh HillClimbing sharing h's NeighborhoodExplorer, with
// its own parameter copies and an RNG stream derived from h's current
// state so concurrently running clones never draw the same sequence.
func (h *HillClimbing[I, S, M]) Clone() Strategy[I, S, M] {
	c := NewHillClimbing[I, S, M](h.NE, int(h.maxIdleIterations.Value), h.rng.Int63())
	c.Params.CopyValuesFrom(h.Params)
	return c
}
