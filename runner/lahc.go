// File: lahc.go
package runner

import (
	"math/rand"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/internal/randstream"
	"github.com/katalvlaran/localsearch/neighborhood"
	"github.com/katalvlaran/localsearch/param"
)

// LAHC is late-acceptance hill climbing: a move is accepted when it does
// not worsen the current cost, or when it does no worse than the cost
// recorded Steps iterations ago. Shares HillClimbing's idle-iteration stop
// criterion and random-draw move finding.
type LAHC[I, S, M any] struct {
	NE engine.NeighborhoodExplorer[I, S, M]

	Params            *param.Box
	steps             *param.IntParam
	maxIdleIterations *param.IntParam
	maxEvaluations    *param.IntParam

	rng   *rand.Rand
	queue []float64
}

// NewLAHC builds an LAHC over ne with a history length of steps (must be
// positive; validated at InitializeRun, not at construction, per the
// error-handling design's "all parameter validation before any
// iteration").
func NewLAHC[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], steps int, maxIdleIterations int, seed int64) *LAHC[I, S, M] {
	box := newBox("lahc")
	l := &LAHC[I, S, M]{
		NE:     ne,
		Params: box,
		rng:    randstream.Derive(randstream.New(seed), 0x1A4C),
	}
	l.steps = param.NewInt("steps", "length of the late-acceptance history queue", int64(steps))
	box.Register(l.steps)
	l.maxIdleIterations = param.NewInt("max_idle_iterations", "iterations without improvement before stopping", int64(maxIdleIterations))
	box.Register(l.maxIdleIterations)
	l.maxEvaluations = registerMaxEvaluations(box)
	return l
}

func (l *LAHC[I, S, M]) Name() string { return "lahc" }

func (l *LAHC[I, S, M]) InitializeRun(r *Base[I, S, M], in I) error {
	if l.steps.Value <= 0 {
		return param.ErrIncorrectParameterValue
	}
	r.MaxEvaluations = uint64(l.maxEvaluations.Value)
	l.queue = make([]float64, l.steps.Value)
	var i int64
	for i = 0; i < l.steps.Value; i++ {
		l.queue[i] = r.CurrentStateCost.Total
	}
	return nil
}

func (l *LAHC[I, S, M]) StopCriterion(r *Base[I, S, M], in I) bool {
	return r.Iteration-r.IterationOfBest >= uint64(l.maxIdleIterations.Value)
}

func (l *LAHC[I, S, M]) accept(r *Base[I, S, M]) func(mv M, c cost.Structure) bool {
	slot := l.queue[r.Iteration%uint64(len(l.queue))]
	return func(_ M, c cost.Structure) bool {
		return c.Total <= 0 || r.CurrentStateCost.Total+c.Total <= slot
	}
}

func (l *LAHC[I, S, M]) SelectMove(r *Base[I, S, M], in I) error {
	var sampled int
	em, err := neighborhood.RandomFirst[I, S, M](l.NE, in, r.CurrentState, hillClimbingSamples, l.accept(r), r.Weights, l.rng, &sampled)
	r.Evaluations += uint64(sampled)
	if err != nil {
		return err
	}
	r.CurrentMove = em
	return nil
}

func (l *LAHC[I, S, M]) AcceptableMoveFound(r *Base[I, S, M], in I) bool {
	return r.CurrentMove.Valid
}

func (l *LAHC[I, S, M]) MakeMove(r *Base[I, S, M], in I) {
	l.NE.MakeMove(in, &r.CurrentState, r.CurrentMove.Move)
	r.CurrentStateCost = r.CurrentStateCost.Add(r.CurrentMove.Cost)
	l.queue[r.Iteration%uint64(len(l.queue))] = r.BestStateCost.Total
}

func (l *LAHC[I, S, M]) CompleteIteration(r *Base[I, S, M], in I) {}

// Clone builds a fresh LAHC sharing l's NeighborhoodExplorer, with its own
// history queue (rebuilt at InitializeRun) and derived RNG stream.
func (l *LAHC[I, S, M]) Clone() Strategy[I, S, M] {
	c := NewLAHC[I, S, M](l.NE, int(l.steps.Value), int(l.maxIdleIterations.Value), l.rng.Int63())
	c.Params.CopyValuesFrom(l.Params)
	return c
}
