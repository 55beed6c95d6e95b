// File: great_deluge.go
package runner

import (
	"math/rand"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/internal/randstream"
	"github.com/katalvlaran/localsearch/neighborhood"
	"github.com/katalvlaran/localsearch/param"
)

// GreatDeluge accepts any move that does not raise the current cost above
// a slowly receding water level, stopping once the level drops below
// min_level times the best cost found.
type GreatDeluge[I, S, M any] struct {
	NE engine.NeighborhoodExplorer[I, S, M]

	Params           *param.Box
	initialLevel     *param.FloatParam
	minLevel         *param.FloatParam
	levelRate        *param.FloatParam
	neighborsSampled *param.IntParam
	maxEvaluations   *param.IntParam

	rng   *rand.Rand
	level float64
}

// NewGreatDeluge builds a GreatDeluge over ne. initialLevel<=0 means
// "derive from the starting state's cost" at InitializeRun time.
func NewGreatDeluge[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], initialLevel, minLevel, levelRate float64, neighborsSampled int, seed int64) *GreatDeluge[I, S, M] {
	box := newBox("gd")
	g := &GreatDeluge[I, S, M]{
		NE:     ne,
		Params: box,
		rng:    randstream.Derive(randstream.New(seed), 0x6D),
	}
	g.initialLevel = param.NewFloat("initial_level", "starting water level (<=0 derives from the initial state's cost)", initialLevel)
	box.Register(g.initialLevel)
	g.minLevel = param.NewFloat("min_level", "fraction of best cost at which the level stops the run", minLevel)
	box.Register(g.minLevel)
	g.levelRate = param.NewFloat("level_rate", "multiplicative decay applied to the level every neighbors_sampled iterations", levelRate)
	box.Register(g.levelRate)
	g.neighborsSampled = param.NewInt("neighbors_sampled", "iterations between level decays", int64(neighborsSampled))
	box.Register(g.neighborsSampled)
	g.maxEvaluations = registerMaxEvaluations(box)
	return g
}

func (g *GreatDeluge[I, S, M]) Name() string { return "great_deluge" }

func (g *GreatDeluge[I, S, M]) InitializeRun(r *Base[I, S, M], in I) error {
	if g.levelRate.Value <= 0 || g.levelRate.Value >= 1 {
		return param.ErrIncorrectParameterValue
	}
	r.MaxEvaluations = uint64(g.maxEvaluations.Value)
	if g.initialLevel.Value > 0 {
		g.level = g.initialLevel.Value
	} else {
		g.level = r.CurrentStateCost.Total
	}
	return nil
}

func (g *GreatDeluge[I, S, M]) StopCriterion(r *Base[I, S, M], in I) bool {
	return g.level < g.minLevel.Value*r.BestStateCost.Total
}

func (g *GreatDeluge[I, S, M]) accept(r *Base[I, S, M]) func(mv M, c cost.Structure) bool {
	return func(_ M, c cost.Structure) bool {
		return c.Total < 0 || r.CurrentStateCost.Total+c.Total <= g.level
	}
}

func (g *GreatDeluge[I, S, M]) SelectMove(r *Base[I, S, M], in I) error {
	var sampled int
	em, err := neighborhood.RandomFirst[I, S, M](g.NE, in, r.CurrentState, hillClimbingSamples, g.accept(r), r.Weights, g.rng, &sampled)
	r.Evaluations += uint64(sampled)
	if err != nil {
		return err
	}
	r.CurrentMove = em
	return nil
}

func (g *GreatDeluge[I, S, M]) AcceptableMoveFound(r *Base[I, S, M], in I) bool {
	return r.CurrentMove.Valid
}

func (g *GreatDeluge[I, S, M]) MakeMove(r *Base[I, S, M], in I) {
	g.NE.MakeMove(in, &r.CurrentState, r.CurrentMove.Move)
	r.CurrentStateCost = r.CurrentStateCost.Add(r.CurrentMove.Cost)
}

func (g *GreatDeluge[I, S, M]) CompleteIteration(r *Base[I, S, M], in I) {
	if r.Iteration%uint64(g.neighborsSampled.Value) == 0 {
		g.level *= g.levelRate.Value
	}
}

// Clone builds a fresh GreatDeluge sharing g's NeighborhoodExplorer.
func (g *GreatDeluge[I, S, M]) Clone() Strategy[I, S, M] {
	c := NewGreatDeluge[I, S, M](g.NE, g.initialLevel.Value, g.minLevel.Value, g.levelRate.Value, int(g.neighborsSampled.Value), g.rng.Int63())
	c.Params.CopyValuesFrom(g.Params)
	return c
}
