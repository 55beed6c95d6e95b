// File: tabu_search_sample.go
package runner

import (
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/neighborhood"
	"github.com/katalvlaran/localsearch/param"
	"github.com/katalvlaran/localsearch/tabu"
)

// SampleTabuSearch (ST) replaces TabuSearch's exhaustive select_best scan
// with random_best over a fixed sample budget, trading exactness for speed
// on large neighborhoods.
type SampleTabuSearch[I, S, M any] struct {
	*TabuSearch[I, S, M]

	samples *param.IntParam
}

// NewSampleTabuSearch builds the sampling variant, drawing samples random
// moves per iteration.
func NewSampleTabuSearch[I, S, M any](ne engine.NeighborhoodExplorer[I, S, M], inverse tabu.InverseFunc[M], samples int, maxIdleIterations int, seed int64) *SampleTabuSearch[I, S, M] {
	base := NewTabuSearch[I, S, M](ne, inverse, maxIdleIterations, seed)
	base.Params.Prefix = "st"
	s := &SampleTabuSearch[I, S, M]{TabuSearch: base}
	s.samples = param.NewInt("samples", "random moves drawn per iteration", int64(samples))
	base.Params.Register(s.samples)
	return s
}

func (s *SampleTabuSearch[I, S, M]) Name() string { return "sample_tabu_search" }

func (s *SampleTabuSearch[I, S, M]) SelectMove(r *Base[I, S, M], in I) error {
	var sampled int
	em, err := neighborhood.RandomBest[I, S, M](s.NE, in, r.CurrentState, int(s.samples.Value), s.accept(in, r), r.Weights, s.rng, &sampled)
	r.Evaluations += uint64(sampled)
	if err != nil {
		return err
	}
	r.CurrentMove = em
	return nil
}

// Clone builds a fresh SampleTabuSearch sharing s's NeighborhoodExplorer
// and Inverse relation.
func (s *SampleTabuSearch[I, S, M]) Clone() Strategy[I, S, M] {
	c := NewSampleTabuSearch[I, S, M](s.NE, s.Inverse, int(s.samples.Value), int(s.maxIdleIterations.Value), s.rng.Int63())
	c.Params.CopyValuesFrom(s.Params)
	return c
}
