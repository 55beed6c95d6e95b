package runner_test

import (
	"math/rand"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
)

// bitsInput/bitsManager/flipNE are the shared bit-flip fixture used across
// this package's runner tests: State is a []bool, Move is the index to
// flip, and the only cost component counts set bits.
type bitsInput struct{ n int }

type countOnes struct{}

func (countOnes) Name() string { return "ones" }
func (countOnes) IsHard() bool { return false }
func (countOnes) Weight(bitsInput) float64 { return 1 }
func (countOnes) ComputeCost(_ bitsInput, s []bool) float64 {
	var c float64
	var b bool
	for _, b = range s {
		if b {
			c++
		}
	}
	return c
}

type bitsManager struct {
	engine.Base[bitsInput, []bool]
}

func newBitsManager() *bitsManager {
	m := &bitsManager{}
	m.Base = engine.NewBase[bitsInput, []bool](0, countOnes{})
	return m
}

func (m *bitsManager) RandomState(in bitsInput) ([]bool, error) {
	s := make([]bool, in.n)
	var i int
	for i = range s {
		s[i] = true
	}
	return s, nil
}

func (m *bitsManager) GreedyState(in bitsInput, alpha float64, k int) ([]bool, error) {
	return m.Base.GreedyState(m, in, alpha, k)
}

func (m *bitsManager) SampleState(in bitsInput, k int) ([]bool, cost.Structure, error) {
	return m.Base.SampleState(m, in, k)
}

type flipNE struct {
	engine.Components[bitsInput, []bool, int]
}

func newFlipNE() *flipNE {
	cc := countOnes{}
	delta := engine.NewAdapterDelta[bitsInput, []bool, int](cc, func(_ bitsInput, s []bool, mv int) []bool {
		out := make([]bool, len(s))
		copy(out, s)
		out[mv] = !out[mv]
		return out
	})
	f := &flipNE{}
	f.Components = engine.NewComponents[bitsInput, []bool, int](delta)
	return f
}

func (f *flipNE) FirstMove(in bitsInput, s []bool) (int, error) {
	if in.n == 0 {
		return 0, engine.ErrEmptyNeighborhood
	}
	return 0, nil
}
func (f *flipNE) NextMove(in bitsInput, s []bool, mv int) (int, bool) {
	if mv+1 >= in.n {
		return 0, false
	}
	return mv + 1, true
}
func (f *flipNE) RandomMove(in bitsInput, s []bool, rng *rand.Rand) (int, error) {
	if in.n == 0 {
		return 0, engine.ErrEmptyNeighborhood
	}
	return rng.Intn(in.n), nil
}
func (f *flipNE) MakeMove(in bitsInput, s *[]bool, mv int) { (*s)[mv] = !(*s)[mv] }
