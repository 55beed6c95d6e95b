package neighborhood_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/neighborhood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedComponent reports a fixed delta per move index, letting tests
// pin down exactly which candidate should win a selection.
type scriptedComponent struct {
	deltas []float64
}

func (scriptedComponent) Name() string            { return "scripted" }
func (scriptedComponent) IsHard() bool            { return false }
func (scriptedComponent) Weight(int) float64      { return 1 }
func (scriptedComponent) ComputeCost(int, int) float64 { return 0 }
func (s scriptedComponent) ComputeDeltaCost(_ int, _ int, mv int) float64 {
	return s.deltas[mv]
}

// linearNE enumerates moves 0..n-1 in order; RandomMove draws uniformly.
type linearNE struct {
	n int
	engine.Components[int, int, int]
}

func newLinearNE(deltas []float64) *linearNE {
	l := &linearNE{n: len(deltas)}
	l.Components = engine.NewComponents[int, int, int](scriptedComponent{deltas: deltas})
	return l
}

func (l *linearNE) FirstMove(in int, s int) (int, error) {
	if l.n == 0 {
		return 0, engine.ErrEmptyNeighborhood
	}
	return 0, nil
}
func (l *linearNE) NextMove(in int, s int, mv int) (int, bool) {
	if mv+1 >= l.n {
		return 0, false
	}
	return mv + 1, true
}
func (l *linearNE) RandomMove(in int, s int, rng *rand.Rand) (int, error) {
	if l.n == 0 {
		return 0, engine.ErrEmptyNeighborhood
	}
	return rng.Intn(l.n), nil
}
func (l *linearNE) MakeMove(in int, s *int, mv int) {}

func negativeAccept(mv int, c cost.Structure) bool { return c.Total < 0 }
func leAccept(mv int, c cost.Structure) bool       { return c.Total <= 0 }

func TestSelectFirst_ReturnsTheSoleNegativeMove(t *testing.T) {
	ne := newLinearNE([]float64{0, 0, -5, 0, 0})
	var explored int
	em, err := neighborhood.SelectFirst[int, int, int](ne, 0, 0, negativeAccept, nil, &explored)
	require.NoError(t, err)
	require.True(t, em.Valid)
	assert.Equal(t, 2, em.Move)
	assert.Equal(t, 3, explored)
}

func TestSelectFirst_NoAcceptedCandidateIsInvalid(t *testing.T) {
	ne := newLinearNE([]float64{0, 0, 0})
	var explored int
	em, err := neighborhood.SelectFirst[int, int, int](ne, 0, 0, negativeAccept, nil, &explored)
	require.NoError(t, err)
	assert.False(t, em.Valid)
	assert.Equal(t, 3, explored)
}

func TestSelectBest_PicksMinimumAmongAccepted(t *testing.T) {
	ne := newLinearNE([]float64{-1, -9, -3, 0})
	var explored int
	em, err := neighborhood.SelectBest[int, int, int](ne, 0, 0, leAccept, nil, &explored, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.True(t, em.Valid)
	assert.Equal(t, 1, em.Move)
	assert.Equal(t, -9.0, em.Cost.Total)
	assert.Equal(t, 4, explored)
}

func TestSelectBest_TiesAreBrokenWithinAcceptedSet(t *testing.T) {
	ne := newLinearNE([]float64{-5, -5, -5, 0})
	em, err := neighborhood.SelectBest[int, int, int](ne, 0, 0, leAccept, nil, new(int), rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.True(t, em.Valid)
	assert.Contains(t, []int{0, 1, 2}, em.Move)
	assert.Equal(t, -5.0, em.Cost.Total)
}

func TestRandomFirst_StopsOnFirstAcceptedDraw(t *testing.T) {
	ne := newLinearNE([]float64{0, 0, -5, 0, 0})
	rng := rand.New(rand.NewSource(42))
	var sampled int
	em, err := neighborhood.RandomFirst[int, int, int](ne, 0, 0, 100, negativeAccept, nil, rng, &sampled)
	require.NoError(t, err)
	require.True(t, em.Valid)
	assert.Equal(t, 2, em.Move)
}

func TestRandomFirst_ExhaustsSamplesWithoutAccepting(t *testing.T) {
	ne := newLinearNE([]float64{0, 0, 0})
	rng := rand.New(rand.NewSource(42))
	var sampled int
	em, err := neighborhood.RandomFirst[int, int, int](ne, 0, 0, 5, negativeAccept, nil, rng, &sampled)
	require.NoError(t, err)
	assert.False(t, em.Valid)
	assert.Equal(t, 5, sampled)
}

func TestRandomBest_ReturnsBestOfFixedSampleBudget(t *testing.T) {
	ne := newLinearNE([]float64{-1, -9, -3, 0, -2})
	rng := rand.New(rand.NewSource(3))
	var sampled int
	em, err := neighborhood.RandomBest[int, int, int](ne, 0, 0, 50, leAccept, nil, rng, &sampled)
	require.NoError(t, err)
	require.True(t, em.Valid)
	assert.Equal(t, 50, sampled)
	assert.Equal(t, -9.0, em.Cost.Total)
}
