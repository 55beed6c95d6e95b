package multimodal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/multimodal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// incNE and decNE are two trivial single-move neighborhoods over an int
// state, used to exercise SetUnion's composition without a real problem.
type incNE struct{ n int }

func (e incNE) FirstMove(in int, s int) (int, error) {
	if e.n == 0 {
		return 0, engine.ErrEmptyNeighborhood
	}
	return 1, nil
}
func (e incNE) NextMove(in int, s int, mv int) (int, bool) {
	if mv+1 > e.n {
		return 0, false
	}
	return mv + 1, true
}
func (e incNE) RandomMove(in int, s int, rng *rand.Rand) (int, error) {
	if e.n == 0 {
		return 0, engine.ErrEmptyNeighborhood
	}
	return 1 + rng.Intn(e.n), nil
}
func (e incNE) MakeMove(in int, s *int, mv int) { *s += mv }
func (e incNE) DeltaCostComponents(in int, s int, mv int, weights []float64) cost.Structure {
	return cost.Structure{Total: float64(mv), Objective: float64(mv)}
}

type decNE struct{ n int }

func (e decNE) FirstMove(in int, s int) (int, error) {
	if e.n == 0 {
		return 0, engine.ErrEmptyNeighborhood
	}
	return 1, nil
}
func (e decNE) NextMove(in int, s int, mv int) (int, bool) {
	if mv+1 > e.n {
		return 0, false
	}
	return mv + 1, true
}
func (e decNE) RandomMove(in int, s int, rng *rand.Rand) (int, error) {
	if e.n == 0 {
		return 0, engine.ErrEmptyNeighborhood
	}
	return 1 + rng.Intn(e.n), nil
}
func (e decNE) MakeMove(in int, s *int, mv int) { *s -= mv }
func (e decNE) DeltaCostComponents(in int, s int, mv int, weights []float64) cost.Structure {
	return cost.Structure{Total: -float64(mv), Objective: -float64(mv)}
}

func TestSetUnion_EnumeratesEachConstituentInFull(t *testing.T) {
	u := multimodal.NewSetUnion[int, int](
		multimodal.Wrap[int, int, int](incNE{n: 2}, func(a, b int) bool { return a == b }),
		multimodal.Wrap[int, int, int](decNE{n: 3}, nil),
	)

	var seen []multimodal.Move
	mv, err := u.FirstMove(0, 0)
	require.NoError(t, err)
	for {
		seen = append(seen, mv)
		next, ok := u.NextMove(0, 0, mv)
		if !ok {
			break
		}
		mv = next
	}
	require.Len(t, seen, 5)
	assert.Equal(t, 0, seen[0].Active)
	assert.Equal(t, 0, seen[1].Active)
	assert.Equal(t, 1, seen[2].Active)
	assert.Equal(t, 1, seen[3].Active)
	assert.Equal(t, 1, seen[4].Active)
}

func TestSetUnion_DeltaCostComponents_DispatchesToActiveConstituentOnly(t *testing.T) {
	u := multimodal.NewSetUnion[int, int](
		multimodal.Wrap[int, int, int](incNE{n: 5}, nil),
		multimodal.Wrap[int, int, int](decNE{n: 5}, nil),
	)
	mv := multimodal.Move{Active: 1, Slot: 3}
	c := u.DeltaCostComponents(0, 10, mv, nil)
	assert.Equal(t, -3.0, c.Total)
}

func TestSetUnion_MakeMove_AppliesThroughActiveConstituent(t *testing.T) {
	u := multimodal.NewSetUnion[int, int](
		multimodal.Wrap[int, int, int](incNE{n: 5}, nil),
		multimodal.Wrap[int, int, int](decNE{n: 5}, nil),
	)
	s := 10
	u.MakeMove(0, &s, multimodal.Move{Active: 0, Slot: 4})
	assert.Equal(t, 14, s)
	u.MakeMove(0, &s, multimodal.Move{Active: 1, Slot: 4})
	assert.Equal(t, 10, s)
}

func TestSetUnion_Inverse_OnlyWithinSameConstituent(t *testing.T) {
	u := multimodal.NewSetUnion[int, int](
		multimodal.Wrap[int, int, int](incNE{n: 5}, func(a, b int) bool { return a == b }),
		multimodal.Wrap[int, int, int](decNE{n: 5}, func(a, b int) bool { return a == b }),
	)
	assert.True(t, u.Inverse(multimodal.Move{Active: 0, Slot: 2}, multimodal.Move{Active: 0, Slot: 2}))
	assert.False(t, u.Inverse(multimodal.Move{Active: 0, Slot: 2}, multimodal.Move{Active: 1, Slot: 2}))
}

func TestSetUnion_RandomMove_SkipsEmptyConstituents(t *testing.T) {
	u := multimodal.NewSetUnion[int, int](
		multimodal.Wrap[int, int, int](incNE{n: 0}, nil),
		multimodal.Wrap[int, int, int](decNE{n: 3}, nil),
	)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		mv, err := u.RandomMove(0, 0, rng)
		require.NoError(t, err)
		assert.Equal(t, 1, mv.Active)
	}
}
