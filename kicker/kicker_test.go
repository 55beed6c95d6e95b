package kicker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localsearch/examples/bitflip"
	"github.com/katalvlaran/localsearch/kicker"
)

func TestIterate_ExhaustiveCountWithConsecutiveRelatedness(t *testing.T) {
	in := bitflip.Input{N: 4}
	ne := bitflip.NewFlipNE()
	k := kicker.New[bitflip.Input, []bool, int](ne, 3, 7)
	k.Related = func(_ bitflip.Input, _ []bool, prev, next int) bool { return prev != next }

	s := make([]bool, in.N)
	var count int
	err := k.Iterate(in, s, func(kicker.Kick[[]bool, int]) bool {
		count++
		return true
	})
	require.NoError(t, err)
	// Level 0 has 4 free choices; each subsequent level excludes only the
	// immediately preceding move, leaving 3 choices: 4*3*3 = 36.
	assert.Equal(t, 4*3*3, count)
}

func TestIterate_EachKickHasLSteps(t *testing.T) {
	in := bitflip.Input{N: 4}
	ne := bitflip.NewFlipNE()
	k := kicker.New[bitflip.Input, []bool, int](ne, 3, 1)

	s := make([]bool, in.N)
	err := k.Iterate(in, s, func(kk kicker.Kick[[]bool, int]) bool {
		assert.Equal(t, 3, kk.Len())
		return true
	})
	require.NoError(t, err)
}

func TestSelectBest_MinimizesTotalDeltaFast(t *testing.T) {
	in := bitflip.Input{N: 4}
	ne := bitflip.NewFlipNE()
	k := kicker.New[bitflip.Input, []bool, int](ne, 2, 3)

	// Start with two bits set; flipping both off in two steps gives the
	// most negative total delta (-2) among every length-2 kick.
	s := []bool{true, true, false, false}

	best, delta, err := k.SelectBest(in, s)
	require.NoError(t, err)
	assert.Equal(t, float64(-2), delta.Total)
	assert.False(t, best.FinalState()[0])
	assert.False(t, best.FinalState()[1])
}

func TestSelectFirst_StopsAtFirstNegativeDelta(t *testing.T) {
	in := bitflip.Input{N: 3}
	ne := bitflip.NewFlipNE()
	k := kicker.New[bitflip.Input, []bool, int](ne, 1, 9)

	s := []bool{true, false, false}
	found, delta, err := k.SelectFirst(in, s)
	require.NoError(t, err)
	assert.Less(t, delta.Total, 0.0)
	assert.Equal(t, 1, found.Len())
}

func TestSelectRandom_ProducesAFullLengthKick(t *testing.T) {
	in := bitflip.Input{N: 5}
	ne := bitflip.NewFlipNE()
	k := kicker.New[bitflip.Input, []bool, int](ne, 2, 11)

	s := make([]bool, in.N)
	kk, _, err := k.SelectRandom(in, s)
	require.NoError(t, err)
	assert.Equal(t, 2, kk.Len())
}

func TestIterate_EmptyNeighborhoodYieldsNoKicks(t *testing.T) {
	in := bitflip.Input{N: 0}
	ne := bitflip.NewFlipNE()
	k := kicker.New[bitflip.Input, []bool, int](ne, 2, 1)

	var count int
	err := k.Iterate(in, nil, func(kicker.Kick[[]bool, int]) bool {
		count++
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAuthoritativeTotalDelta_MatchesFastPathWhenSMIsConfigured(t *testing.T) {
	in := bitflip.Input{N: 4}
	ne := bitflip.NewFlipNE()
	sm := bitflip.NewManager()
	k := kicker.New[bitflip.Input, []bool, int](ne, 2, 5)
	k.SM = sm

	s := []bool{true, true, false, false}
	_, delta, err := k.SelectBest(in, s)
	require.NoError(t, err)
	assert.Equal(t, float64(-2), delta.Total)
}
