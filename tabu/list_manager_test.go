package tabu_test

import (
	"testing"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/tabu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sameInt(a, b int) bool { return a == b }

func TestListManager_InsertThenImmediatelyProhibitsInverse(t *testing.T) {
	lm := tabu.NewListManager[int, int, int](2, 2, sameInt, 1)
	lm.InsertMove(0, 0, 5, cost.Structure{}, cost.Structure{Total: 10}, cost.Structure{Total: 0})
	assert.True(t, lm.ProhibitedMoveWithCosts(0, 0, 5, cost.Structure{}, cost.Structure{Total: 10}, cost.Structure{Total: 0}))
	assert.False(t, lm.ProhibitedMoveWithCosts(0, 0, 6, cost.Structure{}, cost.Structure{Total: 10}, cost.Structure{Total: 0}))
}

func TestListManager_ExpiresAfterTenureElapses(t *testing.T) {
	lm := tabu.NewListManager[int, int, int](3, 3, sameInt, 1)
	lm.InsertMove(0, 0, 5, cost.Structure{}, cost.Structure{}, cost.Structure{Total: 1000})
	require.Equal(t, 1, lm.Len())
	assert.True(t, lm.ListMember(5))
	lm.UpdateIteration()
	assert.True(t, lm.ListMember(5))
	lm.UpdateIteration()
	assert.True(t, lm.ListMember(5))
	lm.UpdateIteration()
	assert.False(t, lm.ListMember(5))
}

func TestListManager_AspirationOverridesProhibitionOnNewBest(t *testing.T) {
	lm := tabu.NewListManager[int, int, int](5, 5, sameInt, 1)
	lm.InsertMove(0, 0, 9, cost.Structure{}, cost.Structure{Total: 100}, cost.Structure{Total: 50})
	// current 40 + move -20 = 20 < best 50: aspiration should let it through.
	prohibited := lm.ProhibitedMoveWithCosts(0, 0, 9, cost.Structure{Total: -20}, cost.Structure{Total: 40}, cost.Structure{Total: 50})
	assert.False(t, prohibited)
}

func TestListManager_CleanResetsListAndClock(t *testing.T) {
	lm := tabu.NewListManager[int, int, int](3, 3, sameInt, 1)
	lm.InsertMove(0, 0, 1, cost.Structure{}, cost.Structure{}, cost.Structure{})
	lm.Clean()
	assert.Equal(t, 0, lm.Len())
	assert.False(t, lm.ListMember(1))
}

func TestFrequencyListManager_ProhibitsOverusedMoveBeyondMinIter(t *testing.T) {
	flm := tabu.NewFrequencyListManager[int, int, int](0, 0, sameInt, 2, 0.5, 1)
	for i := 0; i < 5; i++ {
		flm.InsertMove(0, 0, 7, cost.Structure{}, cost.Structure{}, cost.Structure{})
		flm.UpdateIteration()
	}
	assert.True(t, flm.ProhibitedMove(0, 0, 7, cost.Structure{}))
}

func TestFrequencyListManager_CleanResetsFrequencyTable(t *testing.T) {
	flm := tabu.NewFrequencyListManager[int, int, int](0, 0, sameInt, 0, 0.1, 1)
	flm.InsertMove(0, 0, 7, cost.Structure{}, cost.Structure{}, cost.Structure{})
	flm.Clean()
	assert.False(t, flm.ProhibitedMove(0, 0, 7, cost.Structure{}))
}
