package cost_test

import (
	"testing"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvariant_TotalEqualsHardWeightTimesViolationsPlusObjective(t *testing.T) {
	c := cost.Structure{
		Violations: 2,
		Objective:  7,
		Components: []float64{1, 1, 7},
	}
	c.Total = cost.HardWeight*c.Violations + c.Objective
	require.InDelta(t, cost.HardWeight*2+7, c.Total, 1e-9)
	require.Len(t, c.Components, 3)
}

func TestAdd_ZeroExtendsShorterSide(t *testing.T) {
	a := cost.Structure{Components: []float64{1, 2}}
	b := cost.Structure{Components: []float64{10, 20, 30}}
	sum := a.Add(b)
	require.Len(t, sum.Components, 3)
	assert.Equal(t, []float64{11, 22, 30}, sum.Components)
}

func TestSub_IsInverseOfAdd(t *testing.T) {
	a := cost.Structure{Total: 5, Violations: 1, Objective: 2, Components: []float64{1, 1}}
	b := cost.Structure{Total: 2, Violations: 0, Objective: 1, Components: []float64{0, 1}}
	diff := a.Sub(b)
	assert.Equal(t, 3.0, diff.Total)
	assert.Equal(t, []float64{1, 0}, diff.Components)
}

func TestCompare_DefaultPrefersWeightedWhenBothCarryIt(t *testing.T) {
	a := cost.Structure{Total: 100, Weighted: 1, IsWeighted: true}
	b := cost.Structure{Total: 1, Weighted: 100, IsWeighted: true}
	assert.True(t, a.Less(b))
	assert.Equal(t, -1, a.Compare(b))
}

func TestCompare_FallsBackToTotalWhenEitherUnweighted(t *testing.T) {
	a := cost.Structure{Total: 100, Weighted: 1, IsWeighted: true}
	b := cost.Structure{Total: 1}
	assert.False(t, a.Less(b))
	assert.True(t, b.Less(a))
}

func TestCompareHierarchical_FirstDifferingIndexDecides(t *testing.T) {
	a := cost.Structure{Components: []float64{0, 5, 100}}
	b := cost.Structure{Components: []float64{0, 6, 0}}
	assert.Equal(t, -1, a.CompareHierarchical(b))
	assert.Equal(t, 1, b.CompareHierarchical(a))
}

func TestString_MatchesSpecFormat(t *testing.T) {
	c := cost.Structure{Total: 3, Violations: 1, Objective: 2, Components: []float64{1, 2}}
	assert.Equal(t, "3 (viol: 1, obj: 2, comps: {1, 2})", c.String())
}

func TestAt_OutOfRangeIsZero(t *testing.T) {
	c := cost.Structure{Components: []float64{4}}
	assert.Equal(t, 4.0, c.At(0))
	assert.Equal(t, 0.0, c.At(5))
	assert.Equal(t, 0.0, c.At(-1))
}
