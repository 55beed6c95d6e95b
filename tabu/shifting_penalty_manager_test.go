package tabu_test

import (
	"testing"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/tabu"
	"github.com/stretchr/testify/assert"
)

func TestShiftingPenaltyManager_GrowsWeightOnSustainedViolation(t *testing.T) {
	m := tabu.NewShiftingPenaltyManager(0, 1, 1, 100, 0.5)
	violating := cost.Structure{Components: []float64{1}}
	m.Update(violating)
	assert.Equal(t, 1.0, m.Weight(), "a single iteration should not yet move the weight")
	m.Update(violating)
	assert.Equal(t, 1.5, m.Weight())
	m.Update(violating)
	assert.Equal(t, 2.0, m.Weight())
}

func TestShiftingPenaltyManager_ShrinksWeightOnSustainedFeasibility(t *testing.T) {
	m := tabu.NewShiftingPenaltyManager(0, 10, 1, 100, 0.5)
	feasible := cost.Structure{Components: []float64{0}}
	m.Update(feasible)
	assert.Equal(t, 10.0, m.Weight())
	m.Update(feasible)
	assert.Equal(t, 9.5, m.Weight())
}

func TestShiftingPenaltyManager_ClampsToBounds(t *testing.T) {
	m := tabu.NewShiftingPenaltyManager(0, 1, 1, 2, 10)
	violating := cost.Structure{Components: []float64{5}}
	m.Update(violating)
	m.Update(violating)
	m.Update(violating)
	assert.Equal(t, 2.0, m.Weight())
}

func TestShiftingPenaltyManager_FlipResetsStreak(t *testing.T) {
	m := tabu.NewShiftingPenaltyManager(0, 5, 1, 100, 1)
	violating := cost.Structure{Components: []float64{1}}
	feasible := cost.Structure{Components: []float64{0}}
	m.Update(violating)
	m.Update(feasible)
	assert.Equal(t, 5.0, m.Weight(), "alternating flips should never accumulate a streak")
}
