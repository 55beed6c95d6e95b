// File: shifting_penalty_manager.go
// Role: adaptive soft-constraint weight management (supplemented feature,
// grounded on original_source's ShiftingPenaltyManager.hh). Not a
// ProhibitionManager: it mutates the weight a runner passes into
// DeltaCostComponents/CostFunctionComponents rather than forbidding moves.
package tabu

import "github.com/katalvlaran/localsearch/cost"

// ShiftingPenaltyManager grows a soft component's weight after repeated
// violations and shrinks it after sustained feasibility, so a runner that
// keeps failing a soft constraint is gradually pushed to respect it while
// one that satisfies it for a long stretch is allowed to relax.
type ShiftingPenaltyManager struct {
	ComponentIndex int
	MinWeight      float64
	MaxWeight      float64
	Shift          float64

	weight    float64
	violating bool
	run       int
}

// NewShiftingPenaltyManager builds a manager tracking component idx,
// bounded to [minWeight, maxWeight] and adjusted by shift per run.
func NewShiftingPenaltyManager(idx int, initial, minWeight, maxWeight, shift float64) *ShiftingPenaltyManager {
	return &ShiftingPenaltyManager{
		ComponentIndex: idx,
		MinWeight:      minWeight,
		MaxWeight:      maxWeight,
		Shift:          shift,
		weight:         initial,
	}
}

// Weight returns the manager's current multiplier for its component.
func (m *ShiftingPenaltyManager) Weight() float64 { return m.weight }

// Update inspects c.At(ComponentIndex): a nonzero contribution counts as a
// violation of that soft component and grows the weight; a zero
// contribution counts toward a feasibility run that shrinks it. A streak
// must persist (run resets on any flip) before weight moves, so a single
// noisy iteration doesn't cause thrashing.
func (m *ShiftingPenaltyManager) Update(c cost.Structure) {
	violating := c.At(m.ComponentIndex) != 0
	if violating != m.violating {
		m.violating = violating
		m.run = 0
	}
	m.run++
	if m.run < 2 {
		return
	}
	if violating {
		m.weight += m.Shift
	} else {
		m.weight -= m.Shift
	}
	if m.weight < m.MinWeight {
		m.weight = m.MinWeight
	}
	if m.weight > m.MaxWeight {
		m.weight = m.MaxWeight
	}
}

// Reset restores the manager to its construction-time state, except for
// the weight itself which persists across InitializeRun boundaries unless
// the caller also calls SetWeight.
func (m *ShiftingPenaltyManager) Reset() {
	m.violating = false
	m.run = 0
}

// SetWeight forces the current weight, clamped to [MinWeight, MaxWeight].
func (m *ShiftingPenaltyManager) SetWeight(w float64) {
	if w < m.MinWeight {
		w = m.MinWeight
	}
	if w > m.MaxWeight {
		w = m.MaxWeight
	}
	m.weight = w
}
