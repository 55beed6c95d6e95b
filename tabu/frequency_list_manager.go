// File: frequency_list_manager.go
// Role: the frequency-augmented tabu list manager.
package tabu

import (
	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/engine"
)

// FrequencyListManager extends ListManager with a long-run frequency
// penalty: beyond MinIter iterations, a move whose historical insertion
// frequency (inserts divided by elapsed iterations) exceeds Threshold is
// also prohibited, independent of tenure expiry.
type FrequencyListManager[I, S, M comparable] struct {
	*ListManager[I, S, M]
	MinIter   uint64
	Threshold float64

	frequency map[M]uint64
	totalIter uint64
}

var _ engine.ProhibitionManager[struct{}, struct{}, struct{}] = (*FrequencyListManager[struct{}, struct{}, struct{}])(nil)

// NewFrequencyListManager wraps a ListManager built with the same tenure
// bounds, adding the frequency rule described above.
func NewFrequencyListManager[I, S, M comparable](minTenure, maxTenure int, inverse InverseFunc[M], minIter uint64, threshold float64, seed int64) *FrequencyListManager[I, S, M] {
	return &FrequencyListManager[I, S, M]{
		ListManager: NewListManager[I, S, M](minTenure, maxTenure, inverse, seed),
		MinIter:     minIter,
		Threshold:   threshold,
		frequency:   make(map[M]uint64),
	}
}

// InsertMove records mv in the underlying tenure list and bumps its
// insertion frequency counter.
func (f *FrequencyListManager[I, S, M]) InsertMove(in I, s S, mv M, moveCost, currentCost, bestCost cost.Structure) {
	f.frequency[mv]++
	f.ListManager.InsertMove(in, s, mv, moveCost, currentCost, bestCost)
}

// ProhibitedMove forbids mv if the base tenure rule forbids it, or if its
// long-run insertion frequency exceeds Threshold past MinIter iterations.
func (f *FrequencyListManager[I, S, M]) ProhibitedMove(in I, s S, mv M, moveCost cost.Structure) bool {
	if f.ListManager.ProhibitedMove(in, s, mv, moveCost) {
		return true
	}
	return f.overFrequency(mv)
}

// ProhibitedMoveWithCosts is the cost-aware counterpart TabuSearch calls.
func (f *FrequencyListManager[I, S, M]) ProhibitedMoveWithCosts(in I, s S, mv M, moveCost, currentCost, bestCost cost.Structure) bool {
	if f.ListManager.ProhibitedMoveWithCosts(in, s, mv, moveCost, currentCost, bestCost) {
		return true
	}
	return f.overFrequency(mv)
}

func (f *FrequencyListManager[I, S, M]) overFrequency(mv M) bool {
	if f.totalIter <= f.MinIter {
		return false
	}
	return float64(f.frequency[mv])/float64(f.totalIter) > f.Threshold
}

// UpdateIteration advances the underlying tenure clock and the
// elapsed-iteration count; frequency counters are cumulative for the
// manager's whole lifetime and reset only by Clean.
func (f *FrequencyListManager[I, S, M]) UpdateIteration() {
	f.totalIter++
	f.ListManager.UpdateIteration()
}

// Clean resets both the tenure list and the frequency table.
func (f *FrequencyListManager[I, S, M]) Clean() {
	f.ListManager.Clean()
	f.frequency = make(map[M]uint64)
	f.totalIter = 0
}
