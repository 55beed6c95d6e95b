// File: prohibition.go
// Role: ProhibitionManager contract (Component H's behavioral interface;
// concrete TabuListManager/FrequencyListManager live in package tabu).
package engine

import "github.com/katalvlaran/localsearch/cost"

// ProhibitionManager decides whether a move is currently forbidden and
// records moves as they are applied. TabuSearch runners hold one of these;
// package tabu provides the standard tenure-based implementation.
type ProhibitionManager[I, S, M any] interface {
	// InsertMove records mv as just applied, typically scheduling it for
	// future prohibition.
	InsertMove(in I, s S, mv M, moveCost, currentCost, bestCost cost.Structure)
	// ProhibitedMove reports whether mv is currently forbidden.
	ProhibitedMove(in I, s S, mv M, moveCost cost.Structure) bool
	// UpdateIteration advances the manager's internal clock, purging any
	// now-expired entries.
	UpdateIteration()
	// Clean resets the manager to its initial, empty state.
	Clean()
}
