// File: move.go
// Role: EvaluatedMove - the cached (move, cost, validity) triple threaded
// through every selector and runner.
package engine

import "github.com/katalvlaran/localsearch/cost"

// EvaluatedMove pairs a Move with the cost of applying it and a validity
// flag. When Valid is true, Cost is authoritative for applying Move to the
// implicit current state: callers should not recompute it.
type EvaluatedMove[M any] struct {
	Move  M
	Cost  cost.Structure
	Valid bool
}

// Invalid returns the zero EvaluatedMove, used by selectors when no
// candidate satisfies the acceptance predicate.
func Invalid[M any]() EvaluatedMove[M] {
	return EvaluatedMove[M]{}
}
