// File: errors.go
// Role: sentinel errors shared across the generic engine contracts.
package engine

import "errors"

var (
	// ErrEmptyNeighborhood is returned by FirstMove/RandomMove when no move
	// exists from the current state. runner.Base.Go treats it as the end
	// of the run and returns the best state without an error; the kicker
	// returns it to its caller when no kick can be built.
	ErrEmptyNeighborhood = errors.New("engine: neighborhood is empty")

	// ErrNotImplemented is returned by optional hooks (StateDistance) that
	// a problem has not overridden.
	ErrNotImplemented = errors.New("engine: optional hook not implemented")

	// ErrNoRunner indicates a Solver was asked to run with no Runner
	// configured.
	ErrNoRunner = errors.New("engine: no runner configured")

	// ErrUnknownRunner indicates a Runner was referenced that is not part
	// of the Solver's runner list.
	ErrUnknownRunner = errors.New("engine: runner not registered with solver")
)
