// File: errors.go
package solver

import "errors"

// ErrNoSolutionManager is returned by Solve when no SolutionManager was
// configured.
var ErrNoSolutionManager = errors.New("solver: no solution manager configured")

// ErrEmptyRunnerList is returned by Solve when a solver that drives a list
// of runners (MultiStart, TokenRing, VND, GRASP) was given none.
var ErrEmptyRunnerList = errors.New("solver: runner list is empty")
