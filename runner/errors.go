// File: errors.go
package runner

import "errors"

// ErrNoSolutionManager is returned by Go when no SolutionManager was
// configured on the Base before starting a run.
var ErrNoSolutionManager = errors.New("runner: no solution manager configured")

// ErrNoStrategy is returned by Go when no Strategy was supplied.
var ErrNoStrategy = errors.New("runner: no strategy configured")
