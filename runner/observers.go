// File: observers.go
// Role: lightweight event hooks a caller can attach to a Base before Go,
// feeding runner.Metrics, the websocket progress demo, or ad hoc logging.
package runner

import "github.com/katalvlaran/localsearch/cost"

// Observers holds optional callbacks invoked at well-defined points of the
// iteration loop. A nil field is simply skipped. None of these run under
// the caller's lock; they must not call back into the Base.
type Observers struct {
	// OnIteration fires once per completed iteration, after
	// CompleteIteration, with the iteration number just finished.
	OnIteration func(iteration uint64)
	// OnNewBest fires whenever the best state strictly improves.
	OnNewBest func(iteration uint64, best cost.Structure)
	// OnRestart fires when an enclosing Solver begins a new pass through
	// this runner (MultiStart, and so GRASP, and TokenRing call it directly;
	// Simple, VND and a bare runner.Base.Go never fire it).
	OnRestart func(restart uint64)
}

func (o Observers) iteration(i uint64) {
	if o.OnIteration != nil {
		o.OnIteration(i)
	}
}

func (o Observers) newBest(i uint64, c cost.Structure) {
	if o.OnNewBest != nil {
		o.OnNewBest(i, c)
	}
}

// Restart invokes OnRestart if set. Exported so the solver package, which
// has no access to this package's unexported fields, can fire it safely
// from MultiStart/TokenRing without a nil check at every call site.
func (o Observers) Restart(restart uint64) {
	if o.OnRestart != nil {
		o.OnRestart(restart)
	}
}
