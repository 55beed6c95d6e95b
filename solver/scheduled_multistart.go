// File: scheduled_multistart.go
// Role: ScheduledMultiStart, a domain-stack wiring of robfig/cron/v3 for the
// long-running optimization daemon use case named in SPEC_FULL.md's domain
// stack section: periodically re-run a MultiStart against the same input on
// a cron schedule, handing each run's result to a callback.
package solver

import (
	"github.com/robfig/cron/v3"

	"github.com/katalvlaran/localsearch/cost"
)

// ScheduledMultiStart wraps a MultiStart with a cron.Cron trigger. Start
// arms the schedule; Stop drains any in-flight run and disarms it. Its own
// Solve is not meant to be called directly - Start drives the wrapped
// MultiStart's Solve on the configured schedule instead.
type ScheduledMultiStart[I, S, M any] struct {
	*MultiStart[I, S, M]

	cron     *cron.Cron
	input    I
	onResult func(S, cost.Structure, error)
}

// NewScheduledMultiStart builds a ScheduledMultiStart that re-runs ms.Solve
// against in on the given standard five-field cron spec, invoking onResult
// (if non-nil) after every run.
func NewScheduledMultiStart[I, S, M any](ms *MultiStart[I, S, M], spec string, in I, onResult func(S, cost.Structure, error)) (*ScheduledMultiStart[I, S, M], error) {
	sms := &ScheduledMultiStart[I, S, M]{
		MultiStart: ms,
		cron:       cron.New(),
		input:      in,
		onResult:   onResult,
	}
	_, err := sms.cron.AddFunc(spec, sms.runOnce)
	if err != nil {
		return nil, err
	}
	return sms, nil
}

func (sms *ScheduledMultiStart[I, S, M]) runOnce() {
	state, c, err := sms.MultiStart.Solve(sms.input)
	if sms.onResult != nil {
		sms.onResult(state, c, err)
	}
}

// Start arms the cron schedule in its own goroutine.
func (sms *ScheduledMultiStart[I, S, M]) Start() { sms.cron.Start() }

// Stop disarms the schedule and blocks until any in-flight run completes.
func (sms *ScheduledMultiStart[I, S, M]) Stop() { <-sms.cron.Stop().Done() }
