// Package runner provides the generic move-runner iteration loop
// (runner.Base) and the concrete runner strategies built on top of it:
// steepest descent, first descent, hill climbing, late-acceptance hill
// climbing, great deluge, simulated annealing (plain, reheating,
// evaluation-budget), and the tabu search family.
//
// Every concrete runner implements Strategy and is driven by Base.Go,
// which threads iteration bookkeeping, timeout/abort polling and
// best-state tracking the same way for all of them; only move selection,
// acceptance, and per-iteration housekeeping differ.
package runner
