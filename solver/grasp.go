// File: grasp.go
// Role: GRASP, a supplemented feature per the Open Questions resolution
// (spec.md section 9, bullet 1): a MultiStart variant whose per-pass restart
// state comes from SM.GreedyState(alpha, k) instead of SM.RandomState,
// biasing every restart toward a randomized-greedy construction. Marked
// experimental: original_source's GRASP construction is tuned for a
// specific combinatorial domain and alpha/k defaults here are generic
// placeholders a caller should tune per problem.
package solver

import "github.com/katalvlaran/localsearch/engine"

// GRASP is a MultiStart whose Redraw is SM.GreedyState(Alpha, K) instead of
// SM.RandomState. Alpha and K are read at Solve time, so they can be tuned
// between runs.
type GRASP[I, S, M any] struct {
	*MultiStart[I, S, M]

	// Alpha is the GRASP greediness parameter in [0,1]: 0 is pure greedy,
	// 1 is pure random, passed straight through to SM.GreedyState.
	Alpha float64
	// K bounds the restricted candidate list size passed to SM.GreedyState.
	K int
}

// NewGRASP builds a GRASP over runners with the given greediness/RCL size,
// wiring sm into the solver and every runner in the list.
func NewGRASP[I, S, M any](sm engine.SolutionManager[I, S], runners []RunnerEntry[I, S, M], alpha float64, k int) *GRASP[I, S, M] {
	g := &GRASP[I, S, M]{MultiStart: newMultiStartPrefixed(sm, runners, "grasp"), Alpha: alpha, K: k}
	g.Redraw = func(in I) (S, error) { return sm.GreedyState(in, g.Alpha, g.K) }
	return g
}
