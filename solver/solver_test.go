package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localsearch/examples/bitflip"
	"github.com/katalvlaran/localsearch/runner"
	"github.com/katalvlaran/localsearch/solver"
)

func newHillClimbingEntry(seed int64) solver.RunnerEntry[bitflip.Input, []bool, int] {
	return solver.RunnerEntry[bitflip.Input, []bool, int]{
		Runner:   &runner.Base[bitflip.Input, []bool, int]{},
		Strategy: runner.NewHillClimbing[bitflip.Input, []bool, int](bitflip.NewFlipNE(), 20, seed),
	}
}

func TestSimple_SolveReachesZeroCost(t *testing.T) {
	in := bitflip.Input{N: 8}
	sm := bitflip.NewManager()
	s := solver.NewSimple[bitflip.Input, []bool, int](sm, &runner.Base[bitflip.Input, []bool, int]{}, runner.NewHillClimbing[bitflip.Input, []bool, int](bitflip.NewFlipNE(), 50, 1))
	s.RandomInitialState = true

	_, c, err := s.Solve(in)
	require.NoError(t, err)
	assert.Equal(t, float64(0), c.Total)
}

func TestMultiStart_RestartObserverFiresAndBestIsNonNegative(t *testing.T) {
	in := bitflip.Input{N: 6}
	sm := bitflip.NewManager()
	ms := solver.NewMultiStart[bitflip.Input, []bool, int](sm, []solver.RunnerEntry[bitflip.Input, []bool, int]{
		newHillClimbingEntry(2),
	})

	var restarts int
	ms.Observers.OnRestart = func(uint64) { restarts++ }

	_, c, err := ms.Solve(in)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c.Total, float64(0))
	assert.Greater(t, restarts, 0)
}

func TestMultiStart_ErrorsOnEmptyRunnerList(t *testing.T) {
	sm := bitflip.NewManager()
	ms := solver.NewMultiStart[bitflip.Input, []bool, int](sm, nil)

	_, _, err := ms.Solve(bitflip.Input{N: 4})
	assert.ErrorIs(t, err, solver.ErrEmptyRunnerList)
}

func TestTokenRing_SolveReachesZeroCost(t *testing.T) {
	in := bitflip.Input{N: 6}
	sm := bitflip.NewManager()
	tr := solver.NewTokenRing[bitflip.Input, []bool, int](sm, []solver.RunnerEntry[bitflip.Input, []bool, int]{
		newHillClimbingEntry(3),
	})
	tr.RandomInitialState = true

	_, c, err := tr.Solve(in)
	require.NoError(t, err)
	assert.Equal(t, float64(0), c.Total)
}

func TestVND_AdvancesThroughNeighborhoodsToLocalOptimum(t *testing.T) {
	in := bitflip.Input{N: 5}
	sm := bitflip.NewManager()
	vnd := solver.NewVND[bitflip.Input, []bool, int](sm, []solver.RunnerEntry[bitflip.Input, []bool, int]{
		newHillClimbingEntry(4),
	})
	vnd.RandomInitialState = true

	_, c, err := vnd.Solve(in)
	require.NoError(t, err)
	assert.Equal(t, float64(0), c.Total)
}

// TestMultiStart_BestCostNeverRegressesAcrossRestarts exercises scenario 5:
// the best cost recorded at each restart boundary must be monotonically
// non-increasing, since considerBest only ever replaces the best state on
// strict improvement.
func TestMultiStart_BestCostNeverRegressesAcrossRestarts(t *testing.T) {
	in := bitflip.Input{N: 10}
	sm := bitflip.NewManager()
	ms := solver.NewMultiStart[bitflip.Input, []bool, int](sm, []solver.RunnerEntry[bitflip.Input, []bool, int]{
		newHillClimbingEntry(9),
	})

	var seen []float64
	ms.Observers.OnRestart = func(uint64) { seen = append(seen, ms.GetCurrentBestCost().Total) }

	_, c, err := ms.Solve(in)
	require.NoError(t, err)
	assert.Equal(t, float64(0), c.Total)

	var i int
	for i = 1; i < len(seen); i++ {
		assert.LessOrEqual(t, seen[i], seen[i-1], "best cost regressed at restart %d", i)
	}
}

func TestGRASP_UsesGreedyConstructionOnRestart(t *testing.T) {
	in := bitflip.Input{N: 5}
	sm := bitflip.NewManager()
	g := solver.NewGRASP[bitflip.Input, []bool, int](sm, []solver.RunnerEntry[bitflip.Input, []bool, int]{
		newHillClimbingEntry(5),
	}, 0.3, 2)

	_, c, err := g.Solve(in)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c.Total, float64(0))
}
