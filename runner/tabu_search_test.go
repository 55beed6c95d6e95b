package runner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localsearch/runner"
)

func flipInverse(mv1, mv2 int) bool { return mv1 == mv2 }

// TestTabuSearch_ReachesZeroWithoutImmediatelyUndoingMoves exercises
// scenario 4: a tabu list that forbids the inverse of a just-made move
// still lets the search reach the global optimum, rather than cycling
// between two states forever.
func TestTabuSearch_ReachesZeroWithoutImmediatelyUndoingMoves(t *testing.T) {
	in := bitsInput{n: 12}
	sm := newBitsManager()
	start, err := sm.RandomState(in)
	require.NoError(t, err)

	ts := runner.NewTabuSearch[bitsInput, []bool, int](newFlipNE(), flipInverse, 100, 3)
	r := &runner.Base[bitsInput, []bool, int]{SM: sm}

	state, c, err := r.Go(context.Background(), ts, in, start)
	require.NoError(t, err)
	assert.Equal(t, float64(0), c.Total)
	assert.Len(t, state, in.n)
}
