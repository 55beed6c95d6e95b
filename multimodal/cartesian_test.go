package multimodal_test

import (
	"testing"

	"github.com/katalvlaran/localsearch/multimodal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct2_EnumeratesInLexicographicOrder(t *testing.T) {
	p := &multimodal.Product2[int, int, int, int]{
		NE1: incNE{n: 2},
		NE2: decNE{n: 2},
	}
	var seen []multimodal.Cartesian2[int, int]
	mv, err := p.FirstMove(0, 0)
	require.NoError(t, err)
	for {
		seen = append(seen, mv)
		next, ok := p.NextMove(0, 0, mv)
		if !ok {
			break
		}
		mv = next
	}
	require.Len(t, seen, 4)
	assert.Equal(t, multimodal.Cartesian2[int, int]{A: 1, B: 1}, seen[0])
	assert.Equal(t, multimodal.Cartesian2[int, int]{A: 1, B: 2}, seen[1])
	assert.Equal(t, multimodal.Cartesian2[int, int]{A: 2, B: 1}, seen[2])
	assert.Equal(t, multimodal.Cartesian2[int, int]{A: 2, B: 2}, seen[3])
}

func TestProduct2_DeltaCostComponents_SumsBothConstituents(t *testing.T) {
	p := &multimodal.Product2[int, int, int, int]{
		NE1: incNE{n: 5},
		NE2: decNE{n: 5},
	}
	mv := multimodal.Cartesian2[int, int]{A: 4, B: 3}
	c := p.DeltaCostComponents(0, 0, mv, nil)
	assert.Equal(t, 1.0, c.Total)
}

func TestProduct2_MakeMove_AppliesBothConstituents(t *testing.T) {
	p := &multimodal.Product2[int, int, int, int]{
		NE1: incNE{n: 5},
		NE2: decNE{n: 5},
	}
	s := 10
	p.MakeMove(0, &s, multimodal.Cartesian2[int, int]{A: 4, B: 1})
	assert.Equal(t, 13, s)
}

func TestProduct3_EnumeratesAllCombinations(t *testing.T) {
	p := &multimodal.Product3[int, int, int, int, int]{
		NE1: incNE{n: 2},
		NE2: incNE{n: 2},
		NE3: incNE{n: 2},
	}
	count := 0
	mv, err := p.FirstMove(0, 0)
	require.NoError(t, err)
	for {
		count++
		next, ok := p.NextMove(0, 0, mv)
		if !ok {
			break
		}
		mv = next
	}
	assert.Equal(t, 8, count)
}

func TestProduct3_DeltaCostComponents_SumsAllThree(t *testing.T) {
	p := &multimodal.Product3[int, int, int, int, int]{
		NE1: incNE{n: 5},
		NE2: incNE{n: 5},
		NE3: decNE{n: 5},
	}
	mv := multimodal.Cartesian3[int, int, int]{A: 2, B: 3, C: 1}
	c := p.DeltaCostComponents(0, 0, mv, nil)
	assert.Equal(t, 4.0, c.Total)
}
