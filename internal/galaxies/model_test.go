package galaxies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleEdgeIdempotence(t *testing.T) {
	m := newTestModel(t, 5, 10)
	e := Edge{Vertical, 2, 1}
	before := m.Drawn.Clone()

	require.NoError(t, m.ToggleEdge(e))
	assert.True(t, m.Drawn.Has(e))
	require.NoError(t, m.ToggleEdge(e))
	assert.True(t, before.Equal(m.Drawn))
}

func TestToggleEdgeRejectsBorderAndOutOfGrid(t *testing.T) {
	m := newTestModel(t, 5, 11)
	tests := []struct {
		name string
		edge Edge
	}{
		{"top border", Edge{Horizontal, 2, 0}},
		{"bottom border", Edge{Horizontal, 2, 5}},
		{"left border", Edge{Vertical, 0, 2}},
		{"right border", Edge{Vertical, 5, 2}},
		{"out of grid", Edge{Horizontal, 9, 9}},
		{"negative", Edge{Vertical, -1, 0}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.ErrorIs(t, m.ToggleEdge(test.edge), ErrInvalidEdge)
		})
	}
	assert.Empty(t, m.Drawn)
	assert.Empty(t, m.UndoStack)
}

func TestUndoRedoInverseLaw(t *testing.T) {
	m := newTestModel(t, 5, 12)
	moves := []Edge{
		{Vertical, 1, 1},
		{Horizontal, 2, 2},
		{Vertical, 1, 1}, // erases the first line again
		{Horizontal, 3, 1},
	}
	for _, e := range moves {
		require.NoError(t, m.ToggleEdge(e))
	}
	afterPlay := m.Drawn.Clone()

	undos := 0
	for m.Undo() {
		undos++
	}
	assert.Equal(t, len(moves), undos)
	assert.Empty(t, m.Drawn)
	assert.False(t, m.Undo())

	redos := 0
	for m.Redo() {
		redos++
	}
	assert.Equal(t, len(moves), redos)
	assert.True(t, afterPlay.Equal(m.Drawn))
	assert.False(t, m.Redo())
}

func TestToggleClearsRedoStack(t *testing.T) {
	m := newTestModel(t, 5, 13)
	require.NoError(t, m.ToggleEdge(Edge{Vertical, 1, 1}))
	require.True(t, m.Undo())
	require.NotEmpty(t, m.RedoStack)

	require.NoError(t, m.ToggleEdge(Edge{Horizontal, 2, 2}))
	assert.Empty(t, m.RedoStack)
	assert.False(t, m.Redo())
}

func TestPlaceArrow(t *testing.T) {
	m := newTestModel(t, 5, 14)
	require.NoError(t, m.PlaceArrow(0, Left))
	require.NoError(t, m.PlaceArrow(1, Up))
	require.NoError(t, m.PlaceArrow(0, Right)) // replaces, not appends
	assert.Equal(t, []Arrow{{0, Right}, {1, Up}}, m.Arrows)

	assert.ErrorIs(t, m.PlaceArrow(-1, Up), ErrInvalidDot)
	assert.ErrorIs(t, m.PlaceArrow(len(m.Puzzle.Dots), Up), ErrInvalidDot)
}

func TestRestart(t *testing.T) {
	m := newTestModel(t, 5, 15)
	require.NoError(t, m.ToggleEdge(Edge{Vertical, 1, 1}))
	require.NoError(t, m.PlaceArrow(0, Down))
	m.Restart()
	assert.Empty(t, m.Drawn)
	assert.Empty(t, m.Arrows)
	assert.False(t, m.Undo())
	assert.False(t, m.Redo())
}

func TestIsSolved(t *testing.T) {
	m := newTestModel(t, 7, 16)
	assert.False(t, m.IsSolved())

	solution := m.Puzzle.SolutionEdges.Edges()
	for _, e := range solution {
		require.NoError(t, m.ToggleEdge(e))
	}
	assert.True(t, m.IsSolved())

	// Removing any single solution edge merges two regions.
	for _, e := range solution {
		require.NoError(t, m.ToggleEdge(e))
		assert.False(t, m.IsSolved(), "still solved without %s", e)
		require.NoError(t, m.ToggleEdge(e))
	}
	assert.True(t, m.IsSolved())
}

func TestSolve(t *testing.T) {
	m := newTestModel(t, 7, 17)
	require.NoError(t, m.ToggleEdge(Edge{Vertical, 3, 3}))
	m.Solve()
	assert.True(t, m.IsSolved())
	assert.True(t, m.UsedSolve)
	assert.True(t, m.Drawn.Equal(m.Puzzle.SolutionEdges))
	assert.False(t, m.Undo())
}

func TestRegionsMatchPartition(t *testing.T) {
	m := newTestModel(t, 6, 18)
	require.NoError(t, m.ToggleEdge(Edge{Vertical, 3, 0}))
	total := 0
	for _, region := range m.Regions() {
		total += len(region)
	}
	assert.Equal(t, 36, total)
}

func TestModelGobRoundTrip(t *testing.T) {
	m := newTestModel(t, 7, 19)
	require.NoError(t, m.ToggleEdge(Edge{Vertical, 2, 3}))
	require.NoError(t, m.ToggleEdge(Edge{Horizontal, 4, 4}))
	require.True(t, m.Undo())
	require.NoError(t, m.PlaceArrow(0, Up))

	buf, err := m.Bytes()
	require.NoError(t, err)
	got, err := DecodeModel(buf)
	require.NoError(t, err)

	assert.Equal(t, m.GameParams, got.GameParams)
	assert.True(t, m.Drawn.Equal(got.Drawn))
	assert.Equal(t, m.Arrows, got.Arrows)
	assert.Equal(t, m.UndoStack, got.UndoStack)
	assert.Equal(t, m.RedoStack, got.RedoStack)
	assert.Equal(t, m.Puzzle.Owner, got.Puzzle.Owner)
	assert.Equal(t, m.Puzzle.Dots, got.Puzzle.Dots)
	assert.True(t, m.Puzzle.SolutionEdges.Equal(got.Puzzle.SolutionEdges))

	// The decoded model must keep playing identically.
	assert.Equal(t, m.IsSolved(), got.IsSolved())
	wantHint, err := m.Hint()
	require.NoError(t, err)
	gotHint, err := got.Hint()
	require.NoError(t, err)
	assert.Equal(t, wantHint, gotHint)
}

func TestNewModelUnsupportedSize(t *testing.T) {
	_, err := NewModel(GameParams{Size: 1, Seed: 0})
	assert.ErrorIs(t, err, ErrUnsupportedSize)
}
