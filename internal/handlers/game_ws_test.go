package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/galaxies-server/internal/galaxies"
)

func newTestModel(t *testing.T) *galaxies.Model {
	t.Helper()
	model, err := galaxies.NewModel(galaxies.GameParams{Size: 5, Seed: 1})
	require.NoError(t, err)
	return model
}

func TestApplyCommandErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		command string
	}{
		{"unknown command", "z"},
		{"missing args", "t h 1"},
		{"extra args", "u 1"},
		{"bad orient", "t d 1 1"},
		{"non-numeric coordinate", "t h one 1"},
		{"border edge", "t h 0 0"},
		{"out of grid", "t v 9 9"},
		{"bad direction", "a 0 sideways"},
		{"arrow dot out of range", "a 999 up"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			model := newTestModel(t)
			assert.Error(t, ApplyCommand(model, test.command))
		})
	}
}

func TestApplyCommandToggle(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	edge := galaxies.Edge{Orient: galaxies.Horizontal, X: 1, Y: 2}

	require.NoError(t, ApplyCommand(model, "t h 1 2"))
	assert.True(t, model.Drawn.Has(edge))

	require.NoError(t, ApplyCommand(model, "t h 1 2"))
	assert.False(t, model.Drawn.Has(edge))
}

func TestApplyCommandUndoRedo(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	edge := galaxies.Edge{Orient: galaxies.Vertical, X: 2, Y: 2}

	require.NoError(t, ApplyCommand(model, "t v 2 2"))
	require.NoError(t, ApplyCommand(model, "u"))
	assert.False(t, model.Drawn.Has(edge))

	require.NoError(t, ApplyCommand(model, "r"))
	assert.True(t, model.Drawn.Has(edge))
}

func TestApplyCommandArrow(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	require.NoError(t, ApplyCommand(model, "a 0 up"))
	require.Len(t, model.Arrows, 1)
	assert.Equal(t, galaxies.Arrow{DotIndex: 0, Dir: galaxies.Up}, model.Arrows[0])
}

func TestApplyCommandHint(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	require.NoError(t, ApplyCommand(model, "h"))
	assert.Len(t, model.Drawn.Edges(), 1)
}

func TestApplyCommandSolveAndRestart(t *testing.T) {
	t.Parallel()

	model := newTestModel(t)
	require.NoError(t, ApplyCommand(model, "s"))
	assert.True(t, model.IsSolved())
	assert.True(t, model.UsedSolve)

	require.NoError(t, ApplyCommand(model, "x"))
	assert.Empty(t, model.Drawn.Edges())
	assert.False(t, model.IsSolved())
}
