package galaxies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Dot at the vertex between cells {0, 1, 3, 4} of a 3x3 grid, half-unit
// coordinates (2, 2).
func TestDotInRegionVertex(t *testing.T) {
	d := Dot{2, 2}
	assert.True(t, d.InRegion(3, Region{0, 1, 3, 4, 6, 7, 8}))
	assert.False(t, d.InRegion(3, Region{2, 5}))
	// A line through the vertex leaves the dot in no region.
	assert.False(t, d.InRegion(3, Region{0, 1}))
	assert.False(t, d.InRegion(3, Region{3, 4}))
}

func TestDotInRegionCellCenter(t *testing.T) {
	d := Dot{3, 3} // center of cell (1, 1), id 4
	assert.True(t, d.InRegion(3, Region{4}))
	assert.True(t, d.InRegion(3, Region{3, 4, 5}))
	assert.False(t, d.InRegion(3, Region{0, 1, 2}))
}

func TestDotInRegionCornerVertex(t *testing.T) {
	d := Dot{0, 0} // grid corner, touches only cell 0
	assert.True(t, d.InRegion(3, Region{0}))
	assert.False(t, d.InRegion(3, Region{1, 2}))
}

func TestHasRotationalSymmetry(t *testing.T) {
	tests := []struct {
		name   string
		region Region
		dot    Dot
		want   bool
	}{
		{"single cell about its center", Region{4}, Dot{3, 3}, true},
		{"horizontal domino about shared edge midpoint", Region{3, 4}, Dot{2, 3}, true},
		{"full 3x3 about grid center", Region{0, 1, 2, 3, 4, 5, 6, 7, 8}, Dot{3, 3}, true},
		{"L-shape is asymmetric", Region{0, 1, 3}, Dot{2, 2}, false},
		{"off-center dot", Region{3, 4}, Dot{3, 3}, false},
		{"reflection lands off-grid", Region{0, 1}, Dot{1, 1}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, HasRotationalSymmetry(3, test.region, test.dot))
		})
	}
}

func TestIsRegionValid(t *testing.T) {
	n := 3
	tests := []struct {
		name   string
		region Region
		dots   []Dot
		want   bool
	}{
		{
			name:   "one dot, symmetric",
			region: Region{3, 4},
			dots:   []Dot{{2, 3}},
			want:   true,
		},
		{
			name:   "no dot",
			region: Region{3, 4},
			dots:   []Dot{{1, 1}},
			want:   false,
		},
		{
			name:   "two dots",
			region: Region{3, 4, 5},
			dots:   []Dot{{3, 3}, {1, 3}},
			want:   false,
		},
		{
			name:   "one dot but asymmetric",
			region: Region{0, 1, 3},
			dots:   []Dot{{2, 2}},
			want:   false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, IsRegionValid(n, test.region, test.dots))
		})
	}
}

// End to end: a 3x3 grid with a single dot between cells {0, 1, 3, 4} and a
// wall isolating {2, 5}. The seven-cell region contains the dot but is not
// symmetric about it, and {2, 5} holds no dot, so the drawing is not yet a
// valid solution.
func TestValidateAllScenario(t *testing.T) {
	n := 3
	dots := []Dot{{2, 2}}
	drawn := NewEdgeSet(
		Edge{Vertical, 2, 0},
		Edge{Vertical, 2, 1},
		Edge{Horizontal, 2, 2},
	)

	regions := FindRegions(n, drawn)
	require.Len(t, regions, 2)
	assert.True(t, dots[0].InRegion(n, regions[0]))
	assert.False(t, dots[0].InRegion(n, regions[1]))
	assert.False(t, ValidateAll(n, drawn, dots))
	assert.Empty(t, ValidCells(n, drawn, dots))
}

func TestValidCells(t *testing.T) {
	// 4x4 grid split into top and bottom halves, dots at the half centers.
	n := 4
	drawn := NewEdgeSet(
		Edge{Horizontal, 0, 2},
		Edge{Horizontal, 1, 2},
		Edge{Horizontal, 2, 2},
		Edge{Horizontal, 3, 2},
	)
	dots := []Dot{{4, 2}, {4, 6}}
	assert.True(t, ValidateAll(n, drawn, dots))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		ValidCells(n, drawn, dots))
}
