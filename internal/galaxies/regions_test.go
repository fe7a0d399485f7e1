package galaxies

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRegionsEmptyDrawing(t *testing.T) {
	regions := FindRegions(4, NewEdgeSet())
	require.Len(t, regions, 1)
	assert.Len(t, regions[0], 16)
}

// A wall between columns 1 and 2, closed off at the bottom, splits a 3x3
// grid into the seven left cells and the {2, 5} pair. While the wall stops
// short of the bottom row, cell 5 keeps its down-neighbor 8 and the grid
// stays one region.
func TestFindRegionsSplit(t *testing.T) {
	drawn := NewEdgeSet(
		Edge{Vertical, 2, 0},
		Edge{Vertical, 2, 1},
		Edge{Horizontal, 2, 2},
	)
	regions := FindRegions(3, drawn)
	require.Len(t, regions, 2)
	assert.Equal(t, Region{0, 1, 3, 4, 6, 7, 8}, regions[0])
	assert.Equal(t, Region{2, 5}, regions[1])

	partial := NewEdgeSet(Edge{Vertical, 2, 0}, Edge{Vertical, 2, 1})
	regions = FindRegions(3, partial)
	require.Len(t, regions, 1)
}

func randomDrawing(n int, density float64, r *rand.Rand) EdgeSet {
	drawn := NewEdgeSet()
	for _, e := range CandidateEdges(n) {
		if r.Float64() < density {
			drawn.Add(e)
		}
	}
	return drawn
}

// Regions must partition all n² cells for any edge set: pairwise disjoint,
// union complete.
func TestFindRegionsPartitionInvariant(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 50; trial++ {
		n := 3 + r.IntN(8)
		drawn := randomDrawing(n, r.Float64(), r)
		regions := FindRegions(n, drawn)

		seen := make(map[int]int)
		for i, region := range regions {
			assert.NotEmpty(t, region)
			for _, cell := range region {
				prev, dup := seen[cell]
				assert.False(t, dup, "cell %d in regions %d and %d", cell, prev, i)
				seen[cell] = i
			}
		}
		assert.Len(t, seen, n*n)
	}
}

func TestFindRegionsDeterministic(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	drawn := randomDrawing(6, 0.3, r)
	first := FindRegions(6, drawn)
	second := FindRegions(6, drawn)
	assert.Equal(t, first, second)
}

func TestAdjacencyViewBlocksDrawnEdges(t *testing.T) {
	const n = 3
	drawn := NewEdgeSet(Edge{Horizontal, 1, 1}) // between cells 1 and 4
	adj := AdjacencyView(n, drawn)
	assert.NotContains(t, adj[1], 4)
	assert.NotContains(t, adj[4], 1)
	assert.Contains(t, adj[1], 0)
	assert.Contains(t, adj[1], 2)
}
