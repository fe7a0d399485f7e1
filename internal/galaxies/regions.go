package galaxies

import "sort"

// Region is one maximal set of cells connected under the current edge set,
// as cell ids sorted ascending. Regions are derived values; they are
// recomputed from the edge set on demand and never stored.
type Region []int

func (r Region) Has(cell int) bool {
	i := sort.SearchInts(r, cell)
	return i < len(r) && r[i] == cell
}

// AdjacencyView builds the open-neighbor lists of every cell: a neighbor is
// reachable iff its blocking edge is absent from the drawn set (border edges
// are implicit and always block). O(n²) time and space.
func AdjacencyView(n int, drawn EdgeSet) [][]int {
	adj := make([][]int, n*n)
	for cell := range adj {
		x, y := cell%n, cell/n
		if y > 0 && !drawn.Has(Edge{Horizontal, x, y}) {
			adj[cell] = append(adj[cell], cell-n)
		}
		if y < n-1 && !drawn.Has(Edge{Horizontal, x, y + 1}) {
			adj[cell] = append(adj[cell], cell+n)
		}
		if x > 0 && !drawn.Has(Edge{Vertical, x, y}) {
			adj[cell] = append(adj[cell], cell-1)
		}
		if x < n-1 && !drawn.Has(Edge{Vertical, x + 1, y}) {
			adj[cell] = append(adj[cell], cell+1)
		}
	}
	return adj
}

// FindRegions partitions the n² cells into connected components by BFS,
// always starting from the lowest unvisited cell id so that the result is
// deterministic for a given edge set. The returned regions are pairwise
// disjoint and their union is the full cell set.
func FindRegions(n int, drawn EdgeSet) []Region {
	adj := AdjacencyView(n, drawn)
	visited := make([]bool, n*n)
	var regions []Region
	for start := range visited {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue := []int{start}
		var region Region
		for len(queue) > 0 {
			cell := queue[0]
			queue = queue[1:]
			region = append(region, cell)
			for _, next := range adj[cell] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		sort.Ints(region)
		regions = append(regions, region)
	}
	return regions
}
