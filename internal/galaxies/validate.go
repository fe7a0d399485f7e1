package galaxies

import "sort"

// Dot marks a galaxy center in half-unit grid coordinates, so that vertex,
// edge-midpoint and cell-center positions are all exact integers: a dot on
// vertex (x, y) has X=2x, Y=2y; a dot at the center of cell (x, y) has
// X=2x+1, Y=2y+1.
type Dot struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// cellSpan returns the cell indices touched by a half-unit coordinate: the
// single containing cell for an odd (interior) coordinate, the two flanking
// cells for an even (grid line) coordinate.
func cellSpan(h int) (lo, hi int) {
	if h%2 != 0 {
		return (h - 1) / 2, (h - 1) / 2
	}
	return h/2 - 1, h / 2
}

// InRegion reports whether the dot lies inside the region: every in-grid
// cell touching the dot must be a member. For a cell-center dot this is the
// single containing cell; for a vertex dot, all four surrounding cells.
func (d Dot) InRegion(n int, region Region) bool {
	x0, x1 := cellSpan(d.X)
	y0, y1 := cellSpan(d.Y)
	touched := 0
	for y := y0; y <= y1; y++ {
		if y < 0 || y >= n {
			continue
		}
		for x := x0; x <= x1; x++ {
			if x < 0 || x >= n {
				continue
			}
			touched++
			if !region.Has(y*n + x) {
				return false
			}
		}
	}
	return touched > 0
}

// HasRotationalSymmetry reports whether the region maps onto itself under a
// 180° rotation about the dot. In half-units the image of cell (x, y) is
// (d.X-x-1, d.Y-y-1); every image must land in-grid and in the region.
func HasRotationalSymmetry(n int, region Region, d Dot) bool {
	for _, cell := range region {
		x, y := cell%n, cell/n
		sx, sy := d.X-x-1, d.Y-y-1
		if sx < 0 || sx >= n || sy < 0 || sy >= n {
			return false
		}
		if !region.Has(sy*n + sx) {
			return false
		}
	}
	return true
}

// IsRegionValid checks the two per-region puzzle rules: the region contains
// exactly one of the dots, and it is 180°-rotationally symmetric about that
// dot. Enclosure and connectivity hold by construction for any region
// produced by [FindRegions].
func IsRegionValid(n int, region Region, dots []Dot) bool {
	matched := -1
	for i, d := range dots {
		if d.InRegion(n, region) {
			if matched >= 0 {
				return false
			}
			matched = i
		}
	}
	if matched < 0 {
		return false
	}
	return HasRotationalSymmetry(n, region, dots[matched])
}

// ValidateAll reports whether every region of the current partition is
// valid. Smaller regions are checked first; they fail faster and the order
// does not change the result.
func ValidateAll(n int, drawn EdgeSet, dots []Dot) bool {
	regions := FindRegions(n, drawn)
	sort.SliceStable(regions, func(i, j int) bool {
		return len(regions[i]) < len(regions[j])
	})
	for _, region := range regions {
		if !IsRegionValid(n, region, dots) {
			return false
		}
	}
	return true
}

// ValidCells returns the sorted ids of all cells belonging to currently
// valid regions.
func ValidCells(n int, drawn EdgeSet, dots []Dot) []int {
	var cells []int
	for _, region := range FindRegions(n, drawn) {
		if IsRegionValid(n, region, dots) {
			cells = append(cells, region...)
		}
	}
	sort.Ints(cells)
	return cells
}
