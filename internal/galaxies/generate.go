package galaxies

import (
	"fmt"
	"math/rand/v2"
)

const (
	// MinSize and MaxSize bound the supported grid sizes. Below 3 the
	// splitting policy cannot produce an interesting partition; above 32 a
	// single hint pass leaves the interactive latency envelope.
	MinSize = 3
	MaxSize = 32

	maxGenerateAttempts = 32
	maxSplitTries       = 5000
)

// GameParams identify a puzzle: a grid size and the seed its generation was
// derived from. Identical params always reproduce the identical puzzle.
type GameParams struct {
	Size int   `json:"size"`
	Seed int64 `json:"seed"`
}

func (p GameParams) rand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(p.Seed), uint64(p.Size)))
}

type rectangle struct {
	X, Y, W, H int
}

// center returns the rectangle's geometric center in half-unit coordinates.
// Rectangles are symmetric about their center by construction.
func (r rectangle) center() Dot {
	return Dot{2*r.X + r.W, 2*r.Y + r.H}
}

func (r rectangle) splittable() bool {
	return r.W >= 2 || r.H >= 2
}

// Puzzle is the immutable output of generation: the target partition (as a
// cell-to-region assignment), one dot per region, and the derived solution
// edge set, which is exactly the non-border edges between cells of distinct
// regions.
type Puzzle struct {
	Size          int
	Owner         []int
	Dots          []Dot
	SolutionEdges EdgeSet
}

// NewPuzzle generates a puzzle for the given params. The grid is recursively
// partitioned into rectangles by randomized splits; each resulting region is
// then re-checked against the puzzle rules before the puzzle is accepted, so
// an invalid partition is never returned silently. Fails with
// [ErrUnsupportedSize] or, after the attempt budget, [ErrGenerationFailed].
func NewPuzzle(params GameParams) (*Puzzle, error) {
	if params.Size < MinSize || params.Size > MaxSize {
		return nil, fmt.Errorf("%w: %d (supported %d..%d)",
			ErrUnsupportedSize, params.Size, MinSize, MaxSize)
	}

	r := params.rand()
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		p := buildPartition(params.Size, r)
		if p.verify() {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: size %d, seed %d (%d attempts)",
		ErrGenerationFailed, params.Size, params.Seed, maxGenerateAttempts)
}

// targetRegions picks how many regions to aim for, proportional to the grid
// area. For 7×7 this lands in the 8..12 range, matching a comfortable dot
// density.
func targetRegions(n int, r *rand.Rand) int {
	lo := max(2, n*n/6)
	hi := max(lo, n*n/4)
	return lo + r.IntN(hi-lo+1)
}

func buildPartition(n int, r *rand.Rand) *Puzzle {
	target := targetRegions(n, r)
	rects := []rectangle{{0, 0, n, n}}

	for tries := 0; len(rects) < target && tries < maxSplitTries; tries++ {
		candidates := make([]int, 0, len(rects))
		for i, rc := range rects {
			if rc.splittable() {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			break
		}
		i := candidates[r.IntN(len(candidates))]
		rc := rects[i]
		rects[i] = rects[len(rects)-1]
		rects = rects[:len(rects)-1]

		// Bias the split towards the longer dimension.
		var vertical bool
		switch {
		case rc.W >= 2 && rc.H >= 2:
			if rc.W >= rc.H && r.Float64() < 0.65 {
				vertical = true
			} else {
				vertical = r.Float64() < 0.35
			}
		case rc.W >= 2:
			vertical = true
		default:
			vertical = false
		}

		if vertical {
			k := 1 + r.IntN(rc.W-1)
			rects = append(rects,
				rectangle{rc.X, rc.Y, k, rc.H},
				rectangle{rc.X + k, rc.Y, rc.W - k, rc.H})
		} else {
			k := 1 + r.IntN(rc.H-1)
			rects = append(rects,
				rectangle{rc.X, rc.Y, rc.W, k},
				rectangle{rc.X, rc.Y + k, rc.W, rc.H - k})
		}
	}

	p := &Puzzle{
		Size:  n,
		Owner: make([]int, n*n),
		Dots:  make([]Dot, len(rects)),
	}
	for i, rc := range rects {
		p.Dots[i] = rc.center()
		for y := rc.Y; y < rc.Y+rc.H; y++ {
			for x := rc.X; x < rc.X+rc.W; x++ {
				p.Owner[y*n+x] = i
			}
		}
	}
	p.SolutionEdges = p.deriveSolutionEdges()
	return p
}

// deriveSolutionEdges collects every non-border edge separating two cells
// with different owners: the unique minimal edge set whose region partition
// equals the target partition.
func (p *Puzzle) deriveSolutionEdges() EdgeSet {
	n := p.Size
	edges := NewEdgeSet()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			o := p.Owner[y*n+x]
			if x+1 < n && p.Owner[y*n+x+1] != o {
				edges.Add(Edge{Vertical, x + 1, y})
			}
			if y+1 < n && p.Owner[(y+1)*n+x] != o {
				edges.Add(Edge{Horizontal, x, y + 1})
			}
		}
	}
	return edges
}

// verify re-derives the partition from the solution edges and checks every
// region against the puzzle rules.
func (p *Puzzle) verify() bool {
	regions := FindRegions(p.Size, p.SolutionEdges)
	if len(regions) != len(p.Dots) {
		return false
	}
	for _, region := range regions {
		if !IsRegionValid(p.Size, region, p.Dots) {
			return false
		}
	}
	return true
}

// TargetRegions returns the generated partition as regions, derived from the
// owner assignment.
func (p *Puzzle) TargetRegions() []Region {
	regions := make([]Region, len(p.Dots))
	for cell, owner := range p.Owner {
		regions[owner] = append(regions[owner], cell)
	}
	return regions
}
