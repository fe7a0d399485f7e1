package galaxies

import (
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Scoring policy: validity dominates balance. A region counts towards the
// balance term only while it is smaller than the grid side, so the term
// discriminates between candidate splits instead of summing to a constant
// over the whole partition.
const (
	regionSizeWeight = 0.5
	oneDotBonus      = 10.0
)

type ScoredEdge struct {
	Edge  Edge    `json:"edge"`
	Score float64 `json:"score"`
}

// countRegionDots counts the dots contained in the region under the same
// containment convention the validator uses.
func countRegionDots(n int, region Region, dots []Dot) int {
	count := 0
	for _, d := range dots {
		if d.InRegion(n, region) {
			count++
		}
	}
	return count
}

// Score rates the hypothetical addition of e to the drawn set. The live set
// is never mutated: the candidate is scored against its own copy.
func Score(n int, e Edge, drawn EdgeSet, dots []Dot) float64 {
	trial := drawn.Clone()
	trial.Add(e)
	score := 0.0
	for _, region := range FindRegions(n, trial) {
		if len(region) < n {
			score += regionSizeWeight * float64(len(region))
		}
		if countRegionDots(n, region, dots) == 1 {
			score += oneDotBonus
		}
	}
	return score
}

// ComputeAllScores scores every undrawn non-border edge, in [Edge.Less]
// order. Each candidate is scored against its own edge-set copy, so the
// passes are independent and run concurrently; the result is deterministic
// for a given state.
func ComputeAllScores(n int, drawn EdgeSet, dots []Dot) []ScoredEdge {
	var candidates []Edge
	for _, e := range CandidateEdges(n) {
		if !drawn.Has(e) {
			candidates = append(candidates, e)
		}
	}
	scored := make([]ScoredEdge, len(candidates))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, e := range candidates {
		g.Go(func() error {
			scored[i] = ScoredEdge{Edge: e, Score: Score(n, e, drawn, dots)}
			return nil
		})
	}
	g.Wait() // the scoring passes never error
	return scored
}

// SelectBest returns the maximum-scoring candidate edge. Ties go to the
// lowest edge in [Edge.Less] order, so hints are reproducible for identical
// state. Fails with [ErrNoCandidates] when every edge is drawn.
func SelectBest(n int, drawn EdgeSet, dots []Dot) (ScoredEdge, error) {
	scored := ComputeAllScores(n, drawn, dots)
	if len(scored) == 0 {
		return ScoredEdge{}, ErrNoCandidates
	}
	best := scored[0]
	for _, s := range scored[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return best, nil
}

// Rank returns every candidate edge ordered by descending score, ties broken
// by [Edge.Less].
func Rank(n int, drawn EdgeSet, dots []Dot) []ScoredEdge {
	scored := ComputeAllScores(n, drawn, dots)
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// TopK returns the first k entries of [Rank], clamping k to the candidate
// count (and to zero from below).
func TopK(n, k int, drawn EdgeSet, dots []Dot) []ScoredEdge {
	ranked := Rank(n, drawn, dots)
	if k < 0 {
		k = 0
	}
	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}

// DistanceFromCenter is a secondary ranking key: the L1 distance of the edge
// coordinate from the grid center. Central edges tend to split regions more
// evenly, so callers may order by (score desc, distance asc).
func DistanceFromCenter(n int, e Edge) float64 {
	half := float64(n) / 2
	return math.Abs(float64(e.X)-half) + math.Abs(float64(e.Y)-half)
}
