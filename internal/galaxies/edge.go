package galaxies

import (
	"fmt"
	"sort"
)

// Orient tags an edge as horizontal or vertical.
type Orient uint8

const (
	Horizontal Orient = iota
	Vertical
)

func (o Orient) String() string {
	if o == Vertical {
		return "v"
	}
	return "h"
}

func ParseOrient(s string) (Orient, error) {
	switch s {
	case "h":
		return Horizontal, nil
	case "v":
		return Vertical, nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

func (o Orient) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}

func (o *Orient) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("orientation must be a JSON string")
	}
	parsed, err := ParseOrient(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Edge addresses one unit line segment of the grid. A horizontal edge (x, y)
// runs from vertex (x, y) to (x+1, y) and separates cell (x, y-1) from cell
// (x, y); a vertical edge (x, y) runs from vertex (x, y) to (x, y+1) and
// separates cell (x-1, y) from cell (x, y). Equality is structural.
type Edge struct {
	Orient Orient `json:"o"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

func (e Edge) String() string {
	return fmt.Sprintf("%s:%d:%d", e.Orient, e.X, e.Y)
}

// InGrid reports whether the edge addresses a real segment of an n×n grid.
func (e Edge) InGrid(n int) bool {
	if e.Orient == Horizontal {
		return e.X >= 0 && e.X < n && e.Y >= 0 && e.Y <= n
	}
	return e.X >= 0 && e.X <= n && e.Y >= 0 && e.Y < n
}

// IsBorder reports whether the edge lies on the grid perimeter. Border edges
// are implicitly always present and never togglable.
func (e Edge) IsBorder(n int) bool {
	if e.Orient == Horizontal {
		return e.Y == 0 || e.Y == n
	}
	return e.X == 0 || e.X == n
}

// Less is the fixed total order used for deterministic tie-breaks: lowest
// y first, then lowest x, with horizontal before vertical.
func (e Edge) Less(o Edge) bool {
	if e.Y != o.Y {
		return e.Y < o.Y
	}
	if e.X != o.X {
		return e.X < o.X
	}
	return e.Orient < o.Orient
}

// CandidateEdges enumerates every non-border edge of an n×n grid, already
// sorted by [Edge.Less]. An n×n grid has 2n(n-1) such edges.
func CandidateEdges(n int) []Edge {
	edges := make([]Edge, 0, 2*n*(n-1))
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			for _, o := range [2]Orient{Horizontal, Vertical} {
				e := Edge{o, x, y}
				if e.InGrid(n) && !e.IsBorder(n) {
					edges = append(edges, e)
				}
			}
		}
	}
	return edges
}

// EdgeSet is a set of edges with value equality.
type EdgeSet map[Edge]bool

func NewEdgeSet(edges ...Edge) EdgeSet {
	s := make(EdgeSet, len(edges))
	for _, e := range edges {
		s[e] = true
	}
	return s
}

func (s EdgeSet) Has(e Edge) bool { return s[e] }

func (s EdgeSet) Add(e Edge) { s[e] = true }

func (s EdgeSet) Remove(e Edge) { delete(s, e) }

func (s EdgeSet) Clone() EdgeSet {
	c := make(EdgeSet, len(s))
	for e := range s {
		c[e] = true
	}
	return c
}

func (s EdgeSet) Equal(o EdgeSet) bool {
	if len(s) != len(o) {
		return false
	}
	for e := range s {
		if !o[e] {
			return false
		}
	}
	return true
}

// Edges returns the members sorted by [Edge.Less].
func (s EdgeSet) Edges() []Edge {
	edges := make([]Edge, 0, len(s))
	for e := range s {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].Less(edges[j]) })
	return edges
}
