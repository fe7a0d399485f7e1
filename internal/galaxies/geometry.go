// Package galaxies implements the state engine for a Simon Tatham style
// "Galaxies" puzzle: an N×N grid is divided into regions by drawing lines
// along cell edges, and every region must contain exactly one dot, be
// 180°-rotationally symmetric about it, and be connected.
package galaxies

import "fmt"

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "?"
}

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Direction) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("direction must be a JSON string")
	}
	parsed, err := ParseDirection(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// CellID maps cell coordinates to the integer id y*n+x.
func CellID(n, x, y int) (int, error) {
	if x < 0 || x >= n || y < 0 || y >= n {
		return 0, fmt.Errorf("%w: cell (%d, %d) on %dx%d grid", ErrOutOfRange, x, y, n, n)
	}
	return y*n + x, nil
}

// CellAt is the inverse of [CellID].
func CellAt(n, id int) (x int, y int, err error) {
	if id < 0 || id >= n*n {
		return 0, 0, fmt.Errorf("%w: cell id %d on %dx%d grid", ErrOutOfRange, id, n, n)
	}
	return id % n, id / n, nil
}

type Neighbor struct {
	Dir  Direction
	Cell int
}

// Neighbors returns the in-grid orthogonal neighbors of a cell, at most four,
// in Up, Down, Left, Right order.
func Neighbors(n, cell int) ([]Neighbor, error) {
	x, y, err := CellAt(n, cell)
	if err != nil {
		return nil, err
	}
	ns := make([]Neighbor, 0, 4)
	if y > 0 {
		ns = append(ns, Neighbor{Up, cell - n})
	}
	if y < n-1 {
		ns = append(ns, Neighbor{Down, cell + n})
	}
	if x > 0 {
		ns = append(ns, Neighbor{Left, cell - 1})
	}
	if x < n-1 {
		ns = append(ns, Neighbor{Right, cell + 1})
	}
	return ns, nil
}

// BlockingEdge returns the edge whose presence removes the adjacency between
// a cell and its neighbor in dir. Each internal edge is the blocking edge of
// exactly two (cell, direction) pairs.
func BlockingEdge(n, cell int, dir Direction) (Edge, error) {
	x, y, err := CellAt(n, cell)
	if err != nil {
		return Edge{}, err
	}
	switch dir {
	case Up:
		return Edge{Horizontal, x, y}, nil
	case Down:
		return Edge{Horizontal, x, y + 1}, nil
	case Left:
		return Edge{Vertical, x, y}, nil
	case Right:
		return Edge{Vertical, x + 1, y}, nil
	}
	return Edge{}, fmt.Errorf("unknown direction %d", dir)
}
