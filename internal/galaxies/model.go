package galaxies

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Arrow is a player-placed direction marker carried by a dot. Arrows are
// advisory: they never affect validity or the solved check.
type Arrow struct {
	DotIndex int       `json:"dot"`
	Dir      Direction `json:"dir"`
}

// Move records one edge toggle for the undo/redo history.
type Move struct {
	Edge  Edge
	Added bool
}

// Model owns the live state of one game session: the immutable generated
// puzzle plus the player-drawn edge set, arrows and move history. A Model is
// not safe for concurrent mutation; callers serialize access per session.
type Model struct {
	GameParams
	Puzzle    *Puzzle
	Drawn     EdgeSet
	Arrows    []Arrow
	UndoStack []Move
	RedoStack []Move
	UsedSolve bool
}

// NewModel generates a fresh puzzle for the given params and wraps it in an
// empty play state.
func NewModel(params GameParams) (*Model, error) {
	puzzle, err := NewPuzzle(params)
	if err != nil {
		return nil, err
	}
	return &Model{
		GameParams: params,
		Puzzle:     puzzle,
		Drawn:      NewEdgeSet(),
	}, nil
}

func DecodeModel(buf []byte) (*Model, error) {
	var m Model
	if err := gob.NewDecoder(bytes.NewReader(buf)).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Model) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToggleEdge flips the membership of a non-border edge in the drawn set,
// pushes the move onto the undo stack and clears the redo stack. Border and
// out-of-grid edges fail with [ErrInvalidEdge].
func (m *Model) ToggleEdge(e Edge) error {
	if !e.InGrid(m.Size) {
		return fmt.Errorf("%w: %s is outside the %dx%d grid", ErrInvalidEdge, e, m.Size, m.Size)
	}
	if e.IsBorder(m.Size) {
		return fmt.Errorf("%w: %s is a border edge", ErrInvalidEdge, e)
	}
	added := !m.Drawn.Has(e)
	if added {
		m.Drawn.Add(e)
	} else {
		m.Drawn.Remove(e)
	}
	m.UndoStack = append(m.UndoStack, Move{Edge: e, Added: added})
	m.RedoStack = nil
	return nil
}

// PlaceArrow records or replaces the arrow at the given dot. The direction
// carries no validity requirement.
func (m *Model) PlaceArrow(dot int, dir Direction) error {
	if dot < 0 || dot >= len(m.Puzzle.Dots) {
		return fmt.Errorf("%w: dot %d of %d", ErrInvalidDot, dot, len(m.Puzzle.Dots))
	}
	for i, a := range m.Arrows {
		if a.DotIndex == dot {
			m.Arrows[i].Dir = dir
			return nil
		}
	}
	m.Arrows = append(m.Arrows, Arrow{DotIndex: dot, Dir: dir})
	return nil
}

// Undo reverts the latest toggle and reports whether anything was undone.
// An empty history is a no-op, not an error.
func (m *Model) Undo() bool {
	if len(m.UndoStack) == 0 {
		return false
	}
	mv := m.UndoStack[len(m.UndoStack)-1]
	m.UndoStack = m.UndoStack[:len(m.UndoStack)-1]
	if mv.Added {
		m.Drawn.Remove(mv.Edge)
	} else {
		m.Drawn.Add(mv.Edge)
	}
	m.RedoStack = append(m.RedoStack, mv)
	return true
}

// Redo replays the latest undone toggle; symmetric to [Model.Undo].
func (m *Model) Redo() bool {
	if len(m.RedoStack) == 0 {
		return false
	}
	mv := m.RedoStack[len(m.RedoStack)-1]
	m.RedoStack = m.RedoStack[:len(m.RedoStack)-1]
	if mv.Added {
		m.Drawn.Add(mv.Edge)
	} else {
		m.Drawn.Remove(mv.Edge)
	}
	m.UndoStack = append(m.UndoStack, mv)
	return true
}

// Restart clears the drawn edges, arrows and history, keeping the puzzle.
func (m *Model) Restart() {
	m.Drawn = NewEdgeSet()
	m.Arrows = nil
	m.UndoStack = nil
	m.RedoStack = nil
}

// Solve draws the full solution edge set, discarding the current drawing,
// and marks the session as solver-assisted.
func (m *Model) Solve() {
	m.Drawn = m.Puzzle.SolutionEdges.Clone()
	m.UndoStack = nil
	m.RedoStack = nil
	m.UsedSolve = true
}

// Regions returns the current partition of the grid under the drawn edges.
func (m *Model) Regions() []Region {
	return FindRegions(m.Size, m.Drawn)
}

// IsSolved reports whether the current region partition equals the generated
// target partition and every region satisfies the puzzle rules. Extra drawn
// edges that do not change the partition do not spoil a solve.
func (m *Model) IsSolved() bool {
	regions := m.Regions()
	if len(regions) != len(m.Puzzle.Dots) {
		return false
	}
	for _, region := range regions {
		owner := m.Puzzle.Owner[region[0]]
		for _, cell := range region[1:] {
			if m.Puzzle.Owner[cell] != owner {
				return false
			}
		}
		if !IsRegionValid(m.Size, region, m.Puzzle.Dots) {
			return false
		}
	}
	return true
}

// Hint returns the best-scoring candidate edge for the current state. Fails
// with [ErrNoCandidates] when every edge is already drawn.
func (m *Model) Hint() (ScoredEdge, error) {
	return SelectBest(m.Size, m.Drawn, m.Puzzle.Dots)
}

// RankedHints returns at most k candidate edges ordered by descending score.
func (m *Model) RankedHints(k int) []ScoredEdge {
	return TopK(m.Size, k, m.Drawn, m.Puzzle.Dots)
}
