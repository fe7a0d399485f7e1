package galaxies

import "strings"

// Render draws the grid as ASCII art: drawn and border edges as walls, dots
// as "o" at their half-unit positions. Even half-coordinates are vertex and
// wall positions, odd ones are cell interiors.
func Render(n int, drawn EdgeSet, dots []Dot) string {
	dotAt := make(map[Dot]bool, len(dots))
	for _, d := range dots {
		dotAt[d] = true
	}
	wall := func(e Edge) bool { return e.IsBorder(n) || drawn.Has(e) }

	var b strings.Builder
	for hy := 0; hy <= 2*n; hy++ {
		for hx := 0; hx <= 2*n; hx++ {
			dot := dotAt[Dot{hx, hy}]
			switch {
			case hy%2 == 0 && hx%2 == 0: // vertex
				if dot {
					b.WriteString("o")
				} else {
					b.WriteString("+")
				}
			case hy%2 == 0: // horizontal edge position
				mid := "-"
				if !wall(Edge{Horizontal, (hx - 1) / 2, hy / 2}) {
					mid = " "
				}
				if dot {
					b.WriteString(mid + "o" + mid)
				} else {
					b.WriteString(mid + mid + mid)
				}
			case hx%2 == 0: // vertical edge position
				switch {
				case dot:
					b.WriteString("o")
				case wall(Edge{Vertical, hx / 2, (hy - 1) / 2}):
					b.WriteString("|")
				default:
					b.WriteString(" ")
				}
			default: // cell interior
				if dot {
					b.WriteString(" o ")
				} else {
					b.WriteString("   ")
				}
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderSolution draws the puzzle with its full solution edge set.
func (p *Puzzle) RenderSolution() string {
	return Render(p.Size, p.SolutionEdges, p.Dots)
}

// Render draws the model's current drawing.
func (m *Model) Render() string {
	return Render(m.Size, m.Drawn, m.Puzzle.Dots)
}
