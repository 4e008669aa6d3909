package maze

import "maze-gen/internal/core"

// Stats counts the work done by Step since the last Reset.
type Stats struct {
	Start      core.Point
	Steps      int
	Backtracks int
	MaxDepth   int
}

// Carves returns the number of passages opened so far.
func (s Stats) Carves() int { return s.Steps - s.Backtracks }

// Exits returns the number of carved passages leaving cell (x, y).
func (m *Maze) Exits(x, y int) int {
	c := m.At(x, y)
	n := 0
	for _, d := range Directions {
		if c.Has(d.Path()) {
			n++
		}
	}
	return n
}

// DeadEnds counts visited cells with exactly one passage.
func (m *Maze) DeadEnds() int {
	n := 0
	for y := 0; y < m.grid.H; y++ {
		for x := 0; x < m.grid.W; x++ {
			if m.At(x, y).Has(Visited) && m.Exits(x, y) == 1 {
				n++
			}
		}
	}
	return n
}

// Passages counts carved edges. Each edge is counted once through its
// south or east end.
func (m *Maze) Passages() int {
	n := 0
	for _, c := range m.grid.Cells() {
		f := Flags(c)
		if f.Has(PathSouth) {
			n++
		}
		if f.Has(PathEast) {
			n++
		}
	}
	return n
}
