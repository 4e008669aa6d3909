package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells in the grid.
func (s Size) Cells() int { return s.W * s.H }

// Point is an integer grid coordinate.
type Point struct {
	X int
	Y int
}

// Add offsets p by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
