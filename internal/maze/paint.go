package maze

import "image/color"

// Canvas is the pixel target Paint draws into. Implementations clip
// out-of-bounds coordinates.
type Canvas interface {
	Set(x, y int, c color.Color)
}

// Palette holds the colors used to paint the maze.
type Palette struct {
	Visited   color.RGBA
	Unvisited color.RGBA
	Cursor    color.RGBA
}

// DefaultPalette returns the green scheme of the generator window.
func DefaultPalette() Palette {
	return Palette{
		Visited:   color.RGBA{R: 26, G: 235, B: 78, A: 255},
		Unvisited: color.RGBA{R: 0, G: 95, B: 25, A: 255},
		Cursor:    color.RGBA{R: 0, G: 255, B: 0, A: 255},
	}
}

// CanvasSize returns the pixel dimensions needed to paint a w*h maze with
// the given path width. Every cell takes pathWidth pixels plus one pixel of
// wall or passage.
func CanvasSize(w, h, pathWidth int) (int, int) {
	if pathWidth <= 0 {
		pathWidth = 1
	}
	return w * (pathWidth + 1), h * (pathWidth + 1)
}

// Paint draws every cell, the passages leaving it south and east, and the
// cursor on top. The maze is not modified.
func (m *Maze) Paint(dst Canvas, pathWidth int, pal Palette) {
	if pathWidth <= 0 {
		pathWidth = 1
	}
	pitch := pathWidth + 1
	for y := 0; y < m.grid.H; y++ {
		for x := 0; x < m.grid.W; x++ {
			c := m.At(x, y)
			ox, oy := x*pitch, y*pitch
			fill := pal.Unvisited
			if c.Has(Visited) {
				fill = pal.Visited
			}
			fillBlock(dst, ox, oy, pathWidth, fill)

			for p := 0; p < pathWidth; p++ {
				if c.Has(PathSouth) {
					dst.Set(ox+p, oy+pathWidth, pal.Visited)
				}
				if c.Has(PathEast) {
					dst.Set(ox+pathWidth, oy+p, pal.Visited)
				}
			}
		}
	}

	if cur, ok := m.Cursor(); ok {
		fillBlock(dst, cur.X*pitch, cur.Y*pitch, pathWidth, pal.Cursor)
	}
}

func fillBlock(dst Canvas, ox, oy, size int, c color.RGBA) {
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			dst.Set(ox+px, oy+py, c)
		}
	}
}
