package render

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// HalfBlock is drawn once per terminal cell: its foreground is the upper
// pixel and its background the lower one.
const HalfBlock = '▀'

// CellScreen is the part of tcell.Screen the presenter draws through.
type CellScreen interface {
	Size() (int, int)
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// TerminalPresenter draws canvas snapshots into a tcell screen, two pixel
// rows per text row.
type TerminalPresenter struct {
	screen     CellScreen
	background color.RGBA
	// Origin of the image in terminal cells.
	X, Y int
}

// NewTerminalPresenter returns a presenter drawing onto screen. Transparent
// pixels show the background color.
func NewTerminalPresenter(screen CellScreen, background color.RGBA) *TerminalPresenter {
	return &TerminalPresenter{screen: screen, background: background}
}

// CellSize returns the terminal cells needed for a w*h pixel image.
func CellSize(w, h int) (cols, rows int) {
	return w, (h + 1) / 2
}

// Center positions an image of w*h pixels in the middle of the screen,
// leaving reserve rows free at the bottom.
func (p *TerminalPresenter) Center(w, h, reserve int) {
	sw, sh := p.screen.Size()
	cols, rows := CellSize(w, h)
	p.X = max(0, (sw-cols)/2)
	p.Y = max(0, (sh-reserve-rows)/2)
}

// Present draws img clipped to the screen. It does not call Show.
func (p *TerminalPresenter) Present(img *image.RGBA) {
	sw, sh := p.screen.Size()
	b := img.Bounds()
	cols, rows := CellSize(b.Dx(), b.Dy())
	for row := 0; row < rows; row++ {
		ty := p.Y + row
		if ty < 0 || ty >= sh {
			continue
		}
		for col := 0; col < cols; col++ {
			tx := p.X + col
			if tx < 0 || tx >= sw {
				continue
			}
			top := p.pixel(img, b.Min.X+col, b.Min.Y+2*row)
			bottom := p.pixel(img, b.Min.X+col, b.Min.Y+2*row+1)
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			p.screen.SetContent(tx, ty, HalfBlock, nil, style)
		}
	}
}

// DrawText writes s starting at (x, y), clipped to the screen width.
func (p *TerminalPresenter) DrawText(x, y int, s string, style tcell.Style) {
	sw, sh := p.screen.Size()
	if y < 0 || y >= sh {
		return
	}
	for _, r := range s {
		if x >= sw {
			return
		}
		if x >= 0 {
			p.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

func (p *TerminalPresenter) pixel(img *image.RGBA, x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return p.background
	}
	c := img.RGBAAt(x, y)
	if c.A == 0 {
		return p.background
	}
	return c
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
