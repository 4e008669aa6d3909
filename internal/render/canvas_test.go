package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanvasSetAt(t *testing.T) {
	c := NewCanvas(4, 3)
	red := color.RGBA{R: 255, A: 255}
	c.Set(1, 2, red)
	require.Equal(t, red, c.At(1, 2))
	require.Equal(t, color.RGBA{}, c.At(2, 1))

	// Non-RGBA colors are converted.
	c.Set(0, 0, color.Gray{Y: 128})
	require.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, c.At(0, 0))
}

func TestCanvasBoundsSafety(t *testing.T) {
	const w, h = 5, 4
	c := NewCanvas(w, h)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	outside := [][2]int{
		{-1, 0}, {w, 0}, {w + 1, 0},
		{0, -1}, {0, h},
		{-1, -1}, {w, h},
	}
	for _, p := range outside {
		c.Set(p[0], p[1], white)
		require.Equal(t, color.RGBA{}, c.At(p[0], p[1]), "(%d,%d)", p[0], p[1])
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			require.Equal(t, color.RGBA{}, c.At(x, y), "in-bounds (%d,%d) touched", x, y)
		}
	}
}

func TestSnapshotClearsBuffer(t *testing.T) {
	c := NewCanvas(3, 2)
	blue := color.RGBA{B: 200, A: 255}
	green := color.RGBA{G: 200, A: 255}
	c.Set(0, 0, blue)
	c.Set(2, 1, green)

	img := c.Snapshot()
	require.Equal(t, blue, img.RGBAAt(0, 0))
	require.Equal(t, green, img.RGBAAt(2, 1))
	require.Equal(t, color.RGBA{}, c.At(0, 0))
	require.Equal(t, color.RGBA{}, c.At(2, 1))

	// Next frame repaints only one pixel; the surface reflects only that.
	c.Set(1, 1, blue)
	img = c.Snapshot()
	require.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
	require.Equal(t, color.RGBA{}, img.RGBAAt(2, 1))
	require.Equal(t, blue, img.RGBAAt(1, 1))
}

func TestCanvasFillAndSize(t *testing.T) {
	c := NewCanvas(0, -3)
	w, h := c.Size()
	require.Equal(t, 1, w)
	require.Equal(t, 1, h)

	c = NewCanvas(2, 2)
	col := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	c.Fill(col)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			require.Equal(t, col, c.At(x, y))
		}
	}
}
