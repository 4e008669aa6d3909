// Package render owns the RGBA pixel buffer a frame is painted into and the
// presenters that hand its snapshots to a display.
package render

import (
	"image"
	"image/color"
)

// Canvas is a flat row-major RGBA buffer. A frame is painted fully, then
// Snapshot publishes it and clears the buffer for the next frame.
type Canvas struct {
	w, h    int
	buf     []byte
	surface *image.RGBA
}

// NewCanvas allocates a zeroed canvas and a surface of the same size.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Canvas{
		w:       w,
		h:       h,
		buf:     make([]byte, 4*w*h),
		surface: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

func (c *Canvas) offset(x, y int) (int, bool) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return 0, false
	}
	return (y*c.w + x) * 4, true
}

// Set writes one pixel. Out-of-bounds writes are ignored.
func (c *Canvas) Set(x, y int, col color.Color) {
	i, ok := c.offset(x, y)
	if !ok {
		return
	}
	c.buf[i+0], c.buf[i+1], c.buf[i+2], c.buf[i+3] = rgbaBytes(col)
}

// At reads one pixel. Out-of-bounds reads return transparent black.
func (c *Canvas) At(x, y int) color.RGBA {
	i, ok := c.offset(x, y)
	if !ok {
		return color.RGBA{}
	}
	return color.RGBA{R: c.buf[i+0], G: c.buf[i+1], B: c.buf[i+2], A: c.buf[i+3]}
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col color.Color) {
	r, g, b, a := rgbaBytes(col)
	for i := 0; i < len(c.buf); i += 4 {
		c.buf[i+0], c.buf[i+1], c.buf[i+2], c.buf[i+3] = r, g, b, a
	}
}

// Snapshot copies the buffer into the surface, clears the buffer and returns
// the surface. The surface is reused by the next Snapshot.
func (c *Canvas) Snapshot() *image.RGBA {
	copy(c.surface.Pix, c.buf)
	clearBytes(c.buf)
	return c.surface
}
