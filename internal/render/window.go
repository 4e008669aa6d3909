//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowPresenter uploads canvas snapshots into a single ebiten image and
// draws it scaled over a backing frame.
type WindowPresenter struct {
	w, h  int
	img   *ebiten.Image
	pixel *ebiten.Image
	frame color.RGBA
}

// NewWindowPresenter allocates a presenter for w*h pixel snapshots.
func NewWindowPresenter(w, h int, frame color.RGBA) *WindowPresenter {
	wp := &WindowPresenter{w: w, h: h, frame: frame}
	wp.img = ebiten.NewImage(w, h)
	wp.pixel = ebiten.NewImage(1, 1)
	wp.pixel.Fill(color.White)
	return wp
}

// Blit uploads snap and draws it at (x, y) scaled by scale, with a frame
// border of the given width behind it.
func (wp *WindowPresenter) Blit(dst *ebiten.Image, snap *image.RGBA, x, y float64, scale, border int) {
	if snap.Bounds().Dx() != wp.w || snap.Bounds().Dy() != wp.h {
		return
	}
	wp.img.WritePixels(snap.Pix)

	sw, sh := float64(wp.w*scale), float64(wp.h*scale)
	if border > 0 {
		b := float64(border)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sw+2*b, sh+2*b)
		op.GeoM.Translate(x-b, y-b)
		op.ColorScale.ScaleWithColor(wp.frame)
		dst.DrawImage(wp.pixel, op)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y)
	dst.DrawImage(wp.img, op)
}

// Size returns the dimensions of the underlying image.
func (wp *WindowPresenter) Size() (int, int) { return wp.w, wp.h }
