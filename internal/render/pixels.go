package render

import "image/color"

// rgbaBytes converts any color into 8-bit premultiplied RGBA channels.
func rgbaBytes(c color.Color) (r, g, b, a uint8) {
	if c == nil {
		return 0, 0, 0, 0
	}
	if rgba, ok := c.(color.RGBA); ok {
		return rgba.R, rgba.G, rgba.B, rgba.A
	}
	cr, cg, cb, ca := c.RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)
}

// clearBytes zeroes buf, leaving every pixel transparent black.
func clearBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
