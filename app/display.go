package app

import (
	"image/color"

	"tinygo.org/x/drivers"

	"matrixkb/hal"
)

// fbDisplay exposes an RGB565 framebuffer as a drivers.Displayer.
type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}

	pixel := rgb565(c)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) fillRect(x, y, w, h int16, c color.RGBA) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			d.SetPixel(i, j, c)
		}
	}
}

func (d *fbDisplay) strokeRect(x, y, w, h int16, c color.RGBA) {
	for i := x; i < x+w; i++ {
		d.SetPixel(i, y, c)
		d.SetPixel(i, y+h-1, c)
	}
	for j := y; j < y+h; j++ {
		d.SetPixel(x, j, c)
		d.SetPixel(x+w-1, j, c)
	}
}

func rgb565(c color.RGBA) uint16 {
	return hal.RGB565(c.R, c.G, c.B)
}
