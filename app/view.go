package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"matrixkb/firmware/controller"
	"matrixkb/firmware/grayscale"
	"matrixkb/firmware/layout"
	"matrixkb/firmware/matrix"
	"matrixkb/hal"
)

var (
	colorBG      = color.RGBA{R: 0x10, G: 0x12, B: 0x18, A: 0xFF}
	colorText    = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	colorDim     = color.RGBA{R: 0x50, G: 0x55, B: 0x60, A: 0xFF}
	colorHeld    = color.RGBA{R: 0xF0, G: 0x90, B: 0x20, A: 0xFF}
	colorBounce  = color.RGBA{R: 0xF0, G: 0xE0, B: 0x40, A: 0xFF}
	colorLEDOn   = color.RGBA{R: 0x30, G: 0xE0, B: 0x50, A: 0xFF}
	colorLEDOff  = color.RGBA{R: 0x20, G: 0x30, B: 0x20, A: 0xFF}
	colorModKey  = color.RGBA{R: 0x60, G: 0x90, B: 0xE0, A: 0xFF}
	lockChannels = [...]struct {
		label string
		ch    int
	}{
		{"NUM", grayscale.ChannelNumLock},
		{"CAPS", grayscale.ChannelCapsLock},
		{"SCRL", grayscale.ChannelScrollLock},
	}
)

const (
	cellW, cellH = 34, 13
	gridX, gridY = 8, 34
)

// view draws the matrix, the lock indicators and the current report.
type view struct {
	d      *fbDisplay
	labels [matrix.NumKeys]string
	mods   [matrix.NumKeys]bool
	drawn  uint64
	first  bool
}

func newView(fb hal.Framebuffer, t *layout.Table) *view {
	v := &view{d: &fbDisplay{fb: fb}, first: true}
	for k := range v.labels {
		e := t.Lookup(k)
		switch {
		case e.Unassigned():
		case e.Modifier:
			v.labels[k] = fmt.Sprintf("m%02X", e.Code)
			v.mods[k] = true
		default:
			v.labels[k] = fmt.Sprintf("%02X", e.Code)
		}
	}
	return v
}

// render redraws when the controller has run since the last frame. sim may
// be nil; then indicators come from the driver's frame buffer.
func (v *view) render(name string, s controller.Snapshot, sim hal.Simulator) error {
	if !v.first && s.Cycles == v.drawn {
		return nil
	}
	v.first = false
	v.drawn = s.Cycles

	v.d.fb.ClearRGB(colorBG.R, colorBG.G, colorBG.B)
	font := &proggy.TinySZ8pt7b

	tinyfont.WriteLine(v.d, font, 8, 12, "matrixkb  layout: "+name, colorText)

	outputs := s.Frame
	if sim != nil {
		outputs = sim.Outputs()
	}
	for i, lc := range lockChannels {
		x := int16(200 + i*40)
		c := colorLEDOff
		if outputs[lc.ch] != 0 {
			c = colorLEDOn
		}
		v.d.fillRect(x, 4, 12, 8, c)
		tinyfont.WriteLine(v.d, &tinyfont.TomThumb, x, 22, lc.label, colorDim)
	}

	for r := 0; r < matrix.Rows; r++ {
		for c := 0; c < matrix.Cols; c++ {
			k := matrix.Index(r, c)
			x := int16(gridX + c*(cellW+3))
			y := int16(gridY + r*(cellH+2))

			switch {
			case s.Pressed[k]:
				v.d.fillRect(x, y, cellW, cellH, colorHeld)
			case sim != nil && sim.Switch(k):
				v.d.strokeRect(x, y, cellW, cellH, colorBounce)
			case v.mods[k]:
				v.d.strokeRect(x, y, cellW, cellH, colorModKey)
			default:
				v.d.strokeRect(x, y, cellW, cellH, colorDim)
			}
			if v.labels[k] != "" {
				tinyfont.WriteLine(v.d, &tinyfont.TomThumb, x+3, y+cellH-3, v.labels[k], colorText)
			}
		}
	}

	y := int16(gridY + matrix.Rows*(cellH+2) + 10)
	tinyfont.WriteLine(v.d, font, 8, y, "report "+s.Report.String(), colorText)
	tinyfont.WriteLine(v.d, font, 8, y+12,
		fmt.Sprintf("scans %d  reports %d", s.Cycles, s.Reports), colorDim)

	return v.d.Display()
}
