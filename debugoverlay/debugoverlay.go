// Package debugoverlay draws an optional one-line status HUD onto the raw
// preview frame buffer, using tinygo.org/x/tinyfont for glyph rendering.
//
// The overlay is only ever drawn onto the raw (pre-remap) buffer, never
// the DMD-remapped one: compositing text into the remapped buffer would
// corrupt the bit-plane encoding a physical DMD reads as binary sub-frame
// occupancy.
package debugoverlay

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"

	"github.com/lumenarray/dmd/frame"
)

// Status is the set of driver-loop counters the HUD reports.
type Status struct {
	Iter     int
	Tweezers int
	PlanLen  int
}

// color used for the HUD text: bright green, readable against the mostly
// dark tweezer frame.
var hudColor = color.RGBA{R: 0, G: 0xFF, B: 0, A: 0xFF}

// Draw renders "iter=%d tweezers=%d plan=%d" in the top-left corner of f.
func Draw(f *frame.RGBFrame, status Status) {
	text := fmt.Sprintf("iter=%d tweezers=%d plan=%d", status.Iter, status.Tweezers, status.PlanLen)
	tinyfont.WriteLine(&displayer{f: f}, &tinyfont.TomThumb, 1, 7, text, hudColor)
}

// displayer adapts *frame.RGBFrame to tinyfont's Displayer interface,
// kept private to this package so device.Device's method set stays free
// of font-rendering concerns.
type displayer struct {
	f *frame.RGBFrame
}

func (d *displayer) Size() (x, y int16) {
	return int16(d.f.W), int16(d.f.H)
}

func (d *displayer) SetPixel(x, y int16, c color.RGBA) {
	off, ok := d.f.At(int(y), int(x))
	if !ok {
		return
	}
	d.f.Pix[off] = c.R
	d.f.Pix[off+1] = c.G
	d.f.Pix[off+2] = c.B
}

func (d *displayer) Display() error { return nil }
