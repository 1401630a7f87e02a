package gfx

import "image/color"

// Color is anything that can report its current color as 8-bit RGBA.
//
// Implementations are allowed to advance internal state on every query
// (see Cycle): draw operations ask for the color once per pixel they
// touch, so a stateful Color paints each pixel differently.
type Color interface {
	RGBA() color.RGBA
}

// Solid is a fixed color. Alpha 0 is fully transparent, 255 fully opaque.
type Solid color.RGBA

func (s Solid) RGBA() color.RGBA { return color.RGBA(s) }

// RGB returns an opaque Solid.
func RGB(r, g, b uint8) Solid { return Solid{R: r, G: g, B: b, A: 255} }

// RGBA returns a Solid with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Solid { return Solid{R: r, G: g, B: b, A: a} }

var (
	Red    = RGB(255, 0, 0)
	Green  = RGB(0, 255, 0)
	Blue   = RGB(0, 0, 255)
	Black  = RGB(0, 0, 0)
	White  = RGB(255, 255, 255)
	Yellow = RGB(255, 255, 0)
	Cyan   = RGB(0, 255, 255)
)

// Cycle is a Color backed by an infinite generator. Every RGBA call pulls
// the next value, including calls made internally by draw operations, so
// a line drawn with a Cycle shifts color along its length. There is no
// rewind. Not safe for concurrent use.
type Cycle struct {
	next func() color.RGBA
}

// NewCycle wraps a generator function in a Color. next must never be nil
// and is expected to yield forever.
func NewCycle(next func() color.RGBA) *Cycle {
	return &Cycle{next: next}
}

func (c *Cycle) RGBA() color.RGBA { return c.next() }

// Rainbow returns a Cycle that walks the maximum-brightness hue wheel,
// one step per queried pixel, wrapping every 256 steps.
func Rainbow() *Cycle { return RainbowAt(0) }

// RainbowAt starts the hue wheel at a specific position. Two cycles
// started at the same hue yield identical sequences.
func RainbowAt(hue uint8) *Cycle {
	h := hue
	return NewCycle(func() color.RGBA {
		h++
		return rainbowRGBA(h)
	})
}

// rainbowRGBA maps an 8-bit hue onto an opaque color using integer HSV
// math: the hue is scaled to 192 positions and split into six 32-wide
// sectors. Saturation and value are fixed at maximum.
// Source: https://github.com/judge2005/arduinoHSV/blob/master/arduinoHSV.c
func rainbowRGBA(hue uint8) color.RGBA {
	h := uint8(uint16(hue) * 192 / 256)
	i := h / 32
	f := (h % 32) * 8
	fInv := 255 - f

	qv := uint8(128 * (256 - uint16(f)*255/256) / 256)
	tv := uint8(128 * (256 - uint16(fInv)*255/256) / 256)

	switch i {
	case 0:
		return color.RGBA{R: 255, G: tv, B: 0, A: 255}
	case 1:
		return color.RGBA{R: qv, G: 255, B: 0, A: 255}
	case 2:
		return color.RGBA{R: 0, G: 255, B: tv, A: 255}
	case 3:
		return color.RGBA{R: 0, G: qv, B: 255, A: 255}
	case 4:
		return color.RGBA{R: tv, G: 0, B: 255, A: 255}
	default:
		return color.RGBA{R: 255, G: 0, B: qv, A: 255}
	}
}
