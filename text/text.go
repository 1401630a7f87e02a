// Package text rasterizes strings into RGBA pixel buffers that the
// rendering engine can pre-composite and blit.
package text

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// DefaultFont is used when callers do not care about typography.
var DefaultFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// Render draws s into a tight RGBA byte buffer (4 bytes per pixel,
// row-major) and returns the buffer together with its pixel width. The
// buffer height is the font's line height; glyph pixels carry the given
// color, everything else stays fully transparent.
func Render(font tinyfont.Fonter, s string, c color.RGBA) (pix []byte, width int) {
	_, w := tinyfont.LineWidth(font, s)
	h := int(font.GetYAdvance())
	width = int(w)
	if width == 0 || h == 0 {
		return nil, 0
	}

	cv := &canvas{w: width, h: h, pix: make([]byte, width*h*4)}
	// tinyfont positions text by baseline; one line height down puts the
	// whole line inside the canvas, with clipped descenders dropped by
	// the canvas itself.
	tinyfont.WriteLine(cv, font, 0, int16(h)-1, s, c)
	return cv.pix, width
}

// canvas implements drivers.Displayer over a plain RGBA byte buffer so
// tinyfont can draw into memory instead of a screen.
type canvas struct {
	w, h int
	pix  []byte
}

var _ drivers.Displayer = (*canvas)(nil)

func (c *canvas) Size() (x, y int16) {
	return int16(c.w), int16(c.h)
}

func (c *canvas) SetPixel(x, y int16, col color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= c.w || iy < 0 || iy >= c.h {
		return
	}
	off := (iy*c.w + ix) * 4
	c.pix[off] = col.R
	c.pix[off+1] = col.G
	c.pix[off+2] = col.B
	c.pix[off+3] = col.A
}

func (c *canvas) Display() error { return nil }
