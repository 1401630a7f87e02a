package gfx

import (
	"errors"
	"fmt"
)

var (
	// ErrBounds reports a blit whose destination rectangle falls outside
	// the surface.
	ErrBounds = errors.New("destination out of bounds")
	// ErrImageData reports a pixel buffer whose length does not match its
	// declared layout.
	ErrImageData = errors.New("malformed image data")
	// ErrSurfaceSize reports a backing buffer too small for the requested
	// surface geometry, a fatal condition at startup.
	ErrSurfaceSize = errors.New("buffer too small for surface")
)

// Surface draws into a 16bpp framebuffer. It is the sole mutator of the
// underlying byte buffer: rows are laid out top to bottom with no
// padding, two bytes per pixel (see Pack). A Surface is single-threaded;
// nothing here takes locks.
type Surface struct {
	buf []byte
	w   int
	h   int
}

// NewSurface wraps an existing pixel buffer, typically the memory-mapped
// display region. The buffer must hold at least w*h*2 bytes.
func NewSurface(w, h int, buf []byte) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", w, h)
	}
	if len(buf) < w*h*2 {
		return nil, fmt.Errorf("buffer holds %d bytes, need %d for %dx%d: %w", len(buf), w*h*2, w, h, ErrSurfaceSize)
	}
	return &Surface{buf: buf, w: w, h: h}, nil
}

func (s *Surface) Width() int  { return s.w }
func (s *Surface) Height() int { return s.h }

func (s *Surface) offset(x, y int) int {
	return (y*s.w + x) * 2
}

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h
}

// SetPixel overwrites the pixel at (x, y), ignoring the color's alpha.
// Out-of-range coordinates are dropped.
func (s *Surface) SetPixel(x, y int, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	v := c.RGBA()
	s.writePacked(x, y, Pack(v.R, v.G, v.B))
}

func (s *Surface) writePacked(x, y int, p uint16) {
	off := s.offset(x, y)
	s.buf[off] = byte(p)
	s.buf[off+1] = byte(p >> 8)
}

// BlendPixel composites the color over the pixel at (x, y). Fully opaque
// colors take the overwrite path without reading the buffer; fully
// transparent colors touch nothing. Everything in between reads the
// current pixel back (lossily, see Unpack) and blends.
func (s *Surface) BlendPixel(x, y int, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	v := c.RGBA()

	// Hot path in images: most pixels are fully opaque.
	if v.A == 255 {
		s.writePacked(x, y, Pack(v.R, v.G, v.B))
		return
	}
	if v.A == 0 {
		return
	}

	off := s.offset(x, y)
	dr, dg, db := Unpack(uint16(s.buf[off]) | uint16(s.buf[off+1])<<8)
	nr, ng, nb := Blend(v.R, v.G, v.B, v.A, dr, dg, db)
	s.writePacked(x, y, Pack(nr, ng, nb))
}

// Fill overwrites every pixel with the same color, alpha ignored.
func (s *Surface) Fill(c Color) {
	v := c.RGBA()
	p := Pack(v.R, v.G, v.B)
	lo := byte(p)
	hi := byte(p >> 8)
	n := s.w * s.h * 2
	for i := 0; i < n; i += 2 {
		s.buf[i] = lo
		s.buf[i+1] = hi
	}
}

// DrawLine rasterizes the segment from (x0, y0) to (x1, y1) inclusive of
// both endpoints, blending the color into every covered pixel. Parts of
// the segment outside the surface are clipped pixel by pixel. A
// zero-length segment draws exactly one pixel.
func (s *Surface) DrawLine(x0, y0, x1, y1 int, c Color) {
	drawLine(s, x0, y0, x1, y1, c)
}

// BlitImage copies an already packed buffer into the rectangle at (x, y)
// of width w pixels. No blending happens; the buffer must come from
// RenderImage or otherwise match the device layout exactly. The whole
// destination rectangle must lie on the surface.
func (s *Surface) BlitImage(x, y, w int, packed []byte) error {
	if w <= 0 || len(packed)%2 != 0 || (len(packed)/2)%w != 0 {
		return fmt.Errorf("packed buffer of %d bytes is not a whole number of %d-pixel rows: %w", len(packed), w, ErrImageData)
	}
	h := len(packed) / 2 / w
	if x < 0 || y < 0 || x+w > s.w || y+h > s.h {
		return fmt.Errorf("blit of %dx%d at (%d, %d) on %dx%d surface: %w", w, h, x, y, s.w, s.h, ErrBounds)
	}
	rowBytes := w * 2
	for j := 0; j < h; j++ {
		dst := s.offset(x, y+j)
		copy(s.buf[dst:dst+rowBytes], packed[j*rowBytes:])
	}
	return nil
}

// BlendImage composites a raw RGBA buffer pixel by pixel at (x, y) with
// row width w. This is the expensive image path, needed when source
// pixels carry partial transparency that cannot be pre-composited against
// a fixed background. Pixels landing outside the surface are clipped.
func (s *Surface) BlendImage(x, y, w int, rgba []byte) error {
	if len(rgba)%4 != 0 {
		return fmt.Errorf("rgba buffer of %d bytes: %w", len(rgba), ErrImageData)
	}
	if w <= 0 || (len(rgba)/4)%w != 0 {
		return fmt.Errorf("rgba buffer of %d pixels is not a whole number of %d-pixel rows: %w", len(rgba)/4, w, ErrImageData)
	}
	for i := 0; i*4 < len(rgba); i++ {
		px := rgba[i*4 : i*4+4]
		s.BlendPixel(x+i%w, y+i/w, RGBA(px[0], px[1], px[2], px[3]))
	}
	return nil
}

// RenderImage converts a raw RGBA buffer to the packed device format,
// compositing every pixel against an opaque background color (the
// background's own alpha is ignored). The result is independent of any
// surface and is meant to be computed once, then handed to BlitImage each
// frame. Fully transparent input pixels come out as the packed
// background.
func RenderImage(rgba []byte, background Color) ([]byte, error) {
	if len(rgba)%4 != 0 {
		return nil, fmt.Errorf("rgba buffer of %d bytes: %w", len(rgba), ErrImageData)
	}
	bg := background.RGBA()
	out := make([]byte, len(rgba)/2)
	for i := 0; i*4 < len(rgba); i++ {
		px := rgba[i*4 : i*4+4]
		r, g, b := Blend(px[0], px[1], px[2], px[3], bg.R, bg.G, bg.B)
		p := Pack(r, g, b)
		out[i*2] = byte(p)
		out[i*2+1] = byte(p >> 8)
	}
	return out, nil
}
