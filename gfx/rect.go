package gfx

const maskSize = 8

// cornerMask approximates a quarter circle without per-pixel sqrt: row r
// holds the horizontal inset of each of the first maskSize rows of a
// corner with radius r. Rows deeper than the table reuse the last entry,
// which is always zero.
var cornerMask = [maskSize * (maskSize + 1)]uint8{
	0, 0, 0, 0, 0, 0, 0, 0,
	1, 0, 0, 0, 0, 0, 0, 0,
	2, 1, 0, 0, 0, 0, 0, 0,
	3, 2, 1, 0, 0, 0, 0, 0,
	4, 2, 1, 1, 0, 0, 0, 0,
	5, 3, 2, 1, 1, 0, 0, 0,
	6, 4, 2, 2, 1, 1, 0, 0,
	7, 5, 4, 3, 2, 1, 1, 0,
	8, 6, 4, 3, 2, 2, 1, 1,
}

// DrawRect fills a w by h rectangle with rounded corners at (x, y) and
// traces a one-pixel border around it. If the requested radius would make
// opposing corners overlap it is shrunk to min(w, h)/3. Radii above 8 use
// the largest mask, negative radii draw square corners. Parts outside
// the surface are clipped.
func (s *Surface) DrawRect(x, y, w, h, radius int, fill, border Color) {
	if w <= 0 || h <= 0 {
		return
	}
	if radius < 0 {
		radius = 0
	}
	if h < radius*2 || w < radius*2 {
		radius = min(h, w) / 3
	}
	if radius > maskSize {
		radius = maskSize
	}
	mask := cornerMask[radius*maskSize : radius*maskSize+maskSize]

	for j := 0; j < h; j++ {
		// The top corner mask reads downward, the bottom one upward; on
		// short rectangles both can inset the same row.
		inset := int(mask[min(j, maskSize-1)]) + int(mask[min(h-j-1, maskSize-1)])
		sx := x + inset
		ex := x + w - 1 - inset
		if sx > ex {
			continue
		}
		s.DrawLine(sx, y+j, ex, y+j, fill)

		s.BlendPixel(sx, y+j, border)
		s.BlendPixel(ex, y+j, border)
		if j == 0 || j == h-1 {
			s.DrawLine(sx, y+j, ex, y+j, border)
		}
	}
}
