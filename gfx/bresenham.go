package gfx

// Integer Bresenham rasterization. Segments are normalized to one of two
// driving axes: shallow lines (|dy| < |dx|) step along x, steep lines
// along y, with endpoints swapped so the driving axis always increases.
// Swapping is harmless because the covered pixel set is symmetric. Both
// endpoints are drawn.

func drawLine(s *Surface, x0, y0, x1, y1 int, c Color) {
	if abs(y1-y0) < abs(x1-x0) {
		if x0 > x1 {
			plotShallow(s, x1, y1, x0, y0, c)
		} else {
			plotShallow(s, x0, y0, x1, y1, c)
		}
	} else {
		if y0 > y1 {
			plotSteep(s, x1, y1, x0, y0, c)
		} else {
			plotSteep(s, x0, y0, x1, y1, c)
		}
	}
}

func plotShallow(s *Surface, x0, y0, x1, y1 int, c Color) {
	dx := x1 - x0
	dy := y1 - y0
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}
	d := 2*dy - dx
	y := y0

	for x := x0; x <= x1; x++ {
		s.BlendPixel(x, y, c)
		if d > 0 {
			y += yi
			d += 2 * (dy - dx)
		} else {
			d += 2 * dy
		}
	}
}

func plotSteep(s *Surface, x0, y0, x1, y1 int, c Color) {
	dx := x1 - x0
	dy := y1 - y0
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}
	d := 2*dx - dy
	x := x0

	for y := y0; y <= y1; y++ {
		s.BlendPixel(x, y, c)
		if d > 0 {
			x += xi
			d += 2 * (dx - dy)
		} else {
			d += 2 * dx
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
