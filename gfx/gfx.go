// Package gfx draws monochrome primitives on anything with a pixel write
// interface. The target resolution is tiny, so everything here favors
// simplicity over speed.
package gfx

// Display is the drawing target. The video engine satisfies it, as does
// any in-memory buffer with the same surface.
type Display interface {
	SetPixel(x, y int, brightness uint8)
	Width() int
	Height() int
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Fill sets every pixel on the display to the given brightness.
func Fill(d Display, brightness uint8) {
	FillRect(d, 0, 0, d.Width(), d.Height(), brightness)
}

// DrawHLine draws a horizontal line of width w starting at (x, y).
func DrawHLine(d Display, x, y, w int, brightness uint8) {
	for i := 0; i < w; i++ {
		d.SetPixel(x+i, y, brightness)
	}
}

// DrawVLine draws a vertical line of height h starting at (x, y).
func DrawVLine(d Display, x, y, h int, brightness uint8) {
	for i := 0; i < h; i++ {
		d.SetPixel(x, y+i, brightness)
	}
}

// DrawLine draws a line from (x0, y0) to (x1, y1) with Bresenham's
// algorithm. Both endpoints are drawn.
func DrawLine(d Display, x0, y0, x1, y1 int, brightness uint8) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2
	ystep := -1
	if y0 < y1 {
		ystep = 1
	}

	for ; x0 <= x1; x0++ {
		if steep {
			d.SetPixel(y0, x0, brightness)
		} else {
			d.SetPixel(x0, y0, brightness)
		}
		if err -= dy; err < 0 {
			y0 += ystep
			err += dx
		}
	}
}

// DrawRect draws the outline of a w by h rectangle with its top-left
// corner at (x, y).
func DrawRect(d Display, x, y, w, h int, brightness uint8) {
	if w <= 0 || h <= 0 {
		return
	}
	DrawHLine(d, x, y, w, brightness)
	DrawHLine(d, x, y+h-1, w, brightness)
	DrawVLine(d, x, y+1, h-2, brightness)
	DrawVLine(d, x+w-1, y+1, h-2, brightness)
}

// FillRect fills a w by h rectangle with its top-left corner at (x, y).
func FillRect(d Display, x, y, w, h int, brightness uint8) {
	for j := 0; j < h; j++ {
		DrawHLine(d, x, y+j, w, brightness)
	}
}

// DrawCircle draws the outline of a circle of radius r centered on
// (cx, cy), using the midpoint algorithm.
func DrawCircle(d Display, cx, cy, r int, brightness uint8) {
	x, y := 0, r
	e := 1 - r

	d.SetPixel(cx, cy+r, brightness)
	d.SetPixel(cx, cy-r, brightness)
	d.SetPixel(cx+r, cy, brightness)
	d.SetPixel(cx-r, cy, brightness)

	for x < y {
		if e >= 0 {
			y--
			e += 2 * (x - y)
		} else {
			e += 2*x + 1
		}
		x++
		d.SetPixel(cx+x, cy+y, brightness)
		d.SetPixel(cx-x, cy+y, brightness)
		d.SetPixel(cx+x, cy-y, brightness)
		d.SetPixel(cx-x, cy-y, brightness)
		d.SetPixel(cx+y, cy+x, brightness)
		d.SetPixel(cx-y, cy+x, brightness)
		d.SetPixel(cx+y, cy-x, brightness)
		d.SetPixel(cx-y, cy-x, brightness)
	}
}

// FillCircle fills a circle of radius r centered on (cx, cy).
func FillCircle(d Display, cx, cy, r int, brightness uint8) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				d.SetPixel(cx+x, cy+y, brightness)
			}
		}
	}
}
