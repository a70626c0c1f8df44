package gfx

import (
	"strings"
	"testing"
)

// grid is a minimal in-memory Display for tests.
type grid struct {
	w, h int
	pix  []uint8
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, pix: make([]uint8, w*h)}
}

func (g *grid) SetPixel(x, y int, brightness uint8) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.pix[y*g.w+x] = brightness
}

func (g *grid) Width() int  { return g.w }
func (g *grid) Height() int { return g.h }

func (g *grid) at(x, y int) uint8 { return g.pix[y*g.w+x] }

// String renders the grid with one character per pixel: '.' off, '#' on.
func (g *grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.at(x, y) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *grid) count() int {
	n := 0
	for _, p := range g.pix {
		if p != 0 {
			n++
		}
	}
	return n
}

func TestDrawHVLine(t *testing.T) {
	g := newGrid(10, 10)
	DrawHLine(g, 2, 3, 5, 255)
	for x := 2; x < 7; x++ {
		if g.at(x, 3) != 255 {
			t.Errorf("hline missing pixel at (%d,3)\n%s", x, g)
		}
	}
	if g.count() != 5 {
		t.Errorf("hline painted %d pixels, want 5\n%s", g.count(), g)
	}

	g = newGrid(10, 10)
	DrawVLine(g, 4, 1, 6, 255)
	for y := 1; y < 7; y++ {
		if g.at(4, y) != 255 {
			t.Errorf("vline missing pixel at (4,%d)\n%s", y, g)
		}
	}
	if g.count() != 6 {
		t.Errorf("vline painted %d pixels, want 6\n%s", g.count(), g)
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	tests := [][4]int{
		{0, 0, 9, 9},
		{9, 9, 0, 0},
		{0, 9, 9, 0},
		{0, 0, 9, 3}, // shallow
		{0, 0, 3, 9}, // steep
		{5, 5, 5, 5}, // single point
	}
	for _, tt := range tests {
		g := newGrid(10, 10)
		DrawLine(g, tt[0], tt[1], tt[2], tt[3], 255)
		if g.at(tt[0], tt[1]) == 0 || g.at(tt[2], tt[3]) == 0 {
			t.Errorf("line (%d,%d)-(%d,%d) misses an endpoint\n%s",
				tt[0], tt[1], tt[2], tt[3], g)
		}
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	g := newGrid(10, 10)
	DrawLine(g, 0, 0, 9, 9, 255)
	for i := 0; i < 10; i++ {
		if g.at(i, i) != 255 {
			t.Errorf("diagonal misses (%d,%d)\n%s", i, i, g)
		}
	}
	if g.count() != 10 {
		t.Errorf("diagonal painted %d pixels, want 10\n%s", g.count(), g)
	}
}

func TestDrawRect(t *testing.T) {
	g := newGrid(10, 10)
	DrawRect(g, 1, 2, 6, 4, 255)

	// Perimeter of a 6x4 rectangle.
	if g.count() != 2*6+2*2 {
		t.Errorf("rect painted %d pixels, want 16\n%s", g.count(), g)
	}
	for _, pt := range [][2]int{{1, 2}, {6, 2}, {1, 5}, {6, 5}} {
		if g.at(pt[0], pt[1]) != 255 {
			t.Errorf("rect corner (%d,%d) missing\n%s", pt[0], pt[1], g)
		}
	}
	if g.at(2, 3) != 0 {
		t.Errorf("rect interior painted\n%s", g)
	}
}

func TestFillRect(t *testing.T) {
	g := newGrid(10, 10)
	FillRect(g, 2, 2, 3, 4, 200)
	if g.count() != 12 {
		t.Errorf("filled %d pixels, want 12\n%s", g.count(), g)
	}
	if g.at(2, 2) != 200 || g.at(4, 5) != 200 {
		t.Errorf("fill corners wrong\n%s", g)
	}
}

func TestFillClips(t *testing.T) {
	g := newGrid(4, 4)
	Fill(g, 255)
	FillRect(g, -5, -5, 100, 100, 128)
	if g.count() != 16 {
		t.Errorf("out of range fill altered count: %d\n%s", g.count(), g)
	}
}

func TestDrawCircleSymmetry(t *testing.T) {
	g := newGrid(21, 21)
	DrawCircle(g, 10, 10, 8, 255)

	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			mx, my := 20-x, 20-y
			if g.at(x, y) != g.at(mx, y) || g.at(x, y) != g.at(x, my) {
				t.Fatalf("circle not symmetric at (%d,%d)\n%s", x, y, g)
			}
		}
	}
	// Cardinal points.
	for _, pt := range [][2]int{{10, 2}, {10, 18}, {2, 10}, {18, 10}} {
		if g.at(pt[0], pt[1]) != 255 {
			t.Errorf("circle misses cardinal point (%d,%d)\n%s", pt[0], pt[1], g)
		}
	}
}

func TestFillCircleContainsOutline(t *testing.T) {
	out := newGrid(21, 21)
	DrawCircle(out, 10, 10, 6, 255)
	fill := newGrid(21, 21)
	FillCircle(fill, 10, 10, 6, 255)

	for i := range out.pix {
		if out.pix[i] != 0 && fill.pix[i] == 0 {
			t.Fatalf("fill misses outline pixel %d\noutline:\n%s\nfill:\n%s", i, out, fill)
		}
	}
	if fill.count() <= out.count() {
		t.Errorf("fill (%d px) not larger than outline (%d px)", fill.count(), out.count())
	}
}

func TestDrawCharH(t *testing.T) {
	g := newGrid(8, 8)
	DrawChar(g, 0, 0, 'H', 255)

	want := strings.TrimLeft(`
#...#...
#...#...
#...#...
#####...
#...#...
#...#...
#...#...
........
`, "\n")
	if g.String() != want {
		t.Errorf("glyph H:\n%swant:\n%s", g, want)
	}
}

func TestDrawCharFoldsLowercase(t *testing.T) {
	up := newGrid(8, 8)
	DrawChar(up, 0, 0, 'G', 255)
	low := newGrid(8, 8)
	DrawChar(low, 0, 0, 'g', 255)

	if up.String() != low.String() {
		t.Errorf("lowercase g renders differently:\n%svs:\n%s", low, up)
	}
}

func TestDrawCharUnknownIsBlank(t *testing.T) {
	g := newGrid(8, 8)
	DrawChar(g, 0, 0, '~', 255)
	if g.count() != 0 {
		t.Errorf("unknown glyph painted pixels\n%s", g)
	}
}

func TestDrawTextAdvance(t *testing.T) {
	g := newGrid(20, 8)
	DrawText(g, 0, 0, "II", 255)

	// 'I' is a vertical bar on column 2 of its cell.
	if g.at(2, 3) != 255 || g.at(2+GlyphWidth, 3) != 255 {
		t.Errorf("text does not advance by glyph width\n%s", g)
	}
}
