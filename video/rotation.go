package video

//go:generate go tool stringer -type=Rotation

// Rotation turns the logical drawing surface in 90 degree steps. It only
// affects per-pixel addressing: Clear and the scanout geometry always work
// on the physical, unrotated buffer.
type Rotation uint8

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// Dimensions returns the logical size of a w x h surface under r.
func (r Rotation) Dimensions(w, h int) (int, int) {
	if r == Rotate90 || r == Rotate270 {
		return h, w
	}
	return w, h
}

// Apply maps logical coordinates to coordinates in the unrotated w x h
// frame.
func (r Rotation) Apply(x, y, w, h int) (int, int) {
	switch r {
	case Rotate90:
		return w - 1 - y, x
	case Rotate180:
		return w - 1 - x, h - 1 - y
	case Rotate270:
		return y, h - 1 - x
	}
	return x, y
}

// Invert maps unrotated frame coordinates back to logical coordinates, so
// that Invert(Apply(x, y)) == (x, y).
func (r Rotation) Invert(x, y, w, h int) (int, int) {
	switch r {
	case Rotate90:
		return y, w - 1 - x
	case Rotate180:
		return w - 1 - x, h - 1 - y
	case Rotate270:
		return h - 1 - y, x
	}
	return x, y
}
