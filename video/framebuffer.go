package video

// FrameBuffer is the mutable pixel surface the hardware chain scans out:
// Height rows of RowPixelClocks samples each. A row is a full scan line,
// horizontal sync and overscan included, so the visible window of a row
// starts at XOffset and is Width samples wide.
//
// The buffer is written by SetPixel and read continuously and
// asynchronously by the DMA engine. There is no locking: every write is a
// single aligned sample store, so a mid-scan write tears for at most one
// frame and can never corrupt the signal.
type FrameBuffer struct {
	spec ModeSpec
	data []Sample
}

func NewFrameBuffer(spec ModeSpec) *FrameBuffer {
	return &FrameBuffer{
		spec: spec,
		data: make([]Sample, spec.Height*spec.RowPixelClocks),
	}
}

// Row returns the full scan line backing visible row y.
func (fb *FrameBuffer) Row(y int) []Sample {
	off := y * fb.spec.RowPixelClocks
	return fb.data[off : off+fb.spec.RowPixelClocks]
}

// Samples exposes the raw backing store. Read-only for callers; it exists
// for the scanout simulation, the monitor and tests.
func (fb *FrameBuffer) Samples() []Sample {
	return fb.data
}

// Quantize maps a 0-255 brightness onto the black..white DAC code window.
// Integer truncation is deliberate: 0 must land exactly on black and 255
// exactly on white.
func Quantize(brightness uint8) Sample {
	return LevelBlack + Sample(uint32(brightness)*uint32(LevelWhite-LevelBlack)/255)
}

// SetPixel writes one pixel at logical coordinates under the given
// rotation. Out-of-bounds coordinates are silently clipped.
func (fb *FrameBuffer) SetPixel(x, y int, brightness uint8, rot Rotation) {
	w, h := rot.Dimensions(fb.spec.Width, fb.spec.Height)
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}

	x, y = rot.Apply(x, y, fb.spec.Width, fb.spec.Height)
	fb.data[y*fb.spec.RowPixelClocks+fb.spec.XOffset+x] = Quantize(brightness)
}

// Clear paints every row with the black active-line pattern. Rotation does
// not apply: the reset covers the whole physical buffer whatever the
// rotation state.
func (fb *FrameBuffer) Clear() {
	for y := range fb.spec.Height {
		copy(fb.Row(y), blackLine)
	}
}
