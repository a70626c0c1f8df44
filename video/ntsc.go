package video

// Sample is one quantized voltage sample, as a 10-bit DAC code.
type Sample uint16

// NTSC sync, blank, black and white levels.
//
// The DAC settle time depends on the distance between the previous and next
// code whatever the reference voltage; full rail-to-rail swings are too slow
// and give a blurry picture with unreliable sync. So the converter stays on
// its default 3.3V reference and the whole signal lives inside the 0..310
// code window, which maps to 0.0-1.0V.
const (
	LevelSync  Sample = 0
	LevelBlank Sample = 45
	LevelBlack Sample = 60
	LevelWhite Sample = 310
)

// Pixel clock arrangements for the vertical sync and overscan lines. The 25
// and 50 sample counts are total pixel clocks per half-line or line,
// horizontal sync and overscan included; the drawable raster is narrower.
var (
	eqHalfLine        = syncThenBlank(2, 25)  // equalizing pulse, mostly blank
	serrationHalfLine = syncThenBlank(22, 25) // serration pulse, mostly sync
	blankLine         = syncThenBlank(4, 50)
	blackLine         = buildBlackLine()
)

// syncThenBlank builds a pattern of total samples: nsync sync-level samples
// followed by blank level.
func syncThenBlank(nsync, total int) []Sample {
	p := make([]Sample, total)
	for i := range p {
		if i < nsync {
			p[i] = LevelSync
		} else {
			p[i] = LevelBlank
		}
	}
	return p
}

// buildBlackLine returns the "active but black" line pattern Clear paints
// into every frame buffer row: the same shape as a blank line, with the
// visible interior raised to black level.
func buildBlackLine() []Sample {
	s := modeSpecs[ModeNTSC40x24]
	p := syncThenBlank(4, s.RowPixelClocks)
	for i := s.XOffset; i < s.XOffset+s.Width; i++ {
		p[i] = LevelBlack
	}
	return p
}

// vsyncOdd holds the pixel clocking data for the whole odd-field vertical
// interval, ending right before the field's first row of pixel data.
var vsyncOdd = concat(
	// These 16 blank lines (510-525) are the bottom of the *prior* even
	// field, merged here to save on DMA descriptors.
	repeat(blankLine, 16),
	// The vertical blank for odd fields actually starts here (lines 1-9).
	repeat(eqHalfLine, 6),
	repeat(serrationHalfLine, 6),
	repeat(eqHalfLine, 6),
	// Lines 10-20 are the remainder of the vertical blank.
	repeat(blankLine, 11),
	// Video could start now, but the next 10 lines (21-30) stay blank to
	// center the 24 pixel rows vertically. Pixel data then occupies lines
	// 31-246 (216 lines, 24 rows x 9).
	repeat(blankLine, 10),
)

// vsyncEven is the even-field counterpart of vsyncOdd.
var vsyncEven = concat(
	// Bottom of the prior odd field (lines 247-262), merged as above.
	repeat(blankLine, 16),
	// Line 263 is an odd half-line of image followed by half an equalizing
	// pulse, reflecting the half-line offset between fields.
	syncThenBlank(4, 25), eqHalfLine,
	// Vertical blank for even fields (lines 264-271).
	repeat(eqHalfLine, 5),
	repeat(serrationHalfLine, 6),
	repeat(eqHalfLine, 5),
	// Lines 272-282.
	repeat(blankLine, 11),
	// Line 283 is another odd half-line at the top of the new field, but
	// with no pixel data up this high a blank line works.
	blankLine,
	// Lines 284-293 center the pixel rows; data occupies 294-509.
	repeat(blankLine, 10),
)

func repeat(pattern []Sample, n int) []Sample {
	out := make([]Sample, 0, n*len(pattern))
	for range n {
		out = append(out, pattern...)
	}
	return out
}

func concat(parts ...[]Sample) []Sample {
	var out []Sample
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// OddVSync returns the odd-field vertical interval table. The slice is
// shared with the running hardware chain: callers must not modify it.
func OddVSync() []Sample { return vsyncOdd }

// EvenVSync returns the even-field vertical interval table. Same sharing
// rule as OddVSync.
func EvenVSync() []Sample { return vsyncEven }
