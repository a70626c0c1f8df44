package video

import "errors"

//go:generate go tool stringer -type=Mode

// Mode selects a video format. Only one format and resolution is supported,
// and maybe that's all there will ever be, but new ones would start here
// with an entry in the spec table.
type Mode uint8

const ModeNTSC40x24 Mode = iota

var ErrUnsupportedMode = errors.New("video: unsupported mode")

// ModeSpec carries the per-format timing constants.
type ModeSpec struct {
	TimerPeriod    uint16 // CPU ticks per pixel clock, minus one
	RowPixelClocks int    // pixel clocks (not visible pixels) per row
	XOffset        int    // offset in pixel clocks of the first visible pixel
	NumDescriptors int    // transfer descriptors for odd+even fields
	Width          int    // visible pixels per row
	Height         int    // visible rows
}

const cpuClockHz = 48_000_000

var modeSpecs = [...]ModeSpec{
	// F_CPU/61 = ~786,885 Hz, ~1.27 us per pixel clock.
	ModeNTSC40x24: {
		TimerPeriod:    60,
		RowPixelClocks: 50,
		XOffset:        9,
		NumDescriptors: 436,
		Width:          40,
		Height:         24,
	},
}

// Spec returns the timing constants for the mode, or ErrUnsupportedMode.
func (m Mode) Spec() (ModeSpec, error) {
	if int(m) >= len(modeSpecs) {
		return ModeSpec{}, ErrUnsupportedMode
	}
	return modeSpecs[m], nil
}

// PixelClockHz is the output sample rate of the mode.
func (s ModeSpec) PixelClockHz() int {
	return cpuClockHz / (int(s.TimerPeriod) + 1)
}

// SamplesPerFrame is the number of DAC samples in one full interlaced frame:
// both vertical intervals plus both fields' passes over the pixel rows.
func (s ModeSpec) SamplesPerFrame() int {
	repeat := (s.NumDescriptors - 4) / (2 * s.Height)
	return len(vsyncOdd) + len(vsyncEven) + 2*s.Height*repeat*s.RowPixelClocks
}
