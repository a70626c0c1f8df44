// Package monitor reconstructs a picture from the raw DAC sample stream
// and shows it in an SDL window, standing in for the television at the
// end of the cable.
package monitor

import (
	"compvid/video"
)

// A Decoder consumes the DAC sample stream one sample at a time and
// rebuilds the visible picture. The stream starts at the top of the odd
// vertical interval, so decoding is a matter of counting samples through
// the fixed frame layout rather than hunting for sync edges.
type Decoder struct {
	spec     video.ModeSpec
	oddLen   int
	evenLen  int
	fieldLen int
	repeat   int

	pos    int // sample index within the frame
	bufidx int
	bufs   [2][]byte

	// out receives a finished picture at the end of every field. The
	// slice is reused two emissions later; consumers must copy or
	// forward it before then.
	out func(field video.Field, rgba []byte)
}

func NewDecoder(spec video.ModeSpec, out func(field video.Field, rgba []byte)) *Decoder {
	d := &Decoder{
		spec:    spec,
		oddLen:  len(video.OddVSync()),
		evenLen: len(video.EvenVSync()),
		repeat:  (spec.NumDescriptors - 4) / (2 * spec.Height),
		out:     out,
	}
	d.fieldLen = spec.Height * d.repeat * spec.RowPixelClocks
	for i := range d.bufs {
		d.bufs[i] = make([]byte, spec.Width*spec.Height*4)
		opaque(d.bufs[i])
	}
	return d
}

func opaque(rgba []byte) {
	for i := 3; i < len(rgba); i += 4 {
		rgba[i] = 0xFF
	}
}

// gray maps a DAC code to a display intensity. Sync and blanking levels
// clamp to black, anything past reference white clamps to full.
func gray(s video.Sample) byte {
	if s <= video.LevelBlack {
		return 0
	}
	if s >= video.LevelWhite {
		return 255
	}
	return byte(uint32(s-video.LevelBlack) * 255 / uint32(video.LevelWhite-video.LevelBlack))
}

// Feed consumes one sample. It is wired as the DAC output tap.
func (d *Decoder) Feed(s video.Sample) {
	p := d.pos
	switch {
	case p < d.oddLen:
		// odd vertical interval
	case p < d.oddLen+d.fieldLen:
		d.pixel(p-d.oddLen, s)
	case p < d.oddLen+d.fieldLen+d.evenLen:
		// even vertical interval
	default:
		d.pixel(p-d.oddLen-d.fieldLen-d.evenLen, s)
	}

	d.pos++
	switch d.pos {
	case d.oddLen + d.fieldLen:
		d.emit(video.FieldOdd)
	case d.oddLen + d.fieldLen + d.evenLen + d.fieldLen:
		d.emit(video.FieldEven)
		d.pos = 0
	}
}

// pixel places one in-field sample, given its offset from the start of
// the field's row block.
func (d *Decoder) pixel(rel int, s video.Sample) {
	x := rel%d.spec.RowPixelClocks - d.spec.XOffset
	if x < 0 || x >= d.spec.Width {
		return
	}
	y := rel / d.spec.RowPixelClocks / d.repeat

	g := gray(s)
	px := d.bufs[d.bufidx][(y*d.spec.Width+x)*4:]
	px[0], px[1], px[2] = g, g, g
}

func (d *Decoder) emit(f video.Field) {
	buf := d.bufs[d.bufidx]
	d.bufidx = 1 - d.bufidx
	copy(d.bufs[d.bufidx], buf)
	if d.out != nil {
		d.out(f, buf)
	}
}
