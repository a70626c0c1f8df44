package video

import "compvid/emu/log"

//go:generate go tool stringer -type=Region

// Region identifies what a descriptor's source points into.
type Region uint8

const (
	RegionOddVSync Region = iota
	RegionEvenVSync
	RegionPixelRow
	RegionFieldMarker
)

// Destination selects the peripheral a descriptor transfers into.
type Destination uint8

const (
	DestDAC Destination = iota
	DestFieldLatch
)

// BeatSize is the width of one transfer beat, in bytes. Video data moves as
// 16-bit DAC codes, the field markers as single bytes.
type BeatSize uint8

const (
	Beat8  BeatSize = 1
	Beat16 BeatSize = 2
)

// Descriptor is one unit of the hardware transfer chain: a source region,
// a destination, a beat count and a link to the next descriptor.
type Descriptor struct {
	Region Region
	Row    int   // pixel row index, RegionPixelRow only
	Marker Field // latch value, RegionFieldMarker only

	Src    []Sample // bound source samples, nil for field markers
	Dst    Destination
	Beat   BeatSize
	SrcInc bool
	Count  int // beats in this block transfer
	Next   int // index of the next descriptor
}

// Chain is the circular descriptor list scanned by the DMA engine. It is
// never mutated after construction; re-initialization rebuilds it wholesale.
type Chain []Descriptor

// BuildChain compiles the mode constants, the two vertical-interval tables
// and the frame buffer rows into the circular chain: odd vertical interval,
// every pixel row replayed repeat times, the odd field marker, then the
// same again for the even field. It is a pure function of its inputs and
// touches no hardware.
func BuildChain(spec ModeSpec, odd, even []Sample, fb *FrameBuffer) Chain {
	// Four descriptors are not pixel rows: the two vertical intervals and
	// the two field markers. The rest replay each visible row enough times
	// to fill a field.
	rows := spec.Height
	repeat := (spec.NumDescriptors - 4) / (2 * rows)
	perField := rows * repeat

	chain := make(Chain, spec.NumDescriptors)
	for i := range chain {
		d := &chain[i]
		d.Dst = DestDAC
		d.Beat = Beat16
		d.SrcInc = true
		d.Next = i + 1

		switch {
		case i == 0:
			d.Region = RegionOddVSync
			d.Src = odd
			d.Count = len(odd)
		case i <= perField:
			d.Region = RegionPixelRow
			d.Row = (i - 1) / repeat
			d.Src = fb.Row(d.Row)
			d.Count = spec.RowPixelClocks
		case i == perField+1:
			d.marker(FieldOdd)
		case i == perField+2:
			d.Region = RegionEvenVSync
			d.Src = even
			d.Count = len(even)
		case i <= 2*perField+2:
			d.Region = RegionPixelRow
			d.Row = (i - perField - 3) / repeat
			d.Src = fb.Row(d.Row)
			d.Count = spec.RowPixelClocks
		default:
			d.marker(FieldEven)
		}
	}

	// Link the last descriptor back to the first. Once the transfer job
	// starts, video generation cycles on its own with zero CPU
	// intervention.
	chain[len(chain)-1].Next = 0

	log.ModChain.DebugZ("descriptor chain built").
		Int("descriptors", len(chain)).
		Int("rows", rows).
		Int("repeat", repeat).
		End()
	return chain
}

// marker turns d into a degenerate single-byte transfer that stamps the
// field latch when its block is reached.
func (d *Descriptor) marker(f Field) {
	d.Region = RegionFieldMarker
	d.Marker = f
	d.Src = nil
	d.Dst = DestFieldLatch
	d.Beat = Beat8
	d.SrcInc = false
	d.Count = 1
}
