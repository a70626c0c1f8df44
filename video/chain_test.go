package video

import "testing"

func buildTestChain(t *testing.T) (ModeSpec, *FrameBuffer, Chain) {
	t.Helper()
	spec := testSpec(t)
	fb := NewFrameBuffer(spec)
	fb.Clear()
	return spec, fb, BuildChain(spec, OddVSync(), EvenVSync(), fb)
}

func TestBuildChainShape(t *testing.T) {
	spec, _, chain := buildTestChain(t)

	if len(chain) != spec.NumDescriptors {
		t.Fatalf("chain length %d, want %d", len(chain), spec.NumDescriptors)
	}

	d := chain[0]
	if d.Region != RegionOddVSync || d.Count != len(OddVSync()) {
		t.Errorf("descriptor 0: %s count %d, want odd vsync with %d samples",
			d.Region, d.Count, len(OddVSync()))
	}

	d = chain[218]
	if d.Region != RegionEvenVSync || d.Count != len(EvenVSync()) {
		t.Errorf("descriptor 218: %s count %d, want even vsync with %d samples",
			d.Region, d.Count, len(EvenVSync()))
	}

	for _, i := range []int{217, 435} {
		d := chain[i]
		if d.Region != RegionFieldMarker {
			t.Fatalf("descriptor %d: %s, want field marker", i, d.Region)
		}
		if d.Beat != Beat8 || d.Count != 1 || d.SrcInc || d.Dst != DestFieldLatch {
			t.Errorf("descriptor %d: not a single 8-bit latch beat: %+v", i, d)
		}
	}
	if chain[217].Marker != FieldOdd {
		t.Errorf("descriptor 217 marker: %s, want FieldOdd", chain[217].Marker)
	}
	if chain[435].Marker != FieldEven {
		t.Errorf("descriptor 435 marker: %s, want FieldEven", chain[435].Marker)
	}
}

func TestBuildChainRowMapping(t *testing.T) {
	spec, fb, chain := buildTestChain(t)

	check := func(i, wantRow int) {
		t.Helper()
		d := chain[i]
		if d.Region != RegionPixelRow {
			t.Fatalf("descriptor %d: %s, want pixel row", i, d.Region)
		}
		if d.Row != wantRow {
			t.Errorf("descriptor %d: row %d, want %d", i, d.Row, wantRow)
		}
		if d.Count != spec.RowPixelClocks || d.Beat != Beat16 || !d.SrcInc || d.Dst != DestDAC {
			t.Errorf("descriptor %d: bad transfer setup: %+v", i, d)
		}
		if &d.Src[0] != &fb.Row(wantRow)[0] {
			t.Errorf("descriptor %d: source does not alias frame buffer row %d", i, wantRow)
		}
	}

	// Each visible row is replayed on 9 consecutive descriptors, in both
	// fields.
	for i := 1; i <= 216; i++ {
		check(i, (i-1)/9)
	}
	for i := 219; i <= 434; i++ {
		check(i, (i-219)/9)
	}
}

func TestBuildChainLinks(t *testing.T) {
	_, _, chain := buildTestChain(t)

	for i, d := range chain[:len(chain)-1] {
		if d.Next != i+1 {
			t.Errorf("descriptor %d: next %d, want %d", i, d.Next, i+1)
		}
	}
	if last := chain[len(chain)-1]; last.Next != 0 {
		t.Errorf("last descriptor: next %d, want 0 (circular)", last.Next)
	}
}

func TestChainSeesPixelWrites(t *testing.T) {
	spec, fb, chain := buildTestChain(t)

	// No chain rebuild needed after drawing: the row descriptors alias
	// the live buffer.
	fb.SetPixel(3, 7, 255, Rotate0)
	d := chain[1+7*9]
	if got := d.Src[spec.XOffset+3]; got != LevelWhite {
		t.Errorf("pixel write not visible through chain: sample %d", got)
	}
}

func TestChainDACSampleTotal(t *testing.T) {
	spec, _, chain := buildTestChain(t)

	total := 0
	for _, d := range chain {
		if d.Dst == DestDAC {
			total += d.Count
		}
	}
	if total != spec.SamplesPerFrame() {
		t.Errorf("DAC samples per chain loop: %d, want %d", total, spec.SamplesPerFrame())
	}
}
