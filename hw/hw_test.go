package hw

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"compvid/video"
)

func startEngine(t *testing.T) (*System, *video.Engine, *[]video.Sample) {
	t.Helper()

	sys := NewSystem()
	var stream []video.Sample
	sys.RawDAC().SetTap(func(s video.Sample) { stream = append(stream, s) })

	eng, err := video.New(video.ModeNTSC40x24, sys)
	if err != nil {
		t.Fatal(err)
	}
	if err := eng.Begin(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(eng.Stop)
	return sys, eng, &stream
}

// TestFullFrameScanout runs the simulation for one full frame and checks
// the DAC output stream sample for sample against the timing tables and
// the frame buffer content.
func TestFullFrameScanout(t *testing.T) {
	sys, eng, stream := startEngine(t)
	spec := eng.Spec()

	eng.SetPixel(0, 0, 255)
	eng.SetPixel(3, 7, 128)
	eng.SetPixel(spec.Width-1, spec.Height-1, 255)

	// One frame of triggers: every DAC sample plus the two field marker
	// beats, which produce none.
	sys.StepSamples(spec.SamplesPerFrame() + 2)

	if len(*stream) != spec.SamplesPerFrame() {
		t.Fatalf("got %d samples, want %d", len(*stream), spec.SamplesPerFrame())
	}

	var want []video.Sample
	want = append(want, video.OddVSync()...)
	for y := 0; y < spec.Height; y++ {
		for r := 0; r < 9; r++ {
			want = append(want, eng.Buffer().Row(y)...)
		}
	}
	want = append(want, video.EvenVSync()...)
	for y := 0; y < spec.Height; y++ {
		for r := 0; r < 9; r++ {
			want = append(want, eng.Buffer().Row(y)...)
		}
	}

	if diff := cmp.Diff(want, *stream); diff != "" {
		t.Errorf("scanout stream mismatch:\n%s", diff)
	}
}

func TestScanoutLoops(t *testing.T) {
	sys, eng, stream := startEngine(t)
	spec := eng.Spec()

	// A frame and a half: the chain must wrap back to the odd vertical
	// interval without CPU help.
	sys.StepSamples(spec.SamplesPerFrame() + 2 + len(video.OddVSync()))

	second := (*stream)[spec.SamplesPerFrame():]
	if diff := cmp.Diff(video.OddVSync(), second); diff != "" {
		t.Errorf("second frame does not restart with the odd vertical interval:\n%s", diff)
	}
}

func TestFieldLatchOrdering(t *testing.T) {
	sys, eng, _ := startEngine(t)
	spec := eng.Spec()

	fieldRows := 216 * spec.RowPixelClocks

	if got := eng.Field(); got != video.FieldNone {
		t.Fatalf("field before any scanout: %s", got)
	}

	// Everything up to the last pixel row sample of the odd field, but
	// not the marker beat.
	sys.StepSamples(len(video.OddVSync()) + fieldRows)
	if got := eng.Field(); got != video.FieldNone {
		t.Fatalf("field before odd marker: %s", got)
	}

	sys.StepSamples(1) // the marker beat itself
	if got := eng.Field(); got != video.FieldOdd {
		t.Fatalf("field after odd marker: %s", got)
	}

	sys.StepSamples(len(video.EvenVSync()) + fieldRows + 1)
	if got := eng.Field(); got != video.FieldEven {
		t.Fatalf("field after even marker: %s", got)
	}

	// Next frame flips back to odd.
	sys.StepSamples(len(video.OddVSync()) + fieldRows + 1)
	if got := eng.Field(); got != video.FieldOdd {
		t.Fatalf("field after wrap: %s", got)
	}
}

func TestMidFrameDrawTearsOneRowAtMost(t *testing.T) {
	sys, eng, stream := startEngine(t)
	spec := eng.Spec()

	// Scan out the vertical interval and the first three replays of row
	// zero, then draw on row zero.
	sys.StepSamples(len(video.OddVSync()) + 3*spec.RowPixelClocks)
	eng.SetPixel(0, 0, 255)
	sys.StepSamples(spec.RowPixelClocks)

	rows := (*stream)[len(video.OddVSync()):]
	before := rows[2*spec.RowPixelClocks+spec.XOffset]
	after := rows[3*spec.RowPixelClocks+spec.XOffset]
	if before != video.LevelBlack {
		t.Errorf("replay before the write: sample %d, want black", before)
	}
	if after != video.LevelWhite {
		t.Errorf("replay after the write: sample %d, want white", after)
	}
}

func TestChannelExhaustion(t *testing.T) {
	sys := NewSystem()
	dmac := sys.RawDMAC()

	chans := make([]*Channel, 0, NumChannels)
	for range NumChannels {
		ch := dmac.Channel()
		if err := ch.Allocate(); err != nil {
			t.Fatal(err)
		}
		chans = append(chans, ch)
	}

	extra := dmac.Channel()
	if err := extra.Allocate(); err != ErrNoFreeChannel {
		t.Fatalf("13th allocation: %v, want ErrNoFreeChannel", err)
	}

	// Releasing one channel makes allocation possible again.
	chans[4].Stop()
	if err := extra.Allocate(); err != nil {
		t.Fatalf("allocation after release: %v", err)
	}
}

func TestTimerDividesClock(t *testing.T) {
	tc := NewTC()
	triggers := 0
	tc.SetTrigger(func() { triggers++ })

	tc.Configure(60)
	tc.Enable(true)

	tc.Tick(60)
	if triggers != 0 {
		t.Fatalf("%d triggers after 60 ticks, want 0", triggers)
	}
	tc.Tick(1)
	if triggers != 1 {
		t.Fatalf("%d triggers after 61 ticks, want 1", triggers)
	}
	tc.Tick(61 * 10)
	if triggers != 11 {
		t.Fatalf("%d triggers after 11x61 ticks, want 11", triggers)
	}

	tc.Enable(false)
	tc.Tick(1000)
	if triggers != 11 {
		t.Fatalf("disabled timer still fired: %d triggers", triggers)
	}
}

func TestDACResolutionMask(t *testing.T) {
	dac := NewDAC()
	var got []video.Sample
	dac.SetTap(func(s video.Sample) { got = append(got, s) })

	dac.SetResolution(10)
	dac.Write(0xFFFF)
	dac.Write(video.LevelWhite)

	want := []video.Sample{0x3FF, video.LevelWhite}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dac output:\n%s", diff)
	}
}

func TestEngineOnSimulatedHardwareRotated(t *testing.T) {
	sys, eng, stream := startEngine(t)
	spec := eng.Spec()

	eng.SetRotation(video.Rotate180)
	eng.SetPixel(0, 0, 255)

	sys.StepSamples(len(video.OddVSync()) + 216*spec.RowPixelClocks)

	// Logical (0,0) under 180 degrees lands on the last sample of the
	// last visible row.
	last := (*stream)[len(*stream)-spec.RowPixelClocks:]
	if got := last[spec.XOffset+spec.Width-1]; got != video.LevelWhite {
		t.Errorf("rotated pixel sample: %d, want white", got)
	}
}
