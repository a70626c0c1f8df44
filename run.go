package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"compvid/gfx"
	"compvid/hw"
	"compvid/monitor"
	"compvid/probe"
	"compvid/video"
)

// fieldRate is how often the simulation advances by one field worth of
// samples. Close enough to the 59.94 Hz field rate of the real signal.
const fieldRate = 60

func rotationFromDegrees(deg int) video.Rotation {
	switch deg {
	case 90:
		return video.Rotate90
	case 180:
		return video.Rotate180
	case 270:
		return video.Rotate270
	}
	return video.Rotate0
}

// runMain generates video from a test pattern and shows the decoded
// signal in a window.
func runMain(args Run) {
	cfg := monitor.LoadConfigOrDefault()

	sys := hw.NewSystem()
	eng, err := video.New(video.ModeNTSC40x24, sys)
	checkf(err, "failed to create video engine")

	spec := eng.Spec()
	mon := monitor.New(spec, cfg)

	tap := mon.Tap()
	if args.Audio {
		prb, err := probe.New(spec.PixelClockHz(), cfg.Audio.SampleRate)
		checkf(err, "failed to open signal probe")
		defer prb.Close()

		montap := tap
		tap = func(s video.Sample) {
			montap(s)
			prb.Feed(s)
		}
	}
	sys.RawDAC().SetTap(tap)

	checkf(eng.Begin(), "failed to start video output")
	defer eng.Stop()

	eng.SetRotation(rotationFromDegrees(args.Rotation))
	pattern := newPattern(args)
	pattern.draw(eng, 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		simulate(ctx, sys, eng, pattern)
		return nil
	})

	err = mon.Run(ctx)
	cancel()
	if werr := g.Wait(); err == nil {
		err = werr
	}
	if err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "compvid: %v\n", err)
		os.Exit(1)
	}
}

// simulate steps the peripherals in near real time, one field per tick,
// redrawing animated patterns along the way.
func simulate(ctx context.Context, sys *hw.System, eng *video.Engine, p *pattern) {
	fieldSamples := eng.Spec().SamplesPerFrame() / 2

	tick := time.NewTicker(time.Second / fieldRate)
	defer tick.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if p.animated() {
				p.draw(eng, frame)
			}
			sys.StepSamples(fieldSamples)
		}
	}
}

// probeMain plays the composite signal through the sound card, with no
// window.
func probeMain(args Probe) {
	sys := hw.NewSystem()
	eng, err := video.New(video.ModeNTSC40x24, sys)
	checkf(err, "failed to create video engine")

	spec := eng.Spec()
	prb, err := probe.New(spec.PixelClockHz(), 48000)
	checkf(err, "failed to open signal probe")
	defer prb.Close()

	sys.RawDAC().SetTap(prb.Feed)

	checkf(eng.Begin(), "failed to start video output")
	defer eng.Stop()

	p := newPattern(Run{Pattern: "bars"})
	p.draw(eng, 0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if args.Seconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(args.Seconds)*time.Second)
		defer cancel()
	}

	simulate(ctx, sys, eng, p)
}

// pattern draws one of the built-in test pictures. Animated patterns
// redraw every field.
type pattern struct {
	name string
	text string
}

func newPattern(args Run) *pattern {
	return &pattern{name: args.Pattern, text: args.Text}
}

func (p *pattern) animated() bool { return p.name == "bounce" }

func (p *pattern) draw(d gfx.Display, frame int) {
	w, h := d.Width(), d.Height()

	switch p.name {
	case "grid":
		gfx.Fill(d, 0)
		for x := 0; x < w; x += 8 {
			gfx.DrawVLine(d, x, 0, h, 128)
		}
		for y := 0; y < h; y += 8 {
			gfx.DrawHLine(d, 0, y, w, 128)
		}
		gfx.DrawRect(d, 0, 0, w, h, 255)
		gfx.DrawCircle(d, w/2, h/2, h/2-1, 255)

	case "text":
		gfx.Fill(d, 0)
		gfx.DrawRect(d, 0, 0, w, h, 96)
		gfx.DrawText(d, 2, (h-gfx.GlyphHeight)/2, p.text, 255)

	case "bounce":
		// A ball on a diagonal path, folded back at the edges.
		r := 3
		px := bouncePos(frame, w-2*r) + r
		py := bouncePos(frame*2/3, h-2*r) + r
		gfx.Fill(d, 0)
		gfx.DrawRect(d, 0, 0, w, h, 64)
		gfx.FillCircle(d, px, py, r, 255)

	default: // bars
		nbars := 8
		for i := 0; i < nbars; i++ {
			x0 := i * w / nbars
			x1 := (i + 1) * w / nbars
			gfx.FillRect(d, x0, 0, x1-x0, h, uint8(i*255/(nbars-1)))
		}
	}
}

// bouncePos folds a monotonic counter into a 0..span-1 triangle wave.
func bouncePos(n, span int) int {
	if span <= 1 {
		return 0
	}
	period := 2 * (span - 1)
	pos := n % period
	if pos >= span {
		pos = period - pos
	}
	return pos
}
