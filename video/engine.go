// Package video generates an interlaced monochrome NTSC composite signal
// out of a DMA-fed DAC. The CPU's only job is to build a circular
// descriptor chain once; after that the transfer engine replays the
// vertical-interval tables and the frame buffer rows forever, and drawing
// is nothing more than storing DAC codes into the buffer.
package video

import (
	"compvid/emu/log"
)

var modVideo = log.ModVideo

// DMAChannel is one transfer channel of the DMA controller.
type DMAChannel interface {
	// Allocate claims the channel. It fails when the controller has no
	// free channel left, in which case Begin may be retried later.
	Allocate() error
	// Load binds the descriptor chain and the field latch the marker
	// descriptors write to. The chain must stay reachable until Stop.
	Load(chain Chain, latch *FieldLatch)
	Start() error
	Stop()
	Busy() bool
}

// PixelClock is the timer that paces beats, one per pixel clock.
type PixelClock interface {
	Configure(period uint16)
	Enable(on bool)
}

// DAC is the converter the sample stream lands in.
type DAC interface {
	SetResolution(bits int)
	Write(s Sample)
}

// Hardware bundles the three peripherals the engine drives.
type Hardware interface {
	Channel() DMAChannel
	PixelClock() PixelClock
	DAC() DAC
}

// Engine owns the frame buffer and the descriptor chain for one video
// mode and drives the peripherals that turn them into a signal.
type Engine struct {
	mode Mode
	spec ModeSpec
	hw   Hardware

	ch    DMAChannel
	fb    *FrameBuffer
	chain Chain
	latch FieldLatch
	rot   Rotation

	running bool
}

// New builds an engine for the given mode. No hardware is touched until
// Begin.
func New(mode Mode, hw Hardware) (*Engine, error) {
	spec, err := mode.Spec()
	if err != nil {
		return nil, err
	}
	return &Engine{mode: mode, spec: spec, hw: hw}, nil
}

// Begin allocates a channel, builds the frame buffer and the chain,
// programs the clock and the DAC and starts the transfer job. The screen
// comes up black. Calling Begin on a running engine is a no-op.
//
// The only error Begin returns is channel exhaustion; every other step is
// infallible. A failed Begin leaves no hardware claimed and may be
// retried once a channel frees up.
func (e *Engine) Begin() error {
	if e.running {
		return nil
	}

	ch := e.hw.Channel()
	if err := ch.Allocate(); err != nil {
		return err
	}

	e.fb = NewFrameBuffer(e.spec)
	e.fb.Clear()
	e.chain = BuildChain(e.spec, OddVSync(), EvenVSync(), e.fb)
	e.latch.Store(FieldNone)

	clk := e.hw.PixelClock()
	clk.Configure(e.spec.TimerPeriod)

	e.hw.DAC().SetResolution(10)

	ch.Load(e.chain, &e.latch)
	if err := ch.Start(); err != nil {
		clk.Enable(false)
		ch.Stop()
		return err
	}
	clk.Enable(true)

	e.ch = ch
	e.running = true
	modVideo.InfoZ("video output started").
		String("mode", e.mode.String()).
		Int("descriptors", len(e.chain)).
		End()
	return nil
}

// Stop halts the transfer job and releases the channel. The frame buffer
// survives, so a later Begin resumes with a black screen, not the old
// image.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.hw.PixelClock().Enable(false)
	e.ch.Stop()
	e.ch = nil
	e.running = false
	modVideo.InfoZ("video output stopped").End()
}

// SetRotation sets the mapping applied to all subsequent pixel writes.
// Pixels already in the buffer keep their physical position.
func (e *Engine) SetRotation(r Rotation) { e.rot = r }

// Rotation returns the current pixel write rotation.
func (e *Engine) Rotation() Rotation { return e.rot }

// Width returns the drawable width under the current rotation.
func (e *Engine) Width() int {
	w, _ := e.rot.Dimensions(e.spec.Width, e.spec.Height)
	return w
}

// Height returns the drawable height under the current rotation.
func (e *Engine) Height() int {
	_, h := e.rot.Dimensions(e.spec.Width, e.spec.Height)
	return h
}

// SetPixel writes one pixel at logical coordinates under the current
// rotation. Out of range coordinates and calls before Begin are ignored.
func (e *Engine) SetPixel(x, y int, brightness uint8) {
	if e.fb == nil {
		return
	}
	e.fb.SetPixel(x, y, brightness, e.rot)
}

// Clear resets every visible pixel to black. Safe while the transfer job
// is running; the beam picks up the new rows as it reaches them.
func (e *Engine) Clear() {
	if e.fb == nil {
		return
	}
	e.fb.Clear()
}

// Field reports which field most recently finished scanning out, or
// FieldNone before the first vertical interval.
func (e *Engine) Field() Field { return e.latch.Load() }

// SetFieldHint overwrites the field latch, typically with FieldNone to
// arm a fresh poll. The transfer job stamps the latch again at the next
// field boundary.
func (e *Engine) SetFieldHint(f Field) { e.latch.Store(f) }

// Buffer exposes the live frame buffer, or nil before Begin.
func (e *Engine) Buffer() *FrameBuffer { return e.fb }

// Chain exposes the built descriptor chain, or nil before Begin.
func (e *Engine) Chain() Chain { return e.chain }

// Spec returns the constants of the engine's mode.
func (e *Engine) Spec() ModeSpec { return e.spec }
