package monitor

import (
	"context"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"compvid/emu/log"
	"compvid/video"
)

var modMonitor = log.ModMonitor

const numVideoBuffers = 3

// Monitor is the window end of the pipeline. Samples go in through Tap,
// decoded pictures come out on screen.
type Monitor struct {
	cfg  Config
	spec video.ModeSpec
	dec  *Decoder

	frames chan []byte
	bufs   [numVideoBuffers][]byte
	bufidx int
}

func New(spec video.ModeSpec, cfg Config) *Monitor {
	m := &Monitor{
		cfg:    cfg,
		spec:   spec,
		frames: make(chan []byte, 1),
	}
	for i := range m.bufs {
		m.bufs[i] = make([]byte, spec.Width*spec.Height*4)
	}
	m.dec = NewDecoder(spec, m.frameOut)
	return m
}

// Tap returns the function to install as the DAC output tap. It may be
// called from any single goroutine.
func (m *Monitor) Tap() func(video.Sample) { return m.dec.Feed }

// frameOut hands a finished field to the render loop. When the window is
// behind, fields are dropped rather than stalling the sample producer.
func (m *Monitor) frameOut(f video.Field, rgba []byte) {
	m.bufidx++
	if m.bufidx == numVideoBuffers {
		m.bufidx = 0
	}
	buf := m.bufs[m.bufidx]
	copy(buf, rgba)

	select {
	case m.frames <- buf:
	default:
	}
}

// Run opens the window and renders decoded fields until the window is
// closed, escape is pressed or ctx is canceled. It locks its goroutine
// to an OS thread for the duration; SDL requires it.
func (m *Monitor) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	w, err := newWindow("compvid",
		m.spec.Width, m.spec.Height, m.cfg.Video.Scale,
		m.cfg.Video.CRTShader, !m.cfg.Video.DisableVSync)
	if err != nil {
		return err
	}
	defer w.Close()

	modMonitor.InfoZ("monitor window open").
		Int("scale", m.cfg.Video.Scale).
		Bool("crt", m.cfg.Video.CRTShader).
		End()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_RESIZED {
					resizeViewport(int(e.Data1), int(e.Data2))
				}
			}
		}

		select {
		case buf := <-m.frames:
			w.upload(m.spec.Width, m.spec.Height, buf)
		default:
		}

		w.draw()
	}
}
