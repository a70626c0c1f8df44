// Package probe makes the composite signal audible. It band-limits the
// raw DAC stream down to an audio rate and queues it to the sound card,
// which turns the line and field structure into the familiar CRT whine.
// Handy for checking sync timing by ear and for eyeballing the waveform
// in any audio scope.
package probe

import (
	"errors"
	"unsafe"

	"github.com/arl/blip"
	"github.com/veandco/go-sdl2/sdl"

	"compvid/emu/log"
	"compvid/video"
)

var modProbe = log.ModProbe

// levelGain scales 10-bit DAC codes into the int16 range.
const levelGain = 100

const (
	audioFormat     = sdl.AUDIO_S16LSB
	audioBufferSize = 2048
)

// chunksPerSec is how often buffered deltas are resampled and queued.
const chunksPerSec = 60

// Probe resamples the DAC output stream to an audio rate and plays it.
type Probe struct {
	buf *blip.Buffer
	dev sdl.AudioDeviceID

	clockHz     int
	chunkClocks int
	t           uint64
	prev        int16

	out []int16
}

// New opens an audio device playing the signal at the given sample rate.
// The clock rate is the pixel clock the DAC samples arrive at.
func New(clockHz, sampleRate int) (*Probe, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, err
	}

	spec := sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   audioFormat,
		Channels: 1,
		Samples:  audioBufferSize,
	}
	dev, err := sdl.OpenAudioDevice("", false, &spec, nil, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, err
	}

	maxSamples := sampleRate / chunksPerSec * 2
	buf := blip.NewBuffer(maxSamples)
	buf.SetRates(float64(clockHz), float64(sampleRate))

	p := &Probe{
		buf:         buf,
		dev:         dev,
		clockHz:     clockHz,
		chunkClocks: clockHz / chunksPerSec,
		out:         make([]int16, maxSamples),
	}

	sdl.PauseAudioDevice(dev, false)
	modProbe.InfoZ("signal probe started").
		Int("clock", clockHz).
		Int("rate", sampleRate).
		End()
	return p, nil
}

// Feed consumes one DAC sample. It is wired as the DAC output tap, or
// chained after the monitor's.
func (p *Probe) Feed(s video.Sample) {
	cur := int16(s) * levelGain
	if d := cur - p.prev; d != 0 {
		p.buf.AddDelta(p.t, int32(d))
		p.prev = cur
	}

	if p.t++; p.t >= uint64(p.chunkClocks) {
		p.flush()
	}
}

func (p *Probe) flush() {
	p.buf.EndFrame(int(p.t))
	p.t = 0

	n := p.buf.ReadSamples(p.out, len(p.out), blip.Mono)
	if n == 0 {
		return
	}

	buf := unsafe.Slice((*byte)(unsafe.Pointer(&p.out[0])), n*2)
	cpy := make([]byte, len(buf))
	copy(cpy, buf)

	if err := sdl.QueueAudio(p.dev, cpy); err != nil {
		modProbe.DebugZ("failed to queue audio buffer").Error("err", err).End()
	}
}

// Close drains what is queued and releases the audio device.
func (p *Probe) Close() error {
	if p.dev == 0 {
		return errors.New("probe: already closed")
	}
	sdl.CloseAudioDevice(p.dev)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	p.dev = 0
	return nil
}
