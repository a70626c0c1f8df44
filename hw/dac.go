// Package hw simulates the handful of peripherals the video engine needs:
// a DMA controller, the timer pacing it and the DAC the samples land in.
// The register layer mirrors the memory-mapped interface of the real
// parts, so driver code reads and writes the same bits it would on metal.
package hw

import (
	"compvid/emu/log"
	"compvid/hw/hwio"
	"compvid/video"
)

var modDAC = log.ModDAC

// ctrlbResselBit selects the 1V internal reference instead of VDDANA.
// The video levels are calibrated for the supply reference, so driver
// code leaves it clear.
const ctrlbResselBit = 0x40

// DAC is the digital-to-analog converter. Every value stored to DATA is
// one output sample; a tap function observes the stream in order.
type DAC struct {
	CTRLA hwio.Reg8  `hwio:"offset=0x00,reset=0x00"`
	CTRLB hwio.Reg8  `hwio:"offset=0x01,reset=0x00"`
	DATA  hwio.Reg16 `hwio:"offset=0x08,writeonly,wcb"`

	bits int
	tap  func(video.Sample)
}

func NewDAC() *DAC {
	dac := &DAC{bits: 10}
	hwio.MustInitRegs(dac)
	return dac
}

// SetResolution sets the converter width in bits. Writes are masked to
// the configured width.
func (dac *DAC) SetResolution(bits int) {
	dac.bits = bits
	modDAC.InfoZ("resolution set").Int("bits", bits).End()
}

// SetTap installs the observer for the output stream. Pass nil to detach.
func (dac *DAC) SetTap(tap func(video.Sample)) { dac.tap = tap }

// Write converts one sample. It is the programmatic equivalent of a
// store to DATA.
func (dac *DAC) Write(s video.Sample) { dac.DATA.Write16(uint16(s)) }

func (dac *DAC) WriteDATA(_, val uint16) {
	val &= uint16(1<<dac.bits) - 1
	if dac.tap != nil {
		dac.tap(video.Sample(val))
	}
}
