package hw

import "compvid/video"

// System bundles the simulated peripherals into the hardware surface the
// video engine drives. The timer's overflow is wired to the transfer
// controller's beat trigger, so Step is all it takes to make the
// pipeline run.
type System struct {
	dac  *DAC
	tc   *TC
	dmac *DMAC
}

func NewSystem() *System {
	dac := NewDAC()
	dmac := NewDMAC(dac)
	tc := NewTC()
	tc.SetTrigger(dmac.Trigger)
	return &System{dac: dac, tc: tc, dmac: dmac}
}

// Step advances the simulation by n CPU clocks.
func (s *System) Step(n int) { s.tc.Tick(n) }

// StepSamples advances the simulation far enough to produce n output
// samples at the timer's current period.
func (s *System) StepSamples(n int) {
	s.tc.Tick(n * (int(s.tc.CC0.Value) + 1))
}

func (s *System) Channel() video.DMAChannel    { return s.dmac.Channel() }
func (s *System) PixelClock() video.PixelClock { return s.tc }
func (s *System) DAC() video.DAC               { return s.dac }

// Raw accessors for tooling that pokes at the peripherals directly.
func (s *System) RawDAC() *DAC   { return s.dac }
func (s *System) RawTC() *TC     { return s.tc }
func (s *System) RawDMAC() *DMAC { return s.dmac }
