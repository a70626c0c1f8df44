package hw

import (
	"errors"

	"compvid/emu/log"
	"compvid/video"
)

var modDMA = log.ModDMA

// NumChannels is the size of the controller's channel pool.
const NumChannels = 12

var ErrNoFreeChannel = errors.New("hw: no free DMA channel")

// DMAC is the transfer controller. Each beat trigger from the timer moves
// one beat on every busy channel, walking the channel's descriptor chain.
type DMAC struct {
	dac   *DAC
	slots [NumChannels]slot
}

type slot struct {
	id    int
	alloc bool
	busy  bool

	chain video.Chain
	latch *video.FieldLatch
	desc  int // current descriptor
	beat  int // beat inside the current descriptor
}

func NewDMAC(dac *DAC) *DMAC {
	d := &DMAC{dac: dac}
	for i := range d.slots {
		d.slots[i].id = i
	}
	return d
}

// Channel returns a handle on the channel pool. The handle claims an
// actual channel only when Allocate succeeds.
func (d *DMAC) Channel() *Channel { return &Channel{ctl: d} }

// Trigger fires one beat on every busy channel. The timer overflow is
// wired here.
func (d *DMAC) Trigger() {
	for i := range d.slots {
		s := &d.slots[i]
		if s.busy {
			d.step(s)
		}
	}
}

func (d *DMAC) step(s *slot) {
	desc := &s.chain[s.desc]
	switch desc.Dst {
	case video.DestDAC:
		idx := 0
		if desc.SrcInc {
			idx = s.beat
		}
		d.dac.Write(desc.Src[idx])
	case video.DestFieldLatch:
		s.latch.Store(desc.Marker)
	}

	if s.beat++; s.beat >= desc.Count {
		s.beat = 0
		s.desc = desc.Next
	}
}

// Channel is one claim on the controller's pool. It satisfies the video
// engine's channel interface.
type Channel struct {
	ctl  *DMAC
	slot *slot
}

// Allocate claims a free channel, or fails with ErrNoFreeChannel. Calling
// Allocate on an already-claimed handle is a no-op.
func (c *Channel) Allocate() error {
	if c.slot != nil {
		return nil
	}
	for i := range c.ctl.slots {
		s := &c.ctl.slots[i]
		if !s.alloc {
			s.alloc = true
			c.slot = s
			modDMA.InfoZ("channel allocated").Int("ch", s.id).End()
			return nil
		}
	}
	return ErrNoFreeChannel
}

// Load binds the descriptor chain and the field latch. The transfer
// restarts from the first descriptor on the next Start.
func (c *Channel) Load(chain video.Chain, latch *video.FieldLatch) {
	s := c.slot
	if s == nil {
		return
	}
	s.chain = chain
	s.latch = latch
	s.desc = 0
	s.beat = 0
}

// Start arms the channel. Triggers are ignored until a chain is loaded.
func (c *Channel) Start() error {
	s := c.slot
	if s == nil {
		return ErrNoFreeChannel
	}
	if len(s.chain) == 0 {
		return errors.New("hw: channel started with no descriptor chain")
	}
	s.busy = true
	modDMA.InfoZ("channel started").
		Int("ch", s.id).
		Int("descriptors", len(s.chain)).
		End()
	return nil
}

// Stop halts the transfer and releases the channel back to the pool.
func (c *Channel) Stop() {
	s := c.slot
	if s == nil {
		return
	}
	*s = slot{id: s.id}
	c.slot = nil
	modDMA.InfoZ("channel stopped").Int("ch", s.id).End()
}

// Busy reports whether the channel job is running.
func (c *Channel) Busy() bool { return c.slot != nil && c.slot.busy }
