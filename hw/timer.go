package hw

import (
	"compvid/emu/log"
	"compvid/hw/hwio"
)

var modTimer = log.ModTimer

const ctrlaEnableBit = 0x02

// TC is the timer/counter that paces the transfer engine. In match
// frequency mode it overflows every CC0+1 input clocks and each overflow
// fires one beat trigger.
type TC struct {
	CTRLA hwio.Reg8  `hwio:"offset=0x00,reset=0x00,wcb"`
	CC0   hwio.Reg16 `hwio:"offset=0x1C,reset=0x0000"`

	count   uint16
	trigger func()
}

func NewTC() *TC {
	tc := &TC{}
	hwio.MustInitRegs(tc)
	return tc
}

// SetTrigger installs the function fired on every overflow.
func (tc *TC) SetTrigger(trigger func()) { tc.trigger = trigger }

// Configure programs the overflow period. The counter restarts from zero.
func (tc *TC) Configure(period uint16) {
	tc.CC0.Write16(period)
	tc.count = 0
	modTimer.InfoZ("timer configured").Hex16("period", period).End()
}

// Enable starts or stops the counter. Disabling keeps the period.
func (tc *TC) Enable(on bool) {
	v := tc.CTRLA.Value &^ uint8(ctrlaEnableBit)
	if on {
		v |= ctrlaEnableBit
	}
	tc.CTRLA.Write8(v)
}

func (tc *TC) Enabled() bool { return tc.CTRLA.Value&ctrlaEnableBit != 0 }

func (tc *TC) WriteCTRLA(old, val uint8) {
	if old&ctrlaEnableBit != val&ctrlaEnableBit {
		tc.count = 0
		modTimer.InfoZ("timer enable").Bool("on", val&ctrlaEnableBit != 0).End()
	}
}

// Tick advances the counter by n input clocks, firing the trigger once
// per overflow. It does nothing while the counter is disabled.
func (tc *TC) Tick(n int) {
	if !tc.Enabled() || tc.trigger == nil {
		return
	}
	period := int(tc.CC0.Value) + 1
	cnt := int(tc.count)
	for cnt += n; cnt >= period; cnt -= period {
		tc.trigger()
	}
	tc.count = uint16(cnt)
}
