package hwio

import "testing"

func TestReg8(t *testing.T) {
	r := Reg8{Value: 0x11, RoMask: 0xF0}

	if r.Read8() != 0x11 {
		t.Errorf("invalid read: %x", r.Read8())
	}

	r.Write8(0x77)
	if r.Value != 0x17 {
		t.Errorf("writemask not respected: %x", r.Value)
	}

	calls := 0
	r.WriteCb = func(old, val uint8) { calls++ }
	r.Write8(0x22)
	if calls != 1 {
		t.Errorf("write callback called %d times", calls)
	}
}

func TestReg16(t *testing.T) {
	r := Reg16{Value: 0x1122, RoMask: 0xFF00}

	if r.Read16() != 0x1122 {
		t.Errorf("invalid read: %x", r.Read16())
	}

	r.Write16(0x7777)
	if r.Value != 0x1177 {
		t.Errorf("writemask not respected: %x", r.Value)
	}

	r.ReadCb = func(val uint16) uint16 { return val | 0x8000 }
	if r.Read16() != 0x9177 {
		t.Errorf("read callback not applied: %x", r.Read16())
	}
	if r.Peek16() != 0x1177 {
		t.Errorf("peek should bypass read callback: %x", r.Peek16())
	}
}
