package hwio

import "testing"

type test1 struct {
	Reg1   Reg8 `hwio:"offset=0x111,reset=0x23,rwmask=0x1,wcb"`
	Reg2   Reg8 `hwio:"offset=0x444,bank=1,rcb"`
	called bool
}

func (t *test1) WriteREG1(old, val uint8) {
	t.called = true
}

func (t *test1) ReadREG2(val uint8) uint8 {
	return val | 1
}

func TestReflect(t *testing.T) {
	ts := &test1{}

	err := InitRegs(ts)
	if err != nil {
		t.Fatal(err)
	}

	t.Log(ts)
	if ts.Reg1.Name != "Reg1" || ts.Reg2.Name != "Reg2" {
		t.Error("invalid names:", ts.Reg1, ts.Reg2)
	}

	if ts.Reg2.Read8() != 1 {
		t.Error("invalid read8:", ts.Reg2.Read8())
	}

	val := ts.Reg1.Read8()
	if val != 0x23 {
		t.Error("invalid read8", val)
	}

	ts.Reg1.Write8(0)
	if ts.Reg1.Value != 0x22 {
		t.Error("invalid read after rwmask", ts.Reg1.Value)
	}
	if !ts.called {
		t.Error("callback not called")
	}
}

func TestBankRegs(t *testing.T) {
	ts := &test1{}
	if err := InitRegs(ts); err != nil {
		t.Fatal(err)
	}

	info, err := BankRegs(ts, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(info) != 1 {
		t.Fatal("wrong number of regs in bank:", len(info))
	}
	if info[0].Offset != 0x111 {
		t.Errorf("invalid reg offset: %x", info[0].Offset)
	}

	rptr, ok := info[0].Reg.(*Reg8)
	if !ok {
		t.Errorf("invalid reg ptr type: %T", info[0].Reg)
	} else if rptr != &ts.Reg1 {
		t.Errorf("invalid reg ptr")
	}

	info, err = BankRegs(ts, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(info) != 1 {
		t.Fatal("wrong number of regs in bank:", len(info))
	}
	if info[0].Offset != 0x444 {
		t.Errorf("invalid reg offset: %x", info[0].Offset)
	}
}

func TestReadWriteOnly(t *testing.T) {
	type test2 struct {
		Reg1 Reg8 `hwio:"reset=0x23,readonly"`
		Reg2 Reg8 `hwio:"writeonly"`
	}

	ts := &test2{}
	err := InitRegs(ts)
	if err != nil {
		t.Fatal(err)
	}

	ts.Reg1.Write8(0) // this should be ignored
	if ts.Reg1.Read8() != 0x23 {
		t.Error("invalid reg1 read:", ts.Reg1.Read8())
	}

	ts.Reg2.Write8(0x23)
	if ts.Reg2.Read8() != 0 {
		t.Error("invalid reg2 read:", ts.Reg2.Read8())
	}
	if ts.Reg2.Peek8() != 0x23 {
		t.Error("invalid reg2 peek:", ts.Reg2.Peek8())
	}
}

func TestValuesTooBig(t *testing.T) {
	type test3 struct {
		R Reg8 `hwio:"reset=0x123"`
	}
	type test4 struct {
		R Reg8 `hwio:"rwmask=0x123"`
	}

	ts := &test3{}
	if err := InitRegs(ts); err == nil {
		t.Fatal("initregs should fail")
	}

	ts2 := &test4{}
	if err := InitRegs(ts2); err == nil {
		t.Fatal("initregs should fail")
	}
}

type test16 struct {
	Data  Reg16 `hwio:"offset=0x08,writeonly,wcb"`
	last  uint16
	peeks int
	Cnt   Reg16 `hwio:"offset=0x0C,reset=0x1234,pcb=PeekCount"`
}

func (t *test16) WriteDATA(old, val uint16) {
	t.last = val
}

func (t *test16) PeekCount(val uint16) uint16 {
	t.peeks++
	return val
}

func TestReflect16(t *testing.T) {
	ts := &test16{}
	if err := InitRegs(ts); err != nil {
		t.Fatal(err)
	}

	ts.Data.Write16(0x1FF)
	if ts.last != 0x1FF {
		t.Errorf("write callback got %#x", ts.last)
	}
	if ts.Data.Read16() != 0 {
		t.Error("writeonly reg should read as zero")
	}

	if ts.Cnt.Peek16() != 0x1234 {
		t.Errorf("invalid peek: %#x", ts.Cnt.Peek16())
	}
	if ts.peeks != 1 {
		t.Errorf("peek callback called %d times", ts.peeks)
	}
}

func TestCallbackNotFound(t *testing.T) {
	type test5 struct {
		R Reg8 `hwio:"rcb"`
	}

	ts := &test5{}
	if err := InitRegs(ts); err == nil {
		t.Fatal("initregs should fail on missing callback")
	}
}
