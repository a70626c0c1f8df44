package hwio

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// InitRegs initializes all Reg8/Reg16 fields of the given register bank
// (a pointer to struct) according to their "hwio" struct tag. Supported
// options:
//
//	offset=0x12     Byte-offset of the register within the bank. Registers
//	                without an offset still get initialized, they are just
//	                ignored by bankGetRegs.
//	bank=NN         Ordinal bank number (defaults to zero).
//	reset=0xNN      Register value after initialization.
//	rwmask=0xNN     Mask of writable bits (all bits by default).
//	readonly        Reject writes.
//	writeonly       Reject reads.
//	rcb[=Name]      Bind the read callback to method Name (default READ<FIELD>).
//	wcb[=Name]      Ditto for the write callback.
//	pcb[=Name]      Ditto for the peek callback.
func InitRegs(bank any) error {
	v := reflect.ValueOf(bank)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("hwio: bank must be a pointer to struct, got %T", bank)
	}

	sv := v.Elem()
	st := sv.Type()
	for i := range st.NumField() {
		field := st.Field(i)
		tag, ok := field.Tag.Lookup("hwio")
		if !ok {
			continue
		}

		opts, err := parseTag(tag)
		if err != nil {
			return fmt.Errorf("hwio: field %s: %w", field.Name, err)
		}

		switch reg := sv.Field(i).Addr().Interface().(type) {
		case *Reg8:
			err = initReg8(v, field.Name, reg, opts)
		case *Reg16:
			err = initReg16(v, field.Name, reg, opts)
		default:
			err = fmt.Errorf("unsupported register type %s", field.Type)
		}
		if err != nil {
			return fmt.Errorf("hwio: field %s: %w", field.Name, err)
		}
	}
	return nil
}

// MustInitRegs is like InitRegs but panics on error. Register banks are
// static declarations, a bad tag is a programming error.
func MustInitRegs(bank any) {
	if err := InitRegs(bank); err != nil {
		panic(err)
	}
}

// RegInfo describes one register of a bank, as discovered by BankRegs.
type RegInfo struct {
	Offset uint16
	Reg    any // *Reg8 or *Reg16
}

// BankRegs returns the registers of the given bank number that declare an
// offset, sorted by offset. Useful for debugging dumps and layout tests.
func BankRegs(bank any, bankNum int) ([]RegInfo, error) {
	v := reflect.ValueOf(bank)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("hwio: bank must be a pointer to struct, got %T", bank)
	}

	var regs []RegInfo
	sv := v.Elem()
	st := sv.Type()
	for i := range st.NumField() {
		field := st.Field(i)
		tag, ok := field.Tag.Lookup("hwio")
		if !ok {
			continue
		}
		opts, err := parseTag(tag)
		if err != nil {
			return nil, fmt.Errorf("hwio: field %s: %w", field.Name, err)
		}
		if !opts.hasOffset || opts.bank != bankNum {
			continue
		}
		regs = append(regs, RegInfo{Offset: opts.offset, Reg: sv.Field(i).Addr().Interface()})
	}

	sort.Slice(regs, func(i, j int) bool { return regs[i].Offset < regs[j].Offset })
	return regs, nil
}

type tagOpts struct {
	offset    uint16
	hasOffset bool
	bank      int
	reset     uint64
	rwmask    uint64
	hasRwmask bool
	readonly  bool
	writeonly bool
	rcb       string
	wcb       string
	pcb       string
	hasRcb    bool
	hasWcb    bool
	hasPcb    bool
}

func parseTag(tag string) (tagOpts, error) {
	var opts tagOpts
	for _, opt := range strings.Split(tag, ",") {
		key, val, _ := strings.Cut(opt, "=")
		switch key {
		case "offset":
			n, err := strconv.ParseUint(val, 0, 16)
			if err != nil {
				return opts, fmt.Errorf("invalid offset %q", val)
			}
			opts.offset = uint16(n)
			opts.hasOffset = true
		case "bank":
			n, err := strconv.ParseInt(val, 0, 32)
			if err != nil {
				return opts, fmt.Errorf("invalid bank %q", val)
			}
			opts.bank = int(n)
		case "reset":
			n, err := strconv.ParseUint(val, 0, 64)
			if err != nil {
				return opts, fmt.Errorf("invalid reset %q", val)
			}
			opts.reset = n
		case "rwmask":
			n, err := strconv.ParseUint(val, 0, 64)
			if err != nil {
				return opts, fmt.Errorf("invalid rwmask %q", val)
			}
			opts.rwmask = n
			opts.hasRwmask = true
		case "readonly":
			opts.readonly = true
		case "writeonly":
			opts.writeonly = true
		case "rcb":
			opts.rcb, opts.hasRcb = val, true
		case "wcb":
			opts.wcb, opts.hasWcb = val, true
		case "pcb":
			opts.pcb, opts.hasPcb = val, true
		default:
			return opts, fmt.Errorf("unknown option %q", key)
		}
	}
	return opts, nil
}

func (opts *tagOpts) flags() RWFlags {
	var flags RWFlags
	if opts.readonly {
		flags |= ReadOnlyFlag
	}
	if opts.writeonly {
		flags |= WriteOnlyFlag
	}
	return flags
}

// callback resolves the method bound to a register callback: the explicit
// name from the tag, or prefix+FIELDNAME (uppercase) when unspecified.
func callback[T any](bank reflect.Value, name, prefix, fieldName string) (T, error) {
	var fn T
	if name == "" {
		name = prefix + strings.ToUpper(fieldName)
	}
	m := bank.MethodByName(name)
	if !m.IsValid() {
		return fn, fmt.Errorf("callback method %s not found", name)
	}
	fn, ok := m.Interface().(T)
	if !ok {
		return fn, fmt.Errorf("callback method %s has wrong signature %s", name, m.Type())
	}
	return fn, nil
}

func initReg8(bank reflect.Value, name string, reg *Reg8, opts tagOpts) error {
	if opts.reset > 0xFF {
		return fmt.Errorf("reset value %#x does not fit in 8 bits", opts.reset)
	}
	if opts.hasRwmask && opts.rwmask > 0xFF {
		return fmt.Errorf("rwmask %#x does not fit in 8 bits", opts.rwmask)
	}

	reg.Name = name
	reg.Value = uint8(opts.reset)
	reg.Flags = opts.flags()
	reg.RoMask = 0
	if opts.hasRwmask {
		reg.RoMask = ^uint8(opts.rwmask)
	}

	var err error
	if opts.hasRcb {
		if reg.ReadCb, err = callback[func(uint8) uint8](bank, opts.rcb, "Read", name); err != nil {
			return err
		}
	}
	if opts.hasWcb {
		if reg.WriteCb, err = callback[func(uint8, uint8)](bank, opts.wcb, "Write", name); err != nil {
			return err
		}
	}
	if opts.hasPcb {
		if reg.PeekCb, err = callback[func(uint8) uint8](bank, opts.pcb, "Peek", name); err != nil {
			return err
		}
	}
	return nil
}

func initReg16(bank reflect.Value, name string, reg *Reg16, opts tagOpts) error {
	if opts.reset > 0xFFFF {
		return fmt.Errorf("reset value %#x does not fit in 16 bits", opts.reset)
	}
	if opts.hasRwmask && opts.rwmask > 0xFFFF {
		return fmt.Errorf("rwmask %#x does not fit in 16 bits", opts.rwmask)
	}

	reg.Name = name
	reg.Value = uint16(opts.reset)
	reg.Flags = opts.flags()
	reg.RoMask = 0
	if opts.hasRwmask {
		reg.RoMask = ^uint16(opts.rwmask)
	}

	var err error
	if opts.hasRcb {
		if reg.ReadCb, err = callback[func(uint16) uint16](bank, opts.rcb, "Read", name); err != nil {
			return err
		}
	}
	if opts.hasWcb {
		if reg.WriteCb, err = callback[func(uint16, uint16)](bank, opts.wcb, "Write", name); err != nil {
			return err
		}
	}
	if opts.hasPcb {
		if reg.PeekCb, err = callback[func(uint16) uint16](bank, opts.pcb, "Peek", name); err != nil {
			return err
		}
	}
	return nil
}
