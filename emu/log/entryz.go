package log

import (
	"fmt"
	"sync"
	"time"

	"gopkg.in/Sirupsen/logrus.v0"
)

// EntryZ is a builder for a single structured log entry. All methods accept a
// nil receiver: when the entry's module/level is filtered out, logz returns
// nil and the whole chain becomes a couple of nil checks.
type EntryZ struct {
	mod Module
	lvl Level
	msg string

	zfbuf [16]ZField
	zfidx int
}

var entryzPool = sync.Pool{
	New: func() any { return new(EntryZ) },
}

func NewEntryZ() *EntryZ {
	e := entryzPool.Get().(*EntryZ)
	e.zfidx = 0
	return e
}

func (e *EntryZ) append(f ZField) *EntryZ {
	if e.zfidx < len(e.zfbuf) {
		e.zfbuf[e.zfidx] = f
		e.zfidx++
	}
	return e
}

func (e *EntryZ) Bool(key string, val bool) *EntryZ {
	if e == nil {
		return nil
	}
	return e.append(ZField{Type: FieldTypeBool, Key: key, Boolean: val})
}

func (e *EntryZ) String(key string, val string) *EntryZ {
	if e == nil {
		return nil
	}
	return e.append(ZField{Type: FieldTypeString, Key: key, String: val})
}

func (e *EntryZ) Hex8(key string, val uint8) *EntryZ {
	if e == nil {
		return nil
	}
	return e.append(ZField{Type: FieldTypeHex8, Key: key, Integer: uint64(val)})
}

func (e *EntryZ) Hex16(key string, val uint16) *EntryZ {
	if e == nil {
		return nil
	}
	return e.append(ZField{Type: FieldTypeHex16, Key: key, Integer: uint64(val)})
}

func (e *EntryZ) Int(key string, val int) *EntryZ {
	if e == nil {
		return nil
	}
	return e.append(ZField{Type: FieldTypeInt, Key: key, Integer: uint64(val)})
}

func (e *EntryZ) Uint(key string, val uint) *EntryZ {
	if e == nil {
		return nil
	}
	return e.append(ZField{Type: FieldTypeUint, Key: key, Integer: uint64(val)})
}

func (e *EntryZ) Error(key string, err error) *EntryZ {
	if e == nil {
		return nil
	}
	return e.append(ZField{Type: FieldTypeError, Key: key, Error: err})
}

func (e *EntryZ) Duration(key string, d time.Duration) *EntryZ {
	if e == nil {
		return nil
	}
	return e.append(ZField{Type: FieldTypeDuration, Key: key, Duration: d})
}

func (e *EntryZ) Stringer(key string, val fmt.Stringer) *EntryZ {
	if e == nil {
		return nil
	}
	return e.append(ZField{Type: FieldTypeStringer, Key: key, Interface: val})
}

// End emits the entry and recycles it. The entry must not be used afterwards.
func (e *EntryZ) End() {
	if e == nil {
		return
	}

	fields := make(logrus.Fields, e.zfidx+1)
	fields["_mod"] = modNames[e.mod]
	for i := range e.zfbuf[:e.zfidx] {
		fields[e.zfbuf[i].Key] = e.zfbuf[i].Value()
	}

	entry := logrus.StandardLogger().WithFields(fields)
	switch e.lvl {
	case PanicLevel:
		entry.Panic(e.msg)
	case FatalLevel:
		entry.Fatal(e.msg)
	case ErrorLevel:
		entry.Error(e.msg)
	case WarnLevel:
		entry.Warn(e.msg)
	case InfoLevel:
		entry.Info(e.msg)
	case DebugLevel:
		entry.Debug(e.msg)
	}

	entryzPool.Put(e)
}
