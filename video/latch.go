package video

import "sync/atomic"

//go:generate go tool stringer -type=Field

// Field says which half of the interlaced frame the beam last finished.
type Field uint8

const (
	FieldNone Field = iota
	FieldOdd
	FieldEven
)

// FieldLatch is the single byte the chain's marker descriptors write into.
// Readers poll it to synchronize drawing with the vertical interval.
//
// The real peripheral stamps the latch mid-transfer with no CPU involved,
// so the value can change between any two loads. Treat a read as a hint,
// not a fence.
type FieldLatch struct {
	v atomic.Uint32
}

// Store records f as the most recently completed field.
func (l *FieldLatch) Store(f Field) { l.v.Store(uint32(f)) }

// Load returns the most recently completed field, or FieldNone before the
// first vertical interval has gone by.
func (l *FieldLatch) Load() Field { return Field(l.v.Load()) }
