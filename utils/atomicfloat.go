package utils

import (
	"math"
	"sync/atomic"
)

// AtomicFloat32 is a single-value publish cell: one writer stores, one
// reader loads, stale reads are fine. Used to hand a value from the
// console input goroutine to the render loop without locks.
type AtomicFloat32 struct {
	bits uint32
}

func NewAtomicFloat32(initial float32) *AtomicFloat32 {
	a := &AtomicFloat32{}
	a.Store(initial)
	return a
}

func (a *AtomicFloat32) Store(v float32) {
	atomic.StoreUint32(&a.bits, math.Float32bits(v))
}

func (a *AtomicFloat32) Load() float32 {
	return math.Float32frombits(atomic.LoadUint32(&a.bits))
}
