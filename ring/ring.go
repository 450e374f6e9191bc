// Package ring provides a fixed-capacity lock-free ring buffer.
package ring

import (
	"sync/atomic"

	"github.com/snugcap/snug"
)

var (
	ErrFull  = snug.ErrFull
	ErrEmpty = snug.ErrEmpty
)

// Ring is a circular buffer over a slot array allocated once by New.
// Push and Pop synchronize through atomic head and tail counters, so
// one pushing goroutine and one popping goroutine may share a Ring
// without locks. One slot is sacrificed to distinguish full from
// empty: a ring of capacity N holds at most N-1 items.
type Ring[T any] struct {
	data []T
	mask uint64

	head atomic.Uint64
	_    [56]byte // keep head and tail on separate cache lines
	tail atomic.Uint64
}

// New returns a ring with capacity slots. It panics unless capacity
// is a positive power of two.
func New[T any](capacity int) *Ring[T] {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		panic("ring: capacity must be a positive power of 2")
	}
	return &Ring[T]{
		data: make([]T, capacity),
		mask: uint64(capacity) - 1,
	}
}

// Cap returns the configured slot count. The ring holds at most
// Cap()-1 items.
func (r *Ring[T]) Cap() int {
	return len(r.data)
}

// Len returns the number of items currently buffered.
func (r *Ring[T]) Len() int {
	head := r.head.Load()
	tail := r.tail.Load()
	return int((head - tail) & r.mask)
}

// Empty returns true if the ring holds no items.
func (r *Ring[T]) Empty() bool {
	return r.Len() == 0
}

// Full returns true if no more items fit.
func (r *Ring[T]) Full() bool {
	return r.Len() == len(r.data)-1
}

// Push appends an item, failing with ErrFull when no slot is free.
func (r *Ring[T]) Push(item T) error {
	head := r.head.Load()
	next := (head + 1) & r.mask

	if next == r.tail.Load() {
		return ErrFull
	}

	r.data[head] = item
	r.head.Store(next)
	return nil
}

// Pop removes and returns the oldest item, failing with ErrEmpty when
// the ring holds none.
func (r *Ring[T]) Pop() (T, error) {
	var zero T
	tail := r.tail.Load()

	if tail == r.head.Load() {
		return zero, ErrEmpty
	}

	item := r.data[tail]
	r.data[tail] = zero
	r.tail.Store((tail + 1) & r.mask)
	return item, nil
}
