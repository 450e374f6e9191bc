// Package queue provides a fixed-capacity lock-free queue for one
// producer goroutine and one consumer goroutine.
package queue

import (
	"sync/atomic"

	"github.com/snugcap/snug"
)

var (
	ErrFull  = snug.ErrFull
	ErrEmpty = snug.ErrEmpty
)

// Queue is a single-producer/single-consumer queue over a slot array
// allocated once by New. The producer and consumer sides communicate
// only through the head and tail counters, so neither side ever
// blocks the other. One slot is sacrificed to distinguish full from
// empty: a queue of capacity N holds at most N-1 items.
//
// Correctness requires at most one goroutine pushing and at most one
// goroutine popping at any time; Split hands out one handle for each
// role.
type Queue[T any] struct {
	data []T
	mask uint64

	head atomic.Uint64
	_    [56]byte // keep head and tail on separate cache lines
	tail atomic.Uint64
}

// Producer is the write side of a queue. Not safe for concurrent use
// by multiple goroutines.
type Producer[T any] struct {
	queue *Queue[T]
}

// Consumer is the read side of a queue. Not safe for concurrent use
// by multiple goroutines.
type Consumer[T any] struct {
	queue *Queue[T]
}

// New returns a queue with capacity slots. It panics unless capacity
// is a positive power of two.
func New[T any](capacity int) *Queue[T] {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		panic("queue: capacity must be a positive power of 2")
	}
	return &Queue[T]{
		data: make([]T, capacity),
		mask: uint64(capacity) - 1,
	}
}

// Cap returns the configured slot count. The queue holds at most
// Cap()-1 items.
func (q *Queue[T]) Cap() int {
	return len(q.data)
}

// Len returns the number of items currently queued.
func (q *Queue[T]) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	return int((head - tail) & q.mask)
}

// Empty returns true if the queue holds no items.
func (q *Queue[T]) Empty() bool {
	return q.head.Load() == q.tail.Load()
}

// Full returns true if no more items fit.
func (q *Queue[T]) Full() bool {
	head := q.head.Load()
	tail := q.tail.Load()
	return (head+1)&q.mask == tail
}

// Split returns the producer and consumer handles. Hand each to its
// own goroutine.
func (q *Queue[T]) Split() (*Producer[T], *Consumer[T]) {
	return &Producer[T]{queue: q}, &Consumer[T]{queue: q}
}

// Push enqueues an item, failing with ErrFull when no slot is free.
func (p *Producer[T]) Push(item T) error {
	q := p.queue
	head := q.head.Load()
	next := (head + 1) & q.mask

	if next == q.tail.Load() {
		return ErrFull
	}

	q.data[head] = item
	q.head.Store(next)
	return nil
}

// Full reports whether the next Push would fail.
func (p *Producer[T]) Full() bool {
	return p.queue.Full()
}

// Len returns the number of items currently queued.
func (p *Producer[T]) Len() int {
	return p.queue.Len()
}

// Pop dequeues the oldest item, failing with ErrEmpty when the queue
// holds none.
func (c *Consumer[T]) Pop() (T, error) {
	var zero T
	q := c.queue
	tail := q.tail.Load()

	if tail == q.head.Load() {
		return zero, ErrEmpty
	}

	item := q.data[tail]
	q.data[tail] = zero // release the reference before handing the slot back
	q.tail.Store((tail + 1) & q.mask)
	return item, nil
}

// Empty reports whether the next Pop would fail.
func (c *Consumer[T]) Empty() bool {
	return c.queue.Empty()
}

// Len returns the number of items currently queued.
func (c *Consumer[T]) Len() int {
	return c.queue.Len()
}
