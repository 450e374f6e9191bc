// Package vec provides a vector that grows only within a capacity
// fixed at construction.
package vec

import (
	"fmt"

	"github.com/snugcap/snug"
)

var (
	ErrFull       = snug.ErrFull
	ErrOutOfRange = snug.ErrOutOfRange
)

// Vec is a contiguous sequence over storage allocated once by New.
// Not safe for concurrent use.
type Vec[T any] struct {
	data []T
	len  int
}

// New returns a vector holding at most capacity elements.
// It panics if capacity is not positive.
func New[T any](capacity int) *Vec[T] {
	if capacity <= 0 {
		panic("vec: capacity must be positive")
	}
	return &Vec[T]{data: make([]T, capacity)}
}

// Cap returns the configured capacity.
func (v *Vec[T]) Cap() int {
	return len(v.data)
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.len
}

// Empty returns true if the vector holds no elements.
func (v *Vec[T]) Empty() bool {
	return v.len == 0
}

// Full returns true if no more elements fit.
func (v *Vec[T]) Full() bool {
	return v.len == len(v.data)
}

// Remaining returns how many more elements fit.
func (v *Vec[T]) Remaining() int {
	return len(v.data) - v.len
}

// Push appends an element.
func (v *Vec[T]) Push(value T) error {
	if v.len >= len(v.data) {
		return ErrFull
	}
	v.data[v.len] = value
	v.len++
	return nil
}

// Pop removes and returns the last element.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.len == 0 {
		return zero, false
	}
	v.len--
	value := v.data[v.len]
	v.data[v.len] = zero
	return value, true
}

// At returns the element at index i.
func (v *Vec[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= v.len {
		return zero, false
	}
	return v.data[i], true
}

// Set overwrites the element at index i, reporting whether i was in
// bounds.
func (v *Vec[T]) Set(i int, value T) bool {
	if i < 0 || i >= v.len {
		return false
	}
	v.data[i] = value
	return true
}

// First returns the first element.
func (v *Vec[T]) First() (T, bool) {
	return v.At(0)
}

// Last returns the last element.
func (v *Vec[T]) Last() (T, bool) {
	return v.At(v.len - 1)
}

// Insert places value at index i, shifting everything at and after i
// one position right.
func (v *Vec[T]) Insert(i int, value T) error {
	if v.len >= len(v.data) {
		return ErrFull
	}
	if i < 0 || i > v.len {
		return ErrOutOfRange
	}
	copy(v.data[i+1:v.len+1], v.data[i:v.len])
	v.data[i] = value
	v.len++
	return nil
}

// Remove deletes and returns the element at index i, shifting
// everything after i one position left.
func (v *Vec[T]) Remove(i int) (T, bool) {
	var zero T
	if i < 0 || i >= v.len {
		return zero, false
	}
	value := v.data[i]
	copy(v.data[i:], v.data[i+1:v.len])
	v.len--
	v.data[v.len] = zero
	return value, true
}

// Swap exchanges the elements at a and b. It panics if either index
// is out of bounds.
func (v *Vec[T]) Swap(a, b int) {
	if a < 0 || a >= v.len {
		panic(fmt.Sprintf("vec: index %d out of bounds", a))
	}
	if b < 0 || b >= v.len {
		panic(fmt.Sprintf("vec: index %d out of bounds", b))
	}
	v.data[a], v.data[b] = v.data[b], v.data[a]
}

// Reverse reverses the elements in place.
func (v *Vec[T]) Reverse() {
	for left, right := 0, v.len-1; left < right; left, right = left+1, right-1 {
		v.data[left], v.data[right] = v.data[right], v.data[left]
	}
}

// Clear removes all elements.
func (v *Vec[T]) Clear() {
	clear(v.data[:v.len])
	v.len = 0
}

// Truncate shortens the vector to at most n elements.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= v.len {
		return
	}
	clear(v.data[n:v.len])
	v.len = n
}

// Slice returns the occupied prefix of the backing storage. The
// returned slice is a live view: writes through it are visible to the
// vector, and it is invalidated by any operation that changes length.
func (v *Vec[T]) Slice() []T {
	return v.data[:v.len]
}

// Extend appends elements from seq until the vector is full,
// returning the number of elements that did not fit.
func (v *Vec[T]) Extend(seq func(yield func(T) bool)) (rejected int) {
	seq(func(value T) bool {
		if v.Push(value) != nil {
			rejected++
		}
		return true
	})
	return rejected
}
