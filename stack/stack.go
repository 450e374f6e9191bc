// Package stack provides a fixed-capacity LIFO stack with inline
// storage.
package stack

import "github.com/snugcap/snug"

var (
	ErrOverflow  = snug.ErrOverflow
	ErrUnderflow = snug.ErrUnderflow
)

// Stack is a last-in-first-out stack over a slot array allocated once
// by New. Not safe for concurrent use.
type Stack[T any] struct {
	data []T
	len  int
}

// New returns a stack holding at most capacity items.
// It panics if capacity is not positive.
func New[T any](capacity int) *Stack[T] {
	if capacity <= 0 {
		panic("stack: capacity must be positive")
	}
	return &Stack[T]{data: make([]T, capacity)}
}

// Cap returns the configured capacity.
func (s *Stack[T]) Cap() int {
	return len(s.data)
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return s.len
}

// Empty returns true if the stack holds no items.
func (s *Stack[T]) Empty() bool {
	return s.len == 0
}

// Full returns true if no more items fit.
func (s *Stack[T]) Full() bool {
	return s.len == len(s.data)
}

// Remaining returns how many more items fit.
func (s *Stack[T]) Remaining() int {
	return len(s.data) - s.len
}

// Push places an item on top of the stack.
func (s *Stack[T]) Push(item T) error {
	if s.len >= len(s.data) {
		return ErrOverflow
	}
	s.data[s.len] = item
	s.len++
	return nil
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.len == 0 {
		return zero, ErrUnderflow
	}
	s.len--
	item := s.data[s.len]
	s.data[s.len] = zero
	return item, nil
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if s.len == 0 {
		return zero, false
	}
	return s.data[s.len-1], true
}

// Clear removes all items.
func (s *Stack[T]) Clear() {
	clear(s.data[:s.len])
	s.len = 0
}

// Items implements iter.Seq[T], iterating from the top of the stack
// down.
func (s *Stack[T]) Items(yield func(item T) bool) {
	for i := s.len - 1; i >= 0; i-- {
		if !yield(s.data[i]) {
			return
		}
	}
}
