package snug

import "errors"

var (
	ErrFull       = errors.New("full")
	ErrEmpty      = errors.New("empty")
	ErrOverflow   = errors.New("overflow")
	ErrUnderflow  = errors.New("underflow")
	ErrOutOfRange = errors.New("out of range")
)
