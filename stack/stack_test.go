package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New[int](8)
	require.Equal(t, 8, s.Cap())
	require.Equal(t, 0, s.Len())
	require.True(t, s.Empty())
	require.False(t, s.Full())
	require.Equal(t, 8, s.Remaining())

	require.Panics(t, func() { New[int](0) })
}

func TestPushPop(t *testing.T) {
	s := New[int](8)
	require.NoError(t, s.Push(42))
	require.Equal(t, 1, s.Len())
	require.False(t, s.Empty())
	require.Equal(t, 7, s.Remaining())

	value, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, 42, value)
	require.Equal(t, 0, s.Len())
	require.True(t, s.Empty())
}

func TestLIFOOrder(t *testing.T) {
	s := New[int](8)
	for i := range 5 {
		require.NoError(t, s.Push(i))
	}
	for i := 4; i >= 0; i-- {
		value, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, i, value)
	}
}

func TestOverflow(t *testing.T) {
	s := New[int](2)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	require.True(t, s.Full())
	require.ErrorIs(t, s.Push(3), ErrOverflow)
}

func TestUnderflow(t *testing.T) {
	s := New[int](2)
	_, err := s.Pop()
	require.ErrorIs(t, err, ErrUnderflow)
}

func TestPeek(t *testing.T) {
	s := New[int](8)
	_, ok := s.Peek()
	require.False(t, ok)

	require.NoError(t, s.Push(42))
	top, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, 42, top)
	require.Equal(t, 1, s.Len())

	require.NoError(t, s.Push(84))
	top, ok = s.Peek()
	require.True(t, ok)
	require.Equal(t, 84, top)
}

func TestClear(t *testing.T) {
	s := New[string](8)
	for range 5 {
		require.NoError(t, s.Push("x"))
	}
	require.Equal(t, 5, s.Len())

	s.Clear()
	require.Equal(t, 0, s.Len())
	require.True(t, s.Empty())
}

func TestItems(t *testing.T) {
	s := New[int](8)
	for i := range 5 {
		require.NoError(t, s.Push(i))
	}

	var got []int
	for item := range s.Items {
		got = append(got, item)
	}
	require.Equal(t, []int{4, 3, 2, 1, 0}, got)
}
