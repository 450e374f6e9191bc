package ring

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New[int](8)
	require.Equal(t, 8, r.Cap())
	require.Equal(t, 0, r.Len())
	require.True(t, r.Empty())
	require.False(t, r.Full())

	require.Panics(t, func() { New[int](0) })
	require.Panics(t, func() { New[int](6) })
}

func TestPushPop(t *testing.T) {
	r := New[int](8)

	require.NoError(t, r.Push(42))
	require.Equal(t, 1, r.Len())
	require.False(t, r.Empty())

	value, err := r.Pop()
	require.NoError(t, err)
	require.Equal(t, 42, value)
	require.Equal(t, 0, r.Len())
	require.True(t, r.Empty())
}

func TestFullBuffer(t *testing.T) {
	r := New[int](4)
	for i := range 3 {
		require.NoError(t, r.Push(i))
	}
	require.True(t, r.Full())
	require.ErrorIs(t, r.Push(99), ErrFull)
}

func TestEmptyBuffer(t *testing.T) {
	r := New[int](4)
	_, err := r.Pop()
	require.ErrorIs(t, err, ErrEmpty)
}

func TestWraparound(t *testing.T) {
	r := New[int](4)
	for cycle := range 3 {
		for i := range 3 {
			require.NoError(t, r.Push(cycle*10+i))
		}
		for i := range 3 {
			value, err := r.Pop()
			require.NoError(t, err)
			require.Equal(t, cycle*10+i, value)
		}
	}
}

func TestConcurrentPushPop(t *testing.T) {
	const total = 1000
	r := New[int](256)

	done := make(chan []int)
	go func() {
		received := make([]int, 0, total)
		for len(received) < total {
			value, err := r.Pop()
			if err != nil {
				runtime.Gosched()
				continue
			}
			received = append(received, value)
		}
		done <- received
	}()

	for i := range total {
		for r.Push(i) != nil {
			runtime.Gosched()
		}
	}

	received := <-done
	for i, value := range received {
		require.Equal(t, i, value)
	}
}
