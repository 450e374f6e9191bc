// Package hashmap provides a fixed-capacity hash table using open
// addressing with linear probing.
package hashmap

import (
	"hash/maphash"

	"github.com/snugcap/snug"
)

var ErrFull = snug.ErrFull

type bucketState uint8

const (
	empty bucketState = iota
	occupied
	deleted
)

type bucket[K comparable, V any] struct {
	state bucketState
	key   K
	val   V
}

// Map is a hash table over a bucket array allocated once by New.
// Collisions probe linearly to the next bucket; removals leave a
// tombstone so later probe chains stay intact, and inserts reclaim
// tombstones once the key is known to be absent. Inserting a new key
// fails once the load factor reaches 3/4. Not safe for concurrent
// use.
type Map[K comparable, V any] struct {
	seed    maphash.Seed
	buckets []bucket[K, V]
	mask    uint64
	len     int
}

// New returns a map with capacity buckets. It panics unless capacity
// is a positive power of two.
func New[K comparable, V any](capacity int) *Map[K, V] {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		panic("hashmap: capacity must be a positive power of 2")
	}
	return &Map[K, V]{
		seed:    maphash.MakeSeed(),
		buckets: make([]bucket[K, V], capacity),
		mask:    uint64(capacity) - 1,
	}
}

// Cap returns the configured bucket count.
func (m *Map[K, V]) Cap() int {
	return len(m.buckets)
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	return m.len
}

// Empty returns true if the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.len == 0
}

// Full returns true once the load factor cap is reached.
func (m *Map[K, V]) Full() bool {
	return m.len >= len(m.buckets)*3/4
}

// LoadFactor returns the fraction of buckets holding live entries.
func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.len) / float64(len(m.buckets))
}

// Set stores value under key. If the key is already present its value
// is overwritten and the previous value returned with replaced ==
// true; replacing never fails. Inserting a new key fails with ErrFull
// once the load factor reaches 3/4.
func (m *Map[K, V]) Set(key K, value V) (old V, replaced bool, err error) {
	index, found := m.probe(key)
	b := &m.buckets[index]
	if found {
		old = b.val
		b.val = value
		return old, true, nil
	}

	if m.Full() {
		return old, false, ErrFull
	}

	b.state = occupied
	b.key = key
	b.val = value
	m.len++
	return old, false, nil
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (val V, found bool) {
	index, found := m.lookup(key)
	if !found {
		return val, false
	}
	return m.buckets[index].val, true
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, found := m.lookup(key)
	return found
}

// Remove deletes key and returns its value. The bucket is left as a
// tombstone so probe chains through it keep working.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	var zeroK K
	var zeroV V

	index, found := m.lookup(key)
	if !found {
		return zeroV, false
	}

	b := &m.buckets[index]
	value := b.val
	b.state = deleted
	b.key = zeroK
	b.val = zeroV
	m.len--
	return value, true
}

// Clear removes all entries and tombstones.
func (m *Map[K, V]) Clear() {
	clear(m.buckets)
	m.len = 0
}

// Items implements iter.Seq2[K, V], iterating live entries in
// arbitrary order.
func (m *Map[K, V]) Items(yield func(key K, val V) bool) {
	for i := range m.buckets {
		if m.buckets[i].state != occupied {
			continue
		}
		if !yield(m.buckets[i].key, m.buckets[i].val) {
			return
		}
	}
}

func (m *Map[K, V]) hash(key K) uint64 {
	return maphash.Comparable(m.seed, key) & m.mask
}

// probe returns the bucket for key: the matching occupied bucket, or
// the bucket an insert should land in. The first tombstone on the
// chain is remembered and reused once the key is known to be absent,
// so removals hand their buckets back instead of eroding capacity —
// and the walk terminates even when churn has left no empty bucket.
// The load factor cap guarantees a reusable bucket always exists.
func (m *Map[K, V]) probe(key K) (index uint64, found bool) {
	start := m.hash(key)
	index = start
	reuse := start
	haveReuse := false
	for {
		b := &m.buckets[index]
		switch b.state {
		case empty:
			if haveReuse {
				return reuse, false
			}
			return index, false
		case occupied:
			if b.key == key {
				return index, true
			}
		case deleted:
			if !haveReuse {
				reuse, haveReuse = index, true
			}
		}
		index = (index + 1) & m.mask
		if index == start {
			return reuse, false
		}
	}
}

// lookup finds the occupied bucket holding key, stopping at the first
// empty bucket or after one full cycle.
func (m *Map[K, V]) lookup(key K) (uint64, bool) {
	start := m.hash(key)
	index := start
	for {
		b := &m.buckets[index]
		switch b.state {
		case empty:
			return 0, false
		case occupied:
			if b.key == key {
				return index, true
			}
		case deleted:
		}
		index = (index + 1) & m.mask
		if index == start {
			return 0, false
		}
	}
}
