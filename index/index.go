// Package index provides a fixed-capacity ordered index backed by a
// node arena. All record storage is allocated once, by New; no
// operation allocates, and every operation has a bounded cost.
package index

import (
	"cmp"
	"fmt"
)

// Index is an ordered key/value index over a fixed pool of record
// slots. Keys are kept sorted within each record and looked up by a
// branchless binary search, so lookup timing does not depend on the
// key distribution.
//
// Index is single-writer: Insert, Remove and Clear require exclusive
// access for the duration of the call. Reads may be shared across
// goroutines only while no writer runs; the index performs no
// internal locking.
type Index[K cmp.Ordered, V any] struct {
	root  SlotID
	arena arena[K, V]
	count int
}

// New returns an index with order record slots, each holding at most
// order keys. It panics if order is outside [1, 128]; a bad order is
// a programmer error, not a runtime condition.
//
// The insert path never grows past a single leaf record, so the
// number of keys an index can actually hold is order. Inserting into
// a full leaf fails with ErrFull instead of splitting it.
func New[K cmp.Ordered, V any](order int) *Index[K, V] {
	if order < 1 || order > maxRun {
		panic(fmt.Sprintf("index: order %d outside [1, %d]", order, maxRun))
	}
	idx := &Index[K, V]{root: noSlot}
	idx.arena.init(order)
	return idx
}

// Len returns the number of live key/value pairs.
func (idx *Index[K, V]) Len() int {
	return idx.count
}

// Empty returns true if the index holds no keys.
func (idx *Index[K, V]) Empty() bool {
	return idx.count == 0
}

// Capacity reports the nominal capacity of a tree grown to full
// depth. Since the insert path never grows past a single leaf, the
// true bound on insertable keys is the order passed to New; see New.
func (idx *Index[K, V]) Capacity() int {
	order := len(idx.arena.slots)
	return order * order * order * order
}

// Insert stores value under key. If the key is already present its
// value is overwritten and the previous value is returned with
// replaced == true; length is unchanged. Insert fails with ErrFull
// when the target leaf's key run is at the configured order, leaving
// the index unmodified.
func (idx *Index[K, V]) Insert(key K, value V) (old V, replaced bool, err error) {
	if idx.root == noSlot {
		root, aerr := idx.arena.allocate()
		if aerr != nil {
			return old, false, aerr
		}
		idx.root = root

		slot := idx.arena.node(root)
		slot.keys[0] = key
		slot.vals[0] = value
		slot.keyCount = 1
		idx.count++
		return old, false, nil
	}
	return idx.insert(idx.root, key, value)
}

func (idx *Index[K, V]) insert(id SlotID, key K, value V) (old V, replaced bool, err error) {
	slot := idx.arena.node(id)
	found, pos := slot.locate(key)

	if !slot.leaf {
		return idx.insert(slot.children[pos+b2i(found)], key, value)
	}

	if found {
		old = slot.vals[pos]
		slot.vals[pos] = value
		return old, true, nil
	}

	if slot.keyCount >= len(idx.arena.slots) {
		return old, false, ErrFull
	}

	// shift highest first so nothing is overwritten before it moves
	l := pos + 1
	copy(slot.keys[l:], slot.keys[pos:slot.keyCount])
	copy(slot.vals[l:], slot.vals[pos:slot.keyCount])
	slot.keys[pos] = key
	slot.vals[pos] = value
	slot.keyCount++
	idx.count++
	return old, false, nil
}

// Get returns the value stored under key.
func (idx *Index[K, V]) Get(key K) (val V, found bool) {
	id := idx.root
	for id != noSlot {
		slot := idx.arena.node(id)
		found, pos := slot.locate(key)
		if slot.leaf {
			if found {
				return slot.vals[pos], true
			}
			return val, false
		}
		id = slot.children[pos+b2i(found)]
	}
	return val, false
}

// Contains reports whether key is present.
func (idx *Index[K, V]) Contains(key K) bool {
	_, found := idx.Get(key)
	return found
}

// Remove deletes key and returns its value.
func (idx *Index[K, V]) Remove(key K) (V, bool) {
	var zero V
	if idx.root == noSlot {
		return zero, false
	}
	return idx.remove(idx.root, key)
}

func (idx *Index[K, V]) remove(id SlotID, key K) (V, bool) {
	var zero V
	slot := idx.arena.node(id)
	found, pos := slot.locate(key)

	if !slot.leaf {
		child := slot.children[pos+b2i(found)]
		if child == noSlot {
			return zero, false
		}
		return idx.remove(child, key)
	}

	if !found {
		return zero, false
	}

	removed := slot.vals[pos]
	copy(slot.keys[pos:], slot.keys[pos+1:slot.keyCount])
	copy(slot.vals[pos:], slot.vals[pos+1:slot.keyCount])
	slot.keyCount--
	// release the vacated tail position
	clear(slot.keys[slot.keyCount : slot.keyCount+1])
	clear(slot.vals[slot.keyCount : slot.keyCount+1])
	idx.count--
	return removed, true
}

// Clear deallocates every record reachable from the root, children
// before parents, then returns the arena to its all-free state.
func (idx *Index[K, V]) Clear() {
	if idx.root == noSlot {
		return
	}
	idx.clear(idx.root)
	idx.root = noSlot
	idx.count = 0
	idx.arena.reset()
}

func (idx *Index[K, V]) clear(id SlotID) {
	slot := idx.arena.node(id)
	if !slot.leaf {
		for i := 0; i <= slot.keyCount; i++ {
			if child := slot.children[i]; child != noSlot {
				idx.clear(child)
			}
		}
	}
	idx.arena.deallocate(id)
}
