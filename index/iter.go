package index

import "cmp"

// Iter is a forward iterator over the index. It walks the leaf chain
// starting at the leftmost leaf and yields pairs in strictly
// ascending key order. An Iter is consumed by one traversal and must
// not be used across mutations of the index.
type Iter[K cmp.Ordered, V any] struct {
	idx  *Index[K, V]
	slot SlotID
	pos  int
}

// Iter returns an iterator positioned at the smallest key.
func (idx *Index[K, V]) Iter() *Iter[K, V] {
	return &Iter[K, V]{idx: idx, slot: idx.leftmostLeaf()}
}

// Next yields the next pair. ok is false once the leaf chain is
// exhausted.
func (it *Iter[K, V]) Next() (key K, val V, ok bool) {
	for it.slot != noSlot {
		slot := it.idx.arena.node(it.slot)
		if it.pos < slot.keyCount {
			key, val = slot.keys[it.pos], slot.vals[it.pos]
			it.pos++
			return key, val, true
		}
		it.slot = slot.nextLeaf
		it.pos = 0
	}
	return key, val, false
}

// leftmostLeaf descends through child 0 until it reaches a leaf.
func (idx *Index[K, V]) leftmostLeaf() SlotID {
	id := idx.root
	for id != noSlot {
		slot := idx.arena.node(id)
		if slot.leaf {
			return id
		}
		id = slot.children[0]
	}
	return noSlot
}

// Items implements iter.Seq2[K, V], iterating all pairs in ascending
// key order.
func (idx *Index[K, V]) Items(yield func(key K, val V) bool) {
	it := idx.Iter()
	for key, val, ok := it.Next(); ok; key, val, ok = it.Next() {
		if !yield(key, val) {
			return
		}
	}
}
