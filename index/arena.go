package index

import "cmp"

// arena owns every record slot. A slot is either free or holds
// exactly one live record; the parallel free markers track which.
// The cursor remembers where the last allocation ended so the next
// scan starts past it.
type arena[K cmp.Ordered, V any] struct {
	slots    []node[K, V]
	free     []bool
	nextFree int
}

func (a *arena[K, V]) init(capacity int) {
	a.slots = make([]node[K, V], capacity)
	a.free = make([]bool, capacity)
	a.reset()
}

// reset marks every slot free without touching slot contents.
// Callers must have deallocated live records first.
func (a *arena[K, V]) reset() {
	for i := range a.free {
		a.free[i] = true
	}
	a.nextFree = 0
}

// node resolves a slot identifier to its record. All record access
// goes through here so occupancy can be asserted in debug builds.
func (a *arena[K, V]) node(id SlotID) *node[K, V] {
	assertOccupied("node", a.free[id], id)
	return &a.slots[id]
}

// allocate hands out a free slot, initialized to an empty leaf.
// The scan starts at the cursor and probes each configured slot at
// most once; the winning slot is picked by masked selection rather
// than a data-dependent branch, keeping the per-probe cost uniform.
// The probe bound is the configured slot count, so every slot stays
// reachable whatever capacity the index was built with.
func (a *arena[K, V]) allocate() (SlotID, error) {
	count := len(a.free)
	index := a.nextFree
	found := 0
	for i := 0; i < count; i++ {
		current := (a.nextFree + i) % count
		isFree := b2i(a.free[current])
		keep := isFree - 1 // 0 when free, all ones when occupied
		index = (current &^ keep) | (index & keep)
		found |= isFree
		if found != 0 {
			break
		}
	}
	if found == 0 {
		return noSlot, ErrFull
	}

	a.free[index] = false
	a.nextFree = (index + 1) % count
	slot := &a.slots[index]
	slot.reset()
	return SlotID(index), nil
}

// deallocate releases every live key (and value, for a leaf) held by
// the slot before marking it free, so a dead record never pins caller
// memory. Other slots are not moved or compacted.
func (a *arena[K, V]) deallocate(id SlotID) {
	assertOccupied("deallocate", a.free[id], id)
	slot := &a.slots[id]
	clear(slot.keys[:slot.keyCount])
	if slot.leaf {
		clear(slot.vals[:slot.keyCount])
	}
	a.free[id] = true
}
