package index

import (
	"cmp"

	"github.com/snugcap/snug/internal/hint"
)

// SlotID identifies one record slot in the arena. It is a plain index
// into the arena's slot array, never a pointer: records refer to each
// other only through the arena, so a stale identifier can be detected
// instead of dangling.
type SlotID = int32

const noSlot SlotID = -1

// maxRun bounds the key run of a single record. The order passed to
// New may be anything up to this.
const maxRun = 128

// node is one record slot. A leaf holds keys[0:keyCount] paired with
// vals[0:keyCount]; an internal record holds keys[0:keyCount] routing
// into children[0:keyCount+1]. Keys within a record are strictly
// ascending. nextLeaf chains leaves in ascending key order for
// sequential iteration.
type node[K cmp.Ordered, V any] struct {
	keys     [maxRun]K
	vals     [maxRun]V          // leaf records
	children [maxRun + 1]SlotID // internal records
	nextLeaf SlotID             // leaf records
	keyCount int
	leaf     bool
}

func (n *node[K, V]) reset() {
	for i := range n.children {
		n.children[i] = noSlot
	}
	n.nextLeaf = noSlot
	n.keyCount = 0
	n.leaf = true
}

// locate binary-searches the live key run. It returns the exact
// position on a match, otherwise the insertion point: the index of
// the first key greater than key, or keyCount when key is greatest.
//
// The loop narrows its bounds by arithmetic selection instead of
// branching on the comparison, so control flow and timing do not
// depend on the keys being compared. Uniform timing here is part of
// the contract, not an optimization; keep it branchless.
func (n *node[K, V]) locate(key K) (found bool, pos int) {
	left, right := 0, n.keyCount
	for left < right {
		mid := (left + right) >> 1
		c := cmp.Compare(key, n.keys[mid])
		if c == 0 {
			return true, mid
		}

		less := b2i(c < 0)
		greater := b2i(c > 0)
		right = mid*less + right*(1-less)
		left = (mid+1)*greater + left*(1-greater)
	}

	if hint.Unlikely(left < n.keyCount) && key == n.keys[left] {
		return true, left
	}
	return false, left
}

// b2i compiles to a flag-set instruction, not a branch.
func b2i(b bool) int {
	var i int
	if b {
		i = 1
	}
	return i
}
