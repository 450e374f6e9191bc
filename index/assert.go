//go:build debug

package index

import "fmt"

// assertOccupied panics if the slot is free.
// Only enabled with -tags debug.
func assertOccupied(method string, free bool, id SlotID) {
	if free {
		panic(fmt.Sprintf("%s: slot %d is free", method, id))
	}
}
