//go:build !debug

package index

// assertOccupied is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertOccupied(string, bool, SlotID) {}
