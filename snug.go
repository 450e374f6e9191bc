// Package snug defines the shared error values for a family of
// fixed-capacity, allocation-free containers.
//
// Every container in this module allocates its storage exactly once,
// at construction, and never grows it afterwards. Operations have
// bounded worst-case cost and fail with an explicit error value
// instead of reallocating. The containers are intended for
// latency-sensitive and memory-constrained code paths where heap
// growth and unpredictable branching are unacceptable.
//
// The containers:
//
//   - index:   arena-backed ordered index with in-order iteration
//   - stack:   LIFO stack over a single inline slot array
//   - vec:     vector that grows only within its fixed capacity
//   - queue:   single-producer/single-consumer lock-free queue
//   - ring:    lock-free ring buffer
//   - hashmap: open-addressing hash table with linear probing
package snug
