// Package softheap implements a soft heap -- an approximate priority queue
// that trades a small, bounded amount of key corruption for asymptotically
// cheap operations -- built on pairing heaps with chunked multi-pass
// consolidation, together with a linear-time survivor driver that uses the
// soft heap to recover the exact contents a precise priority queue would
// hold after a sequence of Insert/DeleteMin operations.
//
// Decrease-key, arbitrary-element deletion, and persistence beyond ordinary
// value ownership are out of scope. The heap is a single-threaded value
// type; SoftHeap methods consume the receiver and return a new value.
package softheap
