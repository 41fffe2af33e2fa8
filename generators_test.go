package softheap

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// randomOps produces a random operation sequence of length n over the
// integer range [0, bound), with roughly a 1-in-3 chance of any given step
// being a DeleteMin. Mirrors the proptest generator strategy used to fuzz
// the survivor driver against Precise.
func randomOps(rng *rand.Rand, n, bound int) []Operation[int] {
	ops := make([]Operation[int], n)
	for i := range ops {
		if rng.Intn(3) == 0 {
			ops[i] = NewDeleteMin[int]()
		} else {
			ops[i] = NewInsert(rng.Intn(bound))
		}
	}
	return ops
}

// fullOps produces a sequence with no deletes at all: n distinct inserts in
// random order. Useful as a baseline where the approximate heap's survivor
// count is easy to reason about directly.
func fullOps(rng *rand.Rand, n int) []Operation[int] {
	values := rng.Perm(n)
	ops := make([]Operation[int], n)
	for i, v := range values {
		ops[i] = NewInsert(v)
	}
	return ops
}

// compressOperations drops every DeleteMin that would run against an empty
// queue, wherever it occurs, and otherwise leaves ops untouched; it is a
// cheap approximation of
// the shrinking proptest applies to a failing case, used here just to
// produce a second, smaller variant of a given sequence for property tests
// that want both forms.
func compressOperations[T constraints.Ordered](ops []Operation[T]) []Operation[T] {
	pending := 0
	compressed := make([]Operation[T], 0, len(ops))
	for _, op := range ops {
		if op.Delete {
			if pending <= 0 {
				continue
			}
			pending--
		} else {
			pending++
		}
		compressed = append(compressed, op)
	}
	return compressed
}
