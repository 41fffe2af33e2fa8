package softheap

import (
	"sync/atomic"

	"golang.org/x/exp/constraints"
)

// Comparisons is an atomic counter shared across a run, used to instrument
// the number of key comparisons a soft heap actually performs -- the
// quantity the linear-comparison-count contract is stated in terms of.
type Comparisons struct {
	n atomic.Int64
}

// Count returns the number of comparisons recorded so far.
func (c *Comparisons) Count() int64 {
	return c.n.Load()
}

// Reset zeroes the counter.
func (c *Comparisons) Reset() {
	c.n.Store(0)
}

// CountingLess wraps T's natural order in a less function that records one
// comparison per call into counter. Intended for tests that verify the
// soft heap's amortised comparison bounds directly, rather than trusting the
// asymptotic argument alone.
func CountingLess[T constraints.Ordered](counter *Comparisons) func(a, b T) bool {
	return func(a, b T) bool {
		counter.n.Add(1)
		return a < b
	}
}
