package softheap

import "golang.org/x/exp/constraints"

// linearLoopChunkSize is the chunk parameter LinearLoop uses for its internal
// soft heaps. 8 keeps epsilon <= 1/6, which is what the shrinkage argument
// below depends on.
const linearLoopChunkSize = 8

// LinearLoop computes the exact multiset of elements a precise priority queue
// would hold after executing ops, using a linear number of key comparisons.
//
// It alternates between a primal pass -- running an approximate heap directly
// over ops when deletes are sparse enough (2*D <= I) -- and a dual pass --
// dualising the sequence and running the approximate heap over the reversed-
// order universe when deletes dominate. Each pass peels a constant fraction
// of ops off into either the confirmed result or the reduced leftover
// sequence, so the loop terminates after O(log n) passes and O(n) total
// comparisons.
func LinearLoop[T constraints.Ordered](ops []Operation[T]) []T {
	var result []T
	ops = Normalise(ops)

	for len(ops) > 0 {
		inserts := CountInserts(ops)
		deletes := CountDeletes(ops)

		if 2*deletes <= inserts {
			leftover, survivors := approximateHeapFunc(linearLoopChunkSize, naturalLess[T], ops)
			if CountInserts(leftover) > ceilDiv(2*inserts, 3) {
				panic("softheap: linearloop: primal pass exceeded new-insert bound")
			}
			if CountDeletes(leftover) != deletes {
				panic("softheap: linearloop: primal pass changed delete count")
			}
			result = append(result, survivors...)
			ops = leftover
		} else {
			dualised := Dualise(ops)
			reduced, _ := approximateHeapFunc(linearLoopChunkSize, reverseLess(naturalLess[T]), dualised)
			ops = Undualise(reduced)
		}

		if len(ops) > 0 && len(ops) == inserts+deletes {
			panic("softheap: linearloop: pass made no progress")
		}
	}

	return result
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
