package softheap

import "golang.org/x/exp/constraints"

// naturalLess is the default comparison for any constraints.Ordered type.
func naturalLess[T constraints.Ordered](a, b T) bool { return a < b }

// reverseLess flips a comparison function, used to run a soft heap over the
// dual (reversed-order) universe without needing a distinct wrapper type
// for T.
func reverseLess[T constraints.Ordered](less func(a, b T) bool) func(a, b T) bool {
	return func(a, b T) bool { return less(b, a) }
}

// handle identifies one Insert operation by its position in the original
// ops slice, so survivors can be matched back to it without ever comparing
// T values directly through the handle itself -- all comparisons are
// delegated to the value stored at that position.
type handle struct {
	index int
}

// ApproximateHeap feeds ops, in order, into a fresh SoftHeap with chunk
// parameter k and T's natural order. It returns (leftoverOps, survivors)
// such that, for any precise priority-queue semantics:
//
//	precise(leftoverOps) ⊎ survivors == precise(ops)
//
// Each Insert(x) in ops is marked as a survivor and removed from
// leftoverOps if and only if x is still present in the final soft heap
// (uncorrupted or pooled). Every other operation -- DeleteMins, and Inserts
// whose value was popped as a named minimum or released as corrupted --
// stays in leftoverOps, in original order.
func ApproximateHeap[T constraints.Ordered](k int, ops []Operation[T]) ([]Operation[T], []T) {
	return approximateHeapFunc(k, naturalLess[T], ops)
}

func approximateHeapFunc[T constraints.Ordered](k int, less func(a, b T) bool, ops []Operation[T]) ([]Operation[T], []T) {
	values := make([]T, len(ops))
	for i, op := range ops {
		if !op.Delete {
			values[i] = op.Value
		}
	}

	handleLess := func(a, b handle) bool { return less(values[a.index], values[b.index]) }
	h := NewFunc[handle](k, handleLess)
	for i, op := range ops {
		if op.Delete {
			h, _, _ = h.DeleteMin()
		} else {
			h = h.Insert(handle{index: i})
		}
	}

	survived := make([]bool, len(ops))
	for _, hd := range h.IntoSlice() {
		survived[hd.index] = true
	}

	survivors := make([]T, 0, len(ops))
	leftover := make([]Operation[T], 0, len(ops))
	for i, op := range ops {
		switch {
		case op.Delete:
			leftover = append(leftover, op)
		case survived[i]:
			survivors = append(survivors, values[i])
		default:
			leftover = append(leftover, op)
		}
	}
	return leftover, survivors
}
