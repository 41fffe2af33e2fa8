package softheap

import (
	"container/heap"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// precisePQ is a textbook binary heap adapting container/heap to give
// Precise a reference implementation that is obviously correct, if not
// linear-time.
type precisePQ[T constraints.Ordered] []T

func (q precisePQ[T]) Len() int            { return len(q) }
func (q precisePQ[T]) Less(i, j int) bool  { return q[i] < q[j] }
func (q precisePQ[T]) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *precisePQ[T]) Push(x interface{}) { *q = append(*q, x.(T)) }
func (q *precisePQ[T]) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Precise executes ops against an exact priority queue and returns the
// multiset of elements remaining at the end, used as the reference oracle
// against which LinearLoop and ApproximateHeap are checked.
func Precise[T constraints.Ordered](ops []Operation[T]) []T {
	q := &precisePQ[T]{}
	heap.Init(q)
	for _, op := range ops {
		if op.Delete {
			if q.Len() > 0 {
				heap.Pop(q)
			}
			continue
		}
		heap.Push(q, op.Value)
	}
	result := []T(*q)
	slices.Sort(result)
	return result
}
