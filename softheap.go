package softheap

import "golang.org/x/exp/constraints"

// MinChunkSize is the smallest accepted value of a SoftHeap's chunk
// parameter K. Values 3, 6, and 8 are the ones studied by the source
// material; 8 is recommended for use with LinearLoop (it yields an epsilon
// of at most 1/6).
const MinChunkSize = 2

// SoftHeap is an approximate priority queue backed by a pairing heap with
// chunked multi-pass consolidation. It is a value type: every method
// consumes the receiver and returns a new SoftHeap rather than mutating in
// place.
type SoftHeap[T any] struct {
	k         int
	less      func(a, b T) bool
	root      *Node[T]
	size      int
	corrupted int
}

// New creates an empty SoftHeap with chunk parameter k, using the natural
// order of T.
func New[T constraints.Ordered](k int) SoftHeap[T] {
	return NewFunc[T](k, naturalLess[T])
}

// NewFunc creates an empty SoftHeap with chunk parameter k, ordered by the
// given less function rather than relying on a native order for T. This is
// what ApproximateHeap and the survivor driver use internally to run a soft
// heap over index handles, and over the dual (reversed-order) universe,
// without needing a distinct wrapper type.
func NewFunc[T any](k int, less func(a, b T) bool) SoftHeap[T] {
	if k < MinChunkSize {
		panic("softheap: new: k must be >= 2")
	}
	if less == nil {
		panic("softheap: new: less must not be nil")
	}
	return SoftHeap[T]{k: k, less: less}
}

// Singleton creates a SoftHeap containing exactly one element.
func Singleton[T constraints.Ordered](k int, item T) SoftHeap[T] {
	return New[T](k).Insert(item)
}

// IsEmpty reports whether the heap holds no elements at all (named or
// corrupted).
func (h SoftHeap[T]) IsEmpty() bool {
	return h.root == nil
}

// Size returns the total number of elements represented by the heap,
// corrupted or not.
func (h SoftHeap[T]) Size() int {
	return h.size
}

// Corrupted returns the cached count of corrupted (anonymous, absorbed)
// elements currently in the heap.
func (h SoftHeap[T]) Corrupted() int {
	return h.corrupted
}

// CountCorrupted recomputes the corruption count structurally, by walking
// the tree, rather than returning the cached counter. Debug/test use only
// -- it exists to cross-check SoftHeap's bookkeeping against the tree it
// actually holds.
func (h SoftHeap[T]) CountCorrupted() int {
	if h.root == nil {
		return 0
	}
	return h.root.countCorrupted()
}

// CountUncorrupted recomputes the count of uncorrupted (named) elements
// structurally. Debug/test use only.
func (h SoftHeap[T]) CountUncorrupted() int {
	if h.root == nil {
		return 0
	}
	return h.root.countUncorrupted()
}

// Insert adds item to the heap. Amortized O(1) comparisons.
func (h SoftHeap[T]) Insert(item T) SoftHeap[T] {
	if h.less == nil {
		panic("softheap: insert: heap was not constructed via New/NewFunc/Singleton")
	}
	if h.root == nil {
		n := newNode[T](item)
		return SoftHeap[T]{k: h.k, less: h.less, root: &n, size: 1, corrupted: h.corrupted}
	}
	newRoot := h.root.insert(h.less, item)
	return SoftHeap[T]{k: h.k, less: h.less, root: &newRoot, size: h.size + 1, corrupted: h.corrupted}
}

// Meld joins h with other into a single heap, in one comparison (or zero,
// if either side is empty). Both receivers are consumed.
func (h SoftHeap[T]) Meld(other SoftHeap[T]) SoftHeap[T] {
	k := h.k
	less := h.less
	if less == nil {
		k, less = other.k, other.less
	}

	switch {
	case h.root == nil && other.root == nil:
		return SoftHeap[T]{k: k, less: less}
	case h.root == nil:
		return SoftHeap[T]{k: k, less: less, root: other.root, size: other.size, corrupted: other.corrupted}
	case other.root == nil:
		return SoftHeap[T]{k: k, less: less, root: h.root, size: h.size, corrupted: h.corrupted}
	default:
		newRoot := meld(less, *h.root, *other.root)
		return SoftHeap[T]{k: k, less: less, root: &newRoot, size: h.size + other.size, corrupted: h.corrupted + other.corrupted}
	}
}

// DeleteMin removes one element from the heap. If the minimum pool still
// holds anonymous absorbed elements, one of those leaves and the returned
// key is nil -- the named minimum is untouched and nothing new is released
// as corrupted. Otherwise the named minimum itself is extracted (returned),
// and the children are reconsolidated via the chunked merge strategy; every
// key newly absorbed into a pool during that reconsolidation is returned in
// released, each appearing exactly once.
//
// DeleteMin on an empty heap is a no-op: it returns h unchanged, a nil key,
// and no released keys.
func (h SoftHeap[T]) DeleteMin() (result SoftHeap[T], key *T, released []T) {
	if h.root == nil {
		return h, nil, nil
	}

	root := *h.root
	remainder, popped, ok := root.key.deleteOne()
	if !ok {
		newRoot := Node[T]{key: remainder, children: root.children}
		return SoftHeap[T]{k: h.k, less: h.less, root: &newRoot, size: h.size - 1, corrupted: h.corrupted - 1}, nil, nil
	}

	if len(root.children) == 0 {
		return SoftHeap[T]{k: h.k, less: h.less, size: h.size - 1, corrupted: h.corrupted}, &popped, nil
	}

	newRootNode, hasRoot, corrupted := mergeChildren(h.less, h.k, root.children)
	var rootPtr *Node[T]
	if hasRoot {
		rootPtr = &newRootNode
	}
	return SoftHeap[T]{
		k:         h.k,
		less:      h.less,
		root:      rootPtr,
		size:      h.size - 1,
		corrupted: h.corrupted + len(corrupted),
	}, &popped, corrupted
}

// HeavyDeleteMin always extracts the full top pool atomically: the named
// minimum plus every anonymous element absorbed into it, as a single batch,
// rather than requiring (pool count)+1 calls to drain it one element at a
// time. The identities of the absorbed elements remain unknown -- only
// their count is ever tracked -- so the batch is represented the same way
// an ordinary DeleteMin's pool-draining calls would be, just collapsed into
// one step. released reports keys newly absorbed while reconsolidating
// children, exactly as in DeleteMin.
func (h SoftHeap[T]) HeavyDeleteMin() (result SoftHeap[T], key *T, released []T) {
	if h.root == nil {
		return h, nil, nil
	}

	root := *h.root
	popped := root.key.key
	batch := root.key.count

	if len(root.children) == 0 {
		return SoftHeap[T]{k: h.k, less: h.less, size: h.size - 1 - batch, corrupted: h.corrupted - batch}, &popped, nil
	}

	newRootNode, hasRoot, corrupted := mergeChildren(h.less, h.k, root.children)
	var rootPtr *Node[T]
	if hasRoot {
		rootPtr = &newRootNode
	}
	return SoftHeap[T]{
		k:         h.k,
		less:      h.less,
		root:      rootPtr,
		size:      h.size - 1 - batch,
		corrupted: h.corrupted - batch + len(corrupted),
	}, &popped, corrupted
}

// IntoSlice drains the heap's remaining contents, in pre-order. Only
// uncorrupted (named) keys are represented -- it is meant for extraction,
// not for inspecting corruption.
func (h SoftHeap[T]) IntoSlice() []T {
	if h.root == nil {
		return nil
	}
	return h.root.intoSlice()
}

// CheckHeapProperty reports whether the heap property holds throughout the
// tree (on uncorrupted keys). Debug/test use only.
func (h SoftHeap[T]) CheckHeapProperty() bool {
	if h.root == nil {
		return true
	}
	return h.root.checkHeapProperty(h.less)
}
