package softheap

// Node is a pairing-heap node: a Pool plus an ordered list of children. The
// heap property (self.key <= child.key, for every child) holds only on
// uncorrupted keys; it may be violated once the parent pool is corrupted,
// but corrupted elements are always absorbed into the pool, never left as
// children with a smaller true value.
type Node[T any] struct {
	key      Pool[T]
	children []Node[T]
}

func newNode[T any](item T) Node[T] {
	return Node[T]{key: newPool(item)}
}

// meld joins two pairing-heap nodes into one. The operand with the smaller
// key becomes the parent and adopts the other as a new child; ties favour
// the first operand. Exactly one comparison.
func meld[T any](less func(a, b T) bool, a, b Node[T]) Node[T] {
	if less(b.key.key, a.key.key) {
		a, b = b, a
	}
	a.children = append(a.children, b)
	return a
}

func (n Node[T]) insert(less func(a, b T) bool, item T) Node[T] {
	return meld(less, n, newNode[T](item))
}

// corrupt consolidates n's children via the chunked merge strategy (see
// merge.go) and absorbs n's own named key into the result. Preconditions: n
// must have at least one child. Returns the new node plus every key newly
// absorbed into a pool as part of this call (n's own key, plus any absorbed
// recursively while consolidating the children).
func corrupt[T any](less func(a, b T) bool, k int, n Node[T]) (Node[T], []T) {
	if len(n.children) == 0 {
		panic("softheap: node: corrupt: node has no children")
	}
	m, ok, nested := mergeChildren(less, k, n.children)
	if !ok {
		panic("softheap: node: corrupt: consolidation produced no node")
	}
	if less(m.key.key, n.key.key) {
		panic("softheap: node: corrupt: heap property violated")
	}
	absorbed := make([]T, 0, len(nested)+1)
	absorbed = append(absorbed, n.key.key)
	absorbed = append(absorbed, nested...)
	return Node[T]{key: n.key.absorb(less, m.key), children: m.children}, absorbed
}

// countCorrupted is the structural sum of every pool's corruption count in
// the subtree rooted at n. Debug/test use only.
func (n Node[T]) countCorrupted() int {
	total := n.key.count
	for _, c := range n.children {
		total += c.countCorrupted()
	}
	return total
}

// countUncorrupted is the structural count of named (uncorrupted) keys in
// the subtree rooted at n. Debug/test use only.
func (n Node[T]) countUncorrupted() int {
	total := 1
	for _, c := range n.children {
		total += c.countUncorrupted()
	}
	return total
}

// checkHeapProperty reports whether the heap property holds between n and
// every descendant, recursively. Debug/test use only.
func (n Node[T]) checkHeapProperty(less func(a, b T) bool) bool {
	for _, c := range n.children {
		if less(c.key.key, n.key.key) || !c.checkHeapProperty(less) {
			return false
		}
	}
	return true
}

// intoSlice drains the subtree rooted at n into a slice of its named keys,
// in pre-order. Corrupted (anonymous) elements are not represented -- their
// identities are gone.
func (n Node[T]) intoSlice() []T {
	items := make([]T, 0)
	stack := []Node[T]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		items = append(items, cur.key.key)
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
	return items
}
