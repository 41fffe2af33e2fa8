package softheap

// Pool is a non-empty multiset summarised by a single named key and a count
// of anonymous absorbed elements, each known to be <= key but no longer
// individually addressable. size = 1 + count.
type Pool[T any] struct {
	key   T
	count int
}

func newPool[T any](key T) Pool[T] {
	return Pool[T]{key: key}
}

// deleteOne removes one element from the pool. If it holds any anonymous
// absorbed elements, one of those leaves (count decrements) and ok is
// false: the named key stays put. Otherwise the named key itself is what
// must be extracted, and ok is true.
func (p Pool[T]) deleteOne() (remainder Pool[T], key T, ok bool) {
	if p.count > 0 {
		return Pool[T]{key: p.key, count: p.count - 1}, p.key, false
	}
	return Pool[T]{}, p.key, true
}

// absorb merges survivor into p during corruption. Precondition: p.key <=
// survivor.key (panics otherwise) -- the surviving named key is always the
// larger of the two, which keeps it a valid upper bound for every element
// now folded into count.
func (p Pool[T]) absorb(less func(a, b T) bool, survivor Pool[T]) Pool[T] {
	if less(survivor.key, p.key) {
		panic("softheap: pool: absorb: survivor key is smaller than the absorbed key")
	}
	return Pool[T]{key: survivor.key, count: p.count + survivor.count + 1}
}
