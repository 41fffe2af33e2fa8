package softheap

import "golang.org/x/exp/constraints"

// Operation is a single step of an operation sequence fed to a priority
// queue: either inserting a value, or deleting the current minimum. The
// zero value is an Insert of T's zero value; use NewDeleteMin to build a
// DeleteMin.
type Operation[T constraints.Ordered] struct {
	Delete bool
	Value  T
}

// NewInsert builds an Insert(value) operation.
func NewInsert[T constraints.Ordered](value T) Operation[T] {
	return Operation[T]{Value: value}
}

// NewDeleteMin builds a DeleteMin operation.
func NewDeleteMin[T constraints.Ordered]() Operation[T] {
	return Operation[T]{Delete: true}
}

// CountInserts counts the Insert operations in ops.
func CountInserts[T constraints.Ordered](ops []Operation[T]) int {
	n := 0
	for _, op := range ops {
		if !op.Delete {
			n++
		}
	}
	return n
}

// CountDeletes counts the DeleteMin operations in ops.
func CountDeletes[T constraints.Ordered](ops []Operation[T]) int {
	n := 0
	for _, op := range ops {
		if op.Delete {
			n++
		}
	}
	return n
}

// WrappedOp represents an operation sequence in normal form: a pair of
// (item, hasDelete), where hasDelete means "a matching DeleteMin follows
// this Insert, before the next Insert it will be paired with". This is the
// free-extension (hasDelete=false) vs co-loop (hasDelete=true) distinction
// of a nested matroid.
type WrappedOp[T constraints.Ordered] struct {
	Item      T
	HasDelete bool
}

// ToWrapped converts ops into normal form by scanning right-to-left and
// tracking a count of pending, not-yet-matched DeleteMins: each Insert
// consumes one pending delete if available. Leading unmatched DeleteMins
// (no-ops against an empty prefix) are discarded.
func ToWrapped[T constraints.Ordered](ops []Operation[T]) []WrappedOp[T] {
	pending := 0
	wrapped := make([]WrappedOp[T], 0, len(ops))
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		if op.Delete {
			pending++
			continue
		}
		wrapped = append(wrapped, WrappedOp[T]{Item: op.Value, HasDelete: pending > 0})
		if pending > 0 {
			pending--
		}
	}
	for i, j := 0, len(wrapped)-1; i < j; i, j = i+1, j-1 {
		wrapped[i], wrapped[j] = wrapped[j], wrapped[i]
	}
	return wrapped
}

// FromWrapped expands a normal-form sequence back into operations: each
// (x, true) becomes [Insert(x), DeleteMin], each (x, false) becomes just
// [Insert(x)].
func FromWrapped[T constraints.Ordered](ops []WrappedOp[T]) []Operation[T] {
	result := make([]Operation[T], 0, len(ops)*2)
	for _, op := range ops {
		result = append(result, NewInsert(op.Item))
		if op.HasDelete {
			result = append(result, NewDeleteMin[T]())
		}
	}
	return result
}

// DualiseWrapped is the nested-matroid dual of a normal-form sequence:
// reverse the list and flip every hasDelete bit. Combined with the order
// reversal applied when the dualised sequence is later fed through a soft
// heap, this makes "insert an element that does not survive" and "delete
// the current minimum" swap roles.
func DualiseWrapped[T constraints.Ordered](ops []WrappedOp[T]) []WrappedOp[T] {
	n := len(ops)
	result := make([]WrappedOp[T], n)
	for i, op := range ops {
		result[n-1-i] = WrappedOp[T]{Item: op.Item, HasDelete: !op.HasDelete}
	}
	return result
}

// Dualise produces the dual of an operation sequence. The dual must be
// interpreted under the reversed order on T -- ApproximateHeap callers that
// process a dualised sequence need to run the soft heap with a reversed
// less function (see driver.go), not T's natural order.
func Dualise[T constraints.Ordered](ops []Operation[T]) []Operation[T] {
	return FromWrapped(DualiseWrapped(ToWrapped(ops)))
}

// Undualise reverses Dualise. Dualising is its own inverse up to
// normalisation: Undualise(Dualise(ops)) is equivalent to Normalise(ops)
// (same precise() result, same survivor multiset), though not necessarily
// byte-identical to ops itself.
func Undualise[T constraints.Ordered](ops []Operation[T]) []Operation[T] {
	return Dualise(ops)
}

// Normalise puts ops into normal form and expands it back out: this
// removes leading unmatched DeleteMins and nothing else observable changes
// about the precise() result.
func Normalise[T constraints.Ordered](ops []Operation[T]) []Operation[T] {
	return FromWrapped(ToWrapped(ops))
}

// NormaliseOps, DualiseOps, and UndualiseOps are the external-interface
// names for Normalise, Dualise, and Undualise (see SPEC_FULL.md §6).
func NormaliseOps[T constraints.Ordered](ops []Operation[T]) []Operation[T] { return Normalise(ops) }
func DualiseOps[T constraints.Ordered](ops []Operation[T]) []Operation[T]  { return Dualise(ops) }
func UndualiseOps[T constraints.Ordered](ops []Operation[T]) []Operation[T] {
	return Undualise(ops)
}
