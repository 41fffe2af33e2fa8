package softheap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountInsertsAndDeletes(t *testing.T) {
	ops := []Operation[int]{
		NewInsert(1),
		NewDeleteMin[int](),
		NewInsert(2),
		NewInsert(3),
		NewDeleteMin[int](),
	}
	assert.Equal(t, 3, CountInserts(ops))
	assert.Equal(t, 2, CountDeletes(ops))
}

func TestToWrapped_discardsLeadingUnmatchedDeletes(t *testing.T) {
	ops := []Operation[int]{
		NewDeleteMin[int](),
		NewInsert(5),
		NewDeleteMin[int](),
		NewInsert(4),
	}

	wrapped := ToWrapped(ops)
	assert.Equal(t, []WrappedOp[int]{
		{Item: 5, HasDelete: true},
		{Item: 4, HasDelete: false},
	}, wrapped)
}

func TestFromWrapped_roundTrip(t *testing.T) {
	wrapped := []WrappedOp[int]{
		{Item: 5, HasDelete: true},
		{Item: 4, HasDelete: false},
	}
	ops := FromWrapped(wrapped)
	assert.Equal(t, []Operation[int]{
		NewInsert(5),
		NewDeleteMin[int](),
		NewInsert(4),
	}, ops)
}

func TestNormalise_removesLeadingDeleteOnly(t *testing.T) {
	ops := []Operation[int]{
		NewDeleteMin[int](),
		NewInsert(5),
		NewDeleteMin[int](),
		NewInsert(4),
	}
	got := Normalise(ops)
	want := []Operation[int]{
		NewInsert(5),
		NewDeleteMin[int](),
		NewInsert(4),
	}
	assert.Equal(t, want, got)
	assert.ElementsMatch(t, Precise(want), Precise(ops))
}

func TestDualiseWrapped(t *testing.T) {
	wrapped := []WrappedOp[int]{
		{Item: 1, HasDelete: true},
		{Item: 2, HasDelete: false},
		{Item: 3, HasDelete: true},
	}
	got := DualiseWrapped(wrapped)
	want := []WrappedOp[int]{
		{Item: 3, HasDelete: false},
		{Item: 2, HasDelete: true},
		{Item: 1, HasDelete: false},
	}
	assert.Equal(t, want, got)
}

func TestUndualiseDualise_isNormalise(t *testing.T) {
	ops := []Operation[int]{
		NewInsert(3),
		NewInsert(1),
		NewDeleteMin[int](),
		NewInsert(2),
	}

	got := Undualise(Dualise(ops))
	want := Normalise(ops)

	assert.ElementsMatch(t, Precise(got), Precise(want))
}

func TestExternalInterfaceAliases(t *testing.T) {
	ops := []Operation[int]{NewInsert(1), NewDeleteMin[int]()}
	assert.Equal(t, Normalise(ops), NormaliseOps(ops))
	assert.Equal(t, Dualise(ops), DualiseOps(ops))
	assert.Equal(t, Undualise(ops), UndualiseOps(ops))
}

func TestCompressOperations_dropsOnlyUnmatchedDeletes(t *testing.T) {
	ops := []Operation[int]{
		NewDeleteMin[int](), NewInsert(1), NewDeleteMin[int](), NewDeleteMin[int](), NewInsert(2),
	}
	compressed := compressOperations(ops)

	assert.ElementsMatch(t, Precise(ops), Precise(compressed))
	assert.LessOrEqual(t, len(compressed), len(ops))
}
