package softheap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrecise_basic(t *testing.T) {
	ops := []Operation[int]{
		NewInsert(3), NewInsert(1), NewInsert(2), NewDeleteMin[int](),
	}
	assert.ElementsMatch(t, []int{2, 3}, Precise(ops))
}

func TestPrecise_deleteOnEmptyIsNoop(t *testing.T) {
	ops := []Operation[int]{NewDeleteMin[int](), NewInsert(1), NewDeleteMin[int](), NewDeleteMin[int]()}
	assert.Empty(t, Precise(ops))
}

func TestPrecise_neverExceedsInsertCount(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 30; trial++ {
		n := rng.Intn(100)
		ops := fullOps(rng, n)
		deletes := rng.Intn(n + 1)
		for i := 0; i < deletes; i++ {
			ops = append(ops, NewDeleteMin[int]())
		}
		rng.Shuffle(len(ops), func(i, j int) { ops[i], ops[j] = ops[j], ops[i] })

		got := Precise(ops)
		assert.LessOrEqual(t, len(got), n)
	}
}
