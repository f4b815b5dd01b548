package binary

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	tr := NewOrdered[int]()
	_, ok := tr.Min()
	assert.False(t, ok)
	_, ok = tr.Max()
	assert.False(t, ok)

	tr = buildInts(8, 5, 9, 1, 7, 6)
	min, ok := tr.Min()
	assert.True(t, ok)
	assert.Equal(t, 1, min)
	max, ok := tr.Max()
	assert.True(t, ok)
	assert.Equal(t, 9, max)
}

func TestPredecessorSuccessor(t *testing.T) {
	// even keys only, so odd keys are never in the tree
	const n = 50
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i * 2
	}
	rd := rand.New(rand.NewSource(0x5eed))
	rd.Shuffle(n, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	tr := buildInts(keys...)

	for k := -3; k <= 2*n+3; k++ {
		wantPred := k - 1
		if wantPred%2 != 0 {
			wantPred--
		}
		p, ok := tr.Predecessor(k)
		if wantPred < 0 {
			assert.False(t, ok, "Predecessor(%d)", k)
		} else {
			if wantPred > 2*(n-1) {
				wantPred = 2 * (n - 1)
			}
			assert.True(t, ok, "Predecessor(%d)", k)
			assert.Equal(t, wantPred, p, "Predecessor(%d)", k)
		}

		wantSucc := k + 1
		if wantSucc%2 != 0 {
			wantSucc++
		}
		if wantSucc < 0 {
			wantSucc = 0
		}
		s, ok := tr.Successor(k)
		if wantSucc > 2*(n-1) {
			assert.False(t, ok, "Successor(%d)", k)
		} else {
			assert.True(t, ok, "Successor(%d)", k)
			assert.Equal(t, wantSucc, s, "Successor(%d)", k)
		}
	}
}

func TestPredecessorSuccessor_Empty(t *testing.T) {
	tr := NewOrdered[int]()
	_, ok := tr.Predecessor(1)
	assert.False(t, ok)
	_, ok = tr.Successor(1)
	assert.False(t, ok)
}
