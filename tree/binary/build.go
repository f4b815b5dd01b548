package binary

import (
	"errors"
	"fmt"
	"math/rand"

	"go.lepak.sg/bst/tree"
)

var (
	ErrEmpty     = errors.New("nothing to build")
	ErrDuplicate = errors.New("duplicated key")
)

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	tr := NewOrdered[int]()

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	for _, n := range nodes {
		tr.Insert(n)
	}

	return tr
}

// BuildFromPreOrder builds a binary tree from its pre-order traversal.
// Since every node comes before its descendants in pre-order,
// inserting the elements one by one recreates the exact shape.
func BuildFromPreOrder[S ~[]T, T any](cmp tree.Comparator[T], pre S) (*Tree[T], error) {
	if len(pre) == 0 {
		return nil, ErrEmpty
	}

	tr := New(cmp)
	for i, e := range pre {
		if !tr.Insert(e) {
			return nil, fmt.Errorf("pre-order index %d (%v): %w", i, e, ErrDuplicate)
		}
	}

	return tr, nil
}

// Clone returns a copy of the tree with the same shape.
// Elements are copied by assignment.
func (t *Tree[T]) Clone() *Tree[T] {
	c := New(t.cmp)
	t.PreOrder(func(e T) bool {
		c.Insert(e)
		return true
	})

	return c
}
