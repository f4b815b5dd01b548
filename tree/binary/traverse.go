package binary

import (
	"go.lepak.sg/bst/tree"
	"go.lepak.sg/bst/tree/iterator"
)

// InOrder applies f to each element in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(e T) bool) {
	visitInOrder(t.root, f)
}

func visitInOrder[T any](n *tree.Node[T], f func(e T) bool) bool {
	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrder which is not recursive
	if n == nil {
		return true
	}

	if !visitInOrder(n.Left, f) {
		return false
	}

	if !f(n.Element) {
		return false
	}

	return visitInOrder(n.Right, f)
}

// PreOrder applies f to each element in the tree pre-order
// (node, then left subtree, then right subtree).
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(e T) bool) {
	visitPreOrder(t.root, f)
}

func visitPreOrder[T any](n *tree.Node[T], f func(e T) bool) bool {
	if n == nil {
		return true
	}

	if !f(n.Element) {
		return false
	}

	if !visitPreOrder(n.Left, f) {
		return false
	}

	return visitPreOrder(n.Right, f)
}

// Ordered returns every element of the tree in ascending order.
// The slice is freshly allocated on each call.
func (t *Tree[T]) Ordered() []T {
	out := make([]T, 0, t.Size())

	// The stack iterator doesn't trust Parent, so this still
	// works while the backlinks themselves are under suspicion.
	i := iterator.NewInOrderStack(t.root, t.Height())
	for i.Next() {
		out = append(out, i.Item())
	}

	return out
}

// Iterator returns an iterator object that yields
// elements from the tree in ascending order.
func (t *Tree[T]) Iterator() *iterator.InOrder[T] {
	return iterator.NewInOrder(t.root)
}

// ReverseIterator returns an iterator object that yields
// elements from the tree in descending order.
func (t *Tree[T]) ReverseIterator() *iterator.InOrderReverse[T] {
	return iterator.NewInOrderReverse(t.root)
}

// Coroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.Coroutine()
//	for e := range co.Items() {
//		... do stuff with e ...
//		if e meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// Note: Coroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
func (t *Tree[T]) Coroutine() iterator.CoIterator[T] {
	return iterator.CoIterate[T](t.Iterator())
}
