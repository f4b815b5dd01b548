package iterator

import (
	"go.lepak.sg/bst/tree"
)

var _ Iterator[int] = (*InOrderReverse[int])(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.ReverseIterator()
//	for i.Next() {
//		e := i.Item()
//		... do stuff with e ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[T any] struct {
	root, at *tree.Node[T]
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[T any](root *tree.Node[T]) *InOrderReverse[T] {
	return &InOrderReverse[T]{
		root: root,
	}
}

// Next returns true if there is a next element to yield with Item.
func (i *InOrderReverse[T]) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	if i == nil {
		return false
	}

	if i.at == nil {
		i.at = i.root.Max()
		return i.at != nil
	}

	if i.at.Left != nil {
		i.at = i.at.Left.Max()
		return true
	}

	var child *tree.Node[T]
	for i.at != nil {
		i.at, child = i.at.Parent, i.at
		if child == i.root {
			i.at = nil
			return false
		}
		if i.at != nil && i.at.Right == child {
			return true
		}
	}

	return false
}

// Item returns the current element of the iterator.
func (i *InOrderReverse[T]) Item() T {
	return i.at.Element
}
