package iterator

import (
	"go.lepak.sg/bst/tree"
)

var _ Iterator[int] = (*InOrder[int])(nil)

// InOrder is an iterator object over a binary tree.
// It follows Parent references, so it needs no extra space
// but relies on the tree being well formed.
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T any] struct {
	root, at *tree.Node[T]
}

// NewInOrder returns a new InOrder iterator over the tree rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[T any](root *tree.Node[T]) *InOrder[T] {
	return &InOrder[T]{
		root: root,
	}
}

// Next returns true if there is a next element to yield with Item.
// Once Next has returned false, calling it again restarts the iteration.
func (i *InOrder[T]) Next() bool {
	// https://www.cs.odu.edu/~zeil/cs361/latest/Public/treetraversal/index.html
	if i.at == nil {
		i.at = i.root.Min()
		return i.at != nil
	}

	if i.at.Right != nil {
		i.at = i.at.Right.Min()
		return true
	}

	var child *tree.Node[T]
	for i.at != nil {
		i.at, child = i.at.Parent, i.at
		// stop climbing at the root we were given, even if it has a parent
		if child == i.root {
			i.at = nil
			return false
		}
		if i.at != nil && i.at.Left == child {
			return true
		}
	}

	return false
}

// Item returns the current element of the iterator.
func (i *InOrder[T]) Item() T {
	return i.at.Element
}
