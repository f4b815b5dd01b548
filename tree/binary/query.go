package binary

import (
	"go.lepak.sg/bst/tree"
)

// Min returns the smallest element in the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Min() (e T, ok bool) {
	if t.root == nil {
		return
	}
	return t.root.Min().Element, true
}

// Max returns the largest element in the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Max() (e T, ok bool) {
	if t.root == nil {
		return
	}
	return t.root.Max().Element, true
}

// descend finds the node whose element equals key,
// or the node under which key would be inserted.
// c is the result of comparing key against that node.
func (t *Tree[T]) descend(key T) (at *tree.Node[T], c tree.Order) {
	n := t.root
	for n != nil {
		c = tree.Compare(t.cmp, key, n.Element)
		switch c {
		case tree.Less:
			n, at = n.Left, n
		case tree.Greater:
			n, at = n.Right, n
		case tree.Equal:
			n, at = nil, n
			// setting n to nil breaks the for loop
		default:
			panic("unreachable")
		}
	}

	return
}

// Predecessor returns the largest element in the tree
// that is less than key. key does not have to be in the tree.
// If there is no element in the tree less than key,
// p is the zero T and ok is false.
func (t *Tree[T]) Predecessor(key T) (p T, ok bool) {
	// Find the node where key would be inserted to,
	// or the node whose element = key,
	// then find the previous node.

	// https://courses.csail.mit.edu/6.006/fall11/rec/rec05.pdf
	at, c := t.descend(key)
	if at == nil {
		return
	}

	if c == tree.Greater {
		// key would be the right child of at
		return at.Element, true
	}

	if at.Left != nil {
		return at.Left.Max().Element, true
	}

	// this may fail
	var child *tree.Node[T]
	for at != nil {
		at, child = at.Parent, at
		if at != nil && at.Right == child {
			return at.Element, true
		}
	}

	return
}

// Successor returns the smallest element in the tree
// that is greater than key. key does not have to be in the tree.
// If there is no element in the tree greater than key,
// s is the zero T and ok is false.
func (t *Tree[T]) Successor(key T) (s T, ok bool) {
	// Predecessor with left and right flipped.
	at, c := t.descend(key)
	if at == nil {
		return
	}

	if c == tree.Less {
		return at.Element, true
	}

	if at.Right != nil {
		return at.Right.Min().Element, true
	}

	var child *tree.Node[T]
	for at != nil {
		at, child = at.Parent, at
		if at != nil && at.Left == child {
			return at.Element, true
		}
	}

	return
}
