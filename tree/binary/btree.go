package binary

import (
	"go.lepak.sg/bst/tree"
	"golang.org/x/exp/constraints"
)

// Tree is an unbalanced binary search tree.
// It is safe for concurrent reads (searching, iterating, etc)
// but not for concurrent reads and writes (inserting, removing).
//
// Tree is a handle on the root node. An empty tree has no root at all,
// so removing the root only ever reassigns the handle.
// Tree should not be passed around as a value (ie. use New).
//
// Invariants:
//   - At any node N in the tree, all elements in the subtree rooted at N.Left
//     are less than N.Element
//   - At any node N in the tree, all elements in the subtree rooted at N.Right
//     are greater than N.Element
//   - For every possible key, there will be at most one node with that key
//     in the tree (No duplicates allowed)
//   - Every child's Parent is the node holding it, and the root has no Parent
type Tree[T any] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate elements or children!
	root *tree.Node[T]
	cmp  tree.Comparator[T]
}

// New returns an empty Tree ordered by cmp.
func New[T any](cmp tree.Comparator[T]) *Tree[T] {
	if cmp == nil {
		panic("nil comparator")
	}

	return &Tree[T]{cmp: cmp}
}

// NewOrdered returns an empty Tree ordered by the built-in < operator.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New(tree.Ordered[T]())
}

// find returns the node holding key, or nil.
func (t *Tree[T]) find(key T) *tree.Node[T] {
	n := t.root

	for n != nil {
		switch tree.Compare(t.cmp, key, n.Element) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return nil
}

// Search returns the element in the tree with the same key as key.
// If there is none, e is the zero T and ok is false.
func (t *Tree[T]) Search(key T) (e T, ok bool) {
	n := t.find(key)
	if n == nil {
		return
	}
	return n.Element, true
}

// Contains searches for key in the tree and returns true if it was found.
func (t *Tree[T]) Contains(key T) bool {
	return t.find(key) != nil
}

// Insert inserts e into the binary tree as a new leaf.
// If an element with the same key is already in the tree, Insert
// returns false and leaves the existing element untouched.
func (t *Tree[T]) Insert(e T) bool {
	if t.root == nil {
		t.root = tree.NodeOf(e)
		return true
	}

	n, p := t.root, (*tree.Node[T])(nil)
	var cmp tree.Order

	for n != nil {
		cmp = tree.Compare(t.cmp, e, n.Element)
		switch cmp {
		case tree.Less:
			n, p = n.Left, n
		case tree.Greater:
			n, p = n.Right, n
		case tree.Equal:
			return false
		default:
			panic("unreachable")
		}
	}

	newnode := tree.NodeOf(e)
	newnode.Parent = p

	switch cmp {
	case tree.Less:
		if p.Left != nil {
			panic("impossible")
		}
		p.Left = newnode
	case tree.Greater:
		if p.Right != nil {
			panic("impossible")
		}
		p.Right = newnode
	default:
		panic("unreachable")
	}

	return true
}

// Remove removes the element with the same key as key from the tree
// and returns it. If there is none, e is the zero T and ok is false,
// and the tree is not modified.
func (t *Tree[T]) Remove(key T) (e T, ok bool) {
	n := t.find(key)
	if n == nil {
		return
	}

	return t.removeNode(n), true
}

// removeNode unlinks n from the tree and returns the element it held.
func (t *Tree[T]) removeNode(n *tree.Node[T]) T {
	removed := n.Element

	switch {
	case n.IsFull():
		// The in-order predecessor is the max of the left subtree.
		// It has no right child, so removing it can't get back here.
		pred := n.Left.Max()
		n.Element = pred.Element
		t.removeNode(pred)
	case n.IsLeaf():
		t.splice(n, nil)
	case n.IsSemileaf():
		t.splice(n, n.Child())
	default:
		panic("unreachable")
	}

	return removed
}

// splice puts child in the place of n, which must have no other child.
// child may be nil.
func (t *Tree[T]) splice(n, child *tree.Node[T]) {
	p := n.Parent

	if p == nil {
		if t.root != n {
			panic("impossible: node without parent is not the root")
		}
		t.root = child
		if child != nil {
			child.Parent = nil
		}
	} else {
		p.ReplaceChild(n, child)
	}

	n.Detach()
}

// Size returns the number of elements in the tree.
func (t *Tree[T]) Size() int {
	return t.root.Size()
}

// Len is the same as Size.
func (t *Tree[T]) Len() int {
	return t.Size()
}

// Empty returns true if the tree has no elements.
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Height returns the height of the tree.
// A tree with only a root has height 0, and an empty tree has height -1.
func (t *Tree[T]) Height() int {
	return t.root.Height()
}
