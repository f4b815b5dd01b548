package binary

import (
	"go.lepak.sg/bst/tree"
)

// The checks in this file walk the whole tree and are meant for
// tests and debugging. No mutating operation calls them.

// WellFormed returns true if the root has no parent and every
// parent and child reference in the tree agree.
func (t *Tree[T]) WellFormed() bool {
	if t.root == nil {
		return true
	}

	return t.root.Parent == nil && t.root.WellFormed()
}

// ValidBST returns true if the tree is WellFormed and every node's
// element is strictly greater than everything in its left subtree
// and strictly less than everything in its right subtree.
func (t *Tree[T]) ValidBST() bool {
	if !t.WellFormed() {
		return false
	}

	if t.root == nil {
		return true
	}

	ok, _, _ := t.bounds(t.root)
	return ok
}

// bounds checks the ordering of the subtree rooted at n, which must not
// be nil, and returns its smallest and largest elements.
func (t *Tree[T]) bounds(n *tree.Node[T]) (ok bool, min, max T) {
	min, max = n.Element, n.Element

	if n.Left != nil {
		lok, lmin, lmax := t.bounds(n.Left)
		if !lok || !t.cmp.Less(lmax, n.Element) {
			return
		}
		min = lmin
	}

	if n.Right != nil {
		rok, rmin, rmax := t.bounds(n.Right)
		if !rok || !t.cmp.Less(n.Element, rmin) {
			return
		}
		max = rmax
	}

	ok = true
	return
}
