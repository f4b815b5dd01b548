// Package tree holds the node type shared by the binary tree
// implementations, along with the structural queries that do not
// depend on element ordering.
package tree

// Node is a single vertex of a binary tree.
// Left and Right are the only references that keep a child reachable.
// Parent is a back-reference for upward navigation, and is nil at the root.
//
// Invariants, for any node n:
//   - if n.Left (or n.Right) is not nil, its Parent is n
//   - if n.Parent is not nil, n is exactly one of n.Parent.Left, n.Parent.Right
type Node[T any] struct {
	Element             T
	Left, Right, Parent *Node[T]
}

func NodeOf[T any](e T) *Node[T] {
	return &Node[T]{
		Element: e,
	}
}

// IsLeaf returns true if n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// IsSemileaf returns true if n has exactly one child.
func (n *Node[T]) IsSemileaf() bool {
	return (n.Left == nil) != (n.Right == nil)
}

// IsFull returns true if n has two children.
func (n *Node[T]) IsFull() bool {
	return n.Left != nil && n.Right != nil
}

// IsInternal returns true if n has at least one child.
func (n *Node[T]) IsInternal() bool {
	return !n.IsLeaf()
}

// Child returns the only child of a semileaf.
// For leaves and full nodes it returns nil.
func (n *Node[T]) Child() *Node[T] {
	if !n.IsSemileaf() {
		return nil
	}
	if n.Left != nil {
		return n.Left
	}
	return n.Right
}

// Max returns the rightmost node of the subtree rooted at n.
func (n *Node[T]) Max() *Node[T] {
	if n == nil {
		return nil
	}
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// Min returns the leftmost node of the subtree rooted at n.
func (n *Node[T]) Min() *Node[T] {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Height returns the height of the subtree rooted at n.
// A single node has height 0 and a nil subtree has height -1.
func (n *Node[T]) Height() int {
	if n == nil {
		return -1
	}

	l, r := n.Left.Height(), n.Right.Height()
	if l > r {
		return l + 1
	}
	return r + 1
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node[T]) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Size() + n.Right.Size()
}

// WellFormed returns true if every parent and child reference in the
// subtree rooted at n agrees with its counterpart.
// If n has a Parent, n must also be one of its children.
// Element ordering is not checked.
func (n *Node[T]) WellFormed() bool {
	if n == nil {
		return true
	}

	if n.Parent != nil && n.Parent.Left != n && n.Parent.Right != n {
		return false
	}

	return n.wellFormedBelow()
}

func (n *Node[T]) wellFormedBelow() bool {
	if n.Left != nil {
		if n.Left.Parent != n || n.Left == n.Right {
			return false
		}
		if !n.Left.wellFormedBelow() {
			return false
		}
	}

	if n.Right != nil {
		if n.Right.Parent != n {
			return false
		}
		if !n.Right.wellFormedBelow() {
			return false
		}
	}

	return true
}

// ReplaceChild puts repl into the slot of n that currently holds old.
// The slot is found by identity, never by comparing elements.
// If repl is not nil, its Parent is set to n.
// ReplaceChild panics if old is not a child of n.
func (n *Node[T]) ReplaceChild(old, repl *Node[T]) {
	switch {
	case old == nil:
		panic("cannot ReplaceChild of nil")
	case n.Left == old:
		n.Left = repl
	case n.Right == old:
		n.Right = repl
	default:
		panic("ReplaceChild: old is not a child of n")
	}

	if repl != nil {
		repl.Parent = n
	}
}

// Detach clears every link and the element of n, so that a removed node
// keeps nothing else in the tree reachable.
func (n *Node[T]) Detach() {
	var zero T
	n.Element = zero
	n.Left, n.Right, n.Parent = nil, nil, nil
}
