package binary

import (
	"fmt"
	"strings"

	"go.lepak.sg/bst/tree"
)

// String returns the elements of the tree in ascending order,
// each formatted with fmt.Sprint and separated by a single space.
// An empty tree gives the empty string.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	first := true

	t.InOrder(func(e T) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(fmt.Sprint(e))
		return true
	})

	return sb.String()
}

// Diagram returns a drawing of the tree structure, for debugging.
// A complete binary tree with height 2 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) Diagram() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T any](
	sb *strings.Builder, n *tree.Node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Element))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
