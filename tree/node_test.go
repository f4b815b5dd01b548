package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCompleteTree_2Tall() *Node[int] {
	t := &Node[int]{
		Left: &Node[int]{
			Left: &Node[int]{
				Element: 1,
			},
			Element: 2,
			Right: &Node[int]{
				Element: 3,
			},
		},
		Element: 4,
		Right: &Node[int]{
			Left: &Node[int]{
				Element: 5,
			},
			Element: 6,
			Right: &Node[int]{
				Element: 7,
			},
		},
	}

	t.Left.Left.Parent = t.Left
	t.Left.Right.Parent = t.Left
	t.Left.Parent = t

	t.Right.Left.Parent = t.Right
	t.Right.Right.Parent = t.Right
	t.Right.Parent = t

	return t
}

//	  5
//	 /
//	3
//	 \
//	  4
func newDogleg() *Node[int] {
	t := &Node[int]{
		Element: 5,
		Left: &Node[int]{
			Element: 3,
			Right: &Node[int]{
				Element: 4,
			},
		},
	}

	t.Left.Parent = t
	t.Left.Right.Parent = t.Left

	return t
}

func TestNode_Classification(t *testing.T) {
	tests := []struct {
		name      string
		n         *Node[int]
		leaf      bool
		semileaf  bool
		full      bool
		internal  bool
		wantChild func(n *Node[int]) *Node[int]
	}{
		{
			name:      "leaf",
			n:         NodeOf(1),
			leaf:      true,
			wantChild: func(*Node[int]) *Node[int] { return nil },
		},
		{
			name:      "semileaf left",
			n:         newDogleg(),
			semileaf:  true,
			internal:  true,
			wantChild: func(n *Node[int]) *Node[int] { return n.Left },
		},
		{
			name:      "semileaf right",
			n:         newDogleg().Left,
			semileaf:  true,
			internal:  true,
			wantChild: func(n *Node[int]) *Node[int] { return n.Right },
		},
		{
			name:      "full",
			n:         newCompleteTree_2Tall(),
			full:      true,
			internal:  true,
			wantChild: func(*Node[int]) *Node[int] { return nil },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.leaf, tt.n.IsLeaf(), "IsLeaf")
			assert.Equal(t, tt.semileaf, tt.n.IsSemileaf(), "IsSemileaf")
			assert.Equal(t, tt.full, tt.n.IsFull(), "IsFull")
			assert.Equal(t, tt.internal, tt.n.IsInternal(), "IsInternal")
			assert.Same(t, tt.wantChild(tt.n), tt.n.Child())
		})
	}
}

func TestNode_HeightSize(t *testing.T) {
	var nilNode *Node[int]
	assert.Equal(t, -1, nilNode.Height())
	assert.Equal(t, 0, nilNode.Size())

	assert.Equal(t, 0, NodeOf(1).Height())
	assert.Equal(t, 1, NodeOf(1).Size())

	assert.Equal(t, 2, newCompleteTree_2Tall().Height())
	assert.Equal(t, 7, newCompleteTree_2Tall().Size())

	assert.Equal(t, 2, newDogleg().Height())
	assert.Equal(t, 3, newDogleg().Size())
}

func TestNode_MaxMin(t *testing.T) {
	tr := newCompleteTree_2Tall()
	assert.Equal(t, 7, tr.Max().Element)
	assert.Equal(t, 1, tr.Min().Element)
	assert.Equal(t, 3, tr.Left.Max().Element)
	assert.Equal(t, 5, tr.Right.Min().Element)

	d := newDogleg()
	assert.Same(t, d, d.Max())
	assert.Equal(t, 4, d.Left.Max().Element)
	assert.Equal(t, 3, d.Min().Element)

	var nilNode *Node[int]
	assert.Nil(t, nilNode.Max())
	assert.Nil(t, nilNode.Min())
}

func TestNode_WellFormed(t *testing.T) {
	tests := []struct {
		name   string
		create func() *Node[int]
		want   bool
	}{
		{
			name:   "nil",
			create: func() *Node[int] { return nil },
			want:   true,
		},
		{
			name:   "complete",
			create: newCompleteTree_2Tall,
			want:   true,
		},
		{
			name:   "dogleg",
			create: newDogleg,
			want:   true,
		},
		{
			name: "subtree",
			create: func() *Node[int] {
				return newCompleteTree_2Tall().Right
			},
			want: true,
		},
		{
			name: "child with wrong parent",
			create: func() *Node[int] {
				tr := newCompleteTree_2Tall()
				tr.Right.Left.Parent = tr.Left
				return tr
			},
			want: false,
		},
		{
			name: "child with nil parent",
			create: func() *Node[int] {
				tr := newDogleg()
				tr.Left.Right.Parent = nil
				return tr
			},
			want: false,
		},
		{
			name: "parent does not own node",
			create: func() *Node[int] {
				tr := newCompleteTree_2Tall()
				n := tr.Left
				tr.Left = nil
				return n
			},
			want: false,
		},
		{
			name: "same child twice",
			create: func() *Node[int] {
				tr := newDogleg()
				tr.Right = tr.Left
				return tr
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.create().WellFormed())
		})
	}
}

func TestNode_ReplaceChild(t *testing.T) {
	tr := newCompleteTree_2Tall()
	old := tr.Left
	repl := NodeOf(9)

	tr.ReplaceChild(old, repl)
	assert.Same(t, repl, tr.Left)
	assert.Same(t, tr, repl.Parent)

	tr.ReplaceChild(tr.Right, nil)
	assert.Nil(t, tr.Right)

	assert.Panics(t, func() {
		tr.ReplaceChild(old, nil)
	})
	assert.Panics(t, func() {
		tr.ReplaceChild(nil, repl)
	})
}

func TestNode_Detach(t *testing.T) {
	tr := newCompleteTree_2Tall()
	n := tr.Left

	n.Detach()

	assert.Zero(t, n.Element)
	assert.Nil(t, n.Left)
	assert.Nil(t, n.Right)
	assert.Nil(t, n.Parent)
}
