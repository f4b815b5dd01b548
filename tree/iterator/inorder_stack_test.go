package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/bst/tree"
)

func TestInOrderStack(t *testing.T) {
	tests := []struct {
		name       string
		create     func() *tree.Node[int]
		heightHint int
		want       []int
	}{
		{
			name: "empty",
			create: func() *tree.Node[int] {
				return nil
			},
		},
		{
			name: "one",
			create: func() *tree.Node[int] {
				return &tree.Node[int]{
					Element: 1,
				}
			},
			want: []int{1},
		},
		{
			name:       "height=2",
			create:     newCompleteTree_2Tall,
			heightHint: 2,
			want:       []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name: "dogleg no parent",
			create: func() *tree.Node[int] {
				return &tree.Node[int]{
					Left: &tree.Node[int]{
						Left: &tree.Node[int]{
							Element: 1,
						},
						Element: 5,
						Right: &tree.Node[int]{
							Left: &tree.Node[int]{
								Element: 6,
							},
							Element: 7,
						},
					},
					Element: 8,
					Right: &tree.Node[int]{
						Element: 9,
					},
				}
			},
			heightHint: 3,
			want:       []int{1, 5, 6, 7, 8, 9},
		},
		{
			name: "right spine",
			create: func() *tree.Node[int] {
				return &tree.Node[int]{
					Element: 1,
					Right: &tree.Node[int]{
						Element: 2,
						Right: &tree.Node[int]{
							Element: 3,
						},
					},
				}
			},
			heightHint: -1,
			want:       []int{1, 2, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := NewInOrderStack(tt.create(), tt.heightHint)
			assert.Equal(t, tt.want, collect[int](i))
			// restartable
			assert.Equal(t, tt.want, collect[int](i))
		})
	}
}
