package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"go.lepak.sg/bst/tree/binary"
)

var cmdRandom = &cli.Command{
	Name:  "random",
	Usage: "build a tree from keys [0, n) inserted in a random order",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "num",
			Aliases: []string{"n"},
			Usage:   "number of nodes in the tree",
			Value:   10,
		},
		&cli.Int64Flag{
			Name:    "seed",
			Aliases: []string{"s"},
			Usage:   "seed (default current unix time in ns)",
		},
	},
	Action: runRandom,
}

func runRandom(cctx *cli.Context) error {
	num := cctx.Int("num")
	if num < 0 {
		return fmt.Errorf("invalid number of nodes: %d", num)
	}

	seed := cctx.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	tr := binary.BuildRandom(num, seed)

	fmt.Println("seed:", seed)
	printTree(tr)
	return nil
}

func printTree[T any](tr *binary.Tree[T]) {
	preorder := make([]T, 0, tr.Size())
	tr.PreOrder(func(e T) bool {
		preorder = append(preorder, e)
		return true
	})

	fmt.Println("preorder:", preorder)
	fmt.Println("inorder:", tr.String())

	fmt.Println("tree:")
	fmt.Print(tr.Diagram())

	fmt.Println("size:", tr.Size(), "height:", tr.Height())
}
