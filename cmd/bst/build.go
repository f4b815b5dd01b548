package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"go.lepak.sg/bst/tree/binary"
)

var cmdBuild = &cli.Command{
	Name:      "build",
	Usage:     "insert whitespace separated integers read from stdin, in order",
	ArgsUsage: "< keys",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "remove",
			Usage: "keys to remove after building",
		},
	},
	Action: runBuild,
}

func runBuild(cctx *cli.Context) error {
	keys, err := readInts(cctx.App.Reader)
	if err != nil {
		return err
	}

	tr := binary.NewOrdered[int]()
	for _, k := range keys {
		if !tr.Insert(k) {
			fmt.Println("duplicate:", k)
		}
	}

	for _, raw := range cctx.StringSlice("remove") {
		k, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("--remove %q: %w", raw, err)
		}
		if _, ok := tr.Remove(k); !ok {
			fmt.Println("not found:", k)
		}
	}

	printTree(tr)
	return nil
}

func readInts(r io.Reader) ([]int, error) {
	var out []int

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		num, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			return nil, err
		}
		out = append(out, num)
	}

	return out, sc.Err()
}
