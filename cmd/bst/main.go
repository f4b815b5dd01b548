package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:  "bst",
		Usage: "build, inspect and soak test unbalanced binary search trees",
	}
	app.Commands = []*cli.Command{
		cmdRandom,
		cmdBuild,
		cmdSoak,
	}
	return app.Run(args)
}
