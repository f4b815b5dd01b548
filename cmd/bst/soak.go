package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.lepak.sg/bst/soak"
)

var cmdSoak = &cli.Command{
	Name:  "soak",
	Usage: "run random inserts and removes on many trees, checking invariants after every step",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "rounds",
			Usage: "number of independent trees",
			Value: soak.DefaultRounds,
		},
		&cli.IntFlag{
			Name:  "ops",
			Usage: "operations per tree",
			Value: soak.DefaultOps,
		},
		&cli.IntFlag{
			Name:  "keys",
			Usage: "size of the key space",
			Value: soak.DefaultKeys,
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "trees checked at once (default GOMAXPROCS)",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "seed (default current unix time in ns)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable debug logging",
		},
	},
	Action: runSoak,
}

func runSoak(cctx *cli.Context) error {
	level := slog.LevelInfo
	if cctx.Bool("verbose") {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := soak.Config{
		Rounds:  cctx.Int("rounds"),
		Ops:     cctx.Int("ops"),
		Keys:    cctx.Int("keys"),
		Workers: cctx.Int("workers"),
		Seed:    cctx.Int64("seed"),
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	log.Debug("starting soak", "rounds", cfg.Rounds, "ops", cfg.Ops, "keys", cfg.Keys, "workers", cfg.Workers, "seed", cfg.Seed)
	start := time.Now()

	rep, err := soak.Run(cctx.Context, cfg)
	if err != nil {
		var v *soak.Violation
		if errors.As(err, &v) {
			log.Error("invariant violated", "round", v.Round, "seed", v.Seed, "op", v.Op, "desc", v.Desc)
		}
		return err
	}

	log.Info("soak passed",
		"rounds", rep.Rounds,
		"inserts", rep.Inserts,
		"duplicates", rep.Duplicate,
		"removes", rep.Removes,
		"misses", rep.Misses,
		"max_height", rep.MaxHeight,
		"seed", cfg.Seed,
		"took", time.Since(start),
	)
	return nil
}
