// Package soak exercises many independent binary trees with random
// inserts and removes, checking every invariant after every operation.
//
// Each tree is only ever touched by one goroutine. Parallelism comes
// from running several trees at once, bounded by Config.Workers.
package soak

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"

	"go.lepak.sg/bst/tree/binary"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultRounds = 100
	DefaultOps    = 1000
	DefaultKeys   = 64
)

// Config controls a soak run. Zero fields take their defaults.
type Config struct {
	// Rounds is the number of independent trees.
	Rounds int
	// Ops is the number of operations applied to each tree.
	Ops int
	// Keys bounds the key space to [0, Keys). A small key space
	// makes duplicate inserts and hits on remove more likely.
	Keys int
	// Workers is the number of rounds run at once.
	// The default is runtime.GOMAXPROCS(0).
	Workers int
	// Seed seeds the per-round seeds, so a run is repeatable.
	Seed int64
}

func (c Config) withDefaults() Config {
	if c.Rounds <= 0 {
		c.Rounds = DefaultRounds
	}
	if c.Ops <= 0 {
		c.Ops = DefaultOps
	}
	if c.Keys <= 0 {
		c.Keys = DefaultKeys
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c
}

// Report summarizes a soak run that found no violation.
type Report struct {
	Rounds    int
	Inserts   int64
	Duplicate int64
	Removes   int64
	Misses    int64
	// MaxHeight is the tallest tree seen at the end of any round.
	MaxHeight int
}

// Violation describes the first broken invariant found in a round.
type Violation struct {
	Round int
	Seed  int64
	Op    int
	Desc  string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("round %d (seed %d) op %d: %s", v.Round, v.Seed, v.Op, v.Desc)
}

// Run runs the soak test described by cfg.
// It returns a *Violation for the first broken invariant, or ctx.Err()
// if ctx was canceled first.
func Run(ctx context.Context, cfg Config) (Report, error) {
	cfg = cfg.withDefaults()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)

	var inserts, duplicate, removes, misses atomic.Int64
	heights := make([]int, cfg.Rounds)

	seedrd := rand.New(rand.NewSource(cfg.Seed))

	for i := 0; i < cfg.Rounds; i++ {
		r := round{
			n:    i,
			seed: seedrd.Int63(),
			cfg:  cfg,
		}

		eg.Go(func() error {
			if err := r.run(ctx); err != nil {
				return err
			}

			inserts.Add(r.inserts)
			duplicate.Add(r.duplicate)
			removes.Add(r.removes)
			misses.Add(r.misses)
			heights[r.n] = r.height
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Report{}, err
	}

	maxHeight := -1
	for _, h := range heights {
		if h > maxHeight {
			maxHeight = h
		}
	}

	return Report{
		Rounds:    cfg.Rounds,
		Inserts:   inserts.Load(),
		Duplicate: duplicate.Load(),
		Removes:   removes.Load(),
		Misses:    misses.Load(),
		MaxHeight: maxHeight,
	}, nil
}

type round struct {
	n    int
	seed int64
	cfg  Config

	inserts, duplicate, removes, misses int64
	height                              int
}

func (r *round) fail(op int, format string, args ...any) error {
	return &Violation{
		Round: r.n,
		Seed:  r.seed,
		Op:    op,
		Desc:  fmt.Sprintf(format, args...),
	}
}

func (r *round) run(ctx context.Context) error {
	rd := rand.New(rand.NewSource(r.seed))
	tr := binary.NewOrdered[int]()
	oracle := make(map[int]struct{})

	for op := 0; op < r.cfg.Ops; op++ {
		if op%64 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		k := rd.Intn(r.cfg.Keys)
		_, had := oracle[k]

		if rd.Intn(2) == 0 {
			ok := tr.Insert(k)
			if ok == had {
				return r.fail(op, "Insert(%d) = %v, key present = %v", k, ok, had)
			}
			if ok {
				r.inserts++
				oracle[k] = struct{}{}
			} else {
				r.duplicate++
			}
		} else {
			e, ok := tr.Remove(k)
			if ok != had || (ok && e != k) {
				return r.fail(op, "Remove(%d) = (%d, %v), key present = %v", k, e, ok, had)
			}
			if ok {
				r.removes++
				delete(oracle, k)
			} else {
				r.misses++
			}
		}

		if err := r.check(op, tr, len(oracle)); err != nil {
			return err
		}
	}

	r.height = tr.Height()
	return nil
}

func (r *round) check(op int, tr *binary.Tree[int], want int) error {
	if !tr.WellFormed() {
		return r.fail(op, "tree is not well formed:\n%s", tr.Diagram())
	}
	if !tr.ValidBST() {
		return r.fail(op, "tree is not a valid BST:\n%s", tr.Diagram())
	}
	if size := tr.Size(); size != want {
		return r.fail(op, "Size() = %d, want %d", size, want)
	}

	ordered := tr.Ordered()
	if len(ordered) != want {
		return r.fail(op, "len(Ordered()) = %d, want %d", len(ordered), want)
	}
	if !slices.IsSortedFunc(ordered, func(a, b int) bool { return a < b }) {
		return r.fail(op, "Ordered() is not sorted: %v", ordered)
	}

	return nil
}
