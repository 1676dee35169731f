package game

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/blocky/internal/core"
	"github.com/vovakirdan/blocky/internal/storage"
)

// Headless returns opts with every human seat taken by a random player,
// so the game can be played out without input.
func Headless(opts Options) Options {
	opts.Roster.Random += opts.Roster.Humans
	opts.Roster.Humans = 0
	return opts
}

// Simulate plays one headless game per seed on up to workers goroutines
// and returns the records in seed order. A non-positive workers uses one
// goroutine per CPU.
func Simulate(ctx context.Context, opts Options, seeds []int64, workers int, logger *log.Logger) ([]storage.GameRecord, error) {
	opts = Headless(opts)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	records := make([]storage.GameRecord, len(seeds))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for i, seed := range seeds {
		grp.Go(func() error {
			g, err := New(opts, logger)
			if err != nil {
				return err
			}
			cfg := core.DefaultConfig()
			cfg.Seed = seed
			if err := g.Reset(cfg); err != nil {
				return err
			}
			if err := g.PlayOut(ctx); err != nil {
				return fmt.Errorf("game: seed %d: %w", seed, err)
			}
			records[i] = g.Record()
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
