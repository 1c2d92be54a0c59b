// Package survey runs many independent automata concurrently and collects
// their metrics. Each rule gets its own Grid; nothing is shared between
// workers.
package survey

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/automata/internal/automaton"
	"github.com/san-kum/automata/internal/metrics"
)

type Config struct {
	Width       int
	Generations uint64
	Workers     int
}

type Result struct {
	Rule    int
	Metrics map[string]float64
}

// AllRules returns 0..255.
func AllRules() []int {
	rules := make([]int, 256)
	for i := range rules {
		rules[i] = i
	}
	return rules
}

// Run simulates every rule from a single midpoint seed and returns results
// in the order of rules. The first construction error or ctx cancellation
// aborts the survey.
func Run(ctx context.Context, rules []int, cfg Config) ([]Result, error) {
	table := make([]automaton.RuleTable, len(rules))
	for i, r := range rules {
		t, err := automaton.NewRuleTable(r)
		if err != nil {
			return nil, err
		}
		table[i] = t
	}
	if cfg.Width <= 0 {
		return nil, automaton.ErrInvalidWidth
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(rules))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range rules {
		g.Go(func() error {
			grid, err := automaton.NewGrid(cfg.Width, table[i])
			if err != nil {
				return err
			}
			grid.Seed(cfg.Width / 2)

			stream := automaton.NewStream(grid)
			rec := metrics.NewRecorder(metrics.Default()...)
			stream.AddObserver(rec)

			if err := stream.Run(gCtx, cfg.Generations, func(automaton.Row) bool { return true }); err != nil {
				return err
			}
			results[i] = Result{Rule: rules[i], Metrics: rec.Values()}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
