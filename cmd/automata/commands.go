package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/automata/internal/automaton"
	"github.com/san-kum/automata/internal/config"
	"github.com/san-kum/automata/internal/metrics"
	"github.com/san-kum/automata/internal/render"
	"github.com/san-kum/automata/internal/storage"
	"github.com/san-kum/automata/internal/survey"
	"github.com/san-kum/automata/internal/viz"
)

const (
	statsGenerations = 100

	// maxSeriesPrealloc bounds the up-front capacity of the population
	// series; longer runs grow it on demand.
	maxSeriesPrealloc = 1 << 16
)

// resolveConfig layers defaults, preset, config file, positional arguments
// and explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, args []string, opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if opts.preset != "" {
		cfg = config.GetPreset(opts.preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", opts.preset, config.ListPresets())
		}
	}

	if opts.configFile != "" {
		if err := config.LoadInto(opts.configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if len(args) > 0 {
		width, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid WIDTH %q: %w", args[0], automaton.ErrInvalidWidth)
		}
		cfg.Width = width
	}
	if len(args) > 1 {
		rule, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("invalid RULE %q: %w", args[1], automaton.ErrInvalidRule)
		}
		cfg.Rule = rule
	}

	flags := cmd.Flags()
	if flags.Changed("delay") {
		d, err := time.ParseDuration(opts.delay)
		if err != nil {
			return nil, fmt.Errorf("invalid delay: %w", err)
		}
		cfg.Delay = d
	}
	if flags.Changed("generations") {
		cfg.Generations = opts.generations
	}
	if flags.Changed("seed") {
		cfg.SeedPosition = opts.seed
	}
	if flags.Changed("alive") {
		cfg.Glyphs.Alive = opts.alive
	}
	if flags.Changed("dead") {
		cfg.Glyphs.Dead = opts.dead
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runStream(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := resolveConfig(cmd, args, opts)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	grid, err := cfg.NewGrid()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	renderer := render.NewRenderer(render.Glyphs(cfg.Glyphs), render.GetTheme(cfg.Theme))
	w := render.NewWriter(cmd.OutOrStdout(), renderer, cfg.Delay)
	stream := automaton.NewStream(grid)

	slog.Debug("streaming", "rule", cfg.Rule, "width", cfg.Width, "seed", cfg.Seed(), "delay", cfg.Delay, "generations", cfg.Generations)

	var writeErr error
	err = stream.Run(ctx, cfg.Generations, func(r automaton.Row) bool {
		writeErr = w.WriteRow(ctx, r)
		return writeErr == nil
	})
	if writeErr != nil {
		err = writeErr
	}
	if errors.Is(err, context.Canceled) {
		slog.Debug("stream stopped", "generation", grid.Generation())
		return nil
	}
	return err
}

func runLive(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := resolveConfig(cmd, args, opts)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true
	return viz.Run(*cfg)
}

func runStats(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := resolveConfig(cmd, args, opts)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true
	if cfg.Generations == 0 {
		cfg.Generations = statsGenerations
	}

	grid, err := cfg.NewGrid()
	if err != nil {
		return err
	}

	stream := automaton.NewStream(grid)
	recorder := metrics.NewRecorder(metrics.Default()...)
	series := metrics.NewSeries(seriesCapacity(cfg.Generations))
	stream.AddObserver(recorder)
	stream.AddObserver(series)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	if err := stream.Run(ctx, cfg.Generations, func(automaton.Row) bool { return true }); err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Debug("stats interrupted", "generation", grid.Generation())
			return nil
		}
		return err
	}
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s, width %d, %d generations in %v\n\n", grid.Rule(), cfg.Width, cfg.Generations, elapsed)

	values := recorder.Values()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(out, "metrics:")
	for _, name := range names {
		fmt.Fprintf(out, "  %s: %.6f\n", name, values[name])
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, plotSeries(series, "population vs generation"))

	if !opts.save {
		return nil
	}

	st := storage.New(opts.dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Rule:        cfg.Rule,
		Width:       cfg.Width,
		Seed:        cfg.Seed(),
		Generations: cfg.Generations,
		Metrics:     values,
	}, series)
	if err != nil {
		return err
	}
	slog.Info("run saved", "id", runID, "dir", opts.dataDir)
	fmt.Fprintf(out, "\nrun id: %s\n", runID)
	return nil
}

// seriesCapacity is the row count of a run limited to generations, seed
// included, clamped to maxSeriesPrealloc.
func seriesCapacity(generations uint64) int {
	if generations >= maxSeriesPrealloc {
		return maxSeriesPrealloc
	}
	return int(generations) + 1
}

func plotSeries(series *metrics.Series, caption string) string {
	if series.Len() == 0 {
		return "no data"
	}
	return asciigraph.Plot(series.Populations,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

func runSurvey(cmd *cobra.Command, args []string, opts *options) error {
	width, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid WIDTH %q: %w", args[0], automaton.ErrInvalidWidth)
	}
	rules := opts.rules
	if len(rules) == 0 {
		rules = survey.AllRules()
	}
	generations := opts.generations
	if generations == 0 {
		generations = statsGenerations
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	results, err := survey.Run(ctx, rules, survey.Config{
		Width:       width,
		Generations: generations,
		Workers:     opts.workers,
	})
	if errors.Is(err, context.Canceled) {
		slog.Debug("survey interrupted", "rules", len(rules))
		return nil
	}
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true
	slog.Debug("survey finished", "rules", len(rules), "elapsed", time.Since(start))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RULE\tPOPULATION\tPEAK\tDENSITY\tACTIVITY")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%.0f\t%.0f\t%.4f\t%.4f\n",
			r.Rule,
			r.Metrics["population"],
			r.Metrics["peak_population"],
			r.Metrics["density"],
			r.Metrics["activity"],
		)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, opts *options) error {
	st := storage.New(opts.dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRULE\tWIDTH\tGENERATIONS\tTIME\tPEAK")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%.0f\n",
			run.ID,
			run.Rule,
			run.Width,
			run.Generations,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Metrics["peak_population"],
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, runID string, opts *options) error {
	st := storage.New(opts.dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if series.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "rule: %d, width: %d\n", meta.Rule, meta.Width)
	fmt.Fprintf(out, "samples: %d\n\n", series.Len())
	fmt.Fprintln(out, plotSeries(series, fmt.Sprintf("rule %d population", meta.Rule)))
	return nil
}

func printRule(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid RULE %q: %w", args[0], automaton.ErrInvalidRule)
	}
	table, err := automaton.NewRuleTable(n)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\n", table)
	fmt.Fprintln(w, "PATTERN\tNEXT")
	for p := automaton.Patterns - 1; p >= 0; p-- {
		next, err := table.NextState(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%03b\t%d\n", p, next)
	}
	return w.Flush()
}
