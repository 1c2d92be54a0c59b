package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/automata/internal/config"
)

// options holds the flags shared by the streaming commands.
type options struct {
	configFile  string
	preset      string
	delay       string
	generations uint64
	seed        int
	alive       string
	dead        string
	theme       string
	verbose     bool
	dataDir     string
	save        bool
	workers     int
	rules       []int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func suggestedRules() string {
	rules := make([]string, len(config.SuggestedRules))
	for i, r := range config.SuggestedRules {
		rules[i] = fmt.Sprint(r)
	}
	return strings.Join(rules, ", ")
}

func usageText() string {
	return fmt.Sprintf(`Stream an elementary cellular automaton, one generation per line.

WIDTH    Width in characters to generate
RULE     Cellular automaton number to generate. Defaults to %d.
         Some interesting rules to try: %s`, config.DefaultRule, suggestedRules())
}

// exampleText is printed with the usage, so a missing or bad WIDTH still
// lists the rules worth trying.
func exampleText() string {
	return fmt.Sprintf(`  automata 80
  automata 80 110 --theme retro

Some interesting rules to try: %s`, suggestedRules())
}

// newRootCmd wires every command. The root command itself streams rows to
// stdout until interrupted or the generation limit is reached.
func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "automata WIDTH [RULE]",
		Short:   "elementary cellular automaton streamer",
		Long:    usageText(),
		Example: exampleText(),
		Args:    cobra.RangeArgs(1, 2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStream(cmd, args, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data", ".automata", "data directory")
	bindStreamFlags(rootCmd, opts)

	liveCmd := &cobra.Command{
		Use:   "live WIDTH [RULE]",
		Short: "interactive scrolling view",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args, opts)
		},
	}
	bindStreamFlags(liveCmd, opts)

	statsCmd := &cobra.Command{
		Use:   "stats WIDTH [RULE]",
		Short: "run a fixed number of generations and report metrics",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, opts)
		},
	}
	bindStreamFlags(statsCmd, opts)
	statsCmd.Flags().BoolVar(&opts.save, "save", false, "persist the run summary to the data directory")

	surveyCmd := &cobra.Command{
		Use:   "survey WIDTH",
		Short: "compare rules side by side, each on its own grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSurvey(cmd, args, opts)
		},
	}
	surveyCmd.Flags().Uint64Var(&opts.generations, "generations", statsGenerations, "generations per rule")
	surveyCmd.Flags().IntVar(&opts.workers, "workers", 0, "concurrent simulations (0 uses GOMAXPROCS)")
	surveyCmd.Flags().IntSliceVar(&opts.rules, "rules", nil, "rules to survey (default all 256)")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRuns(cmd, opts)
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot RUN_ID",
		Short: "plot the population of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return plotRun(cmd, args[0], opts)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(out, "  %-12s rule %-3d theme %s\n", name, p.Rule, p.Theme)
			}
			return nil
		},
	}

	ruleCmd := &cobra.Command{
		Use:   "rule RULE",
		Short: "print the neighborhood table of a rule",
		Args:  cobra.ExactArgs(1),
		RunE:  printRule,
	}

	rootCmd.AddCommand(liveCmd, statsCmd, surveyCmd, runsCmd, plotCmd, presetsCmd, ruleCmd)
	return rootCmd
}

func bindStreamFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	f.StringVar(&opts.preset, "preset", "", "use preset configuration")
	f.StringVar(&opts.delay, "delay", config.DefaultDelay.String(), "pause between generations")
	f.Uint64Var(&opts.generations, "generations", 0, "stop after this many generations (0 runs forever)")
	f.IntVar(&opts.seed, "seed", config.SeedMidpoint, "seed cell position (-1 for the midpoint)")
	f.StringVar(&opts.alive, "alive", config.DefaultAlive, "glyph for live cells")
	f.StringVar(&opts.dead, "dead", config.DefaultDead, "glyph for dead cells")
	f.StringVar(&opts.theme, "theme", config.DefaultTheme, "color theme")
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
