package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/alexshd/revbench"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// app carries flag values and the logger shared by all commands.
type app struct {
	rangeBound int32
	repeats    int
	variants   []string
	logLevel   string
	noColor    bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	defaults := revbench.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "revbench",
		Short: "Validate and time int32 digit-reversal variants",
		Long: `revbench checks that every digit-reversal variant agrees on a curated
set of inputs, then times each one over a symmetric integer range and
prints min/max/mean/median per variant.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.noColor)
			if err != nil {
				return err
			}
			a.logger = logger
			slog.SetDefault(logger)
			return nil
		},
		RunE: a.runBenchmark,
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().StringSliceVar(&a.variants, "variants", nil, "Comma-separated variant names (default: all)")

	rootCmd.Flags().Int32Var(&a.rangeBound, "range", defaults.Range, "Reverse every value in [-range, range] per repetition")
	rootCmd.Flags().IntVar(&a.repeats, "repeats", defaults.Repeats, "Number of timed repetitions per variant")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "validate [value...]",
			Short: "Run the correctness gate only (curated inputs if none given)",
			RunE:  a.runValidate,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List the registered variants",
			Args:  cobra.NoArgs,
			RunE:  a.runList,
		},
	)

	return rootCmd
}

func (a *app) runBenchmark(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	theme := newTheme(out, a.noColor)

	variants, err := revbench.Select(a.variants)
	if err != nil {
		return err
	}

	cfg := revbench.Config{
		Range:    a.rangeBound,
		Repeats:  a.repeats,
		Progress: out,
		Logger:   a.logger,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Doubles as warm-up before timing.
	for _, x := range revbench.CuratedInputs {
		revbench.Validate(out, x, variants)
	}

	bound := humanize.Comma(int64(cfg.Range))
	fmt.Fprintf(out, "\nTiming functions %dx over range [-%s, %s]. The functions will be called 3x per iteration\n",
		cfg.Repeats, bound, bound)
	fmt.Fprint(out, "Beginning function timing...\n\n")

	results := make([]revbench.Result, 0, len(variants))
	for _, v := range variants {
		fmt.Fprintf(out, "Timing '%s' function...\n", v.Label)

		result, err := revbench.Measure(v, cfg)
		if err != nil {
			return err
		}
		a.logger.Debug("variant timed",
			"variant", v.Name,
			"median", result.Timing.Median,
			"mismatches", result.Mismatches)

		results = append(results, result)
	}

	writeReport(out, theme, results, cfg)
	return nil
}

func (a *app) runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	variants, err := revbench.Select(a.variants)
	if err != nil {
		return err
	}

	inputs := revbench.CuratedInputs
	if len(args) > 0 {
		inputs = make([]int32, len(args))
		for i, arg := range args {
			n, err := strconv.ParseInt(arg, 10, 32)
			if err != nil {
				return fmt.Errorf("value %q is not an int32: %w", arg, err)
			}
			inputs[i] = int32(n)
		}
	}

	for _, x := range inputs {
		revbench.Validate(out, x, variants)
	}
	a.logger.Info("variants agree", "inputs", len(inputs), "variants", len(variants))
	return nil
}

func (a *app) runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	writeVariants(out, newTheme(out, a.noColor), revbench.Variants())
	return nil
}
