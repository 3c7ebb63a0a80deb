package main

import (
	"os"

	"codeberg.org/mutker/puzzlebench/internal/bench"
	"codeberg.org/mutker/puzzlebench/internal/errors"
	"codeberg.org/mutker/puzzlebench/internal/harness"
	"codeberg.org/mutker/puzzlebench/internal/metrics"
	"codeberg.org/mutker/puzzlebench/internal/pid"
	"codeberg.org/mutker/puzzlebench/internal/proc"
	"codeberg.org/mutker/puzzlebench/internal/puzzles"
	"codeberg.org/mutker/puzzlebench/internal/report"
	"github.com/spf13/cobra"
)

type runFlags struct {
	parts     []string
	inputFile string
	submit    bool
	noProfile bool
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run YEAR DAY",
		Short: "Check, measure and optionally submit a puzzle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.logError(a.run(cmd, args, f))
		},
	}

	cmd.Flags().StringSliceVar(&f.parts, "part", nil, "Parts to run (a, b); default all")
	cmd.Flags().StringVar(&f.inputFile, "input", "", "Read input from this file instead of the input cache")
	cmd.Flags().BoolVar(&f.submit, "submit", false, "Submit answers whose examples passed (dry run)")
	cmd.Flags().BoolVar(&f.noProfile, "no-profile", false, "Solve once without measuring")

	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string, f runFlags) error {
	errFactory := errors.New()
	ctx := cmd.Context()

	year, day, err := parseKey(args)
	if err != nil {
		return err
	}

	puzzle, err := puzzles.Lookup(year, day)
	if err != nil {
		return err
	}

	input, err := a.loadInput(cmd, year, day, f.inputFile)
	if err != nil {
		return err
	}

	if !f.noProfile {
		lock, err := pid.Acquire(a.cfg.LockDir)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				a.log.Warn().Err(err).Msg("Failed to release measurement lock")
			}
		}()
	}

	opts := []bench.Option{bench.WithLogger(a.log)}
	if a.cfg.Memory {
		reader, err := proc.New()
		if err != nil {
			a.log.Warn().Err(err).Msg("Process counters unavailable")
		} else {
			opts = append(opts, bench.WithReader(reader))
		}
	}

	analyzer, err := bench.NewAnalyzer(a.cfg.BenchConfig(), opts...)
	if err != nil {
		return err
	}

	reporter, err := report.NewReporter(cmd.OutOrStdout(), a.cfg.Format)
	if err != nil {
		return err
	}

	collector, err := metrics.NewService(metrics.Config{
		Namespace: "puzzlebench",
		Enabled:   a.cfg.Metrics,
	}, a.log)
	if err != nil {
		return err
	}
	defer collector.Close()

	runner := harness.NewRunner(analyzer, reporter,
		harness.WithCollector(collector),
		harness.WithSubmitter(harness.DryRunSubmitter{Log: a.log}),
		harness.WithLogger(a.log),
	)

	if _, err := runner.Run(ctx, puzzle, input, harness.Options{
		Parts:   f.parts,
		Profile: !f.noProfile,
		Submit:  f.submit,
	}); err != nil {
		return err
	}

	if a.cfg.Metrics {
		if err := collector.WriteText(cmd.OutOrStdout()); err != nil {
			return errFactory.Wrap(errors.ErrCollectMetrics, err)
		}
	}

	return nil
}

func (a *app) loadInput(cmd *cobra.Command, year, day int, path string) (string, error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", errors.New().Wrap(errors.ErrMissingInput, err)
		}
		return string(b), nil
	}

	repo, err := a.openInputs()
	if err != nil {
		return "", err
	}
	defer repo.Close()

	in, err := repo.Get(cmd.Context(), year, day)
	if err != nil {
		return "", err
	}

	return in.Data, nil
}
