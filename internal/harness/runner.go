package harness

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/mutker/puzzlebench/internal/bench"
	"codeberg.org/mutker/puzzlebench/internal/errors"
	"codeberg.org/mutker/puzzlebench/internal/logger"
	"codeberg.org/mutker/puzzlebench/internal/metrics"
	"codeberg.org/mutker/puzzlebench/internal/puzzles"
	"codeberg.org/mutker/puzzlebench/internal/report"
	"github.com/google/uuid"
)

// Options select what a run does.
type Options struct {
	// Parts to run. Empty means every part of the puzzle.
	Parts []string
	// Profile measures each part; otherwise the solver runs once.
	Profile bool
	// Submit hands answers of parts whose examples passed to the submitter.
	Submit bool
}

// PartResult is the outcome of one part.
type PartResult struct {
	Part      string
	Passed    bool
	Answer    bench.Answer
	Metrics   *bench.PerformanceMetrics
	Submitted bool
}

// Runner drives puzzles through check, measure, report and submit.
type Runner struct {
	analyzer  *bench.Analyzer
	reporter  *report.Reporter
	collector metrics.MetricsCollector
	submitter Submitter
	log       logger.Logger
	now       func() time.Time
}

type Option func(*Runner)

func WithCollector(c metrics.MetricsCollector) Option {
	return func(r *Runner) {
		r.collector = c
	}
}

func WithSubmitter(s Submitter) Option {
	return func(r *Runner) {
		r.submitter = s
	}
}

func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		r.log = l
	}
}

// NewRunner creates a runner. Without options it records no metrics and
// submits nothing beyond a log line.
func NewRunner(analyzer *bench.Analyzer, reporter *report.Reporter, opts ...Option) *Runner {
	r := &Runner{
		analyzer: analyzer,
		reporter: reporter,
		log:      logger.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.collector == nil {
		r.collector, _ = metrics.NewService(metrics.DefaultConfig(), r.log)
	}
	if r.submitter == nil {
		r.submitter = DryRunSubmitter{Log: r.log}
	}

	return r
}

// Run executes the selected parts of p against input.
func (r *Runner) Run(ctx context.Context, p *puzzles.Puzzle, input string, opts Options) ([]PartResult, error) {
	errFactory := errors.New()

	if input == "" {
		return nil, errFactory.WithData(ErrMissingInput, p.String())
	}

	parts, err := selectParts(p, opts.Parts)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := r.log.With("run_id", runID)

	log.Info().
		Int("year", p.Year).
		Int("day", p.Day).
		Bool("profile", opts.Profile).
		Bool("submit", opts.Submit).
		Msg("Starting run")

	r.reporter.Heading(fmt.Sprintf("Advent of Code %d - Day %d", p.Year, p.Day))

	text := bench.NewText(input)
	results := make([]PartResult, 0, len(parts))
	for _, part := range parts {
		if err := ctx.Err(); err != nil {
			return results, errFactory.Wrap(ErrRunPuzzle, err)
		}

		res, err := r.runPart(ctx, log, p, part, text, opts)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	return results, nil
}

func (r *Runner) runPart(ctx context.Context, log logger.Logger, p *puzzles.Puzzle, part puzzles.Part, in bench.Text, opts Options) (PartResult, error) {
	errFactory := errors.New()
	log = log.With("part", part.Name)

	check := part.Check()
	if check.Passed {
		r.reporter.Status(true, fmt.Sprintf("Part %s examples passed", part.Name))
	} else {
		r.reporter.Status(false, fmt.Sprintf("Part %s examples failed: %v", part.Name, check.Failures))
		log.Warn().Strs("failures", check.Failures).Msg("Examples failed")
	}

	res := PartResult{Part: part.Name, Passed: check.Passed}

	if opts.Profile {
		m, err := r.analyzer.Analyze(part.Solver, in)
		if err != nil {
			return res, errFactory.Wrap(ErrAnalyze, err).WithData(struct {
				Puzzle string
				Part   string
				Error  string
			}{
				Puzzle: p.String(),
				Part:   part.Name,
				Error:  err.Error(),
			})
		}
		res.Metrics = m
		res.Answer = m.Result
	} else {
		if resetter, ok := part.Solver.(bench.CacheResetter); ok {
			resetter.ResetCache()
		}
		ans, err := part.Solver.Solve(in)
		if err != nil {
			return res, errFactory.Wrap(ErrRunPuzzle, err)
		}
		res.Answer = ans
	}

	if err := r.reporter.Part(report.PartReport{
		Year:    p.Year,
		Day:     p.Day,
		Part:    part.Name,
		Passed:  check.Passed,
		Metrics: res.Metrics,
	}); err != nil {
		return res, err
	}

	if check.Passed && opts.Submit {
		if res.Answer.IsNone() {
			log.Warn().Msg("No answer to submit")
		} else {
			if err := r.submitter.Submit(ctx, p.Year, p.Day, part.Name, res.Answer); err != nil {
				return res, errFactory.Wrap(ErrSubmitFailed, err)
			}
			res.Submitted = true
			r.reporter.Status(true, fmt.Sprintf("Part %s submitted", part.Name))
		}
	}

	if err := r.collector.Record(ctx, &metrics.MetricsSnapshot{
		Timestamp:      r.now(),
		Puzzle:         metrics.PuzzleRef{Year: p.Year, Day: p.Day, Part: part.Name},
		Performance:    res.Metrics,
		ExamplesPassed: check.Passed,
		Submitted:      res.Submitted,
	}); err != nil {
		log.Warn().Err(err).Msg("Failed to record metrics")
	}

	log.Debug().
		Str("answer", res.Answer.String()).
		Bool("passed", res.Passed).
		Msg("Part complete")

	return res, nil
}

func selectParts(p *puzzles.Puzzle, names []string) ([]puzzles.Part, error) {
	if len(names) == 0 {
		return p.Parts, nil
	}

	parts := make([]puzzles.Part, 0, len(names))
	for _, name := range names {
		part, err := p.Part(name)
		if err != nil {
			return nil, errors.New().Wrap(ErrInvalidPart, err)
		}
		parts = append(parts, part)
	}

	return parts, nil
}
