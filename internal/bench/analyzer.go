package bench

import (
	"codeberg.org/mutker/puzzlebench/internal/errors"
	"codeberg.org/mutker/puzzlebench/internal/logger"
)

// Analyzer runs the full measurement pipeline for a solver.
type Analyzer struct {
	cfg    Config
	clock  Clock
	reader ResourceReader
	log    logger.Logger
}

type Option func(*Analyzer)

func WithClock(c Clock) Option {
	return func(a *Analyzer) {
		a.clock = c
	}
}

// WithReader sets the process resource reader. Without one, memory and
// CPU figures are reported as unavailable.
func WithReader(r ResourceReader) Option {
	return func(a *Analyzer) {
		a.reader = r
	}
}

func WithLogger(l logger.Logger) Option {
	return func(a *Analyzer) {
		a.log = l
	}
}

// NewAnalyzer creates an Analyzer after validating cfg.
func NewAnalyzer(cfg Config, opts ...Option) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Analyzer{
		cfg:   cfg,
		clock: SystemClock(),
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Analyze times solver over in, measures its resource usage and, when
// enabled, estimates its complexity. Only a failing solver during the
// timed runs aborts the analysis.
func (a *Analyzer) Analyze(solver Solver, in Input) (*PerformanceMetrics, error) {
	var reader ResourceReader
	if a.cfg.Memory {
		reader = a.reader
	}

	resources := ResourceSampler{Reader: reader, Clock: a.clock}

	var (
		timing TimingResult
		answer Answer
	)

	usage, err := resources.Measure(func(w *Window) error {
		var sampleErr error
		timing, answer, sampleErr = TimingSampler{
			Clock:    a.clock,
			AfterRun: w.Checkpoint,
		}.Sample(solver, in, a.cfg.Runs)

		return sampleErr
	})
	if err != nil {
		if e, ok := err.(errors.Error); ok {
			a.log.ErrorWithCode(e).Msg("Timed runs failed")
		}
		return nil, err
	}

	a.log.Debug().
		Int("runs", timing.Count).
		Float64("mean_us", timing.MeanMicros).
		Bool("memory_available", usage.MemoryAvailable).
		Msg("Timing complete")

	metrics := &PerformanceMetrics{
		Result:    answer,
		Timing:    timing,
		Resources: usage,
	}

	if a.cfg.Complexity {
		result := ComplexityAnalyzer{
			Clock:   a.clock,
			Probes:  a.cfg.Probes,
			Repeats: a.cfg.ProbeRepeats,
		}.Analyze(solver, in)

		if !result.Determined() {
			a.log.Warn().
				Str("error_code", string(result.Code)).
				Str("reason", result.Reason).
				Msg("Could not determine complexity")
		} else {
			a.log.Debug().
				Str("model", result.Model.String()).
				Float64("score", result.Score).
				Msg("Complexity fitted")
		}

		metrics.Complexity = &result
	}

	return metrics, nil
}
