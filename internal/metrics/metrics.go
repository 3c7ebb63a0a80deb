package metrics

import (
	"context"
	"io"
	"strconv"
	"sync"

	"codeberg.org/mutker/puzzlebench/internal/errors"
	"codeberg.org/mutker/puzzlebench/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

var partLabels = []string{"year", "day", "part"}

type service struct {
	registry *prometheus.Registry
	log      logger.Logger
	mu       sync.Mutex
	closed   bool

	RunsTotal        *prometheus.CounterVec
	SolveMeanSeconds *prometheus.GaugeVec
	SolveStdDev      *prometheus.GaugeVec
	PeakMemoryBytes  *prometheus.GaugeVec
	CPUPercent       *prometheus.GaugeVec
	ComplexityScore  *prometheus.GaugeVec
	ExamplesPassed   *prometheus.GaugeVec
	SubmissionsTotal *prometheus.CounterVec
}

type noopMetricsCollector struct{}

// NewService creates a collector backed by its own Prometheus registry.
// A disabled configuration yields a collector that records nothing.
func NewService(cfg Config, log logger.Logger) (MetricsCollector, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	if !cfg.Enabled {
		log.Debug().Msg("Metrics collection disabled, using no-op collector")
		return &noopMetricsCollector{}, nil
	}

	s := newService(prometheus.NewRegistry(), cfg.Namespace, log)

	log.Debug().
		Str("namespace", cfg.Namespace).
		Msg("Metrics service initialized")

	return s, nil
}

func newService(reg *prometheus.Registry, namespace string, log logger.Logger) *service {
	factory := promauto.With(reg)

	return &service{
		registry: reg,
		log:      log,
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solver_runs_total",
			Help:      "Timed solver invocations",
		}, partLabels),
		SolveMeanSeconds: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "solve_mean_seconds",
			Help:      "Mean wall-clock time per solver invocation",
		}, partLabels),
		SolveStdDev: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "solve_stddev_seconds",
			Help:      "Standard deviation of solver wall-clock time",
		}, partLabels),
		PeakMemoryBytes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "peak_memory_bytes",
			Help:      "Peak resident memory above baseline during timed runs",
		}, partLabels),
		CPUPercent: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cpu_percent",
			Help:      "Process CPU time over wall time during timed runs",
		}, partLabels),
		ComplexityScore: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "complexity_fit_score",
			Help:      "Goodness of fit of the selected growth model",
		}, append(partLabels[:len(partLabels):len(partLabels)], "model")),
		ExamplesPassed: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "examples_passed",
			Help:      "Whether the worked examples passed (1) or not (0)",
		}, partLabels),
		SubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Answers handed to the submitter",
		}, partLabels),
	}
}

func (s *service) Record(ctx context.Context, snapshot *MetricsSnapshot) error {
	errFactory := errors.New()

	if snapshot == nil {
		return errFactory.New(ErrInvalidMetrics)
	}

	select {
	case <-ctx.Done():
		return errFactory.Wrap(ErrOperationTimeout, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errFactory.WithMessage(ErrMetricsCollection, "collector is closed")
	}

	labels := prometheus.Labels{
		"year": strconv.Itoa(snapshot.Puzzle.Year),
		"day":  strconv.Itoa(snapshot.Puzzle.Day),
		"part": snapshot.Puzzle.Part,
	}

	s.ExamplesPassed.With(labels).Set(boolToFloat(snapshot.ExamplesPassed))
	if snapshot.Submitted {
		s.SubmissionsTotal.With(labels).Inc()
	}

	if perf := snapshot.Performance; perf != nil {
		s.RunsTotal.With(labels).Add(float64(perf.Timing.Count))
		s.SolveMeanSeconds.With(labels).Set(perf.Timing.Mean().Seconds())
		s.SolveStdDev.With(labels).Set(perf.Timing.StdDev().Seconds())

		if perf.Resources.MemoryAvailable {
			s.PeakMemoryBytes.With(labels).Set(float64(perf.Resources.PeakMemory))
		}
		if perf.Resources.CPUAvailable {
			s.CPUPercent.With(labels).Set(perf.Resources.CPUPercent)
		}

		if c := perf.Complexity; c != nil && c.Determined() {
			s.ComplexityScore.
				WithLabelValues(labels["year"], labels["day"], labels["part"], c.Model.String()).
				Set(c.Score)
		}
	}

	s.log.Debug().
		Int("year", snapshot.Puzzle.Year).
		Int("day", snapshot.Puzzle.Day).
		Str("part", snapshot.Puzzle.Part).
		Msg("Recorded part metrics")

	return nil
}

func (s *service) WriteText(w io.Writer) error {
	errFactory := errors.New()

	families, err := s.registry.Gather()
	if err != nil {
		return errFactory.Wrap(ErrGatherFailed, err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errFactory.Wrap(ErrWriteFailed, err)
		}
	}

	return nil
}

func (s *service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func (*noopMetricsCollector) Record(_ context.Context, _ *MetricsSnapshot) error {
	return nil
}

func (*noopMetricsCollector) WriteText(_ io.Writer) error {
	return nil
}

func (*noopMetricsCollector) Close() error {
	return nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
