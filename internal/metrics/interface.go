package metrics

import (
	"context"
	"io"
	"time"

	"codeberg.org/mutker/puzzlebench/internal/bench"
)

// MetricsCollector records the outcome of each puzzle part.
type MetricsCollector interface {
	Record(ctx context.Context, snapshot *MetricsSnapshot) error
	// WriteText writes everything recorded so far in the Prometheus text
	// exposition format.
	WriteText(w io.Writer) error
	Close() error
}

// MetricsSnapshot is the result of running one puzzle part.
type MetricsSnapshot struct {
	Timestamp      time.Time
	Puzzle         PuzzleRef
	Performance    *bench.PerformanceMetrics
	ExamplesPassed bool
	Submitted      bool
}

type PuzzleRef struct {
	Year int
	Day  int
	Part string
}
