package bench

import "codeberg.org/mutker/puzzlebench/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig = errors.ErrInvalidConfig
	ErrInvalidRuns   = errors.ErrInvalidRuns

	// Solver Errors
	ErrSolverFailed     = errors.ErrSolverFailed
	ErrUnsupportedInput = errors.ErrorCode("bench_unsupported_input")

	// Complexity Errors
	ErrTooFewObservations = errors.ErrorCode("bench_too_few_observations")
	ErrDegenerateSizes    = errors.ErrorCode("bench_degenerate_sizes")
	ErrDegenerateTimings  = errors.ErrorCode("bench_degenerate_timings")
	ErrSolverPanicked     = errors.ErrorCode("bench_solver_panicked")
	ErrNoModelFits        = errors.ErrorCode("bench_no_model_fits")
)
