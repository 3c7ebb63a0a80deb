package metrics

import "codeberg.org/mutker/puzzlebench/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig    = errors.ErrInvalidConfig
	ErrInvalidNamespace = errors.ErrorCode("metrics_invalid_namespace")

	// Registry Errors
	ErrRegisterFailed = errors.ErrInitMetrics
	ErrGatherFailed   = errors.ErrorCode("metrics_gather_failed")
	ErrWriteFailed    = errors.ErrorCode("metrics_write_failed")

	// Service Errors
	ErrServiceShutdown = errors.ErrCloseMetrics

	// Collection Errors
	ErrMetricsCollection = errors.ErrCollectMetrics
	ErrInvalidMetrics    = errors.ErrorCode("metrics_invalid_metrics")

	// Operation Errors
	ErrOperationTimeout = errors.ErrTimeout
)
