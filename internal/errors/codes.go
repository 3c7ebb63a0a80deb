package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrNotImplemented  ErrorCode = "not_implemented"
	ErrUnavailable     ErrorCode = "service_unavailable"

	// Configuration errors
	ErrInvalidConfig ErrorCode = "invalid_configuration"
	ErrMissingConfig ErrorCode = "missing_configuration"
	ErrBindFlags     ErrorCode = "bind_flags_failed"
	ErrReadConfig    ErrorCode = "read_config_failed"
	ErrInvalidRuns   ErrorCode = "invalid_runs"
	ErrInvalidFormat ErrorCode = "invalid_format"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Initialization errors
	ErrInitFailed     ErrorCode = "initialization_failed"
	ErrShutdownFailed ErrorCode = "shutdown_failed"

	// Resource errors
	ErrResourceBusy      ErrorCode = "resource_busy"
	ErrResourceNotFound  ErrorCode = "resource_not_found"
	ErrResourceExhausted ErrorCode = "resource_exhausted"
	ErrAlreadyRunning    ErrorCode = "already_running"

	// Application errors
	ErrInitApp        ErrorCode = "init_app_failed"
	ErrRunPuzzle      ErrorCode = "run_puzzle_failed"
	ErrUnknownPuzzle  ErrorCode = "unknown_puzzle"
	ErrMissingInput   ErrorCode = "missing_input"
	ErrSubmitFailed   ErrorCode = "submit_failed"
	ErrRenderFailed   ErrorCode = "render_failed"
	ErrAnalyzeFailed  ErrorCode = "analyze_failed"
	ErrSolverFailed   ErrorCode = "solver_failed"
	ErrExampleFailed  ErrorCode = "example_failed"
	ErrReleaseLock    ErrorCode = "release_lock_failed"
	ErrCloseResources ErrorCode = "close_resources_failed"

	// Operation errors
	ErrOperationFailed  ErrorCode = "operation_failed"
	ErrTimeout          ErrorCode = "operation_timeout"
	ErrInvalidOperation ErrorCode = "invalid_operation"

	// Metrics errors
	ErrInitMetrics    ErrorCode = "init_metrics_failed"
	ErrCollectMetrics ErrorCode = "collect_metrics_failed"
	ErrCloseMetrics   ErrorCode = "close_metrics_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:          "Internal error occurred",
	ErrInvalidArgument:   "Invalid argument provided",
	ErrNotImplemented:    "Operation not implemented",
	ErrUnavailable:       "Service unavailable",
	ErrInvalidConfig:     "Invalid configuration",
	ErrMissingConfig:     "Missing configuration",
	ErrBindFlags:         "Failed to bind flags",
	ErrReadConfig:        "Failed to read configuration",
	ErrInvalidRuns:       "Invalid number of runs",
	ErrInvalidFormat:     "Invalid output format",
	ErrInvalidLogLevel:   "Invalid log level",
	ErrInitFailed:        "Initialization failed",
	ErrShutdownFailed:    "Shutdown failed",
	ErrResourceBusy:      "Resource is busy",
	ErrResourceNotFound:  "Resource not found",
	ErrResourceExhausted: "Resource exhausted",
	ErrAlreadyRunning:    "Another measurement is already running",
	ErrOperationFailed:   "Operation failed",
	ErrTimeout:           "Operation timed out",
	ErrInvalidOperation:  "Invalid operation",
	ErrInitMetrics:       "Failed to initialize metrics",
	ErrCollectMetrics:    "Failed to collect metrics data",
	ErrCloseMetrics:      "Failed to close metrics collector",
	ErrInitApp:           "Failed to initialize application",
	ErrRunPuzzle:         "Failed to run puzzle",
	ErrUnknownPuzzle:     "Unknown puzzle",
	ErrMissingInput:      "No input available for puzzle",
	ErrSubmitFailed:      "Failed to submit answer",
	ErrRenderFailed:      "Failed to render report",
	ErrAnalyzeFailed:     "Performance analysis failed",
	ErrSolverFailed:      "Solver failed",
	ErrExampleFailed:     "Example check failed",
	ErrReleaseLock:       "Failed to release lock",
	ErrCloseResources:    "Failed to close resources",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
