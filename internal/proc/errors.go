package proc

import "codeberg.org/mutker/puzzlebench/internal/errors"

const (
	// Initialization Errors
	ErrInitFailed  = errors.ErrorCode("proc_init_failed")
	ErrUnsupported = errors.ErrorCode("proc_unsupported_platform")

	// Read Errors
	ErrReadMemory = errors.ErrorCode("proc_read_memory_failed")
	ErrReadCPU    = errors.ErrorCode("proc_read_cpu_failed")
)
