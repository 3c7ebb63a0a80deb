package pid

import "codeberg.org/mutker/puzzlebench/internal/errors"

const (
	ErrAlreadyRunning = errors.ErrAlreadyRunning
	ErrWriteFailed    = errors.ErrorCode("pid_write_failed")
	ErrReleaseFailed  = errors.ErrReleaseLock
)
