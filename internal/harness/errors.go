package harness

import "codeberg.org/mutker/puzzlebench/internal/errors"

const (
	ErrRunPuzzle    = errors.ErrRunPuzzle
	ErrAnalyze      = errors.ErrAnalyzeFailed
	ErrSubmitFailed = errors.ErrSubmitFailed
	ErrMissingInput = errors.ErrMissingInput
	ErrInvalidPart  = errors.ErrorCode("harness_invalid_part")
)
