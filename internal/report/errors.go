package report

import "codeberg.org/mutker/puzzlebench/internal/errors"

const (
	ErrInvalidFormat = errors.ErrInvalidFormat
	ErrRenderFailed  = errors.ErrRenderFailed
)
