//go:build !linux

package proc

import (
	"time"

	"codeberg.org/mutker/puzzlebench/internal/errors"
)

// Process is unavailable on this platform. Callers treat the failed
// readings as missing figures.
type Process struct{}

func New() (*Process, error) {
	return &Process{}, nil
}

func (*Process) ResidentBytes() (uint64, error) {
	return 0, errors.New().New(ErrUnsupported)
}

func (*Process) CPUTime() (time.Duration, error) {
	return 0, errors.New().New(ErrUnsupported)
}
