package bench

import (
	"fmt"

	"codeberg.org/mutker/puzzlebench/internal/errors"
)

// Solver computes an answer from an input. Implementations must tolerate
// repeated calls with the same input.
type Solver interface {
	Solve(in Input) (Answer, error)
}

// CacheResetter is implemented by solvers that memoize between calls.
// Samplers reset the cache before every timed run.
type CacheResetter interface {
	ResetCache()
}

// SolverFunc adapts a plain function to Solver.
type SolverFunc func(in Input) (Answer, error)

func (f SolverFunc) Solve(in Input) (Answer, error) {
	return f(in)
}

// TextSolverFunc adapts a function over raw text to Solver.
type TextSolverFunc func(txt string) (Answer, error)

func (f TextSolverFunc) Solve(in Input) (Answer, error) {
	t, ok := in.(Text)
	if !ok {
		return NoAnswer, errors.New().WithData(ErrUnsupportedInput, fmt.Sprintf("%T", in))
	}

	return f(t.String())
}
