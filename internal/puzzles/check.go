package puzzles

import (
	"fmt"

	"codeberg.org/mutker/puzzlebench/internal/bench"
	"codeberg.org/mutker/puzzlebench/internal/errors"
)

// CheckResult is the outcome of running a part against its examples.
type CheckResult struct {
	Passed   bool
	Failures []string
}

// Check runs every example of the part. A part without examples does not
// pass.
func (p Part) Check() CheckResult {
	if len(p.Examples) == 0 {
		return CheckResult{Failures: []string{fmt.Sprintf("no examples for part %s", p.Name)}}
	}

	res := CheckResult{Passed: true}
	for i, ex := range p.Examples {
		if msg := checkExample(p.Solver, ex); msg != "" {
			res.Passed = false
			res.Failures = append(res.Failures, fmt.Sprintf("example %d: %s", i+1, msg))
		}
	}

	return res
}

// Err returns the failures as a coded error, or nil when all passed.
func (r CheckResult) Err() error {
	if r.Passed {
		return nil
	}

	return errors.New().WithData(ErrExampleFailed, r.Failures)
}

func checkExample(solver bench.Solver, ex Example) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprintf("panic: %v", r)
		}
	}()

	if resetter, ok := solver.(bench.CacheResetter); ok {
		resetter.ResetCache()
	}

	got, err := solver.Solve(bench.NewText(ex.Input))
	if err != nil {
		return err.Error()
	}

	if got != ex.Want {
		return fmt.Sprintf("got %s, want %s", got, ex.Want)
	}

	return ""
}
