package bench

import (
	"fmt"
	"math"
	"time"

	"codeberg.org/mutker/puzzlebench/internal/errors"
)

const (
	DefaultProbes       = 5
	DefaultProbeRepeats = 3

	// tieTolerance is the share of total variance a later model must
	// shave off the best SSE to replace it.
	tieTolerance = 1e-9

	// minExplained is the share of variance the best growth model must
	// explain before it is preferred over constant time.
	minExplained = 0.9

	// exponentialMargin is the fraction of the best polynomial-family SSE
	// an exponential fit has to get below.
	exponentialMargin = 0.5
)

// Observation is the fastest elapsed time seen at one input size.
type Observation struct {
	Size    int           `json:"size" yaml:"size"`
	Elapsed time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
}

// MarshalYAML writes Elapsed as integer nanoseconds, like the JSON form.
func (o Observation) MarshalYAML() (any, error) {
	return struct {
		Size    int   `yaml:"size"`
		Elapsed int64 `yaml:"elapsed_ns"`
	}{
		Size:    o.Size,
		Elapsed: o.Elapsed.Nanoseconds(),
	}, nil
}

// ComplexityResult is the outcome of a complexity fit. An undetermined
// result has a zero score and carries a reason.
type ComplexityResult struct {
	Model        GrowthModel      `json:"model" yaml:"model"`
	Score        float64          `json:"score" yaml:"score"`
	Observations []Observation    `json:"observations,omitempty" yaml:"observations,omitempty"`
	Reason       string           `json:"reason,omitempty" yaml:"reason,omitempty"`
	Code         errors.ErrorCode `json:"-" yaml:"-"`
}

// Determined reports whether a model was selected.
func (r ComplexityResult) Determined() bool {
	return r.Model != Undetermined
}

// Label returns the big-O notation, or the undetermined sentinel.
func (r ComplexityResult) Label() string {
	if !r.Determined() {
		return UndeterminedLabel
	}

	return r.Model.Notation()
}

func undetermined(code errors.ErrorCode, reason string, obs []Observation) ComplexityResult {
	return ComplexityResult{
		Model:        Undetermined,
		Score:        0,
		Observations: obs,
		Reason:       reason,
		Code:         code,
	}
}

// FitComplexity selects the best fitting growth model for obs.
func FitComplexity(obs []Observation) ComplexityResult {
	if len(obs) < 2 {
		return undetermined(ErrTooFewObservations, "fewer than two observations", obs)
	}

	xs := make([]float64, len(obs))
	ys := make([]float64, len(obs))
	distinct := make(map[int]struct{}, len(obs))
	for i, o := range obs {
		xs[i] = float64(o.Size)
		ys[i] = o.Elapsed.Seconds()
		distinct[o.Size] = struct{}{}
	}

	if len(distinct) < 2 {
		return undetermined(ErrDegenerateSizes, "fewer than two distinct input sizes", obs)
	}

	mean := meanOf(ys)
	var ssTot float64
	for _, y := range ys {
		d := y - mean
		ssTot += d * d
	}

	if ssTot == 0 {
		return undetermined(ErrDegenerateTimings, "timings do not vary with input size", obs)
	}

	best, bestSSE := Undetermined, math.Inf(1)
	for _, f := range catalogue {
		pred, ok := f.fit(xs, ys)
		if !ok {
			continue
		}

		s := sse(ys, pred)
		if math.IsNaN(s) || math.IsInf(s, 0) {
			continue
		}

		limit := bestSSE
		if f.model == Exponential {
			limit *= exponentialMargin
		}

		if best == Undetermined || s < limit-tieTolerance*ssTot {
			best, bestSSE = f.model, s
		}
	}

	if best == Undetermined {
		return undetermined(ErrNoModelFits, "no growth model could be fitted", obs)
	}

	explained := math.Max(0, math.Min(1, 1-bestSSE/ssTot))

	// Every growth model has a free slope, so it always beats a flat line
	// on noise. Constant time wins unless growth explains most variance,
	// and its score is the share growth leaves unexplained.
	if explained < minExplained {
		return ComplexityResult{
			Model:        Constant,
			Score:        1 - explained,
			Observations: obs,
		}
	}

	return ComplexityResult{
		Model:        best,
		Score:        explained,
		Observations: obs,
	}
}

// ComplexityAnalyzer estimates growth by timing a solver over prefixes
// of its input.
type ComplexityAnalyzer struct {
	Clock   Clock
	Probes  int
	Repeats int
}

// ProbeSizes returns evenly spaced, de-duplicated sizes between
// max(2, total/10) and total.
func ProbeSizes(total, probes int) []int {
	lo, hi := max(2, total/10), total
	if hi < lo || probes < 1 {
		return nil
	}

	if probes == 1 {
		return []int{hi}
	}

	sizes := make([]int, 0, probes)
	for i := 0; i < probes; i++ {
		size := lo + (hi-lo)*i/(probes-1)
		if len(sizes) > 0 && sizes[len(sizes)-1] == size {
			continue
		}
		sizes = append(sizes, size)
	}

	return sizes
}

// Analyze probes solver at several input sizes and fits the timings.
// It never fails: solver errors and panics produce an undetermined result.
func (a ComplexityAnalyzer) Analyze(solver Solver, in Input) ComplexityResult {
	probes := a.Probes
	if probes < 1 {
		probes = DefaultProbes
	}

	sizes := ProbeSizes(in.Len(), probes)
	if len(sizes) < 2 {
		return undetermined(ErrDegenerateSizes,
			fmt.Sprintf("input of %d units is too small to probe", in.Len()), nil)
	}

	obs, err := a.probe(solver, in, sizes)
	if err != nil {
		return undetermined(errors.CodeOf(err), err.Error(), obs)
	}

	return FitComplexity(obs)
}

func (a ComplexityAnalyzer) probe(solver Solver, in Input, sizes []int) (obs []Observation, err error) {
	errFactory := errors.New()

	defer func() {
		if r := recover(); r != nil {
			err = errFactory.WithData(ErrSolverPanicked, r)
		}
	}()

	clock := a.Clock
	if clock == nil {
		clock = SystemClock()
	}

	repeats := a.Repeats
	if repeats < 1 {
		repeats = DefaultProbeRepeats
	}

	resetter, _ := solver.(CacheResetter)

	obs = make([]Observation, 0, len(sizes))
	for _, size := range sizes {
		scaled := Scale(in, size)

		fastest := time.Duration(math.MaxInt64)
		for i := 0; i < repeats; i++ {
			if resetter != nil {
				resetter.ResetCache()
			}

			start := clock.Now()
			if _, solveErr := solver.Solve(scaled); solveErr != nil {
				return obs, errFactory.Wrap(ErrSolverFailed, solveErr).WithData(struct {
					Size  int
					Error string
				}{
					Size:  size,
					Error: solveErr.Error(),
				})
			}
			fastest = min(fastest, clock.Now().Sub(start))
		}

		obs = append(obs, Observation{Size: size, Elapsed: fastest})
	}

	return obs, nil
}
