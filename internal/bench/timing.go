package bench

import (
	"math"
	"time"

	"codeberg.org/mutker/puzzlebench/internal/errors"
)

// TimingResult aggregates one batch of timed runs. Durations are in
// microseconds.
type TimingResult struct {
	MeanMicros   float64 `json:"mean_us" yaml:"mean_us"`
	StdDevMicros float64 `json:"stddev_us" yaml:"stddev_us"`
	MinMicros    float64 `json:"min_us" yaml:"min_us"`
	MaxMicros    float64 `json:"max_us" yaml:"max_us"`
	Count        int     `json:"count" yaml:"count"`
}

// Mean returns the mean as a duration.
func (r TimingResult) Mean() time.Duration {
	return microsToDuration(r.MeanMicros)
}

// StdDev returns the standard deviation as a duration.
func (r TimingResult) StdDev() time.Duration {
	return microsToDuration(r.StdDevMicros)
}

// TimingSampler runs a solver repeatedly against a fixed input.
type TimingSampler struct {
	Clock Clock
	// AfterRun, if set, is called after every invocation.
	AfterRun func()
}

// Sample invokes solver exactly runs times in sequence and returns the
// aggregate together with the answer from the final run. A solver error
// aborts the batch.
func (s TimingSampler) Sample(solver Solver, in Input, runs int) (TimingResult, Answer, error) {
	errFactory := errors.New()

	if runs < 1 {
		return TimingResult{}, NoAnswer, errFactory.WithData(ErrInvalidRuns, runs)
	}

	clock := s.Clock
	if clock == nil {
		clock = SystemClock()
	}

	resetter, _ := solver.(CacheResetter)

	samples := make([]time.Duration, 0, runs)
	var answer Answer
	for i := 0; i < runs; i++ {
		if resetter != nil {
			resetter.ResetCache()
		}

		start := clock.Now()
		result, err := solver.Solve(in)
		elapsed := clock.Now().Sub(start)

		if err != nil {
			return TimingResult{}, NoAnswer, errFactory.Wrap(ErrSolverFailed, err).WithData(struct {
				Run   int
				Error string
			}{
				Run:   i + 1,
				Error: err.Error(),
			})
		}

		samples = append(samples, elapsed)
		answer = result

		if s.AfterRun != nil {
			s.AfterRun()
		}
	}

	return summarize(samples), answer, nil
}

// summarize computes mean, population standard deviation, min and max.
func summarize(samples []time.Duration) TimingResult {
	if len(samples) == 0 {
		return TimingResult{}
	}

	values := make([]float64, len(samples))
	for i, d := range samples {
		values[i] = durationToMicros(d)
	}

	minV, maxV := values[0], values[0]
	var sum float64
	for _, v := range values {
		sum += v
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	n := float64(len(values))
	// Rounding can push the sum/n a hair outside [min, max].
	mean := math.Max(minV, math.Min(maxV, sum/n))

	var variance float64
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}

	return TimingResult{
		MeanMicros:   mean,
		StdDevMicros: math.Sqrt(variance / n),
		MinMicros:    minV,
		MaxMicros:    maxV,
		Count:        len(values),
	}
}

func durationToMicros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}

func microsToDuration(us float64) time.Duration {
	return time.Duration(us * float64(time.Microsecond))
}
