package harness_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"codeberg.org/mutker/puzzlebench/internal/bench"
	"codeberg.org/mutker/puzzlebench/internal/errors"
	"codeberg.org/mutker/puzzlebench/internal/harness"
	"codeberg.org/mutker/puzzlebench/internal/logger"
	"codeberg.org/mutker/puzzlebench/internal/metrics"
	"codeberg.org/mutker/puzzlebench/internal/puzzles"
	"codeberg.org/mutker/puzzlebench/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submission struct {
	year, day int
	part      string
	answer    string
}

type recordingSubmitter struct {
	got []submission
	err error
}

func (s *recordingSubmitter) Submit(_ context.Context, year, day int, part string, answer bench.Answer) error {
	if s.err != nil {
		return s.err
	}
	s.got = append(s.got, submission{year, day, part, answer.String()})
	return nil
}

func newAnalyzer(t *testing.T) *bench.Analyzer {
	t.Helper()

	cfg := bench.DefaultConfig()
	cfg.Runs = 2
	cfg.Complexity = false
	cfg.Memory = false

	a, err := bench.NewAnalyzer(cfg)
	require.NoError(t, err)

	return a
}

func newReporter(t *testing.T, buf *bytes.Buffer) *report.Reporter {
	t.Helper()

	r, err := report.NewReporter(buf, report.FormatTable)
	require.NoError(t, err)

	return r
}

const calorieInput = "1\n2\n\n10\n\n4\n"

func TestRunProfilesAndSubmits(t *testing.T) {
	var out bytes.Buffer
	sub := &recordingSubmitter{}
	collector, err := metrics.NewService(metrics.Config{Enabled: true, Namespace: "puzzlebench"}, logger.Nop())
	require.NoError(t, err)

	runner := harness.NewRunner(newAnalyzer(t), newReporter(t, &out),
		harness.WithSubmitter(sub),
		harness.WithCollector(collector),
	)

	p, err := puzzles.Lookup(2022, 1)
	require.NoError(t, err)

	results, err := runner.Run(context.Background(), p, calorieInput, harness.Options{Profile: true, Submit: true})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "10", results[0].Answer.String())
	assert.Equal(t, "17", results[1].Answer.String())
	for _, res := range results {
		assert.True(t, res.Passed)
		assert.True(t, res.Submitted)
		require.NotNil(t, res.Metrics)
		assert.Equal(t, 2, res.Metrics.Timing.Count)
	}

	assert.Equal(t, []submission{{2022, 1, "a", "10"}, {2022, 1, "b", "17"}}, sub.got)

	text := out.String()
	assert.Contains(t, text, "Advent of Code 2022 - Day 1")
	assert.Contains(t, text, "Part A Analysis")
	assert.Contains(t, text, "Part b submitted")

	var exposition bytes.Buffer
	require.NoError(t, collector.WriteText(&exposition))
	assert.Contains(t, exposition.String(), `puzzlebench_submissions_total{day="1",part="b",year="2022"} 1`)
}

func TestRunWithoutProfiling(t *testing.T) {
	var out bytes.Buffer
	sub := &recordingSubmitter{}
	runner := harness.NewRunner(newAnalyzer(t), newReporter(t, &out), harness.WithSubmitter(sub))

	p, err := puzzles.Lookup(2022, 1)
	require.NoError(t, err)

	results, err := runner.Run(context.Background(), p, calorieInput, harness.Options{Parts: []string{"b"}})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "b", results[0].Part)
	assert.Equal(t, "17", results[0].Answer.String())
	assert.Nil(t, results[0].Metrics)
	assert.False(t, results[0].Submitted)
	assert.Empty(t, sub.got)
	assert.NotContains(t, out.String(), "Analysis")
}

func failingExamplePuzzle() *puzzles.Puzzle {
	return &puzzles.Puzzle{
		Year:  2024,
		Day:   25,
		Title: "Broken",
		Parts: []puzzles.Part{{
			Name: "a",
			Solver: bench.TextSolverFunc(func(txt string) (bench.Answer, error) {
				return bench.Int(int64(len(txt))), nil
			}),
			Examples: []puzzles.Example{{Input: "abc", Want: bench.Int(4)}},
		}},
	}
}

func TestRunSkipsSubmitWhenExamplesFail(t *testing.T) {
	var out bytes.Buffer
	sub := &recordingSubmitter{}
	runner := harness.NewRunner(newAnalyzer(t), newReporter(t, &out), harness.WithSubmitter(sub))

	results, err := runner.Run(context.Background(), failingExamplePuzzle(), "hello", harness.Options{Profile: true, Submit: true})
	require.NoError(t, err)

	assert.False(t, results[0].Passed)
	assert.False(t, results[0].Submitted)
	assert.Empty(t, sub.got)
	assert.Contains(t, out.String(), "Part a examples failed")
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	p, err := puzzles.Lookup(2022, 1)
	require.NoError(t, err)

	runner := harness.NewRunner(newAnalyzer(t), newReporter(t, &out))

	_, err = runner.Run(context.Background(), p, "", harness.Options{})
	assert.True(t, errors.HasCode(err, harness.ErrMissingInput))

	_, err = runner.Run(context.Background(), p, calorieInput, harness.Options{Parts: []string{"c"}})
	assert.True(t, errors.HasCode(err, harness.ErrInvalidPart))

	_, err = runner.Run(context.Background(), p, "not a number\n", harness.Options{Profile: true})
	assert.True(t, errors.HasCode(err, harness.ErrAnalyze))
	assert.True(t, errors.HasCode(err, bench.ErrSolverFailed))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runner.Run(ctx, p, calorieInput, harness.Options{})
	assert.True(t, errors.HasCode(err, harness.ErrRunPuzzle))

	failing := harness.NewRunner(newAnalyzer(t), newReporter(t, &out),
		harness.WithSubmitter(&recordingSubmitter{err: fmt.Errorf("rate limited")}))
	_, err = failing.Run(context.Background(), p, calorieInput, harness.Options{Submit: true})
	assert.True(t, errors.HasCode(err, harness.ErrSubmitFailed))
}

func TestDryRunSubmitter(t *testing.T) {
	var buf bytes.Buffer
	s := harness.DryRunSubmitter{Log: logger.New(&buf, logger.InfoLevel)}

	require.NoError(t, s.Submit(context.Background(), 2024, 3, "a", bench.Int(161)))
	assert.Contains(t, buf.String(), "Dry run")
	assert.Contains(t, buf.String(), "161")

	assert.NoError(t, harness.DryRunSubmitter{}.Submit(context.Background(), 2024, 3, "a", bench.NoAnswer))
}
