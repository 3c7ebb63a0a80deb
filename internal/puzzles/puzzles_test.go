package puzzles_test

import (
	"testing"

	"codeberg.org/mutker/puzzlebench/internal/bench"
	"codeberg.org/mutker/puzzlebench/internal/errors"
	"codeberg.org/mutker/puzzlebench/internal/puzzles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamplesPass(t *testing.T) {
	for _, p := range puzzles.All() {
		for _, part := range p.Parts {
			t.Run(p.String()+"/"+part.Name, func(t *testing.T) {
				res := part.Check()
				assert.True(t, res.Passed, "failures: %v", res.Failures)
				assert.NoError(t, res.Err())
			})
		}
	}
}

func TestAllSorted(t *testing.T) {
	all := puzzles.All()
	require.NotEmpty(t, all)

	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		assert.True(t, prev.Year < cur.Year || (prev.Year == cur.Year && prev.Day < cur.Day),
			"%s listed before %s", prev, cur)
	}
}

func TestLookup(t *testing.T) {
	p, err := puzzles.Lookup(2024, 2)
	require.NoError(t, err)
	assert.Equal(t, "Red-Nosed Reports", p.Title)

	part, err := p.Part("b")
	require.NoError(t, err)
	assert.Equal(t, "b", part.Name)

	_, err = p.Part("c")
	assert.True(t, errors.HasCode(err, puzzles.ErrUnknownPart))

	_, err = puzzles.Lookup(2015, 1)
	assert.True(t, errors.HasCode(err, puzzles.ErrUnknownPuzzle))
}

func TestCheckReportsWrongAnswer(t *testing.T) {
	part := puzzles.Part{
		Name: "a",
		Solver: bench.TextSolverFunc(func(string) (bench.Answer, error) {
			return bench.Int(1), nil
		}),
		Examples: []puzzles.Example{{Input: "x", Want: bench.Int(2)}},
	}

	res := part.Check()

	assert.False(t, res.Passed)
	require.Len(t, res.Failures, 1)
	assert.Contains(t, res.Failures[0], "got 1, want 2")
	assert.True(t, errors.HasCode(res.Err(), puzzles.ErrExampleFailed))
}

func TestCheckRecoversPanic(t *testing.T) {
	part := puzzles.Part{
		Name: "a",
		Solver: bench.TextSolverFunc(func(string) (bench.Answer, error) {
			panic("boom")
		}),
		Examples: []puzzles.Example{{Input: "x", Want: bench.Int(2)}},
	}

	res := part.Check()

	assert.False(t, res.Passed)
	assert.Contains(t, res.Failures[0], "panic: boom")
}

func TestCheckWithoutExamples(t *testing.T) {
	res := puzzles.Part{Name: "b"}.Check()
	assert.False(t, res.Passed)
}

func solve(t *testing.T, year, day int, part, input string) bench.Answer {
	t.Helper()

	p, err := puzzles.Lookup(year, day)
	require.NoError(t, err)
	pt, err := p.Part(part)
	require.NoError(t, err)

	ans, err := pt.Solver.Solve(bench.NewText(input))
	require.NoError(t, err)

	return ans
}

func TestSolversOnEdgeInputs(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		day   int
		part  string
		input string
		want  bench.Answer
	}{
		{"calories single elf", 2022, 1, "a", "100\n200\n", bench.Int(300)},
		{"calories fewer than three elves", 2022, 1, "b", "1\n\n2\n", bench.Int(3)},
		{"calories crlf", 2022, 1, "a", "1\r\n2\r\n\r\n5\r\n", bench.Int(5)},
		{"distance empty", 2024, 1, "a", "", bench.Int(0)},
		{"reports single level", 2024, 2, "a", "5\n", bench.Int(1)},
		{"reports dampen first", 2024, 2, "b", "9 1 2 3\n", bench.Int(1)},
		{"mul over lines", 2024, 3, "a", "mul(1,2)\nmul(3,4)", bench.Int(14)},
		{"mul four digits ignored", 2024, 3, "a", "mul(1000,2)mul(2,2)", bench.Int(4)},
		{"mul disabled across lines", 2024, 3, "b", "don't()\nmul(3,4)\ndo()mul(1,1)", bench.Int(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, solve(t, tt.year, tt.day, tt.part, tt.input))
		})
	}
}

func TestParseErrors(t *testing.T) {
	p, err := puzzles.Lookup(2024, 1)
	require.NoError(t, err)

	_, err = p.Parts[0].Solver.Solve(bench.NewText("1 2 3\n"))
	assert.True(t, errors.HasCode(err, puzzles.ErrParseInput))

	_, err = p.Parts[0].Solver.Solve(bench.NewText("a b\n"))
	assert.True(t, errors.HasCode(err, puzzles.ErrParseInput))
}

func TestMulSolverResetsCache(t *testing.T) {
	p, err := puzzles.Lookup(2024, 3)
	require.NoError(t, err)

	solver := p.Parts[1].Solver
	resetter, ok := solver.(bench.CacheResetter)
	require.True(t, ok, "day 3 solver memoizes parsed programs")

	first, err := solver.Solve(bench.NewText("mul(2,3)"))
	require.NoError(t, err)
	resetter.ResetCache()
	second, err := solver.Solve(bench.NewText("mul(2,3)"))
	require.NoError(t, err)

	assert.Equal(t, first, second)

	_, err = solver.Solve(bench.Sequence[int]{1})
	assert.True(t, errors.HasCode(err, bench.ErrUnsupportedInput))
}
