package puzzles

import (
	"slices"
	"strconv"
	"strings"

	"codeberg.org/mutker/puzzlebench/internal/bench"
	"codeberg.org/mutker/puzzlebench/internal/errors"
)

const calorieExample = `
1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func calorieCounting() *Puzzle {
	return &Puzzle{
		Year:  2022,
		Day:   1,
		Title: "Calorie Counting",
		Parts: []Part{
			{
				Name:     "a",
				Solver:   bench.TextSolverFunc(func(txt string) (bench.Answer, error) { return topCalories(txt, 1) }),
				Examples: []Example{{Input: calorieExample, Want: bench.Int(24000)}},
			},
			{
				Name:     "b",
				Solver:   bench.TextSolverFunc(func(txt string) (bench.Answer, error) { return topCalories(txt, 3) }),
				Examples: []Example{{Input: calorieExample, Want: bench.Int(45000)}},
			},
		},
	}
}

// topCalories sums the calories carried by the n best stocked elves.
func topCalories(txt string, n int) (bench.Answer, error) {
	var (
		totals  []int
		current int
		open    bool
	)

	for _, line := range lines(txt) {
		line = strings.TrimSpace(line)
		if line == "" {
			if open {
				totals = append(totals, current)
			}
			current, open = 0, false
			continue
		}

		v, err := strconv.Atoi(line)
		if err != nil {
			return bench.NoAnswer, errors.New().Wrap(ErrParseInput, err)
		}
		current += v
		open = true
	}
	if open {
		totals = append(totals, current)
	}

	slices.SortFunc(totals, func(a, b int) int { return b - a })

	sum := 0
	for _, t := range totals[:min(n, len(totals))] {
		sum += t
	}

	return answer(sum), nil
}
