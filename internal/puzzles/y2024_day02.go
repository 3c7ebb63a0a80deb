package puzzles

import (
	"codeberg.org/mutker/puzzlebench/internal/bench"
)

const reportExample = `7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9`

func redNosedReports() *Puzzle {
	return &Puzzle{
		Year:  2024,
		Day:   2,
		Title: "Red-Nosed Reports",
		Parts: []Part{
			{
				Name:     "a",
				Solver:   bench.TextSolverFunc(func(txt string) (bench.Answer, error) { return countSafe(txt, false) }),
				Examples: []Example{{Input: reportExample, Want: bench.Int(2)}},
			},
			{
				Name:     "b",
				Solver:   bench.TextSolverFunc(func(txt string) (bench.Answer, error) { return countSafe(txt, true) }),
				Examples: []Example{{Input: reportExample, Want: bench.Int(4)}},
			},
		},
	}
}

// safe reports whether levels strictly increase or decrease in steps of
// one to three. skip excludes one index; -1 keeps every level.
func safe(levels []int, skip int) bool {
	prev, dir, seen := 0, 0, 0
	for i, v := range levels {
		if i == skip {
			continue
		}

		if seen > 0 {
			d := v - prev
			step := 1
			if d < 0 {
				d, step = -d, -1
			}
			if d < 1 || d > 3 || (dir != 0 && step != dir) {
				return false
			}
			dir = step
		}

		prev = v
		seen++
	}

	return true
}

func countSafe(txt string, dampen bool) (bench.Answer, error) {
	n := 0
	for _, line := range lines(txt) {
		levels, err := ints(line)
		if err != nil {
			return bench.NoAnswer, err
		}
		if len(levels) == 0 {
			continue
		}

		if safe(levels, -1) {
			n++
			continue
		}

		if dampen {
			for i := range levels {
				if safe(levels, i) {
					n++
					break
				}
			}
		}
	}

	return answer(n), nil
}
