package puzzles

import (
	"slices"

	"codeberg.org/mutker/puzzlebench/internal/bench"
	"codeberg.org/mutker/puzzlebench/internal/errors"
)

const locationExample = `3   4
4   3
2   5
1   3
3   9
3   3`

func historianHysteria() *Puzzle {
	return &Puzzle{
		Year:  2024,
		Day:   1,
		Title: "Historian Hysteria",
		Parts: []Part{
			{
				Name:     "a",
				Solver:   bench.TextSolverFunc(listDistance),
				Examples: []Example{{Input: locationExample, Want: bench.Int(11)}},
			},
			{
				Name:     "b",
				Solver:   bench.TextSolverFunc(similarityScore),
				Examples: []Example{{Input: locationExample, Want: bench.Int(31)}},
			},
		},
	}
}

func locationLists(txt string) ([]int, []int, error) {
	var left, right []int
	for _, line := range lines(txt) {
		nums, err := ints(line)
		if err != nil {
			return nil, nil, err
		}
		if len(nums) == 0 {
			continue
		}
		if len(nums) != 2 {
			return nil, nil, errors.New().WithData(ErrParseInput, line)
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
	}

	return left, right, nil
}

func listDistance(txt string) (bench.Answer, error) {
	left, right, err := locationLists(txt)
	if err != nil {
		return bench.NoAnswer, err
	}

	slices.Sort(left)
	slices.Sort(right)

	sum := 0
	for i := range left {
		d := left[i] - right[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}

	return answer(sum), nil
}

// similarityScore weights each left value by how often it appears on the
// right.
func similarityScore(txt string) (bench.Answer, error) {
	left, right, err := locationLists(txt)
	if err != nil {
		return bench.NoAnswer, err
	}

	counts := make(map[int]int, len(right))
	for _, r := range right {
		counts[r]++
	}

	sum := 0
	for _, l := range left {
		sum += l * counts[l]
	}

	return answer(sum), nil
}
