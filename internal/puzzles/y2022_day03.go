package puzzles

import (
	"strings"

	"codeberg.org/mutker/puzzlebench/internal/bench"
	"codeberg.org/mutker/puzzlebench/internal/errors"
)

const rucksackExample = `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw`

func rucksackReorganization() *Puzzle {
	return &Puzzle{
		Year:  2022,
		Day:   3,
		Title: "Rucksack Reorganization",
		Parts: []Part{
			{
				Name:     "a",
				Solver:   bench.TextSolverFunc(misplacedPriorities),
				Examples: []Example{{Input: rucksackExample, Want: bench.Int(157)}},
			},
			{
				Name:     "b",
				Solver:   bench.TextSolverFunc(badgePriorities),
				Examples: []Example{{Input: rucksackExample, Want: bench.Int(70)}},
			},
		},
	}
}

func priority(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27
	default:
		return 0
	}
}

// itemSet is a bitmask over the 52 item priorities.
type itemSet uint64

func items(s string) itemSet {
	var set itemSet
	for i := 0; i < len(s); i++ {
		if p := priority(s[i]); p > 0 {
			set |= 1 << p
		}
	}

	return set
}

func (s itemSet) single() (int, bool) {
	if s == 0 || s&(s-1) != 0 {
		return 0, false
	}

	p := 0
	for s > 1 {
		s >>= 1
		p++
	}

	return p, true
}

func misplacedPriorities(txt string) (bench.Answer, error) {
	sum := 0
	for _, line := range lines(txt) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		half := len(line) / 2
		p, ok := (items(line[:half]) & items(line[half:])).single()
		if !ok {
			return bench.NoAnswer, errors.New().WithData(ErrParseInput, line)
		}
		sum += p
	}

	return answer(sum), nil
}

func badgePriorities(txt string) (bench.Answer, error) {
	var sacks []string
	for _, line := range lines(txt) {
		if line = strings.TrimSpace(line); line != "" {
			sacks = append(sacks, line)
		}
	}

	sum := 0
	for i := 0; i+3 <= len(sacks); i += 3 {
		p, ok := (items(sacks[i]) & items(sacks[i+1]) & items(sacks[i+2])).single()
		if !ok {
			return bench.NoAnswer, errors.New().WithData(ErrParseInput, sacks[i:i+3])
		}
		sum += p
	}

	return answer(sum), nil
}
