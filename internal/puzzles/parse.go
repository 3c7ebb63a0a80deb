package puzzles

import (
	"strconv"
	"strings"

	"codeberg.org/mutker/puzzlebench/internal/bench"
	"codeberg.org/mutker/puzzlebench/internal/errors"
)

// ints parses whitespace separated integers.
func ints(line string) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.New().Wrap(ErrParseInput, err)
		}
		out[i] = n
	}

	return out, nil
}

func lines(txt string) []string {
	return bench.NewText(txt).Lines()
}

func answer(n int) bench.Answer {
	return bench.Int(int64(n))
}
