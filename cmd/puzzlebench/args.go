package main

import (
	"strconv"

	"codeberg.org/mutker/puzzlebench/internal/errors"
	"codeberg.org/mutker/puzzlebench/internal/inputs"
)

// parseKey reads YEAR DAY positional arguments.
func parseKey(args []string) (int, int, error) {
	errFactory := errors.New()

	year, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, errFactory.Wrap(errors.ErrInvalidArgument, err)
	}

	day, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, errFactory.Wrap(errors.ErrInvalidArgument, err)
	}

	if !inputs.ValidKey(year, day) {
		return 0, 0, errFactory.WithData(errors.ErrInvalidArgument, args)
	}

	return year, day, nil
}
