package puzzles

import "codeberg.org/mutker/puzzlebench/internal/errors"

const (
	ErrUnknownPuzzle = errors.ErrUnknownPuzzle
	ErrUnknownPart   = errors.ErrorCode("puzzles_unknown_part")
	ErrParseInput    = errors.ErrorCode("puzzles_parse_input_failed")
	ErrExampleFailed = errors.ErrExampleFailed
)
