package harness

import (
	"context"

	"codeberg.org/mutker/puzzlebench/internal/bench"
	"codeberg.org/mutker/puzzlebench/internal/logger"
)

// Submitter hands an answer to the puzzle site.
type Submitter interface {
	Submit(ctx context.Context, year, day int, part string, answer bench.Answer) error
}

// DryRunSubmitter only logs what would have been submitted.
type DryRunSubmitter struct {
	Log logger.Logger
}

func (s DryRunSubmitter) Submit(_ context.Context, year, day int, part string, answer bench.Answer) error {
	log := s.Log
	if log == nil {
		log = logger.Nop()
	}

	log.Info().
		Int("year", year).
		Int("day", day).
		Str("part", part).
		Str("answer", answer.String()).
		Msg("Dry run: answer not submitted")

	return nil
}
