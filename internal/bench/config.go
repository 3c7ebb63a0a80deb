package bench

import "codeberg.org/mutker/puzzlebench/internal/errors"

const DefaultRuns = 100

// Config controls a performance analysis.
type Config struct {
	Runs         int
	Probes       int
	ProbeRepeats int
	Complexity   bool
	Memory       bool
}

// DefaultConfig returns the default analysis configuration.
func DefaultConfig() Config {
	return Config{
		Runs:         DefaultRuns,
		Probes:       DefaultProbes,
		ProbeRepeats: DefaultProbeRepeats,
		Complexity:   true,
		Memory:       true,
	}
}

// Validate validates the configuration
func (c Config) Validate() error {
	errFactory := errors.New()

	if c.Runs < 1 {
		return errFactory.WithData(ErrInvalidRuns, c.Runs)
	}

	if c.Complexity && c.Probes < 2 {
		return errFactory.WithMessage(ErrInvalidConfig, "complexity analysis needs at least two probes")
	}

	if c.Complexity && c.ProbeRepeats < 1 {
		return errFactory.WithMessage(ErrInvalidConfig, "probe repeats must be positive")
	}

	return nil
}
