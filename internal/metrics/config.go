package metrics

import "codeberg.org/mutker/puzzlebench/internal/errors"

const defaultNamespace = "puzzlebench"

type Config struct {
	Namespace string
	Enabled   bool
}

func DefaultConfig() Config {
	return Config{
		Namespace: defaultNamespace,
		Enabled:   false,
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if c.Enabled && c.Namespace == "" {
		return errFactory.New(ErrInvalidNamespace)
	}
	return nil
}
