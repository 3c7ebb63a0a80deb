package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/mutker/puzzlebench/internal/config"
	"codeberg.org/mutker/puzzlebench/internal/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "puzzlebench.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
runs = 25
probes = 4
probe_repeats = 2
complexity = false
memory = true
log_level = "debug"
format = "json"
metrics = true
input_db = "/path/to/inputs.db"
`)
	t.Setenv("PUZZLEBENCH_CONFIG", path)

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Runs, "Expected Runs 25")
	assert.Equal(t, 4, cfg.Probes, "Expected Probes 4")
	assert.Equal(t, 2, cfg.ProbeRepeats, "Expected ProbeRepeats 2")
	assert.False(t, cfg.Complexity, "Expected Complexity false")
	assert.True(t, cfg.Memory, "Expected Memory true")
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel debug")
	assert.Equal(t, "json", cfg.Format, "Expected Format json")
	assert.True(t, cfg.Metrics, "Expected Metrics true")
	assert.Equal(t, "/path/to/inputs.db", cfg.InputDB, "Expected InputDB /path/to/inputs.db")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PUZZLEBENCH_CONFIG", "")

	cfg, err := config.Load(nil)
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, config.DefaultRuns, cfg.Runs)
	assert.Equal(t, config.DefaultProbes, cfg.Probes)
	assert.Equal(t, config.DefaultProbeRepeats, cfg.ProbeRepeats)
	assert.True(t, cfg.Complexity)
	assert.True(t, cfg.Memory)
	assert.False(t, cfg.Metrics)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, config.DefaultFormat, cfg.Format)
	assert.NotEmpty(t, cfg.InputDB)
	assert.NotEmpty(t, cfg.LockDir)
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	path := writeConfig(t, `
This is not a valid TOML file
`)
	t.Setenv("PUZZLEBENCH_CONFIG", path)

	_, err := config.Load(nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrReadConfig))
	assert.Contains(t, err.Error(), "Failed to read configuration")
}

func TestInvalidLogLevel(t *testing.T) {
	path := writeConfig(t, `
log_level = "invalid"
`)
	t.Setenv("PUZZLEBENCH_CONFIG", path)

	_, err := config.Load(nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidLogLevel))
	assert.Contains(t, err.Error(), "invalid")
}

func TestInvalidRuns(t *testing.T) {
	t.Setenv("PUZZLEBENCH_CONFIG", "")
	t.Setenv("PUZZLEBENCH_RUNS", "0")

	_, err := config.Load(nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidRuns))
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
runs = 25
`)
	t.Setenv("PUZZLEBENCH_CONFIG", path)
	t.Setenv("PUZZLEBENCH_RUNS", "7")

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Runs)
}

func TestFlagsOverrideEverything(t *testing.T) {
	path := writeConfig(t, `
runs = 25
format = "yaml"
`)
	t.Setenv("PUZZLEBENCH_CONFIG", path)
	t.Setenv("PUZZLEBENCH_RUNS", "7")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--runs", "3", "--log-level", "debug", "--probe-repeats", "4"}))

	cfg, err := config.Load(fs)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Runs, "Expected Runs to be set by flag")
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel to be set by flag")
	assert.Equal(t, 4, cfg.ProbeRepeats, "Expected ProbeRepeats to be set by flag")
	assert.Equal(t, "yaml", cfg.Format, "Expected Format from file when flag unset")
}

func TestExplicitConfigFileOption(t *testing.T) {
	path := writeConfig(t, `
probes = 3
`)
	t.Setenv("PUZZLEBENCH_CONFIG", "")

	cfg, err := config.Load(nil, config.WithConfigFile(path))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Probes)
}

func TestValidateFormat(t *testing.T) {
	cfg := config.Config{
		Runs:         1,
		Probes:       2,
		ProbeRepeats: 1,
		LogLevel:     "info",
		Format:       "xml",
		InputDB:      "x.db",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidFormat))
}

func TestBenchConfig(t *testing.T) {
	cfg := &config.Config{Runs: 7, Probes: 4, ProbeRepeats: 2, Complexity: true, Memory: false}

	got := cfg.BenchConfig()

	assert.Equal(t, 7, got.Runs)
	assert.Equal(t, 4, got.Probes)
	assert.Equal(t, 2, got.ProbeRepeats)
	assert.True(t, got.Complexity)
	assert.False(t, got.Memory)
	assert.NoError(t, got.Validate())
}
