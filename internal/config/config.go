package config

import (
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/mutker/puzzlebench/internal/bench"
	"codeberg.org/mutker/puzzlebench/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultRuns         = 100
	DefaultProbes       = 5
	DefaultProbeRepeats = 3
	DefaultLogLevel     = "info"
	DefaultFormat       = "table"

	defaultEnvPrefix  = "PUZZLEBENCH"
	configName        = "puzzlebench"
	configType        = "toml"
	minProbes         = 2
	inputDBFileName   = "inputs.db"
	appDirectoryName  = "puzzlebench"
	configPathEnvName = "CONFIG"
)

type Config struct {
	Runs         int    `mapstructure:"runs"`
	Probes       int    `mapstructure:"probes"`
	ProbeRepeats int    `mapstructure:"probe_repeats"`
	Complexity   bool   `mapstructure:"complexity"`
	Memory       bool   `mapstructure:"memory"`
	LogLevel     string `mapstructure:"log_level"`
	Format       string `mapstructure:"format"`
	Metrics      bool   `mapstructure:"metrics"`
	InputDB      string `mapstructure:"input_db"`
	LockDir      string `mapstructure:"lock_dir"`
}

// flagKeys maps command line flag names onto configuration keys.
var flagKeys = map[string]string{
	"runs":          "runs",
	"probes":        "probes",
	"probe-repeats": "probe_repeats",
	"complexity":    "complexity",
	"memory":        "memory",
	"log-level":     "log_level",
	"format":        "format",
	"metrics":       "metrics",
	"input-db":      "input_db",
	"lock-dir":      "lock_dir",
}

// RegisterFlags adds every configuration flag to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int("runs", DefaultRuns, "Number of timed runs per part")
	fs.Int("probes", DefaultProbes, "Number of input sizes probed for complexity estimation")
	fs.Int("probe-repeats", DefaultProbeRepeats, "Timed repeats per probe size")
	fs.Bool("complexity", true, "Estimate time complexity")
	fs.Bool("memory", true, "Sample resident memory and CPU time")
	fs.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	fs.String("format", DefaultFormat, "Report format (table, json, yaml)")
	fs.Bool("metrics", false, "Print collected metrics in Prometheus text format")
	fs.String("input-db", "", "Path to the puzzle input cache")
	fs.String("lock-dir", "", "Directory for the measurement lock file")
}

// Load resolves configuration from flags, environment, config file and
// defaults, in that order of precedence. fs may be nil.
func Load(fs *pflag.FlagSet, opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := options{envPrefix: defaultEnvPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	configPath := o.configPath
	if configPath == "" {
		configPath = os.Getenv(o.envPrefix + "_" + configPathEnvName)
	}

	if err := readConfigFile(v, configPath); err != nil {
		return nil, err
	}

	if fs != nil {
		for name, key := range flagKeys {
			flag := fs.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, errFactory.Wrap(errors.ErrBindFlags, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("runs", DefaultRuns)
	v.SetDefault("probes", DefaultProbes)
	v.SetDefault("probe_repeats", DefaultProbeRepeats)
	v.SetDefault("complexity", true)
	v.SetDefault("memory", true)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("metrics", false)
	v.SetDefault("input_db", defaultInputDB())
	v.SetDefault("lock_dir", os.TempDir())
}

func readConfigFile(v *viper.Viper, path string) error {
	errFactory := errors.New()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(configType)
		if err := v.ReadInConfig(); err != nil {
			return errFactory.Wrap(errors.ErrReadConfig, err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, appDirectoryName))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	return nil
}

func defaultInputDB() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, appDirectoryName, inputDBFileName)
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Runs < 1 {
		return errFactory.WithData(errors.ErrInvalidRuns, c.Runs)
	}

	if c.Probes < minProbes {
		return errFactory.WithData(errors.ErrInvalidConfig, "probes must be at least 2")
	}

	if c.ProbeRepeats < 1 {
		return errFactory.WithData(errors.ErrInvalidConfig, "probe_repeats must be at least 1")
	}

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	if !Format(c.Format).IsValid() {
		return errFactory.WithData(errors.ErrInvalidFormat, c.Format)
	}

	if c.InputDB == "" {
		return errFactory.WithData(errors.ErrMissingConfig, "input_db")
	}

	return nil
}

// BenchConfig returns the measurement settings.
func (c *Config) BenchConfig() bench.Config {
	return bench.Config{
		Runs:         c.Runs,
		Probes:       c.Probes,
		ProbeRepeats: c.ProbeRepeats,
		Complexity:   c.Complexity,
		Memory:       c.Memory,
	}
}
