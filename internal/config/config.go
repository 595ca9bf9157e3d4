// Package config resolves the application configuration.
//
// Resolution chain (highest priority first):
//  1. CLI flags (--rate, --probabilities, ...)
//  2. Environment variables (MATCHTIME_RATE, ...)
//  3. TOML config file (--config, MATCHTIME_CONFIG, or the XDG default)
//  4. Built-in defaults (18,000,000 trials/s, base 64, n = 4..8)
package config

import (
	"github.com/spf13/pflag"

	apperrors "github.com/agbru/matchtime/internal/errors"
	"github.com/agbru/matchtime/internal/estimate"
)

// EnvPrefix is the prefix for all environment variables.
const EnvPrefix = "MATCHTIME_"

// Log formats accepted by --log-format.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Rate is the number of trials per second.
	Rate float64
	// Probabilities are the confidence thresholds in percent.
	Probabilities []float64
	// Lengths are the symbol lengths to tabulate.
	Lengths []int
	// Alphabet is the number of symbols per position.
	Alphabet int
	// Trials appends a table of expected trial counts.
	Trials bool
	// OutputFile is an optional path the plain report is saved to.
	OutputFile string
	// MetricsFile is an optional path for a Prometheus textfile.
	MetricsFile string
	// Verbose enables debug logging on stderr.
	Verbose bool
	// LogFormat selects console or JSON log lines on stderr.
	LogFormat string
	// NoColor disables colored output.
	NoColor bool
	// ConfigFile is the TOML file to load.
	ConfigFile string
}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		Rate:          estimate.DefaultRate,
		Probabilities: estimate.DefaultProbabilities(),
		Lengths:       estimate.DefaultLengths(),
		Alphabet:      estimate.DefaultAlphabet,
		LogFormat:     LogFormatConsole,
	}
}

// Params returns the estimation parameters of c.
func (c AppConfig) Params() estimate.Params {
	return estimate.Params{
		Rate:          c.Rate,
		Probabilities: append([]float64(nil), c.Probabilities...),
		Lengths:       append([]int(nil), c.Lengths...),
		Alphabet:      c.Alphabet,
	}
}

// RegisterFlags binds every configuration flag on fs to dst, using the
// built-in defaults.
func RegisterFlags(fs *pflag.FlagSet, dst *AppConfig) {
	def := Default()
	fs.Float64VarP(&dst.Rate, "rate", "r", def.Rate, "trials per second")
	fs.Float64SliceVarP(&dst.Probabilities, "probabilities", "p", def.Probabilities, "comma-separated confidence thresholds in percent, one column each")
	fs.IntSliceVarP(&dst.Lengths, "lengths", "n", def.Lengths, "comma-separated symbol lengths, one row each")
	fs.IntVarP(&dst.Alphabet, "alphabet", "b", def.Alphabet, "number of distinct symbols per position")
	fs.BoolVar(&dst.Trials, "trials", false, "also print the expected number of trials")
	fs.StringVarP(&dst.OutputFile, "output", "o", "", "also save the plain report to this file")
	fs.StringVar(&dst.MetricsFile, "metrics-file", "", "write Prometheus metrics for every cell to this textfile")
	fs.BoolVarP(&dst.Verbose, "verbose", "v", false, "log every computed cell on stderr")
	fs.StringVar(&dst.LogFormat, "log-format", def.LogFormat, "log line format on stderr: console or json")
	fs.BoolVar(&dst.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&dst.ConfigFile, "config", "", "TOML config file (default $XDG_CONFIG_HOME/matchtime/config.toml)")
}

// Resolve merges defaults, the config file, the environment and the flags
// explicitly set on fs, then validates the result. flags holds the values
// bound by RegisterFlags.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A ConfigError describing every problem found.
func Resolve(fs *pflag.FlagSet, flags AppConfig) (AppConfig, error) {
	cfg := Default()

	path, explicit := configPath(fs, flags)
	file, err := LoadFile(path, explicit)
	if err != nil {
		return AppConfig{}, apperrors.ConfigError{Message: "invalid config file", Cause: err}
	}
	file.apply(&cfg)
	cfg.ConfigFile = path

	if err := applyEnvOverrides(&cfg, fs); err != nil {
		return AppConfig{}, apperrors.ConfigError{Message: "invalid environment", Cause: err}
	}
	applyFlagOverrides(&cfg, fs, flags)

	if err := Validate(cfg); err != nil {
		return AppConfig{}, apperrors.ConfigError{Message: "invalid configuration", Cause: err}
	}
	return cfg, nil
}

func configPath(fs *pflag.FlagSet, flags AppConfig) (string, bool) {
	if fs.Changed("config") {
		return flags.ConfigFile, true
	}
	if v := getEnvString("CONFIG", ""); v != "" {
		return v, true
	}
	return DefaultConfigPath(), false
}

// flagOverride copies one flag value into the resolved configuration.
type flagOverride struct {
	name  string
	apply func(dst *AppConfig, src AppConfig)
}

var flagOverrides = []flagOverride{
	{"rate", func(d *AppConfig, s AppConfig) { d.Rate = s.Rate }},
	{"probabilities", func(d *AppConfig, s AppConfig) { d.Probabilities = s.Probabilities }},
	{"lengths", func(d *AppConfig, s AppConfig) { d.Lengths = s.Lengths }},
	{"alphabet", func(d *AppConfig, s AppConfig) { d.Alphabet = s.Alphabet }},
	{"trials", func(d *AppConfig, s AppConfig) { d.Trials = s.Trials }},
	{"output", func(d *AppConfig, s AppConfig) { d.OutputFile = s.OutputFile }},
	{"metrics-file", func(d *AppConfig, s AppConfig) { d.MetricsFile = s.MetricsFile }},
	{"verbose", func(d *AppConfig, s AppConfig) { d.Verbose = s.Verbose }},
	{"log-format", func(d *AppConfig, s AppConfig) { d.LogFormat = s.LogFormat }},
	{"no-color", func(d *AppConfig, s AppConfig) { d.NoColor = s.NoColor }},
}

func applyFlagOverrides(cfg *AppConfig, fs *pflag.FlagSet, flags AppConfig) {
	for _, o := range flagOverrides {
		if fs.Changed(o.name) {
			o.apply(cfg, flags)
		}
	}
}
