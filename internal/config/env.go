// This file contains environment variable utilities for configuration override.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// parseBool accepts "true", "1", "yes" as true and "false", "0", "no" as
// false (case-insensitive).
func parseBool(val string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", val)
}

// parseFloatList parses a comma-separated list such as "50,95,99".
func parseFloatList(val string) ([]float64, error) {
	parts := strings.Split(val, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", part)
		}
		out = append(out, f)
	}
	return out, nil
}

// parseIntList parses a comma-separated list such as "4,5,6".
func parseIntList(val string) ([]int, error) {
	parts := strings.Split(val, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the MATCHTIME_ prefix) to the CLI flag
// it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string) error
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"RATE", "rate", func(c *AppConfig, v string) error {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", v)
		}
		c.Rate = parsed
		return nil
	}},
	{"PROBABILITIES", "probabilities", func(c *AppConfig, v string) error {
		parsed, err := parseFloatList(v)
		if err != nil {
			return err
		}
		c.Probabilities = parsed
		return nil
	}},
	{"LENGTHS", "lengths", func(c *AppConfig, v string) error {
		parsed, err := parseIntList(v)
		if err != nil {
			return err
		}
		c.Lengths = parsed
		return nil
	}},
	{"ALPHABET", "alphabet", func(c *AppConfig, v string) error {
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid integer %q", v)
		}
		c.Alphabet = parsed
		return nil
	}},
	{"TRIALS", "trials", func(c *AppConfig, v string) error {
		parsed, err := parseBool(v)
		if err != nil {
			return err
		}
		c.Trials = parsed
		return nil
	}},
	{"OUTPUT", "output", func(c *AppConfig, v string) error {
		c.OutputFile = v
		return nil
	}},
	{"METRICS_FILE", "metrics-file", func(c *AppConfig, v string) error {
		c.MetricsFile = v
		return nil
	}},
	{"VERBOSE", "verbose", func(c *AppConfig, v string) error {
		parsed, err := parseBool(v)
		if err != nil {
			return err
		}
		c.Verbose = parsed
		return nil
	}},
	{"LOG_FORMAT", "log-format", func(c *AppConfig, v string) error {
		c.LogFormat = strings.ToLower(strings.TrimSpace(v))
		return nil
	}},
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > file.
//
// Supported environment variables (all prefixed with MATCHTIME_):
//   - RATE, PROBABILITIES, LENGTHS, ALPHABET, TRIALS, OUTPUT,
//     METRICS_FILE, VERBOSE, LOG_FORMAT, CONFIG
//
// Every malformed value is reported; valid ones are still applied.
func applyEnvOverrides(config *AppConfig, fs *pflag.FlagSet) error {
	var result *multierror.Error
	for _, o := range envOverrides {
		if fs.Changed(o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			if err := o.apply(config, val); err != nil {
				result = multierror.Append(result, fmt.Errorf("%s%s: %w", EnvPrefix, o.envKey, err))
			}
		}
	}
	return result.ErrorOrNil()
}
