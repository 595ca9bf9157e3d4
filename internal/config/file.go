package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Report ReportConfig `toml:"report"`
}

// ReportConfig maps report-related settings. Nil fields are unset.
type ReportConfig struct {
	Rate          *float64  `toml:"rate"`
	Probabilities []float64 `toml:"probabilities"`
	Lengths       []int     `toml:"lengths"`
	Alphabet      *int      `toml:"alphabet"`
	Trials        *bool     `toml:"trials"`
	Output        *string   `toml:"output"`
	MetricsFile   *string   `toml:"metrics-file"`
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "matchtime", "config.toml")
}

// LoadFile reads a TOML config from path. A missing file is an error only
// when required is set.
func LoadFile(path string, required bool) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

func (f FileConfig) apply(c *AppConfig) {
	r := f.Report
	if r.Rate != nil {
		c.Rate = *r.Rate
	}
	if r.Probabilities != nil {
		c.Probabilities = r.Probabilities
	}
	if r.Lengths != nil {
		c.Lengths = r.Lengths
	}
	if r.Alphabet != nil {
		c.Alphabet = *r.Alphabet
	}
	if r.Trials != nil {
		c.Trials = *r.Trials
	}
	if r.Output != nil {
		c.OutputFile = *r.Output
	}
	if r.MetricsFile != nil {
		c.MetricsFile = *r.MetricsFile
	}
}
