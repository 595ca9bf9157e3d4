package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"

	apperrors "github.com/agbru/matchtime/internal/errors"
)

// resolve parses args like the CLI does, with an empty XDG config home.
func resolve(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var flags AppConfig
	fs := pflag.NewFlagSet("matchtime", pflag.ContinueOnError)
	RegisterFlags(fs, &flags)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("flag parse failed: %v", err)
	}
	return Resolve(fs, flags)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolve_Defaults(t *testing.T) {
	cfg, err := resolve(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Default()
	if cfg.Rate != want.Rate || cfg.Alphabet != want.Alphabet {
		t.Errorf("Rate/Alphabet = %v/%d, want %v/%d", cfg.Rate, cfg.Alphabet, want.Rate, want.Alphabet)
	}
	if !reflect.DeepEqual(cfg.Probabilities, []float64{50, 95, 99}) {
		t.Errorf("Probabilities = %v", cfg.Probabilities)
	}
	if !reflect.DeepEqual(cfg.Lengths, []int{4, 5, 6, 7, 8}) {
		t.Errorf("Lengths = %v", cfg.Lengths)
	}
	if cfg.Trials || cfg.Verbose || cfg.OutputFile != "" || cfg.MetricsFile != "" {
		t.Errorf("optional features should be off by default: %+v", cfg)
	}
	if cfg.LogFormat != LogFormatConsole {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, LogFormatConsole)
	}
}

func TestResolve_Flags(t *testing.T) {
	cfg, err := resolve(t, "-r", "1e9", "--probabilities", "10,90", "-n", "3,4", "-b", "58", "--trials", "-o", "out.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rate != 1e9 || cfg.Alphabet != 58 || !cfg.Trials || cfg.OutputFile != "out.txt" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Probabilities, []float64{10, 90}) {
		t.Errorf("Probabilities = %v", cfg.Probabilities)
	}
	if !reflect.DeepEqual(cfg.Lengths, []int{3, 4}) {
		t.Errorf("Lengths = %v", cfg.Lengths)
	}
}

func TestResolve_Params(t *testing.T) {
	cfg, err := resolve(t, "-n", "6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := cfg.Params()
	if p.Rate != cfg.Rate || p.Alphabet != cfg.Alphabet || !reflect.DeepEqual(p.Lengths, []int{6}) {
		t.Errorf("Params() = %+v", p)
	}
	p.Lengths[0] = 99
	if cfg.Lengths[0] != 6 {
		t.Error("Params() should copy slices")
	}
}

func TestResolve_Precedence(t *testing.T) {
	path := writeConfig(t, `
[report]
rate = 1000.0
alphabet = 32
lengths = [2, 3]
`)

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := resolve(t, "--config", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Rate != 1000 || cfg.Alphabet != 32 || !reflect.DeepEqual(cfg.Lengths, []int{2, 3}) {
			t.Errorf("file values not applied: %+v", cfg)
		}
		if !reflect.DeepEqual(cfg.Probabilities, []float64{50, 95, 99}) {
			t.Errorf("unset file keys should keep defaults, got %v", cfg.Probabilities)
		}
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("MATCHTIME_RATE", "2000")
		t.Setenv("MATCHTIME_LENGTHS", "5, 6")
		cfg, err := resolve(t, "--config", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Rate != 2000 || !reflect.DeepEqual(cfg.Lengths, []int{5, 6}) {
			t.Errorf("env values not applied: %+v", cfg)
		}
		if cfg.Alphabet != 32 {
			t.Errorf("file alphabet should survive, got %d", cfg.Alphabet)
		}
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("MATCHTIME_RATE", "2000")
		cfg, err := resolve(t, "--config", path, "--rate", "3000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Rate != 3000 {
			t.Errorf("Rate = %v, want 3000", cfg.Rate)
		}
	})

	t.Run("config path from env", func(t *testing.T) {
		t.Setenv("MATCHTIME_CONFIG", path)
		cfg, err := resolve(t)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Alphabet != 32 || cfg.ConfigFile != path {
			t.Errorf("config file from env not loaded: %+v", cfg)
		}
	})
}

func TestResolve_LogFormat(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		t.Setenv("MATCHTIME_LOG_FORMAT", " JSON ")
		cfg, err := resolve(t)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.LogFormat != LogFormatJSON {
			t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, LogFormatJSON)
		}
	})

	t.Run("flag overrides env", func(t *testing.T) {
		t.Setenv("MATCHTIME_LOG_FORMAT", "json")
		cfg, err := resolve(t, "--log-format", "console")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.LogFormat != LogFormatConsole {
			t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, LogFormatConsole)
		}
	})
}

func TestResolve_DefaultConfigFile(t *testing.T) {
	home := t.TempDir()
	if err := os.MkdirAll(filepath.Join(home, "matchtime"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, "matchtime", "config.toml"), []byte("[report]\ntrials = true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", home)

	var flags AppConfig
	fs := pflag.NewFlagSet("matchtime", pflag.ContinueOnError)
	RegisterFlags(fs, &flags)
	cfg, err := Resolve(fs, flags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Trials {
		t.Error("default config file should be loaded")
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		args   []string
		config string
		errors int
	}{
		{name: "missing explicit config", args: []string{"--config", "/nonexistent/matchtime.toml"}, errors: 1},
		{name: "malformed config", config: "[report\nrate = ", errors: 1},
		{name: "unknown config key", config: "[report]\nbase = 64\n", errors: 1},
		{name: "malformed env values", env: map[string]string{"MATCHTIME_RATE": "fast", "MATCHTIME_TRIALS": "maybe"}, errors: 2},
		{name: "probability 100", args: []string{"-p", "50,100"}, errors: 1},
		{name: "several invalid values", args: []string{"-r", "0", "-b", "1", "-n", "0,4,4", "-p", "0"}, errors: 5},
		{name: "unknown log format", args: []string{"--log-format", "xml"}, errors: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			args := tt.args
			if tt.config != "" {
				args = append(args, "--config", writeConfig(t, tt.config))
			}

			_, err := resolve(t, args...)
			var configErr apperrors.ConfigError
			if !errors.As(err, &configErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			var merr *multierror.Error
			if errors.As(err, &merr) {
				if len(merr.Errors) != tt.errors {
					t.Errorf("got %d errors, want %d: %v", len(merr.Errors), tt.errors, merr.Errors)
				}
			} else if tt.errors != 1 {
				t.Errorf("expected %d collected errors, got a single error: %v", tt.errors, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	if err := Validate(Default()); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}

	cfg := Default()
	cfg.Probabilities = []float64{50, 50}
	err := Validate(cfg)
	var validationErr apperrors.ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "probabilities" {
		t.Errorf("expected probabilities ValidationError, got %v", err)
	}
}
