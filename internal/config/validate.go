package config

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"

	apperrors "github.com/agbru/matchtime/internal/errors"
)

// Validate checks c and reports every problem at once.
func Validate(c AppConfig) error {
	var result *multierror.Error
	add := func(field, format string, a ...any) {
		result = multierror.Append(result, apperrors.ValidationError{Field: field, Message: fmt.Sprintf(format, a...)})
	}

	if math.IsNaN(c.Rate) || math.IsInf(c.Rate, 0) || c.Rate <= 0 {
		add("rate", "must be a positive finite number, got %g", c.Rate)
	}
	if c.Alphabet < 2 {
		add("alphabet", "must be at least 2, got %d", c.Alphabet)
	}

	if len(c.Probabilities) == 0 {
		add("probabilities", "at least one value is required")
	}
	seenP := make(map[float64]bool, len(c.Probabilities))
	for _, p := range c.Probabilities {
		if math.IsNaN(p) || p <= 0 || p >= 100 {
			add("probabilities", "%g is outside (0, 100)", p)
		}
		if seenP[p] {
			add("probabilities", "%g is listed more than once", p)
		}
		seenP[p] = true
	}

	if len(c.Lengths) == 0 {
		add("lengths", "at least one value is required")
	}
	seenN := make(map[int]bool, len(c.Lengths))
	for _, n := range c.Lengths {
		if n < 1 {
			add("lengths", "%d is below 1", n)
		}
		if seenN[n] {
			add("lengths", "%d is listed more than once", n)
		}
		seenN[n] = true
	}

	if c.LogFormat != LogFormatConsole && c.LogFormat != LogFormatJSON {
		add("log-format", "must be %q or %q, got %q", LogFormatConsole, LogFormatJSON, c.LogFormat)
	}

	return result.ErrorOrNil()
}
