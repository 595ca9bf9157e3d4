package estimate

import (
	"math"

	apperrors "github.com/agbru/matchtime/internal/errors"
)

// Params holds the inputs of one report grid.
type Params struct {
	// Rate is the number of trials executed per second.
	Rate float64
	// Probabilities are the confidence thresholds in percent, one per column.
	Probabilities []float64
	// Lengths are the symbol lengths, one per row.
	Lengths []int
	// Alphabet is the number of distinct symbols per position.
	Alphabet int
}

// DefaultParams returns the parameters of the built-in report.
func DefaultParams() Params {
	return Params{
		Rate:          DefaultRate,
		Probabilities: DefaultProbabilities(),
		Lengths:       DefaultLengths(),
		Alphabet:      DefaultAlphabet,
	}
}

// Cell is the estimate for a single (length, probability) pair.
type Cell struct {
	Length      int
	Probability float64
	// Trials is the expected number of trials.
	Trials float64
	// Seconds is Trials divided by the rate, before rounding.
	Seconds float64
	// Rounded is Seconds rounded half to even.
	Rounded int64
}

// ExpectedTrials returns the number of independent trials, each succeeding
// with probability 1/alphabet^length, needed to reach a cumulative success
// probability of probability percent.
//
// Parameters:
//   - probability: The confidence threshold in percent, in (0, 100).
//   - length: The number of symbols that must match, at least 1.
//   - alphabet: The number of symbols per position, at least 2.
//
// Returns:
//   - float64: The expected number of trials.
//   - error: A DomainError for out-of-range inputs, or a NumericError when
//     the per-trial probability underflows or the result is not finite.
func ExpectedTrials(probability float64, length, alphabet int) (float64, error) {
	if err := checkProbability(probability); err != nil {
		return 0, err
	}
	if length < 1 {
		return 0, apperrors.NewDomainError("length", float64(length), "must be at least 1")
	}
	if alphabet < 2 {
		return 0, apperrors.NewDomainError("alphabet", float64(alphabet), "must be greater than 1")
	}

	// alphabet^-length is computed directly so that it degrades to a
	// subnormal instead of overflowing alphabet^length first.
	success := math.Pow(float64(alphabet), -float64(length))
	if success == 0 {
		return 0, apperrors.NumericError{Quantity: "per-trial success probability", Value: success}
	}

	trials := math.Log1p(-probability/100) / math.Log1p(-success)
	if math.IsInf(trials, 0) || math.IsNaN(trials) {
		return 0, apperrors.NumericError{Quantity: "expected trials", Value: trials}
	}
	return trials, nil
}

// ExpectedSeconds converts a trial count into seconds at the given rate.
//
// Returns:
//   - float64: The unrounded number of seconds.
//   - error: A DomainError for a non-positive rate, or a NumericError when
//     the result rounds to more than MaxSeconds.
func ExpectedSeconds(trials, rate float64) (float64, error) {
	if err := checkRate(rate); err != nil {
		return 0, err
	}
	seconds := trials / rate
	if math.IsNaN(seconds) || RoundSeconds(seconds) > MaxSeconds {
		return 0, apperrors.NumericError{Quantity: "expected seconds", Value: seconds}
	}
	return seconds, nil
}

// RoundSeconds rounds to the nearest whole second, ties to even.
func RoundSeconds(seconds float64) int64 {
	return int64(math.RoundToEven(seconds))
}

// Estimate computes a single cell.
func Estimate(probability float64, length, alphabet int, rate float64) (Cell, error) {
	trials, err := ExpectedTrials(probability, length, alphabet)
	if err != nil {
		return Cell{}, err
	}
	seconds, err := ExpectedSeconds(trials, rate)
	if err != nil {
		return Cell{}, err
	}
	return Cell{
		Length:      length,
		Probability: probability,
		Trials:      trials,
		Seconds:     seconds,
		Rounded:     RoundSeconds(seconds),
	}, nil
}

// Validate checks every parameter and returns the first DomainError found.
func (p Params) Validate() error {
	if err := checkRate(p.Rate); err != nil {
		return err
	}
	if p.Alphabet < 2 {
		return apperrors.NewDomainError("alphabet", float64(p.Alphabet), "must be greater than 1")
	}
	for _, prob := range p.Probabilities {
		if err := checkProbability(prob); err != nil {
			return err
		}
	}
	for _, n := range p.Lengths {
		if n < 1 {
			return apperrors.NewDomainError("length", float64(n), "must be at least 1")
		}
	}
	return nil
}

// Grid computes one row per length and one cell per probability, in the
// order given by p. The first failing cell aborts the computation.
func Grid(p Params) ([][]Cell, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rows := make([][]Cell, 0, len(p.Lengths))
	for _, n := range p.Lengths {
		row := make([]Cell, 0, len(p.Probabilities))
		for _, prob := range p.Probabilities {
			cell, err := Estimate(prob, n, p.Alphabet, p.Rate)
			if err != nil {
				return nil, apperrors.WrapError(err, "n=%d p=%g%%", n, prob)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func checkProbability(p float64) error {
	if math.IsNaN(p) || p <= 0 || p >= 100 {
		return apperrors.NewDomainError("probability", p, "must be within (0, 100)")
	}
	return nil
}

func checkRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return apperrors.NewDomainError("rate", rate, "must be a positive finite number")
	}
	return nil
}
