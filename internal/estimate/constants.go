package estimate

// Built-in parameters of the default report.
const (
	// DefaultRate is the measured trial rate, in trials per second, of the
	// vanity-key searcher the report was written for.
	DefaultRate = 18_000_000

	// DefaultAlphabet is the number of symbols of the base64 alphabet.
	DefaultAlphabet = 64
)

// DefaultProbabilities returns the default confidence thresholds, in percent.
func DefaultProbabilities() []float64 {
	return []float64{50, 95, 99}
}

// DefaultLengths returns the default symbol lengths.
func DefaultLengths() []int {
	return []int{4, 5, 6, 7, 8}
}

const (
	secondsPerDay = 24 * 60 * 60

	// MaxSeconds is the longest renderable duration: 999,999,999 days
	// plus one day minus a second.
	MaxSeconds = 999_999_999*secondsPerDay + secondsPerDay - 1
)
