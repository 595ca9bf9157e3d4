package format

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatTrials renders an expected trial count rounded to a whole number
// with thousands separators, e.g. "11,629,080".
func FormatTrials(trials float64) string {
	return humanize.Commaf(math.Round(trials))
}

// FormatPercent renders a probability threshold with the shortest
// representation that round-trips, followed by a percent sign.
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}
