package format

import (
	"fmt"
	"math"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// FormatDuration rounds seconds to the nearest whole second, ties to even,
// and renders the result as "H:MM:SS", or "D day(s), H:MM:SS" once it spans
// at least one whole day. Hours are unpadded; minutes and seconds are
// zero-padded to two digits.
//
// Parameters:
//   - seconds: The duration in seconds. May be fractional.
//
// Returns:
//   - string: The formatted duration, "0:00:00" for zero.
func FormatDuration(seconds float64) string {
	return FormatSeconds(int64(math.RoundToEven(seconds)))
}

// FormatSeconds renders a whole number of seconds in the same layout as
// FormatDuration. Negative values borrow a whole day, so -1 renders as
// "-1 day, 23:59:59".
func FormatSeconds(total int64) string {
	days := total / secondsPerDay
	rem := total % secondsPerDay
	if rem < 0 {
		rem += secondsPerDay
		days--
	}

	clock := fmt.Sprintf("%d:%02d:%02d", rem/3600, rem/60%60, rem%60)
	if days == 0 {
		return clock
	}

	unit := "days"
	if days == 1 || days == -1 {
		unit = "day"
	}
	return fmt.Sprintf("%d %s, %s", days, unit, clock)
}

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
