package formatter

import (
	"fmt"

	"github.com/alexanderramin/overtime/internal/domain"
)

// FormatHMS renders a signed number of seconds as XhYminZsec with a single
// leading minus sign when negative.
func FormatHMS(seconds int64) string {
	return domain.ClockFromSeconds(seconds).String()
}

// FormatSignedHMS is like FormatHMS but keeps an explicit "+" on positive
// values, for columns where the sign carries the meaning.
func FormatSignedHMS(seconds int64) string {
	if seconds > 0 {
		return "+" + FormatHMS(seconds)
	}
	return FormatHMS(seconds)
}

// FormatDayRange renders an inclusive day window as "start → end".
func FormatDayRange(start, end domain.Day) string {
	return fmt.Sprintf("%s → %s", start, end)
}
