package testutil

import (
	"time"

	"github.com/alexanderramin/overtime/internal/domain"
)

// MustDay parses a YYYY-MM-DD label and panics on failure. For fixtures only.
func MustDay(s string) domain.Day {
	d, err := domain.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Entry builds a TimeEntry on the given day.
func Entry(day string, durationSeconds int64) domain.TimeEntry {
	return domain.TimeEntry{Day: MustDay(day), Duration: durationSeconds}
}

// Entries builds a batch of entries all on the same day.
func Entries(day string, durations ...int64) []domain.TimeEntry {
	out := make([]domain.TimeEntry, 0, len(durations))
	for _, d := range durations {
		out = append(out, Entry(day, d))
	}
	return out
}

// At returns a fixed UTC instant on the given day, for injecting a clock.
func At(day string, hour int) time.Time {
	d := MustDay(day)
	return time.Date(d.Year, d.Month, d.Date, hour, 0, 0, 0, time.UTC)
}
