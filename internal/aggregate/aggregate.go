// Package aggregate groups raw time entries by calendar day and derives
// per-day totals, extra time against a fixed baseline, and a running
// cumulative extra-time figure in chronological order.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/overtime/internal/domain"
)

// Summary holds everything derived from one batch of time entries. It is
// built once by Aggregate and read-only afterwards.
type Summary struct {
	baseline   int64
	days       []domain.Day
	buckets    map[domain.Day][]int64
	totals     map[domain.Day]int64
	extra      map[domain.Day]int64
	cumulative map[domain.Day]int64
	totalExtra int64
}

// Aggregate consumes entries in input order and derives all per-day figures.
// Input order is arbitrary; days are discovered first-seen and then sorted
// ascending, and that sorted order drives the extra-time and cumulative
// passes. An empty input yields an empty summary with a zero total, not an
// error. Durations are taken at face value.
func Aggregate(entries []domain.TimeEntry, baselineSeconds int64) *Summary {
	s := &Summary{
		baseline:   baselineSeconds,
		buckets:    make(map[domain.Day][]int64),
		totals:     make(map[domain.Day]int64),
		extra:      make(map[domain.Day]int64),
		cumulative: make(map[domain.Day]int64),
	}

	for _, e := range entries {
		if _, seen := s.buckets[e.Day]; !seen {
			s.days = append(s.days, e.Day)
		}
		s.buckets[e.Day] = append(s.buckets[e.Day], e.Duration)
	}

	// Discovery order and presentation order are different invariants.
	// Everything below depends on the ascending order, not on first-seen.
	sort.Slice(s.days, func(i, j int) bool { return s.days[i].Before(s.days[j]) })

	for _, d := range s.days {
		var total int64
		for _, sec := range s.buckets[d] {
			total += sec
		}
		s.totals[d] = total
		s.extra[d] = total - baselineSeconds
	}

	var running int64
	for _, d := range s.days {
		running += s.extra[d]
		s.cumulative[d] = running
	}
	s.totalExtra = running

	return s
}

// Baseline returns the baseline the summary was aggregated against.
func (s *Summary) Baseline() int64 { return s.baseline }

// Days returns the distinct days in ascending chronological order. The
// returned slice must not be modified.
func (s *Summary) Days() []domain.Day { return s.days }

// Bucket returns the individual entry durations for a day in their original
// insertion order, or nil for a day that was never seen.
func (s *Summary) Bucket(d domain.Day) []int64 { return s.buckets[d] }

// TotalFor returns the total worked seconds for a day.
func (s *Summary) TotalFor(d domain.Day) (int64, error) {
	total, ok := s.totals[d]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingDayTotal, d)
	}
	return total, nil
}

// ExtraFor returns the signed extra time worked on a day relative to the
// baseline. Negative means the day came in under the baseline.
func (s *Summary) ExtraFor(d domain.Day) (int64, error) {
	extra, ok := s.extra[d]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingDayTotal, d)
	}
	return extra, nil
}

// CumulativeFor returns the running extra-time total up to and including a
// day, in ascending chronological order.
func (s *Summary) CumulativeFor(d domain.Day) (int64, error) {
	cum, ok := s.cumulative[d]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingDayTotal, d)
	}
	return cum, nil
}

// TotalExtra returns the signed extra time worked over the whole period.
func (s *Summary) TotalExtra() int64 { return s.totalExtra }
