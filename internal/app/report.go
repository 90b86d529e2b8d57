package app

import (
	"time"

	"github.com/alexanderramin/overtime/internal/domain"
	"github.com/alexanderramin/overtime/internal/report"
)

// ReportRequest describes one extra-time computation over a trailing window
// of whole months ending yesterday (or today when IncludeToday is set).
type ReportRequest struct {
	Months          int
	IncludeToday    bool
	BaselineSeconds int64
	Now             *time.Time // overrides the service clock, for tests
}

// NewReportRequest returns a request with the defaults: three trailing
// months against the 7-hour baseline, excluding today.
func NewReportRequest() ReportRequest {
	return ReportRequest{
		Months:          3,
		BaselineSeconds: domain.BaselineSeconds,
	}
}

// DayFigures is one day's aggregated numbers, ready for presentation.
type DayFigures struct {
	Day               domain.Day
	Entries           []int64
	TotalSeconds      int64
	ExtraSeconds      int64
	CumulativeSeconds int64
}

// ReportResponse carries the computed window, the per-day figures in
// ascending chronological order, the scalar total, and the padded grid.
type ReportResponse struct {
	Start             domain.Day
	End               domain.Day
	BaselineSeconds   int64
	Days              []DayFigures
	TotalExtraSeconds int64
	Grid              *report.Grid
}
