package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/overtime/internal/aggregate"
	"github.com/alexanderramin/overtime/internal/app"
	"github.com/alexanderramin/overtime/internal/domain"
	"github.com/alexanderramin/overtime/internal/report"
)

type reportService struct {
	entries app.EntrySource
	now     func() time.Time
}

func NewReportService(entries app.EntrySource) ReportService {
	return &reportService{
		entries: entries,
		now:     time.Now,
	}
}

func (s *reportService) BuildReport(ctx context.Context, req app.ReportRequest) (*app.ReportResponse, error) {
	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}

	months := req.Months
	if months <= 0 {
		months = 3
	}
	baseline := req.BaselineSeconds
	if baseline <= 0 {
		baseline = domain.BaselineSeconds
	}

	start := domain.DayOf(now.AddDate(0, -months, 0))
	end := domain.DayOf(now.AddDate(0, 0, -1))
	if req.IncludeToday {
		end = domain.DayOf(now)
	}

	entries, err := s.entries.FetchEntries(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetching time entries: %w", err)
	}

	sum := aggregate.Aggregate(entries, baseline)

	grid, err := report.Build(sum)
	if err != nil {
		return nil, fmt.Errorf("building report grid: %w", err)
	}

	days, err := buildDayFigures(sum)
	if err != nil {
		return nil, err
	}

	return &app.ReportResponse{
		Start:             start,
		End:               end,
		BaselineSeconds:   baseline,
		Days:              days,
		TotalExtraSeconds: sum.TotalExtra(),
		Grid:              grid,
	}, nil
}

func buildDayFigures(sum *aggregate.Summary) ([]app.DayFigures, error) {
	var days []app.DayFigures
	for _, d := range sum.Days() {
		total, err := sum.TotalFor(d)
		if err != nil {
			return nil, err
		}
		extra, err := sum.ExtraFor(d)
		if err != nil {
			return nil, err
		}
		cum, err := sum.CumulativeFor(d)
		if err != nil {
			return nil, err
		}
		days = append(days, app.DayFigures{
			Day:               d,
			Entries:           sum.Bucket(d),
			TotalSeconds:      total,
			ExtraSeconds:      extra,
			CumulativeSeconds: cum,
		})
	}
	return days, nil
}
