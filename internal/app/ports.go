package app

import (
	"context"

	"github.com/alexanderramin/overtime/internal/domain"
)

// EntrySource produces the raw time entries for an inclusive date range.
// Implemented by the Toggl client; test doubles feed canned entries.
// Entries carry non-negative durations; ordering is not guaranteed.
type EntrySource interface {
	FetchEntries(ctx context.Context, start, end domain.Day) ([]domain.TimeEntry, error)
}

// ReportUseCase computes the extra-time report over a trailing window.
type ReportUseCase interface {
	BuildReport(ctx context.Context, req ReportRequest) (*ReportResponse, error)
}
