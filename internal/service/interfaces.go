package service

import (
	"context"

	"github.com/alexanderramin/overtime/internal/contract"
)

type ReportService interface {
	BuildReport(ctx context.Context, req contract.ReportRequest) (*contract.ReportResponse, error)
}
