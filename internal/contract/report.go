package contract

import "github.com/alexanderramin/overtime/internal/app"

type ReportRequest = app.ReportRequest

func NewReportRequest() ReportRequest {
	return app.NewReportRequest()
}

type DayFigures = app.DayFigures

type ReportResponse = app.ReportResponse
