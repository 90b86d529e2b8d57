package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/overtime/internal/contract"
)

// FormatReport renders the full terminal report: the computed window, one
// table row per day in chronological order, and the overall total.
func FormatReport(resp *contract.ReportResponse) string {
	var b strings.Builder

	b.WriteString(Header("Extra time worked"))
	b.WriteString("\n")
	b.WriteString(Dim(FormatDayRange(resp.Start, resp.End)))
	b.WriteString("\n\n")

	if len(resp.Days) == 0 {
		b.WriteString(Dim("No time entries in the period."))
		b.WriteString("\n\n")
		b.WriteString(formatTotalLine(resp.TotalExtraSeconds))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"Day", "Entries", "Worked", "Extra", "Cumulated"}
	rows := make([][]string, 0, len(resp.Days))
	for _, d := range resp.Days {
		rows = append(rows, []string{
			d.Day.String(),
			strconv.Itoa(len(d.Entries)),
			FormatHMS(d.TotalSeconds),
			ExtraTimeStyle(d.ExtraSeconds).Render(FormatSignedHMS(d.ExtraSeconds)),
			ExtraTimeStyle(d.CumulativeSeconds).Render(FormatSignedHMS(d.CumulativeSeconds)),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(formatTotalLine(resp.TotalExtraSeconds))
	b.WriteString("\n")

	return b.String()
}

// FormatDebug renders the per-day extra-time lines and the raw seconds
// figure shown in debug mode.
func FormatDebug(resp *contract.ReportResponse) string {
	var b strings.Builder
	for _, d := range resp.Days {
		fmt.Fprintf(&b, "Extra time worked at day %s: %d\n", d.Day, d.ExtraSeconds)
	}
	fmt.Fprintf(&b, "Extra time worked in seconds: %d\n", resp.TotalExtraSeconds)
	return b.String()
}

func formatTotalLine(seconds int64) string {
	total := ExtraTimeStyle(seconds).Render(FormatHMS(seconds))
	return fmt.Sprintf("%s %s", Bold("Total extra time worked:"), total)
}
