package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/overtime/internal/cli/formatter"
	"github.com/alexanderramin/overtime/internal/contract"
	"github.com/spf13/cobra"
)

// windowFlags are the flags shared by every command that computes a report.
type windowFlags struct {
	token        string
	months       int
	includeToday bool
	baseline     int64
	debug        bool
}

func (f *windowFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.token, "token", "", "Toggl API token (defaults to TOGGL_API_TOKEN)")
	cmd.Flags().IntVar(&f.months, "months", 3, "Length of the trailing window in months")
	cmd.Flags().BoolVar(&f.includeToday, "include-today", false, "Include the current day in the calculation")
	cmd.Flags().Int64Var(&f.baseline, "baseline", 0, "Working-day baseline in seconds (default 25200 = 7h)")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "Print per-day extra time and raw second counts")
}

func (f *windowFlags) request() contract.ReportRequest {
	req := contract.NewReportRequest()
	if f.months > 0 {
		req.Months = f.months
	}
	req.IncludeToday = f.includeToday
	if f.baseline > 0 {
		req.BaselineSeconds = f.baseline
	}
	return req
}

// runReport resolves the token, shows a spinner on a TTY, and builds the
// report.
func runReport(app *App, flags *windowFlags) (*contract.ReportResponse, error) {
	token, err := resolveToken(app, flags.token)
	if err != nil {
		return nil, err
	}

	stop := func() {}
	if app.IsInteractive() {
		stop = formatter.StartSpinner("Fetching time entries from Toggl")
	}
	resp, err := app.NewReport(token, flags.debug).BuildReport(context.Background(), flags.request())
	stop()
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func newReportCmd(app *App) *cobra.Command {
	var flags windowFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show extra time worked over the trailing window",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := runReport(app, &flags)
			if err != nil {
				return err
			}

			if flags.debug {
				fmt.Print(formatter.FormatDebug(resp))
			}
			fmt.Print(formatter.FormatReport(resp))
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
