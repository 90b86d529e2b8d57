package cli

import (
	"github.com/alexanderramin/overtime/internal/service"
	"github.com/spf13/cobra"
)

// App holds the hooks CLI commands need. The report service is built per
// invocation because the API token may only be known after flag parsing or
// an interactive prompt.
type App struct {
	// NewReport builds a ReportService bound to the given API token.
	// debug forces fetch-call logging on, regardless of environment.
	NewReport func(token string, debug bool) service.ReportService

	// EnvToken is the token resolved from the environment; may be empty.
	EnvToken string

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "overtime" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "overtime",
		Short: "Calculate extra time worked against a daily baseline",
	}

	root.AddCommand(
		newReportCmd(app),
		newExportCmd(app),
	)

	return root
}
