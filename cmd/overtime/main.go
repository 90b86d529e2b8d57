package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/overtime/internal/cli"
	"github.com/alexanderramin/overtime/internal/service"
	"github.com/alexanderramin/overtime/internal/toggl"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg := toggl.LoadConfig()

	app := &cli.App{
		EnvToken: cfg.Token,
		NewReport: func(token string, debug bool) service.ReportService {
			c := cfg
			c.Token = token

			var observer toggl.Observer = toggl.NoopObserver{}
			if c.LogCalls || debug {
				observer = toggl.NewLogObserver(os.Stderr)
			}
			return service.NewReportService(toggl.NewClient(c, observer))
		},
	}

	// Detect interactive terminal for the spinner and the token prompt.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
