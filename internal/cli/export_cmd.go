package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/overtime/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var flags windowFlags
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the extra-time report as a ;-separated file",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := runReport(app, &flags)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if _, err := resp.Grid.WriteTo(f); err != nil {
				f.Close()
				return fmt.Errorf("writing %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", out, err)
			}

			if flags.debug {
				fmt.Print(formatter.FormatDebug(resp))
			}
			fmt.Printf("Wrote %s (%d days)\n", out, len(resp.Days))
			fmt.Printf("Total extra time worked: %s\n", formatter.FormatHMS(resp.TotalExtraSeconds))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&out, "out", "results.csv", "Destination file for the report grid")

	return cmd
}
