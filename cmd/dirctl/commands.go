package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"founderhub/internal/client"
	"founderhub/internal/importer"
)

func (a *cli) importCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "import <founders|startups> <file.csv>",
		Short: "Bulk create or update records from a CSV file",
		Long: `Uploads a CSV file with a header row. Founders are matched by email and
startups by name; matching rows update the stored record, unchanged rows are
skipped. With --dry-run the server reports what would happen without writing.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := importer.ParseKind(args[0])
			if err != nil {
				return err
			}
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			ctx, cancel := a.context(cmd.Context())
			defer cancel()

			sum, err := a.client.ImportCSV(ctx, kind, filepath.Base(args[1]), f, dryRun)
			if err != nil {
				return err
			}
			if err := a.printer().summary(sum); err != nil {
				return err
			}
			if sum.Failed > 0 {
				return fmt.Errorf("%d of %d rows failed", sum.Failed, sum.Total)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate and report without writing")
	return cmd
}

func (a *cli) calendarCmd() *cobra.Command {
	var req client.CalendarRequest
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the events of one month as a grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd.Context())
			defer cancel()

			m, err := a.client.Calendar(ctx, req)
			if err != nil {
				return err
			}
			return a.printer().month(m)
		},
	}
	cmd.Flags().IntVar(&req.Year, "year", 0, "year (default: current)")
	cmd.Flags().IntVar(&req.Month, "month", 0, "month 1-12 (default: current)")
	cmd.Flags().StringVar(&req.WeekStart, "week-start", "", "first day of the week, e.g. monday (default: sunday)")
	cmd.Flags().StringVar(&req.TZ, "tz", "", "IANA time zone (default: the server's)")
	return cmd
}

func (a *cli) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show directory totals and upcoming events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd.Context())
			defer cancel()

			d, err := a.client.Dashboard(ctx)
			if err != nil {
				return err
			}
			return a.printer().dashboard(d)
		},
	}
}
