package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/finance-planner/backend/internal/application/usecase/recurring"
	"github.com/finance-planner/backend/internal/domain/entity"
)

func newRecurringCmd() *cobra.Command {
	recurringCmd := &cobra.Command{
		Use:   "recurring",
		Short: "Recurring transaction operations",
	}

	var date string
	runOnceCmd := &cobra.Command{
		Use:   "run-once",
		Short: "Run a single scheduler cycle and print the counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			today, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			a, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			inj, err := a.injector()
			if err != nil {
				return err
			}

			out, err := inj.Scheduler.RunOnce(cmd.Context(), today)
			if out != nil {
				printCycle(cmd.OutOrStdout(), out)
			}
			return err
		},
	}
	runOnceCmd.Flags().StringVar(&date, "date", "", "Backfill as of this past day (YYYY-MM-DD) instead of today")

	recurringCmd.AddCommand(runOnceCmd)
	return recurringCmd
}

func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := entity.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --date %q: use YYYY-MM-DD", s)
	}
	return &d, nil
}

func printCycle(w io.Writer, out *recurring.MaterializeDueOutput) {
	fmt.Fprintf(w, "Today:        %s\n", out.Today.Format(entity.DateLayout))
	fmt.Fprintf(w, "Candidates:   %d\n", out.Candidates)
	fmt.Fprintf(w, "Due:          %d\n", out.Due)
	fmt.Fprintf(w, "Materialized: %d\n", out.Materialized)
	fmt.Fprintf(w, "Skipped:      %d\n", out.Skipped)
}
