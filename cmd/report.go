package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetprep/internal/report"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the full performance report",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			attempts, err := a.practice.Attempts(cmd.Context())
			if err != nil {
				return err
			}
			r, err := report.Build(attempts, a.now, *a.cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if r.Empty {
				fmt.Fprintln(out, "No attempts logged yet.")
				return nil
			}

			printTitle(out, "===== STATS REPORT =====")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Total Attempts: %d\n", r.TotalAttempts)
			fmt.Fprintf(out, "Problems Practiced: %d\n", r.ProblemsPracticed)
			fmt.Fprintf(out, "Success Rate: %.1f%%\n", r.SuccessRate)
			fmt.Fprintf(out, "Average Time: %.1f min\n", r.AvgTimeMinutes)

			fmt.Fprintln(out)
			printHeading(out, "Success Rate by Difficulty:")
			for _, d := range r.ByDifficulty {
				fmt.Fprintf(out, "  %s: %.1f%% (%d attempts)\n", d.Difficulty, d.SuccessRate, d.Attempts)
			}

			fmt.Fprintln(out)
			printHeading(out, "Strongest Topic:")
			if r.Strongest != nil {
				fmt.Fprintf(out, "  %s (%s)\n", r.Strongest.Name, score(r.Strongest.Score))
			} else {
				fmt.Fprintln(out, "  N/A")
			}

			fmt.Fprintln(out)
			printHeading(out, "Weakest Topic:")
			if r.Weakest != nil {
				fmt.Fprintf(out, "  %s (%s)\n", r.Weakest.Name, score(r.Weakest.Score))
			} else {
				fmt.Fprintln(out, "  N/A")
			}

			fmt.Fprintln(out)
			printHeading(out, "Recommended Topics:")
			if len(r.Recommended) == 0 {
				fmt.Fprintln(out, "  Not enough data yet.")
			}
			for _, t := range r.Recommended {
				fmt.Fprintf(out, "  %s (%s)\n", t.Name, score(t.Score))
			}

			fmt.Fprintln(out)
			printHeading(out, "Interview Readiness:")
			fmt.Fprintf(out, "  %s\n", percent(r.Readiness.Score))
			return nil
		},
	}
}
