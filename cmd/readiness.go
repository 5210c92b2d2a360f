package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetprep/internal/mastery"
	"github.com/abhisek/leetprep/internal/readiness"
)

func newReadinessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "readiness",
		Short: "Show the interview readiness score",
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
			scores, err := mastery.NewEngine(a.cfg.Mastery).Compute(attempts, a.now)
			if err != nil {
				return fmt.Errorf("compute mastery: %w", err)
			}
			b := readiness.NewAggregator(a.cfg.Readiness).Compute(scores, attempts, a.now)

			out := cmd.OutOrStdout()
			rc := a.cfg.Readiness
			fmt.Fprintf(out, "Interview Readiness: %s\n", percent(b.Score))
			fmt.Fprintf(out, "  Average mastery: %.2f\n", b.AvgMastery)
			fmt.Fprintf(out, "  Coverage:        %.2f (%d of %d topics)\n", b.Coverage, b.DistinctTopics, rc.ExpectedTopics)
			fmt.Fprintf(out, "  Activity:        %.2f (%d attempts in %d days, target %d)\n",
				b.Activity, b.RecentAttempts, rc.ActivityWindowDays, rc.ActivityTarget)
			return nil
		},
	}
}
