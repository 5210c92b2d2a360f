package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetprep/internal/attempt"
	"github.com/abhisek/leetprep/internal/mastery"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show mastery per topic",
		Long: "Show the mastery score of every topic practiced within the mastery window, " +
			"with the success, speed, recency and confidence factors it is made of.",
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
			breakdown, err := mastery.NewEngine(a.cfg.Mastery).Breakdown(attempts, a.now)
			if err != nil {
				return fmt.Errorf("compute mastery: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(breakdown) == 0 {
				fmt.Fprintf(out, "No attempts in the last %d days.\n", a.cfg.Mastery.WindowDays)
				return nil
			}

			topics := make([]string, 0, len(breakdown))
			for t := range breakdown {
				topics = append(topics, t)
			}
			sort.Strings(topics)

			printTitle(out, "Topic Mastery")
			fmt.Fprintf(out, "%-24s  %-7s  %7s  %5s  %7s  %4s  %4s  %-10s  %s\n",
				"Topic", "Mastery", "Success", "Speed", "Recency", "Conf", "N", "Last", "Retention")
			printRule(out, 92)
			for _, topic := range topics {
				ts := breakdown[topic]
				retention, err := mastery.Retention(ts.LastAttempt, ts.LastConfidence, a.now, a.cfg.Retention.Decay)
				if err != nil {
					return fmt.Errorf("retention of %s: %w", topic, err)
				}
				fmt.Fprintf(out, "%s  %s  %6.0f%%  %5.2f  %7.2f  %4.2f  %4d  %-10s  %.1f\n",
					pad(truncate(topic, 24), 24),
					pad(score(ts.Score), 7),
					ts.SuccessRate*100,
					ts.AvgSpeed,
					ts.Recency,
					ts.ConfidenceScore,
					ts.Attempts,
					attempt.FormatDate(ts.LastAttempt),
					retention,
				)
			}
			return nil
		},
	}
}
