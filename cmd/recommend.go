package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetprep/internal/mastery"
	"github.com/abhisek/leetprep/internal/recommend"
)

func newRecommendCmd() *cobra.Command {
	recommendCmd := &cobra.Command{
		Use:   "recommend",
		Short: "Show the weakest topics to practice next",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			opts := recommend.Options{
				MinAttempts: a.cfg.Recommend.MinAttempts,
				TopN:        a.cfg.Recommend.TopN,
			}
			if cmd.Flags().Changed("top") {
				opts.TopN, _ = cmd.Flags().GetInt("top")
			}
			if cmd.Flags().Changed("min-attempts") {
				opts.MinAttempts, _ = cmd.Flags().GetInt("min-attempts")
			}

			attempts, err := a.practice.Attempts(cmd.Context())
			if err != nil {
				return err
			}
			scores, err := mastery.NewEngine(a.cfg.Mastery).Compute(attempts, a.now)
			if err != nil {
				return fmt.Errorf("compute mastery: %w", err)
			}
			recs := recommend.WeakTopics(scores, recommend.CountAttempts(attempts), opts)

			out := cmd.OutOrStdout()
			printTitle(out, "Recommended Topics")
			if len(recs) == 0 {
				printHint(out, "Not enough data yet.")
				return nil
			}
			for i, t := range recs {
				fmt.Fprintf(out, "%d. %-24s %s\n", i+1, t.Name, score(t.Score))
			}
			return nil
		},
	}
	recommendCmd.Flags().Int("top", 0, "Number of topics to show (default from config)")
	recommendCmd.Flags().Int("min-attempts", 0, "Skip topics with fewer attempts (default from config)")
	return recommendCmd
}
