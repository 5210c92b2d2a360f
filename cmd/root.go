package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetprep/internal/store"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "leetprep",
		Short: "Track coding interview practice",
		Long: "leetprep records practice attempts on LeetCode problems, scores per-topic " +
			"mastery, recommends weak topics and schedules spaced-repetition reviews.",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEETPREP_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides LEETPREP_CONFIG env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("today", "", "Evaluate as of this date (YYYY-MM-DD)")
	_ = rootCmd.PersistentFlags().MarkHidden("today")

	rootCmd.AddCommand(newProblemCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newRecommendCmd())
	rootCmd.AddCommand(newReadinessCmd())
	rootCmd.AddCommand(newReviewCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the command line.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEETPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
