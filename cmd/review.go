package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetprep/internal/attempt"
	"github.com/abhisek/leetprep/internal/spacedrep"
)

func newReviewCmd() *cobra.Command {
	reviewCmd := &cobra.Command{
		Use:   "review",
		Short: "Inspect spaced-repetition review schedules",
	}
	reviewCmd.AddCommand(newReviewDueCmd())
	reviewCmd.AddCommand(newReviewShowCmd())
	reviewCmd.AddCommand(newReviewListCmd())
	return reviewCmd
}

func newReviewDueCmd() *cobra.Command {
	dueCmd := &cobra.Command{
		Use:   "due",
		Short: "List problems due for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			today := attempt.Day(a.now)
			if d, _ := cmd.Flags().GetString("date"); d != "" {
				if today, err = attempt.ParseDate(d); err != nil {
					return err
				}
			}

			due, err := a.scheduler.DueProblems(cmd.Context(), today)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(due) == 0 {
				fmt.Fprintf(out, "No reviews due on %s.\n", attempt.FormatDate(today))
				return nil
			}

			printTitle(out, fmt.Sprintf("Reviews due on %s", attempt.FormatDate(today)))
			fmt.Fprintf(out, "%-6s  %-32s  %-32s  %-10s  %s\n", "ID", "Slug", "Title", "Due", "Overdue")
			printRule(out, 100)
			for _, d := range due {
				rs := spacedrep.ReviewState{ProblemID: d.ProblemID, NextReviewDate: d.NextReviewDate}
				fmt.Fprintf(out, "%-6d  %s  %s  %-10s  %dd\n",
					d.ProblemID, pad(truncate(d.Slug, 32), 32), pad(truncate(d.Title, 32), 32),
					attempt.FormatDate(d.NextReviewDate), rs.OverdueDays(today))
			}
			fmt.Fprintf(out, "\n%d due\n", len(due))
			return nil
		},
	}
	dueCmd.Flags().String("date", "", "Check against this date instead of today (YYYY-MM-DD)")
	return dueCmd
}

func newReviewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <problem-id>",
		Short: "Show the review schedule of one problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid problem id %q", args[0])
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			rs, err := a.scheduler.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if rs == nil {
				fmt.Fprintf(out, "Problem %d has no review scheduled.\n", id)
				return nil
			}
			fmt.Fprintf(out, "Problem:      %d\n", rs.ProblemID)
			if p, err := a.store.ProblemRepo().Get(cmd.Context(), id); err == nil && p != nil {
				fmt.Fprintf(out, "Slug:         %s\n", p.Slug)
			}
			fmt.Fprintf(out, "Next review:  %s\n", attempt.FormatDate(rs.NextReviewDate))
			fmt.Fprintf(out, "Status:       %s\n", statusText(rs, a))
			return nil
		},
	}
}

func newReviewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every review schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			all, err := a.scheduler.All(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(all) == 0 {
				fmt.Fprintln(out, "No reviews scheduled yet.")
				return nil
			}

			ids := make([]int, 0, len(all))
			for id := range all {
				ids = append(ids, id)
			}
			sort.Ints(ids)

			fmt.Fprintf(out, "%-6s  %-10s  %s\n", "ID", "Next", "Status")
			printRule(out, 40)
			for _, id := range ids {
				rs := &spacedrep.ReviewState{ProblemID: id, NextReviewDate: all[id]}
				fmt.Fprintf(out, "%-6d  %-10s  %s\n", id, attempt.FormatDate(rs.NextReviewDate), statusText(rs, a))
			}
			return nil
		},
	}
}

func statusText(rs *spacedrep.ReviewState, a *app) string {
	switch rs.Status(a.now) {
	case spacedrep.ReviewOverdue:
		return fmt.Sprintf("overdue by %d days", rs.OverdueDays(a.now))
	case spacedrep.ReviewDue:
		return "due today"
	default:
		return fmt.Sprintf("due in %d days", rs.DaysUntilReview(a.now))
	}
}
