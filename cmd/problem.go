package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetprep/internal/attempt"
	"github.com/abhisek/leetprep/internal/store"
)

func newProblemCmd() *cobra.Command {
	problemCmd := &cobra.Command{
		Use:   "problem",
		Short: "Manage the local problem catalog",
	}
	problemCmd.AddCommand(newProblemAddCmd())
	problemCmd.AddCommand(newProblemListCmd())
	return problemCmd
}

func newProblemAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <id> <slug> <title> <difficulty> <topic1,topic2,...>",
		Short: "Add a problem without contacting LeetCode",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid problem id %q", args[0])
			}
			difficulty, err := attempt.ParseDifficulty(args[3])
			if err != nil {
				return err
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			p := store.Problem{
				ID:         id,
				Slug:       args[1],
				Title:      args[2],
				Difficulty: difficulty,
				Topics:     attempt.SplitTopics(args[4]),
			}
			inserted, err := a.practice.AddProblem(cmd.Context(), p)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !inserted {
				fmt.Fprintf(out, "Problem %d already exists, left unchanged.\n", id)
				return nil
			}
			fmt.Fprintf(out, "Added problem: %d - %s\n", id, strings.TrimSpace(p.Title))
			return nil
		},
	}
}

func newProblemListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			problems, err := a.store.ProblemRepo().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list problems: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(problems) == 0 {
				fmt.Fprintln(out, "No problems cached yet.")
				return nil
			}

			// Header.
			fmt.Fprintf(out, "%-6s  %-32s  %-32s  %-6s  %s\n", "ID", "Slug", "Title", "Level", "Topics")
			printRule(out, 110)
			for _, p := range problems {
				fmt.Fprintf(out, "%-6d  %s  %s  %-6s  %s\n",
					p.ID, pad(truncate(p.Slug, 32), 32), pad(truncate(p.Title, 32), 32), p.Difficulty, strings.Join(p.Topics, ", "))
			}
			fmt.Fprintf(out, "\n%d problems\n", len(problems))
			return nil
		},
	}
}
