package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetprep/internal/attempt"
	"github.com/abhisek/leetprep/internal/practice"
)

func newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log <slug> <YYYY-MM-DD> <minutes> <confidence 1-5> <0|1>",
		Short: "Log a practice attempt",
		Long: "Log a practice attempt. Unknown problems are fetched from LeetCode and cached. " +
			"The next review is scheduled from today based on success and confidence.",
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return &attempt.ValidationError{Field: "time_taken", Reason: fmt.Sprintf("%q is not a number", args[2])}
			}
			confidence, err := strconv.Atoi(args[3])
			if err != nil {
				return &attempt.ValidationError{Field: "confidence", Reason: fmt.Sprintf("%q is not an integer", args[3])}
			}
			var success bool
			switch args[4] {
			case "1":
				success = true
			case "0":
			default:
				return &attempt.ValidationError{Field: "success", Reason: fmt.Sprintf("want 0 or 1, got %q", args[4])}
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.practice.LogAttempt(cmd.Context(), practice.LogRequest{
				Slug:       args[0],
				Date:       args[1],
				TimeTaken:  minutes,
				Confidence: confidence,
				Success:    success,
			}, a.now)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Attempt logged (ID: %d)\n", res.AttemptID)
			fmt.Fprintf(out, "Next review of %s: %s\n", res.Problem.Slug, attempt.FormatDate(res.NextReview))
			return nil
		},
	}
}
