package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/leetprep/internal/mastery"
	"github.com/abhisek/leetprep/internal/ui/theme"
)

func printTitle(w io.Writer, title string) {
	lipgloss.Fprintln(w, theme.Title.Render(title))
}

func printHeading(w io.Writer, heading string) {
	lipgloss.Fprintln(w, theme.Heading.Render(heading))
}

func printRule(w io.Writer, width int) {
	lipgloss.Fprintln(w, theme.Rule.Render(strings.Repeat("─", width)))
}

func printHint(w io.Writer, hint string) {
	lipgloss.Fprintln(w, theme.Hint.Render(hint))
}

// score renders a [0,1] score rounded to two decimals, colored by level.
func score(s float64) string {
	return theme.ScoreStyle(s).Render(fmt.Sprintf("%.2f", mastery.Round(s)))
}

// percent renders a [0,1] fraction as a percentage, colored by level.
func percent(s float64) string {
	return theme.ScoreStyle(s).Render(fmt.Sprintf("%.1f%%", s*100))
}

// truncate shortens s to at most n visible cells, marking the cut with an
// ellipsis.
func truncate(s string, n int) string {
	return ansi.Truncate(s, n, "…")
}

// pad right-pads s to width visible cells, ignoring ANSI styling.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
