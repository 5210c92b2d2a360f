// Package theme holds the lipgloss styles used by command output.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Rule = lipgloss.NewStyle().
		Foreground(Border)
)

// States
var (
	Good = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Fair = lipgloss.NewStyle().
		Foreground(Accent)

	Weak = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Level buckets a score in [0,1].
type Level int

const (
	LevelWeak Level = iota
	LevelFair
	LevelStrong
)

// Score thresholds for ScoreLevel.
const (
	StrongScore = 0.75
	FairScore   = 0.5
)

// ScoreLevel buckets score by the thresholds above.
func ScoreLevel(score float64) Level {
	switch {
	case score >= StrongScore:
		return LevelStrong
	case score >= FairScore:
		return LevelFair
	default:
		return LevelWeak
	}
}

// ScoreStyle picks the state style for score.
func ScoreStyle(score float64) lipgloss.Style {
	switch ScoreLevel(score) {
	case LevelStrong:
		return Good
	case LevelFair:
		return Fair
	default:
		return Weak
	}
}
