// Package theme holds the shared palette and lipgloss styles of the terminal
// front ends.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: dark background with a cool accent for prompts and warm tones for
// score feedback.
var (
	Primary   = lipgloss.Color("#38BDF8") // Sky
	Secondary = lipgloss.Color("#A78BFA") // Lavender
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#FB7185") // Rose
	Text      = lipgloss.Color("#F1F5F9")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Text styles.
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Prompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Rule = lipgloss.NewStyle().
		Foreground(Border)
)

// Containers.
var (
	Bar = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// Feedback styles by score band.
var (
	ScoreHigh = lipgloss.NewStyle().Foreground(Success).Bold(true)
	ScoreMid  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	ScoreLow  = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// Score band thresholds.
const (
	HighScore = 80
	MidScore  = 40
)

// ScoreStyle picks the feedback style for a 0-100 round score.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= HighScore:
		return ScoreHigh
	case score >= MidScore:
		return ScoreMid
	default:
		return ScoreLow
	}
}
