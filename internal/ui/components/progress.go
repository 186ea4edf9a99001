// Package components holds small reusable view pieces.
package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmaths/internal/ui/theme"
)

// RoundProgress is a bar showing how many rounds of a game are done.
type RoundProgress struct {
	Done  int
	Total int
	Width int
}

// Fraction is the completed share in [0, 1].
func (p RoundProgress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Done)/float64(p.Total), 0), 1)
}

// View renders "Round i/n" followed by the bar.
func (p RoundProgress) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Round %d/%d", min(p.Done+1, p.Total), p.Total))

	barWidth := max(p.Width-lipgloss.Width(label)-2, 4)
	filled := int(float64(barWidth) * p.Fraction())

	return label + "  " +
		lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))
}
