package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/ui/components"
	"github.com/abhisek/quickmaths/internal/ui/layout"
	"github.com/abhisek/quickmaths/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render(m.width, m.height))
	return v
}

// render draws the full frame for a terminal of the given size.
func (m Model) render(width, height int) string {
	if layout.IsTooSmall(width, height) {
		return layout.RenderMinSizeMessage(width, height)
	}

	title := string(m.sess.Mode)
	if m.sess.Mode == problemgen.ModeArithmetic || m.sess.Mode == problemgen.ModeMixed {
		title += " · " + string(m.sess.Level)
	}
	header := layout.RenderHeader(title, m.sess.TotalScore, m.sess.MaxScore(), width)
	footer := layout.RenderFooter(m.keyHints(), width)

	var body string
	switch m.phase {
	case phaseQuestion:
		body = m.renderQuestion(width - 4)
	case phaseFeedback:
		body = m.renderFeedback(width - 4)
	default:
		body = m.renderSummary()
	}
	return layout.RenderFrame(header, body, footer, width, height)
}

func (m Model) keyHints() []layout.KeyHint {
	switch m.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Skip"},
			{Key: "Esc", Description: "End game"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
			{Key: "Esc", Description: "End game"},
		}
	default:
		return []layout.KeyHint{
			{Key: "R", Description: "Play again"},
			{Key: "Q", Description: "Quit"},
		}
	}
}

func (m Model) renderQuestion(width int) string {
	var b strings.Builder

	b.WriteString(components.RoundProgress{Done: m.sess.Round, Total: m.sess.TotalRounds, Width: width}.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Prompt.Render(m.current.Prompt))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(m.current.AnswerHint()))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	elapsed := max(m.now.Sub(m.askedAt).Seconds(), 0)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%.1fs", elapsed)))
	return b.String()
}

func (m Model) renderFeedback(width int) string {
	r := m.last
	var b strings.Builder

	b.WriteString(theme.Prompt.Render(r.Prompt))
	b.WriteString("\n")
	if r.Skipped {
		b.WriteString(theme.Hint.Render("Skipped."))
	} else if !r.Parsed() {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Could not parse %q. Counting as incorrect.", r.Answer)))
	} else {
		b.WriteString(theme.Body.Render("Your answer: " + r.Answer))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(r.CorrectLine()))
	b.WriteString("\n")
	b.WriteString(theme.ScoreStyle(r.Score).Render(r.ScoreLine()))
	b.WriteString("\n")
	b.WriteString(theme.Rule.Render(strings.Repeat("─", max(width, 0))))
	return b.String()
}

func (m Model) renderSummary() string {
	sum := m.sess.Summary()
	var b strings.Builder

	b.WriteString(theme.Title.Render("Final Results"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Total score: %d out of %d", sum.TotalScore, sum.MaxScore)))
	b.WriteString("\n")
	if sum.Answered > 0 {
		b.WriteString(theme.Hint.Render(fmt.Sprintf(
			"%d/%d rounds · mean %.1f · %d within tolerance · %.1fs per answer",
			sum.Answered, sum.Rounds, sum.MeanScore, sum.Perfect, sum.MeanTimeS)))
		b.WriteString("\n\n")
		b.WriteString(theme.ScoreHigh.Render(fmt.Sprintf("Best:  %s (+%d)", sum.BestPrompt, sum.BestScore)))
		b.WriteString("\n")
		b.WriteString(theme.ScoreLow.Render(fmt.Sprintf("Worst: %s (+%d)", sum.WorstPrompt, sum.WorstScore)))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(theme.ScoreLow.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	return theme.Card.Render(b.String())
}
