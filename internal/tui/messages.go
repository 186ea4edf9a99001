package tui

import "time"

// tickMsg refreshes the response timer on screen.
type tickMsg struct {
	gen int
	at  time.Time
}

// phase is the part of a round currently on screen.
type phase int

const (
	phaseQuestion phase = iota // waiting for an answer
	phaseFeedback              // showing the graded result
	phaseSummary               // game over
)
