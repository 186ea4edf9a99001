package session

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/scoring"
)

// Result is one graded round. It is not modified after Grade returns it.
type Result struct {
	Mode           problemgen.Mode   `json:"mode"`
	Prompt         string            `json:"prompt"`
	Answer         string            `json:"answer"`
	CorrectValue   float64           `json:"correct_value"`
	CorrectDisplay string            `json:"correct_display"`
	AbsError       float64           `json:"-"`
	Score          int               `json:"score"`
	TimeS          float64           `json:"time_s"`
	Difficulty     float64           `json:"difficulty"`
	Tolerance      float64           `json:"tolerance"`
	Breakdown      scoring.Breakdown `json:"breakdown"`

	// Skipped is set when the answer was empty.
	Skipped bool `json:"skipped"`
}

// Grade parses the raw answer for p, measures its error and scores it.
// An empty or malformed answer has infinite error and keeps only the
// speed-derived part of the score.
func Grade(p *problemgen.Problem, raw string, elapsed time.Duration) Result {
	answer := strings.TrimSpace(raw)
	secs := math.Max(elapsed.Seconds(), 0)
	absErr := p.Evaluate(answer)
	sc := scoring.Score(absErr, p.Tolerance, p.Difficulty, secs)

	return Result{
		Mode:           p.Mode,
		Prompt:         p.Prompt,
		Answer:         answer,
		CorrectValue:   p.CorrectValue,
		CorrectDisplay: p.FormatValue(p.CorrectValue),
		AbsError:       absErr,
		Score:          sc.Score,
		TimeS:          secs,
		Difficulty:     p.Difficulty,
		Tolerance:      p.Tolerance,
		Breakdown:      sc.Breakdown,
		Skipped:        answer == "",
	}
}

// Parsed reports whether the answer could be read as a value.
func (r Result) Parsed() bool {
	return !math.IsInf(r.AbsError, 1)
}

// ErrorDisplay renders the absolute error to three significant digits, or
// "n/a" when the answer did not parse.
func (r Result) ErrorDisplay() string {
	if !r.Parsed() {
		return "n/a"
	}
	return fmt.Sprintf("%.3g", r.AbsError)
}

// CorrectLine is the first feedback line shown after an answer.
func (r Result) CorrectLine() string {
	return fmt.Sprintf("Correct: %s | Your error: %s", r.CorrectDisplay, r.ErrorDisplay())
}

// ScoreLine is the second feedback line: points and the factors behind them.
func (r Result) ScoreLine() string {
	return fmt.Sprintf("Score +%d (acc x%.2f, spd x%.2f, tol %.3g, %.2fs)",
		r.Score, r.Breakdown.AccuracyFactor, r.Breakdown.SpeedFactor, r.Tolerance, r.TimeS)
}
