package problemgen

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/quickmaths/internal/convert"
)

var (
	// ErrUnparseable is returned for empty or malformed answers.
	ErrUnparseable = errors.New("unparseable answer")

	// ErrUnknownMode is returned for a mode name outside Modes().
	ErrUnknownMode = errors.New("unknown mode")

	// ErrUnknownLevel is returned for a level name outside Levels().
	ErrUnknownLevel = errors.New("unknown level")
)

// ClockHint is the answer-format hint for timezone problems.
const ClockHint = "24h HH:MM"

// ParseNumber parses a numeric answer. Whitespace and "," thousands
// separators are ignored.
func ParseNumber(raw string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0, ErrUnparseable
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", raw, ErrUnparseable)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", raw, ErrUnparseable)
	}
	return v, nil
}

// ParseClock parses a 24h "HH:MM" or "HH.MM" answer into minutes since
// midnight.
func ParseClock(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrUnparseable
	}

	var hh, mm string
	switch {
	case strings.Contains(s, ":"):
		hh, mm, _ = strings.Cut(s, ":")
	case strings.Contains(s, "."):
		hh, mm, _ = strings.Cut(s, ".")
	default:
		return 0, fmt.Errorf("%q: missing separator: %w", raw, ErrUnparseable)
	}
	if !allDigits(hh) || !allDigits(mm) {
		return 0, fmt.Errorf("%q: %w", raw, ErrUnparseable)
	}

	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", raw, ErrUnparseable)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", raw, ErrUnparseable)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%q: out of range: %w", raw, ErrUnparseable)
	}
	return h*60 + m, nil
}

// ParseAnswer parses raw with the parser that belongs to mode.
func ParseAnswer(raw string, mode Mode) (float64, error) {
	switch mode {
	case ModeTimezone:
		m, err := ParseClock(raw)
		return float64(m), err
	case ModeArithmetic, ModeUnit:
		return ParseNumber(raw)
	default:
		return 0, fmt.Errorf("%q: %w", mode, ErrUnknownMode)
	}
}

// ParseAnswer parses a raw answer for this problem.
func (p *Problem) ParseAnswer(raw string) (float64, error) {
	return ParseAnswer(raw, p.Mode)
}

// AbsError is the distance between a parsed answer and the correct value.
// Timezone answers are compared on the 24h circle.
func (p *Problem) AbsError(answer float64) float64 {
	d := math.Abs(answer - p.CorrectValue)
	if p.Mode == ModeTimezone {
		d = math.Mod(d, convert.MinutesPerDay)
		return math.Min(d, convert.MinutesPerDay-d)
	}
	return d
}

// Evaluate parses raw and returns its absolute error. Unparseable answers
// yield +Inf.
func (p *Problem) Evaluate(raw string) float64 {
	v, err := p.ParseAnswer(raw)
	if err != nil {
		return math.Inf(1)
	}
	return p.AbsError(v)
}

// FormatValue renders a value the way feedback displays it.
func (p *Problem) FormatValue(v float64) string {
	if p.Mode == ModeTimezone {
		return convert.FormatClock(int(math.Round(v)))
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// AnswerHint tells the player what form the answer takes.
func (p *Problem) AnswerHint() string {
	switch {
	case p.Mode == ModeTimezone:
		return "Answer format: 24h HH:MM or HH.MM (e.g. 09:05 or 09.05)"
	case p.UnitHint != "":
		return "Answer in " + p.UnitHint
	default:
		return "Answer as a number"
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
