package problemgen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/abhisek/quickmaths/internal/convert"
)

// MathCheckValidator independently recomputes the answer from the prompt
// text, so a prompt can never disagree with the value it is scored against.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

// Regex patterns for reading operands back out of prompts.
var (
	arithPromptRe    = regexp.MustCompile(`^(-?\d+(?:\.\d+)?) ([+\-×÷]) (-?\d+(?:\.\d+)?)$`)
	unitPromptRe     = regexp.MustCompile(`^Convert: (-?\d+(?:\.\d+)?) (\S+) → (\S+)$`)
	timezonePromptRe = regexp.MustCompile(`^If it's (\d{2}:\d{2}) in (\S+), what time is it in (\S+)\?$`)
)

func (v *MathCheckValidator) Validate(p *Problem) *ValidationError {
	computed, err := recompute(p)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	if !closeEnough(computed, p.CorrectValue) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("prompt %q computes to %v but correct value is %v", p.Prompt, computed, p.CorrectValue),
		}
	}
	return nil
}

// recompute evaluates the prompt text of p.
func recompute(p *Problem) (float64, error) {
	switch p.Mode {
	case ModeArithmetic:
		m := arithPromptRe.FindStringSubmatch(p.Prompt)
		if m == nil {
			return 0, fmt.Errorf("no arithmetic expression in %q", p.Prompt)
		}
		a, _ := strconv.ParseFloat(m[1], 64)
		b, _ := strconv.ParseFloat(m[3], 64)
		return apply(Op(m[2]), a, b), nil

	case ModeUnit:
		m := unitPromptRe.FindStringSubmatch(p.Prompt)
		if m == nil {
			return 0, fmt.Errorf("no conversion in %q", p.Prompt)
		}
		value, _ := strconv.ParseFloat(m[1], 64)
		return convert.Convert(p.Category, value, m[2], m[3])

	case ModeTimezone:
		m := timezonePromptRe.FindStringSubmatch(p.Prompt)
		if m == nil {
			return 0, fmt.Errorf("no clock conversion in %q", p.Prompt)
		}
		minutes, err := ParseClock(m[1])
		if err != nil {
			return 0, err
		}
		target, err := convert.ConvertTime(minutes, m[2], m[3])
		return float64(target), err
	}
	return 0, fmt.Errorf("mode %q: %w", p.Mode, ErrUnknownMode)
}

// closeEnough compares with a relative tolerance; prompts print operands in
// shortest form, so only float rounding can separate the two values.
func closeEnough(a, b float64) bool {
	diff := math.Abs(a - b)
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return diff <= 1e-9*scale
}
