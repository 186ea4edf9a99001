package problemgen

import (
	"fmt"

	"github.com/abhisek/quickmaths/internal/convert"
	"github.com/abhisek/quickmaths/internal/random"
)

// Source minutes are drawn from round-ish values; hours avoid midnight.
var niceMinutes = []int{0, 5, 10, 15, 20, 30, 35, 40, 45, 50}

// Timezone generates a clock conversion between two distinct zones.
func (g *Generator) Timezone() *Problem {
	src, dst := random.Pair(g.rnd, convert.Zones())
	hh := random.IntRange(g.rnd, 1, 22)
	mm := random.Choice(g.rnd, niceMinutes)
	return newTimezoneProblem(hh*60+mm, src, dst)
}

// newTimezoneProblem builds the descriptor for the time in dst when it is
// srcMinutes past midnight in src. It panics on an unknown zone.
func newTimezoneProblem(srcMinutes int, src, dst string) *Problem {
	target, err := convert.ConvertTime(srcMinutes, src, dst)
	if err != nil {
		panic(fmt.Sprintf("problemgen: %v", err))
	}
	diff := TimezoneDifficulty(src, dst)
	return &Problem{
		Mode: ModeTimezone,
		Prompt: fmt.Sprintf("If it's %s in %s, what time is it in %s?",
			convert.FormatClock(srcMinutes), src, dst),
		CorrectValue: float64(target),
		Difficulty:   diff,
		Tolerance:    TimezoneTolerance(diff),
		UnitHint:     ClockHint,
		Timezone:     &TimezoneParams{From: src, To: dst, SourceMinutes: srcMinutes},
	}
}
