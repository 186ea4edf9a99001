package problemgen

import (
	"fmt"

	"github.com/abhisek/quickmaths/internal/convert"
	"github.com/abhisek/quickmaths/internal/random"
)

type valueRange struct {
	lo, hi float64
	places []int32
}

// Source values are drawn uniformly from the category range, then rounded to
// one of places decimals.
var unitRanges = map[convert.Category]valueRange{
	convert.Length: {0.5, 5000, []int32{0, 1, 2}},
	convert.Mass:   {0.5, 500, []int32{0, 1, 2}},
	convert.Volume: {0.5, 200, []int32{0, 1, 2}},
	convert.Temp:   {-40, 150, []int32{0, 0, 1}},
	convert.Number: {0.5, 500, []int32{0, 1, 2}},
}

// UnitConversion generates a conversion between two distinct units of a
// category enabled in cfg.
func (g *Generator) UnitConversion(cfg UnitConfig) *Problem {
	cat := random.Choice(g.rnd, cfg.Categories())
	src, dst := random.Pair(g.rnd, cfg.UnitsFor(cat))

	r := unitRanges[cat]
	value := roundTo(random.FloatRange(g.rnd, r.lo, r.hi), random.Choice(g.rnd, r.places))
	return newUnitProblem(cat, value, src, dst)
}

// newUnitProblem builds the descriptor for converting value from src to dst.
// It panics if either unit is not in the category table: generators only
// draw from those tables, so this is a programming error.
func newUnitProblem(cat convert.Category, value float64, src, dst string) *Problem {
	target, err := convert.Convert(cat, value, src, dst)
	if err != nil {
		panic(fmt.Sprintf("problemgen: %v", err))
	}
	diff := UnitDifficulty(cat, src, dst, value)
	return &Problem{
		Mode:         ModeUnit,
		Prompt:       fmt.Sprintf("Convert: %s %s → %s", formatNumber(value), src, dst),
		CorrectValue: target,
		Difficulty:   diff,
		Tolerance:    UnitTolerance(cat, target, diff),
		UnitHint:     dst,
		Category:     cat,
		Unit:         &UnitParams{Category: cat, Value: value, From: src, To: dst},
	}
}
