package problemgen

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/abhisek/quickmaths/internal/random"
)

var (
	easyOps   = []Op{OpAdd, OpSub}
	mediumOps = []Op{OpAdd, OpSub, OpMul}
	hardOps   = []Op{OpAdd, OpSub, OpMul, OpDiv}

	// Medium operands occasionally pick up one of these fractions.
	fractionalOffsets = []float64{0.5, 0.25, 0.75}

	// Hard operands keep one decimal two times out of three.
	hardPlaces = []int32{1, 1, 2}
)

const (
	mediumFractionChance = 0.2
	divisorEpsilon       = 1e-9
	divisorFallback      = 3.0
)

// Arithmetic generates a binary arithmetic problem for the level:
//   - easy: + and - on integers in [10, 99]
//   - medium: +, - and × on integers in [20, 350], sometimes with a
//     quarter or half added to both operands
//   - hard: all four operators on values in [5, 200] with 1-2 decimals
//
// An unknown level is treated as hard.
func (g *Generator) Arithmetic(level Level) *Problem {
	var (
		ops  []Op
		a, b float64
	)
	switch level {
	case LevelEasy:
		ops = easyOps
		a = float64(random.IntRange(g.rnd, 10, 99))
		b = float64(random.IntRange(g.rnd, 10, 99))
	case LevelMedium:
		ops = mediumOps
		a = float64(random.IntRange(g.rnd, 20, 350))
		b = float64(random.IntRange(g.rnd, 20, 350))
		if g.rnd.Float64() < mediumFractionChance {
			a += random.Choice(g.rnd, fractionalOffsets)
			b += random.Choice(g.rnd, fractionalOffsets)
		}
	default:
		ops = hardOps
		a = roundTo(random.FloatRange(g.rnd, 5, 200), random.Choice(g.rnd, hardPlaces))
		b = roundTo(random.FloatRange(g.rnd, 5, 200), random.Choice(g.rnd, hardPlaces))
	}

	op := random.Choice(g.rnd, ops)
	if op == OpDiv && math.Abs(b) < divisorEpsilon {
		b = divisorFallback
	}
	return newArithmeticProblem(op, a, b)
}

// newArithmeticProblem builds the problem descriptor for a op b.
func newArithmeticProblem(op Op, a, b float64) *Problem {
	val := apply(op, a, b)
	diff := ArithmeticDifficulty(op, a, b)
	return &Problem{
		Mode:         ModeArithmetic,
		Prompt:       fmt.Sprintf("%s %s %s", formatNumber(a), op, formatNumber(b)),
		CorrectValue: val,
		Difficulty:   diff,
		Tolerance:    ArithmeticTolerance(op, a, b, val, diff),
		Arithmetic:   &ArithmeticParams{Op: op, A: a, B: b},
	}
}

func apply(op Op, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	default:
		return a / b
	}
}

// roundTo rounds x half away from zero to the given number of decimals.
func roundTo(x float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(x).Round(places).Float64()
	return f
}

// formatNumber renders x in its shortest decimal form: 45, 12.5, -3.25.
func formatNumber(x float64) string {
	return decimal.NewFromFloat(x).String()
}
