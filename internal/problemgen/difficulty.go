package problemgen

import (
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/abhisek/quickmaths/internal/convert"
)

// Difficulty clamp bounds per mode.
const (
	ArithmeticMinDifficulty = 1.0
	ArithmeticMaxDifficulty = 6.0

	UnitMinDifficulty = 1.2
	UnitMaxDifficulty = 5.0

	TimezoneMinDifficulty = 1.0
	TimezoneMaxDifficulty = 3.0
)

var opWeights = map[Op]float64{
	OpAdd: 0.0,
	OpSub: 0.1,
	OpMul: 1.0,
	OpDiv: 1.2,
}

// ArithmeticDifficulty scores a binary operation by operator, operand size
// and the number of decimal places involved. Result is in [1, 6].
func ArithmeticDifficulty(op Op, a, b float64) float64 {
	opW, ok := opWeights[op]
	if !ok {
		opW = 0.5
	}
	decs := decimalPlaces(a) + decimalPlaces(b)
	d := max(digits(a), digits(b))
	return clamp(1+opW+0.25*float64(decs)+0.2*float64(max(0, d-1)), ArithmeticMinDifficulty, ArithmeticMaxDifficulty)
}

var (
	smallestUnits = []string{"mm", "g", "ml"}
	largestUnits  = []string{"mi", "lb", "gal"}
	largeScales   = []string{"billion", "crore"}
	smallScales   = []string{"thousand", "lakh"}
)

// UnitDifficulty scores a conversion by category, unit pair and the
// magnitude of the source value. Result is in [1.2, 5].
func UnitDifficulty(cat convert.Category, src, dst string, value float64) float64 {
	var base float64
	switch cat {
	case convert.Length, convert.Mass:
		base = 1.6
	case convert.Volume:
		base = 1.7
	case convert.Temp:
		base = 2.4
	default:
		base = 1.8
	}

	spread := 0.0
	switch cat {
	case convert.Length, convert.Mass, convert.Volume:
		if slices.Contains(smallestUnits, src) || slices.Contains(largestUnits, dst) {
			spread = 0.2
		}
	case convert.Temp:
		switch {
		case samePair(src, dst, "C", "F"):
			spread = 0.2
		case samePair(src, dst, "C", "K"):
			spread = 0.1
		default:
			spread = 0.3
		}
	case convert.Number:
		switch {
		case slices.Contains(largeScales, src) && slices.Contains(smallScales, dst),
			slices.Contains(smallScales, src) && slices.Contains(largeScales, dst):
			spread = 0.3
		case slices.Contains(largeScales, src) || slices.Contains(largeScales, dst):
			spread = 0.2
		}
	}

	mag := 0.15 * math.Log10(math.Max(1, math.Abs(value)))
	return clamp(base+spread+mag, UnitMinDifficulty, UnitMaxDifficulty)
}

// TimezoneDifficulty scores a zone pair: non-whole-hour offsets are harder,
// 45-minute ones hardest, and every two hours of separation adds a little.
// Result is in [1, 3].
func TimezoneDifficulty(src, dst string) float64 {
	a, _ := convert.Offset(src)
	b, _ := convert.Offset(dst)
	offs := a - b
	if offs < 0 {
		offs = -offs
	}
	frac := offs % 60

	base := 1.0
	if frac != 0 {
		base += 0.6
	}
	if frac == 45 {
		base += 0.3
	}
	dist := 0.2 * float64(offs/120)
	return clamp(base+dist, TimezoneMinDifficulty, TimezoneMaxDifficulty)
}

// digits is max(1, floor(log10(|x|+1))+1), so 9.5 has 2 and 99 has 3.
func digits(x float64) int {
	return max(1, int(math.Floor(math.Log10(math.Abs(x)+1)))+1)
}

// decimalPlaces counts the digits after the decimal point in the shortest
// representation of x.
func decimalPlaces(x float64) int {
	if e := decimal.NewFromFloat(x).Exponent(); e < 0 {
		return int(-e)
	}
	return 0
}

func samePair(a, b, x, y string) bool {
	return (a == x && b == y) || (a == y && b == x)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
