package problemgen

import (
	"math"

	"github.com/abhisek/quickmaths/internal/convert"
)

// integerAddSubCap bounds the tolerance of integer addition and subtraction.
const integerAddSubCap = 1.5

// ArithmeticTolerance is the admissible absolute error for an arithmetic
// answer. Integer + and - stay within integerAddSubCap.
func ArithmeticTolerance(op Op, a, b, target, difficulty float64) float64 {
	tol := 0.5 + math.Abs(target)*0.001*math.Pow(difficulty, 1.3)
	if (op == OpAdd || op == OpSub) && isInteger(a) && isInteger(b) {
		tol = math.Min(tol, integerAddSubCap)
	}
	return tol
}

// UnitTolerance is the admissible absolute error for a conversion answer.
// Temperature scales twice as fast as the factor-only categories.
func UnitTolerance(cat convert.Category, target, difficulty float64) float64 {
	k := 0.005
	if cat == convert.Temp {
		k = 0.01
	}
	return 0.5 + k*math.Abs(target)*math.Pow(difficulty, 1.1)
}

// TimezoneTolerance is the admissible error in whole minutes.
func TimezoneTolerance(difficulty float64) float64 {
	return math.RoundToEven(0.5 + 1.5*math.Pow(difficulty, 1.1))
}

func isInteger(x float64) bool {
	return x == math.Trunc(x)
}
