// Package scoring turns an answer's error and response time into a 0-100
// score. Harder problems weigh accuracy more heavily and allow a longer
// response before the speed term decays.
package scoring

import "math"

// MaxScore is the score of a perfect, instant answer.
const MaxScore = 100

// Breakdown holds the intermediate factors of a score for display.
type Breakdown struct {
	AccuracyFactor float64 `json:"accuracy_factor"`
	SpeedFactor    float64 `json:"speed_factor"`
	WAcc           float64 `json:"w_acc"`
	WSpeed         float64 `json:"w_speed"`
	SpdAccWeight   float64 `json:"spd_acc_weight"`
	Tolerance      float64 `json:"tolerance"`
	TimeS          float64 `json:"time_s"`
}

// Result is a score with its breakdown.
type Result struct {
	Score     int       `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
}

// Score computes the composite score for one answer.
//
// absError is +Inf for an unparseable answer, which zeroes the accuracy
// factor but still leaves a small speed contribution. A non-positive
// tolerance is treated the same way. Negative elapsed times count as zero.
func Score(absError, tolerance, difficulty, elapsed float64) Result {
	elapsed = math.Max(elapsed, 0)

	acc := AccuracyFactor(absError, tolerance, difficulty)
	spd := SpeedFactor(elapsed, difficulty)
	wSpeed := SpeedWeight(difficulty)
	wAcc := 1 - wSpeed

	// Poor accuracy dampens the speed term, less so on hard problems.
	alpha := 0.2 * (difficulty - 1) / 4
	spdAccWeight := 0.1 + 0.9*(alpha+(1-alpha)*acc)

	composite := clamp(wAcc*acc+wSpeed*spd*spdAccWeight, 0, 1)
	return Result{
		Score: int(math.RoundToEven(MaxScore * composite)),
		Breakdown: Breakdown{
			AccuracyFactor: acc,
			SpeedFactor:    spd,
			WAcc:           wAcc,
			WSpeed:         wSpeed,
			SpdAccWeight:   spdAccWeight,
			Tolerance:      tolerance,
			TimeS:          elapsed,
		},
	}
}

// AccuracyFactor maps the tolerance-normalized error to [0, 1]. The exponent
// grows with difficulty so near misses on hard problems are forgiven more.
func AccuracyFactor(absError, tolerance, difficulty float64) float64 {
	eff := math.Inf(1)
	if tolerance > 0 {
		eff = absError / tolerance
	}
	if math.IsNaN(eff) {
		return 0
	}
	gamma := 1 + (difficulty-1)/4
	return clamp(1-math.Pow(eff, gamma), 0, 1)
}

// SpeedFactor decays from 1 as elapsed seconds grow, on a scale of
// 6*difficulty^0.8 seconds.
func SpeedFactor(elapsed, difficulty float64) float64 {
	denom := 6 * math.Pow(difficulty, 0.8)
	return 1 / (1 + elapsed/denom)
}

// SpeedWeight is the share of the composite given to speed, in [0.25, 0.5].
func SpeedWeight(difficulty float64) float64 {
	return clamp(0.5/math.Sqrt(difficulty), 0.25, 0.5)
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
