package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestScore_PerfectAnswer(t *testing.T) {
	// 45 + 32 answered correctly in 2s
	r := Score(0, 0.5976, 1.2, 2.0)
	if r.Score != 90 {
		t.Errorf("Score = %d, want 90", r.Score)
	}
	b := r.Breakdown
	if !almostEqual(b.AccuracyFactor, 1.0) {
		t.Errorf("AccuracyFactor = %f, want 1.0", b.AccuracyFactor)
	}
	if !almostEqual(b.SpeedFactor, 0.776) {
		t.Errorf("SpeedFactor = %f, want 0.776", b.SpeedFactor)
	}
	if !almostEqual(b.WSpeed, 0.456) || !almostEqual(b.WAcc, 0.544) {
		t.Errorf("weights = %f/%f, want 0.544/0.456", b.WAcc, b.WSpeed)
	}
	if b.TimeS != 2.0 || b.Tolerance != 0.5976 {
		t.Errorf("breakdown echoes = %f/%f", b.TimeS, b.Tolerance)
	}
}

func TestScore_ParseFailure(t *testing.T) {
	r := Score(math.Inf(1), 0.5976, 1.2, 2.0)
	b := r.Breakdown
	if b.AccuracyFactor != 0 {
		t.Errorf("AccuracyFactor = %f, want 0", b.AccuracyFactor)
	}
	want := int(math.RoundToEven(100 * b.WSpeed * b.SpeedFactor * b.SpdAccWeight))
	if r.Score != want {
		t.Errorf("Score = %d, want %d", r.Score, want)
	}
	if r.Score != 4 {
		t.Errorf("Score = %d, want 4", r.Score)
	}
}

func TestScore_InstantWrongAnswerFloor(t *testing.T) {
	// the speed term keeps a small positive score
	assert.Equal(t, 5, Score(math.Inf(1), 1, 1, 0).Score)
	assert.Equal(t, 8, Score(math.Inf(1), 3, 6, 0).Score)
}

func TestScore_PartialCredit(t *testing.T) {
	r := Score(0.3, 0.5976, 1.2, 2.0)
	assert.Equal(t, 48, r.Score)
	assert.InDelta(t, 0.515, r.Breakdown.AccuracyFactor, epsilon)
}

func TestScore_ZeroTolerance(t *testing.T) {
	r := Score(0, 0, 2, 1)
	assert.Equal(t, 0.0, r.Breakdown.AccuracyFactor)
	assert.Less(t, r.Score, 50)
}

func TestScore_NegativeElapsedClamped(t *testing.T) {
	assert.Equal(t, Score(0, 1, 2, 0), Score(0, 1, 2, -5))
}

func TestScore_Bounds(t *testing.T) {
	for _, d := range []float64{1, 1.2, 2, 3.5, 5, 6} {
		for _, e := range []float64{0, 0.1, 1, 10, 1e6, math.Inf(1)} {
			for _, s := range []float64{0, 0.5, 3, 30, 1e5} {
				r := Score(e, 0.75, d, s)
				assert.GreaterOrEqual(t, r.Score, 0)
				assert.LessOrEqual(t, r.Score, MaxScore)
			}
		}
	}
	assert.Equal(t, MaxScore, Score(0, 1, 1, 0).Score)
}

func TestScore_MonotonicInError(t *testing.T) {
	for _, d := range []float64{1, 2.5, 6} {
		prev := MaxScore + 1
		for e := 0.0; e <= 5; e += 0.05 {
			got := Score(e, 1, d, 3).Score
			if got > prev {
				t.Fatalf("d=%v: score rose from %d to %d at error %v", d, prev, got, e)
			}
			prev = got
		}
	}
}

func TestScore_MonotonicInTime(t *testing.T) {
	for _, e := range []float64{0, 0.5, math.Inf(1)} {
		prev := MaxScore + 1
		for s := 0.0; s <= 120; s += 0.5 {
			got := Score(e, 1, 2, s).Score
			if got > prev {
				t.Fatalf("e=%v: score rose from %d to %d at %vs", e, prev, got, s)
			}
			prev = got
		}
	}
}

func TestSpeedFactor(t *testing.T) {
	assert.Equal(t, 1.0, SpeedFactor(0, 3))
	// harder problems decay more slowly
	assert.Greater(t, SpeedFactor(10, 4), SpeedFactor(10, 1))
	assert.Greater(t, SpeedFactor(1, 2), SpeedFactor(2, 2))
}

func TestSpeedWeight(t *testing.T) {
	assert.Equal(t, 0.5, SpeedWeight(1))
	assert.Equal(t, 0.25, SpeedWeight(6))
	assert.InDelta(t, 0.5/math.Sqrt(2), SpeedWeight(2), 1e-12)
}
