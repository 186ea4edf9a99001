package session

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/random"
)

func newTestSession(t *testing.T, rounds int) *Session {
	t.Helper()
	s, err := NewSession(problemgen.ModeArithmetic, problemgen.LevelEasy, rounds)
	require.NoError(t, err)
	return s
}

func additionProblem(t *testing.T) *problemgen.Problem {
	t.Helper()
	gen := problemgen.New(random.New(1), problemgen.DefaultConfig())
	for {
		p, err := gen.Generate(problemgen.ModeArithmetic, problemgen.LevelEasy, problemgen.DefaultUnitConfig())
		require.NoError(t, err)
		if p.Arithmetic.Op == problemgen.OpAdd {
			return p
		}
	}
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t, DefaultRounds)
	_, err := uuid.Parse(s.ID)
	assert.NoError(t, err)
	assert.Equal(t, 10, s.TotalRounds)
	assert.Equal(t, 0, s.Round)
	assert.Equal(t, 1, s.CurrentRound())
	assert.Equal(t, 1000, s.MaxScore())
	assert.False(t, s.Done())
	assert.False(t, s.StartedAt.IsZero())
}

func TestNewSession_Invalid(t *testing.T) {
	for _, rounds := range []int{0, -1, 101} {
		_, err := NewSession(problemgen.ModeMixed, problemgen.LevelHard, rounds)
		assert.ErrorIs(t, err, ErrInvalidRounds, "rounds=%d", rounds)
	}
	for _, rounds := range []int{1, 100} {
		_, err := NewSession(problemgen.ModeMixed, problemgen.LevelHard, rounds)
		assert.NoError(t, err, "rounds=%d", rounds)
	}

	_, err := NewSession("trivia", problemgen.LevelEasy, 5)
	assert.ErrorIs(t, err, problemgen.ErrUnknownMode)

	_, err = NewSession(problemgen.ModeUnit, "extreme", 5)
	assert.ErrorIs(t, err, problemgen.ErrUnknownLevel)
}

func TestRecord_AdvancesAndStops(t *testing.T) {
	s := newTestSession(t, 2)

	require.NoError(t, s.Record(Result{Score: 40}))
	assert.Equal(t, 2, s.CurrentRound())
	require.NoError(t, s.Record(Result{Score: 55}))

	assert.True(t, s.Done())
	assert.Equal(t, 95, s.TotalScore)
	assert.Len(t, s.Results, 2)
	assert.Equal(t, 2, s.CurrentRound())

	assert.ErrorIs(t, s.Record(Result{Score: 100}), ErrSessionComplete)
	assert.Equal(t, 95, s.TotalScore)
}

func TestReset(t *testing.T) {
	s := newTestSession(t, 3)
	id := s.ID
	require.NoError(t, s.Record(Result{Score: 70}))

	s.Reset()
	assert.NotEqual(t, id, s.ID)
	assert.Equal(t, 0, s.Round)
	assert.Equal(t, 0, s.TotalScore)
	assert.Empty(t, s.Results)
	assert.Equal(t, 3, s.TotalRounds)
	assert.Equal(t, problemgen.ModeArithmetic, s.Mode)
}

func TestGrade_CorrectAnswer(t *testing.T) {
	p := additionProblem(t)
	answer := p.FormatValue(p.CorrectValue)

	r := Grade(p, " "+answer+" ", 1500*time.Millisecond)
	assert.Equal(t, answer, r.Answer)
	assert.Equal(t, 0.0, r.AbsError)
	assert.Equal(t, 1.0, r.Breakdown.AccuracyFactor)
	assert.Equal(t, 1.5, r.TimeS)
	assert.Equal(t, p.Prompt, r.Prompt)
	assert.Equal(t, p.Tolerance, r.Tolerance)
	assert.False(t, r.Skipped)
	assert.Greater(t, r.Score, 80)
	assert.Equal(t, "0", r.ErrorDisplay())
}

func TestGrade_SkipAndGarbage(t *testing.T) {
	p := additionProblem(t)

	skip := Grade(p, "   ", time.Second)
	assert.True(t, skip.Skipped)
	assert.False(t, skip.Parsed())
	assert.True(t, math.IsInf(skip.AbsError, 1))
	assert.Equal(t, 0.0, skip.Breakdown.AccuracyFactor)
	assert.Equal(t, "n/a", skip.ErrorDisplay())

	bad := Grade(p, "lots", time.Second)
	assert.False(t, bad.Skipped)
	assert.False(t, bad.Parsed())
	assert.Equal(t, skip.Score, bad.Score)
	assert.Less(t, bad.Score, 100)
}

func TestGrade_NegativeElapsed(t *testing.T) {
	p := additionProblem(t)
	r := Grade(p, "1", -time.Second)
	assert.Equal(t, 0.0, r.TimeS)
}

func TestGrade_Timezone(t *testing.T) {
	gen := problemgen.New(random.New(3), problemgen.DefaultConfig())
	p, err := gen.Generate(problemgen.ModeTimezone, problemgen.LevelEasy, problemgen.DefaultUnitConfig())
	require.NoError(t, err)

	r := Grade(p, p.FormatValue(p.CorrectValue), 4*time.Second)
	assert.Equal(t, 0.0, r.AbsError)
	assert.Regexp(t, `^\d\d:\d\d$`, r.CorrectDisplay)
}

func TestFeedbackLines(t *testing.T) {
	r := Result{
		CorrectDisplay: "77",
		AbsError:       0.25,
		Score:          90,
		TimeS:          2,
		Tolerance:      0.5976,
	}
	r.Breakdown.AccuracyFactor = 1
	r.Breakdown.SpeedFactor = 0.7763

	assert.Equal(t, "Correct: 77 | Your error: 0.25", r.CorrectLine())
	assert.Equal(t, "Score +90 (acc x1.00, spd x0.78, tol 0.598, 2.00s)", r.ScoreLine())

	r.AbsError = math.Inf(1)
	assert.Equal(t, "Correct: 77 | Your error: n/a", r.CorrectLine())
}
