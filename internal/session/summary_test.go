package session

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_Empty(t *testing.T) {
	s := newTestSession(t, 5)
	sum := s.Summary()
	assert.Equal(t, s.ID, sum.ID)
	assert.Equal(t, 5, sum.Rounds)
	assert.Equal(t, 0, sum.Answered)
	assert.Equal(t, 500, sum.MaxScore)
	assert.Zero(t, sum.MeanScore)
}

func TestSummary_Aggregates(t *testing.T) {
	s := newTestSession(t, 3)

	perfect := Result{Prompt: "45 + 32", Score: 90, TimeS: 2}
	perfect.Breakdown.AccuracyFactor = 1
	near := Result{Prompt: "12 - 50", Score: 60, TimeS: 4, AbsError: 0.4}
	near.Breakdown.AccuracyFactor = 0.5
	skipped := Result{Prompt: "33 + 44", Score: 3, TimeS: 6, AbsError: math.Inf(1), Skipped: true}

	for _, r := range []Result{perfect, near, skipped} {
		require.NoError(t, s.Record(r))
	}

	sum := s.Summary()
	assert.Equal(t, 3, sum.Answered)
	assert.Equal(t, 153, sum.TotalScore)
	assert.Equal(t, 300, sum.MaxScore)
	assert.InDelta(t, 51.0, sum.MeanScore, 1e-9)
	assert.InDelta(t, 4.0, sum.MeanTimeS, 1e-9)
	assert.Equal(t, 1, sum.Perfect)
	assert.Equal(t, 1, sum.Unparsed)
	assert.Equal(t, "45 + 32", sum.BestPrompt)
	assert.Equal(t, 90, sum.BestScore)
	assert.Equal(t, "33 + 44", sum.WorstPrompt)
	assert.Equal(t, 3, sum.WorstScore)
}
