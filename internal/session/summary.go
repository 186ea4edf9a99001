package session

import "time"

// Summary holds the data displayed when a game ends.
type Summary struct {
	ID          string
	Rounds      int
	Answered    int
	TotalScore  int
	MaxScore    int
	MeanScore   float64
	Perfect     int // answers within tolerance
	Unparsed    int // skipped or malformed answers
	MeanTimeS   float64
	Duration    time.Duration
	BestPrompt  string
	BestScore   int
	WorstPrompt string
	WorstScore  int
}

// Summary builds the end-of-game summary from the recorded results.
func (s *Session) Summary() *Summary {
	sum := &Summary{
		ID:         s.ID,
		Rounds:     s.TotalRounds,
		Answered:   len(s.Results),
		TotalScore: s.TotalScore,
		MaxScore:   s.MaxScore(),
		Duration:   time.Since(s.StartedAt),
	}
	if len(s.Results) == 0 {
		return sum
	}

	var totalTime float64
	for i, r := range s.Results {
		totalTime += r.TimeS
		if r.Breakdown.AccuracyFactor >= 1 {
			sum.Perfect++
		}
		if !r.Parsed() {
			sum.Unparsed++
		}
		if i == 0 || r.Score > sum.BestScore {
			sum.BestScore, sum.BestPrompt = r.Score, r.Prompt
		}
		if i == 0 || r.Score < sum.WorstScore {
			sum.WorstScore, sum.WorstPrompt = r.Score, r.Prompt
		}
	}

	n := float64(len(s.Results))
	sum.MeanScore = float64(s.TotalScore) / n
	sum.MeanTimeS = totalTime / n
	return sum
}
