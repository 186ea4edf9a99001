// Package session tracks one game: its configuration, the round counter and
// the graded results in answer order.
package session

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quickmaths/internal/problemgen"
)

const (
	// DefaultRounds is the number of rounds when none is configured.
	DefaultRounds = 10

	// MinRounds and MaxRounds bound the rounds of a game.
	MinRounds = 1
	MaxRounds = 100
)

var (
	// ErrInvalidRounds is returned for a round count outside [MinRounds, MaxRounds].
	ErrInvalidRounds = errors.New("rounds must be between 1 and 100")

	// ErrSessionComplete is returned when recording past the last round.
	ErrSessionComplete = errors.New("session already complete")
)

// Session is the mutable state of one game. It is owned by a single caller
// and is not safe for concurrent use.
type Session struct {
	// ID is a random UUID identifying this game in logs.
	ID string

	Mode  problemgen.Mode
	Level problemgen.Level

	// TotalRounds is the number of problems in the game.
	TotalRounds int

	// Round is the number of rounds answered so far.
	Round int

	// TotalScore is the sum of all recorded scores.
	TotalScore int

	// Results holds one entry per answered round.
	Results []Result

	// StartedAt is when the session was created or last reset.
	StartedAt time.Time
}

// NewSession creates a session for the given mode, level and round count.
func NewSession(mode problemgen.Mode, level problemgen.Level, rounds int) (*Session, error) {
	if !slices.Contains(problemgen.Modes(), mode) {
		return nil, fmt.Errorf("new session: %q: %w", mode, problemgen.ErrUnknownMode)
	}
	if !slices.Contains(problemgen.Levels(), level) {
		return nil, fmt.Errorf("new session: %q: %w", level, problemgen.ErrUnknownLevel)
	}
	if err := ValidateRounds(rounds); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	return &Session{
		ID:          uuid.New().String(),
		Mode:        mode,
		Level:       level,
		TotalRounds: rounds,
		Results:     make([]Result, 0, rounds),
		StartedAt:   time.Now(),
	}, nil
}

// ValidateRounds checks a round count against [MinRounds, MaxRounds].
func ValidateRounds(rounds int) error {
	if rounds < MinRounds || rounds > MaxRounds {
		return fmt.Errorf("%d: %w", rounds, ErrInvalidRounds)
	}
	return nil
}

// Done reports whether every round has been answered.
func (s *Session) Done() bool {
	return s.Round >= s.TotalRounds
}

// CurrentRound is the 1-based number of the round being played.
func (s *Session) CurrentRound() int {
	return min(s.Round+1, s.TotalRounds)
}

// MaxScore is the best possible total for this session.
func (s *Session) MaxScore() int {
	return s.TotalRounds * 100
}

// Record appends a graded result and advances the round counter.
func (s *Session) Record(r Result) error {
	if s.Done() {
		return ErrSessionComplete
	}
	s.Results = append(s.Results, r)
	s.TotalScore += r.Score
	s.Round++
	return nil
}

// Reset clears all progress and starts a fresh game with the same settings
// under a new ID.
func (s *Session) Reset() {
	s.ID = uuid.New().String()
	s.Round = 0
	s.TotalScore = 0
	s.Results = make([]Result, 0, s.TotalRounds)
	s.StartedAt = time.Now()
}
