package problemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quickmaths/internal/convert"
)

// Mode selects which kind of problem a game serves.
type Mode string

const (
	ModeArithmetic Mode = "arithmetic"
	ModeUnit       Mode = "unit"
	ModeTimezone   Mode = "timezone"

	// ModeMixed dispatches to one of the other modes per problem. A generated
	// Problem never carries this mode.
	ModeMixed Mode = "mixed"
)

// Modes returns every selectable mode.
func Modes() []Mode {
	return []Mode{ModeArithmetic, ModeUnit, ModeTimezone, ModeMixed}
}

// ParseMode resolves a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownMode)
}

// Level is the arithmetic difficulty level. Unit and timezone problems
// ignore it.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// Levels returns every level from easiest to hardest.
func Levels() []Level {
	return []Level{LevelEasy, LevelMedium, LevelHard}
}

// ParseLevel resolves a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range Levels() {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownLevel)
}

// Op is an arithmetic operator.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "×"
	OpDiv Op = "÷"
)

// Problem is a single generated challenge. It is immutable once returned by
// a generator.
type Problem struct {
	// Mode is arithmetic, unit or timezone.
	Mode Mode

	// Prompt is the question shown to the player, e.g. "45 + 32".
	Prompt string

	// CorrectValue is the target answer. For timezone problems it is
	// minutes since midnight at the destination zone.
	CorrectValue float64

	// Difficulty is the estimated hardness within the mode's clamp bounds.
	Difficulty float64

	// Tolerance is the largest absolute error that still earns full
	// accuracy. Always > 0.
	Tolerance float64

	// UnitHint is a display hint: the target unit, or the clock format.
	UnitHint string

	// Category is set for unit problems only.
	Category convert.Category

	// Exactly one of the following is set, matching Mode.
	Arithmetic *ArithmeticParams
	Unit       *UnitParams
	Timezone   *TimezoneParams
}

// ArithmeticParams are the inputs of an arithmetic problem.
type ArithmeticParams struct {
	Op   Op
	A, B float64
}

// UnitParams are the inputs of a unit-conversion problem.
type UnitParams struct {
	Category convert.Category
	Value    float64
	From, To string
}

// TimezoneParams are the inputs of a timezone problem.
type TimezoneParams struct {
	From, To      string
	SourceMinutes int
}
