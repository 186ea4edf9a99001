package problemgen

import (
	"fmt"
	"math"
)

// StructuralValidator checks that required fields are present, that the
// variant payload matches the mode, and that difficulty and tolerance are
// finite and within bounds.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem) *ValidationError {
	if p.Prompt == "" {
		return v.fail("prompt is empty")
	}
	if math.IsNaN(p.CorrectValue) || math.IsInf(p.CorrectValue, 0) {
		return v.fail("correct value %v is not finite", p.CorrectValue)
	}
	if !(p.Tolerance > 0) || math.IsInf(p.Tolerance, 0) {
		return v.fail("tolerance %v must be positive and finite", p.Tolerance)
	}

	lo, hi, ok := DifficultyBounds(p.Mode)
	if !ok {
		return v.fail("mode %q is not a problem mode", p.Mode)
	}
	if !(p.Difficulty >= lo && p.Difficulty <= hi) {
		return v.fail("difficulty %v outside [%v, %v]", p.Difficulty, lo, hi)
	}

	var variants int
	if p.Arithmetic != nil {
		variants++
	}
	if p.Unit != nil {
		variants++
	}
	if p.Timezone != nil {
		variants++
	}
	if variants != 1 {
		return v.fail("expected exactly one variant payload, got %d", variants)
	}
	switch {
	case p.Mode == ModeArithmetic && p.Arithmetic == nil,
		p.Mode == ModeUnit && p.Unit == nil,
		p.Mode == ModeTimezone && p.Timezone == nil:
		return v.fail("payload does not match mode %q", p.Mode)
	}
	if p.Mode == ModeUnit && p.UnitHint == "" {
		return v.fail("unit problem has no unit hint")
	}
	return nil
}

func (v *StructuralValidator) fail(format string, args ...any) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
}

// DifficultyBounds returns the clamp range of a problem mode.
func DifficultyBounds(mode Mode) (lo, hi float64, ok bool) {
	switch mode {
	case ModeArithmetic:
		return ArithmeticMinDifficulty, ArithmeticMaxDifficulty, true
	case ModeUnit:
		return UnitMinDifficulty, UnitMaxDifficulty, true
	case ModeTimezone:
		return TimezoneMinDifficulty, TimezoneMaxDifficulty, true
	}
	return 0, 0, false
}
