package problemgen

import (
	"math"
	"testing"
)

func validProblem() *Problem {
	return newArithmeticProblem(OpAdd, 45, 32)
}

func TestStructural_ValidProblem(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validProblem()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_EmptyPrompt(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Prompt = ""
	err := v.Validate(p)
	if err == nil {
		t.Fatal("expected error for empty prompt")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
}

func TestStructural_Tolerance(t *testing.T) {
	v := &StructuralValidator{}
	for _, tol := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		p := validProblem()
		p.Tolerance = tol
		if err := v.Validate(p); err == nil {
			t.Errorf("tolerance %v should fail", tol)
		}
	}
}

func TestStructural_DifficultyOutOfBounds(t *testing.T) {
	v := &StructuralValidator{}

	p := validProblem()
	p.Difficulty = 6.5
	if err := v.Validate(p); err == nil {
		t.Error("arithmetic difficulty 6.5 should fail")
	}

	p = newTimezoneProblem(600, "UTC", "EST")
	p.Difficulty = 3.2
	if err := v.Validate(p); err == nil {
		t.Error("timezone difficulty 3.2 should fail")
	}

	p = newUnitProblem("length", 100, "km", "mi")
	p.Difficulty = 1.1
	if err := v.Validate(p); err == nil {
		t.Error("unit difficulty 1.1 should fail")
	}
}

func TestStructural_PayloadMismatch(t *testing.T) {
	v := &StructuralValidator{}

	p := validProblem()
	p.Mode = ModeTimezone
	p.Difficulty = 1.2
	if err := v.Validate(p); err == nil {
		t.Error("arithmetic payload under timezone mode should fail")
	}

	p = validProblem()
	p.Timezone = &TimezoneParams{From: "UTC", To: "EST"}
	if err := v.Validate(p); err == nil {
		t.Error("two payloads should fail")
	}
}

func TestStructural_MixedModeRejected(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Mode = ModeMixed
	if err := v.Validate(p); err == nil {
		t.Error("a problem must never carry mixed mode")
	}
}
