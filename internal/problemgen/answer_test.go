package problemgen

import (
	"errors"
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"77", 77, true},
		{" 77 ", 77, true},
		{"-3.25", -3.25, true},
		{"1,234.5", 1234.5, true},
		{"1,000,000", 1e6, true},
		{"62.137", 62.137, true},
		{"1e3", 1000, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
	}

	for _, tc := range tests {
		got, err := ParseNumber(tc.input)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseNumber(%q) unexpected error: %v", tc.input, err)
				continue
			}
			if got != tc.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tc.input, got, tc.want)
			}
			continue
		}
		if !errors.Is(err, ErrUnparseable) {
			t.Errorf("ParseNumber(%q) error = %v, want ErrUnparseable", tc.input, err)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"05:00", 300, true},
		{"5:00", 300, true},
		{"09.05", 545, true},
		{" 23:59 ", 1439, true},
		{"00:00", 0, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"1200", 0, false},
		{"12:", 0, false},
		{":30", 0, false},
		{"-1:30", 0, false},
		{"ab:cd", 0, false},
		{"12:3a", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		got, err := ParseClock(tc.input)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseClock(%q) unexpected error: %v", tc.input, err)
				continue
			}
			if got != tc.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tc.input, got, tc.want)
			}
			continue
		}
		if !errors.Is(err, ErrUnparseable) {
			t.Errorf("ParseClock(%q) error = %v, want ErrUnparseable", tc.input, err)
		}
	}
}

func TestParseAnswer_ByMode(t *testing.T) {
	if v, err := ParseAnswer("10:30", ModeTimezone); err != nil || v != 630 {
		t.Errorf("timezone: got %v, %v", v, err)
	}
	if _, err := ParseAnswer("10:30", ModeArithmetic); !errors.Is(err, ErrUnparseable) {
		t.Errorf("arithmetic should reject a clock: %v", err)
	}
	if v, err := ParseAnswer("2,500", ModeUnit); err != nil || v != 2500 {
		t.Errorf("unit: got %v, %v", v, err)
	}
	if _, err := ParseAnswer("1", ModeMixed); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("mixed has no parser: %v", err)
	}
}

func TestAbsError_Circular(t *testing.T) {
	p := newTimezoneProblem(23*60+50, "UTC", "UTC")
	// correct is 23:50; 00:05 is 15 minutes away across midnight
	if got := p.AbsError(5); got != 15 {
		t.Errorf("AbsError(00:05) = %v, want 15", got)
	}
	if got := p.AbsError(23*60 + 40); got != 10 {
		t.Errorf("AbsError(23:40) = %v, want 10", got)
	}
	if got := p.AbsError(11*60 + 50); got != 720 {
		t.Errorf("AbsError(11:50) = %v, want 720", got)
	}
}

func TestAbsError_Plain(t *testing.T) {
	p := validProblem() // 45 + 32
	if got := p.AbsError(80); got != 3 {
		t.Errorf("AbsError(80) = %v, want 3", got)
	}
	if got := p.AbsError(74); got != 3 {
		t.Errorf("AbsError(74) = %v, want 3", got)
	}
}

func TestEvaluate(t *testing.T) {
	p := validProblem()
	if got := p.Evaluate("77"); got != 0 {
		t.Errorf("Evaluate(77) = %v, want 0", got)
	}
	if got := p.Evaluate("seventy-seven"); !math.IsInf(got, 1) {
		t.Errorf("Evaluate(non-numeric) = %v, want +Inf", got)
	}
	if got := p.Evaluate(""); !math.IsInf(got, 1) {
		t.Errorf("Evaluate(empty) = %v, want +Inf", got)
	}
}

func TestFormatValue(t *testing.T) {
	tz := newTimezoneProblem(600, "UTC", "EST")
	if got := tz.FormatValue(tz.CorrectValue); got != "05:00" {
		t.Errorf("timezone FormatValue = %q, want 05:00", got)
	}

	u := newUnitProblem("length", 100, "km", "mi")
	if got := u.FormatValue(u.CorrectValue); got != "62.1371" {
		t.Errorf("unit FormatValue = %q, want 62.1371", got)
	}
}

func TestAnswerHint(t *testing.T) {
	tests := []struct {
		p    *Problem
		want string
	}{
		{validProblem(), "Answer as a number"},
		{newUnitProblem("mass", 2, "kg", "lb"), "Answer in lb"},
		{newTimezoneProblem(60, "UTC", "IST"), "Answer format: 24h HH:MM or HH.MM (e.g. 09:05 or 09.05)"},
	}
	for _, tc := range tests {
		if got := tc.p.AnswerHint(); got != tc.want {
			t.Errorf("%s: AnswerHint() = %q, want %q", tc.p.Prompt, got, tc.want)
		}
	}
}
