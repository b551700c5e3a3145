package workday

import (
	"math"
	"testing"

	"workend/internal/timeutil"
)

func TestComputeEndTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		start    string
		brk      float64
		overtime float64
		want     timeutil.Result
	}{
		{name: "defaults", start: "08:00", brk: 30, overtime: 0, want: timeutil.Result{Time: "16:30", DayOffset: 0}},
		{name: "crosses midnight", start: "20:00", brk: 60, overtime: 2, want: timeutil.Result{Time: "07:00", DayOffset: 1}},
		{name: "unparseable start is midnight", start: "bad", brk: 0, overtime: 0, want: timeutil.Result{Time: "08:00", DayOffset: 0}},
		{name: "quarter hour overtime", start: "09:00", brk: 15, overtime: 0.25, want: timeutil.Result{Time: "17:30", DayOffset: 0}},
		{name: "fractional overtime rounds", start: "09:00", brk: 0, overtime: 0.01, want: timeutil.Result{Time: "17:01", DayOffset: 0}},
		{name: "multi day", start: "23:00", brk: 0, overtime: 40, want: timeutil.Result{Time: "23:00", DayOffset: 2}},
		{name: "ends exactly at midnight", start: "15:30", brk: 30, overtime: 0, want: timeutil.Result{Time: "00:00", DayOffset: 1}},
	}

	for _, tc := range tests {
		got := ComputeEndTime(tc.start, tc.brk, tc.overtime)
		if got != tc.want {
			t.Fatalf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
	}

	for _, overtime := range []float64{1e17, 1e18, 1e300, math.MaxFloat64} {
		got := ComputeEndTime("08:00", 0, overtime)
		if got.DayOffset <= 0 || DayLabel(got.DayOffset) == "" {
			t.Fatalf("overtime %g: expected a positive day offset, got %+v", overtime, got)
		}
		if !timeutil.IsClock(got.Time) {
			t.Fatalf("overtime %g: expected HH:MM time, got %q", overtime, got.Time)
		}
	}
}

func TestComputeFromText_HugeOvertimeKeepsDayLabel(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"1e18", "1e300"} {
		got := ComputeFromText("08:00", "0", raw)
		if got.DayOffset <= 0 {
			t.Fatalf("overtime %s: expected a positive day offset, got %+v", raw, got)
		}
		if label := DayLabel(got.DayOffset); label == "" {
			t.Fatalf("overtime %s: expected a day label for %+v", raw, got)
		}
	}
}

func TestComputeEndTime_ClampsNegativeAndNonFiniteDurations(t *testing.T) {
	t.Parallel()

	base := ComputeEndTime("08:00", 0, 0)

	for _, brk := range []float64{-100, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := ComputeEndTime("08:00", brk, 0); got != base {
			t.Fatalf("break %v: expected %+v, got %+v", brk, base, got)
		}
	}
	for _, overtime := range []float64{-5, math.NaN(), math.Inf(1)} {
		if got := ComputeEndTime("08:00", 0, overtime); got != base {
			t.Fatalf("overtime %v: expected %+v, got %+v", overtime, base, got)
		}
	}
}

func TestComputeEndTime_IsIdempotent(t *testing.T) {
	t.Parallel()

	first := ComputeEndTime("20:00", 60, 2)
	second := ComputeEndTime("20:00", 60, 2)
	if first != second {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestInputsEndTime_UsesDefaults(t *testing.T) {
	t.Parallel()

	got := DefaultInputs().EndTime()
	if got.Time != "16:30" || got.DayOffset != 0 {
		t.Fatalf("unexpected default end time: %+v", got)
	}
}

func TestComputeFromText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		start, brk, overtime string
		want                 string
	}{
		{start: "08:00", brk: "30", overtime: "0", want: "16:30"},
		{start: "08:00", brk: "", overtime: "", want: "16:00"},
		{start: "08:00", brk: "3", overtime: "1", want: "17:03"},
		{start: "08:00", brk: "abc", overtime: "-", want: "16:00"},
		{start: "08:00", brk: " 45 ", overtime: " 1.5 ", want: "18:15"},
		{start: "08:00", brk: "-30", overtime: "-2", want: "16:00"},
		{start: "0", brk: "0", overtime: "0", want: "08:00"},
	}

	for _, tc := range tests {
		got := ComputeFromText(tc.start, tc.brk, tc.overtime)
		if got.Time != tc.want {
			t.Fatalf("ComputeFromText(%q, %q, %q): expected %s, got %+v", tc.start, tc.brk, tc.overtime, tc.want, got)
		}
	}
}

func TestCoerceNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input any
		want  float64
	}{
		{input: "30", want: 30},
		{input: "0.25", want: 0.25},
		{input: "", want: 0},
		{input: "abc", want: 0},
		{input: "NaN", want: 0},
		{input: nil, want: 0},
		{input: 15, want: 15},
		{input: 2.5, want: 2.5},
	}

	for _, tc := range tests {
		if got := CoerceNumber(tc.input); got != tc.want {
			t.Fatalf("CoerceNumber(%#v): expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestClampPresets(t *testing.T) {
	t.Parallel()

	if got := ClampBreak(17.9); got != 17 {
		t.Fatalf("expected floored break 17, got %v", got)
	}
	if got := ClampBreak(-5); got != 0 {
		t.Fatalf("expected clamped break 0, got %v", got)
	}
	if got := ClampOvertime(-1); got != 0 {
		t.Fatalf("expected clamped overtime 0, got %v", got)
	}
	if got := ClampOvertime(1.25); got != 1.25 {
		t.Fatalf("expected overtime 1.25, got %v", got)
	}
}

func TestDayLabelAndDescribe(t *testing.T) {
	t.Parallel()

	labels := map[int]string{-1: "", 0: "", 1: "+1 day", 3: "+3 days"}
	for offset, want := range labels {
		if got := DayLabel(offset); got != want {
			t.Fatalf("DayLabel(%d): expected %q, got %q", offset, want, got)
		}
	}

	if got := Describe(timeutil.Result{Time: "07:00", DayOffset: 1}); got != "07:00 (+1 day)" {
		t.Fatalf("unexpected description: %q", got)
	}
	if got := Describe(timeutil.Result{Time: "16:30"}); got != "16:30" {
		t.Fatalf("unexpected description: %q", got)
	}
}
