package workday

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"

	"workend/internal/timeutil"
)

const (
	// WorkdayMinutes is the fixed nominal workday length.
	WorkdayMinutes = 8 * 60

	DefaultStartTime     = "08:00"
	DefaultBreakMinutes  = 30.0
	DefaultOvertimeHours = 0.0
)

var (
	BreakPresets    = []float64{0, 15, 30, 45, 60}
	OvertimePresets = []float64{0, 1, 2}
)

// Inputs are the values collected from a form.
type Inputs struct {
	StartTime     string  `json:"startTime"`
	BreakMinutes  float64 `json:"breakMinutes"`
	OvertimeHours float64 `json:"overtimeHours"`
}

func DefaultInputs() Inputs {
	return Inputs{
		StartTime:     DefaultStartTime,
		BreakMinutes:  DefaultBreakMinutes,
		OvertimeHours: DefaultOvertimeHours,
	}
}

func (in Inputs) EndTime() timeutil.Result {
	return ComputeEndTime(in.StartTime, in.BreakMinutes, in.OvertimeHours)
}

// ComputeEndTime adds the workday, break and overtime to startTime.
//
// Negative, NaN and infinite durations count as zero and unparseable start
// times count as midnight. The sum is rounded to the nearest whole minute; a
// sum too large for an int saturates the day offset instead of wrapping.
func ComputeEndTime(startTime string, breakMinutes, overtimeHours float64) timeutil.Result {
	startMinutes := float64(timeutil.ParseTimeToMinutes(startTime))
	breakMins := nonNegative(breakMinutes)
	overtimeMins := nonNegative(overtimeHours) * 60

	total := startMinutes + WorkdayMinutes + breakMins + overtimeMins
	return timeutil.FormatFloatMinutes(total)
}

// ComputeFromText is ComputeEndTime for raw text fields that may hold
// partially typed numbers.
func ComputeFromText(startTime, breakRaw, overtimeRaw string) timeutil.Result {
	return ComputeEndTime(startTime, CoerceNumber(breakRaw), CoerceNumber(overtimeRaw))
}

// CoerceNumber converts raw into a float64, returning 0 for anything that is
// not a finite number.
func CoerceNumber(raw any) float64 {
	if text, ok := raw.(string); ok {
		raw = strings.TrimSpace(text)
	}
	value, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

func ClampBreak(minutes float64) float64 {
	return nonNegative(math.Floor(minutes))
}

func ClampOvertime(hours float64) float64 {
	return nonNegative(hours)
}

// DayLabel returns the "+N day" indicator, or "" when the result is on the
// same day or earlier.
func DayLabel(offset int) string {
	switch {
	case offset <= 0:
		return ""
	case offset == 1:
		return "+1 day"
	default:
		return fmt.Sprintf("+%d days", offset)
	}
}

// Describe renders a result as "HH:MM" followed by its day label, if any.
func Describe(result timeutil.Result) string {
	label := DayLabel(result.DayOffset)
	if label == "" {
		return result.Time
	}
	return result.Time + " (" + label + ")"
}

func nonNegative(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}
