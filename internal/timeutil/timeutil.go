// Package timeutil converts between "HH:MM" clock text and minute offsets.
//
// Nothing in this package returns an error. Malformed clock text parses to
// 0 and any minute offset, including negative ones, formats to a valid clock
// time plus a day offset.
package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const MinutesInDay = 24 * 60

// Result is a wall-clock time with the number of midnights crossed to reach it.
type Result struct {
	Time      string `json:"time"`
	DayOffset int    `json:"dayOffset"`
}

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// ParseTimeToMinutes returns hours*60+minutes for clock text such as "08:30".
// A missing minutes part counts as 0. Unparseable input yields 0.
func ParseTimeToMinutes(text string) int {
	hoursPart, rest, _ := strings.Cut(text, ":")
	minutesPart, _, _ := strings.Cut(rest, ":")

	hours, ok := parsePart(hoursPart)
	if !ok {
		return 0
	}
	minutes, ok := parsePart(minutesPart)
	if !ok {
		return 0
	}
	return hours*60 + minutes
}

func parsePart(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, true
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// FormatMinutesToTime normalizes total into [0, MinutesInDay) using floored
// modulo and reports the floored day offset, so -10 is 23:50 on day -1.
func FormatMinutesToTime(total int) Result {
	normalized := ((total % MinutesInDay) + MinutesInDay) % MinutesInDay
	dayOffset := total / MinutesInDay
	if total%MinutesInDay != 0 && total < 0 {
		dayOffset--
	}

	return Result{
		Time:      clock(normalized),
		DayOffset: dayOffset,
	}
}

// FormatFloatMinutes is FormatMinutesToTime for a float total, rounded to the
// nearest minute. Totals beyond the int range keep their sign: the day offset
// saturates at math.MaxInt or math.MinInt. NaN formats as 00:00 on day 0.
func FormatFloatMinutes(total float64) Result {
	total = math.Round(total)
	if math.IsNaN(total) {
		return Result{Time: clock(0)}
	}

	minuteOfDay := math.Mod(total, MinutesInDay)
	if math.IsNaN(minuteOfDay) {
		minuteOfDay = 0
	} else if minuteOfDay < 0 {
		minuteOfDay += MinutesInDay
	}
	return Result{
		Time:      clock(int(minuteOfDay)),
		DayOffset: saturateInt(math.Floor(total / MinutesInDay)),
	}
}

func clock(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}

func saturateInt(value float64) int {
	switch {
	case value >= float64(math.MaxInt):
		return math.MaxInt
	case value <= float64(math.MinInt):
		return math.MinInt
	default:
		return int(value)
	}
}

func MinutesFromMidnight(value time.Time) int {
	return value.Hour()*60 + value.Minute()
}

// ClockOf returns the "HH:MM" wall-clock text of value.
func ClockOf(value time.Time) string {
	return FormatMinutesToTime(MinutesFromMidnight(value)).Time
}

// IsClock reports whether text is strictly two digits, a colon, two digits.
// Range is not checked; "25:99" passes.
func IsClock(text string) bool {
	return clockPattern.MatchString(text)
}
