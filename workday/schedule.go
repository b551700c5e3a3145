package workday

import "workend/internal/timeutil"

const DefaultStepMinutes = 15

// Row is one start time and the end time it leads to.
type Row struct {
	Start         string
	BreakMinutes  float64
	OvertimeHours float64
	End           string
	DayOffset     int
}

// Schedule lists end times for start times from..to (inclusive) every
// stepMinutes. A from after to yields the single row for from. The table never
// spans more than one day of start times.
func Schedule(from, to string, stepMinutes int, breakMinutes, overtimeHours float64) []Row {
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}
	breakMinutes = ClampBreak(breakMinutes)
	overtimeHours = ClampOvertime(overtimeHours)

	start := timeutil.ParseTimeToMinutes(from)
	end := timeutil.ParseTimeToMinutes(to)

	// The unsigned difference is exact even when end-start overflows int.
	var span uint
	if end > start {
		span = uint(end) - uint(start)
	}
	if span >= timeutil.MinutesInDay {
		span = timeutil.MinutesInDay - 1
	}
	count := int(span)/stepMinutes + 1

	first := (start%timeutil.MinutesInDay + timeutil.MinutesInDay) % timeutil.MinutesInDay
	rows := make([]Row, 0, count)
	for i := range count {
		startClock := timeutil.FormatMinutesToTime(first + i*stepMinutes).Time
		result := ComputeEndTime(startClock, breakMinutes, overtimeHours)
		rows = append(rows, Row{
			Start:         startClock,
			BreakMinutes:  breakMinutes,
			OvertimeHours: overtimeHours,
			End:           result.Time,
			DayOffset:     result.DayOffset,
		})
	}
	return rows
}
