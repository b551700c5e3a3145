package output

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"workend/workday"
)

type Writer interface {
	Write(path string, rows []workday.Row) error
}

var scheduleHeaders = []string{"StartTime", "BreakMinutes", "OvertimeHours", "EndTime", "DayOffset"}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// DetectFormat infers the output format from the file extension, falling back
// to csv.
func DetectFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func scheduleValues(row workday.Row) []string {
	return []string{
		row.Start,
		formatNumber(row.BreakMinutes),
		formatNumber(row.OvertimeHours),
		row.End,
		strconv.Itoa(row.DayOffset),
	}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
