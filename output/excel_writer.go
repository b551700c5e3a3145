package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"workend/workday"
)

const scheduleSheet = "Schedule"

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, rows []workday.Row) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), scheduleSheet); err != nil {
		return fmt.Errorf("rename excel sheet: %w", err)
	}

	for col, header := range scheduleHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(scheduleSheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, row := range rows {
		values := []any{row.Start, row.BreakMinutes, row.OvertimeHours, row.End, row.DayOffset}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := file.SetCellValue(scheduleSheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
