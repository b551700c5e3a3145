package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"workend/config"
	"workend/output"
	"workend/workday"
)

var (
	exportFormat   string
	exportOutput   string
	exportFrom     string
	exportTo       string
	exportStep     int
	exportBreak    string
	exportOvertime string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export end times for a range of start times to CSV/Excel",
	Long: `Export a table of end times, one row per start time between --from and --to.

Break and overtime default to the configured values. The table never spans
more than one day of start times. Output format can be selected explicitly via
--format or inferred from --output extension.`,
	Example: `
  # Quarter-hour table between 07:00 and 10:00 as CSV
  workend export --from 07:00 --to 10:00 --output ./endtimes.csv

  # Half-hour table with a 45 minute break as Excel
  workend export --from 06:00 --to 12:00 --step 30 --break 45 --output ./endtimes.xlsx

  # Force Excel format independent of extension
  workend export --format excel --output ./endtimes.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runExport(cmd.OutOrStdout(), exportOptions{
			from:        exportFrom,
			to:          exportTo,
			step:        exportStep,
			breakRaw:    exportBreak,
			overtimeRaw: exportOvertime,
			format:      exportFormat,
			output:      exportOutput,
		}, *cfg)
	},
}

type exportOptions struct {
	from        string
	to          string
	step        int
	breakRaw    string
	overtimeRaw string
	format      string
	output      string
}

func runExport(out io.Writer, opts exportOptions, cfg config.Config) error {
	defaults := cfg.Inputs()

	from := opts.from
	if strings.TrimSpace(from) == "" {
		from = defaults.StartTime
	}
	to := opts.to
	if strings.TrimSpace(to) == "" {
		to = from
	}
	breakMinutes := defaults.BreakMinutes
	if strings.TrimSpace(opts.breakRaw) != "" {
		breakMinutes = workday.CoerceNumber(opts.breakRaw)
	}
	overtimeHours := defaults.OvertimeHours
	if strings.TrimSpace(opts.overtimeRaw) != "" {
		overtimeHours = workday.CoerceNumber(opts.overtimeRaw)
	}

	format := opts.format
	if strings.TrimSpace(format) == "" {
		format = output.DetectFormat(opts.output)
	}
	writer, err := output.WriterForFormat(format)
	if err != nil {
		return err
	}

	rows := workday.Schedule(from, to, opts.step, breakMinutes, overtimeHours)
	if err := writer.Write(opts.output, rows); err != nil {
		return err
	}

	fmt.Fprintf(out, "Export completed. Rows: %d, Format: %s, File: %s\n", len(rows), format, opts.output)
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFrom, "from", "", "First start time HH:MM (default: defaults.start_time)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "Last start time HH:MM (default: --from)")
	exportCmd.Flags().IntVar(&exportStep, "step", workday.DefaultStepMinutes, "Minutes between start times")
	exportCmd.Flags().StringVar(&exportBreak, "break", "", "Break in minutes (default: defaults.break_minutes)")
	exportCmd.Flags().StringVar(&exportOvertime, "overtime", "", "Overtime in hours (default: defaults.overtime_hours)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")

	_ = exportCmd.MarkFlagRequired("output")
}
