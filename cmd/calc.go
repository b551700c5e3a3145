package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"workend/config"
	"workend/internal/timeutil"
	"workend/workday"
)

var (
	calcStart    string
	calcBreak    string
	calcOvertime string
	calcNow      bool
	calcCopy     bool
	calcJSON     bool
	calcNoColor  bool
)

var (
	colorLabel = color.New(color.Faint)
	colorEnd   = color.New(color.FgCyan, color.Bold)
	colorDay   = color.New(color.FgYellow)
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Print the end of the workday",
	Long: `Print when the workday ends: start + 8:00 h + break + overtime.

Unset flags fall back to the configured defaults. Malformed values never fail:
an unparseable start counts as 00:00 and unparseable or negative durations
count as zero. A "+N day" marker is printed when the end is past midnight.`,
	Example: `
  # Configured defaults
  workend calc

  # Explicit values
  workend calc --start 07:45 --break 45 --overtime 1.5

  # Start now, copy the result, print JSON
  workend calc --now --copy --json
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		opts := calcOptions{
			start:       optionalFlag(flags.Changed("start"), calcStart),
			breakRaw:    optionalFlag(flags.Changed("break"), calcBreak),
			overtimeRaw: optionalFlag(flags.Changed("overtime"), calcOvertime),
			useNow:      calcNow,
			copy:        calcCopy,
			asJSON:      calcJSON,
		}
		if calcNoColor {
			color.NoColor = true
		}
		return runCalc(cmd.OutOrStdout(), opts, *cfg, time.Now, clipboard.WriteAll)
	},
}

type calcOptions struct {
	start       *string
	breakRaw    *string
	overtimeRaw *string
	useNow      bool
	copy        bool
	asJSON      bool
}

type calcResult struct {
	StartTime     string  `json:"startTime"`
	BreakMinutes  float64 `json:"breakMinutes"`
	OvertimeHours float64 `json:"overtimeHours"`
	Time          string  `json:"time"`
	DayOffset     int     `json:"dayOffset"`
	Label         string  `json:"label,omitempty"`
}

// resolveCalcInputs merges explicit flags over the configured defaults.
func resolveCalcInputs(opts calcOptions, cfg config.Config, now func() time.Time) workday.Inputs {
	inputs := cfg.Inputs()
	if opts.start != nil {
		inputs.StartTime = *opts.start
	}
	if opts.useNow {
		inputs.StartTime = timeutil.ClockOf(now())
	}
	if opts.breakRaw != nil {
		inputs.BreakMinutes = workday.CoerceNumber(*opts.breakRaw)
	}
	if opts.overtimeRaw != nil {
		inputs.OvertimeHours = workday.CoerceNumber(*opts.overtimeRaw)
	}
	return inputs
}

func runCalc(out io.Writer, opts calcOptions, cfg config.Config, now func() time.Time, writeClip func(string) error) error {
	inputs := resolveCalcInputs(opts, cfg, now)
	result := inputs.EndTime()

	if opts.copy && writeClip != nil {
		_ = writeClip(result.Time)
	}

	if opts.asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(calcResult{
			StartTime:     inputs.StartTime,
			BreakMinutes:  inputs.BreakMinutes,
			OvertimeHours: inputs.OvertimeHours,
			Time:          result.Time,
			DayOffset:     result.DayOffset,
			Label:         workday.DayLabel(result.DayOffset),
		})
	}

	colorLabel.Fprintf(out, "Start %s · break %s min · overtime %s h\n",
		strings.TrimSpace(inputs.StartTime), formatFloat(inputs.BreakMinutes), formatFloat(inputs.OvertimeHours))
	colorLabel.Fprint(out, "End of work: ")
	colorEnd.Fprint(out, result.Time)
	if label := workday.DayLabel(result.DayOffset); label != "" {
		colorDay.Fprintf(out, " (%s)", label)
	}
	fmt.Fprintln(out)
	return nil
}

func optionalFlag(changed bool, value string) *string {
	if !changed {
		return nil
	}
	return &value
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringVarP(&calcStart, "start", "s", "", "Start time HH:MM (default: defaults.start_time)")
	calcCmd.Flags().StringVarP(&calcBreak, "break", "b", "", "Break in minutes (default: defaults.break_minutes)")
	calcCmd.Flags().StringVarP(&calcOvertime, "overtime", "o", "", "Overtime in hours (default: defaults.overtime_hours)")
	calcCmd.Flags().BoolVar(&calcNow, "now", false, "Use the current time as start")
	calcCmd.Flags().BoolVarP(&calcCopy, "copy", "c", false, "Copy the end time to the clipboard (best effort)")
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "Print the result as JSON")
	calcCmd.Flags().BoolVar(&calcNoColor, "no-color", false, "Disable colored output")
}
