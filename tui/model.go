// Package tui provides the interactive terminal form for workend.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"workend/config"
	"workend/internal/timeutil"
	"workend/workday"
)

const (
	fieldStart = iota
	fieldBreak
	fieldOvertime
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldStart:    "Start",
	fieldBreak:    "Break (min)",
	fieldOvertime: "Overtime (h)",
}

// Model is the bubbletea model for the end-of-workday form. The result is
// recomputed after every update that touches a field.
type Model struct {
	fields [fieldCount]textinput.Model
	focus  int

	defaults        workday.Inputs
	breakPresets    []float64
	overtimePresets []float64
	breakPreset     int
	overtimePreset  int

	result timeutil.Result
	status string
	styles Styles

	now       func() time.Time
	writeClip func(string) error
}

// New builds a form seeded with the configured defaults.
func New(cfg config.Config) Model {
	m := Model{
		defaults:        cfg.Inputs(),
		breakPresets:    cfg.Presets.BreakMinutes,
		overtimePresets: cfg.Presets.OvertimeHours,
		styles:          NewStyles(),
		now:             time.Now,
		writeClip:       clipboard.WriteAll,
	}

	for i := range m.fields {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 8
		input.Width = 10
		m.fields[i] = input
	}
	m.fields[fieldStart].Placeholder = "HH:MM"
	m.fields[fieldBreak].Placeholder = "0"
	m.fields[fieldOvertime].Placeholder = "0.00"

	m = m.reset()
	m.fields[fieldStart].Focus()
	return m
}

// Run starts the form in the alternate screen and blocks until it exits.
func Run(cfg config.Config) error {
	program := tea.NewProgram(New(cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run form: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down", "enter":
		return m.setFocus((m.focus + 1) % fieldCount), textinput.Blink
	case "shift+tab", "up":
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount), textinput.Blink
	case "ctrl+n":
		m.fields[fieldStart].SetValue(timeutil.ClockOf(m.now()))
		m.status = "Start set to now"
		return m.recompute(), nil
	case "ctrl+r":
		m = m.reset()
		m.status = "Reset to defaults"
		return m, nil
	case "ctrl+b":
		return m.cycleBreakPreset(), nil
	case "ctrl+o":
		return m.cycleOvertimePreset(), nil
	case "ctrl+y":
		return m.copyEndTime(), nil
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	m.status = ""
	return m.recompute(), cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("workend · end of workday"))
	b.WriteString("\n")

	for i, field := range m.fields {
		label := m.styles.Label
		if i == m.focus {
			label = m.styles.LabelFocused
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(field.View())
		if i == fieldStart && !timeutil.IsClock(strings.TrimSpace(field.Value())) {
			b.WriteString(" ")
			b.WriteString(m.styles.Warning.Render("expected HH:MM"))
		}
		b.WriteString("\n")
	}

	panel := m.styles.Muted.Render("Required time  "+formatWorkday(workday.WorkdayMinutes)) + "\n" +
		m.styles.Muted.Render("End of work    ") + m.styles.EndTime.Render(m.result.Time)
	if label := workday.DayLabel(m.result.DayOffset); label != "" {
		panel += m.styles.DayLabel.Render("(" + label + ")")
	}
	b.WriteString(m.styles.Panel.Render(panel))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render("tab next · ctrl+n now · ctrl+b break · ctrl+o overtime · ctrl+r reset · ctrl+y copy · esc quit"))
	b.WriteString("\n")

	return b.String()
}

// Result returns the end time for the current field values.
func (m Model) Result() timeutil.Result {
	return m.result
}

// Values returns the raw text of the start, break and overtime fields.
func (m Model) Values() (start, breakRaw, overtimeRaw string) {
	return m.fields[fieldStart].Value(), m.fields[fieldBreak].Value(), m.fields[fieldOvertime].Value()
}

func (m Model) recompute() Model {
	start, breakRaw, overtimeRaw := m.Values()
	m.result = workday.ComputeFromText(start, breakRaw, overtimeRaw)
	return m
}

func (m Model) reset() Model {
	m.fields[fieldStart].SetValue(m.defaults.StartTime)
	m.fields[fieldBreak].SetValue(formatNumber(m.defaults.BreakMinutes))
	m.fields[fieldOvertime].SetValue(formatNumber(m.defaults.OvertimeHours))
	m.breakPreset = 0
	m.overtimePreset = 0
	return m.recompute()
}

func (m Model) setFocus(index int) Model {
	m.fields[m.focus].Blur()
	m.focus = index
	m.fields[m.focus].Focus()
	return m
}

func (m Model) cycleBreakPreset() Model {
	if len(m.breakPresets) == 0 {
		return m
	}
	value := workday.ClampBreak(m.breakPresets[m.breakPreset%len(m.breakPresets)])
	m.breakPreset = (m.breakPreset + 1) % len(m.breakPresets)
	m.fields[fieldBreak].SetValue(formatNumber(value))
	m.status = "Break " + formatNumber(value) + " min"
	return m.recompute()
}

func (m Model) cycleOvertimePreset() Model {
	if len(m.overtimePresets) == 0 {
		return m
	}
	value := workday.ClampOvertime(m.overtimePresets[m.overtimePreset%len(m.overtimePresets)])
	m.overtimePreset = (m.overtimePreset + 1) % len(m.overtimePresets)
	m.fields[fieldOvertime].SetValue(formatNumber(value))
	m.status = "Overtime " + formatNumber(value) + " h"
	return m.recompute()
}

// Clipboard access is best-effort; a failure only changes the status line.
func (m Model) copyEndTime() Model {
	if m.writeClip == nil {
		return m
	}
	if err := m.writeClip(m.result.Time); err != nil {
		m.status = "Copy unavailable"
		return m
	}
	m.status = "Copied " + m.result.Time
	return m
}

func formatWorkday(minutes int) string {
	return fmt.Sprintf("%d:%02d h", minutes/60, minutes%60)
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
