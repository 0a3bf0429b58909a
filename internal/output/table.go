package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/nhmoon/internal/date"
	"github.com/twiced-technology-gmbh/nhmoon/internal/moon"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	todayStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230"))

	// Phase colors matching the TUI defaults.
	phaseStyles = map[string]lipgloss.Style{
		moon.Full.String(): lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		moon.New.String():  lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	}

	colorDisabled bool
)

// DisableColor strips all styling from table output.
func DisableColor() {
	colorDisabled = true
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	todayStyle = lipgloss.NewStyle()
	phaseStyles = map[string]lipgloss.Style{}
}

// SetColors applies configured ANSI colors. It has no effect once color is
// disabled.
func SetColors(full, newMoon, today string) {
	if colorDisabled {
		return
	}
	phaseStyles[moon.Full.String()] = lipgloss.NewStyle().Foreground(lipgloss.Color(full)).Bold(true)
	phaseStyles[moon.New.String()] = lipgloss.NewStyle().Foreground(lipgloss.Color(newMoon))
	todayStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(today))
}

// DayTable renders days as a formatted table.
func DayTable(w io.Writer, days []Day) {
	if len(days) == 0 {
		fmt.Fprintln(os.Stderr, "No dates found.")
		return
	}

	const pad = 2
	dateW, weekdayW, phaseW := 12, 9, 7
	for _, d := range days {
		dateW = max(dateW, len(d.Date.String())+pad)
	}

	header := fmt.Sprintf("%-*s %-*s %-*s %s",
		dateW, "DATE", weekdayW, "WEEKDAY", phaseW, "PHASE", "NOTE")
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(header, " ")))

	for _, d := range days {
		dateStr := d.Date.String()
		if d.Today {
			dateStr = todayStyle.Render(dateStr)
		}
		row := fmt.Sprintf("%s %-*s %s %s",
			padRight(dateStr, dateW),
			weekdayW, d.Weekday[:3],
			padRight(phaseDisplay(d.Phase), phaseW),
			note(d))
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// DayDetail renders a single day with full detail.
func DayDetail(w io.Writer, d Day) {
	titleLine := d.Date.String()
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(titleLine))
	fmt.Fprintln(w, strings.Repeat("─", len(titleLine)))

	printField(w, "Weekday", d.Weekday)
	printField(w, "Day of year", fmt.Sprint(d.YearDay))
	printField(w, "Ordinal", fmt.Sprint(int64(d.Ordinal)))
	printField(w, "Phase", phaseDisplay(d.Phase))
	printField(w, "Next full", dateOrDash(d.NextFull))
	printField(w, "Next new", dateOrDash(d.NextNew))
}

// Messagef prints a simple formatted message line.
func Messagef(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-12s %s\n", label+":", value)
}

func phaseDisplay(p moon.Phase) string {
	if p == moon.None {
		return dimStyle.Render("--")
	}
	return styledValue(p.String(), phaseStyles)
}

func note(d Day) string {
	if !d.Today && !d.Center {
		return ""
	}
	var parts []string
	if d.Today {
		parts = append(parts, "today")
	}
	if d.Center {
		parts = append(parts, "center")
	}
	return dimStyle.Render(strings.Join(parts, ","))
}

func dateOrDash(d *date.Date) string {
	if d == nil {
		return dimStyle.Render("--")
	}
	return d.String()
}

// padRight pads s with spaces to the given visible width, accounting for ANSI
// escape codes that are invisible but consume bytes.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// styledValue renders s using a matching style from the map, or returns s unchanged.
func styledValue(s string, styles map[string]lipgloss.Style) string {
	if st, ok := styles[s]; ok {
		return st.Render(s)
	}
	return s
}
