package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/twiced-technology-gmbh/nhmoon/internal/engine"
	"github.com/twiced-technology-gmbh/nhmoon/internal/moon"
	"github.com/twiced-technology-gmbh/nhmoon/internal/prompt"
)

// Column widths of a date row.
const (
	cursorWidth = 2
	yearWidth   = 6 // "-9999" plus a space
	dayWidth    = 7 // "[Tu 04]"
)

// View implements tea.Model.
func (c *Calendar) View() string {
	if c.width == 0 {
		return "Loading..."
	}

	switch {
	case c.frame.Help:
		return c.viewHelp()
	case c.frame.Prompt.Mode == prompt.Editing:
		return c.viewPrompt()
	default:
		return c.viewCalendar()
	}
}

func (c *Calendar) viewCalendar() string {
	lines := make([]string, 0, len(c.frame.Rows))
	for i, row := range c.frame.Rows {
		lines = append(lines, c.renderRow(i, row))
	}
	body := lipgloss.PlaceHorizontal(c.width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, lines...))

	header := headerStyle.Render(" nhmoon ") + " " + dimStyle.Render(c.cfg.Moon.Model)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, c.renderNotice(), c.renderStatusBar())
}

// renderRow draws one date: cursor, year label at the top row and on
// January 1, the day cell, the moon marker and the month label at the top row
// and on the first of each month. The last day of a month is underlined to
// draw the boundary.
func (c *Calendar) renderRow(i int, row engine.Row) string {
	d := row.Date

	cursor := strings.Repeat(" ", cursorWidth)
	if row.Center {
		cursor = cursorStyle.Render("▸ ")
	}

	var year string
	if i == 0 || (d.Month() == time.January && d.Day() == 1) {
		year = yearStyle.Render(formatYear(d.Year()))
	}

	cell := fmt.Sprintf("%s %02d", d.Weekday().String()[:2], d.Day())
	if row.Today {
		cell = "[" + cell + "]"
	} else {
		cell = " " + cell + " "
	}
	style := c.styles.forPhase(row.Phase, row.Today)
	if d.IsLastOfMonth() {
		style = style.Underline(true)
	}

	var month string
	if i == 0 || d.Day() == 1 {
		month = monthStyle.Render(d.Month().String())
	}

	return cursor + padLeft(year, yearWidth) + " " +
		padRight(style.Render(cell), dayWidth) + " " +
		c.styles.forPhase(row.Phase, false).Render(phaseMarker(row.Phase)) + "  " +
		month
}

func (c *Calendar) renderNotice() string {
	err := c.frame.Err
	if err == nil {
		err = c.notice
	}
	if err == nil {
		return ""
	}
	return errorStyle.Render(truncate("Error: "+err.Error(), c.width))
}

func (c *Calendar) renderStatusBar() string {
	center := c.frame.Center().String()
	status := " " + center + " | " + c.help.View(c.keys)
	return statusBarStyle.MaxWidth(c.width).Render(status)
}

func (c *Calendar) viewPrompt() string {
	st := c.frame.Prompt
	entry := st.String()

	var b strings.Builder
	for i, r := range entry {
		s := string(r)
		// Placeholders are the letters; offset 0 is the sign.
		if i > 0 && r >= 'A' && r <= 'Z' {
			s = dimStyle.Render(s)
		}
		b.WriteString(s)
	}

	enter := "[ENTER]"
	if st.Complete() {
		enter = readyStyle.Render(enter)
	} else {
		enter = dimStyle.Render(enter)
	}

	content := lipgloss.NewStyle().Bold(true).Render("Jump to…") + "\n\n" +
		b.String() + "\n\n" +
		enter + "\n\n" +
		c.help.ShortHelpView(c.keys.promptHelp())

	return lipgloss.Place(c.width, c.height, lipgloss.Center, lipgloss.Center, dialogStyle.Render(content))
}

func (c *Calendar) viewHelp() string {
	width := max(c.width-2*(dialogPadX+1), 20) //nolint:mnd // minimum wrap width
	if c.helpCache == "" || c.helpCacheWidth != width {
		c.helpCache = renderHelp(c.keys, width)
		c.helpCacheWidth = width
	}
	return lipgloss.Place(c.width, c.height, lipgloss.Center, lipgloss.Center, dialogStyle.Render(c.helpCache))
}

// renderHelp renders the key reference as markdown. Plain text is used when
// glamour fails.
func renderHelp(k keyMap, width int) string {
	md := helpMarkdown(k)

	style := styles.DarkStyle
	if lipgloss.ColorProfile() == termenv.Ascii {
		style = styles.NoTTYStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func helpMarkdown(k keyMap) string {
	var b strings.Builder
	b.WriteString("# nhmoon\n\n")
	b.WriteString("| Key | Action |\n|-----|--------|\n")
	for _, cmd := range navCommands {
		writeHelpRow(&b, k, cmd)
	}
	b.WriteString("\n## Jump to date\n\n")
	b.WriteString("| Key | Action |\n|-----|--------|\n")
	for _, cmd := range []engine.Command{
		engine.Digit0, engine.ToggleSign, engine.Positive,
		engine.Backspace, engine.Commit, engine.Cancel,
	} {
		writeHelpRow(&b, k, cmd)
	}
	b.WriteString("\n" + phaseMarker(moon.New) + " new moon, " + phaseMarker(moon.Full) + " full moon, [ ] today.\n\n")
	b.WriteString("Press any key to close.\n")
	return b.String()
}

func writeHelpRow(b *strings.Builder, k keyMap, cmd engine.Command) {
	binding := k.bindings[cmd]
	keys := strings.Join(binding.Keys(), ", ")
	if cmd == engine.Digit0 {
		keys = "0-9"
	}
	fmt.Fprintf(b, "| %s | %s |\n", keys, binding.Help().Desc)
}

// formatYear renders an astronomical year with at least four digits.
func formatYear(y int) string {
	if y < 0 {
		return fmt.Sprintf("-%04d", -y)
	}
	return fmt.Sprintf("%04d", y)
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

func padLeft(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return strings.Repeat(" ", width-visible) + s
}

func truncate(s string, maxLen int) string {
	if maxLen < 4 { //nolint:mnd // minimum length for truncation
		maxLen = 4
	}
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	// Slice by runes to avoid breaking multi-byte UTF-8 characters.
	runes := []rune(s)
	target := maxLen - 3 //nolint:mnd // room for "..."
	if target > len(runes) {
		target = len(runes)
	}
	// Trim runes from the end until the display width fits.
	for target > 0 && lipgloss.Width(string(runes[:target])) > maxLen-3 {
		target--
	}
	return string(runes[:target]) + "..."
}
