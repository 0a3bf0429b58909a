package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/nhmoon/internal/config"
	"github.com/twiced-technology-gmbh/nhmoon/internal/moon"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	yearStyle   = lipgloss.NewStyle().Bold(true)
	monthStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// readyStyle marks [ENTER] once a full date has been typed.
	readyStyle = lipgloss.NewStyle().Underline(true).Bold(true)

	dialogPadY = 1
	dialogPadX = 2

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(dialogPadY, dialogPadX)
)

// dayStyles holds the configurable styles for highlighted days.
type dayStyles struct {
	full  lipgloss.Style
	new   lipgloss.Style
	today lipgloss.Style
}

func newDayStyles(tc config.TUIConfig) dayStyles {
	return dayStyles{
		full:  lipgloss.NewStyle().Foreground(lipgloss.Color(tc.FullMoonColor)).Bold(true),
		new:   lipgloss.NewStyle().Foreground(lipgloss.Color(tc.NewMoonColor)),
		today: lipgloss.NewStyle().Foreground(lipgloss.Color(tc.TodayColor)).Bold(true),
	}
}

// forPhase returns the style of a day cell. Moon phases win over today's
// highlight; the brackets still mark today.
func (s dayStyles) forPhase(p moon.Phase, today bool) lipgloss.Style {
	switch {
	case p == moon.Full:
		return s.full
	case p == moon.New:
		return s.new
	case today:
		return s.today
	}
	return lipgloss.NewStyle()
}

// phaseMarker returns the glyph drawn after a day.
func phaseMarker(p moon.Phase) string {
	switch p {
	case moon.Full:
		return "○"
	case moon.New:
		return "●"
	}
	return " "
}
