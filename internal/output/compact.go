package output

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/twiced-technology-gmbh/nhmoon/internal/moon"
)

// DayCompact renders days in one-line-per-record compact format.
func DayCompact(w io.Writer, days []Day) {
	if len(days) == 0 {
		fmt.Fprintln(os.Stderr, "No dates found.")
		return
	}

	for _, d := range days {
		fmt.Fprintln(w, formatDayLine(d))
	}
}

// DayDetailCompact renders a single day with detail in compact format.
func DayDetailCompact(w io.Writer, d Day) {
	line := formatDayLine(d) + " yday:" + strconv.Itoa(d.YearDay)
	if d.NextFull != nil {
		line += " next_full:" + d.NextFull.String()
	}
	if d.NextNew != nil {
		line += " next_new:" + d.NextNew.String()
	}
	fmt.Fprintln(w, line)
}

// formatDayLine builds the one-line representation of a day.
func formatDayLine(d Day) string {
	line := d.Date.String() + " " + d.Weekday[:3]
	if d.Phase != moon.None {
		line += " [" + d.Phase.String() + "]"
	}
	if d.Today {
		line += " today"
	}
	if d.Center {
		line += " *"
	}
	return line
}
