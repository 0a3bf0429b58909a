// Package viewport tracks which run of consecutive dates is mapped onto the
// terminal rows.
package viewport

import (
	"fmt"

	"github.com/twiced-technology-gmbh/nhmoon/internal/date"
)

// Direction is the scroll direction. Up moves toward earlier dates.
type Direction int

const (
	Up Direction = iota
	Down
)

// daysPerWeek is the distance of a single week scroll.
const daysPerWeek = 7

// maxRows caps the row count at the number of supported days.
var maxRows = int(date.MaxOrdinal-date.MinOrdinal) + 1

// State is a read-only snapshot of a Viewport.
type State struct {
	Center date.Date
	Rows   int
}

// Viewport owns the centered date and the number of visible rows.
type Viewport struct {
	center date.Date
	rows   int
}

// New creates a Viewport centered on center with the given number of rows.
func New(center date.Date, rows int) *Viewport {
	v := &Viewport{center: center}
	v.Resize(rows)
	return v
}

// Center returns the centered date.
func (v *Viewport) Center() date.Date { return v.center }

// Rows returns the number of visible rows.
func (v *Viewport) Rows() int { return v.rows }

// State returns a snapshot of the viewport.
func (v *Viewport) State() State {
	return State{Center: v.center, Rows: v.rows}
}

// Resize sets the row count. Values below one become one.
func (v *Viewport) Resize(rows int) {
	v.rows = min(max(rows, 1), maxRows)
}

// ScrollWeek moves the center by seven days. It reports whether the center
// moved; at the ends of the supported range it clamps and reports false once
// the boundary is reached.
func (v *Viewport) ScrollWeek(dir Direction) bool {
	return v.shift(dir, daysPerWeek)
}

// ScrollPage moves the center by the number of visible rows.
func (v *Viewport) ScrollPage(dir Direction) bool {
	return v.shift(dir, v.rows)
}

// JumpToToday centers the viewport on today, which the caller supplies.
func (v *Viewport) JumpToToday(today date.Date) {
	v.center = today
}

// JumpTo centers the viewport on d.
func (v *Viewport) JumpTo(d date.Date) {
	v.center = d
}

// VisibleDates returns Rows consecutive dates. The center occupies row
// Rows/2, so an even row count puts the extra row above it. Near the ends of
// the supported range the window slides to stay inside it.
func (v *Viewport) VisibleDates() []date.Date {
	start := v.center.Ordinal() - date.Ordinal(v.rows/2)
	last := date.MaxOrdinal - date.Ordinal(v.rows-1)
	if start > last {
		start = last
	}
	if start < date.MinOrdinal {
		start = date.MinOrdinal
	}
	dates := make([]date.Date, v.rows)
	for i := range dates {
		dates[i] = mustFromOrdinal(start + date.Ordinal(i))
	}
	return dates
}

// CenterRow returns the index of the center date within VisibleDates.
func (v *Viewport) CenterRow() int {
	dates := v.VisibleDates()
	return int(v.center.Ordinal() - dates[0].Ordinal())
}

func (v *Viewport) shift(dir Direction, days int) bool {
	delta := date.Ordinal(days)
	if dir == Up {
		delta = -delta
	}
	from := v.center.Ordinal()
	to := date.ClampOrdinal(from + delta)
	if to == from {
		return false
	}
	v.center = mustFromOrdinal(to)
	return true
}

// mustFromOrdinal converts an ordinal the viewport has already clamped. A
// failure means the clamping is broken.
func mustFromOrdinal(o date.Ordinal) date.Date {
	d, err := date.FromOrdinal(o)
	if err != nil {
		panic(fmt.Sprintf("viewport: %v", err))
	}
	return d
}
