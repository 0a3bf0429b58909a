// Package date provides a proleptic Gregorian calendar date with astronomical
// year numbering, covering years -9999 through 9999.
package date

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.yaml.in/yaml/v3"
)

// Supported year range.
const (
	MinYear = -9999
	MaxYear = 9999
)

// Sentinel errors.
var (
	ErrInvalidDate = errors.New("invalid date")
	ErrOutOfRange  = errors.New("date out of range")
)

// Date is a calendar date without time or timezone. The zero value is not a
// valid date; use New, FromOrdinal, Parse or FromTime.
type Date struct {
	year  int
	month time.Month
	day   int
}

// Earliest and latest supported dates.
var (
	Min = Date{MinYear, time.January, 1}
	Max = Date{MaxYear, time.December, 31}
)

// New creates a Date from year, month, day, validating each against the
// calendar.
func New(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d outside %d..%d", ErrInvalidDate, year, MinYear, MaxYear)
	}
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d", ErrInvalidDate, int(month))
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: day %d in %s %d", ErrInvalidDate, day, month, year)
	}
	return Date{year, month, day}, nil
}

// FromTime returns the calendar date of t in t's location.
func FromTime(t time.Time) (Date, error) {
	return New(t.Year(), t.Month(), t.Day())
}

// IsLeapYear reports whether year has 366 days. The Gregorian rule applies
// uniformly to zero and negative years.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of month in year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// Year returns the astronomical year (year 0 is 1 BC).
func (d Date) Year() int { return d.year }

// Month returns the month of the year.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// YearDay returns the day of the year, 1 through 366.
func (d Date) YearDay() int {
	first := Date{d.year, time.January, 1}
	return int(d.Ordinal()-first.Ordinal()) + 1
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	// 1970-01-01 was a Thursday.
	return time.Weekday(floorMod(int64(d.Ordinal())+4, 7))
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// IsLastOfMonth reports whether d is the final day of its month.
func (d Date) IsLastOfMonth() bool {
	return d.day == DaysInMonth(d.year, d.month)
}

// Compare returns -1, 0 or +1 as d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	a, b := d.Ordinal(), other.Ordinal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// String returns the date as YYYY-MM-DD, with a leading '-' for negative
// years.
func (d Date) String() string {
	if d.year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.year, int(d.month), d.day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.v3 Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := Parse(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
