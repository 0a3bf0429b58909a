package date

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// layoutPattern matches [+-]YYYY-MM-DD with a year of four or more digits.
var layoutPattern = regexp.MustCompile(`^([+-]?)([0-9]{4,})-([0-9]{2})-([0-9]{2})$`)

// Parse parses a YYYY-MM-DD string. The year may carry an explicit sign and
// must be zero-padded to at least four digits; negative years require '-'.
func Parse(s string) (Date, error) {
	m := layoutPattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, s)
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return Date{}, fmt.Errorf("%w %q: year out of range", ErrInvalidDate, s)
	}
	if m[1] == "-" {
		year = -year
	}
	month, _ := strconv.Atoi(m[3])
	day, _ := strconv.Atoi(m[4])
	d, err := New(year, time.Month(month), day)
	if err != nil {
		return Date{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return d, nil
}

// MustParse is like Parse but panics on error. It is intended for constants
// and tests.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}
