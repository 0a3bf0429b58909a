package date

import (
	"fmt"
	"time"
)

// Ordinal is a linear day count; ordinal 0 is 1970-01-01.
type Ordinal int64

// Day counts used by the civil-date conversion.
const (
	daysPerEra     = 146097 // days in 400 Gregorian years
	yearsPerEra    = 400
	epochShift     = 719468 // days from 0000-03-01 to 1970-01-01
	daysPer4Years  = 1460
	daysPer100Year = 36524
)

// Ordinal returns the day count of d.
func (d Date) Ordinal() Ordinal {
	return ToOrdinal(d)
}

// ToOrdinal converts a date to its day count. The computation counts years
// from March so that the leap day falls at the end of the counted year.
func ToOrdinal(d Date) Ordinal {
	y := int64(d.year)
	m := int64(d.month)
	if m <= 2 {
		y--
	}
	era := floorDiv(y, yearsPerEra)
	yoe := y - era*yearsPerEra
	mp := (m + 9) % 12 // months since March
	doy := (153*mp+2)/5 + int64(d.day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return Ordinal(era*daysPerEra + doe - epochShift)
}

// FromOrdinal converts a day count back to a date. It fails with
// ErrOutOfRange when o lies outside [Min, Max].
func FromOrdinal(o Ordinal) (Date, error) {
	if o < MinOrdinal || o > MaxOrdinal {
		return Date{}, fmt.Errorf("%w: ordinal %d", ErrOutOfRange, o)
	}
	z := int64(o) + epochShift
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra
	yoe := (doe - doe/daysPer4Years + doe/daysPer100Year - doe/(daysPerEra-1)) / 365
	y := yoe + era*yearsPerEra
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if mp >= 10 {
		month = mp - 9
		y++
	}
	return Date{int(y), time.Month(month), int(day)}, nil
}

// Supported ordinal bounds.
var (
	MinOrdinal = ToOrdinal(Min)
	MaxOrdinal = ToOrdinal(Max)
)

// AddDays returns d shifted by n days. It fails with ErrOutOfRange instead of
// clamping when the result leaves the supported range.
func AddDays(d Date, n int64) (Date, error) {
	o := int64(d.Ordinal())
	if n > int64(MaxOrdinal)-o || n < int64(MinOrdinal)-o {
		return Date{}, fmt.Errorf("%w: %s %+d days", ErrOutOfRange, d, n)
	}
	return FromOrdinal(Ordinal(o + n))
}

// ClampOrdinal limits o to [MinOrdinal, MaxOrdinal].
func ClampOrdinal(o Ordinal) Ordinal {
	switch {
	case o < MinOrdinal:
		return MinOrdinal
	case o > MaxOrdinal:
		return MaxOrdinal
	}
	return o
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
