package moon

import "github.com/twiced-technology-gmbh/nhmoon/internal/date"

// NetHack reproduces phase_of_the_moon() from NetHack's hacklib.c, which
// derives the phase from the year's golden number and epact. It is not
// periodic in day count because the epact resets every January.
type NetHack struct{}

// PhaseOf implements Classifier.
func (NetHack) PhaseOf(o date.Ordinal) Phase {
	d, err := date.FromOrdinal(o)
	if err != nil {
		return None
	}
	switch nethackPhase(d.Year(), d.YearDay()-1) {
	case 0:
		return New
	case 4: //nolint:mnd // full moon bucket
		return Full
	}
	return None
}

// nethackPhase returns the phase bucket 0..7 for a zero-based day of year.
func nethackPhase(year, diy int) int {
	goldn := ((year - 1900) % 19) + 1
	epact := (11*goldn + 18) % 30
	if (epact == 25 && goldn > 11) || epact == 24 {
		epact++
	}
	return ((((diy+epact)*6)+11)%177)/22&7
}
