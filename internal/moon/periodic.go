package moon

import (
	"errors"
	"fmt"

	"github.com/twiced-technology-gmbh/nhmoon/internal/date"
)

// Default periodic model: NetHack's 177/6-day (29.5-day) lunar cycle anchored
// on a day it reports as full, with windows of about 1.8 days on either side
// of the exact phase.
const (
	DefaultEpoch     = "2025-01-15"
	DefaultPeriodNum = 177
	DefaultPeriodDen = 6
	DefaultWindow    = 11

	maxPeriodDenominator = 1_000_000
)

// Periodic is a fixed-epoch lunar model. The synodic period is Num/Den days,
// and offsets are measured in units of 1/Den day so the arithmetic stays
// exact. Full is reported within Window units of the epoch phase and New
// within Window units of the opposite phase.
type Periodic struct {
	Epoch  date.Ordinal
	Num    int64
	Den    int64
	Window int64
}

// DefaultPeriodic returns the default periodic model.
func DefaultPeriodic() Periodic {
	return Periodic{
		Epoch:  date.MustParse(DefaultEpoch).Ordinal(),
		Num:    DefaultPeriodNum,
		Den:    DefaultPeriodDen,
		Window: DefaultWindow,
	}
}

// Validate checks that the model is usable.
func (p Periodic) Validate() error {
	if p.Num <= 0 || p.Den <= 0 {
		return errors.New("moon period must be positive")
	}
	if p.Den > maxPeriodDenominator {
		return fmt.Errorf("moon period denominator %d exceeds %d", p.Den, maxPeriodDenominator)
	}
	if p.Window < 0 {
		return errors.New("moon window must be >= 0")
	}
	// Full and new windows must not overlap.
	if 4*p.Window >= p.Num {
		return fmt.Errorf("moon window %d too wide for period %s", p.Window, FormatPeriod(p.Num, p.Den))
	}
	return nil
}

// PhaseOf implements Classifier.
func (p Periodic) PhaseOf(o date.Ordinal) Phase {
	u := floorMod(int64(o-p.Epoch)*p.Den, p.Num)
	if u <= p.Window || u >= p.Num-p.Window {
		return Full
	}
	// |u - Num/2| <= Window, doubled to stay in integers.
	if abs(2*u-p.Num) <= 2*p.Window {
		return New
	}
	return None
}

// Period returns the smallest whole number of days after which PhaseOf
// repeats exactly.
func (p Periodic) Period() int64 {
	return p.Num / gcd(p.Num, p.Den)
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
