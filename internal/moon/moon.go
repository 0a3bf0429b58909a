// Package moon classifies calendar days as new-moon, full-moon or ordinary
// days.
package moon

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/twiced-technology-gmbh/nhmoon/internal/date"
)

// Phase is the highlight classification of a single day.
type Phase int

const (
	None Phase = iota
	New
	Full
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case New:
		return "new"
	case Full:
		return "full"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Classifier maps a day to its phase. Implementations must be pure.
type Classifier interface {
	PhaseOf(o date.Ordinal) Phase
}

// Func adapts a plain function to Classifier.
type Func func(o date.Ordinal) Phase

// PhaseOf implements Classifier.
func (f Func) PhaseOf(o date.Ordinal) Phase { return f(o) }

// Model names accepted by ByName.
const (
	ModelPeriodic = "periodic"
	ModelNetHack  = "nethack"
)

// Models lists the accepted model names.
func Models() []string {
	return []string{ModelPeriodic, ModelNetHack}
}

// ByName returns the classifier for a model name. The periodic parameters are
// ignored for the nethack model.
func ByName(name string, periodic Periodic) (Classifier, error) {
	switch name {
	case "", ModelPeriodic:
		if err := periodic.Validate(); err != nil {
			return nil, err
		}
		return periodic, nil
	case ModelNetHack:
		return NetHack{}, nil
	}
	return nil, fmt.Errorf("unknown moon model %q (valid: %s)", name, strings.Join(Models(), ", "))
}

// ParsePeriod parses a period written as "N" or "N/D" days.
func ParsePeriod(s string) (num, den int64, err error) {
	numStr, denStr, hasDen := strings.Cut(strings.TrimSpace(s), "/")
	num, err = strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid period %q: %w", s, err)
	}
	den = 1
	if hasDen {
		den, err = strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid period %q: %w", s, err)
		}
	}
	if num <= 0 || den <= 0 {
		return 0, 0, fmt.Errorf("invalid period %q: must be positive", s)
	}
	return num, den, nil
}

// FormatPeriod is the inverse of ParsePeriod.
func FormatPeriod(num, den int64) string {
	if den == 1 {
		return strconv.FormatInt(num, 10)
	}
	return strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10)
}

// Next returns the first ordinal after from, within limit days, that c
// classifies as p.
func Next(c Classifier, from date.Ordinal, p Phase, limit int) (date.Ordinal, bool) {
	for i := 1; i <= limit; i++ {
		o := from + date.Ordinal(i)
		if o > date.MaxOrdinal {
			break
		}
		if c.PhaseOf(o) == p {
			return o, true
		}
	}
	return 0, false
}
