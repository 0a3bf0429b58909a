package cmd

import (
	"fmt"
	"regexp"

	"github.com/twiced-technology-gmbh/nhmoon/internal/date"
)

// negativeDate matches arguments such as -0044-03-15 that flag parsing
// would otherwise take for shorthand flags.
var negativeDate = regexp.MustCompile(`^-[0-9]{4,}-[0-9]{2}-[0-9]{2}$`)

// protectNegativeDates moves negative-year date arguments behind a "--"
// terminator so they reach commands as positional arguments. Arguments after
// an existing terminator, and the value of --today, are left alone.
func protectNegativeDates(args []string) []string {
	var rest, dates []string
	for i, a := range args {
		if a == "--" {
			return append(append(append(rest, "--"), dates...), args[i+1:]...)
		}
		if negativeDate.MatchString(a) && (i == 0 || args[i-1] != "--today") {
			dates = append(dates, a)
			continue
		}
		rest = append(rest, a)
	}
	if len(dates) == 0 {
		return args
	}
	return append(append(rest, "--"), dates...)
}

// dateValue is a pflag.Value holding a date.
type dateValue struct {
	d   date.Date
	set bool
}

// String implements pflag.Value.
func (v *dateValue) String() string {
	if !v.set {
		return ""
	}
	return v.d.String()
}

// Set implements pflag.Value.
func (v *dateValue) Set(s string) error {
	d, err := date.Parse(s)
	if err != nil {
		return fmt.Errorf("%q: %w", s, err)
	}
	v.d = d
	v.set = true
	return nil
}

// Type implements pflag.Value.
func (v *dateValue) Type() string {
	return "date"
}
