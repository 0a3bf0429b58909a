package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/nhmoon/internal/clierr"
	"github.com/twiced-technology-gmbh/nhmoon/internal/date"
	"github.com/twiced-technology-gmbh/nhmoon/internal/moon"
	"github.com/twiced-technology-gmbh/nhmoon/internal/output"
)

// nextPhaseHorizon bounds the search for the next new or full moon.
const nextPhaseHorizon = 1000

var phaseCmd = &cobra.Command{
	Use:   "phase YYYY-MM-DD...",
	Short: "Show the moon classification of one or more dates",
	Long: `Shows the weekday, day of year, moon classification and the next full and new
moon for each date. Invalid dates are reported individually; the command exits
with status 1 if any date failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPhase,
}

func init() {
	rootCmd.AddCommand(phaseCmd)
}

func runPhase(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	classifier, err := cfg.Classifier()
	if err != nil {
		return clierr.New(clierr.InvalidConfig, err.Error())
	}
	now, err := today()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		d, err := parseDateArg(args[0])
		if err != nil {
			return err
		}
		return outputDayDetail(describeDay(classifier, d, now))
	}
	return runBatch(args, func(arg string) (output.Day, error) {
		d, err := parseDateArg(arg)
		if err != nil {
			return output.Day{}, err
		}
		return describeDay(classifier, d, now), nil
	})
}

// describeDay builds the detail record for d.
func describeDay(c moon.Classifier, d, now date.Date) output.Day {
	o := d.Ordinal()
	day := output.Day{
		Date:    d,
		Weekday: d.Weekday().String(),
		YearDay: d.YearDay(),
		Ordinal: o,
		Phase:   c.PhaseOf(o),
		Today:   d == now,
	}
	day.NextFull = nextPhase(c, o, moon.Full)
	day.NextNew = nextPhase(c, o, moon.New)
	return day
}

// nextPhase returns the first day after o that starts a run of phase p. Days
// inside a run that is already in progress are skipped.
func nextPhase(c moon.Classifier, o date.Ordinal, p moon.Phase) *date.Date {
	from := o
	for c.PhaseOf(from) == p && from < date.MaxOrdinal {
		from++
	}
	next, ok := moon.Next(c, from, p, nextPhaseHorizon)
	if !ok {
		return nil
	}
	d, err := date.FromOrdinal(next)
	if err != nil {
		return nil
	}
	return &d
}

func outputDayDetail(d output.Day) error {
	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(os.Stdout, d)
	case output.FormatCompact:
		output.DayDetailCompact(os.Stdout, d)
	default:
		output.DayDetail(os.Stdout, d)
	}
	return nil
}

// runBatch describes each argument and collects the results. It returns a
// SilentError when any argument failed, after printing the rest.
func runBatch(args []string, fn func(string) (output.Day, error)) error {
	results := make([]output.BatchResult, 0, len(args))
	anyFailed := false

	for _, arg := range args {
		day, err := fn(arg)
		if err != nil {
			anyFailed = true
			var cliErr *clierr.Error
			if errors.As(err, &cliErr) {
				results = append(results, output.BatchResult{Input: arg, OK: false, Error: cliErr.Message, Code: cliErr.Code})
			} else {
				results = append(results, output.BatchResult{Input: arg, OK: false, Error: err.Error()})
			}
			continue
		}
		results = append(results, output.BatchResult{Input: arg, OK: true, Day: &day})
	}

	if outputFormat() == output.FormatJSON {
		if err := output.JSON(os.Stdout, results); err != nil {
			return err
		}
	} else {
		for i, r := range results {
			if !r.OK {
				fmt.Fprintf(os.Stderr, "Error: %s: %s\n", r.Input, r.Error)
				continue
			}
			if i > 0 && outputFormat() == output.FormatTable {
				fmt.Fprintln(os.Stdout)
			}
			if err := outputDayDetail(*r.Day); err != nil {
				return err
			}
		}
	}

	if anyFailed {
		return &clierr.SilentError{Code: 1}
	}
	return nil
}
