// Package cmd implements the nhmoon CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/twiced-technology-gmbh/nhmoon/internal/clierr"
	"github.com/twiced-technology-gmbh/nhmoon/internal/config"
	"github.com/twiced-technology-gmbh/nhmoon/internal/date"
	"github.com/twiced-technology-gmbh/nhmoon/internal/output"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	flagJSON    bool
	flagTable   bool
	flagCompact bool
	flagConfig  string
	flagNoColor bool
	flagToday   dateValue
)

var rootCmd = &cobra.Command{
	Use:   "nhmoon [YYYY-MM-DD]",
	Short: "Scrollable terminal calendar that marks new and full moon days",
	Long: `nhmoon shows a scrolling calendar, one day per line, and highlights new and
full moon days. By default the moon follows a fixed 29.5-day period, which only
approximates NetHack; set "moon.model: nethack" in the config file to use
NetHack's own phase_of_the_moon formula. Run it with no arguments to start at
today, or pass a date (astronomical years -9999 through 9999) to start there.
Negative years are written with a leading '-', e.g. nhmoon -0044-03-15.`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runTUI,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagNoColor || os.Getenv("NO_COLOR") != "" {
			output.DisableColor()
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output as table")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "compact", false, "compact one-line-per-record output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default $"+config.EnvConfig+" or the user config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().Var(&flagToday, "today", "treat this date as today (YYYY-MM-DD)")
	rootCmd.PersistentFlags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		switch name {
		case "oneline":
			name = "compact"
		case "no-colour":
			name = "no-color"
		}
		return pflag.NormalizedName(name)
	})
}

// Execute runs the root command.
func Execute() {
	rootCmd.SetArgs(protectNegativeDates(os.Args[1:]))
	_, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	// Handle SilentError: exit with code, no output.
	var silent *clierr.SilentError
	if errors.As(err, &silent) {
		os.Exit(silent.Code)
	}

	if outputFormat() == output.FormatJSON {
		var cliErr *clierr.Error
		if errors.As(err, &cliErr) {
			output.JSONError(os.Stdout, cliErr.Code, cliErr.Message, cliErr.Details)
			os.Exit(cliErr.ExitCode())
		}
		// Unknown error: wrap as INTERNAL_ERROR.
		output.JSONError(os.Stdout, clierr.InternalError, err.Error(), nil)
		os.Exit(2) //nolint:mnd // exit code 2 for internal errors
	}

	// Non-JSON mode: print to stderr.
	fmt.Fprintln(os.Stderr, "Error:", err)
	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		os.Exit(cliErr.ExitCode())
	}
	os.Exit(1)
}

// loadConfig resolves and loads the config file. A missing file yields the
// defaults.
func loadConfig() (*config.Config, error) {
	path, err := config.ResolvePath(flagConfig)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrInvalid) {
			return nil, clierr.New(clierr.InvalidConfig, err.Error()).
				WithDetails(map[string]any{"path": path})
		}
		return nil, err
	}
	output.SetColors(cfg.TUI.FullMoonColor, cfg.TUI.NewMoonColor, cfg.TUI.TodayColor)
	return cfg, nil
}

// outputFormat returns the detected output format from flags/env.
func outputFormat() output.Format {
	return output.Detect(flagJSON, flagTable, flagCompact)
}

// today returns --today when given, otherwise the local date.
func today() (date.Date, error) {
	if flagToday.set {
		return flagToday.d, nil
	}
	d, err := date.FromTime(time.Now())
	if err != nil {
		return date.Date{}, clierr.Newf(clierr.InternalError, "system clock outside supported range: %v", err)
	}
	return d, nil
}

// parseDateArg parses a command-line date.
func parseDateArg(s string) (date.Date, error) {
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, clierr.New(clierr.InvalidDate, err.Error()).
			WithDetails(map[string]any{"input": s})
	}
	return d, nil
}

// startDate returns the date given as the only positional argument, or today.
func startDate(args []string) (date.Date, error) {
	if len(args) > 0 {
		return parseDateArg(args[0])
	}
	return today()
}
