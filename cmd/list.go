package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/nhmoon/internal/clierr"
	"github.com/twiced-technology-gmbh/nhmoon/internal/engine"
	"github.com/twiced-technology-gmbh/nhmoon/internal/output"
)

const defaultListRows = 21

var listCmd = &cobra.Command{
	Use:     "list [YYYY-MM-DD]",
	Aliases: []string{"ls"},
	Short:   "Print the calendar around a date",
	Long: `Prints the rows the calendar would show around a date (default today), one
line per day, as a table, compact lines or JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().IntP("rows", "n", defaultListRows, "number of days to print")
	listCmd.Flags().BoolP("marked", "m", false, "show only new and full moon days")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	rows, _ := cmd.Flags().GetInt("rows")
	marked, _ := cmd.Flags().GetBool("marked")
	if rows < 1 {
		return clierr.Newf(clierr.InvalidInput, "--rows must be at least 1, got %d", rows)
	}

	center, err := startDate(args)
	if err != nil {
		return err
	}
	now, err := today()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	classifier, err := cfg.Classifier()
	if err != nil {
		return clierr.New(clierr.InvalidConfig, err.Error())
	}

	frame := engine.New(center, rows, classifier).Frame(now)
	selected := frame.Rows
	if marked {
		selected = frame.Marked()
	}
	return outputDayList(output.DaysFromFrame(selected))
}

func outputDayList(days []output.Day) error {
	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(os.Stdout, days)
	case output.FormatCompact:
		output.DayCompact(os.Stdout, days)
	default:
		output.DayTable(os.Stdout, days)
	}
	return nil
}
