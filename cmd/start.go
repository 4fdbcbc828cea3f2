package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/ramtrack/internal/cli"
	"github.com/theirongolddev/ramtrack/internal/model"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start [YYYY-MM-DD]",
	Short: "Show or change the first day of Ramadan",
	Long: "Show or change the first day of Ramadan. Changing it keeps every recorded day:\n" +
		"day 1 simply moves to the new date.",
	Args: cobra.MaximumNArgs(1),
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	tr, db, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if len(args) == 1 {
		date, err := time.Parse(model.DateLayout, args[0])
		if err != nil {
			return fmt.Errorf("invalid date %q: want YYYY-MM-DD", args[0])
		}
		if err := tr.Settings.SetStartDate(date); err != nil {
			return err
		}
	}

	start := tr.Settings.StartDate()
	end := model.DayDate(start, model.PeriodDays)
	fmt.Printf("  Start: %s\n", cli.FormatDate(start))
	fmt.Printf("  End:   %s\n", cli.FormatDate(end))
	return nil
}
