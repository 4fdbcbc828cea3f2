package cmd

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [day]",
	Short: "Show one day in detail (default: today)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	today, err := now()
	if err != nil {
		return err
	}
	tr, db, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	day := tr.Stats(today).CurrentDayIndex
	if len(args) == 1 {
		if day, err = parseDayArg(args[0]); err != nil {
			return err
		}
	}

	printDay(day, tr)
	return nil
}
