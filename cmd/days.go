package cmd

import (
	"fmt"

	"github.com/theirongolddev/ramtrack/internal/cli"
	"github.com/theirongolddev/ramtrack/internal/model"

	"github.com/spf13/cobra"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "Table of all 30 days",
	RunE:  runDays,
}

func init() {
	rootCmd.AddCommand(daysCmd)
}

func runDays(cmd *cobra.Command, _ []string) error {
	today, err := now()
	if err != nil {
		return err
	}
	tr, db, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("RAMADAN  from %s", cli.FormatDate(tr.Settings.StartDate()))))
	fmt.Println()

	days := tr.Rows(today)
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		label := fmt.Sprint(d.Day)
		if d.Today {
			label += " ◂"
		}
		haid := ""
		if d.Record.Haid {
			haid = "haid"
		}
		rows = append(rows, []string{
			label,
			cli.FormatDate(d.Date),
			cli.FormatCheck(d.Record.Fasting),
			cli.FormatCount(d.Record.Prayers.Count(), len(model.Prayers)),
			cli.FormatCount(d.Record.Habits.Count(), len(model.Habits)),
			haid,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Hari", "Tanggal", "Puasa", "Sholat", "Habits", "Haid"},
		Rows:    rows,
	}))

	return nil
}
