package cmd

import (
	"fmt"

	"github.com/theirongolddev/ramtrack/internal/cli"
	"github.com/theirongolddev/ramtrack/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Progress and completion summary",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	today, err := now()
	if err != nil {
		return err
	}
	tr, db, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	stats := tr.Stats(today)
	breakdown := tr.Breakdown()
	start := tr.Settings.StartDate()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("RAMADAN TRACKER  %s", cli.FormatDayLabel(stats.CurrentDayIndex))))
	fmt.Println()

	rows := [][]string{
		{"Start", cli.FormatDate(start)},
		{"Today", cli.FormatDate(model.DayDate(start, stats.CurrentDayIndex))},
		{"---"},
		{"Days fasted", cli.FormatCount(stats.TotalFasted, model.PeriodDays)},
		{"Days remaining", fmt.Sprint(stats.DaysRemaining)},
		{"Progress", cli.FormatPercent(stats.ProgressPercent)},
		{"---"},
		{"Haid days", fmt.Sprint(breakdown.HaidDays)},
		{"All 5 prayers", fmt.Sprintf("%d days", breakdown.PerfectPrayerDays)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Println("  " + cli.RenderProgressBar(stats.ProgressPercent, 40))
	fmt.Println()

	labelW := 0
	for _, name := range model.ItemNames() {
		labelW = max(labelW, len(name))
	}

	fmt.Println("  " + cli.RenderMuted("Sholat 5 Waktu"))
	for _, p := range model.Prayers {
		fmt.Println(cli.RenderHorizontalBar(cli.Title(p.String()), breakdown.PrayerCount(p), model.PeriodDays, 30, labelW))
	}
	fmt.Println()
	fmt.Println("  " + cli.RenderMuted("Kebiasaan Baik"))
	for _, h := range model.Habits {
		fmt.Println(cli.RenderHorizontalBar(cli.Title(h.String()), breakdown.HabitCount(h), model.PeriodDays, 30, labelW))
	}

	prayed := make([]float64, 0, model.PeriodDays)
	for _, row := range tr.Rows(today) {
		prayed = append(prayed, float64(row.Record.Prayers.Count()))
	}
	fmt.Println()
	fmt.Printf("  %s %s\n", cli.RenderMuted("Prayers/day"), cli.RenderSparkline(prayed))

	if tr.Days.Dirty() {
		fmt.Println(cli.RenderWarning("Some changes have not been saved."))
	}

	return nil
}
