package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/ramtrack/internal/cli"
	"github.com/theirongolddev/ramtrack/internal/model"
	"github.com/theirongolddev/ramtrack/internal/tracker"

	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark <day> <item>...",
	Short: "Mark items done for a day",
	Long: "Mark items done for a day. Items: " + strings.Join(model.ItemNames(), ", ") + ".\n" +
		"Marking haid clears fasting and all prayers for that day.",
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMark(cmd, args, true)
	},
}

var unmarkCmd = &cobra.Command{
	Use:   "unmark <day> <item>...",
	Short: "Clear items for a day",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMark(cmd, args, false)
	},
}

func init() {
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(unmarkCmd)
}

func parseDayArg(arg string) (int, error) {
	day, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: want a number 1..%d", arg, model.PeriodDays)
	}
	if err := model.ValidateDay(day); err != nil {
		return 0, err
	}
	return day, nil
}

// parseItems validates every item before anything is written.
func parseItems(names []string) error {
	for _, name := range names {
		if _, err := model.ParseItem(strings.ToLower(name)); err != nil {
			return fmt.Errorf("%w (valid: %s)", err, strings.Join(model.ItemNames(), ", "))
		}
	}
	return nil
}

func runMark(cmd *cobra.Command, args []string, value bool) error {
	day, err := parseDayArg(args[0])
	if err != nil {
		return err
	}
	if err := parseItems(args[1:]); err != nil {
		return err
	}

	tr, db, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := applyItems(tr.Days, day, args[1:], value); err != nil {
		return err
	}

	printDay(day, tr)
	return nil
}

func applyItems(days *tracker.DayStore, day int, names []string, value bool) error {
	for _, name := range names {
		if err := days.Set(day, strings.ToLower(name), value); err != nil {
			return fmt.Errorf("setting %s on day %d: %w", name, day, err)
		}
	}
	return nil
}

func printDay(day int, tr *tracker.Tracker) {
	rec := tr.Days.Record(day)
	date := model.DayDate(tr.Settings.StartDate(), day)

	var prayers, habits []string
	for _, p := range model.Prayers {
		if rec.Prayers[p] {
			prayers = append(prayers, p.String())
		}
	}
	for _, h := range model.Habits {
		if rec.Habits[h] {
			habits = append(habits, h.String())
		}
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title: fmt.Sprintf("%s  %s", cli.FormatDayLabel(day), cli.FormatDate(date)),
		Rows: [][]string{
			{"Puasa", cli.FormatCheck(rec.Fasting)},
			{"Sholat", fmt.Sprintf("%s  %s", cli.FormatCount(rec.Prayers.Count(), len(model.Prayers)), cli.JoinTitles(prayers))},
			{"Kebiasaan", fmt.Sprintf("%s  %s", cli.FormatCount(rec.Habits.Count(), len(model.Habits)), cli.JoinTitles(habits))},
			{"Haid", cli.FormatCheck(rec.Haid)},
		},
	}))
	if rec.Haid {
		fmt.Println(cli.RenderWarning("Haid: fasting and prayers are not tracked for this day."))
	}
}
