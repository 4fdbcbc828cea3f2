package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/ramtrack/internal/cli"
	"github.com/theirongolddev/ramtrack/internal/model"
	"github.com/theirongolddev/ramtrack/internal/tui/components"
	"github.com/theirongolddev/ramtrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSummaryTab(cw int) string {
	t := theme.Active
	stats := a.stats
	bd := a.breakdown
	var b strings.Builder

	// Row 1: Metric cards
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Puasa", Value: cli.FormatCount(stats.TotalFasted, model.PeriodDays), Note: fmt.Sprintf("%d haid", bd.HaidDays), Color: t.Done},
		{Label: "Hari ke", Value: fmt.Sprint(stats.CurrentDayIndex), Note: cli.FormatShortDate(model.DayDate(a.tr.Settings.StartDate(), stats.CurrentDayIndex))},
		{Label: "Sisa", Value: fmt.Sprintf("%d hari", stats.DaysRemaining)},
		{Label: "Progres", Value: cli.FormatPercent(stats.ProgressPercent), Color: t.Accent},
	}, cw))
	b.WriteString("\n")

	// Row 2: Period progress
	innerW := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard("Progres Ramadan",
		components.ProgressBar(float64(stats.ProgressPercent)/100, innerW-6), cw, false))
	b.WriteString("\n")

	// Row 3: Prayers per day
	prayed := make([]int, len(a.rows))
	exempt := make([]bool, len(a.rows))
	for i, row := range a.rows {
		prayed[i] = row.Record.Prayers.Count()
		exempt[i] = row.Record.Haid
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Sholat per hari · %d hari lengkap", bd.PerfectPrayerDays),
		components.DayBars(prayed, exempt, len(model.Prayers), len(model.Prayers), stats.CurrentDayIndex),
		cw, false))
	b.WriteString("\n")

	// Row 4: Prayer and habit totals side by side
	halves := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Sholat 5 Waktu", a.renderPrayerBars(components.CardInnerWidth(halves[0])), halves[0], false),
		components.ContentCard("Kebiasaan Baik", a.renderHabitBars(components.CardInnerWidth(halves[1])), halves[1], false),
	}))

	return b.String()
}

const barLabelWidth = 8

func (a App) renderPrayerBars(innerW int) string {
	barW := max(innerW-barLabelWidth-7, 4)
	lines := make([]string, 0, len(model.Prayers))
	for _, p := range model.Prayers {
		lines = append(lines, components.CountBar(cli.Title(p.String()), a.breakdown.PrayerCount(p), model.PeriodDays, barLabelWidth, barW))
	}
	return strings.Join(lines, "\n")
}

func (a App) renderHabitBars(innerW int) string {
	t := theme.Active
	barW := max(innerW-barLabelWidth-7, 4)
	lines := make([]string, 0, len(model.Habits)+1)
	for _, h := range model.Habits {
		lines = append(lines, components.CountBar(cli.Title(h.String()), a.breakdown.HabitCount(h), model.PeriodDays, barLabelWidth, barW))
	}

	perDay := make([]float64, len(a.rows))
	for i, row := range a.rows {
		perDay[i] = float64(row.Record.Habits.Count())
	}
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	lines = append(lines, labelStyle.Render(fmt.Sprintf("%-*s ", barLabelWidth, "Harian"))+components.Sparkline(perDay, t.Accent))
	return strings.Join(lines, "\n")
}
