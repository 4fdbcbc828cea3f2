package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/ramtrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a block progress bar followed by its percentage.
// pct is a fraction in [0, 1].
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	pct = clampFrac(pct)
	filled := min(max(int(pct*float64(width)), 0), width)

	barColor := ColorForPct(pct)

	filledStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}

// ColorForPct returns a color for a completion level: the closer to full,
// the warmer the accent.
func ColorForPct(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 0.8:
		return t.Done
	case pct >= 0.5:
		return t.AccentBright
	default:
		return t.Accent
	}
}

// CountBar renders a labeled bar for count out of total, e.g. how many days
// a prayer was performed.
func CountBar(label string, count, total, labelW, barWidth int) string {
	t := theme.Active

	pct := 0.0
	if total > 0 {
		pct = clampFrac(float64(count) / float64(total))
	}

	bar := progress.New(
		progress.WithSolidFill(string(ColorForPct(pct))),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	countStyle := lipgloss.NewStyle().Foreground(ColorForPct(pct)).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		countStyle.Render(fmt.Sprintf("%2d/%d", count, total))
}

// PeriodBar renders the compact period indicator used in the status bar:
// the current day and a small bar of elapsed progress.
func PeriodBar(day, total, percent, width int) string {
	t := theme.Active

	label := fmt.Sprintf("Hari %d/%d", day, total)
	barW := max(width-lipgloss.Width(label)-6, 4)
	pct := clampFrac(float64(percent) / 100)

	bar := progress.New(
		progress.WithSolidFill(string(t.Accent)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(label) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3d%%", percent))
}

func clampFrac(f float64) float64 {
	return min(max(f, 0), 1)
}
