package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/ramtrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// DayBars renders one vertical bar per day, scaled to ceiling. Bars for
// exempt days are drawn in the exempt color and the current day is
// highlighted. Every row has the same width: two columns per day.
func DayBars(values []int, exempt []bool, ceiling, height, current int) string {
	if len(values) == 0 || height < 1 {
		return ""
	}
	if ceiling < 1 {
		ceiling = 1
	}
	t := theme.Active

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	todayStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	exemptStyle := lipgloss.NewStyle().Foreground(t.Exempt).Background(t.Surface)
	blankStyle := lipgloss.NewStyle().Background(t.Surface)

	labelW := len(fmt.Sprint(ceiling)) + 1

	var b strings.Builder
	for row := height; row >= 1; row-- {
		label := ""
		if row == height {
			label = fmt.Sprint(ceiling)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", labelW, label)))

		threshold := float64(row) / float64(height) * float64(ceiling)
		for i, v := range values {
			style := barStyle
			switch {
			case i < len(exempt) && exempt[i]:
				style = exemptStyle
			case i+1 == current:
				style = todayStyle
			}
			if float64(v) >= threshold-1e-9 {
				b.WriteString(style.Render("█") + blankStyle.Render(" "))
			} else if i < len(exempt) && exempt[i] && row == 1 {
				b.WriteString(exemptStyle.Render("▁") + blankStyle.Render(" "))
			} else {
				b.WriteString(blankStyle.Render("  "))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└", labelW, "0")))
	b.WriteString(axisStyle.Render(strings.Repeat("─", len(values)*2)))
	b.WriteString("\n")

	// Day numbers every five days.
	var labels strings.Builder
	for i := range values {
		day := i + 1
		switch {
		case day == 1 || day%5 == 0:
			s := fmt.Sprint(day)
			labels.WriteString(s)
			if len(s) == 1 {
				labels.WriteString(" ")
			}
		default:
			labels.WriteString("  ")
		}
	}
	b.WriteString(blankStyle.Render(strings.Repeat(" ", labelW+1)))
	b.WriteString(axisStyle.Render(strings.TrimRight(labels.String(), " ")))

	return b.String()
}
