package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors follow the default TUI theme so both surfaces look alike.
var (
	ColorBorder    = lipgloss.Color("#403E3C")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#878580")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorDone      = lipgloss.Color("#879A39")
	ColorExempt    = lipgloss.Color("#CE5D97")
	ColorWarning   = lipgloss.Color("#D0A215")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorTextMuted)
	doneStyle   = lipgloss.NewStyle().Foreground(ColorDone)
	barStyle    = lipgloss.NewStyle().Foreground(ColorAccent)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorTextDim)
)

// RenderWarning renders a highlighted notice line.
func RenderWarning(msg string) string {
	return "  " + warnStyle.Render(msg)
}

// RenderMuted renders secondary text.
func RenderMuted(msg string) string {
	return mutedStyle.Render(msg)
}

// Table represents a bordered text table for CLI output. A row holding the
// single cell "---" draws a separator.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// columnWidths sizes each column to its widest header or cell.
func (t Table) columnWidths() []int {
	n := len(t.Headers)
	for _, row := range t.Rows {
		if !isSeparator(row) {
			n = max(n, len(row))
		}
	}
	widths := make([]int, n)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	return widths
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == "---"
}

// rule draws a horizontal border line with the given corner and joint runes.
func rule(widths []int, left, mid, right string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return dimStyle.Render(left+strings.Join(parts, mid)+right) + "\n"
}

// pad aligns s in a cell of width w: the first column left, the rest right.
func pad(s string, w, col int) string {
	gap := strings.Repeat(" ", max(w-lipgloss.Width(s), 0))
	if col == 0 {
		return " " + s + gap + " "
	}
	return " " + gap + s + " "
}

// cellStyle colors check marks so completed items stand out.
func cellStyle(cell string) lipgloss.Style {
	switch cell {
	case FormatCheck(true):
		return doneStyle
	case FormatCheck(false):
		return dimStyle
	}
	return valueStyle
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}
	widths := t.columnWidths()
	sep := dimStyle.Render("│")

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}

	b.WriteString(rule(widths, "╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		cells := make([]string, len(widths))
		for i := range widths {
			h := ""
			if i < len(t.Headers) {
				h = t.Headers[i]
			}
			cells[i] = headerStyle.Render(pad(h, widths[i], 0))
		}
		b.WriteString(sep + strings.Join(cells, sep) + sep + "\n")
		b.WriteString(rule(widths, "├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if isSeparator(row) {
			b.WriteString(rule(widths, "├", "┼", "┤"))
			continue
		}
		cells := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = cellStyle(cell).Render(pad(cell, widths[i], i))
		}
		b.WriteString(sep + strings.Join(cells, sep) + sep + "\n")
	}

	b.WriteString(rule(widths, "╰", "┴", "╯"))
	return b.String()
}

// RenderProgressBar renders a text progress bar with the percentage.
func RenderProgressBar(pct int, width int) string {
	if width <= 0 {
		return ""
	}

	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s",
		barStyle.Render(bar),
		valueStyle.Render(FormatPercent(pct)),
	)
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

// RenderHorizontalBar renders a labeled bar chart entry with its count.
func RenderHorizontalBar(label string, value, maxValue, maxWidth, labelWidth int) string {
	barLen := 0
	if maxValue > 0 {
		barLen = value * maxWidth / maxValue
	}
	if barLen < 0 {
		barLen = 0
	}
	bar := strings.Repeat("█", barLen) + strings.Repeat(" ", maxWidth-barLen)
	return fmt.Sprintf("  %s %s %s",
		mutedStyle.Render(fmt.Sprintf("%-*s", labelWidth, label)),
		doneStyle.Render(bar),
		valueStyle.Render(fmt.Sprintf("%2d", value)),
	)
}
