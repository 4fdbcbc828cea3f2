package components

import (
	"strings"

	"github.com/theirongolddev/ramtrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Days", Key: 'd', KeyPos: 0},
	{Name: "Summary", Key: 's', KeyPos: 0},
	{Name: "Settings", Key: 'x', KeyPos: -1}, // x is not in "Settings"
}

func renderTab(tab Tab, active bool) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	dimKeyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	padStyle := lipgloss.NewStyle().Background(t.Surface)

	if active {
		return activeStyle.Render(tab.Name)
	}

	var inner string
	if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
		before := tab.Name[:tab.KeyPos]
		key := string(tab.Name[tab.KeyPos])
		after := tab.Name[tab.KeyPos+1:]
		inner = inactiveStyle.Render(before) +
			dimKeyStyle.Render("[") + keyStyle.Render(key) + dimKeyStyle.Render("]") +
			inactiveStyle.Render(after)
	} else {
		inner = inactiveStyle.Render(tab.Name) +
			dimKeyStyle.Render("[") + keyStyle.Render(string(tab.Key)) + dimKeyStyle.Render("]")
	}
	return padStyle.Render(" ") + inner + padStyle.Render(" ")
}

// TabVisualWidth returns the rendered width of tab. Mouse hit testing
// relies on it matching RenderTabBar exactly.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// RenderTabBar renders the tab bar with the given active index and a
// right-aligned title.
func RenderTabBar(activeIdx int, width int, title string) string {
	t := theme.Active

	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	padStyle := lipgloss.NewStyle().Background(t.Surface)

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = renderTab(tab, i == activeIdx)
	}
	bar := strings.Join(parts, sepStyle.Render("│"))

	right := titleStyle.Render(title + " ")
	padding := max(width-lipgloss.Width(bar)-lipgloss.Width(right), 0)
	return bar + padStyle.Render(strings.Repeat(" ", padding)) + right
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
