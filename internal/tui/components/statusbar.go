package components

import (
	"strings"

	"github.com/theirongolddev/ramtrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusKind selects the color of the status bar message.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusWarning
	StatusError
)

// RenderStatusBar renders the bottom status bar: key hints on the left, the
// message in the middle and right-aligned extra content (the period bar).
func RenderStatusBar(width int, msg string, kind StatusKind, right string) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	msgColor := t.TextMuted
	switch kind {
	case StatusWarning:
		msgColor = t.Warning
	case StatusError:
		msgColor = t.Error
	}
	msgStyle := lipgloss.NewStyle().Foreground(msgColor).Background(t.Surface).Bold(kind != StatusInfo)

	left := hintStyle.Render(" [?]help  [q]uit")
	if msg != "" {
		left += barStyle.Render("  ") + msgStyle.Render(msg)
	}
	if right != "" {
		right += barStyle.Render(" ")
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)

	return left + barStyle.Render(strings.Repeat(" ", padding)) + right
}

