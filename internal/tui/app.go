// Package tui provides the interactive Bubble Tea dashboard for ramtrack.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/ramtrack/internal/cli"
	"github.com/theirongolddev/ramtrack/internal/model"
	"github.com/theirongolddev/ramtrack/internal/pipeline"
	"github.com/theirongolddev/ramtrack/internal/tracker"
	"github.com/theirongolddev/ramtrack/internal/tui/components"
	"github.com/theirongolddev/ramtrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Clock reports the current time. The dashboard asks it on every
// recompute so the current day advances while the TUI is open.
type Clock func() time.Time

// SystemClock is the wall clock.
var SystemClock Clock = time.Now

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

const (
	tabDays = iota
	tabSummary
	tabSettings
)

const (
	minTerminalWidth = 80
	maxContentWidth  = 140
	minContentHeight = 5

	clockTick = time.Minute
)

// App is the root Bubble Tea model.
type App struct {
	tr    *tracker.Tracker
	clock Clock

	// Recomputed after every mutation and clock tick
	stats     model.Stats
	breakdown model.Breakdown
	rows      []pipeline.DayRow

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	days     daysState
	settings settingsState

	status     string
	statusKind components.StatusKind
}

// NewApp creates the dashboard over tr with the cursor on the current day.
func NewApp(tr *tracker.Tracker, clock Clock) App {
	if clock == nil {
		clock = SystemClock
	}
	a := App{tr: tr, clock: clock}
	a.recompute()
	a.days.cursor = a.stats.CurrentDayIndex
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(tea.EnableMouseCellMotion, tickCmd())
}

func (a *App) recompute() {
	now := a.clock()
	a.stats = a.tr.Stats(now)
	a.breakdown = a.tr.Breakdown()
	a.rows = a.tr.Rows(now)
}

func (a *App) setStatus(msg string, kind components.StatusKind) {
	a.status = msg
	a.statusKind = kind
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.settings.form != nil {
			a.settings.form = a.settings.form.WithWidth(a.contentWidth()).WithHeight(msg.Height - 2)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.settings.form != nil {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabDays {
				a.moveDay(-1)
			}
		case tea.MouseButtonWheelDown:
			if a.activeTab == tabDays {
				a.moveDay(1)
			}
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress && msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// The settings form intercepts all keys while open
		if a.settings.form != nil {
			return a.updateSettingsForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch a.activeTab {
		case tabDays:
			if a.updateDaysKey(key) {
				return a, nil
			}
		case tabSettings:
			if key == "enter" || key == "e" {
				return a.openSettingsForm()
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "w":
			a.retrySave()
			return a, nil
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(msg.Runes) == 1 {
			if tab := components.TabIdxByKey(msg.Runes[0]); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tickMsg:
		a.recompute()
		return a, tickCmd()
	}

	// Forward unhandled messages to the settings form (cursor blinks, etc.)
	if a.settings.form != nil {
		return a.updateSettingsForm(msg)
	}

	return a, nil
}

// retrySave writes the day records again after a failed save.
func (a *App) retrySave() {
	if !a.tr.Days.Dirty() {
		a.setStatus("Nothing to save", components.StatusInfo)
		return
	}
	if err := a.tr.Days.Save(); err != nil {
		a.setStatus(fmt.Sprintf("Save failed: %v", err), components.StatusError)
		return
	}
	a.setStatus("Saved", components.StatusInfo)
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  ramtrack needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("☾ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		name     string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"d s x", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Previous / Next day"},
			{"g G", "First / Last day"},
			{"t", "Jump to today"},
			{"h l  tab", "Previous / Next item"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"space", "Toggle item"},
			{"enter", "Edit settings"},
			{"w", "Retry a failed save"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.name))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	title := fmt.Sprintf("☾ ramtrack · %s", cli.FormatDate(model.DayDate(a.tr.Settings.StartDate(), a.stats.CurrentDayIndex)))
	header := components.RenderTabBar(a.activeTab, w, title)

	statusBar := a.renderStatusBar(w)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabDays:
		content = a.renderDaysTab(cw, contentH)
	case tabSummary:
		content = a.renderSummaryTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderStatusBar(w int) string {
	msg, kind := a.status, a.statusKind
	if a.tr.Days.Dirty() && kind != components.StatusError {
		msg, kind = "Unsaved changes, press w to retry", components.StatusWarning
	}
	period := components.PeriodBar(a.stats.CurrentDayIndex, model.PeriodDays, a.stats.ProgressPercent, 30)
	return components.RenderStatusBar(w, msg, kind, period)
}

// ─── Helpers ────────────────────────────────────────────────────

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(clockTick, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
