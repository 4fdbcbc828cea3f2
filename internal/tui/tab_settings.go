package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/ramtrack/internal/cli"
	"github.com/theirongolddev/ramtrack/internal/config"
	"github.com/theirongolddev/ramtrack/internal/model"
	"github.com/theirongolddev/ramtrack/internal/tui/components"
	"github.com/theirongolddev/ramtrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// settingsValues is bound to the form fields. It lives behind a pointer
// because App is copied on every Update.
type settingsValues struct {
	startDate string
	theme     string
}

// settingsState tracks the Settings tab.
type settingsState struct {
	form *huh.Form
	vals *settingsValues
}

func validateStartDate(s string) error {
	if _, err := time.Parse(model.DateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func newSettingsForm(vals *settingsValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First day of Ramadan").
				Description("YYYY-MM-DD. Day records are kept when this changes.").
				Value(&vals.startDate).
				Validate(validateStartDate),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.theme),
		),
	).WithShowHelp(true)
}

func (a App) openSettingsForm() (tea.Model, tea.Cmd) {
	cfg, _ := config.Load()
	a.settings.vals = &settingsValues{
		startDate: a.tr.Settings.Settings().StartDate,
		theme:     theme.ByName(cfg.Appearance.Theme).Name,
	}
	a.settings.form = newSettingsForm(a.settings.vals)
	if a.width > 0 {
		a.settings.form = a.settings.form.WithWidth(a.contentWidth()).WithHeight(a.height - 2)
	}
	return a, a.settings.form.Init()
}

func (a App) updateSettingsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		a.settings.form = nil
		a.setStatus("Settings unchanged", components.StatusInfo)
		return a, nil
	}

	form, cmd := a.settings.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.settings.form = f
	}

	switch a.settings.form.State {
	case huh.StateCompleted:
		a.settings.form = nil
		a.saveSettings()
		return a, nil
	case huh.StateAborted:
		a.settings.form = nil
		return a, nil
	}

	return a, cmd
}

// saveSettings applies the submitted form: the start date goes to the
// settings store, the theme to the config file.
func (a *App) saveSettings() {
	vals := a.settings.vals

	date, err := time.Parse(model.DateLayout, strings.TrimSpace(vals.startDate))
	if err != nil {
		a.setStatus(fmt.Sprintf("Invalid start date %q", vals.startDate), components.StatusError)
		return
	}
	if !date.Equal(a.tr.Settings.StartDate()) {
		if err := a.tr.Settings.SetStartDate(date); err != nil {
			a.setStatus(fmt.Sprintf("Start date not saved: %v", err), components.StatusError)
			return
		}
	}
	a.recompute()
	a.days.cursor = a.stats.CurrentDayIndex

	cfg, _ := config.Load()
	cfg.Appearance.Theme = vals.theme
	theme.SetActive(vals.theme)
	if err := config.Save(cfg); err != nil {
		a.setStatus(fmt.Sprintf("Theme applied but config not saved: %v", err), components.StatusWarning)
		return
	}

	a.setStatus("Settings saved", components.StatusInfo)
}

func (a App) renderSettingsTab(cw int) string {
	if a.settings.form != nil {
		return a.settings.form.View()
	}

	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	start := a.tr.Settings.StartDate()

	rows := []struct{ label, value string }{
		{"Start date", cli.FormatDate(start)},
		{"Last day", cli.FormatDate(model.DayDate(start, model.PeriodDays))},
		{"Days recorded", fmt.Sprint(len(a.tr.Days.State()))},
		{"Theme", theme.Active.Name},
		{"Config file", config.ConfigPath()},
	}

	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-14s", r.label)), valueStyle.Render(r.value))
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("[enter] edit start date and theme"))

	return components.ContentCard("Settings", b.String(), cw, false)
}
