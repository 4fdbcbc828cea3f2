package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/ramtrack/internal/model"
	"github.com/theirongolddev/ramtrack/internal/store"
	"github.com/theirongolddev/ramtrack/internal/tracker"
	"github.com/theirongolddev/ramtrack/internal/tui/components"
	"github.com/theirongolddev/ramtrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

// newTestApp opens an empty tracker whose clock sits on day 3.
func newTestApp(t *testing.T) (App, *tracker.Tracker, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	tr, err := tracker.Open(context.Background(), kv)
	if err != nil {
		t.Fatalf("tracker.Open: %v", err)
	}
	now := time.Date(2026, 3, 3, 9, 0, 0, 0, time.Local)
	return NewApp(tr, FixedClock(now)), tr, kv
}

func press(a App, keys ...string) App {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func TestNewAppStartsOnToday(t *testing.T) {
	a, _, _ := newTestApp(t)
	if a.days.cursor != 3 {
		t.Errorf("cursor = %d, want 3", a.days.cursor)
	}
	if a.stats.CurrentDayIndex != 3 || a.stats.DaysRemaining != 27 {
		t.Errorf("stats = %+v", a.stats)
	}
	if len(a.rows) != model.PeriodDays {
		t.Errorf("rows = %d, want %d", len(a.rows), model.PeriodDays)
	}
}

func TestDayNavigationClamps(t *testing.T) {
	a, _, _ := newTestApp(t)

	a = press(a, "k", "k", "k", "k", "k")
	if a.days.cursor != 1 {
		t.Errorf("after k×5 cursor = %d, want 1", a.days.cursor)
	}
	a = press(a, "G", "j")
	if a.days.cursor != model.PeriodDays {
		t.Errorf("after G j cursor = %d, want %d", a.days.cursor, model.PeriodDays)
	}
	a = press(a, "t")
	if a.days.cursor != 3 {
		t.Errorf("after t cursor = %d, want 3", a.days.cursor)
	}
}

func TestItemNavigationWraps(t *testing.T) {
	a, _, _ := newTestApp(t)

	a = press(a, "h")
	if got := dayItems[a.days.item]; got.Field != model.FieldHaid {
		t.Errorf("h from first item -> %+v, want haid", got)
	}
	a = press(a, "l", "tab")
	if got := dayItems[a.days.item]; got.Key != model.Subuh.String() {
		t.Errorf("l tab -> %+v, want subuh", got)
	}
}

func TestSpaceTogglesAndRecomputes(t *testing.T) {
	a, tr, _ := newTestApp(t)

	a = press(a, "space")
	if !tr.Days.Record(3).Fasting {
		t.Fatal("fasting not set on day 3")
	}
	if a.stats.TotalFasted != 1 {
		t.Errorf("TotalFasted = %d, want 1", a.stats.TotalFasted)
	}
	if !a.rows[2].Record.Fasting {
		t.Error("rows not refreshed after toggle")
	}

	a = press(a, "space")
	if tr.Days.Record(3).Fasting || a.stats.TotalFasted != 0 {
		t.Error("second toggle should clear fasting")
	}
}

func TestHaidToggleDisablesFastingAndPrayers(t *testing.T) {
	a, tr, _ := newTestApp(t)

	// fasting, subuh, then habits[0] (quran) on day 3
	a = press(a, "space", "l", "space")
	for range model.Prayers {
		a = press(a, "l")
	}
	a = press(a, "space")

	rec := tr.Days.Record(3)
	if !rec.Fasting || !rec.Prayers[model.Subuh] || !rec.Habits[model.Quran] {
		t.Fatalf("setup failed: %+v", rec)
	}

	// Wrap back to haid and set it.
	a.days.item = len(dayItems) - 1
	a = press(a, "space")

	rec = tr.Days.Record(3)
	if !rec.Haid || rec.Fasting || rec.Prayers.Count() != 0 {
		t.Errorf("haid cascade not applied: %+v", rec)
	}
	if !rec.Habits[model.Quran] {
		t.Error("habits must survive the haid cascade")
	}

	// Fasting is now exempt and cannot be toggled.
	a.days.item = 0
	a = press(a, "space")
	if tr.Days.Record(3).Fasting {
		t.Error("fasting toggled on a haid day")
	}
	if a.statusKind != components.StatusWarning {
		t.Errorf("statusKind = %v, want warning", a.statusKind)
	}

	if !itemExempt(rec, dayItems[1]) || itemExempt(rec, dayItems[len(dayItems)-1]) {
		t.Error("itemExempt should cover prayers and not haid itself")
	}
}

func TestPersistFailureKeepsStateAndRetries(t *testing.T) {
	a, tr, kv := newTestApp(t)

	kv.SetErr = errors.New("disk full")
	a = press(a, "space")

	if !tr.Days.Record(3).Fasting {
		t.Error("in-memory state should keep the change")
	}
	if !tr.Days.Dirty() {
		t.Error("store should be dirty after a failed write")
	}
	if a.statusKind != components.StatusError {
		t.Errorf("statusKind = %v, want error", a.statusKind)
	}

	kv.SetErr = nil
	a = press(a, "w")
	if tr.Days.Dirty() {
		t.Error("w should retry the save")
	}
	if a.status != "Saved" {
		t.Errorf("status = %q, want Saved", a.status)
	}
}

func TestTabSwitching(t *testing.T) {
	a, _, _ := newTestApp(t)

	a = press(a, "s")
	if a.activeTab != tabSummary {
		t.Errorf("s -> tab %d, want summary", a.activeTab)
	}
	a = press(a, "x")
	if a.activeTab != tabSettings {
		t.Errorf("x -> tab %d, want settings", a.activeTab)
	}
	a = press(a, "right")
	if a.activeTab != tabDays {
		t.Errorf("right from settings -> tab %d, want days", a.activeTab)
	}
	a = press(a, "left")
	if a.activeTab != tabSettings {
		t.Errorf("left from days -> tab %d, want settings", a.activeTab)
	}

	m, _ := a.Update(tea.MouseMsg{X: 1, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.(App).activeTab != tabDays {
		t.Errorf("click on first tab -> %d, want days", m.(App).activeTab)
	}
}

func TestHelpToggle(t *testing.T) {
	a, _, _ := newTestApp(t)

	a = press(a, "?")
	if !a.showHelp {
		t.Fatal("? should open help")
	}
	a = press(a, "j")
	if a.showHelp || a.days.cursor != 3 {
		t.Error("any key should only close help")
	}
}

func TestViewRendersTabs(t *testing.T) {
	a, _, _ := newTestApp(t)

	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	a = m.(App)

	if v := a.View(); !strings.Contains(v, "Hari ke-3") || !strings.Contains(v, "hari ini") {
		t.Error("days view should show today's detail")
	}
	a = press(a, "s")
	if v := a.View(); !strings.Contains(v, "Progres Ramadan") {
		t.Error("summary view missing progress card")
	}
	a = press(a, "x")
	if v := a.View(); !strings.Contains(v, "Start date") {
		t.Error("settings view missing start date")
	}

	m, _ = a.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if v := m.(App).View(); !strings.Contains(v, "Terminal too narrow") {
		t.Error("narrow terminal should show the width warning")
	}
}

func TestSaveSettingsMovesStartDate(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	defer theme.SetActive(theme.FlexokiDark.Name)

	a, tr, _ := newTestApp(t)
	a = press(a, "space") // fasting on day 3

	a.settings.vals = &settingsValues{startDate: "2026-02-28", theme: "lantern"}
	a.saveSettings()

	if got := tr.Settings.Settings().StartDate; got != "2026-02-28" {
		t.Errorf("StartDate = %q", got)
	}
	if a.stats.CurrentDayIndex != 4 || a.days.cursor != 4 {
		t.Errorf("day index = %d, cursor = %d, want 4", a.stats.CurrentDayIndex, a.days.cursor)
	}
	if !tr.Days.Record(3).Fasting {
		t.Error("day records must be kept when the start date moves")
	}
	if theme.Active.Name != "lantern" {
		t.Errorf("theme = %q, want lantern", theme.Active.Name)
	}
	if a.statusKind != components.StatusInfo {
		t.Errorf("status = %q", a.status)
	}
}

func TestValidateStartDate(t *testing.T) {
	if err := validateStartDate("2026-03-01"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	for _, s := range []string{"", "01-03-2026", "2026-02-30"} {
		if validateStartDate(s) == nil {
			t.Errorf("%q accepted", s)
		}
	}
}
