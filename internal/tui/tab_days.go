package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/ramtrack/internal/cli"
	"github.com/theirongolddev/ramtrack/internal/model"
	"github.com/theirongolddev/ramtrack/internal/tracker"
	"github.com/theirongolddev/ramtrack/internal/tui/components"
	"github.com/theirongolddev/ramtrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const dayListWidth = 42

// daysState tracks the Days tab: the selected day and the focused toggle.
type daysState struct {
	cursor int // day index, 1-based
	item   int // index into dayItems
}

// dayItems lists the toggles of the detail pane in display order.
var dayItems = func() []model.Item {
	names := model.ItemNames()
	items := make([]model.Item, len(names))
	for i, name := range names {
		it, err := model.ParseItem(name)
		if err != nil {
			panic(err)
		}
		items[i] = it
	}
	return items
}()

func itemName(it model.Item) string {
	if it.Field != "" {
		return string(it.Field)
	}
	return it.Key
}

func itemLabel(it model.Item) string {
	switch it.Field {
	case model.FieldFasting:
		return "Puasa"
	case model.FieldHaid:
		return "Haid"
	}
	return cli.Title(it.Key)
}

// itemExempt reports whether it is not tracked on rec: fasting and prayers
// are cleared and disabled while haid is set.
func itemExempt(rec model.DayRecord, it model.Item) bool {
	return rec.Haid && (it.Field == model.FieldFasting || it.Group == model.GroupPrayers)
}

// updateDaysKey handles Days tab keys and reports whether key was consumed.
func (a *App) updateDaysKey(key string) bool {
	switch key {
	case "j", "down":
		a.moveDay(1)
	case "k", "up":
		a.moveDay(-1)
	case "g", "home":
		a.days.cursor = 1
	case "G", "end":
		a.days.cursor = model.PeriodDays
	case "t":
		a.days.cursor = a.stats.CurrentDayIndex
	case "l", "tab":
		a.days.item = (a.days.item + 1) % len(dayItems)
	case "h", "shift+tab":
		a.days.item = (a.days.item - 1 + len(dayItems)) % len(dayItems)
	case " ", "space", "enter":
		a.toggleItem()
	default:
		return false
	}
	return true
}

func (a *App) moveDay(delta int) {
	a.days.cursor = min(max(a.days.cursor+delta, 1), model.PeriodDays)
}

// toggleItem flips the focused item on the selected day.
func (a *App) toggleItem() {
	day := a.days.cursor
	it := dayItems[a.days.item]
	rec := a.tr.Days.Record(day)

	if itemExempt(rec, it) {
		a.setStatus(fmt.Sprintf("%s is not tracked on a haid day", itemLabel(it)), components.StatusWarning)
		return
	}

	value := !rec.Value(it)
	err := a.tr.Days.Set(day, itemName(it), value)
	a.recompute()

	switch {
	case errors.Is(err, tracker.ErrPersist):
		a.setStatus(fmt.Sprintf("Not saved: %v", err), components.StatusError)
	case err != nil:
		a.setStatus(err.Error(), components.StatusError)
	default:
		state := "off"
		if value {
			state = "on"
		}
		a.setStatus(fmt.Sprintf("%s %s: %s", cli.FormatDayLabel(day), itemLabel(it), state), components.StatusInfo)
	}
}

func (a App) renderDaysTab(cw, h int) string {
	listW := dayListWidth
	detailW := cw - listW

	list := components.ContentCard("Ramadan", a.renderDayList(h-3), listW, false)
	detail := components.ContentCard(a.detailTitle(), a.renderDayDetail(components.CardInnerWidth(detailW)), detailW, true)

	return components.CardRow([]string{list, detail})
}

// renderDayList renders at most visible rows of the day list, scrolled to
// keep the cursor roughly centered.
func (a App) renderDayList(visible int) string {
	t := theme.Active
	visible = max(min(visible, len(a.rows)), 1)

	offset := min(max(a.days.cursor-1-visible/2, 0), len(a.rows)-visible)

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	todayStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(t.Done).Background(t.Surface)
	exemptStyle := lipgloss.NewStyle().Foreground(t.Exempt).Background(t.Surface)

	innerW := components.CardInnerWidth(dayListWidth)

	var b strings.Builder
	for i, row := range a.rows[offset : offset+visible] {
		if i > 0 {
			b.WriteString("\n")
		}
		rec := row.Record

		marker := "  "
		if row.Day == a.days.cursor {
			marker = "▸ "
		}
		today := " "
		if row.Today {
			today = "◂"
		}
		fast := cli.FormatCheck(rec.Fasting)
		if rec.Haid {
			fast = "◆"
		}

		line := fmt.Sprintf("%s%-8s %-3s %-6s %s  %s  %s %s",
			marker,
			fmt.Sprintf("Hari %d", row.Day),
			cli.FormatDayOfWeek(int(row.Date.Weekday()))[:3],
			cli.FormatShortDate(row.Date),
			fast,
			cli.FormatCount(rec.Prayers.Count(), len(model.Prayers)),
			cli.FormatCount(rec.Habits.Count(), len(model.Habits)),
			today,
		)

		switch {
		case row.Day == a.days.cursor:
			b.WriteString(selStyle.Render(padRight(line, innerW)))
		case rec.Haid:
			b.WriteString(exemptStyle.Render(line))
		case row.Today:
			b.WriteString(todayStyle.Render(line))
		case rec.Fasting:
			b.WriteString(doneStyle.Render(line))
		case row.Day > a.stats.CurrentDayIndex:
			b.WriteString(dimStyle.Render(line))
		default:
			b.WriteString(rowStyle.Render(line))
		}
	}
	return b.String()
}

func (a App) detailTitle() string {
	row := a.rows[a.days.cursor-1]
	title := fmt.Sprintf("%s · %s", cli.FormatDayLabel(row.Day), cli.FormatDate(row.Date))
	if row.Today {
		title += " · hari ini"
	}
	return title
}

func (a App) renderDayDetail(innerW int) string {
	t := theme.Active
	rec := a.rows[a.days.cursor-1].Record

	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	doneStyle := lipgloss.NewStyle().Foreground(t.Done).Background(t.Surface).Bold(true)
	offStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	exemptStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	focusStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	noteStyle := lipgloss.NewStyle().Foreground(t.Exempt).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	for i, it := range dayItems {
		switch {
		case it.Group == model.GroupPrayers && it.Key == model.Prayers[0].String():
			b.WriteString(sectionStyle.Render(fmt.Sprintf("Sholat 5 Waktu  %s", cli.FormatCount(rec.Prayers.Count(), len(model.Prayers)))))
			b.WriteString("\n")
		case it.Group == model.GroupHabits && it.Key == model.Habits[0].String():
			b.WriteString(sectionStyle.Render(fmt.Sprintf("Kebiasaan Baik  %s", cli.FormatCount(rec.Habits.Count(), len(model.Habits)))))
			b.WriteString("\n")
		case it.Field == model.FieldHaid:
			b.WriteString("\n")
		}

		indent := ""
		if it.Group != "" {
			indent = "  "
		}
		label := fmt.Sprintf("%s%-12s", indent, itemLabel(it))

		var box string
		exempt := itemExempt(rec, it)
		switch {
		case exempt:
			box = "[-]"
		case rec.Value(it):
			box = "[✓]"
		default:
			box = "[ ]"
		}

		if i == a.days.item {
			b.WriteString(focusStyle.Render(padRight("▸ "+label+" "+box, innerW)))
		} else {
			line := "  " + label + " "
			switch {
			case exempt:
				b.WriteString(exemptStyle.Render(line + box))
			case rec.Value(it):
				b.WriteString(labelStyle.Render(line) + doneStyle.Render(box))
			default:
				b.WriteString(labelStyle.Render(line) + offStyle.Render(box))
			}
		}
		b.WriteString("\n")
	}

	if rec.Haid {
		b.WriteString("\n")
		b.WriteString(noteStyle.Render("Haid: puasa dan sholat tidak dicatat."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("[space] toggle  [j/k] day  [h/l] item  [t] today"))
	return b.String()
}

func padRight(s string, w int) string {
	if pad := w - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
