package pipeline

import (
	"testing"
	"time"

	"github.com/theirongolddev/ramtrack/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestAggregate_StartDateIsDayOne(t *testing.T) {
	start := mustDate(t, "2026-03-01")

	stats := Aggregate(StateReader(model.TrackerState{}), start, start)
	if stats.CurrentDayIndex != 1 {
		t.Fatalf("CurrentDayIndex = %d, want 1", stats.CurrentDayIndex)
	}
	if stats.ProgressPercent != 3 {
		t.Fatalf("ProgressPercent = %d, want 3", stats.ProgressPercent)
	}
	if stats.DaysRemaining != 29 {
		t.Fatalf("DaysRemaining = %d, want 29", stats.DaysRemaining)
	}
}

func TestAggregate_ClampsBeforeStart(t *testing.T) {
	start := mustDate(t, "2026-03-01")
	now := start.Add(-72 * time.Hour)

	stats := Aggregate(StateReader(model.TrackerState{}), start, now)
	if stats.CurrentDayIndex != 1 {
		t.Fatalf("CurrentDayIndex = %d, want 1", stats.CurrentDayIndex)
	}

	// One second before the start is still day 0 before clamping.
	if got := model.DayIndex(start, start.Add(-time.Second)); got != 0 {
		t.Fatalf("DayIndex just before start = %d, want 0", got)
	}
}

func TestAggregate_ClampsAfterEnd(t *testing.T) {
	start := mustDate(t, "2026-03-01")

	for _, offset := range []int{29, 30, 365} {
		now := start.AddDate(0, 0, offset)
		stats := Aggregate(StateReader(model.TrackerState{}), start, now)
		if stats.CurrentDayIndex != 30 {
			t.Fatalf("offset %d: CurrentDayIndex = %d, want 30", offset, stats.CurrentDayIndex)
		}
		if stats.DaysRemaining != 0 {
			t.Fatalf("offset %d: DaysRemaining = %d, want 0", offset, stats.DaysRemaining)
		}
		if stats.ProgressPercent != 100 {
			t.Fatalf("offset %d: ProgressPercent = %d, want 100", offset, stats.ProgressPercent)
		}
	}
}

func TestAggregate_MidPeriod(t *testing.T) {
	start := mustDate(t, "2026-03-01")
	now := start.AddDate(0, 0, 14).Add(20 * time.Hour) // late on day 15

	stats := Aggregate(StateReader(model.TrackerState{}), start, now)
	if stats.CurrentDayIndex != 15 {
		t.Fatalf("CurrentDayIndex = %d, want 15", stats.CurrentDayIndex)
	}
	if stats.DaysRemaining != 15 {
		t.Fatalf("DaysRemaining = %d, want 15", stats.DaysRemaining)
	}
	if stats.ProgressPercent != 50 {
		t.Fatalf("ProgressPercent = %d, want 50", stats.ProgressPercent)
	}
}

func TestAggregate_CountsFastedDays(t *testing.T) {
	state := model.TrackerState{}
	for _, d := range []int{1, 2, 5} {
		rec := model.DefaultRecord()
		rec.Fasting = true
		state[model.DayKey(d)] = rec
	}
	exempt := model.DefaultRecord()
	exempt.Haid = true
	state[model.DayKey(3)] = exempt

	stats := Aggregate(StateReader(state), mustDate(t, "2026-03-01"), mustDate(t, "2026-03-10"))
	if stats.TotalFasted != 3 {
		t.Fatalf("TotalFasted = %d, want 3", stats.TotalFasted)
	}
}

func TestAggregate_ProgressIgnoresCompletion(t *testing.T) {
	start := mustDate(t, "2026-03-01")
	now := start.AddDate(0, 0, 9)

	empty := Aggregate(StateReader(model.TrackerState{}), start, now)
	full := Aggregate(StateReader(fullState()), start, now)
	if empty.ProgressPercent != full.ProgressPercent {
		t.Fatalf("progress differs with completion data: %d vs %d",
			empty.ProgressPercent, full.ProgressPercent)
	}
}

func TestAggregateBreakdown(t *testing.T) {
	state := model.TrackerState{}

	perfect := model.DefaultRecord()
	perfect.Fasting = true
	for _, p := range model.Prayers {
		perfect.Prayers[p] = true
	}
	perfect.Habits[model.Tarawih] = true
	state[model.DayKey(1)] = perfect

	exempt := model.DefaultRecord()
	exempt.Haid = true
	exempt.Habits[model.Dzikir] = true
	state[model.DayKey(2)] = exempt

	b := AggregateBreakdown(StateReader(state))
	if b.CompletedDays != 2 {
		t.Fatalf("CompletedDays = %d, want 2", b.CompletedDays)
	}
	if b.HaidDays != 1 {
		t.Fatalf("HaidDays = %d, want 1", b.HaidDays)
	}
	if b.PerfectPrayerDays != 1 {
		t.Fatalf("PerfectPrayerDays = %d, want 1", b.PerfectPrayerDays)
	}
	if b.PrayerCount(model.Isya) != 1 {
		t.Fatalf("isya count = %d, want 1", b.PrayerCount(model.Isya))
	}
	if b.HabitCount(model.Tarawih) != 1 || b.HabitCount(model.Dzikir) != 1 || b.HabitCount(model.Quran) != 0 {
		t.Fatalf("habit counts = %v", b.Habits)
	}
}

func TestAggregateDays(t *testing.T) {
	start := mustDate(t, "2026-03-01")
	rows := AggregateDays(StateReader(model.TrackerState{}), start, start.AddDate(0, 0, 4))

	if len(rows) != model.PeriodDays {
		t.Fatalf("len(rows) = %d, want %d", len(rows), model.PeriodDays)
	}
	if !rows[0].Date.Equal(start) {
		t.Fatalf("day 1 date = %s, want %s", rows[0].Date, start)
	}
	if got := rows[29].Date.Format(model.DateLayout); got != "2026-03-30" {
		t.Fatalf("day 30 date = %s, want 2026-03-30", got)
	}
	for _, r := range rows {
		if r.Today != (r.Day == 5) {
			t.Fatalf("day %d Today = %v", r.Day, r.Today)
		}
	}
}
