// Package pipeline derives statistics and per-day views from tracked records.
package pipeline

import (
	"math"
	"time"

	"github.com/theirongolddev/ramtrack/internal/model"
)

// DayReader returns the record for a day index in 1..model.PeriodDays,
// substituting the default record for untouched days.
type DayReader interface {
	Day(day int) model.DayRecord
}

// StateReader adapts a TrackerState to DayReader.
type StateReader model.TrackerState

// Day implements DayReader.
func (s StateReader) Day(day int) model.DayRecord {
	return model.TrackerState(s).Get(day)
}

// Aggregate computes the period statistics as of now. The progress
// percentage reflects elapsed calendar time only.
func Aggregate(days DayReader, start, now time.Time) model.Stats {
	var stats model.Stats

	for d := 1; d <= model.PeriodDays; d++ {
		if days.Day(d).Fasting {
			stats.TotalFasted++
		}
	}

	stats.CurrentDayIndex = ClampDay(model.DayIndex(start, now))
	stats.DaysRemaining = max(0, model.PeriodDays-stats.CurrentDayIndex)
	stats.ProgressPercent = int(math.Round(float64(stats.CurrentDayIndex) / model.PeriodDays * 100))

	return stats
}

// ClampDay forces a day index into 1..model.PeriodDays.
func ClampDay(day int) int {
	return max(1, min(model.PeriodDays, day))
}

// AggregateBreakdown totals prayers, habits, and exemption days.
func AggregateBreakdown(days DayReader) model.Breakdown {
	var b model.Breakdown

	for d := 1; d <= model.PeriodDays; d++ {
		rec := days.Day(d)
		if rec.Fasting || rec.Haid {
			b.CompletedDays++
		}
		if rec.Haid {
			b.HaidDays++
		}
		if rec.Prayers.Count() == len(model.Prayers) {
			b.PerfectPrayerDays++
		}
		for _, p := range model.Prayers {
			if rec.Prayers[p] {
				b.Prayers[p]++
			}
		}
		for _, h := range model.Habits {
			if rec.Habits[h] {
				b.Habits[h]++
			}
		}
	}

	return b
}

// DayRow pairs a day index with its calendar date and record.
type DayRow struct {
	Day    int
	Date   time.Time
	Record model.DayRecord
	Today  bool
}

// AggregateDays lists every day of the period in order. Today marks the row
// that now falls on, if now is inside the period.
func AggregateDays(days DayReader, start, now time.Time) []DayRow {
	current := model.DayIndex(start, now)
	rows := make([]DayRow, 0, model.PeriodDays)
	for d := 1; d <= model.PeriodDays; d++ {
		rows = append(rows, DayRow{
			Day:    d,
			Date:   model.DayDate(start, d),
			Record: days.Day(d),
			Today:  d == current,
		})
	}
	return rows
}
