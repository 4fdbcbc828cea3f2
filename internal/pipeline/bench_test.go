package pipeline

import (
	"testing"
	"time"

	"github.com/theirongolddev/ramtrack/internal/model"
)

func fullState() model.TrackerState {
	state := model.TrackerState{}
	for d := 1; d <= model.PeriodDays; d++ {
		rec := model.DefaultRecord()
		rec.Fasting = d%3 != 0
		rec.Prayers[model.Subuh] = true
		rec.Habits[model.Quran] = d%2 == 0
		state[model.DayKey(d)] = rec
	}
	return state
}

func BenchmarkAggregate(b *testing.B) {
	days := StateReader(fullState())
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	now := start.AddDate(0, 0, 12)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Aggregate(days, start, now)
	}
}

func BenchmarkAggregateBreakdown(b *testing.B) {
	days := StateReader(fullState())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = AggregateBreakdown(days)
	}
}
