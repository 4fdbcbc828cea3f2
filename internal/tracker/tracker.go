package tracker

import (
	"context"
	"time"

	"github.com/theirongolddev/ramtrack/internal/model"
	"github.com/theirongolddev/ramtrack/internal/pipeline"
	"github.com/theirongolddev/ramtrack/internal/store"
)

// Tracker bundles the day and settings stores loaded from one KV.
type Tracker struct {
	Days     *DayStore
	Settings *SettingsStore
}

// Open loads both stores from kv.
func Open(ctx context.Context, kv store.KV) (*Tracker, error) {
	days, err := LoadDays(ctx, kv)
	if err != nil {
		return nil, err
	}
	settings, err := LoadSettings(ctx, kv)
	if err != nil {
		return nil, err
	}
	return &Tracker{Days: days, Settings: settings}, nil
}

// Stats recomputes the period statistics as of now.
func (t *Tracker) Stats(now time.Time) model.Stats {
	return pipeline.Aggregate(t.Days, t.Settings.StartDate(), now)
}

// Breakdown recomputes the completion totals.
func (t *Tracker) Breakdown() model.Breakdown {
	return pipeline.AggregateBreakdown(t.Days)
}

// Rows lists every day with its calendar date.
func (t *Tracker) Rows(now time.Time) []pipeline.DayRow {
	return pipeline.AggregateDays(t.Days, t.Settings.StartDate(), now)
}
