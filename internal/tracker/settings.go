package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/theirongolddev/ramtrack/internal/model"
	"github.com/theirongolddev/ramtrack/internal/store"

	"github.com/rs/zerolog/log"
)

// SettingsStore holds the period start date.
type SettingsStore struct {
	kv       store.KV
	ctx      context.Context
	settings model.Settings
	start    time.Time
}

// LoadSettings reads persisted settings, falling back to defaults when the
// key is missing or the stored value cannot be used.
func LoadSettings(ctx context.Context, kv store.KV) (*SettingsStore, error) {
	s := &SettingsStore{kv: kv, ctx: ctx}
	s.reset()

	raw, ok, err := kv.Get(ctx, store.KeySettings)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if !ok {
		return s, nil
	}

	var decoded model.Settings
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		log.Warn().Err(err).Str("key", store.KeySettings).Msg("settings unreadable, using defaults")
		return s, nil
	}
	start, err := decoded.Start()
	if err != nil {
		log.Warn().Err(err).Msg("invalid start date, using default")
		return s, nil
	}
	s.settings = decoded
	s.start = start
	return s, nil
}

func (s *SettingsStore) reset() {
	s.settings = model.DefaultSettings()
	s.start = model.DefaultStart
}

// StartDate returns the first day of the period as a UTC calendar date.
func (s *SettingsStore) StartDate() time.Time {
	return s.start
}

// Settings returns a copy of the current settings.
func (s *SettingsStore) Settings() model.Settings {
	return s.settings
}

// SetStartDate changes the first day of the period and persists it. Day
// records are left alone: day 1 simply maps to the new date.
func (s *SettingsStore) SetStartDate(date time.Time) error {
	y, m, d := date.Date()
	s.start = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	s.settings.StartDate = s.start.Format(model.DateLayout)

	data, err := json.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("%w: encoding settings: %v", ErrPersist, err)
	}
	if err := s.kv.Set(s.ctx, store.KeySettings, string(data)); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	log.Debug().Str("start_date", s.settings.StartDate).Msg("start date updated")
	return nil
}
