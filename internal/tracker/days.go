// Package tracker owns the in-memory day records and settings and writes
// them through to a store.KV after every change.
package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/theirongolddev/ramtrack/internal/model"
	"github.com/theirongolddev/ramtrack/internal/store"

	"github.com/rs/zerolog/log"
)

// ErrPersist wraps a failed write. The in-memory state still holds the change.
var ErrPersist = errors.New("persisting tracker state")

// DayStore holds the records for every day of the period.
// It is not safe for concurrent use.
type DayStore struct {
	kv    store.KV
	ctx   context.Context
	state model.TrackerState
	dirty bool
}

// LoadDays reads the persisted state. A missing key yields an empty state
// and data that is not a JSON object is logged and replaced by one. Records
// with an invalid key or a non-object value are logged and dropped; the
// rest load.
func LoadDays(ctx context.Context, kv store.KV) (*DayStore, error) {
	s := &DayStore{kv: kv, ctx: ctx, state: model.TrackerState{}}

	raw, ok, err := kv.Get(ctx, store.KeyData)
	if err != nil {
		return nil, fmt.Errorf("loading tracker data: %w", err)
	}
	if !ok {
		return s, nil
	}

	// Records are decoded one at a time so a bad record only costs itself.
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		log.Warn().Err(err).Str("key", store.KeyData).Msg("tracker data unreadable, starting empty")
		return s, nil
	}
	for key, data := range decoded {
		if _, err := model.ParseDayKey(key); err != nil {
			log.Warn().Str("key", key).Msg("dropping record with invalid day key")
			continue
		}
		var rec model.DayRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("dropping unreadable day record")
			continue
		}
		s.state[key] = rec
	}
	return s, nil
}

// Record returns the stored record for day or a fresh default. Reading never
// adds an entry. It panics if day is outside the period.
func (s *DayStore) Record(day int) model.DayRecord {
	if err := model.ValidateDay(day); err != nil {
		panic(err)
	}
	return s.state.Get(day)
}

// SetField sets fasting or haid on day. Setting haid to true also clears
// fasting and every prayer on that day.
func (s *DayStore) SetField(day int, field model.Field, value bool) error {
	if err := model.ValidateDay(day); err != nil {
		return err
	}
	rec, err := s.state.Get(day).WithField(field, value)
	if err != nil {
		return err
	}
	return s.put(day, rec)
}

// SetSubField sets group[key] on day.
func (s *DayStore) SetSubField(day int, group model.Group, key string, value bool) error {
	if err := model.ValidateDay(day); err != nil {
		return err
	}
	rec, err := s.state.Get(day).WithSubField(group, key, value)
	if err != nil {
		return err
	}
	return s.put(day, rec)
}

// Set resolves an item name ("fasting", "haid", a prayer or a habit) and
// routes it to SetField or SetSubField.
func (s *DayStore) Set(day int, name string, value bool) error {
	it, err := model.ParseItem(name)
	if err != nil {
		return err
	}
	if it.Field != "" {
		return s.SetField(day, it.Field, value)
	}
	return s.SetSubField(day, it.Group, it.Key, value)
}

func (s *DayStore) put(day int, rec model.DayRecord) error {
	s.state[model.DayKey(day)] = rec
	s.dirty = true
	log.Debug().Int("day", day).Msg("day record updated")
	return s.Save()
}

// Save writes the full state. It is called after every mutation and can be
// called again to retry after a failed write.
func (s *DayStore) Save() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("%w: encoding: %v", ErrPersist, err)
	}
	if err := s.kv.Set(s.ctx, store.KeyData, string(data)); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	s.dirty = false
	return nil
}

// Dirty reports whether in-memory changes have not been written yet.
func (s *DayStore) Dirty() bool {
	return s.dirty
}

// State returns a copy of the stored records.
func (s *DayStore) State() model.TrackerState {
	return s.state.Clone()
}

// Day implements pipeline.DayReader.
func (s *DayStore) Day(day int) model.DayRecord {
	return s.Record(day)
}
