package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/ramtrack/internal/model"
	"github.com/theirongolddev/ramtrack/internal/store"
)

func TestStartDateDefault(t *testing.T) {
	s, err := LoadSettings(context.Background(), store.NewMemory())
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got := s.StartDate().Format(model.DateLayout); got != "2026-03-01" {
		t.Fatalf("StartDate = %s, want 2026-03-01", got)
	}
	if !s.StartDate().Equal(model.DefaultStart) {
		t.Fatalf("StartDate = %s, want %s", s.StartDate(), model.DefaultStart)
	}
}

func TestSetStartDatePersists(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	s, _ := LoadSettings(ctx, kv)

	loc := time.FixedZone("WIB", 7*3600)
	if err := s.SetStartDate(time.Date(2026, 2, 18, 21, 30, 0, 0, loc)); err != nil {
		t.Fatalf("SetStartDate: %v", err)
	}

	raw, ok, _ := kv.Get(ctx, store.KeySettings)
	if !ok {
		t.Fatal("settings not written")
	}
	var persisted model.Settings
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("persisted settings: %v", err)
	}
	if persisted.StartDate != "2026-02-18" {
		t.Fatalf("persisted startDate = %q, want 2026-02-18", persisted.StartDate)
	}

	reloaded, _ := LoadSettings(ctx, kv)
	if !reloaded.StartDate().Equal(s.StartDate()) {
		t.Fatalf("reloaded StartDate = %s, want %s", reloaded.StartDate(), s.StartDate())
	}
}

func TestLoadSettingsFallsBackOnBadData(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{`[1,2`, `{"startDate":"next ramadan"}`, `{}`} {
		kv := store.NewMemory()
		_ = kv.Set(ctx, store.KeySettings, raw)

		s, err := LoadSettings(ctx, kv)
		if err != nil {
			t.Fatalf("%s: LoadSettings: %v", raw, err)
		}
		if s.Settings() != model.DefaultSettings() {
			t.Fatalf("%s: settings = %+v, want defaults", raw, s.Settings())
		}
	}
}

func TestSetStartDateFailureIsReported(t *testing.T) {
	kv := store.NewMemory()
	s, _ := LoadSettings(context.Background(), kv)
	kv.SetErr = errors.New("disk full")

	err := s.SetStartDate(time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrPersist) {
		t.Fatalf("err = %v, want ErrPersist", err)
	}
	if got := s.StartDate().Format(model.DateLayout); got != "2026-02-20" {
		t.Fatalf("in-memory StartDate = %s, want 2026-02-20", got)
	}
}

func TestChangingStartDatePreservesRecords(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	tr, err := Open(ctx, kv)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	_ = tr.Days.SetField(1, model.FieldFasting, true)
	_ = tr.Days.Set(3, "haid", true)
	before := tr.Days.State()
	rawBefore, _, _ := kv.Get(ctx, store.KeyData)

	if err := tr.Settings.SetStartDate(time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("SetStartDate: %v", err)
	}

	after := tr.Days.State()
	for k, v := range before {
		if after[k] != v {
			t.Fatalf("%s changed after start date change", k)
		}
	}
	rawAfter, _, _ := kv.Get(ctx, store.KeyData)
	if rawAfter != rawBefore {
		t.Fatal("persisted day data changed after start date change")
	}

	rows := tr.Rows(time.Date(2026, 2, 17, 8, 0, 0, 0, time.UTC))
	if !rows[0].Record.Fasting {
		t.Fatal("day 1 lost its record")
	}
	if got := rows[0].Date.Format(model.DateLayout); got != "2026-02-17" {
		t.Fatalf("day 1 date = %s, want 2026-02-17", got)
	}
}

func TestTrackerStats(t *testing.T) {
	tr, _ := Open(context.Background(), store.NewMemory())
	for _, d := range []int{1, 2, 5} {
		_ = tr.Days.SetField(d, model.FieldFasting, true)
	}
	_ = tr.Days.SetField(3, model.FieldHaid, true)

	stats := tr.Stats(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	want := model.Stats{TotalFasted: 3, CurrentDayIndex: 1, DaysRemaining: 29, ProgressPercent: 3}
	if stats != want {
		t.Fatalf("Stats = %+v, want %+v", stats, want)
	}
	if b := tr.Breakdown(); b.CompletedDays != 4 {
		t.Fatalf("CompletedDays = %d, want 4", b.CompletedDays)
	}
}
