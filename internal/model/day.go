// Package model defines the day records, settings, and derived statistics for ramtrack.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// PeriodDays is the fixed length of the tracked period.
const PeriodDays = 30

var (
	ErrDayOutOfRange = errors.New("day out of range")
	ErrUnknownField  = errors.New("unknown field")
	ErrUnknownGroup  = errors.New("unknown group")
	ErrUnknownKey    = errors.New("unknown key")
)

// Prayer identifies one of the five daily prayers.
type Prayer int

const (
	Subuh Prayer = iota
	Dzuhur
	Ashar
	Maghrib
	Isya
	numPrayers
)

var prayerNames = [numPrayers]string{"subuh", "dzuhur", "ashar", "maghrib", "isya"}

// Prayers lists every prayer in daily order.
var Prayers = []Prayer{Subuh, Dzuhur, Ashar, Maghrib, Isya}

func (p Prayer) String() string {
	if p < 0 || p >= numPrayers {
		return fmt.Sprintf("prayer(%d)", int(p))
	}
	return prayerNames[p]
}

// ParsePrayer resolves a prayer key such as "subuh".
func ParsePrayer(key string) (Prayer, error) {
	for i, name := range prayerNames {
		if name == key {
			return Prayer(i), nil
		}
	}
	return 0, fmt.Errorf("%w: prayer %q", ErrUnknownKey, key)
}

// Habit identifies one of the voluntary daily habits.
type Habit int

const (
	Quran Habit = iota
	Tarawih
	Sedekah
	Dzikir
	numHabits
)

var habitNames = [numHabits]string{"quran", "tarawih", "sedekah", "dzikir"}

// Habits lists every habit in display order.
var Habits = []Habit{Quran, Tarawih, Sedekah, Dzikir}

func (h Habit) String() string {
	if h < 0 || h >= numHabits {
		return fmt.Sprintf("habit(%d)", int(h))
	}
	return habitNames[h]
}

// ParseHabit resolves a habit key such as "quran".
func ParseHabit(key string) (Habit, error) {
	for i, name := range habitNames {
		if name == key {
			return Habit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: habit %q", ErrUnknownKey, key)
}

// PrayerSet holds the completion flag for each prayer.
// It encodes as a JSON object keyed by prayer name.
type PrayerSet [numPrayers]bool

// Count returns how many prayers are marked.
func (s PrayerSet) Count() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}

// MarshalJSON implements json.Marshaler.
func (s PrayerSet) MarshalJSON() ([]byte, error) {
	m := make(map[string]bool, numPrayers)
	for i, v := range s {
		m[prayerNames[i]] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON overlays known keys onto the receiver. Unknown keys and
// non-boolean values are ignored; missing keys keep their current value.
func (s *PrayerSet) UnmarshalJSON(data []byte) error {
	return overlayFlags(data, func(k string, v bool) {
		if p, err := ParsePrayer(k); err == nil {
			s[p] = v
		}
	})
}

// HabitSet holds the completion flag for each habit.
type HabitSet [numHabits]bool

// Count returns how many habits are marked.
func (s HabitSet) Count() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}

// MarshalJSON implements json.Marshaler.
func (s HabitSet) MarshalJSON() ([]byte, error) {
	m := make(map[string]bool, numHabits)
	for i, v := range s {
		m[habitNames[i]] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON overlays known keys onto the receiver.
func (s *HabitSet) UnmarshalJSON(data []byte) error {
	return overlayFlags(data, func(k string, v bool) {
		if h, err := ParseHabit(k); err == nil {
			s[h] = v
		}
	})
}

// overlayFlags decodes a JSON object and calls set for every member that
// holds a boolean. It fails only when data is not an object.
func overlayFlags(data []byte, set func(key string, v bool)) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for k, raw := range m {
		var v bool
		if err := json.Unmarshal(raw, &v); err == nil {
			set(k, v)
		}
	}
	return nil
}

// DayRecord is the tracked state of a single day. It holds no references,
// so copies are fully independent.
type DayRecord struct {
	Fasting bool      `json:"fasting"`
	Prayers PrayerSet `json:"prayers"`
	Habits  HabitSet  `json:"habits"`
	Haid    bool      `json:"haid"`
}

// DefaultRecord returns the record used for a day with no recorded interaction.
func DefaultRecord() DayRecord {
	return DayRecord{}
}

// UnmarshalJSON decodes field by field on top of the default record, so
// records written by older or partial schemas still load. A field holding
// the wrong type keeps its default; only a non-object record is an error.
func (r *DayRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	rec := DefaultRecord()
	overlayField(fields["fasting"], &rec.Fasting)
	overlayField(fields["prayers"], &rec.Prayers)
	overlayField(fields["habits"], &rec.Habits)
	overlayField(fields["haid"], &rec.Haid)
	*r = rec
	return nil
}

func overlayField[T any](raw json.RawMessage, dst *T) {
	if raw == nil {
		return
	}
	v := *dst
	if err := json.Unmarshal(raw, &v); err == nil {
		*dst = v
	}
}

// ApplyExemption clears fasting and every prayer. Habits are kept.
func ApplyExemption(r DayRecord) DayRecord {
	r.Fasting = false
	r.Prayers = PrayerSet{}
	return r
}

// Field names a top-level boolean on a DayRecord.
type Field string

const (
	FieldFasting Field = "fasting"
	FieldHaid    Field = "haid"
)

// Group names a keyed set on a DayRecord.
type Group string

const (
	GroupPrayers Group = "prayers"
	GroupHabits  Group = "habits"
)

// ValidateDay reports whether day is inside the tracked period.
func ValidateDay(day int) error {
	if day < 1 || day > PeriodDays {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrDayOutOfRange, day, PeriodDays)
	}
	return nil
}

// WithField returns r with field set to value. Setting haid to true
// applies the exemption.
func (r DayRecord) WithField(field Field, value bool) (DayRecord, error) {
	switch field {
	case FieldFasting:
		r.Fasting = value
	case FieldHaid:
		r.Haid = value
		if value {
			r = ApplyExemption(r)
		}
	default:
		return r, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return r, nil
}

// WithSubField returns r with group[key] set to value.
func (r DayRecord) WithSubField(group Group, key string, value bool) (DayRecord, error) {
	switch group {
	case GroupPrayers:
		p, err := ParsePrayer(key)
		if err != nil {
			return r, err
		}
		r.Prayers[p] = value
	case GroupHabits:
		h, err := ParseHabit(key)
		if err != nil {
			return r, err
		}
		r.Habits[h] = value
	default:
		return r, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}
	return r, nil
}

// Item is a single toggleable entry on a day, resolved from a name such as
// "fasting", "haid", "maghrib", or "quran".
type Item struct {
	Field Field  // set for fasting and haid
	Group Group  // set for prayers and habits
	Key   string // prayer or habit key when Group is set
}

// ParseItem resolves an item name. Prayer and habit keys are disjoint, so
// a bare key identifies its group.
func ParseItem(name string) (Item, error) {
	switch Field(name) {
	case FieldFasting, FieldHaid:
		return Item{Field: Field(name)}, nil
	}
	if _, err := ParsePrayer(name); err == nil {
		return Item{Group: GroupPrayers, Key: name}, nil
	}
	if _, err := ParseHabit(name); err == nil {
		return Item{Group: GroupHabits, Key: name}, nil
	}
	return Item{}, fmt.Errorf("%w: item %q", ErrUnknownKey, name)
}

// ItemNames lists every item in display order.
func ItemNames() []string {
	names := []string{string(FieldFasting)}
	for _, p := range Prayers {
		names = append(names, p.String())
	}
	for _, h := range Habits {
		names = append(names, h.String())
	}
	return append(names, string(FieldHaid))
}

// Value returns the current value of item on r.
func (r DayRecord) Value(it Item) bool {
	switch {
	case it.Field == FieldFasting:
		return r.Fasting
	case it.Field == FieldHaid:
		return r.Haid
	case it.Group == GroupPrayers:
		if p, err := ParsePrayer(it.Key); err == nil {
			return r.Prayers[p]
		}
	case it.Group == GroupHabits:
		if h, err := ParseHabit(it.Key); err == nil {
			return r.Habits[h]
		}
	}
	return false
}
