package model

import (
	"fmt"
	"strconv"
	"strings"
)

const dayKeyPrefix = "day_"

// TrackerState maps day keys ("day_1".."day_30") to their records. Days with
// no recorded interaction have no entry.
type TrackerState map[string]DayRecord

// DayKey returns the storage key for a day index.
func DayKey(day int) string {
	return dayKeyPrefix + strconv.Itoa(day)
}

// ParseDayKey returns the day index encoded in a key such as "day_7".
// Only the exact form DayKey produces is accepted, so "day_07" is rejected.
func ParseDayKey(key string) (int, error) {
	if !strings.HasPrefix(key, dayKeyPrefix) {
		return 0, fmt.Errorf("%w: key %q", ErrUnknownKey, key)
	}
	day, err := strconv.Atoi(strings.TrimPrefix(key, dayKeyPrefix))
	if err != nil || DayKey(day) != key {
		return 0, fmt.Errorf("%w: key %q", ErrUnknownKey, key)
	}
	if err := ValidateDay(day); err != nil {
		return 0, err
	}
	return day, nil
}

// Get returns the record for day, or the default record if none is stored.
// The state is never modified.
func (s TrackerState) Get(day int) DayRecord {
	if r, ok := s[DayKey(day)]; ok {
		return r
	}
	return DefaultRecord()
}

// Clone returns an independent copy of s.
func (s TrackerState) Clone() TrackerState {
	out := make(TrackerState, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
