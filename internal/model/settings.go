package model

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used for persisted dates.
const DateLayout = "2006-01-02"

// DefaultStartDate is the estimated first day of the period.
const DefaultStartDate = "2026-03-01"

// DefaultStart is DefaultStartDate as a UTC calendar date.
var DefaultStart = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

// Settings holds the user-configurable tracker settings.
type Settings struct {
	StartDate string `json:"startDate"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() Settings {
	return Settings{StartDate: DefaultStartDate}
}

// Start parses StartDate as a UTC calendar date.
func (s Settings) Start() (time.Time, error) {
	t, err := time.Parse(DateLayout, s.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing start date %q: %w", s.StartDate, err)
	}
	return t, nil
}

// DayDate returns the calendar date of a day index: start + (day-1) days.
func DayDate(start time.Time, day int) time.Time {
	return start.AddDate(0, 0, day-1)
}

// DayIndex returns which day index now falls on, counting the start date as
// day 1. The result is not clamped. Days are counted between calendar dates,
// with now's date taken in now's location, so DST shifts never move it.
func DayIndex(start, now time.Time) int {
	sy, sm, sd := start.Date()
	ny, nm, nd := now.Date()
	from := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	to := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from)/(24*time.Hour)) + 1
}
