package model

// Stats is the aggregate view of the period relative to "now".
// ProgressPercent is the elapsed calendar fraction of the period,
// independent of what was actually completed.
type Stats struct {
	TotalFasted     int `json:"totalFasted"`
	CurrentDayIndex int `json:"currentDayIndex"`
	DaysRemaining   int `json:"daysRemaining"`
	ProgressPercent int `json:"progressPercent"`
}

// Breakdown holds completion totals across all tracked days.
type Breakdown struct {
	Prayers           [numPrayers]int
	Habits            [numHabits]int
	CompletedDays     int // fasted or exempt
	HaidDays          int
	PerfectPrayerDays int // all five prayers marked
}

// PrayerCount returns how many days p was marked.
func (b Breakdown) PrayerCount(p Prayer) int {
	return b.Prayers[p]
}

// HabitCount returns how many days h was marked.
func (b Breakdown) HabitCount(h Habit) int {
	return b.Habits[h]
}
