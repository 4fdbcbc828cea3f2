// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

var (
	dayNames = []string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

	monthNames = []string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
)

// FormatDate renders a long Indonesian date, e.g. "Minggu, 1 Maret 2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d",
		FormatDayOfWeek(int(t.Weekday())), t.Day(), monthNames[t.Month()-1], t.Year())
}

// FormatShortDate renders "1 Mar" style dates for narrow columns.
func FormatShortDate(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), monthNames[t.Month()-1][:3])
}

// FormatDayOfWeek returns the Indonesian day name for a weekday number.
func FormatDayOfWeek(weekday int) string {
	if weekday >= 0 && weekday < 7 {
		return dayNames[weekday]
	}
	return "???"
}

// FormatCheck renders a boolean as a check mark or a dot.
func FormatCheck(v bool) string {
	if v {
		return "✓"
	}
	return "·"
}

// FormatCount renders "n/total".
func FormatCount(n, total int) string {
	return fmt.Sprintf("%d/%d", n, total)
}

// FormatPercent formats an integer percentage.
func FormatPercent(pct int) string {
	return fmt.Sprintf("%d%%", pct)
}

// Title capitalizes the first letter of a key, e.g. "subuh" -> "Subuh".
func Title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// FormatDayLabel renders "Hari ke-7".
func FormatDayLabel(day int) string {
	return fmt.Sprintf("Hari ke-%d", day)
}

// JoinTitles title-cases and joins keys with commas.
func JoinTitles(keys []string) string {
	if len(keys) == 0 {
		return "-"
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = Title(k)
	}
	return strings.Join(out, ", ")
}
