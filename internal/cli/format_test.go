package cli

import (
	"strings"
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	cases := map[string]string{
		"2026-03-01": "Minggu, 1 Maret 2026",
		"2026-03-20": "Jumat, 20 Maret 2026",
		"2026-02-18": "Rabu, 18 Februari 2026",
	}
	for in, want := range cases {
		d, err := time.Parse("2006-01-02", in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got := FormatDate(d); got != want {
			t.Errorf("FormatDate(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestTitle(t *testing.T) {
	if got := Title("maghrib"); got != "Maghrib" {
		t.Fatalf("Title = %q", got)
	}
	if got := JoinTitles([]string{"quran", "dzikir"}); got != "Quran, Dzikir" {
		t.Fatalf("JoinTitles = %q", got)
	}
	if got := JoinTitles(nil); got != "-" {
		t.Fatalf("JoinTitles(nil) = %q", got)
	}
}

func TestRenderProgressBarClamps(t *testing.T) {
	bar := RenderProgressBar(150, 10)
	if strings.Count(bar, "█") != 10 {
		t.Fatalf("bar %q should be fully filled", bar)
	}
	if !strings.Contains(bar, "150%") {
		t.Fatalf("bar %q missing percentage", bar)
	}
	if RenderProgressBar(50, 0) != "" {
		t.Fatal("zero width should render nothing")
	}
}

func TestRenderTableAlignsUnicodeCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Day", "Puasa"},
		Rows:    [][]string{{"1", "✓"}, {"2", "·"}},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("table has %d lines, want 6:\n%s", len(lines), out)
	}
}
