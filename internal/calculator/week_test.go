package calculator

import (
	"testing"
	"time"
)

func TestWeekNumberForDate(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-01-01", 0},
		{"2026-01-07", 0},
		{"2026-01-08", 1},
		{"2026-01-26", 3},
		{"2026-12-31", 52},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := WeekNumberForDate(tt.date)
			if err != nil {
				t.Fatalf("WeekNumberForDate(%q) error: %v", tt.date, err)
			}
			if got != tt.want {
				t.Errorf("WeekNumberForDate(%q) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}

	if _, err := WeekNumberForDate("01/26/2026"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestWeekStartAndDates(t *testing.T) {
	wed := time.Date(2026, time.January, 28, 18, 30, 0, 0, time.UTC)
	start := WeekStart(wed)
	if got := start.Format(dateLayout); got != "2026-01-25" {
		t.Errorf("WeekStart = %s, want 2026-01-25", got)
	}

	dates := WeekDates(start)
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	if dates[0] != "2026-01-25" || dates[6] != "2026-01-31" {
		t.Errorf("WeekDates = %v", dates)
	}
}

func TestDayAbbreviation(t *testing.T) {
	if got := DayAbbreviation("2026-01-25"); got != "Sun" {
		t.Errorf("DayAbbreviation = %q, want Sun", got)
	}
	if got := DayAbbreviation("bogus"); got != "" {
		t.Errorf("DayAbbreviation(bogus) = %q, want empty", got)
	}
}
