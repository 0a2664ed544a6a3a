package calculator

import (
	"fmt"
	"time"
)

const (
	dateLayout   = "2006-01-02"
	weekDuration = 7 * 24 * time.Hour
)

// WeekNumber returns the number of whole weeks between January 1st of t's year
// and t. January 1st through 7th is week 0.
func WeekNumber(t time.Time) int {
	day := civil(t)
	start := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return int(day.Sub(start) / weekDuration)
}

// WeekNumberForDate is WeekNumber for a YYYY-MM-DD date.
func WeekNumberForDate(date string) (int, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return WeekNumber(t), nil
}

// WeekStart returns the Sunday on or before t.
func WeekStart(t time.Time) time.Time {
	day := civil(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeekDates returns the seven dates starting at start, as YYYY-MM-DD.
func WeekDates(start time.Time) []string {
	day := civil(start)
	dates := make([]string, 7)
	for i := range dates {
		dates[i] = day.AddDate(0, 0, i).Format(dateLayout)
	}
	return dates
}

// DayAbbreviation returns "Sun".."Sat" for a YYYY-MM-DD date, or "" if it does not parse.
func DayAbbreviation(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()[:3]
}

// civil drops the clock and zone, keeping t's calendar date.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
