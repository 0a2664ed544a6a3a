// Package importer reads weekly schedule exports and turns them into shifts.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mmynk/tippool/internal/models"
)

var (
	// ErrNoScheduleSection is returned when the export has no "Scheduled shifts" row.
	ErrNoScheduleSection = errors.New("no scheduled shifts section found")

	// ErrNoShifts is returned when no employee has a usable shift.
	ErrNoShifts = errors.New("no valid shifts found")

	// ErrInvalidDate is returned when a header cell is not a YYYY-MM-DD date.
	ErrInvalidDate = errors.New("invalid schedule date")
)

const sectionMarker = "Scheduled shifts"

// Cells containing any of these are not worked shifts.
var skipMarkers = []string{"Time off", "Unavailable", "All day"}

var (
	bartenderVenue = regexp.MustCompile(`(?i)Bartender\s*•\s*[^•\n]*`)
	expoVenue      = regexp.MustCompile(`(?i)expo\s*/\s*to\s*go\s*•\s*[^•\n]*`)
	timeRange      = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:AM|PM))\s*-\s*(\d{1,2}:\d{2}\s*(?:AM|PM))`)
	clock          = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)
)

// ScheduledShift is one worked cell of the schedule.
type ScheduledShift struct {
	Date  string
	Start string
	End   string
	Hours float64
}

// Schedule is a parsed export: the week's dates and the shifts of every
// employee that has at least one.
type Schedule struct {
	Dates []string
	// Names lists employees in the order their rows appear.
	Names  []string
	Shifts map[string][]ScheduledShift
}

// Parse reads a schedule grid. The first row holds one date per column after
// the first; employee rows follow the row whose first cell mentions
// "Scheduled shifts", each with a name and one cell per date.
func Parse(r io.Reader) (*Schedule, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoScheduleSection
	}

	// Columns keep their position; a blank header cell leaves its column unused.
	columns := make([]string, len(rows[0]))
	var dates []string
	for j := 1; j < len(rows[0]); j++ {
		columns[j] = strings.TrimSpace(rows[0][j])
		if columns[j] == "" {
			continue
		}
		if _, err := time.Parse(models.DateLayout, columns[j]); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, columns[j])
		}
		dates = append(dates, columns[j])
	}

	start := -1
	for i, row := range rows {
		if len(row) > 0 && strings.Contains(row[0], sectionMarker) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, ErrNoScheduleSection
	}

	sched := &Schedule{Dates: dates, Shifts: make(map[string][]ScheduledShift)}
	for _, row := range rows[start+1:] {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}

		var shifts []ScheduledShift
		for j := 1; j < len(row) && j < len(columns); j++ {
			if columns[j] == "" {
				continue
			}
			if shift, ok := parseCell(row[j]); ok {
				shift.Date = columns[j]
				shifts = append(shifts, shift)
			}
		}

		// A repeated name replaces the earlier row.
		if _, seen := sched.Shifts[name]; !seen {
			sched.Names = append(sched.Names, name)
		}
		sched.Shifts[name] = shifts
	}

	names := sched.Names[:0]
	for _, name := range sched.Names {
		if len(sched.Shifts[name]) == 0 {
			delete(sched.Shifts, name)
			continue
		}
		names = append(names, name)
	}
	sched.Names = names

	if len(sched.Names) == 0 {
		return nil, ErrNoShifts
	}
	return sched, nil
}

func parseCell(cell string) (ScheduledShift, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return ScheduledShift{}, false
	}
	for _, marker := range skipMarkers {
		if strings.Contains(cell, marker) {
			return ScheduledShift{}, false
		}
	}

	cell = bartenderVenue.ReplaceAllString(cell, "")
	cell = expoVenue.ReplaceAllString(cell, "")
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return ScheduledShift{}, false
	}

	m := timeRange.FindStringSubmatch(cell)
	if m == nil {
		return ScheduledShift{}, false
	}

	hours := parseClock(m[2]) - parseClock(m[1])
	if hours < 0 {
		hours += 24 // overnight
	}
	return ScheduledShift{
		Start: m[1],
		End:   m[2],
		Hours: math.Round(hours*10) / 10,
	}, true
}

// parseClock converts "h:mm AM|PM" to fractional hours since midnight.
func parseClock(s string) float64 {
	m := clock.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])

	switch strings.ToUpper(m[3]) {
	case "PM":
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	}
	return float64(hours) + float64(minutes)/60
}
