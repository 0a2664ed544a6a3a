// Package export renders a week's payouts as downloadable files.
package export

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tippool/internal/calculator"
	"github.com/mmynk/tippool/internal/models"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported formats.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is an export file type.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "xlsx" or "csv"; empty means xlsx.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatXLSX):
		return FormatXLSX, nil
	case string(FormatCSV):
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType is the MIME type of files in this format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	default:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
}

// FileName is the download name of a week's summary.
func FileName(week int, f Format) string {
	return fmt.Sprintf("weekly-summary-week-%d.%s", week, f)
}

// Line is one employee's row, rounded for display: hours to one decimal,
// money to cents.
type Line struct {
	Name   string
	Role   models.Role
	Shifts int
	Days   []string // YYYY-MM-DD, ascending
	Hours  decimal.Decimal
	Cash   decimal.Decimal
	Credit decimal.Decimal
	Fee    decimal.Decimal
	Total  decimal.Decimal
}

// DaysLabel renders Days as "Sun, Mon, ...".
func (l Line) DaysLabel() string {
	labels := make([]string, 0, len(l.Days))
	for _, d := range l.Days {
		labels = append(labels, calculator.DayAbbreviation(d))
	}
	return strings.Join(labels, ", ")
}

// Summary is a week's export: one line per active employee and their sum.
type Summary struct {
	Week       int
	Lines      []Line
	GrandTotal Line
}

// Build collects the active entries of a weekly breakdown into a summary
// ordered by employee name. Entries without a matching employee are skipped.
func Build(week int, employees []*models.Employee, entries map[string]*calculator.WeeklyEntry) *Summary {
	byID := make(map[string]*models.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	s := &Summary{Week: week}
	for _, entry := range calculator.ActiveEntries(entries) {
		emp, ok := byID[entry.EmployeeID]
		if !ok {
			continue
		}
		cash := cents(entry.CashTips)
		credit := cents(entry.CreditTips)
		s.Lines = append(s.Lines, Line{
			Name:   emp.Name,
			Role:   emp.Role,
			Shifts: entry.ShiftsCount,
			Days:   entry.Days(),
			Hours:  decimal.NewFromFloat(entry.TotalHours).Round(1),
			Cash:   cash,
			Credit: credit,
			Fee:    cents(entry.CreditFee),
			Total:  cash.Add(credit),
		})
	}
	sort.SliceStable(s.Lines, func(i, j int) bool {
		return s.Lines[i].Name < s.Lines[j].Name
	})

	s.GrandTotal = Line{Name: "GRAND TOTAL"}
	for _, l := range s.Lines {
		s.GrandTotal.Shifts += l.Shifts
		s.GrandTotal.Hours = s.GrandTotal.Hours.Add(l.Hours)
		s.GrandTotal.Cash = s.GrandTotal.Cash.Add(l.Cash)
		s.GrandTotal.Credit = s.GrandTotal.Credit.Add(l.Credit)
		s.GrandTotal.Fee = s.GrandTotal.Fee.Add(l.Fee)
		s.GrandTotal.Total = s.GrandTotal.Total.Add(l.Total)
	}
	return s
}

// Render encodes the summary in the given format.
func (s *Summary) Render(f Format) ([]byte, error) {
	switch f {
	case FormatXLSX:
		return s.XLSX()
	case FormatCSV:
		return s.CSV()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func cents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
